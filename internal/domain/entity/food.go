package entity

import (
	"time"
)

// Food represents one uploaded food video listing.
// LikeCount and SaveCount are denormalized counters kept in sync with the
// reaction collections by the toggle flow; they are best-effort, never negative.
type Food struct {
	ID            string    `bson:"_id,omitempty" json:"_id"`
	Name          string    `bson:"name" json:"name"`
	Description   string    `bson:"description" json:"description"`
	Video         string    `bson:"video" json:"video"`
	FoodPartnerID string    `bson:"food_partner_id" json:"foodPartner"`
	LikeCount     int64     `bson:"like_count" json:"likeCount"`
	SaveCount     int64     `bson:"save_count" json:"saveCount"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// CounterField returns the Food document field holding the counter for a
// reaction kind.
func (k ReactionKind) CounterField() string {
	if k == ReactionKindSave {
		return "save_count"
	}
	return "like_count"
}
