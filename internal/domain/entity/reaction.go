package entity

import (
	"time"
)

// ReactionKind distinguishes the two reaction relations a user can hold on a
// food item. Each kind lives in its own collection with its own unique
// (user, food) index.
type ReactionKind string

const (
	ReactionKindLike ReactionKind = "like"
	ReactionKindSave ReactionKind = "save"
)

// Reaction is one user's active like or save on one food item. It is created
// on toggle-ON and deleted on toggle-OFF, never updated in place.
type Reaction struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	FoodID    string    `bson:"food_id" json:"food_id"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
