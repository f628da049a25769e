package entity

import (
	"time"
)

// FoodPartner represents a restaurant account that uploads food videos
type FoodPartner struct {
	ID           string    `bson:"_id,omitempty" json:"_id"`
	FullName     string    `bson:"fullname" json:"fullname"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Phone        string    `bson:"phone" json:"phone"`
	City         string    `bson:"city" json:"city"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}
