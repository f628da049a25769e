package entity

import (
	"time"
)

// User represents a registered viewer account in the system
type User struct {
	ID           string    `bson:"_id,omitempty" json:"_id"`
	FullName     string    `bson:"fullname" json:"fullname"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}
