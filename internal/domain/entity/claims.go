package entity

import (
	"github.com/golang-jwt/jwt/v5"
)

// PrincipalKind identifies which collection an authenticated id belongs to.
type PrincipalKind string

const (
	PrincipalUser        PrincipalKind = "user"
	PrincipalFoodPartner PrincipalKind = "food-partner"
)

// Claims are the JWT claims carried in the auth cookie.
type Claims struct {
	ID   string        `json:"id"`
	Kind PrincipalKind `json:"kind"`
	jwt.RegisteredClaims
}
