package dto

import (
	"github.com/mihretgelan/TasteReel/internal/domain/entity"
)

// RegisterUserRequest defines the payload for viewer registration.
type RegisterUserRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest defines the payload for both login endpoints.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterPartnerRequest defines the payload for food partner registration.
type RegisterPartnerRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	City     string `json:"city" binding:"required"`
}

// UserResponse is the public shape of a viewer account.
type UserResponse struct {
	ID       string `json:"_id"`
	FullName string `json:"fullname"`
	Email    string `json:"email"`
}

// PartnerResponse is the public shape of a food partner account.
type PartnerResponse struct {
	ID       string `json:"_id"`
	FullName string `json:"fullname"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
}

// AuthUserResponse wraps a user auth result.
type AuthUserResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// AuthPartnerResponse wraps a partner auth result.
type AuthPartnerResponse struct {
	Message     string          `json:"message"`
	FoodPartner PartnerResponse `json:"foodPartner"`
}

// ToUserResponse converts an entity.User to its public shape.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
	}
}

// ToPartnerResponse converts an entity.FoodPartner to its public shape.
func ToPartnerResponse(partner *entity.FoodPartner) PartnerResponse {
	return PartnerResponse{
		ID:       partner.ID,
		FullName: partner.FullName,
		Email:    partner.Email,
		Phone:    partner.Phone,
		City:     partner.City,
	}
}
