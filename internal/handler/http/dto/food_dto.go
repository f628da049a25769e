package dto

import (
	"time"

	"github.com/mihretgelan/TasteReel/internal/domain/entity"
)

// ToggleRequest is the body of the like and save toggle endpoints.
type ToggleRequest struct {
	FoodID string `json:"foodId"`
}

// FoodResponse is the public shape of a food listing. IsSaved is only set on
// the saved-items listing; the feed does not report the caller's own reaction
// state.
type FoodResponse struct {
	ID            string    `json:"_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Video         string    `json:"video"`
	FoodPartnerID string    `json:"foodPartner"`
	LikeCount     int64     `json:"likeCount"`
	SaveCount     int64     `json:"saveCount"`
	CreatedAt     time.Time `json:"created_at"`
	IsSaved       bool      `json:"isSaved,omitempty"`
}

// CreateFoodResponse wraps a newly published listing.
type CreateFoodResponse struct {
	Message  string       `json:"message"`
	FoodItem FoodResponse `json:"foodItem"`
}

// FeedResponse wraps the feed listing.
type FeedResponse struct {
	Message   string         `json:"message"`
	FoodItems []FoodResponse `json:"foodItems"`
}

// SavedItemsResponse wraps the saved-items listing.
type SavedItemsResponse struct {
	SavedItems []FoodResponse `json:"savedItems"`
}

// LikeToggleResponse reports the state after a like toggle.
type LikeToggleResponse struct {
	Message   string `json:"message"`
	Like      bool   `json:"like"`
	LikeCount int64  `json:"likeCount"`
}

// SaveToggleResponse reports the state after a save toggle.
type SaveToggleResponse struct {
	Message   string `json:"message"`
	Saved     bool   `json:"saved"`
	SaveCount int64  `json:"saveCount"`
}

// PartnerProfileResponse wraps a partner profile with their listings.
type PartnerProfileResponse struct {
	Message     string              `json:"message"`
	FoodPartner PartnerWithListings `json:"foodPartner"`
}

// PartnerWithListings embeds the partner's items in their public profile.
type PartnerWithListings struct {
	PartnerResponse
	FoodItems []FoodResponse `json:"foodItems"`
}

// ToFoodResponse converts an entity.Food to its public shape.
func ToFoodResponse(food *entity.Food) FoodResponse {
	return FoodResponse{
		ID:            food.ID,
		Name:          food.Name,
		Description:   food.Description,
		Video:         food.Video,
		FoodPartnerID: food.FoodPartnerID,
		LikeCount:     food.LikeCount,
		SaveCount:     food.SaveCount,
		CreatedAt:     food.CreatedAt,
	}
}

// ToFoodResponses converts a slice of foods.
func ToFoodResponses(foods []entity.Food) []FoodResponse {
	out := make([]FoodResponse, 0, len(foods))
	for i := range foods {
		out = append(out, ToFoodResponse(&foods[i]))
	}
	return out
}
