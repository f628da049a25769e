package mocks

import (
	"context"
	"errors"

	"github.com/mihretgelan/TasteReel/internal/domain/contract"
	"github.com/mihretgelan/TasteReel/internal/domain/entity"
	usecasecontract "github.com/mihretgelan/TasteReel/internal/usecase/contract"
)

// MockReactionUsecase is a mock implementation of the IReactionUseCase interface
type MockReactionUsecase struct {
	ShouldFailToggle    bool
	ShouldFailListSaved bool
	FoodMissing         bool

	ToggleActive bool
	ToggleCount  int64
	MockSaved    []entity.Food
}

var _ usecasecontract.IReactionUseCase = (*MockReactionUsecase)(nil)

func NewMockReactionUsecase() *MockReactionUsecase {
	return &MockReactionUsecase{
		ToggleActive: true,
		ToggleCount:  1,
		MockSaved: []entity.Food{{
			ID:            "mock-food-id",
			Name:          "Doro Wat",
			Video:         "http://storage.local/videos/mock",
			FoodPartnerID: "mock-partner-id",
			SaveCount:     1,
		}},
	}
}

func (m *MockReactionUsecase) Toggle(ctx context.Context, kind entity.ReactionKind, userID, foodID string) (*usecasecontract.ToggleResult, error) {
	if m.FoodMissing {
		return nil, contract.ErrFoodNotFound
	}
	if m.ShouldFailToggle {
		return nil, errors.New("toggle failed")
	}
	return &usecasecontract.ToggleResult{Active: m.ToggleActive, Count: m.ToggleCount}, nil
}

func (m *MockReactionUsecase) ListSavedFoods(ctx context.Context, userID string) ([]entity.Food, error) {
	if m.ShouldFailListSaved {
		return nil, errors.New("list failed")
	}
	return m.MockSaved, nil
}
