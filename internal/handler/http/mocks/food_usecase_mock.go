package mocks

import (
	"context"
	"errors"

	"github.com/mihretgelan/TasteReel/internal/domain/contract"
	"github.com/mihretgelan/TasteReel/internal/domain/entity"
	usecasecontract "github.com/mihretgelan/TasteReel/internal/usecase/contract"
)

// MockFoodUsecase is a mock implementation of the IFoodUseCase interface
type MockFoodUsecase struct {
	ShouldFailCreate bool
	ShouldFailList   bool
	PartnerMissing   bool

	MockFood    entity.Food
	MockFeed    []entity.Food
	MockPartner entity.FoodPartner
}

var _ usecasecontract.IFoodUseCase = (*MockFoodUsecase)(nil)

func NewMockFoodUsecase() *MockFoodUsecase {
	food := entity.Food{
		ID:            "mock-food-id",
		Name:          "Doro Wat",
		Description:   "Spicy chicken stew",
		Video:         "http://storage.local/videos/mock",
		FoodPartnerID: "mock-partner-id",
	}
	return &MockFoodUsecase{
		MockFood: food,
		MockFeed: []entity.Food{food},
		MockPartner: entity.FoodPartner{
			ID:       "mock-partner-id",
			FullName: "Test Kitchen",
			Email:    "kitchen@example.com",
			Phone:    "0911000000",
			City:     "Addis Ababa",
		},
	}
}

func (m *MockFoodUsecase) CreateFood(ctx context.Context, input usecasecontract.CreateFoodInput) (*entity.Food, error) {
	if m.ShouldFailCreate {
		return nil, errors.New("create failed")
	}
	return &m.MockFood, nil
}

func (m *MockFoodUsecase) ListFeed(ctx context.Context) ([]entity.Food, error) {
	if m.ShouldFailList {
		return nil, errors.New("list failed")
	}
	return m.MockFeed, nil
}

func (m *MockFoodUsecase) GetPartnerProfile(ctx context.Context, partnerID string) (*entity.FoodPartner, []entity.Food, error) {
	if m.PartnerMissing {
		return nil, nil, contract.ErrPartnerNotFound
	}
	return &m.MockPartner, m.MockFeed, nil
}
