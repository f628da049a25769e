package mocks

import (
	"context"
	"errors"

	"github.com/mihretgelan/TasteReel/internal/domain/contract"
	"github.com/mihretgelan/TasteReel/internal/domain/entity"
	"github.com/mihretgelan/TasteReel/internal/usecase"
	usecasecontract "github.com/mihretgelan/TasteReel/internal/usecase/contract"
)

// MockAuthUsecase is a mock implementation of the IAuthUseCase interface
type MockAuthUsecase struct {
	// Control mock behavior
	ShouldFailRegister bool
	ShouldFailLogin    bool
	ShouldFailGetByID  bool
	EmailAlreadyTaken  bool

	// Return values
	MockUser    entity.User
	MockPartner entity.FoodPartner
	MockToken   string
}

// Ensure MockAuthUsecase implements the interface handlers depend on
var _ usecasecontract.IAuthUseCase = (*MockAuthUsecase)(nil)

func NewMockAuthUsecase() *MockAuthUsecase {
	return &MockAuthUsecase{
		MockUser: entity.User{
			ID:       "mock-user-id",
			FullName: "Test User",
			Email:    "test@example.com",
		},
		MockPartner: entity.FoodPartner{
			ID:       "mock-partner-id",
			FullName: "Test Kitchen",
			Email:    "kitchen@example.com",
			Phone:    "0911000000",
			City:     "Addis Ababa",
		},
		MockToken: "mock_token",
	}
}

func (m *MockAuthUsecase) RegisterUser(ctx context.Context, fullName, email, password string) (*entity.User, string, error) {
	if m.EmailAlreadyTaken {
		return nil, "", contract.ErrEmailTaken
	}
	if m.ShouldFailRegister {
		return nil, "", errors.New("registration failed")
	}
	return &m.MockUser, m.MockToken, nil
}

func (m *MockAuthUsecase) LoginUser(ctx context.Context, email, password string) (*entity.User, string, error) {
	if m.ShouldFailLogin {
		return nil, "", usecase.ErrInvalidCredentials
	}
	return &m.MockUser, m.MockToken, nil
}

func (m *MockAuthUsecase) RegisterFoodPartner(ctx context.Context, fullName, email, password, phone, city string) (*entity.FoodPartner, string, error) {
	if m.EmailAlreadyTaken {
		return nil, "", contract.ErrEmailTaken
	}
	if m.ShouldFailRegister {
		return nil, "", errors.New("registration failed")
	}
	return &m.MockPartner, m.MockToken, nil
}

func (m *MockAuthUsecase) LoginFoodPartner(ctx context.Context, email, password string) (*entity.FoodPartner, string, error) {
	if m.ShouldFailLogin {
		return nil, "", usecase.ErrInvalidCredentials
	}
	return &m.MockPartner, m.MockToken, nil
}

func (m *MockAuthUsecase) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, contract.ErrUserNotFound
	}
	return &m.MockUser, nil
}

func (m *MockAuthUsecase) GetFoodPartnerByID(ctx context.Context, id string) (*entity.FoodPartner, error) {
	if m.ShouldFailGetByID {
		return nil, contract.ErrPartnerNotFound
	}
	return &m.MockPartner, nil
}
