package usecasecontract

import (
	"context"

	"github.com/mihretgelan/TasteReel/internal/domain/entity"
)

// IAuthUseCase defines the interface for user and food partner authentication.
// Login and registration return the principal together with the signed token
// the handler sets as the auth cookie.
type IAuthUseCase interface {
	RegisterUser(ctx context.Context, fullName, email, password string) (*entity.User, string, error)
	LoginUser(ctx context.Context, email, password string) (*entity.User, string, error)
	RegisterFoodPartner(ctx context.Context, fullName, email, password, phone, city string) (*entity.FoodPartner, string, error)
	LoginFoodPartner(ctx context.Context, email, password string) (*entity.FoodPartner, string, error)
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	GetFoodPartnerByID(ctx context.Context, id string) (*entity.FoodPartner, error)
}
