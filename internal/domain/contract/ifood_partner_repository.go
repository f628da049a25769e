package contract

import (
	"context"

	"github.com/mihretgelan/TasteReel/internal/domain/entity"
)

// IFoodPartnerRepository defines the interface for food partner data persistence.
type IFoodPartnerRepository interface {
	CreateFoodPartner(ctx context.Context, partner *entity.FoodPartner) error
	GetFoodPartnerByID(ctx context.Context, id string) (*entity.FoodPartner, error)
	GetFoodPartnerByEmail(ctx context.Context, email string) (*entity.FoodPartner, error)
}
