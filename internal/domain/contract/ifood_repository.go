package contract

import (
	"context"

	"github.com/mihretgelan/TasteReel/internal/domain/entity"
)

// IFoodRepository defines the interface for food listing persistence and the
// denormalized reaction counters that live on each food document.
type IFoodRepository interface {
	CreateFood(ctx context.Context, food *entity.Food) error
	GetFoodByID(ctx context.Context, foodID string) (*entity.Food, error)
	ListFoods(ctx context.Context) ([]entity.Food, error)
	ListFoodsByPartner(ctx context.Context, partnerID string) ([]entity.Food, error)
	ListFoodsByIDs(ctx context.Context, foodIDs []string) ([]entity.Food, error)

	// ApplyCounterDelta atomically adds delta to the given counter field,
	// flooring the stored value at zero, and returns the resulting value.
	ApplyCounterDelta(ctx context.Context, foodID string, kind entity.ReactionKind, delta int64) (int64, error)
}
