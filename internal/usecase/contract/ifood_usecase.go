package usecasecontract

import (
	"context"
	"io"

	"github.com/mihretgelan/TasteReel/internal/domain/entity"
)

// CreateFoodInput carries everything needed to publish a new food video.
type CreateFoodInput struct {
	Name        string
	Description string
	PartnerID   string
	Video       io.Reader
	VideoSize   int64
	ContentType string
}

// IFoodUseCase defines the interface for food listing operations.
type IFoodUseCase interface {
	CreateFood(ctx context.Context, input CreateFoodInput) (*entity.Food, error)
	ListFeed(ctx context.Context) ([]entity.Food, error)
	GetPartnerProfile(ctx context.Context, partnerID string) (*entity.FoodPartner, []entity.Food, error)
}
