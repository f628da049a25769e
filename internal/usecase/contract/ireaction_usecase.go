package usecasecontract

import (
	"context"

	"github.com/mihretgelan/TasteReel/internal/domain/entity"
)

// ToggleResult reports the state after a reaction toggle.
type ToggleResult struct {
	Active bool
	Count  int64
}

// IReactionUseCase defines the interface for the like/save toggle flow and
// the saved-items listing.
type IReactionUseCase interface {
	Toggle(ctx context.Context, kind entity.ReactionKind, userID, foodID string) (*ToggleResult, error)
	ListSavedFoods(ctx context.Context, userID string) ([]entity.Food, error)
}
