package contract

import (
	"context"

	"github.com/mihretgelan/TasteReel/internal/domain/entity"
)

// IReactionRepository defines the interface for one reaction relation (likes
// or saves). Implementations must back CreateReaction with a unique
// (user, food) index and report a violation as ErrDuplicateReaction; that
// constraint, not application logic, is what prevents double inserts under
// concurrent toggles.
type IReactionRepository interface {
	CreateReaction(ctx context.Context, reaction *entity.Reaction) error

	// DeleteReaction removes the reaction for (userID, foodID) and reports
	// whether a record was actually removed. Deleting an absent reaction is
	// not an error.
	DeleteReaction(ctx context.Context, userID, foodID string) (bool, error)

	GetReaction(ctx context.Context, userID, foodID string) (*entity.Reaction, error)
	ListReactionsByUser(ctx context.Context, userID string) ([]entity.Reaction, error)
	CountReactionsByFood(ctx context.Context, foodID string) (int64, error)
}
