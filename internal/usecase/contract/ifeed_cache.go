package usecasecontract

import (
	"context"

	"github.com/mihretgelan/TasteReel/internal/domain/entity"
)

// IFeedCache caches the unfiltered feed listing. The cache is optional; a nil
// cache means every feed read hits the database. Counter drift between the
// cached copy and the live documents is accepted for the cache TTL, matching
// the best-effort counter contract.
type IFeedCache interface {
	GetFeed(ctx context.Context) ([]entity.Food, bool, error)
	SetFeed(ctx context.Context, foods []entity.Food) error
	InvalidateFeed(ctx context.Context) error
}
