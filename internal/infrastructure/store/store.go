package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mihretgelan/TasteReel/internal/domain/entity"
	usecasecontract "github.com/mihretgelan/TasteReel/internal/usecase/contract"
)

const feedKey = "feed:all"

// FeedCacheStore caches the full feed listing in Redis. The TTL is short
// because the like/save counters embedded in the cached items drift from the
// live documents between refreshes.
type FeedCacheStore struct {
	rdb     *redis.Client
	feedTTL time.Duration
}

var _ usecasecontract.IFeedCache = (*FeedCacheStore)(nil)

func NewFeedCacheStore(rdb *redis.Client) *FeedCacheStore {
	return &FeedCacheStore{
		rdb:     rdb,
		feedTTL: 1 * time.Minute,
	}
}

func (c *FeedCacheStore) GetFeed(ctx context.Context) ([]entity.Food, bool, error) {
	b, err := c.rdb.Get(ctx, feedKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var foods []entity.Food
	if err := json.Unmarshal(b, &foods); err != nil {
		return nil, false, nil
	}
	return foods, true, nil
}

func (c *FeedCacheStore) SetFeed(ctx context.Context, foods []entity.Food) error {
	data, err := json.Marshal(foods)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, feedKey, data, c.feedTTL).Err()
}

func (c *FeedCacheStore) InvalidateFeed(ctx context.Context) error {
	return c.rdb.Del(ctx, feedKey).Err()
}
