package usecase_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/mihretgelan/TasteReel/internal/domain/contract"
	"github.com/mihretgelan/TasteReel/internal/domain/entity"
	"github.com/mihretgelan/TasteReel/internal/usecase"
	usecasecontract "github.com/mihretgelan/TasteReel/internal/usecase/contract"
	"github.com/stretchr/testify/assert"
)

type fakeStorage struct {
	uploaded   []string
	shouldFail bool
}

func (s *fakeStorage) UploadFile(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	if s.shouldFail {
		return "", errors.New("storage unavailable")
	}
	s.uploaded = append(s.uploaded, objectName)
	return "http://storage.local/videos/" + objectName, nil
}

type fakeFeedCache struct {
	feed        []entity.Food
	hasFeed     bool
	invalidated int
	sets        int
	gets        int
}

func (c *fakeFeedCache) GetFeed(ctx context.Context) ([]entity.Food, bool, error) {
	c.gets++
	if !c.hasFeed {
		return nil, false, nil
	}
	return c.feed, true, nil
}

func (c *fakeFeedCache) SetFeed(ctx context.Context, foods []entity.Food) error {
	c.sets++
	c.feed = foods
	c.hasFeed = true
	return nil
}

func (c *fakeFeedCache) InvalidateFeed(ctx context.Context) error {
	c.invalidated++
	c.hasFeed = false
	return nil
}

var _ usecasecontract.IFeedCache = (*fakeFeedCache)(nil)

func videoInput(partnerID string) usecasecontract.CreateFoodInput {
	return usecasecontract.CreateFoodInput{
		Name:        "Doro Wat",
		Description: "Spicy chicken stew",
		PartnerID:   partnerID,
		Video:       strings.NewReader("video-bytes"),
		VideoSize:   11,
		ContentType: "video/mp4",
	}
}

func TestCreateFood(t *testing.T) {
	foods := newFakeFoodRepo()
	storage := &fakeStorage{}
	uc := usecase.NewFoodUsecase(foods, newFakePartnerRepo(), storage, &seqUUID{}, nopLogger{})

	food, err := uc.CreateFood(context.Background(), videoInput("partner-1"))

	assert.NoError(t, err)
	assert.Equal(t, "Doro Wat", food.Name)
	assert.Equal(t, "partner-1", food.FoodPartnerID)
	assert.Equal(t, "http://storage.local/videos/uuid-1", food.Video)
	assert.Zero(t, food.LikeCount)
	assert.Zero(t, food.SaveCount)
	assert.Len(t, storage.uploaded, 1)

	stored, err := foods.GetFoodByID(context.Background(), food.ID)
	assert.NoError(t, err)
	assert.Equal(t, food.Video, stored.Video)
}

func TestCreateFood_NoVideo(t *testing.T) {
	uc := usecase.NewFoodUsecase(newFakeFoodRepo(), newFakePartnerRepo(), &fakeStorage{}, &seqUUID{}, nopLogger{})

	input := videoInput("partner-1")
	input.Video = nil
	_, err := uc.CreateFood(context.Background(), input)

	assert.Error(t, err)
}

func TestCreateFood_StorageFailure(t *testing.T) {
	foods := newFakeFoodRepo()
	uc := usecase.NewFoodUsecase(foods, newFakePartnerRepo(), &fakeStorage{shouldFail: true}, &seqUUID{}, nopLogger{})

	_, err := uc.CreateFood(context.Background(), videoInput("partner-1"))

	assert.Error(t, err)
	assert.Empty(t, foods.foods, "nothing should be persisted when the upload fails")
}

func TestCreateFood_InvalidatesFeedCache(t *testing.T) {
	cache := &fakeFeedCache{hasFeed: true, feed: []entity.Food{{ID: "stale"}}}
	uc := usecase.NewFoodUsecase(newFakeFoodRepo(), newFakePartnerRepo(), &fakeStorage{}, &seqUUID{}, nopLogger{})
	uc.SetFeedCache(cache)

	_, err := uc.CreateFood(context.Background(), videoInput("partner-1"))

	assert.NoError(t, err)
	assert.Equal(t, 1, cache.invalidated)
	assert.False(t, cache.hasFeed)
}

func TestListFeed(t *testing.T) {
	foods := newFakeFoodRepo(&entity.Food{ID: "food-1", Name: "Kitfo"}, &entity.Food{ID: "food-2", Name: "Tibs"})
	uc := usecase.NewFoodUsecase(foods, newFakePartnerRepo(), &fakeStorage{}, &seqUUID{}, nopLogger{})

	feed, err := uc.ListFeed(context.Background())

	assert.NoError(t, err)
	assert.Len(t, feed, 2)
}

func TestListFeed_UsesCache(t *testing.T) {
	foods := newFakeFoodRepo(&entity.Food{ID: "food-1", Name: "Kitfo"})
	cache := &fakeFeedCache{}
	uc := usecase.NewFoodUsecase(foods, newFakePartnerRepo(), &fakeStorage{}, &seqUUID{}, nopLogger{})
	uc.SetFeedCache(cache)

	first, err := uc.ListFeed(context.Background())
	assert.NoError(t, err)
	assert.Len(t, first, 1)
	assert.Equal(t, 1, cache.sets)

	// Second read is served from the cache, not the repository.
	delete(foods.foods, "food-1")
	second, err := uc.ListFeed(context.Background())
	assert.NoError(t, err)
	assert.Len(t, second, 1)
	assert.Equal(t, 1, cache.sets)
}

func TestGetPartnerProfile(t *testing.T) {
	partnerRepo := newFakePartnerRepo()
	partner := &entity.FoodPartner{ID: "partner-1", FullName: "Mama's Kitchen", Email: "mama@example.com"}
	assert.NoError(t, partnerRepo.CreateFoodPartner(context.Background(), partner))

	foods := newFakeFoodRepo(
		&entity.Food{ID: "food-1", FoodPartnerID: "partner-1"},
		&entity.Food{ID: "food-2", FoodPartnerID: "partner-2"},
	)
	uc := usecase.NewFoodUsecase(foods, partnerRepo, &fakeStorage{}, &seqUUID{}, nopLogger{})

	got, listings, err := uc.GetPartnerProfile(context.Background(), "partner-1")

	assert.NoError(t, err)
	assert.Equal(t, "Mama's Kitchen", got.FullName)
	assert.Len(t, listings, 1)
	assert.Equal(t, "food-1", listings[0].ID)
}

func TestGetPartnerProfile_NotFound(t *testing.T) {
	uc := usecase.NewFoodUsecase(newFakeFoodRepo(), newFakePartnerRepo(), &fakeStorage{}, &seqUUID{}, nopLogger{})

	_, _, err := uc.GetPartnerProfile(context.Background(), "missing")

	assert.ErrorIs(t, err, contract.ErrPartnerNotFound)
}
