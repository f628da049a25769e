package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mihretgelan/TasteReel/internal/domain/contract"
	"github.com/mihretgelan/TasteReel/internal/domain/entity"
	"github.com/mihretgelan/TasteReel/internal/metrics"
	usecasecontract "github.com/mihretgelan/TasteReel/internal/usecase/contract"
)

// FoodUsecase implements food publishing and feed listing.
type FoodUsecase struct {
	foodRepo      contract.IFoodRepository
	partnerRepo   contract.IFoodPartnerRepository
	storage       contract.IFileStorage
	uuidGenerator contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
	feedCache     usecasecontract.IFeedCache
}

// NewFoodUsecase creates a new FoodUsecase instance.
func NewFoodUsecase(
	foodRepo contract.IFoodRepository,
	partnerRepo contract.IFoodPartnerRepository,
	storage contract.IFileStorage,
	uuidGenerator contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *FoodUsecase {
	return &FoodUsecase{
		foodRepo:      foodRepo,
		partnerRepo:   partnerRepo,
		storage:       storage,
		uuidGenerator: uuidGenerator,
		logger:        logger,
	}
}

// check if FoodUsecase implements the IFoodUseCase
var _ usecasecontract.IFoodUseCase = (*FoodUsecase)(nil)

// SetFeedCache attaches an optional feed cache.
func (uc *FoodUsecase) SetFeedCache(cache usecasecontract.IFeedCache) {
	uc.feedCache = cache
}

// CreateFood uploads the video bytes to storage and persists the listing with
// the returned locator URL.
func (uc *FoodUsecase) CreateFood(ctx context.Context, input usecasecontract.CreateFoodInput) (*entity.Food, error) {
	if input.Video == nil {
		return nil, errors.New("video payload is required")
	}

	objectName := uc.uuidGenerator.NewUUID()
	videoURL, err := uc.storage.UploadFile(ctx, objectName, input.Video, input.VideoSize, input.ContentType)
	if err != nil {
		uc.logger.Errorf("failed to upload video for partner %s: %v", input.PartnerID, err)
		return nil, fmt.Errorf("failed to upload video: %w", err)
	}

	now := time.Now()
	food := &entity.Food{
		ID:            uc.uuidGenerator.NewUUID(),
		Name:          input.Name,
		Description:   input.Description,
		Video:         videoURL,
		FoodPartnerID: input.PartnerID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.foodRepo.CreateFood(ctx, food); err != nil {
		return nil, fmt.Errorf("failed to create food item: %w", err)
	}

	if uc.feedCache != nil {
		if err := uc.feedCache.InvalidateFeed(ctx); err != nil {
			uc.logger.Warnf("failed to invalidate feed cache: %v", err)
		}
	}
	metrics.FoodUploads.Inc()
	return food, nil
}

// ListFeed returns every food item, newest first.
func (uc *FoodUsecase) ListFeed(ctx context.Context) ([]entity.Food, error) {
	if uc.feedCache != nil {
		foods, hit, err := uc.feedCache.GetFeed(ctx)
		if err != nil {
			uc.logger.Warnf("feed cache read failed: %v", err)
		} else if hit {
			return foods, nil
		}
	}

	foods, err := uc.foodRepo.ListFoods(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}

	if uc.feedCache != nil {
		if err := uc.feedCache.SetFeed(ctx, foods); err != nil {
			uc.logger.Warnf("feed cache write failed: %v", err)
		}
	}
	return foods, nil
}

// GetPartnerProfile returns a partner together with their uploaded items.
func (uc *FoodUsecase) GetPartnerProfile(ctx context.Context, partnerID string) (*entity.FoodPartner, []entity.Food, error) {
	partner, err := uc.partnerRepo.GetFoodPartnerByID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, contract.ErrPartnerNotFound) {
			return nil, nil, contract.ErrPartnerNotFound
		}
		return nil, nil, fmt.Errorf("failed to fetch partner %s: %w", partnerID, err)
	}

	foods, err := uc.foodRepo.ListFoodsByPartner(ctx, partnerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list foods for partner %s: %w", partnerID, err)
	}
	return partner, foods, nil
}
