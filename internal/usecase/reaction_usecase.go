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

// ReactionUsecase implements the like/save toggle flow. One code path serves
// both kinds so the duplicate-race recovery cannot diverge between them.
type ReactionUsecase struct {
	likeRepo      contract.IReactionRepository
	saveRepo      contract.IReactionRepository
	foodRepo      contract.IFoodRepository
	uuidGenerator contract.IUUIDGenerator
	logger        usecasecontract.IAppLogger
}

// NewReactionUsecase creates a new ReactionUsecase instance.
func NewReactionUsecase(
	likeRepo contract.IReactionRepository,
	saveRepo contract.IReactionRepository,
	foodRepo contract.IFoodRepository,
	uuidGenerator contract.IUUIDGenerator,
	logger usecasecontract.IAppLogger,
) *ReactionUsecase {
	return &ReactionUsecase{
		likeRepo:      likeRepo,
		saveRepo:      saveRepo,
		foodRepo:      foodRepo,
		uuidGenerator: uuidGenerator,
		logger:        logger,
	}
}

// check if ReactionUsecase implements the IReactionUseCase
var _ usecasecontract.IReactionUseCase = (*ReactionUsecase)(nil)

func (uc *ReactionUsecase) repoFor(kind entity.ReactionKind) contract.IReactionRepository {
	if kind == entity.ReactionKindSave {
		return uc.saveRepo
	}
	return uc.likeRepo
}

// Toggle flips the user's reaction of the given kind on a food item and keeps
// the denormalized counter on the food document in step.
//
// The reaction collection's unique (user, food) index is the authority under
// concurrency: when two toggle-ON requests race, the loser's insert fails with
// a duplicate-key error, which is reinterpreted as "already on" and reported
// as success. The counter update is a separate operation from the reaction
// write, so a crash between the two can leave the counter stale; the counter
// contract is eventual, not transactional.
func (uc *ReactionUsecase) Toggle(ctx context.Context, kind entity.ReactionKind, userID, foodID string) (*usecasecontract.ToggleResult, error) {
	food, err := uc.foodRepo.GetFoodByID(ctx, foodID)
	if err != nil {
		if errors.Is(err, contract.ErrFoodNotFound) {
			return nil, contract.ErrFoodNotFound
		}
		return nil, fmt.Errorf("failed to fetch food %s: %w", foodID, err)
	}

	repo := uc.repoFor(kind)

	existing, err := repo.GetReaction(ctx, userID, foodID)
	if err != nil && !errors.Is(err, contract.ErrReactionNotFound) {
		return nil, fmt.Errorf("failed to look up existing %s: %w", kind, err)
	}

	if existing != nil {
		return uc.toggleOff(ctx, kind, userID, food)
	}
	return uc.toggleOn(ctx, kind, userID, food)
}

func (uc *ReactionUsecase) toggleOn(ctx context.Context, kind entity.ReactionKind, userID string, food *entity.Food) (*usecasecontract.ToggleResult, error) {
	reaction := &entity.Reaction{
		ID:        uc.uuidGenerator.NewUUID(),
		UserID:    userID,
		FoodID:    food.ID,
		CreatedAt: time.Now(),
	}

	err := uc.repoFor(kind).CreateReaction(ctx, reaction)
	if err != nil {
		if !errors.Is(err, contract.ErrDuplicateReaction) {
			return nil, fmt.Errorf("failed to create %s: %w", kind, err)
		}
		// Lost the insert race: the winning request owns the +1, so only
		// report the current state.
		uc.logger.Debugf("duplicate %s insert for user=%s food=%s, treating as already active", kind, userID, food.ID)
		count, err := uc.currentCount(ctx, kind, food.ID)
		if err != nil {
			return nil, err
		}
		metrics.ReactionToggles.WithLabelValues(string(kind), "on").Inc()
		return &usecasecontract.ToggleResult{Active: true, Count: count}, nil
	}

	count, err := uc.foodRepo.ApplyCounterDelta(ctx, food.ID, kind, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to increment %s counter: %w", kind, err)
	}
	metrics.ReactionToggles.WithLabelValues(string(kind), "on").Inc()
	return &usecasecontract.ToggleResult{Active: true, Count: count}, nil
}

func (uc *ReactionUsecase) toggleOff(ctx context.Context, kind entity.ReactionKind, userID string, food *entity.Food) (*usecasecontract.ToggleResult, error) {
	deleted, err := uc.repoFor(kind).DeleteReaction(ctx, userID, food.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete %s: %w", kind, err)
	}

	count := counterValue(food, kind)
	if deleted {
		// Only the request that actually removed the record applies the -1;
		// a concurrent toggle-OFF that found nothing to delete is a no-op.
		count, err = uc.foodRepo.ApplyCounterDelta(ctx, food.ID, kind, -1)
		if err != nil {
			return nil, fmt.Errorf("failed to decrement %s counter: %w", kind, err)
		}
	}
	metrics.ReactionToggles.WithLabelValues(string(kind), "off").Inc()
	return &usecasecontract.ToggleResult{Active: false, Count: count}, nil
}

func (uc *ReactionUsecase) currentCount(ctx context.Context, kind entity.ReactionKind, foodID string) (int64, error) {
	food, err := uc.foodRepo.GetFoodByID(ctx, foodID)
	if err != nil {
		return 0, fmt.Errorf("failed to reread food %s: %w", foodID, err)
	}
	return counterValue(food, kind), nil
}

func counterValue(food *entity.Food, kind entity.ReactionKind) int64 {
	if kind == entity.ReactionKindSave {
		return food.SaveCount
	}
	return food.LikeCount
}

// ListSavedFoods returns the food items the user has an active save on,
// newest save first. Saves pointing at since-removed foods are dropped.
func (uc *ReactionUsecase) ListSavedFoods(ctx context.Context, userID string) ([]entity.Food, error) {
	saves, err := uc.saveRepo.ListReactionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saves for user %s: %w", userID, err)
	}
	if len(saves) == 0 {
		return []entity.Food{}, nil
	}

	foodIDs := make([]string, 0, len(saves))
	for _, s := range saves {
		foodIDs = append(foodIDs, s.FoodID)
	}
	foods, err := uc.foodRepo.ListFoodsByIDs(ctx, foodIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load saved foods: %w", err)
	}

	byID := make(map[string]entity.Food, len(foods))
	for _, f := range foods {
		byID[f.ID] = f
	}

	// Preserve the save ordering, not the lookup ordering.
	ordered := make([]entity.Food, 0, len(saves))
	for _, s := range saves {
		if f, ok := byID[s.FoodID]; ok {
			ordered = append(ordered, f)
		}
	}
	return ordered, nil
}
