package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/mihretgelan/TasteReel/internal/domain/contract"
	"github.com/mihretgelan/TasteReel/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FoodRepository represents the MongoDB implementation of the IFoodRepository
// interface. The like/save counters live denormalized on each food document so
// the feed path stays a single-collection read.
type FoodRepository struct {
	collection *mongo.Collection
}

// NewFoodRepository creates and returns a new FoodRepository instance.
func NewFoodRepository(db *mongo.Database) *FoodRepository {
	return &FoodRepository{collection: db.Collection("foods")}
}

var _ contract.IFoodRepository = (*FoodRepository)(nil)

// CreateFood inserts a new food listing.
func (r *FoodRepository) CreateFood(ctx context.Context, food *entity.Food) error {
	if _, err := r.collection.InsertOne(ctx, food); err != nil {
		return fmt.Errorf("failed to create food item: %w", err)
	}
	return nil
}

// GetFoodByID retrieves a single food item by its unique id.
func (r *FoodRepository) GetFoodByID(ctx context.Context, foodID string) (*entity.Food, error) {
	var food entity.Food
	err := r.collection.FindOne(ctx, bson.M{"_id": foodID}).Decode(&food)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrFoodNotFound
		}
		return nil, fmt.Errorf("failed to retrieve food item: %w", err)
	}
	return &food, nil
}

// ListFoods returns every food item, newest first.
func (r *FoodRepository) ListFoods(ctx context.Context) ([]entity.Food, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list food items: %w", err)
	}
	defer cursor.Close(ctx)

	foods := []entity.Food{}
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, fmt.Errorf("failed to decode food items: %w", err)
	}
	return foods, nil
}

// ListFoodsByPartner returns a partner's food items, newest first.
func (r *FoodRepository) ListFoodsByPartner(ctx context.Context, partnerID string) ([]entity.Food, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"food_partner_id": partnerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list food items for partner: %w", err)
	}
	defer cursor.Close(ctx)

	foods := []entity.Food{}
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, fmt.Errorf("failed to decode food items: %w", err)
	}
	return foods, nil
}

// ListFoodsByIDs returns the food items matching the given ids. Missing ids
// are silently absent from the result.
func (r *FoodRepository) ListFoodsByIDs(ctx context.Context, foodIDs []string) ([]entity.Food, error) {
	if len(foodIDs) == 0 {
		return []entity.Food{}, nil
	}
	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": foodIDs}})
	if err != nil {
		return nil, fmt.Errorf("failed to list food items by ids: %w", err)
	}
	defer cursor.Close(ctx)

	foods := []entity.Food{}
	if err := cursor.All(ctx, &foods); err != nil {
		return nil, fmt.Errorf("failed to decode food items: %w", err)
	}
	return foods, nil
}

// ApplyCounterDelta atomically adds delta to the counter for the given
// reaction kind and returns the stored result. The update runs as an
// aggregation pipeline so the floor at zero is applied inside the same
// document write; the stored counter can never go negative even if a stray
// decrement arrives while the counter is already at zero.
func (r *FoodRepository) ApplyCounterDelta(ctx context.Context, foodID string, kind entity.ReactionKind, delta int64) (int64, error) {
	field := kind.CounterField()

	update := bson.A{
		bson.M{"$set": bson.M{
			field: bson.M{"$max": bson.A{
				0,
				bson.M{"$add": bson.A{
					bson.M{"$ifNull": bson.A{"$" + field, 0}},
					delta,
				}},
			}},
		}},
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{field: 1})

	var updated entity.Food
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": foodID}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, contract.ErrFoodNotFound
		}
		return 0, fmt.Errorf("failed to apply %s counter delta: %w", kind, err)
	}

	if kind == entity.ReactionKindSave {
		return updated.SaveCount, nil
	}
	return updated.LikeCount, nil
}
