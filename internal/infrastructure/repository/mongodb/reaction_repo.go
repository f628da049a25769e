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

// ReactionRepository is the MongoDB implementation of IReactionRepository for
// one reaction relation. Likes and saves are separate collections sharing this
// implementation; each carries a unique (user_id, food_id) index that is the
// sole concurrency-safety mechanism for toggles.
type ReactionRepository struct {
	collection *mongo.Collection
}

// NewLikeRepository returns the reaction repository backed by the food_likes collection.
func NewLikeRepository(db *mongo.Database) *ReactionRepository {
	return &ReactionRepository{collection: db.Collection("food_likes")}
}

// NewSaveRepository returns the reaction repository backed by the food_saves collection.
func NewSaveRepository(db *mongo.Database) *ReactionRepository {
	return &ReactionRepository{collection: db.Collection("food_saves")}
}

var _ contract.IReactionRepository = (*ReactionRepository)(nil)

// EnsureIndexes creates the unique (user_id, food_id) index. Called once at
// startup; a concurrent duplicate insert must fail at the storage layer, not
// be filtered by application logic.
func (r *ReactionRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "food_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create unique reaction index on %s: %w", r.collection.Name(), err)
	}
	return nil
}

// CreateReaction inserts a reaction record. A unique-index violation is
// reported as contract.ErrDuplicateReaction so the caller can recover from the
// concurrent toggle-ON race.
func (r *ReactionRepository) CreateReaction(ctx context.Context, reaction *entity.Reaction) error {
	_, err := r.collection.InsertOne(ctx, reaction)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return contract.ErrDuplicateReaction
		}
		return fmt.Errorf("failed to create reaction: %w", err)
	}
	return nil
}

// DeleteReaction removes the reaction for (userID, foodID). Deleting a
// reaction that is already gone is a no-op reported through the boolean.
func (r *ReactionRepository) DeleteReaction(ctx context.Context, userID, foodID string) (bool, error) {
	res, err := r.collection.DeleteOne(ctx, bson.M{"user_id": userID, "food_id": foodID})
	if err != nil {
		return false, fmt.Errorf("failed to delete reaction: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// GetReaction retrieves the reaction a user holds on a food item, if any.
func (r *ReactionRepository) GetReaction(ctx context.Context, userID, foodID string) (*entity.Reaction, error) {
	var reaction entity.Reaction
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID, "food_id": foodID}).Decode(&reaction)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrReactionNotFound
		}
		return nil, fmt.Errorf("failed to retrieve reaction: %w", err)
	}
	return &reaction, nil
}

// ListReactionsByUser returns a user's reactions, newest first.
func (r *ReactionRepository) ListReactionsByUser(ctx context.Context, userID string) ([]entity.Reaction, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list reactions: %w", err)
	}
	defer cursor.Close(ctx)

	reactions := []entity.Reaction{}
	if err := cursor.All(ctx, &reactions); err != nil {
		return nil, fmt.Errorf("failed to decode reactions: %w", err)
	}
	return reactions, nil
}

// CountReactionsByFood counts active reactions on a food item. Used to audit
// counter drift, not on the toggle path.
func (r *ReactionRepository) CountReactionsByFood(ctx context.Context, foodID string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"food_id": foodID})
	if err != nil {
		return 0, fmt.Errorf("failed to count reactions: %w", err)
	}
	return count, nil
}
