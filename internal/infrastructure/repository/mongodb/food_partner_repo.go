package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/mihretgelan/TasteReel/internal/domain/contract"
	"github.com/mihretgelan/TasteReel/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// FoodPartnerRepository represents the MongoDB implementation of the
// IFoodPartnerRepository interface.
type FoodPartnerRepository struct {
	collection *mongo.Collection
}

// NewFoodPartnerRepository creates and returns a new FoodPartnerRepository instance.
func NewFoodPartnerRepository(db *mongo.Database) *FoodPartnerRepository {
	return &FoodPartnerRepository{collection: db.Collection("food_partners")}
}

var _ contract.IFoodPartnerRepository = (*FoodPartnerRepository)(nil)

func (r *FoodPartnerRepository) CreateFoodPartner(ctx context.Context, partner *entity.FoodPartner) error {
	if _, err := r.collection.InsertOne(ctx, partner); err != nil {
		return fmt.Errorf("failed to create food partner: %w", err)
	}
	return nil
}

func (r *FoodPartnerRepository) GetFoodPartnerByID(ctx context.Context, id string) (*entity.FoodPartner, error) {
	var partner entity.FoodPartner
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&partner)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrPartnerNotFound
		}
		return nil, fmt.Errorf("failed to retrieve food partner: %w", err)
	}
	return &partner, nil
}

func (r *FoodPartnerRepository) GetFoodPartnerByEmail(ctx context.Context, email string) (*entity.FoodPartner, error) {
	var partner entity.FoodPartner
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&partner)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, contract.ErrPartnerNotFound
		}
		return nil, fmt.Errorf("failed to retrieve food partner by email: %w", err)
	}
	return &partner, nil
}
