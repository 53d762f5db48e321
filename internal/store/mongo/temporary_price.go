package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/domain"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/repo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TemporaryPriceRepository struct {
	collection *mongo.Collection
}

func NewTemporaryPriceRepository(db *mongo.Database) *TemporaryPriceRepository {
	return &TemporaryPriceRepository{
		collection: db.Collection("temporary_prices"),
	}
}

func (r *TemporaryPriceRepository) Create(ctx context.Context, price *domain.TemporaryPrice) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if price.ID.IsZero() {
		price.ID = primitive.NewObjectID()
	}
	price.CreatedAt = time.Now()
	price.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, price)
	if err != nil {
		return fmt.Errorf("failed to create temporary price: %w", err)
	}

	return nil
}

func (r *TemporaryPriceRepository) GetByID(ctx context.Context, menuItemID, id primitive.ObjectID) (*domain.TemporaryPrice, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var price domain.TemporaryPrice
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "menu_item_id": menuItemID}).Decode(&price)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repo.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get temporary price: %w", err)
	}

	return &price, nil
}

func (r *TemporaryPriceRepository) ListByMenuItem(ctx context.Context, menuItemID primitive.ObjectID) ([]domain.TemporaryPrice, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"menu_item_id": menuItemID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list temporary prices: %w", err)
	}
	defer cursor.Close(ctx)

	var prices []domain.TemporaryPrice
	if err := cursor.All(ctx, &prices); err != nil {
		return nil, fmt.Errorf("failed to decode temporary prices: %w", err)
	}

	return prices, nil
}

// ListByMenuItems fetches the rules of many items in one round trip; the
// public read model uses it to price a whole category.
func (r *TemporaryPriceRepository) ListByMenuItems(ctx context.Context, menuItemIDs []primitive.ObjectID) ([]domain.TemporaryPrice, error) {
	if len(menuItemIDs) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{"menu_item_id": bson.M{"$in": menuItemIDs}})
	if err != nil {
		return nil, fmt.Errorf("failed to list temporary prices: %w", err)
	}
	defer cursor.Close(ctx)

	var prices []domain.TemporaryPrice
	if err := cursor.All(ctx, &prices); err != nil {
		return nil, fmt.Errorf("failed to decode temporary prices: %w", err)
	}

	return prices, nil
}

func (r *TemporaryPriceRepository) Update(ctx context.Context, price *domain.TemporaryPrice) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	price.UpdatedAt = time.Now()

	filter := bson.M{"_id": price.ID, "menu_item_id": price.MenuItemID}
	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": price})
	if err != nil {
		return fmt.Errorf("failed to update temporary price: %w", err)
	}

	if result.MatchedCount == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *TemporaryPriceRepository) SetEnabled(ctx context.Context, menuItemID, id primitive.ObjectID, enabled bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"enabled":    enabled,
			"updated_at": time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id, "menu_item_id": menuItemID}, update)
	if err != nil {
		return fmt.Errorf("failed to set temporary price enabled: %w", err)
	}

	if result.MatchedCount == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *TemporaryPriceRepository) Delete(ctx context.Context, menuItemID, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id, "menu_item_id": menuItemID})
	if err != nil {
		return fmt.Errorf("failed to delete temporary price: %w", err)
	}

	if result.DeletedCount == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *TemporaryPriceRepository) DeleteByMenuItems(ctx context.Context, menuItemIDs []primitive.ObjectID) error {
	if len(menuItemIDs) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.collection.DeleteMany(ctx, bson.M{"menu_item_id": bson.M{"$in": menuItemIDs}})
	if err != nil {
		return fmt.Errorf("failed to delete temporary prices: %w", err)
	}

	return nil
}
