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

type SectionRepository struct {
	collection *mongo.Collection
}

func NewSectionRepository(db *mongo.Database) *SectionRepository {
	return &SectionRepository{
		collection: db.Collection("sections"),
	}
}

func (r *SectionRepository) Create(ctx context.Context, section *domain.Section) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if section.ID.IsZero() {
		section.ID = primitive.NewObjectID()
	}
	section.CreatedAt = time.Now()
	section.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, section)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repo.ErrDuplicateSlug
		}
		return fmt.Errorf("failed to create section: %w", err)
	}

	return nil
}

func (r *SectionRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Section, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var section domain.Section
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&section)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repo.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get section: %w", err)
	}

	return &section, nil
}

func (r *SectionRepository) List(ctx context.Context, filter repo.SectionFilter) ([]domain.Section, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.CategoryID != nil {
		query["category_id"] = *filter.CategoryID
	}
	if filter.Enabled != nil {
		query["enabled"] = *filter.Enabled
	}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"description": pattern},
		}
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count sections: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.PerPage)).
		SetLimit(int64(filter.PerPage))

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sections: %w", err)
	}
	defer cursor.Close(ctx)

	var sections []domain.Section
	if err := cursor.All(ctx, &sections); err != nil {
		return nil, 0, fmt.Errorf("failed to decode sections: %w", err)
	}

	return sections, total, nil
}

func (r *SectionRepository) ListEnabledByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]domain.Section, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{"category_id": categoryID, "enabled": true}
	opts := options.Find().
		SetSort(bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list enabled sections: %w", err)
	}
	defer cursor.Close(ctx)

	var sections []domain.Section
	if err := cursor.All(ctx, &sections); err != nil {
		return nil, fmt.Errorf("failed to decode sections: %w", err)
	}

	return sections, nil
}

func (r *SectionRepository) Update(ctx context.Context, section *domain.Section) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	section.UpdatedAt = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": section.ID}, bson.M{"$set": section})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repo.ErrDuplicateSlug
		}
		return fmt.Errorf("failed to update section: %w", err)
	}

	if result.MatchedCount == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *SectionRepository) SetEnabled(ctx context.Context, id primitive.ObjectID, enabled bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"enabled":    enabled,
			"updated_at": time.Now(),
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set section enabled: %w", err)
	}

	if result.MatchedCount == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *SectionRepository) UpdateOrders(ctx context.Context, orders map[primitive.ObjectID]int) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	now := time.Now()
	for id, order := range orders {
		update := bson.M{
			"$set": bson.M{
				"order":      order,
				"updated_at": now,
			},
		}
		result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
		if err != nil {
			return fmt.Errorf("failed to update section order: %w", err)
		}
		if result.MatchedCount == 0 {
			return repo.ErrNotFound
		}
	}

	return nil
}

func (r *SectionRepository) Orders(ctx context.Context, categoryID primitive.ObjectID) ([]int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{"category_id": categoryID}
	cursor, err := r.collection.Find(ctx, query, options.Find().SetProjection(bson.M{"order": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch section orders: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Order int `bson:"order"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode section orders: %w", err)
	}

	orders := make([]int, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, row.Order)
	}

	return orders, nil
}

func (r *SectionRepository) IDsByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{"category_id": categoryID}
	cursor, err := r.collection.Find(ctx, query, options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch section IDs: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode section IDs: %w", err)
	}

	ids := make([]primitive.ObjectID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	return ids, nil
}

func (r *SectionRepository) SlugExists(ctx context.Context, categoryID primitive.ObjectID, slug string, excludeID primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{"category_id": categoryID, "slug": slug}
	if !excludeID.IsZero() {
		query["_id"] = bson.M{"$ne": excludeID}
	}

	count, err := r.collection.CountDocuments(ctx, query, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check section slug: %w", err)
	}

	return count > 0, nil
}

func (r *SectionRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete section: %w", err)
	}

	if result.DeletedCount == 0 {
		return repo.ErrNotFound
	}

	return nil
}

func (r *SectionRepository) DeleteByCategory(ctx context.Context, categoryID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.collection.DeleteMany(ctx, bson.M{"category_id": categoryID})
	if err != nil {
		return fmt.Errorf("failed to delete sections by category: %w", err)
	}

	return nil
}
