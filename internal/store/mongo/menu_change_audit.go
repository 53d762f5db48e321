package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MenuChangeAuditRepository struct {
	collection *mongo.Collection
}

func NewMenuChangeAuditRepository(db *mongo.Database) *MenuChangeAuditRepository {
	return &MenuChangeAuditRepository{
		collection: db.Collection("menu_change_audit"),
	}
}

func (r *MenuChangeAuditRepository) Create(ctx context.Context, audit *domain.MenuChangeAudit) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if audit.ID.IsZero() {
		audit.ID = primitive.NewObjectID()
	}
	if audit.Timestamp.IsZero() {
		audit.Timestamp = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, audit)
	if err != nil {
		return fmt.Errorf("failed to create menu change audit: %w", err)
	}

	return nil
}

func (r *MenuChangeAuditRepository) ListByEntity(ctx context.Context, entityType, entityID string, limit int) ([]domain.MenuChangeAudit, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"entity_type": entityType, "entity_id": entityID}
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu change audits: %w", err)
	}
	defer cursor.Close(ctx)

	var audits []domain.MenuChangeAudit
	if err := cursor.All(ctx, &audits); err != nil {
		return nil, fmt.Errorf("failed to decode menu change audits: %w", err)
	}

	return audits, nil
}
