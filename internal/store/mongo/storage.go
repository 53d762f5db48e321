package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Storage struct {
	client   *mongo.Client
	database *mongo.Database
	config   Config
}

type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

func New(cfg Config) (*Storage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetMaxPoolSize(100).
		SetMinPoolSize(10)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	database := client.Database(cfg.Database)

	return &Storage{
		client:   client,
		database: database,
		config:   cfg,
	}, nil
}

func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Storage) Database() *mongo.Database {
	return s.database
}

func (s *Storage) Client() *mongo.Client {
	return s.client
}

func (s *Storage) StartSession() (mongo.Session, error) {
	return s.client.StartSession()
}

// CreateIndexes bootstraps the collections. The unique slug indexes are
// the final arbiter for slug collisions under concurrent creation; the
// application-level probe in the slug package is advisory only.
func (s *Storage) CreateIndexes(ctx context.Context) error {
	categoryIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "enabled", Value: 1}, {Key: "order", Value: 1}},
		},
	}
	if _, err := s.database.Collection("categories").Indexes().CreateMany(ctx, categoryIndexes); err != nil {
		return fmt.Errorf("failed to create categories indexes: %w", err)
	}

	sectionIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "category_id", Value: 1}, {Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "category_id", Value: 1}, {Key: "enabled", Value: 1}, {Key: "order", Value: 1}},
		},
	}
	if _, err := s.database.Collection("sections").Indexes().CreateMany(ctx, sectionIndexes); err != nil {
		return fmt.Errorf("failed to create sections indexes: %w", err)
	}

	menuItemIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "category_id", Value: 1}, {Key: "slug", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "section_id", Value: 1}, {Key: "enabled", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
	}
	if _, err := s.database.Collection("menu_items").Indexes().CreateMany(ctx, menuItemIndexes); err != nil {
		return fmt.Errorf("failed to create menu_items indexes: %w", err)
	}

	temporaryPriceIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "menu_item_id", Value: 1}, {Key: "start_at", Value: -1}},
		},
	}
	if _, err := s.database.Collection("temporary_prices").Indexes().CreateMany(ctx, temporaryPriceIndexes); err != nil {
		return fmt.Errorf("failed to create temporary_prices indexes: %w", err)
	}

	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	if _, err := s.database.Collection("users").Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("failed to create users indexes: %w", err)
	}

	auditIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "entity_type", Value: 1}, {Key: "entity_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "timestamp", Value: -1}},
		},
	}
	if _, err := s.database.Collection("menu_change_audit").Indexes().CreateMany(ctx, auditIndexes); err != nil {
		return fmt.Errorf("failed to create menu_change_audit indexes: %w", err)
	}

	return nil
}
