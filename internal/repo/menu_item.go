package repo

import (
	"context"

	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuItemFilter struct {
	CategoryID *primitive.ObjectID
	SectionID  *primitive.ObjectID
	Available  *bool
	Enabled    *bool
	Search     string
	Page       int
	PerPage    int
}

type MenuItemRepository interface {
	Create(ctx context.Context, item *domain.MenuItem) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.MenuItem, error)
	List(ctx context.Context, filter MenuItemFilter) ([]domain.MenuItem, int64, error)
	ListEnabledByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]domain.MenuItem, error)
	Update(ctx context.Context, item *domain.MenuItem) error
	SetAvailable(ctx context.Context, id primitive.ObjectID, available bool) error
	SetEnabled(ctx context.Context, id primitive.ObjectID, enabled bool) error
	IDsByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]primitive.ObjectID, error)
	IDsBySection(ctx context.Context, sectionID primitive.ObjectID) ([]primitive.ObjectID, error)
	SlugExists(ctx context.Context, categoryID primitive.ObjectID, slug string, excludeID primitive.ObjectID) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) error
}
