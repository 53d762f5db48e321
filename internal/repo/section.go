package repo

import (
	"context"

	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type SectionFilter struct {
	CategoryID *primitive.ObjectID
	Enabled    *bool
	Search     string
	Page       int
	PerPage    int
}

type SectionRepository interface {
	Create(ctx context.Context, section *domain.Section) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Section, error)
	List(ctx context.Context, filter SectionFilter) ([]domain.Section, int64, error)
	ListEnabledByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]domain.Section, error)
	Update(ctx context.Context, section *domain.Section) error
	SetEnabled(ctx context.Context, id primitive.ObjectID, enabled bool) error
	UpdateOrders(ctx context.Context, orders map[primitive.ObjectID]int) error
	Orders(ctx context.Context, categoryID primitive.ObjectID) ([]int, error)
	IDsByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]primitive.ObjectID, error)
	SlugExists(ctx context.Context, categoryID primitive.ObjectID, slug string, excludeID primitive.ObjectID) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	DeleteByCategory(ctx context.Context, categoryID primitive.ObjectID) error
}
