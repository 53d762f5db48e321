package repo

import (
	"context"

	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CategoryFilter struct {
	Enabled *bool
	Search  string
	Page    int
	PerPage int
}

type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
	List(ctx context.Context, filter CategoryFilter) ([]domain.Category, int64, error)
	ListEnabled(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	SetEnabled(ctx context.Context, id primitive.ObjectID, enabled bool) error
	UpdateOrders(ctx context.Context, orders map[primitive.ObjectID]int) error
	Orders(ctx context.Context) ([]int, error)
	IDs(ctx context.Context) ([]primitive.ObjectID, error)
	SlugExists(ctx context.Context, slug string, excludeID primitive.ObjectID) (bool, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
