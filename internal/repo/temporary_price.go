package repo

import (
	"context"

	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TemporaryPriceRepository interface {
	Create(ctx context.Context, price *domain.TemporaryPrice) error
	GetByID(ctx context.Context, menuItemID, id primitive.ObjectID) (*domain.TemporaryPrice, error)
	ListByMenuItem(ctx context.Context, menuItemID primitive.ObjectID) ([]domain.TemporaryPrice, error)
	ListByMenuItems(ctx context.Context, menuItemIDs []primitive.ObjectID) ([]domain.TemporaryPrice, error)
	Update(ctx context.Context, price *domain.TemporaryPrice) error
	SetEnabled(ctx context.Context, menuItemID, id primitive.ObjectID, enabled bool) error
	Delete(ctx context.Context, menuItemID, id primitive.ObjectID) error
	DeleteByMenuItems(ctx context.Context, menuItemIDs []primitive.ObjectID) error
}
