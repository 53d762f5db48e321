package repo

import (
	"context"

	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/domain"
)

type MenuChangeAuditRepository interface {
	Create(ctx context.Context, audit *domain.MenuChangeAudit) error
	ListByEntity(ctx context.Context, entityType, entityID string, limit int) ([]domain.MenuChangeAudit, error)
}
