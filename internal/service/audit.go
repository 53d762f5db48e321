package service

import (
	"context"
	"fmt"
	"time"

	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/domain"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/repo"
	"go.uber.org/zap"
)

// AuditService persists menu change events consumed from the broker
// and serves the admin change history.
type AuditService struct {
	auditRepo repo.MenuChangeAuditRepository
	logger    *zap.SugaredLogger
}

func NewAuditService(auditRepo repo.MenuChangeAuditRepository, logger *zap.SugaredLogger) *AuditService {
	return &AuditService{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

func (s *AuditService) ProcessMenuChangeEvent(ctx context.Context, event domain.MenuChangeEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	audit := &domain.MenuChangeAudit{
		EventType:  event.EventType,
		EntityType: event.EntityType,
		EntityID:   event.EntityID,
		ActorID:    event.ActorID,
		Detail:     event.Detail,
		Timestamp:  event.Timestamp,
	}

	if err := s.auditRepo.Create(ctx, audit); err != nil {
		return fmt.Errorf("failed to save audit record: %w", err)
	}

	s.logger.Infow("audit record saved",
		"event_type", event.EventType,
		"entity_type", event.EntityType,
		"entity_id", event.EntityID,
	)

	return nil
}

func (s *AuditService) ListByEntity(ctx context.Context, entityType, entityID string, limit int) ([]domain.MenuChangeAudit, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	return s.auditRepo.ListByEntity(ctx, entityType, entityID, limit)
}
