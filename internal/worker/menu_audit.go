package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/domain"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/queue"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/service"
	"go.uber.org/zap"
)

type MenuAuditWorker struct {
	auditService *service.AuditService
	broker       queue.Broker
	logger       *zap.SugaredLogger
	ctx          context.Context
	cancel       context.CancelFunc
}

func NewMenuAuditWorker(
	auditService *service.AuditService,
	broker queue.Broker,
	logger *zap.SugaredLogger,
) *MenuAuditWorker {
	ctx, cancel := context.WithCancel(context.Background())

	return &MenuAuditWorker{
		auditService: auditService,
		broker:       broker,
		logger:       logger,
		ctx:          ctx,
		cancel:       cancel,
	}
}

func (w *MenuAuditWorker) Start() error {
	w.logger.Info("starting menu audit worker")

	return w.broker.Subscribe(w.ctx, queue.QueueMenuChanges, w.handleMessage)
}

func (w *MenuAuditWorker) Stop() {
	w.logger.Info("stopping menu audit worker")
	w.cancel()
}

func (w *MenuAuditWorker) handleMessage(ctx context.Context, message []byte) error {
	var event domain.MenuChangeEvent
	if err := json.Unmarshal(message, &event); err != nil {
		w.logger.Errorw("failed to unmarshal event", "error", err)
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	w.logger.Infow("processing menu change event",
		"entity_type", event.EntityType,
		"entity_id", event.EntityID,
		"event_type", event.EventType,
	)

	if err := w.auditService.ProcessMenuChangeEvent(ctx, event); err != nil {
		w.logger.Errorw("failed to process menu change event", "entity_id", event.EntityID, "error", err)
		return err
	}

	return nil
}
