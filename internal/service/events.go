package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/domain"
	"github.com/poolsandpoolproject-dev/poolsandpool-api/internal/queue"
	"go.uber.org/zap"
)

// changePublisher emits catalogue mutation events for the audit worker.
// Publishing is best effort: a broker outage must not fail the admin
// write that already committed.
type changePublisher struct {
	broker queue.Broker
	logger *zap.SugaredLogger
}

func (p *changePublisher) publish(ctx context.Context, eventType, entityType, entityID, actorID, detail string) {
	event := domain.MenuChangeEvent{
		EventType:  eventType,
		EntityType: entityType,
		EntityID:   entityID,
		ActorID:    actorID,
		Detail:     detail,
		Timestamp:  time.Now(),
	}

	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Errorw("failed to marshal menu change event", "entity_id", entityID, "error", err)
		return
	}

	if err := p.broker.Publish(ctx, queue.QueueMenuChanges, eventBytes); err != nil {
		p.logger.Warnw("failed to publish menu change event",
			"event_type", eventType, "entity_type", entityType, "entity_id", entityID, "error", err)
	}
}
