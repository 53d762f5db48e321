package domain

import "time"

// MenuChangeEvent is published to the broker on every admin mutation of
// the catalogue; the audit worker persists it.
type MenuChangeEvent struct {
	EventType  string    `json:"event_type"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	ActorID    string    `json:"actor_id"`
	Detail     string    `json:"detail"`
	Timestamp  time.Time `json:"timestamp"`
}

const (
	EntityCategory       = "category"
	EntitySection        = "section"
	EntityMenuItem       = "menu_item"
	EntityTemporaryPrice = "temporary_price"
)

const (
	EventCreated             = "created"
	EventUpdated             = "updated"
	EventDeleted             = "deleted"
	EventReordered           = "reordered"
	EventEnabledChanged      = "enabled_changed"
	EventAvailabilityChanged = "availability_changed"
)
