package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuChangeAudit struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventType  string             `bson:"event_type" json:"event_type"`
	EntityType string             `bson:"entity_type" json:"entity_type"`
	EntityID   string             `bson:"entity_id" json:"entity_id"`
	ActorID    string             `bson:"actor_id" json:"actor_id"`
	Detail     string             `bson:"detail,omitempty" json:"detail,omitempty"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
}
