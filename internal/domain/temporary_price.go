package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TemporaryPrice is a promotional price rule for a single menu item,
// valid within [StartAt, EndAt]. Rules are never deleted automatically;
// whether one contributes to the public price is decided lazily at read
// time from its Enabled flag and window.
type TemporaryPrice struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MenuItemID primitive.ObjectID `bson:"menu_item_id" json:"menu_item_id"`
	RuleName   string             `bson:"rule_name" json:"rule_name"`
	Price      int64              `bson:"price" json:"price"`
	StartAt    time.Time          `bson:"start_at" json:"start_at"`
	EndAt      time.Time          `bson:"end_at" json:"end_at"`
	Enabled    bool               `bson:"enabled" json:"enabled"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}
