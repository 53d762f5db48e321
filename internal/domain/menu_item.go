package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MenuItem prices are stored in minor units (cents), never floats.
// SectionID must reference a section that belongs to CategoryID; the
// services enforce that consistency at write time.
type MenuItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CategoryID  primitive.ObjectID `bson:"category_id" json:"category_id"`
	SectionID   primitive.ObjectID `bson:"section_id" json:"section_id"`
	Name        string             `bson:"name" json:"name"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	BasePrice   int64              `bson:"base_price" json:"base_price"`
	ImageURL    string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	Available   bool               `bson:"available" json:"available"`
	Enabled     bool               `bson:"enabled" json:"enabled"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
