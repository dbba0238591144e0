package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Table belongs to one cafe. Slug is the random token embedded in the
// printed QR code; it is the customer's only credential for the public
// ordering endpoints.
type Table struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Table_id     string             `bson:"table_id" json:"table_id"`
	Cafe_id      string             `bson:"cafe_id" json:"cafe_id" validate:"required"`
	Table_number *int               `bson:"table_number" json:"table_number" validate:"required,gt=0"`
	Seats        *int               `bson:"seats" json:"seats" validate:"required,gt=0"`
	Slug         string             `bson:"slug" json:"slug"`
	Created_at   time.Time          `bson:"created_at" json:"created_at"`
	Updated_at   time.Time          `bson:"updated_at" json:"updated_at"`
}
