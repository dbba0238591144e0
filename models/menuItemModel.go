package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuItem struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Item_id     string             `bson:"item_id" json:"item_id"`
	Cafe_id     string             `bson:"cafe_id" json:"cafe_id" validate:"required"`
	Name        *string            `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Category    *string            `bson:"category" json:"category" validate:"required,min=2,max=50"`
	Price       *float64           `bson:"price" json:"price" validate:"required,gt=0"`
	Description *string            `bson:"description,omitempty" json:"description,omitempty"`
	Image       *string            `bson:"image,omitempty" json:"image,omitempty"`
	Available   bool               `bson:"available" json:"available"`
	Created_at  time.Time          `bson:"created_at" json:"created_at"`
	Updated_at  time.Time          `bson:"updated_at" json:"updated_at"`
}
