package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Cafe struct {
	ID                      primitive.ObjectID `bson:"_id,omitempty"`
	Cafe_id                 string             `bson:"cafe_id" json:"cafe_id"`
	Name                    *string            `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Address                 *string            `bson:"address" json:"address" validate:"required"`
	Phone                   *string            `bson:"phone" json:"phone" validate:"required"`
	Plan_id                 *string            `bson:"plan_id" json:"plan_id" validate:"required"`
	Subscription_expires_at time.Time          `bson:"subscription_expires_at" json:"subscription_expires_at"`
	Active                  bool               `bson:"active" json:"active"`
	Created_at              time.Time          `bson:"created_at" json:"created_at"`
	Updated_at              time.Time          `bson:"updated_at" json:"updated_at"`
}
