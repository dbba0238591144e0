package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Plan is a subscription tier provisioned by the super admin. Limits are
// enforced at table and menu item creation time.
type Plan struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Plan_id        string             `bson:"plan_id" json:"plan_id"`
	Name           *string            `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Price          *float64           `bson:"price" json:"price" validate:"required,gte=0"`
	Duration_days  *int               `bson:"duration_days" json:"duration_days" validate:"required,gt=0"`
	Max_tables     *int               `bson:"max_tables" json:"max_tables" validate:"required,gt=0"`
	Max_menu_items *int               `bson:"max_menu_items" json:"max_menu_items" validate:"required,gt=0"`
	Active         bool               `bson:"active" json:"active"`
	Created_at     time.Time          `bson:"created_at" json:"created_at"`
	Updated_at     time.Time          `bson:"updated_at" json:"updated_at"`
}
