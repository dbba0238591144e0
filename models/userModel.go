package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Staff roles. SUPER_ADMIN is platform-wide; every other role is scoped to
// one cafe via Cafe_id.
const (
	RoleSuperAdmin = "SUPER_ADMIN"
	RoleAdmin      = "ADMIN"
	RoleManager    = "MANAGER"
	RoleKitchen    = "KITCHEN"
	RoleWaiter     = "WAITER"
)

type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	User_id       string             `bson:"user_id" json:"user_id"`
	First_name    *string            `json:"first_name" validate:"required,min=2,max=100"`
	Last_name     *string            `json:"last_name" validate:"required,min=2,max=100"`
	Email         *string            `json:"email" validate:"required,email"`
	Phone         *string            `json:"phone" validate:"required"`
	Password      *string            `json:"password" validate:"required,min=6"`
	Role          string             `bson:"role" json:"role" validate:"required,eq=SUPER_ADMIN|eq=ADMIN|eq=MANAGER|eq=KITCHEN|eq=WAITER"`
	Cafe_id       string             `bson:"cafe_id" json:"cafe_id"`
	Token         *string            `json:"token"`
	Refresh_Token *string            `json:"refresh_token"`
	Created_at    time.Time          `json:"created_at"`
	Updated_at    time.Time          `json:"updated_at"`
}
