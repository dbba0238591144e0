package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order lifecycle statuses. PAID and CANCELLED are terminal.
type Status string

const (
	StatusNew        Status = "NEW"
	StatusAccepted   Status = "ACCEPTED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusDelivered  Status = "DELIVERED"
	StatusPaid       Status = "PAID"
	StatusCancelled  Status = "CANCELLED"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "CASH"
	PaymentCard PaymentMethod = "CARD"
	PaymentUPI  PaymentMethod = "UPI"
)

type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Order_id     string             `bson:"order_id" json:"order_id"`
	Cafe_id      string             `bson:"cafe_id" json:"cafe_id" validate:"required"`
	Table_id     string             `bson:"table_id" json:"table_id" validate:"required"`
	Status       Status             `bson:"status" json:"status"`
	Items        []OrderLine        `bson:"items" json:"items" validate:"required,min=1,dive"`
	Subtotal     float64            `bson:"subtotal" json:"subtotal"`
	Tax          float64            `bson:"tax" json:"tax"`
	Total        float64            `bson:"total" json:"total"`
	Paid_amount  float64            `bson:"paid_amount" json:"paid_amount"`
	Payments     []Payment          `bson:"payments" json:"payments"`
	Accepted_by  *string            `bson:"accepted_by,omitempty" json:"accepted_by,omitempty"`
	Completed_by *string            `bson:"completed_by,omitempty" json:"completed_by,omitempty"`
	Delivered_by *string            `bson:"delivered_by,omitempty" json:"delivered_by,omitempty"`
	Created_at   time.Time          `bson:"created_at" json:"created_at"`
	Updated_at   time.Time          `bson:"updated_at" json:"updated_at"`
}

// OrderLine snapshots the menu item name and price at order time so later
// menu edits do not change historical orders.
type OrderLine struct {
	Item_id  string  `bson:"item_id" json:"item_id" validate:"required"`
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Quantity int     `bson:"quantity" json:"quantity" validate:"required,gt=0"`
	Note     *string `bson:"note,omitempty" json:"note,omitempty"`
}

// Payment records are append-only; never edited or removed.
type Payment struct {
	Method      PaymentMethod `bson:"method" json:"method" validate:"required,eq=CASH|eq=CARD|eq=UPI"`
	Amount      float64       `bson:"amount" json:"amount" validate:"required,gt=0"`
	Reference   *string       `bson:"reference,omitempty" json:"reference,omitempty"`
	Recorded_at time.Time     `bson:"recorded_at" json:"recorded_at"`
}
