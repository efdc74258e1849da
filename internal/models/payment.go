package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment status values. A failed verification never persists a status;
// the record simply stays at "created" and may be retried.
const (
	PaymentStatusCreated = "created"
	PaymentStatusPaid    = "paid"
)

// Payment tracks one gateway order lifecycle. PaymentID and Signature are
// only set once a callback has been verified, i.e. exactly when Status is "paid".
type Payment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`

	UserID    string `bson:"user_id" json:"userId"`
	OrderID   string `bson:"order_id" json:"orderId"`
	PaymentID string `bson:"payment_id,omitempty" json:"paymentId,omitempty"`
	Signature string `bson:"signature,omitempty" json:"-"`

	Amount   int64  `bson:"amount" json:"amount"` // minor currency units
	Currency string `bson:"currency" json:"currency"`
	PlanType string `bson:"plan_type" json:"planType"`
	Receipt  string `bson:"receipt" json:"receipt"`
	Status   string `bson:"status" json:"status"`
}
