package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment statuses. Status only ever moves Pending -> Confirmed.
const (
	PaymentPending   = "Pending"
	PaymentConfirmed = "Confirmed"
)

// Payment represents a recorded charge for a camp registration.
// It is written after the external provider accepted the charge.
type Payment struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Amount        float64            `bson:"amount" json:"amount"`
	CampName      string             `bson:"campName,omitempty" json:"campName,omitempty"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	Status        string             `bson:"status" json:"status"`
	Date          time.Time          `bson:"date,omitempty" json:"date,omitempty"`
}
