package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Payment is an append-only log entry. The client payload is stored as submitted;
// Extra keeps whatever fields the client sent beyond the known ones.
type Payment struct {
	ID            primitive.ObjectID     `bson:"_id,omitempty" json:"_id,omitempty"`
	TransactionID string                 `bson:"transactionId" json:"transactionId"`
	BookingID     string                 `bson:"bookingId,omitempty" json:"bookingId,omitempty"`
	Patient       string                 `bson:"patient,omitempty" json:"patient,omitempty"`
	Price         float64                `bson:"price,omitempty" json:"price,omitempty"`
	Extra         map[string]interface{} `bson:",inline" json:"-"`
}
