package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking references its Service by display name through Treatment, not by id.
// That is how the stored data relates collections, so the field stays a plain string.
type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Treatment     string             `bson:"treatment" json:"treatment"`
	Date          string             `bson:"date" json:"date"`
	Slot          string             `bson:"slot" json:"slot"`
	Patient       string             `bson:"patient" json:"patient"`
	PatientName   string             `bson:"patientName,omitempty" json:"patientName,omitempty"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Price         float64            `bson:"price,omitempty" json:"price,omitempty"`
	Paid          bool               `bson:"paid,omitempty" json:"paid,omitempty"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
}
