package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Service is a treatment offering with its bookable slot template for a day.
// Price and Slots always serialize: a fully booked service answers with an
// empty slots array, not a missing key.
type Service struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Price float64            `bson:"price" json:"price"`
	Slots []string           `bson:"slots" json:"slots"`
}
