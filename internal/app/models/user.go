package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is keyed by email. Role is absent for everyone but admins.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email string             `bson:"email" json:"email"`
	Name  string             `bson:"name,omitempty" json:"name,omitempty"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}
