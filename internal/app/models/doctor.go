package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Doctor is an admin-managed roster entry. Extra holds whatever fields the
// admin form sent beyond the modeled ones, stored inline with the document.
type Doctor struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string                 `bson:"name" json:"name"`
	Email     string                 `bson:"email" json:"email"`
	Specialty string                 `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Image     string                 `bson:"img,omitempty" json:"img,omitempty"`
	Extra     map[string]interface{} `bson:",inline" json:"-"`
}
