package responses

import "go.mongodb.org/mongo-driver/bson/primitive"

// ServiceName is the projected catalog entry for the public listing, which
// carries names only.
type ServiceName struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name string             `bson:"name" json:"name"`
}
