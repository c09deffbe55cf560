package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tag is tag model entity
type Tag struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
