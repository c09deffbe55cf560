package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SalesAgent is sales agent model entity
type SalesAgent struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// AgentRef is sales agent reference resolved into a lead or comment
type AgentRef struct {
	ID    primitive.ObjectID `json:"id" bson:"_id"`
	Name  string             `json:"name" bson:"name"`
	Email string             `json:"email" bson:"email"`
}
