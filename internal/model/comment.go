package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment is comment model entity; Author is populated only by reads
// which resolve the author reference
type Comment struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	LeadID      primitive.ObjectID `json:"lead" bson:"lead"`
	AuthorID    primitive.ObjectID `json:"-" bson:"author"`
	CommentText string             `json:"commentText" bson:"commentText"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	Author      *AgentRef          `json:"author,omitempty" bson:"authorRef,omitempty"`
}
