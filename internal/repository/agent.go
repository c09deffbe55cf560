package repository

import (
	"context"
	"errors"

	"github.com/anvaya/crm/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const agentsCollection = "salesagents"

// AgentRepository is data access layer for sales agents
type AgentRepository interface {
	Create(context.Context, *model.SalesAgent) (primitive.ObjectID, error)
	FindByID(context.Context, primitive.ObjectID) (*model.SalesAgent, error)
	FindByEmail(context.Context, string) (*model.SalesAgent, error)
	FindAll(context.Context) ([]*model.SalesAgent, error)
}

type mongoAgentRepository struct {
	agents *mongo.Collection
}

// NewMongoAgentRepository builds mongodb implementation of AgentRepository
func NewMongoAgentRepository(db *mongo.Database) AgentRepository {
	return &mongoAgentRepository{agents: db.Collection(agentsCollection)}
}

func (r *mongoAgentRepository) Create(ctx context.Context, a *model.SalesAgent) (primitive.ObjectID, error) {
	res, err := r.agents.InsertOne(ctx, a)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, ErrDuplicateKey
		}
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *mongoAgentRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.SalesAgent, error) {
	var a model.SalesAgent
	if err := r.agents.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *mongoAgentRepository) FindByEmail(ctx context.Context, email string) (*model.SalesAgent, error) {
	var a model.SalesAgent
	if err := r.agents.FindOne(ctx, bson.M{"email": email}).Decode(&a); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *mongoAgentRepository) FindAll(ctx context.Context) ([]*model.SalesAgent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.agents.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	agents := make([]*model.SalesAgent, 0)
	if err := cursor.All(ctx, &agents); err != nil {
		return nil, err
	}
	return agents, nil
}
