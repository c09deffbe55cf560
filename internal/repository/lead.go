package repository

import (
	"context"
	"errors"
	"time"

	"github.com/anvaya/crm/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const leadsCollection = "leads"

// LeadRepository is data access layer for leads, including the
// read-only report aggregations over the leads collection
type LeadRepository interface {
	Create(context.Context, *model.Lead) (primitive.ObjectID, error)
	FindByID(context.Context, primitive.ObjectID) (*model.Lead, error)
	FindAll(context.Context, model.LeadFilter) ([]*model.Lead, error)
	Update(context.Context, *model.Lead) error
	DeleteByID(context.Context, primitive.ObjectID) (bool, error)
	FindClosedSince(context.Context, time.Time) ([]*model.Lead, error)
	CountByStatus(context.Context) ([]model.StatusCount, error)
	ClosedByAgent(context.Context) ([]model.AgentClosure, error)
}

type mongoLeadRepository struct {
	leads *mongo.Collection
}

// NewMongoLeadRepository builds mongodb implementation of LeadRepository
func NewMongoLeadRepository(db *mongo.Database) LeadRepository {
	return &mongoLeadRepository{leads: db.Collection(leadsCollection)}
}

func (r *mongoLeadRepository) Create(ctx context.Context, l *model.Lead) (primitive.ObjectID, error) {
	res, err := r.leads.InsertOne(ctx, l)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *mongoLeadRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Lead, error) {
	var l model.Lead
	if err := r.leads.FindOne(ctx, bson.M{"_id": id}).Decode(&l); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *mongoLeadRepository) FindAll(ctx context.Context, filter model.LeadFilter) ([]*model.Lead, error) {
	match := bson.M{}
	if filter.SalesAgentID != nil {
		match["salesAgent"] = *filter.SalesAgentID
	}
	if filter.Status != "" {
		match["status"] = filter.Status
	}
	if filter.Source != "" {
		match["source"] = filter.Source
	}
	if len(filter.Tags) > 0 {
		match["tags"] = bson.M{"$in": filter.Tags}
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
	}
	pipeline = append(pipeline, agentLookupStages()...)

	return r.aggregateLeads(ctx, pipeline)
}

func (r *mongoLeadRepository) Update(ctx context.Context, l *model.Lead) error {
	update := bson.M{"$set": bson.M{
		"name":        l.Name,
		"source":      l.Source,
		"salesAgent":  l.SalesAgentID,
		"status":      l.Status,
		"tags":        l.Tags,
		"timeToClose": l.TimeToClose,
		"priority":    l.Priority,
		"closedAt":    l.ClosedAt,
	}}
	_, err := r.leads.UpdateOne(ctx, bson.M{"_id": l.ID}, update)
	return err
}

func (r *mongoLeadRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) (bool, error) {
	res, err := r.leads.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *mongoLeadRepository) FindClosedSince(ctx context.Context, since time.Time) ([]*model.Lead, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{
			"status":   model.StatusClosed,
			"closedAt": bson.M{"$gte": since},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "closedAt", Value: -1}}}},
	}
	pipeline = append(pipeline, agentLookupStages()...)

	return r.aggregateLeads(ctx, pipeline)
}

func (r *mongoLeadRepository) CountByStatus(ctx context.Context) ([]model.StatusCount, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"status": bson.M{"$ne": model.StatusClosed}}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}

	cursor, err := r.leads.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	counts := make([]model.StatusCount, 0)
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *mongoLeadRepository) ClosedByAgent(ctx context.Context) ([]model.AgentClosure, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"status": model.StatusClosed}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$salesAgent",
			"count": bson.M{"$sum": 1},
			"leads": bson.M{"$push": bson.M{"name": "$name", "closedAt": "$closedAt"}},
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         agentsCollection,
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "agentDetails",
		}}},
		// leads whose agent reference no longer resolves are dropped
		bson.D{{Key: "$unwind", Value: "$agentDetails"}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id": 0,
			"salesAgent": bson.M{
				"_id":   "$agentDetails._id",
				"name":  "$agentDetails.name",
				"email": "$agentDetails.email",
			},
			"closedLeadsCount": "$count",
			"leads":            1,
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "closedLeadsCount", Value: -1}}}},
	}

	cursor, err := r.leads.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	closures := make([]model.AgentClosure, 0)
	if err := cursor.All(ctx, &closures); err != nil {
		return nil, err
	}
	return closures, nil
}

func (r *mongoLeadRepository) aggregateLeads(ctx context.Context, pipeline mongo.Pipeline) ([]*model.Lead, error) {
	cursor, err := r.leads.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	leads := make([]*model.Lead, 0)
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

// agentLookupStages resolves the salesAgent reference into agent field,
// keeping leads whose reference does not resolve
func agentLookupStages() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.M{
			"from":         agentsCollection,
			"localField":   "salesAgent",
			"foreignField": "_id",
			"as":           "agent",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$agent",
			"preserveNullAndEmptyArrays": true,
		}}},
	}
}
