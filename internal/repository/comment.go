package repository

import (
	"context"

	"github.com/anvaya/crm/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const commentsCollection = "comments"

// CommentRepository is data access layer for lead comments
type CommentRepository interface {
	Create(context.Context, *model.Comment) (primitive.ObjectID, error)
	FindByLeadID(context.Context, primitive.ObjectID) ([]*model.Comment, error)
	DeleteByLeadID(context.Context, primitive.ObjectID) (int64, error)
}

type mongoCommentRepository struct {
	comments *mongo.Collection
}

// NewMongoCommentRepository builds mongodb implementation of CommentRepository
func NewMongoCommentRepository(db *mongo.Database) CommentRepository {
	return &mongoCommentRepository{comments: db.Collection(commentsCollection)}
}

func (r *mongoCommentRepository) Create(ctx context.Context, c *model.Comment) (primitive.ObjectID, error) {
	res, err := r.comments.InsertOne(ctx, c)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *mongoCommentRepository) FindByLeadID(ctx context.Context, leadID primitive.ObjectID) ([]*model.Comment, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"lead": leadID}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         agentsCollection,
			"localField":   "author",
			"foreignField": "_id",
			"as":           "authorRef",
		}}},
		bson.D{{Key: "$unwind", Value: bson.M{
			"path":                       "$authorRef",
			"preserveNullAndEmptyArrays": true,
		}}},
	}

	cursor, err := r.comments.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	comments := make([]*model.Comment, 0)
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *mongoCommentRepository) DeleteByLeadID(ctx context.Context, leadID primitive.ObjectID) (int64, error) {
	res, err := r.comments.DeleteMany(ctx, bson.M{"lead": leadID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
