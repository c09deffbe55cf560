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

const tagsCollection = "tags"

// ErrDuplicateKey is raised on insert violating a unique index
var ErrDuplicateKey = errors.New("duplicate key")

// TagRepository is data access layer for the tag vocabulary
type TagRepository interface {
	Create(context.Context, *model.Tag) (primitive.ObjectID, error)
	FindByName(context.Context, string) (*model.Tag, error)
	FindAll(context.Context) ([]*model.Tag, error)
}

type mongoTagRepository struct {
	tags *mongo.Collection
}

// NewMongoTagRepository builds mongodb implementation of TagRepository
func NewMongoTagRepository(db *mongo.Database) TagRepository {
	return &mongoTagRepository{tags: db.Collection(tagsCollection)}
}

func (r *mongoTagRepository) Create(ctx context.Context, t *model.Tag) (primitive.ObjectID, error) {
	res, err := r.tags.InsertOne(ctx, t)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, ErrDuplicateKey
		}
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *mongoTagRepository) FindByName(ctx context.Context, name string) (*model.Tag, error) {
	var t model.Tag
	if err := r.tags.FindOne(ctx, bson.M{"name": name}).Decode(&t); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *mongoTagRepository) FindAll(ctx context.Context) ([]*model.Tag, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.tags.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}

	tags := make([]*model.Tag, 0)
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}
