package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/contenthub/contenthub-server/internal/models"
)

// MongoRepo implements a MongoDB-backed repository for blog posts.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Insert(ctx context.Context, p *models.BlogPost) (primitive.ObjectID, error) {
	res, err := m.col.InsertOne(ctx, p)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert blog: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert blog: unexpected id type %T", res.InsertedID)
	}
	return id, nil
}

func (m *MongoRepo) Get(ctx context.Context, id primitive.ObjectID) (*models.BlogPost, error) {
	var p models.BlogPost
	if err := m.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// listQuery builds the find filter and options for f.
func listQuery(f Filter) (bson.M, *options.FindOptions) {
	query := bson.M{}
	if f.Search != "" {
		query["title"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
	}
	if f.Category != "" {
		query["category"] = f.Category
	}
	opts := options.Find()
	switch f.Sort {
	case SortAsc:
		opts.SetSort(bson.D{{Key: "deadline", Value: 1}})
	case SortDesc:
		opts.SetSort(bson.D{{Key: "deadline", Value: -1}})
	}
	return query, opts
}

func (m *MongoRepo) List(ctx context.Context, f Filter) ([]*models.BlogPost, error) {
	query, opts := listQuery(f)
	return m.find(ctx, query, opts)
}

func (m *MongoRepo) Latest(ctx context.Context, n int) ([]*models.BlogPost, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(int64(n))
	return m.find(ctx, bson.M{}, opts)
}

func (m *MongoRepo) find(ctx context.Context, query bson.M, opts *options.FindOptions) ([]*models.BlogPost, error) {
	cur, err := m.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*models.BlogPost{}
	for cur.Next(ctx) {
		var p models.BlogPost
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, cur.Err()
}
