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

// MongoRepo stores wishlist entries in MongoDB. Uniqueness of
// (reviewId, userEmail) is enforced by a unique compound index.
type MongoRepo struct {
	col *mongo.Collection
}

// NewMongoRepo ensures the uniqueness index exists and returns the repository.
// Index creation fails if the collection already holds duplicates.
func NewMongoRepo(ctx context.Context, col *mongo.Collection) (*MongoRepo, error) {
	_, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "reviewId", Value: 1}, {Key: "userEmail", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("reviewId_userEmail_unique"),
	})
	if err != nil {
		return nil, fmt.Errorf("wishlist index: %w", err)
	}
	return &MongoRepo{col: col}, nil
}

func (m *MongoRepo) Exists(ctx context.Context, reviewID, email string) (bool, error) {
	err := m.col.FindOne(ctx, bson.M{"reviewId": reviewID, "userEmail": email}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (m *MongoRepo) Insert(ctx context.Context, e *models.WishlistEntry) (primitive.ObjectID, error) {
	res, err := m.col.InsertOne(ctx, e)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, models.ErrDuplicate
		}
		return primitive.NilObjectID, fmt.Errorf("insert wishlist: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert wishlist: unexpected id type %T", res.InsertedID)
	}
	return id, nil
}

func listQuery(f Filter) bson.M {
	query := bson.M{"userEmail": f.UserEmail}
	if f.Category != "" {
		query["category"] = f.Category
	}
	if f.Search != "" {
		query["title"] = primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
	}
	return query
}

func (m *MongoRepo) List(ctx context.Context, f Filter) ([]*models.WishlistEntry, error) {
	cur, err := m.col.Find(ctx, listQuery(f))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*models.WishlistEntry{}
	for cur.Next(ctx) {
		var e models.WishlistEntry
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	return out, cur.Err()
}

func (m *MongoRepo) Delete(ctx context.Context, email string, id primitive.ObjectID) error {
	res, err := m.col.DeleteOne(ctx, bson.M{"_id": id, "userEmail": email})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return models.ErrNotFound
	}
	return nil
}
