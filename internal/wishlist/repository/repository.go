package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/contenthub/contenthub-server/internal/models"
)

// Filter selects a user's wishlist entries. Empty Category and Search match everything.
type Filter struct {
	UserEmail string
	Category  string
	Search    string
}

// Repository stores wishlist entries. Insert returns models.ErrDuplicate
// when an entry with the same (ReviewID, UserEmail) already exists.
type Repository interface {
	Exists(ctx context.Context, reviewID, email string) (bool, error)
	Insert(ctx context.Context, e *models.WishlistEntry) (primitive.ObjectID, error)
	List(ctx context.Context, f Filter) ([]*models.WishlistEntry, error)
	Delete(ctx context.Context, email string, id primitive.ObjectID) error
}
