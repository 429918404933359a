package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/contenthub/contenthub-server/internal/models"
)

// Repository stores comments. List with an empty blogID returns every comment.
type Repository interface {
	Insert(ctx context.Context, c *models.Comment) (primitive.ObjectID, error)
	List(ctx context.Context, blogID string) ([]*models.Comment, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
