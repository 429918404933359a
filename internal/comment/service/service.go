package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/contenthub/contenthub-server/internal/comment/repository"
	"github.com/contenthub/contenthub-server/internal/models"
)

// Service defines the comment operations used by the handler layer.
type Service interface {
	Add(ctx context.Context, c *models.Comment) (primitive.ObjectID, error)
	List(ctx context.Context, blogID string) ([]*models.Comment, error)
	Delete(ctx context.Context, id string) error
}

func New(repo repository.Repository) Service {
	return &commentService{repo: repo, now: time.Now}
}

func NewMemoryService() Service {
	return New(repository.NewMemoryRepo())
}

type commentService struct {
	repo repository.Repository
	now  func() time.Time
}

// Add stores c stamped with the current server time.
func (s *commentService) Add(ctx context.Context, c *models.Comment) (primitive.ObjectID, error) {
	c.ID = primitive.NilObjectID
	c.CreatedAt = s.now().UTC()
	return s.repo.Insert(ctx, c)
}

func (s *commentService) List(ctx context.Context, blogID string) ([]*models.Comment, error) {
	return s.repo.List(ctx, blogID)
}

func (s *commentService) Delete(ctx context.Context, id string) error {
	oid, err := models.ParseID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, oid)
}
