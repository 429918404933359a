package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/contenthub/contenthub-server/internal/models"
	"github.com/contenthub/contenthub-server/internal/wishlist/repository"
	"github.com/contenthub/contenthub-server/pkg/metrics"
)

// AllCategories as a category filter disables category filtering.
const AllCategories = "All"

// Service defines the wishlist operations used by the handler layer.
type Service interface {
	Add(ctx context.Context, e *models.WishlistEntry) (primitive.ObjectID, error)
	List(ctx context.Context, email, category, search string) ([]*models.WishlistEntry, error)
	Remove(ctx context.Context, email, id string) error
}

func New(repo repository.Repository) Service {
	return &wishlistService{repo: repo}
}

// NewMemoryService returns a Service backed by the in-memory repository.
func NewMemoryService() Service {
	return New(repository.NewMemoryRepo())
}

type wishlistService struct {
	repo repository.Repository
}

// Add saves e unless the user already saved the same review.
// Duplicates return models.ErrDuplicate whether caught by the pre-check or by storage.
func (s *wishlistService) Add(ctx context.Context, e *models.WishlistEntry) (primitive.ObjectID, error) {
	e.ID = primitive.NilObjectID
	exists, err := s.repo.Exists(ctx, e.ReviewID, e.UserEmail)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if exists {
		metrics.WishlistDuplicates.Inc()
		return primitive.NilObjectID, models.ErrDuplicate
	}
	id, err := s.repo.Insert(ctx, e)
	if errors.Is(err, models.ErrDuplicate) {
		metrics.WishlistDuplicates.Inc()
	}
	return id, err
}

func (s *wishlistService) List(ctx context.Context, email, category, search string) ([]*models.WishlistEntry, error) {
	if category == AllCategories {
		category = ""
	}
	return s.repo.List(ctx, repository.Filter{UserEmail: email, Category: category, Search: search})
}

func (s *wishlistService) Remove(ctx context.Context, email, id string) error {
	oid, err := models.ParseID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, email, oid)
}
