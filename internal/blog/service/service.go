package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/contenthub/contenthub-server/internal/blog/repository"
	"github.com/contenthub/contenthub-server/internal/cache"
	"github.com/contenthub/contenthub-server/internal/models"
	"github.com/contenthub/contenthub-server/pkg/logger"
)

const (
	LatestLimit   = 6
	FeaturedLimit = 10

	keyLatest   = "blogs:latest"
	keyFeatured = "blogs:featured"
)

// Cache is the subset of cache.RedisCache the service uses. May be nil.
type Cache interface {
	Get(ctx context.Context, key string, dst interface{}) error
	Set(ctx context.Context, key string, v interface{}) error
	Delete(ctx context.Context, keys ...string) error
}

// Service defines the blog operations used by the handler layer.
type Service interface {
	Create(ctx context.Context, p *models.BlogPost) (primitive.ObjectID, error)
	Get(ctx context.Context, id string) (*models.BlogPost, error)
	All(ctx context.Context) ([]*models.BlogPost, error)
	List(ctx context.Context, f repository.Filter) ([]*models.BlogPost, error)
	Latest(ctx context.Context) ([]*models.BlogPost, error)
	Featured(ctx context.Context) ([]*models.BlogPost, error)
}

// NewMemoryService returns a Service backed by the in-memory repository.
func NewMemoryService(c Cache) Service {
	return New(repository.NewMemoryRepo(), c)
}

// NewMongoService returns a Service backed by a MongoDB collection.
func NewMongoService(col *mongo.Collection, c Cache) Service {
	return New(repository.NewMongoRepo(col), c)
}

func New(repo repository.Repository, c Cache) Service {
	return &blogService{repo: repo, cache: c, now: time.Now}
}

type blogService struct {
	repo  repository.Repository
	cache Cache
	now   func() time.Time
}

func (s *blogService) Create(ctx context.Context, p *models.BlogPost) (primitive.ObjectID, error) {
	p.ID = primitive.NilObjectID
	p.WordCount = nil
	p.CreatedAt = s.now().UTC()
	id, err := s.repo.Insert(ctx, p)
	if err != nil {
		return primitive.NilObjectID, err
	}
	p.ID = id
	if s.cache != nil {
		if err := s.cache.Delete(ctx, keyLatest, keyFeatured); err != nil {
			logger.Warnf("blog cache invalidate: %v", err)
		}
	}
	return id, nil
}

func (s *blogService) Get(ctx context.Context, id string) (*models.BlogPost, error) {
	oid, err := models.ParseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, oid)
}

func (s *blogService) All(ctx context.Context) ([]*models.BlogPost, error) {
	return s.repo.List(ctx, repository.Filter{})
}

func (s *blogService) List(ctx context.Context, f repository.Filter) ([]*models.BlogPost, error) {
	return s.repo.List(ctx, f)
}

func (s *blogService) Latest(ctx context.Context) ([]*models.BlogPost, error) {
	return s.cached(ctx, keyLatest, func() ([]*models.BlogPost, error) {
		return s.repo.Latest(ctx, LatestLimit)
	})
}

func (s *blogService) Featured(ctx context.Context) ([]*models.BlogPost, error) {
	return s.cached(ctx, keyFeatured, func() ([]*models.BlogPost, error) {
		all, err := s.repo.List(ctx, repository.Filter{})
		if err != nil {
			return nil, err
		}
		return RankByWordCount(all, FeaturedLimit), nil
	})
}

// cached serves key from the cache when possible. Cache failures are logged
// and the value is loaded from the repository instead.
func (s *blogService) cached(ctx context.Context, key string, load func() ([]*models.BlogPost, error)) ([]*models.BlogPost, error) {
	if s.cache != nil {
		var out []*models.BlogPost
		err := s.cache.Get(ctx, key, &out)
		if err == nil {
			return out, nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			logger.Warnf("blog cache get %s: %v", key, err)
		}
	}
	out, err := load()
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, out); err != nil {
			logger.Warnf("blog cache set %s: %v", key, err)
		}
	}
	return out, nil
}

// CountWords counts whitespace-separated words.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// RankByWordCount annotates each post with the word count of its long
// description and returns the top n, highest first. Ties keep input order.
func RankByWordCount(posts []*models.BlogPost, n int) []*models.BlogPost {
	ranked := make([]*models.BlogPost, len(posts))
	copy(ranked, posts)
	for _, p := range ranked {
		wc := CountWords(p.LongDescription)
		p.WordCount = &wc
	}
	sort.SliceStable(ranked, func(i, j int) bool { return *ranked[i].WordCount > *ranked[j].WordCount })
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
