package repository

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/contenthub/contenthub-server/internal/models"
)

// MemoryRepo is an in-memory comment store.
type MemoryRepo struct {
	mu       sync.RWMutex
	comments []*models.Comment
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (m *MemoryRepo) Insert(ctx context.Context, c *models.Comment) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *c
	if cp.ID.IsZero() {
		cp.ID = primitive.NewObjectID()
	}
	m.comments = append(m.comments, &cp)
	return cp.ID, nil
}

func (m *MemoryRepo) List(ctx context.Context, blogID string) ([]*models.Comment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []*models.Comment{}
	for _, c := range m.comments {
		if blogID != "" && c.BlogID != blogID {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (m *MemoryRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, c := range m.comments {
		if c.ID == id {
			m.comments = append(m.comments[:i], m.comments[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}
