package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/contenthub/contenthub-server/internal/models"
)

// MemoryRepo is an in-memory repository used for tests and for running
// without MongoDB. Posts are kept in insertion order.
type MemoryRepo struct {
	mu    sync.RWMutex
	posts []*models.BlogPost
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (m *MemoryRepo) Insert(ctx context.Context, p *models.BlogPost) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	if cp.ID.IsZero() {
		cp.ID = primitive.NewObjectID()
	}
	m.posts = append(m.posts, &cp)
	return cp.ID, nil
}

func (m *MemoryRepo) Get(ctx context.Context, id primitive.ObjectID) (*models.BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.posts {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *MemoryRepo) List(ctx context.Context, f Filter) ([]*models.BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	search := strings.ToLower(f.Search)
	out := make([]*models.BlogPost, 0, len(m.posts))
	for _, p := range m.posts {
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Title), search) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	switch f.Sort {
	case SortAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Deadline < out[j].Deadline })
	case SortDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Deadline > out[j].Deadline })
	}
	return out, nil
}

func (m *MemoryRepo) Latest(ctx context.Context, n int) ([]*models.BlogPost, error) {
	all, err := m.List(ctx, Filter{})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if n >= 0 && len(all) > n {
		all = all[:n]
	}
	return all, nil
}
