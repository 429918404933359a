package repository

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/contenthub/contenthub-server/internal/models"
)

type entryKey struct {
	reviewID string
	email    string
}

// MemoryRepo keeps entries in insertion order and enforces the
// (reviewId, userEmail) uniqueness under its lock.
type MemoryRepo struct {
	mu      sync.RWMutex
	entries []*models.WishlistEntry
	keys    map[entryKey]struct{}
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{keys: map[entryKey]struct{}{}}
}

func (m *MemoryRepo) Exists(ctx context.Context, reviewID, email string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.keys[entryKey{reviewID, email}]
	return ok, nil
}

func (m *MemoryRepo) Insert(ctx context.Context, e *models.WishlistEntry) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := entryKey{e.ReviewID, e.UserEmail}
	if _, ok := m.keys[k]; ok {
		return primitive.NilObjectID, models.ErrDuplicate
	}
	cp := *e
	if cp.ID.IsZero() {
		cp.ID = primitive.NewObjectID()
	}
	m.keys[k] = struct{}{}
	m.entries = append(m.entries, &cp)
	return cp.ID, nil
}

func (m *MemoryRepo) List(ctx context.Context, f Filter) ([]*models.WishlistEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	search := strings.ToLower(f.Search)
	out := []*models.WishlistEntry{}
	for _, e := range m.entries {
		if e.UserEmail != f.UserEmail {
			continue
		}
		if f.Category != "" && e.Category != f.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(e.Title), search) {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	return out, nil
}

func (m *MemoryRepo) Delete(ctx context.Context, email string, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, e := range m.entries {
		if e.ID == id && e.UserEmail == email {
			delete(m.keys, entryKey{e.ReviewID, e.UserEmail})
			m.entries = append(m.entries[:i], m.entries[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

// Len reports the number of stored entries.
func (m *MemoryRepo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
