package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/contenthub/contenthub-server/internal/models"
)

func TestMemoryRepo_InsertUnique(t *testing.T) {
	r := NewMemoryRepo()
	ctx := context.Background()
	_, err := r.Insert(ctx, &models.WishlistEntry{ReviewID: "r1", UserEmail: "a@x"})
	require.NoError(t, err)
	_, err = r.Insert(ctx, &models.WishlistEntry{ReviewID: "r1", UserEmail: "a@x"})
	require.ErrorIs(t, err, models.ErrDuplicate)
	_, err = r.Insert(ctx, &models.WishlistEntry{ReviewID: "r1", UserEmail: "b@x"})
	require.NoError(t, err)

	ok, err := r.Exists(ctx, "r1", "a@x")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, r.Len())
}

func TestMemoryRepo_ConcurrentInsertKeepsOne(t *testing.T) {
	r := NewMemoryRepo()
	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.Insert(context.Background(), &models.WishlistEntry{ReviewID: "r", UserEmail: "u@x"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	okCount := 0
	for err := range errs {
		if err == nil {
			okCount++
			continue
		}
		require.ErrorIs(t, err, models.ErrDuplicate)
	}
	require.Equal(t, 1, okCount)
	require.Equal(t, 1, r.Len())
}

func TestMemoryRepo_ListFilters(t *testing.T) {
	r := NewMemoryRepo()
	ctx := context.Background()
	for _, e := range []models.WishlistEntry{
		{ReviewID: "1", UserEmail: "a@x", Title: "Go Tips", Category: "Tech"},
		{ReviewID: "2", UserEmail: "a@x", Title: "Pasta", Category: "Food"},
		{ReviewID: "3", UserEmail: "b@x", Title: "Go deeper", Category: "Tech"},
	} {
		e := e
		_, err := r.Insert(ctx, &e)
		require.NoError(t, err)
	}

	got, err := r.List(ctx, Filter{UserEmail: "a@x"})
	require.NoError(t, err)
	require.Len(t, got, 2)

	got, err = r.List(ctx, Filter{UserEmail: "a@x", Category: "Tech"})
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = r.List(ctx, Filter{UserEmail: "a@x", Search: "go"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Go Tips", got[0].Title)

	got, err = r.List(ctx, Filter{UserEmail: "nobody@x"})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestMemoryRepo_DeleteScopedToOwner(t *testing.T) {
	r := NewMemoryRepo()
	ctx := context.Background()
	id, err := r.Insert(ctx, &models.WishlistEntry{ReviewID: "1", UserEmail: "a@x"})
	require.NoError(t, err)

	require.ErrorIs(t, r.Delete(ctx, "b@x", id), models.ErrNotFound)
	require.ErrorIs(t, r.Delete(ctx, "a@x", primitive.NewObjectID()), models.ErrNotFound)
	require.Equal(t, 1, r.Len())

	require.NoError(t, r.Delete(ctx, "a@x", id))
	require.Equal(t, 0, r.Len())

	// the pair can be saved again once removed
	_, err = r.Insert(ctx, &models.WishlistEntry{ReviewID: "1", UserEmail: "a@x"})
	require.NoError(t, err)
}

func TestListQuery(t *testing.T) {
	q := listQuery(Filter{UserEmail: "a@x"})
	require.Equal(t, bson.M{"userEmail": "a@x"}, q)

	q = listQuery(Filter{UserEmail: "a@x", Category: "Tech", Search: "a+b"})
	require.Equal(t, "Tech", q["category"])
	require.Equal(t, primitive.Regex{Pattern: `a\+b`, Options: "i"}, q["title"])
}
