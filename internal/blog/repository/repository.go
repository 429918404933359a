package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/contenthub/contenthub-server/internal/models"
)

// SortOrder selects the direction of the deadline sort in List.
type SortOrder string

const (
	SortNone SortOrder = ""
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSort maps the ?sort= query value: "asc" is ascending, any other
// non-empty value is descending.
func ParseSort(v string) SortOrder {
	switch v {
	case "":
		return SortNone
	case "asc":
		return SortAsc
	default:
		return SortDesc
	}
}

// Filter narrows List. Empty fields do not constrain; set fields are ANDed.
type Filter struct {
	Category string
	Search   string // case-insensitive substring of Title
	Sort     SortOrder
}

// Repository provides blog post persistence operations
type Repository interface {
	Insert(ctx context.Context, p *models.BlogPost) (primitive.ObjectID, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.BlogPost, error)
	List(ctx context.Context, f Filter) ([]*models.BlogPost, error)
	Latest(ctx context.Context, n int) ([]*models.BlogPost, error)
}
