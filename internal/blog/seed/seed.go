// Package seed loads sample blog posts from YAML fixtures.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/contenthub/contenthub-server/internal/blog/service"
	"github.com/contenthub/contenthub-server/internal/models"
)

//go:embed posts.yaml
var defaultPosts []byte

// Post is the fixture form of a blog post.
type Post struct {
	Title            string                 `yaml:"title"`
	Category         string                 `yaml:"category"`
	ShortDescription string                 `yaml:"shortDescription"`
	LongDescription  string                 `yaml:"longDescription"`
	ImageURL         string                 `yaml:"imageUrl"`
	Deadline         string                 `yaml:"deadline"`
	UserEmail        string                 `yaml:"userEmail"`
	Extra            map[string]interface{} `yaml:"extra"`
}

type file struct {
	Posts []Post `yaml:"posts"`
}

// Default returns the bundled fixtures.
func Default() ([]Post, error) {
	return parse(defaultPosts)
}

// Load reads fixtures from r.
func Load(r io.Reader) ([]Post, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parse(b)
}

func parse(b []byte) ([]Post, error) {
	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse fixtures: %w", err)
	}
	for i, p := range f.Posts {
		if p.Title == "" {
			return nil, fmt.Errorf("fixture %d: title is required", i)
		}
	}
	return f.Posts, nil
}

func (p Post) toModel() *models.BlogPost {
	return &models.BlogPost{
		Title:            p.Title,
		Category:         p.Category,
		ShortDescription: p.ShortDescription,
		LongDescription:  p.LongDescription,
		ImageURL:         p.ImageURL,
		Deadline:         p.Deadline,
		UserEmail:        p.UserEmail,
		Extra:            p.Extra,
	}
}

// Insert creates every post through svc and returns how many were stored.
func Insert(ctx context.Context, svc service.Service, posts []Post) (int, error) {
	for i, p := range posts {
		if _, err := svc.Create(ctx, p.toModel()); err != nil {
			return i, fmt.Errorf("seed %q: %w", p.Title, err)
		}
	}
	return len(posts), nil
}
