package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/mongo"

	bloghandler "github.com/contenthub/contenthub-server/internal/blog/handler"
	blogservice "github.com/contenthub/contenthub-server/internal/blog/service"
	commenthandler "github.com/contenthub/contenthub-server/internal/comment/handler"
	commentrepo "github.com/contenthub/contenthub-server/internal/comment/repository"
	commentservice "github.com/contenthub/contenthub-server/internal/comment/service"
	"github.com/contenthub/contenthub-server/internal/config"
	"github.com/contenthub/contenthub-server/internal/database"
	"github.com/contenthub/contenthub-server/internal/storage"
	"github.com/contenthub/contenthub-server/internal/tokens"
	wishlisthandler "github.com/contenthub/contenthub-server/internal/wishlist/handler"
	wishlistrepo "github.com/contenthub/contenthub-server/internal/wishlist/repository"
	wishlistservice "github.com/contenthub/contenthub-server/internal/wishlist/service"
	"github.com/contenthub/contenthub-server/handlers"
	"github.com/contenthub/contenthub-server/pkg/middleware"
)

// Services are the domain services the router exposes.
type Services struct {
	Blogs    blogservice.Service
	Wishlist wishlistservice.Service
	Comments commentservice.Service
}

// NewServices builds Mongo-backed services on db, or in-memory ones when db is nil.
// cache may be nil.
func NewServices(ctx context.Context, db *mongo.Database, cache blogservice.Cache) (Services, error) {
	if db == nil {
		return Services{
			Blogs:    blogservice.NewMemoryService(cache),
			Wishlist: wishlistservice.NewMemoryService(),
			Comments: commentservice.NewMemoryService(),
		}, nil
	}
	wl, err := wishlistrepo.NewMongoRepo(ctx, db.Collection(database.WishlistCollection))
	if err != nil {
		return Services{}, fmt.Errorf("wishlist repository: %w", err)
	}
	return Services{
		Blogs:    blogservice.NewMongoService(db.Collection(database.BlogsCollection), cache),
		Wishlist: wishlistservice.New(wl),
		Comments: commentservice.New(commentrepo.NewMongoRepo(db.Collection(database.CommentsCollection))),
	}, nil
}

// Options carries the optional pieces of the router.
type Options struct {
	Images   storage.ObjectStore
	Gatherer prometheus.Gatherer
	Ready    map[string]handlers.ReadyCheck
}

// NewRouter wires middleware and every route onto a fresh engine.
func NewRouter(cfg *config.Config, svc Services, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(), middleware.Metrics(), middleware.CORS(cfg.Server.AllowedOrigins))

	requireAuth := middleware.AuthMiddleware(tokens.NewVerifier(cfg), cfg.Cookie.Name)

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	handlers.RegisterSystemRoutes(r, gatherer, opts.Ready)
	handlers.RegisterSwagger(r)
	handlers.NewAuthHandler(cfg).Register(r)

	bloghandler.RegisterBlogRoutes(r, svc.Blogs, requireAuth)
	wishlisthandler.RegisterWishlistRoutes(r, svc.Wishlist)
	commenthandler.RegisterCommentRoutes(r, svc.Comments, requireAuth)
	if opts.Images != nil {
		handlers.RegisterUploadRoutes(r, opts.Images, requireAuth)
	}
	return r
}

// Handler wraps the router with transparent gzip for clients that accept it.
// Small bodies are sent uncompressed.
func Handler(r *gin.Engine) http.Handler {
	return gzhttp.GzipHandler(r)
}
