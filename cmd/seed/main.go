package main

import (
	"context"
	"flag"
	"os"

	"github.com/contenthub/contenthub-server/internal/blog/seed"
	"github.com/contenthub/contenthub-server/internal/blog/service"
	"github.com/contenthub/contenthub-server/internal/config"
	"github.com/contenthub/contenthub-server/internal/database"
	"github.com/contenthub/contenthub-server/pkg/logger"
)

func main() {
	file := flag.String("file", "", "YAML fixtures to load (defaults to the bundled sample posts)")
	dryRun := flag.Bool("dry-run", false, "parse fixtures and report without writing")
	flag.Parse()

	logger.Init(os.Getenv("LOG_LEVEL"))

	posts, err := loadPosts(*file)
	if err != nil {
		logger.Fatalf("load fixtures: %v", err)
	}
	if *dryRun {
		for _, p := range posts {
			logger.Infof("would seed %q (%s)", p.Title, p.Category)
		}
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	if cfg.MongoDB.URI == "" {
		logger.Fatalf("MONGODB_URI (or DB_USER/DB_PASS) is required to seed")
	}

	ctx := context.Background()
	client, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	col := client.Database(cfg.MongoDB.Database).Collection(database.BlogsCollection)
	n, err := seed.Insert(ctx, service.NewMongoService(col, nil), posts)
	if err != nil {
		logger.Fatalf("seeded %d of %d posts: %v", n, len(posts), err)
	}
	logger.Infof("seeded %d posts into %s.%s", n, cfg.MongoDB.Database, database.BlogsCollection)
}

func loadPosts(path string) ([]seed.Post, error) {
	if path == "" {
		return seed.Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return seed.Load(f)
}
