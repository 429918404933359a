package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/sync/errgroup"

	blogservice "github.com/contenthub/contenthub-server/internal/blog/service"
	"github.com/contenthub/contenthub-server/internal/cache"
	"github.com/contenthub/contenthub-server/internal/config"
	"github.com/contenthub/contenthub-server/internal/database"
	"github.com/contenthub/contenthub-server/internal/server"
	"github.com/contenthub/contenthub-server/internal/storage"
	"github.com/contenthub/contenthub-server/handlers"
	"github.com/contenthub/contenthub-server/pkg/logger"
	"github.com/contenthub/contenthub-server/pkg/metrics"
)

func main() {
	// LOG_LEVEL: debug|info|warn|error|fatal, LOG_FORMAT: json|console
	logger.Init(os.Getenv("LOG_LEVEL"))
	logger.SetOutput(os.Stdout, os.Getenv("LOG_FORMAT"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	logger.Infof("config loaded: env=%s mongo=%v redis=%v", cfg.Server.Environment, cfg.MongoDB.URI != "", cfg.Redis.Host != "")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Fatalf("server: %v", err)
	}
	logger.Info("server stopped")
}

func run(ctx context.Context, cfg *config.Config) error {
	ready := map[string]handlers.ReadyCheck{}

	var db *mongo.Database
	if cfg.MongoDB.URI != "" {
		client, err := database.ConnectWithRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, 5, func(attempt int, err error) {
			logger.Warnf("attempt %d/5: failed to connect to MongoDB: %v", attempt, err)
		})
		if err != nil {
			return err
		}
		defer func() {
			dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(dctx); err != nil {
				logger.Warnf("mongo disconnect: %v", err)
			}
		}()
		db = client.Database(cfg.MongoDB.Database)
		ready["mongo"] = func(ctx context.Context) error { return client.Ping(ctx, nil) }
		logger.Infof("connected to MongoDB database %q", cfg.MongoDB.Database)
	} else {
		logger.Warn("MONGODB_URI and DB_USER are unset; using in-memory storage")
	}

	var blogCache blogservice.Cache
	if cfg.Redis.Host != "" {
		rc := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rc.Close()
		if err := rc.Ping(ctx).Err(); err != nil {
			logger.Warnf("redis %s:%s unreachable, blog cache disabled: %v", cfg.Redis.Host, cfg.Redis.Port, err)
		} else {
			blogCache = cache.NewRedisCache(rc, "contenthub:", cfg.Cache.TTL)
			ready["redis"] = func(ctx context.Context) error { return rc.Ping(ctx).Err() }
			logger.Infof("blog cache enabled on redis %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	var images storage.ObjectStore
	if mc := storage.LoadMinIOConfig(); mc.Enabled() {
		s, err := storage.NewMinIOStorage(ctx, mc)
		if err != nil {
			logger.Warnf("object storage unavailable, image upload disabled: %v", err)
		} else {
			images = s
			logger.Infof("image upload enabled (bucket %s)", mc.Bucket)
		}
	}

	svc, err := server.NewServices(ctx, db, blogCache)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.RegisterCollectors(reg)

	router := server.NewRouter(cfg, svc, server.Options{Images: images, Gatherer: reg, Ready: ready})
	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      server.Handler(router),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Infof("content hub listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	return g.Wait()
}
