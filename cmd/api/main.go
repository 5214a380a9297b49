package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/ottstream/mylist/internal/api/handler"
	"github.com/ottstream/mylist/internal/api/middleware"
	"github.com/ottstream/mylist/internal/config"
	"github.com/ottstream/mylist/internal/domain/repository"
	"github.com/ottstream/mylist/internal/infrastructure/cache"
	"github.com/ottstream/mylist/internal/infrastructure/jsonstore"
	"github.com/ottstream/mylist/internal/infrastructure/postgres"
	"github.com/ottstream/mylist/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	store, err := jsonstore.NewStore(cfg.Storage.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open data dir: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis: %w", err)
	}

	watchlistRepo, cleanup, err := buildWatchlistRepo(ctx, cfg, store)
	if err != nil {
		return err
	}
	defer cleanup()

	catalog := jsonstore.NewCatalog(store)
	listCache := cache.NewRedisListCache(redisClient)

	myListSvc := usecase.NewMyListService(watchlistRepo, catalog, listCache, usecase.MyListServiceConfig{
		CacheTTL: cfg.Cache.ListTTL,
	})
	contentSvc := usecase.NewContentService(catalog)
	authSvc := usecase.NewAuthService(jsonstore.NewUserDirectory(store), usecase.AuthServiceConfig{
		JWTSecret:   cfg.Auth.JWTSecret,
		TokenExpiry: cfg.Auth.TokenExpiry,
	})

	r := setupRouter(logger, cfg, myListSvc, contentSvc, authSvc)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			slog.Int("port", cfg.Server.Port),
			slog.String("storage_driver", cfg.Storage.Driver),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("server error: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down server", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// buildWatchlistRepo selects the watchlist persistence backend from config.
func buildWatchlistRepo(ctx context.Context, cfg *config.Config, store *jsonstore.Store) (repository.WatchlistRepository, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		client, err := postgres.NewClient(ctx, postgres.DefaultClientConfig(cfg.Database.DSN()))
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return postgres.NewWatchlistRepository(client.Pool()), client.Close, nil
	default:
		return jsonstore.NewWatchlistRepository(store), func() {}, nil
	}
}

func setupRouter(
	logger *slog.Logger,
	cfg *config.Config,
	myListSvc usecase.MyListService,
	contentSvc usecase.ContentService,
	authSvc usecase.AuthService,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))

	r.Get("/health", handler.Health)
	r.Handle("/metrics", promhttp.Handler())

	myListHandler := handler.NewMyListHandler(myListSvc)
	contentHandler := handler.NewContentHandler(contentSvc)
	authHandler := handler.NewAuthHandler(authSvc)

	r.Route("/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Get("/verify", authHandler.Verify)
		})

		r.Route("/content", func(r chi.Router) {
			r.Get("/", contentHandler.All)
			r.Get("/movies", contentHandler.Movies)
			r.Get("/tvshows", contentHandler.TVShows)
		})

		r.Route("/users/{userID}/mylist", func(r chi.Router) {
			r.Use(middleware.OptionalAuth(cfg.Auth.JWTSecret))
			r.Get("/", myListHandler.List)
			r.Post("/", myListHandler.Add)
			r.Delete("/", myListHandler.Remove)
		})
	})

	return r
}
