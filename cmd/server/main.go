package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/AnshRaj112/profile-api/internal/config"
	"github.com/AnshRaj112/profile-api/internal/database"
	"github.com/AnshRaj112/profile-api/internal/handlers"
	"github.com/AnshRaj112/profile-api/internal/logging"
	"github.com/AnshRaj112/profile-api/internal/middleware"
	"github.com/AnshRaj112/profile-api/internal/routes"
	"github.com/AnshRaj112/profile-api/internal/services"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load env
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	log := logging.New(os.Stdout, cfg.LogLevel, cfg.IsProduction())
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to MongoDB
	log.Info("connecting to MongoDB", "target", cfg.MaskedMongoURI(), "scope", cfg.MongoScope)
	conn, err := database.Connect(ctx, cfg)
	if err != nil {
		return fmt.Errorf("mongodb: %w", err)
	}
	defer closeLogged(log, "mongodb", func() error { return conn.Disconnect(context.Background()) })
	log.Info("connected to MongoDB", "database", cfg.MongoDatabase)

	store := services.NewDocumentStore(conn)

	// The token is read straight from MongoDB, never from the cache.
	token, err := services.LoadAuthToken(ctx, store)
	if err != nil {
		return fmt.Errorf("auth token: %w", err)
	}
	if token == "" {
		if cfg.RequireAuthToken {
			return errors.New("auth token: service_auth:1 holds an empty token and REQUIRE_AUTH_TOKEN is set")
		}
		log.Warn("service_auth:1 holds an empty token; API authentication is disabled")
	}

	var docs services.Documents = store
	if cfg.RedisURI != "" {
		rdb, err := database.ConnectRedis(ctx, cfg.RedisURI)
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		defer closeLogged(log, "redis", rdb.Close)
		docs = services.NewDocumentCache(store, rdb, conn.Namespace(), cfg.CacheTTL, log)
		log.Info("document cache enabled", "ttl", cfg.CacheTTL, "namespace", conn.Namespace())
	}

	// Setup router
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(middleware.CORS(cfg.AllowedOrigins))
	}
	if cfg.IsProduction() {
		limiter := middleware.NewIPRateLimiter(middleware.DefaultRateLimitRPS, middleware.DefaultRateLimitBurst)
		for _, mw := range middleware.ProductionSecurity(limiter) {
			r.Use(mw)
		}
		log.Info("production security enabled", "rps", middleware.DefaultRateLimitRPS, "burst", middleware.DefaultRateLimitBurst)
	}

	routes.SetupRoutes(r, handlers.New(docs, log), services.NewTokenVerifier(token))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		// Covers the 30s database operation timeout plus writing the body.
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("profile API listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// closeLogged runs a shutdown step and logs its failure. Shutdown keeps going
// so one stuck client does not hold up the others.
func closeLogged(log *slog.Logger, component string, closeFn func() error) {
	if err := closeFn(); err != nil {
		log.Error("shutdown step failed", "component", component, "error", err)
	}
}
