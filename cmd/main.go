package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	httpadapter "ppcsim/internal/adapter/http"
	"ppcsim/internal/adapter/postgres"
	rediscache "ppcsim/internal/adapter/redis"
	"ppcsim/internal/adapter/usecase"
	"ppcsim/internal/config"
	"ppcsim/internal/core/port"
	"ppcsim/internal/db"
	"ppcsim/internal/scenario"
)

// main is the entry point of the simulator service. It loads configuration,
// optionally runs database migrations and seeds the demo catalog,
// initializes the database pool, the optional Redis cache and the use case,
// then starts the HTTP server. On receiving a termination signal it
// gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler).With(slog.String("env", cfg.Env))
	}

	engineCfg, err := cfg.Sim.EngineConfig()
	if err != nil {
		logger.Error("invalid simulation config", slog.Any("error", err))
		return
	}

	// Optionally run migrations if configured. We use the Psql sub‑config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			return
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		return
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		demo, err := scenario.Demo("")
		if err != nil {
			logger.Error("demo scenario error", slog.Any("error", err))
			return
		}
		if err = db.Seed(ctx, pool, demo); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("demo data seeded", slog.String("owner_id", demo.OwnerID))
	}

	var repo port.SimulationRepository = postgres.NewSimulationRepository(pool)
	if cfg.Redis.Enabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err = rdb.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unavailable, summaries are served uncached", slog.Any("error", err))
		}
		repo = rediscache.NewCachedRepository(repo, rdb, cfg.Redis.TTL)
		logger.Info("summary cache enabled", slog.String("addr", cfg.Redis.Addr), slog.Duration("ttl", cfg.Redis.TTL))
	}

	opts := []usecase.Option{
		usecase.WithWorkers(cfg.Sim.WorkerCount()),
		usecase.WithLogger(logger),
	}
	if cfg.Sim.Seed != nil {
		opts = append(opts, usecase.WithSeed(*cfg.Sim.Seed))
	}
	svc := usecase.NewSimulationUseCase(repo, engineCfg, opts...)

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
