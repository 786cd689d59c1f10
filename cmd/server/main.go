// Command server runs the advise-clothes HTTP API.
//
// @title        advise-clothes API
// @version      1.0
// @description  User accounts, login sessions and the clothes catalog.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/rs/zerolog"

	"github.com/advise-clothes/backend/internal/api"
	"github.com/advise-clothes/backend/internal/core/ports"
	"github.com/advise-clothes/backend/internal/core/service"
	"github.com/advise-clothes/backend/internal/infrastructure/db/mongo"
	"github.com/advise-clothes/backend/internal/infrastructure/db/postgres"
	"github.com/advise-clothes/backend/internal/infrastructure/db/redis"
	"github.com/advise-clothes/backend/internal/infrastructure/http/handlers"
	"github.com/advise-clothes/backend/internal/pkg/config"
	"github.com/advise-clothes/backend/pkg/logger"
)

const serviceName = "advise-clothes"

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: serviceName,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// --- PostgreSQL ---
	db, err := postgres.Connect(ctx, postgres.Config{
		DSN:          cfg.Postgres.DSN,
		MaxOpenConns: cfg.Postgres.MaxOpenConns,
	})
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	if err := postgres.Migrate(ctx, db); err != nil {
		return err
	}
	log.Info().Msg("postgres ready")

	// --- Redis ---
	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("redis ready")

	pingers := map[string]handlers.Pinger{
		"postgres": postgres.Pinger{DB: db},
		"redis":    redis.Pinger{Client: rdb},
	}

	// --- MongoDB (optional audit trail) ---
	var audit ports.UserAuditLog
	if cfg.Mongo.URI != "" {
		store, err := mongo.Open(ctx, mongo.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
			AppName:  serviceName,
		})
		if err != nil {
			return err
		}
		defer func() { _ = store.Close(context.Background()) }()

		auditRepo := store.UserEvents()
		if err := auditRepo.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("user audit indexes not created")
		}
		audit = auditRepo
		pingers["mongodb"] = store
		log.Info().Str("database", cfg.Mongo.Database).Msg("mongodb audit trail enabled")
	} else {
		log.Info().Msg("MONGO_URI empty, user audit trail disabled")
	}

	// --- Services ---
	users := service.NewUserService(postgres.NewUserRepository(db), audit, logger.Component("users"))
	sessions := service.NewSessionService(redis.NewSessionStore(rdb), users, cfg.Redis.SessionTTL, logger.Component("sessions"))
	catalog := service.NewCatalogService(postgres.NewCompanyRepository(db), postgres.NewClothesRepository(db), logger.Component("catalog"))

	// --- HTTP ---
	e := api.NewRouter(api.Dependencies{
		Users:    users,
		Sessions: sessions,
		Catalog:  catalog,
		Pingers:  pingers,
		Logger:   log,
	})
	e.Use(echoprometheus.NewMiddleware("advise"))

	errCh := make(chan error, 1)
	go func() {
		addr := net.JoinHostPort("", cfg.Port)
		log.Info().Str("addr", addr).Msg("http server listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
