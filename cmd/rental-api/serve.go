package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rentaldesk/rental-api/internal/api"
	"github.com/rentaldesk/rental-api/internal/core/ports"
	"github.com/rentaldesk/rental-api/internal/infrastructure/config"
	mongostore "github.com/rentaldesk/rental-api/internal/infrastructure/db/mongo"
	"github.com/rentaldesk/rental-api/internal/infrastructure/db/postgres"
	redisstore "github.com/rentaldesk/rental-api/internal/infrastructure/db/redis"
	"github.com/rentaldesk/rental-api/internal/infrastructure/gemini"
	"github.com/rentaldesk/rental-api/internal/infrastructure/http/handlers"
	"github.com/rentaldesk/rental-api/internal/infrastructure/queue"
	"github.com/rentaldesk/rental-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func serveCmd() *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "migrate the schema before serving")
	return cmd
}

func serve(ctx context.Context, migrate bool) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: !cfg.IsProduction(), Service: "rental-api"})

	db, err := postgres.Connect(ctx, databaseConfig(cfg), log)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()
	if migrate {
		if err := postgres.Migrate(ctx, db); err != nil {
			return err
		}
	}
	checks := map[string]handlers.Check{"postgres": handlers.PostgresCheck(sqlDB)}

	// Optional stores stay as nil interfaces when unconfigured.
	var (
		recorder ports.AuditRecorder
		auditLog ports.AuditRepository
		idem     ports.IdempotencyStore
	)

	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()

	var dispatcher *queue.Dispatcher
	if cfg.Mongo.URI != "" {
		client, mdb, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return err
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}()

		repo := mongostore.NewAuditRepository(mdb)
		dispatcher = queue.NewDispatcher(cfg.AuditWorkers, repo, log)
		dispatcher.Start(workerCtx)
		recorder, auditLog = dispatcher, repo
		checks["mongo"] = handlers.MongoCheck(mdb)
	} else {
		log.Warn().Msg("MONGO_URI not set: audit trail disabled")
	}

	if cfg.Redis.Addr != "" {
		rdb, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()
		idem = redisstore.NewIdempotencyStore(rdb)
		checks["redis"] = handlers.RedisCheck(rdb)
	} else {
		log.Warn().Msg("REDIS_ADDR not set: idempotency keys disabled")
	}

	generator, err := gemini.New(ctx, gemini.Config{APIKey: cfg.Gemini.APIKey, Model: cfg.Gemini.Model})
	if err != nil {
		return err
	}
	if cfg.Gemini.APIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY not set: revenue reports will be degraded")
	}

	e := api.NewRouter(buildDeps(cfg, log, db, recorder, auditLog, idem, generator, checks))

	srvErr := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			srvErr <- err
		}
		close(srvErr)
	}()

	select {
	case err := <-srvErr:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	if dispatcher != nil {
		cancelWorkers()
		dispatcher.Wait()
	}
	return nil
}
