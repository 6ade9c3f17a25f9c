package main

import (
	"github.com/spf13/cobra"

	"github.com/rentaldesk/rental-api/internal/infrastructure/config"
	"github.com/rentaldesk/rental-api/internal/infrastructure/db/postgres"
	"github.com/rentaldesk/rental-api/pkg/logger"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and seed roles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg, err := config.Load(ctx)
			if err != nil {
				return err
			}
			log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: !cfg.IsProduction(), Service: "rental-api"})

			db, err := postgres.Connect(ctx, databaseConfig(cfg), log)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}

			if err := postgres.Migrate(ctx, db); err != nil {
				return err
			}
			log.Info().Msg("schema migrated")
			return nil
		},
	}
}

func databaseConfig(cfg *config.Config) postgres.Config {
	return postgres.Config{
		DSN:             cfg.Database.URL,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Database.LogLevel,
	}
}
