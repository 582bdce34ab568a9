package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"immo-service/internal/config"
	"immo-service/internal/immo"
	"immo-service/internal/logger"
	"immo-service/internal/migration"
	"immo-service/internal/store"
)

func getDB(cmd *cobra.Command, cfg *config.Config) (*gorm.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL not set in environment or .env file")
	}

	gormLog := store.DefaultLogger()
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		gormLog = gormLog.LogMode(gormLogger.Info)
	}
	return store.Open(cfg.DatabaseURL, gormLog)
}

func closeDB(db *gorm.DB) {
	if db == nil {
		return
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// openDB loads the configuration and connects to its database. The
// returned func closes the connection.
func openDB(cmd *cobra.Command) (*gorm.DB, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	db, err := getDB(cmd, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, func() { closeDB(db) }, nil
}

// newService builds the façade the way the configuration asks for: a
// database only when the storage policy or DATABASE_URL names one, and
// pending migrations applied first when IMMO_AUTO_MIGRATE is on.
func newService(cmd *cobra.Command) (*immo.Service, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}

	var db *gorm.DB
	if cfg.DatabaseURL != "" {
		db, err = getDB(cmd, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if cfg.AutoMigrate {
			if err := autoMigrate(cmd.Context(), db, log); err != nil {
				closeDB(db)
				return nil, nil, err
			}
		}
	}

	svc, err := immo.NewService(db, cfg.Policy, log)
	if err != nil {
		closeDB(db)
		return nil, nil, err
	}
	cleanup := func() {
		log.Sync()
		closeDB(db)
	}
	return svc, cleanup, nil
}

func autoMigrate(ctx context.Context, db *gorm.DB, log *logger.Logger) error {
	applied, err := migration.NewMigrator(db).Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	for _, mr := range applied {
		log.Info("migration applied", "version", mr.Version, "name", mr.Name)
	}
	return nil
}
