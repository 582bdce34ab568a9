package store

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Dialector picks the GORM driver for a connection string. PostgreSQL URLs
// and key=value DSNs go to the postgres driver; sqlite://, file: and
// :memory: DSNs as well as *.db files go to sqlite.
func Dialector(dsn string) (gorm.Dialector, error) {
	switch {
	case dsn == "":
		return nil, fmt.Errorf("%w: empty database url", ErrInvalidArgument)
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"),
		strings.Contains(dsn, "host="):
		return postgres.Open(dsn), nil
	case strings.HasPrefix(dsn, "sqlite://"):
		return sqlite.Open(strings.TrimPrefix(dsn, "sqlite://")), nil
	case strings.HasPrefix(dsn, "file:"), dsn == ":memory:",
		strings.HasSuffix(dsn, ".db"), strings.HasSuffix(dsn, ".sqlite"):
		return sqlite.Open(dsn), nil
	}
	return nil, fmt.Errorf("%w: unsupported database url %q", ErrInvalidArgument, dsn)
}

// DefaultLogger reports slow queries and warnings on stdout.
func DefaultLogger() gormLogger.Interface {
	return gormLogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormLogger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

// Open connects to the database behind dsn. A nil logger silences GORM.
func Open(dsn string, logger gormLogger.Interface) (*gorm.DB, error) {
	dialector, err := Dialector(dsn)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = gormLogger.Default.LogMode(gormLogger.Silent)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to connect: %w", ErrStore, err)
	}

	// every pooled connection to :memory: would see its own empty database
	if isMemorySQLite(dsn) {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStore, err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

func isMemorySQLite(dsn string) bool {
	dsn = strings.TrimPrefix(dsn, "sqlite://")
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}
