package migration

import (
	"sort"
	"sync"
	"time"

	"gorm.io/gorm"
)

// Migration represents a single versioned schema change
type Migration struct {
	Version string // Unique version identifier (timestamp layout 20060102150405)
	Name    string // Human-readable name of the migration
	Up      func(*gorm.DB) error
	Down    func(*gorm.DB) error
}

// MigrationRecord represents a record of an applied migration
type MigrationRecord struct {
	Version   string    `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	AppliedAt time.Time `gorm:"not null"`
}

func (MigrationRecord) TableName() string {
	return "schema_migrations"
}

// Status pairs a known migration with whether it has been applied
type Status struct {
	Migration *Migration
	Applied   bool
}

// Global migration registry
var (
	globalMigrations = make([]*Migration, 0)
	registryMutex    sync.RWMutex
)

// RegisterMigration registers a migration globally
func RegisterMigration(migration *Migration) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	globalMigrations = append(globalMigrations, migration)
}

// GetRegisteredMigrations returns all registered migrations ordered by version
func GetRegisteredMigrations() []*Migration {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	migrations := make([]*Migration, len(globalMigrations))
	copy(migrations, globalMigrations)
	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})
	return migrations
}
