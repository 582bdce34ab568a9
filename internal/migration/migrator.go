package migration

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"
)

var ErrNoMigrations = errors.New("no migrations to revert")

// Migrator handles the execution of migrations
type Migrator struct {
	db         *gorm.DB
	migrations []*Migration
}

// NewMigrator creates a Migrator preloaded with the registered migrations
func NewMigrator(db *gorm.DB) *Migrator {
	return &Migrator{
		db:         db,
		migrations: GetRegisteredMigrations(),
	}
}

// Register adds a migration to the migrator
func (m *Migrator) Register(migration *Migration) {
	m.migrations = append(m.migrations, migration)
	sort.Slice(m.migrations, func(i, j int) bool {
		return m.migrations[i].Version < m.migrations[j].Version
	})
}

// ensureVersionTable creates the version tracking table if it doesn't exist
func (m *Migrator) ensureVersionTable(ctx context.Context) error {
	db := m.db.WithContext(ctx)
	if db.Migrator().HasTable(&MigrationRecord{}) {
		return nil
	}
	return db.Migrator().CreateTable(&MigrationRecord{})
}

// Init creates the version tracking table
func (m *Migrator) Init(ctx context.Context) error {
	if err := m.ensureVersionTable(ctx); err != nil {
		return fmt.Errorf("failed to create %s table: %w", MigrationRecord{}.TableName(), err)
	}
	return nil
}

// GetAppliedVersions returns a map of applied migration versions
func (m *Migrator) GetAppliedVersions(ctx context.Context) (map[string]bool, error) {
	if err := m.ensureVersionTable(ctx); err != nil {
		return nil, fmt.Errorf("failed to create %s table: %w", MigrationRecord{}.TableName(), err)
	}

	var records []MigrationRecord
	if err := m.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get applied migrations: %w", err)
	}

	versions := make(map[string]bool)
	for _, record := range records {
		versions[record.Version] = true
	}
	return versions, nil
}

// Pending returns the migrations that have not been applied yet
func (m *Migrator) Pending(ctx context.Context) ([]*Migration, error) {
	applied, err := m.GetAppliedVersions(ctx)
	if err != nil {
		return nil, err
	}

	var pending []*Migration
	for _, mr := range m.migrations {
		if !applied[mr.Version] {
			pending = append(pending, mr)
		}
	}
	return pending, nil
}

// Up applies all pending migrations, each in its own transaction together
// with its version record, and returns the ones it applied.
func (m *Migrator) Up(ctx context.Context) ([]*Migration, error) {
	pending, err := m.Pending(ctx)
	if err != nil {
		return nil, err
	}

	applied := make([]*Migration, 0, len(pending))
	for _, mr := range pending {
		err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := mr.Up(tx); err != nil {
				return fmt.Errorf("failed to apply migration %s: %w", mr.Name, err)
			}

			record := MigrationRecord{
				Version:   mr.Version,
				Name:      mr.Name,
				AppliedAt: time.Now(),
			}
			if err := tx.Create(&record).Error; err != nil {
				return fmt.Errorf("failed to record migration %s: %w", mr.Name, err)
			}
			return nil
		})
		if err != nil {
			return applied, err
		}
		applied = append(applied, mr)
	}
	return applied, nil
}

// Down rolls back the last applied migration
func (m *Migrator) Down(ctx context.Context) (*Migration, error) {
	if err := m.ensureVersionTable(ctx); err != nil {
		return nil, err
	}

	var record MigrationRecord
	err := m.db.WithContext(ctx).Order("applied_at DESC").Order("version DESC").First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoMigrations
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read last migration: %w", err)
	}

	var target *Migration
	for _, mr := range m.migrations {
		if mr.Version == record.Version {
			target = mr
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("migration for version %s not found", record.Version)
	}

	err = m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := target.Down(tx); err != nil {
			return fmt.Errorf("failed to revert migration %s: %w", target.Name, err)
		}
		if err := tx.Delete(&record).Error; err != nil {
			return fmt.Errorf("failed to remove migration record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return target, nil
}

// Status reports every known migration and whether it has been applied
func (m *Migrator) Status(ctx context.Context) ([]Status, error) {
	applied, err := m.GetAppliedVersions(ctx)
	if err != nil {
		return nil, err
	}

	statuses := make([]Status, 0, len(m.migrations))
	for _, mr := range m.migrations {
		statuses = append(statuses, Status{Migration: mr, Applied: applied[mr.Version]})
	}
	return statuses, nil
}

// History returns the applied migrations, most recent first
func (m *Migrator) History(ctx context.Context) ([]MigrationRecord, error) {
	if err := m.ensureVersionTable(ctx); err != nil {
		return nil, err
	}

	var records []MigrationRecord
	if err := m.db.WithContext(ctx).Order("applied_at DESC").Order("version DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get migration history: %w", err)
	}
	return records, nil
}
