package migration

import (
	"context"
	"fmt"

	"immo-service/internal/store"
)

// SchemaDrift lists what the database lacks for one model
type SchemaDrift struct {
	Table          string
	MissingTable   bool
	MissingColumns []string
}

func (d SchemaDrift) String() string {
	if d.MissingTable {
		return fmt.Sprintf("table %s is missing", d.Table)
	}
	return fmt.Sprintf("table %s is missing columns %v", d.Table, d.MissingColumns)
}

// Validate compares the given models with the live database schema and
// reports every table or column the models need but the database lacks.
func (m *Migrator) Validate(ctx context.Context, models ...any) ([]SchemaDrift, error) {
	gormMigrator := m.db.WithContext(ctx).Migrator()

	var drifts []SchemaDrift
	for _, model := range models {
		table, err := store.TableOf(model)
		if err != nil {
			return nil, fmt.Errorf("failed to parse model %T: %w", model, err)
		}

		if !gormMigrator.HasTable(table.TableName()) {
			drifts = append(drifts, SchemaDrift{Table: table.TableName(), MissingTable: true})
			continue
		}

		columnTypes, err := gormMigrator.ColumnTypes(model)
		if err != nil {
			return nil, fmt.Errorf("failed to read columns of %s: %w", table.TableName(), err)
		}
		existing := make(map[string]bool, len(columnTypes))
		for _, ct := range columnTypes {
			existing[ct.Name()] = true
		}

		var missing []string
		for _, column := range table.ColumnNames() {
			if !existing[column] {
				missing = append(missing, column)
			}
		}
		if len(missing) > 0 {
			drifts = append(drifts, SchemaDrift{Table: table.TableName(), MissingColumns: missing})
		}
	}
	return drifts, nil
}
