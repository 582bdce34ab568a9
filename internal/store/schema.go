package store

import (
	"fmt"
	"sync"

	"gorm.io/gorm/schema"
)

var schemaCache = &sync.Map{}

// Table is the parsed GORM schema of a model
type Table struct {
	*schema.Schema
}

// TableOf parses the GORM schema of model, sharing one cache across calls.
func TableOf(model any) (*Table, error) {
	modelSchema, err := schema.Parse(model, schemaCache, schema.NamingStrategy{})
	if err != nil {
		return nil, err
	}
	return &Table{Schema: modelSchema}, nil
}

func (t *Table) TableName() string {
	return t.Table
}

// ColumnNames lists the database columns of the table
func (t *Table) ColumnNames() []string {
	return t.DBNames
}

func lookupField[T any](column string) (*schema.Field, error) {
	table, err := TableOf(new(T))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}
	field := table.LookUpField(column)
	if field == nil {
		return nil, fmt.Errorf("%w: %s has no column %q", ErrInvalidArgument, table.Name, column)
	}
	return field, nil
}
