// Package store holds the backing stores behind the immo service: a GORM
// store that runs every call in its own unit of work, and an in-memory
// store without durability.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrStore           = errors.New("store error")
	ErrInvalidArgument = errors.New("invalid argument")
)

// Backend selects where the entities of one kind live
type Backend string

const (
	Persistent Backend = "persistent"
	Transient  Backend = "transient"
)

// ParseBackend accepts a backend name, case-insensitively
func ParseBackend(name string) (Backend, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(name))) {
	case Persistent:
		return Persistent, nil
	case Transient:
		return Transient, nil
	}
	return "", fmt.Errorf("%w: unknown storage backend %q", ErrInvalidArgument, name)
}

// Entity is implemented by every model the stores can hold
type Entity interface {
	EntityID() uint
	SetEntityID(id uint)
}

// Record constrains P to be a pointer to T that implements Entity
type Record[T any] interface {
	*T
	Entity
}

// Store is the per-kind data access contract shared by both backends
type Store[T any] interface {
	Backend() Backend
	Add(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	// FindBy returns the entity with the lowest id whose column equals value.
	FindBy(ctx context.Context, column string, value any) (*T, error)
	All(ctx context.Context) ([]*T, error)
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, entity *T) error
}
