package store

import (
	"cmp"
	"context"
	"fmt"
	"reflect"
	"slices"
	"sync"
)

// MemoryStore keeps one entity kind in process memory. Its content is lost
// when the process exits.
type MemoryStore[T any, P Record[T]] struct {
	mu     sync.RWMutex
	data   map[uint]*T
	lastID uint
}

// NewMemoryStore creates an empty store whose ids start at 1
func NewMemoryStore[T any, P Record[T]]() *MemoryStore[T, P] {
	return &MemoryStore[T, P]{data: make(map[uint]*T)}
}

func (s *MemoryStore[T, P]) Backend() Backend {
	return Transient
}

// Add inserts the entity, assigning the next free id when it has none.
// Adding an entity whose id is already present is a no-op.
func (s *MemoryStore[T, P]) Add(_ context.Context, entity *T) error {
	if entity == nil {
		return fmt.Errorf("%w: nil entity", ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := P(entity).EntityID()
	if id == 0 {
		s.lastID++
		id = s.lastID
		P(entity).SetEntityID(id)
	} else if _, found := s.data[id]; found {
		return nil
	}

	if id > s.lastID {
		s.lastID = id
	}
	s.data[id] = entity
	return nil
}

func (s *MemoryStore[T, P]) FindByID(_ context.Context, id uint) (*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if entity, ok := s.data[id]; ok {
		return entity, nil
	}
	return nil, ErrNotFound
}

// FindBy scans the entities in id order and returns the first whose column,
// resolved through the GORM naming strategy, equals value. value is
// converted to the column's Go type first, so an int matches a uint field.
func (s *MemoryStore[T, P]) FindBy(ctx context.Context, column string, value any) (*T, error) {
	field, err := lookupField[T](column)
	if err != nil {
		return nil, err
	}
	if rv := reflect.ValueOf(value); isNumber(rv.Kind()) && isNumber(field.FieldType.Kind()) {
		value = rv.Convert(field.FieldType).Interface()
	}

	entities, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	for _, entity := range entities {
		if v, _ := field.ValueOf(ctx, reflect.ValueOf(entity)); reflect.DeepEqual(v, value) {
			return entity, nil
		}
	}
	return nil, ErrNotFound
}

func isNumber(kind reflect.Kind) bool {
	return kind >= reflect.Int && kind <= reflect.Float64
}

// All returns the entities ordered by id.
func (s *MemoryStore[T, P]) All(_ context.Context) ([]*T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*T, 0, len(s.data))
	for _, entity := range s.data {
		result = append(result, entity)
	}
	slices.SortFunc(result, func(a, b *T) int {
		return cmp.Compare(P(a).EntityID(), P(b).EntityID())
	})
	return result, nil
}

func (s *MemoryStore[T, P]) Update(_ context.Context, entity *T) error {
	if entity == nil || P(entity).EntityID() == 0 {
		return fmt.Errorf("%w: update needs a stored entity", ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := P(entity).EntityID()
	if _, found := s.data[id]; !found {
		return ErrNotFound
	}
	s.data[id] = entity
	return nil
}

// Delete removes the entity with the same id. Deleting an absent entity is
// a no-op.
func (s *MemoryStore[T, P]) Delete(_ context.Context, entity *T) error {
	if entity == nil || P(entity).EntityID() == 0 {
		return fmt.Errorf("%w: delete needs a stored entity", ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, P(entity).EntityID())
	return nil
}
