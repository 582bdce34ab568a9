package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore keeps one entity kind in a relational table. Every call opens
// its own transaction, which is committed on success and rolled back on
// error or panic.
type GormStore[T any, P Record[T]] struct {
	db *gorm.DB
}

// NewGormStore creates a store over the table of T in db
func NewGormStore[T any, P Record[T]](db *gorm.DB) *GormStore[T, P] {
	return &GormStore[T, P]{db: db}
}

func (s *GormStore[T, P]) Backend() Backend {
	return Persistent
}

func (s *GormStore[T, P]) unitOfWork(ctx context.Context, op string, fn func(tx *gorm.DB) error) error {
	if err := s.db.WithContext(ctx).Transaction(fn); err != nil {
		return translate(op, err)
	}
	return nil
}

func translate(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound), errors.Is(err, ErrNotFound):
		return ErrNotFound
	case errors.Is(err, ErrInvalidArgument):
		return err
	default:
		return fmt.Errorf("%w: %s: %w", ErrStore, op, err)
	}
}

func (s *GormStore[T, P]) Add(ctx context.Context, entity *T) error {
	if entity == nil {
		return fmt.Errorf("%w: nil entity", ErrInvalidArgument)
	}
	return s.unitOfWork(ctx, "add", func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(entity).Error
	})
}

func (s *GormStore[T, P]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	err := s.unitOfWork(ctx, "find by id", func(tx *gorm.DB) error {
		return tx.First(&entity, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (s *GormStore[T, P]) FindBy(ctx context.Context, column string, value any) (*T, error) {
	var entity T
	err := s.unitOfWork(ctx, "find by "+column, func(tx *gorm.DB) error {
		return tx.Where(map[string]any{column: value}).First(&entity).Error
	})
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (s *GormStore[T, P]) All(ctx context.Context) ([]*T, error) {
	entities := make([]*T, 0)
	err := s.unitOfWork(ctx, "list", func(tx *gorm.DB) error {
		return tx.Order("id").Find(&entities).Error
	})
	if err != nil {
		return nil, err
	}
	return entities, nil
}

// Update writes all columns of a detached entity back to its row.
func (s *GormStore[T, P]) Update(ctx context.Context, entity *T) error {
	if entity == nil || P(entity).EntityID() == 0 {
		return fmt.Errorf("%w: update needs a stored entity", ErrInvalidArgument)
	}
	return s.unitOfWork(ctx, "update", func(tx *gorm.DB) error {
		result := tx.Model(entity).
			Select("*").
			Omit(clause.Associations, "CreatedAt").
			Updates(entity)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

func (s *GormStore[T, P]) Delete(ctx context.Context, entity *T) error {
	if entity == nil || P(entity).EntityID() == 0 {
		return fmt.Errorf("%w: delete needs a stored entity", ErrInvalidArgument)
	}
	return s.unitOfWork(ctx, "delete", func(tx *gorm.DB) error {
		return tx.Delete(entity).Error
	})
}
