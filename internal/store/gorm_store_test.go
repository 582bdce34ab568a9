package store_test

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"immo-service/internal/model"
	"immo-service/internal/store"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := store.Open(":memory:", nil)
	require.NoError(t, err)
	require.NoError(t, db.Migrator().CreateTable(&model.Broker{}, &model.Customer{}))
	return db
}

func TestGormStore_CRUD(t *testing.T) {
	s := store.NewGormStore[model.Customer](setupTestDB(t))
	assert.Equal(t, store.Persistent, s.Backend())

	all, err := s.All(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	erika := &model.Customer{FirstName: "Erika", LastName: "Mustermann", Address: "Informatikum 12a"}
	hans := &model.Customer{FirstName: "Hans", LastName: "Albers", Address: "Reeperbahn 9"}
	require.NoError(t, s.Add(ctx, erika))
	require.NoError(t, s.Add(ctx, hans))
	assert.NotZero(t, erika.ID)
	assert.NotEqual(t, erika.ID, hans.ID)

	found, err := s.FindByID(ctx, erika.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mustermann", found.LastName)

	found, err = s.FindBy(ctx, "last_name", "Albers")
	require.NoError(t, err)
	assert.Equal(t, hans.ID, found.ID)

	found.Address = "Große Freiheit 36"
	require.NoError(t, s.Update(ctx, found))
	reloaded, err := s.FindByID(ctx, hans.ID)
	require.NoError(t, err)
	assert.Equal(t, "Große Freiheit 36", reloaded.Address)
	assert.Equal(t, "Hans", reloaded.FirstName)

	require.NoError(t, s.Delete(ctx, erika))
	_, err = s.FindByID(ctx, erika.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	all, err = s.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, hans.ID, all[0].ID)
}

func TestGormStore_FindByReturnsLowestID(t *testing.T) {
	s := store.NewGormStore[model.Broker](setupTestDB(t))

	first := &model.Broker{Name: "Tobi Mustermann", Login: "max", Password: "max"}
	second := &model.Broker{Name: "Max Zweitmann", Login: "max", Password: "max"}
	require.NoError(t, s.Add(ctx, first))
	require.NoError(t, s.Add(ctx, second))

	found, err := s.FindBy(ctx, "login", "max")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)
}

func TestGormStore_InvalidArguments(t *testing.T) {
	s := store.NewGormStore[model.Broker](setupTestDB(t))

	assert.ErrorIs(t, s.Add(ctx, nil), store.ErrInvalidArgument)
	assert.ErrorIs(t, s.Update(ctx, &model.Broker{Name: "unsaved"}), store.ErrInvalidArgument)
	assert.ErrorIs(t, s.Delete(ctx, &model.Broker{}), store.ErrInvalidArgument)
}

func TestGormStore_MissingTable(t *testing.T) {
	db, err := store.Open(":memory:", nil)
	require.NoError(t, err)
	s := store.NewGormStore[model.Broker](db)

	_, err = s.All(ctx)
	assert.ErrorIs(t, err, store.ErrStore)
	assert.NotErrorIs(t, err, store.ErrNotFound)
}

func TestGormStore_CommitFailure(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	s := store.NewGormStore[model.Broker](db)

	lost := errors.New("connection lost")
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "makler"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(lost)

	err = s.Delete(ctx, &model.Broker{ID: 7})
	assert.ErrorIs(t, err, store.ErrStore)
	assert.ErrorIs(t, err, lost)
	assert.NoError(t, mock.ExpectationsWereMet())
}
