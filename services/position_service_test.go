package services

import (
	"errors"
	"testing"
	"time"

	"hrms-http-service/config"
	"hrms-http-service/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCache is an in-memory stand-in for the Redis option cache.
type fakeCache struct {
	store map[string][]models.PositionOption
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string][]models.PositionOption)}
}

func (f *fakeCache) Set(key string, value interface{}, _ time.Duration) error {
	if options, ok := value.([]models.PositionOption); ok {
		f.store[key] = options
	}
	return nil
}

func (f *fakeCache) Get(key string, dest interface{}) error {
	options, ok := f.store[key]
	if !ok {
		return errors.New("cache miss")
	}
	*dest.(*[]models.PositionOption) = options
	return nil
}

func (f *fakeCache) Delete(key string) error {
	delete(f.store, key)
	return nil
}

func (f *fakeCache) DeletePattern(string) error {
	f.store = make(map[string][]models.PositionOption)
	return nil
}

func (f *fakeCache) BlacklistToken(string, time.Duration) error { return nil }

func (f *fakeCache) IsTokenBlacklisted(string) (bool, error) { return false, nil }

func TestGetPositionOptionsFiltersByDepartment(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewPositionService(db, &config.Config{}, nil)

	mock.ExpectQuery("SELECT `id`,`title` FROM `positions` WHERE department_id = \\?").
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).
			AddRow(1, "Backend Engineer").
			AddRow(4, "SRE"))

	departmentID := uint(2)
	options, err := svc.GetPositionOptions(&departmentID)
	require.NoError(t, err)
	assert.Equal(t, []models.PositionOption{
		{ID: 1, Title: "Backend Engineer"},
		{ID: 4, Title: "SRE"},
	}, options)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPositionOptionsServesFromCache(t *testing.T) {
	db, mock := newMockDB(t)
	cache := newFakeCache()
	svc := NewPositionService(db, &config.Config{}, cache)

	// First call misses the cache and hits the database
	mock.ExpectQuery("SELECT `id`,`title` FROM `positions`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).
			AddRow(1, "Backend Engineer"))

	first, err := svc.GetPositionOptions(nil)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// Second call is answered from the cache with no DB traffic
	second, err := svc.GetPositionOptions(nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePositionInvalidatesOptionCache(t *testing.T) {
	db, mock := newMockDB(t)
	cache := newFakeCache()
	cache.store["positions:options:all"] = []models.PositionOption{{ID: 1, Title: "Stale"}}
	svc := NewPositionService(db, &config.Config{}, cache)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `positions`").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	require.NoError(t, svc.CreatePosition(&models.Position{Title: "Data Engineer"}))
	assert.Empty(t, cache.store, "mutations must flush the option cache")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPositionByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewPositionService(db, &config.Config{}, nil)

	mock.ExpectQuery("SELECT \\* FROM `positions` WHERE").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.GetPositionByID(404)
	assert.ErrorIs(t, err, ErrPositionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
