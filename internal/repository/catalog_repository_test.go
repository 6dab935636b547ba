package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/fixbay/booking-api/pkg/errors"
)

func TestCatalogRepositoryFindByID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCatalogRepository(db, nil)

	rows := sqlmock.NewRows([]string{"id", "name", "duration_minutes", "active", "created_at"}).
		AddRow("plan-1", "Oil Change", 60, true, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, duration_minutes, active, created_at FROM service_plans WHERE id = $1")).
		WithArgs("plan-1").
		WillReturnRows(rows)

	plan, err := repo.FindByID(context.Background(), "plan-1")
	require.NoError(t, err)
	assert.Equal(t, "Oil Change", plan.Name)
	assert.Equal(t, 60, plan.DurationMinutes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepositoryFindByIDNotFound(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCatalogRepository(db, nil)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, duration_minutes, active, created_at FROM service_plans WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "duration_minutes", "active", "created_at"}))

	_, err := repo.FindByID(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepositoryListActive(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewCatalogRepository(db, nil)

	rows := sqlmock.NewRows([]string{"id", "name", "duration_minutes", "active", "created_at"}).
		AddRow("plan-1", "Brake Inspection", 90, true, time.Now()).
		AddRow("plan-2", "Oil Change", 60, true, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, duration_minutes, active, created_at FROM service_plans WHERE active = true ORDER BY name ASC")).
		WillReturnRows(rows)

	plans, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	assert.Len(t, plans, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
