package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/fixbay/booking-api/internal/models"
	appErrors "github.com/fixbay/booking-api/pkg/errors"
)

// CatalogRepository reads service plans.
type CatalogRepository struct {
	db      *sqlx.DB
	observe func(label string, duration time.Duration)
}

// NewCatalogRepository builds repository.
func NewCatalogRepository(db *sqlx.DB, observe func(label string, duration time.Duration)) *CatalogRepository {
	if observe == nil {
		observe = func(string, time.Duration) {}
	}
	return &CatalogRepository{db: db, observe: observe}
}

// FindByID returns one plan.
func (r *CatalogRepository) FindByID(ctx context.Context, id string) (*models.ServicePlan, error) {
	const query = `SELECT id, name, duration_minutes, active, created_at FROM service_plans WHERE id = $1`
	start := time.Now()
	var plan models.ServicePlan
	err := r.db.GetContext(ctx, &plan, query, id)
	r.observe("service_plans_find_by_id", time.Since(start))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "plan "+id)
		}
		return nil, fmt.Errorf("find plan %s: %w", id, err)
	}
	return &plan, nil
}

// ListActive returns every active plan ordered by name.
func (r *CatalogRepository) ListActive(ctx context.Context) ([]models.ServicePlan, error) {
	const query = `SELECT id, name, duration_minutes, active, created_at FROM service_plans WHERE active = true ORDER BY name ASC`
	start := time.Now()
	var plans []models.ServicePlan
	err := r.db.SelectContext(ctx, &plans, query)
	r.observe("service_plans_list_active", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("list active plans: %w", err)
	}
	return plans, nil
}
