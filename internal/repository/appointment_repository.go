package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/fixbay/booking-api/internal/models"
)

// AppointmentRepository reads the capacity-consuming rows for a calendar day.
type AppointmentRepository struct {
	db      *sqlx.DB
	observe func(label string, duration time.Duration)
}

// NewAppointmentRepository builds repository.
func NewAppointmentRepository(db *sqlx.DB, observe func(label string, duration time.Duration)) *AppointmentRepository {
	if observe == nil {
		observe = func(string, time.Duration) {}
	}
	return &AppointmentRepository{db: db, observe: observe}
}

// ListByDate returns confirmed appointments and pending candidate slots for
// the day, ordered chronologically. Both consume capacity.
func (r *AppointmentRepository) ListByDate(ctx context.Context, date string) ([]models.Appointment, error) {
	const query = `SELECT id, plan_id, status, slot_date, start_time, end_time, candidate_rank, created_at
FROM appointments WHERE slot_date = $1 AND status IN ($2, $3) ORDER BY start_time ASC, candidate_rank ASC`
	start := time.Now()
	var rows []models.Appointment
	err := r.db.SelectContext(ctx, &rows, query, date, models.AppointmentStatusConfirmed, models.AppointmentStatusPending)
	r.observe("appointments_list_by_date", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("list appointments for %s: %w", date, err)
	}
	return rows, nil
}

// ListBlocksByDate returns administrator blocks for the day.
func (r *AppointmentRepository) ListBlocksByDate(ctx context.Context, date string) ([]models.ManualBlockRow, error) {
	const query = `SELECT id, block_date, start_time, end_time, note, created_at
FROM manual_blocks WHERE block_date = $1 ORDER BY start_time ASC`
	start := time.Now()
	var rows []models.ManualBlockRow
	err := r.db.SelectContext(ctx, &rows, query, date)
	r.observe("manual_blocks_list_by_date", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("list manual blocks for %s: %w", date, err)
	}
	return rows, nil
}
