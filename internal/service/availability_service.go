package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/fixbay/booking-api/internal/dto"
	"github.com/fixbay/booking-api/internal/models"
	"github.com/fixbay/booking-api/pkg/config"
	appErrors "github.com/fixbay/booking-api/pkg/errors"
)

type appointmentFetcher interface {
	ListByDate(ctx context.Context, date string) ([]models.Appointment, error)
	ListBlocksByDate(ctx context.Context, date string) ([]models.ManualBlockRow, error)
}

type planDurationReader interface {
	GetPlan(ctx context.Context, id string) (*models.ServicePlan, error)
}

// AvailabilityService evaluates day availability and slot recommendations
// for the workshop. The engine itself is pure; this service supplies the
// booked/blocked snapshots, the plan duration and the clock.
type AvailabilityService struct {
	appointments appointmentFetcher
	catalog      planDurationReader
	metrics      *MetricsService
	workshop     config.WorkshopConfig
	location     *time.Location
	now          func() time.Time
	validate     *validator.Validate
	logger       *zap.Logger
}

// NewAvailabilityService constructs the availability service.
func NewAvailabilityService(appointments appointmentFetcher, catalog planDurationReader, metrics *MetricsService, workshop config.WorkshopConfig, logger *zap.Logger) (*AvailabilityService, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	location, err := time.LoadLocation(workshop.Timezone)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrInternal, "load timezone "+workshop.Timezone)
	}
	return &AvailabilityService{
		appointments: appointments,
		catalog:      catalog,
		metrics:      metrics,
		workshop:     workshop,
		location:     location,
		now:          time.Now,
		validate:     validator.New(),
		logger:       logger,
	}, nil
}

// WithClock overrides the time source.
func (s *AvailabilityService) WithClock(now func() time.Time) *AvailabilityService {
	s.now = now
	return s
}

// grid builds the day grid for one plan duration from workshop config.
func (s *AvailabilityService) grid(slotMinutes int) []models.TimeSlot {
	open, err := ClockToMinutes(s.workshop.OpenTime)
	if err != nil {
		open = 8 * 60
	}
	closeAt, err := ClockToMinutes(s.workshop.CloseTime)
	if err != nil {
		closeAt = 20 * 60
	}
	return GridSpec{
		OpenMinutes:  open,
		CloseMinutes: closeAt,
		StepMinutes:  int(s.workshop.SlotStep.Minutes()),
		SlotMinutes:  slotMinutes,
	}.Generate()
}

// nowMinutesFor expresses "now" as minutes relative to the queried day's
// midnight in the workshop timezone. Past days land far above the grid and
// future days far below it, so the lead-time check covers both naturally.
func (s *AvailabilityService) nowMinutesFor(date string) (int, error) {
	day, err := time.ParseInLocation("2006-01-02", date, s.location)
	if err != nil {
		return 0, appErrors.Clone(appErrors.ErrValidation, "date must be YYYY-MM-DD")
	}
	return int(s.now().In(s.location).Sub(day).Minutes()), nil
}

// snapshot loads the day's booked intervals and manual blocks.
func (s *AvailabilityService) snapshot(ctx context.Context, date string) ([]models.BookedInterval, []models.ManualBlock, error) {
	rows, err := s.appointments.ListByDate(ctx, date)
	if err != nil {
		return nil, nil, err
	}
	blockRows, err := s.appointments.ListBlocksByDate(ctx, date)
	if err != nil {
		return nil, nil, err
	}
	booked := make([]models.BookedInterval, 0, len(rows))
	for _, row := range rows {
		booked = append(booked, row.Interval())
	}
	blocks := make([]models.ManualBlock, 0, len(blockRows))
	for _, row := range blockRows {
		blocks = append(blocks, row.Interval())
	}
	return booked, blocks, nil
}

// DayAvailability evaluates every slot of the requested day for one plan.
func (s *AvailabilityService) DayAvailability(ctx context.Context, date, planID string) (*dto.DayAvailabilityResponse, error) {
	nowMinutes, err := s.nowMinutesFor(date)
	if err != nil {
		return nil, err
	}
	plan, err := s.catalog.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	booked, blocks, err := s.snapshot(ctx, date)
	if err != nil {
		return nil, err
	}

	grid := s.grid(plan.DurationMinutes)
	minLead := int(s.workshop.MinLeadTime.Minutes())
	start := time.Now()
	verdicts := make([]models.SlotVerdict, 0, len(grid))
	for _, slot := range grid {
		verdicts = append(verdicts, EvaluateSlot(slot, booked, blocks, s.workshop.Capacity, nowMinutes, minLead))
	}
	stats := Aggregate(verdicts, grid, booked, s.workshop.Capacity)
	s.metrics.RecordVerdicts(verdicts, time.Since(start))

	s.logger.Debug("day availability evaluated",
		zap.String("date", date),
		zap.String("plan_id", planID),
		zap.Int("slots", len(verdicts)),
		zap.Int("available", stats.Available),
	)

	resp := &dto.DayAvailabilityResponse{
		Date:         date,
		PlanID:       planID,
		SlotMinutes:  plan.DurationMinutes,
		Capacity:     s.workshop.Capacity,
		Slots:        make([]dto.SlotVerdictResponse, 0, len(verdicts)),
		Stats:        stats,
		GeneratedFor: s.now().In(s.location).Format(time.RFC3339),
	}
	for _, v := range verdicts {
		resp.Slots = append(resp.Slots, dto.SlotVerdictResponse{
			Start:     MinutesToClock(v.Slot.Start),
			End:       MinutesToClock(v.Slot.End),
			Available: v.Available,
			Reason:    string(v.Reason),
			Occupied:  v.Occupied,
			Capacity:  v.Capacity,
		})
	}
	return resp, nil
}

// Recommend suggests additional slots on top of the caller's selection.
func (s *AvailabilityService) Recommend(ctx context.Context, req dto.RecommendationRequest) (*dto.RecommendationResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	selection := make([]models.TimeSlot, 0, len(req.Selection))
	for _, r := range req.Selection {
		start, err := ClockToMinutes(r.Start)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("selection start %q", r.Start))
		}
		end, err := ClockToMinutes(r.End)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("selection end %q", r.End))
		}
		if end <= start {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("selection %s-%s is empty", r.Start, r.End))
		}
		selection = append(selection, models.TimeSlot{Start: start, End: end})
	}

	nowMinutes, err := s.nowMinutesFor(req.Date)
	if err != nil {
		return nil, err
	}
	plan, err := s.catalog.GetPlan(ctx, req.PlanID)
	if err != nil {
		return nil, err
	}
	booked, blocks, err := s.snapshot(ctx, req.Date)
	if err != nil {
		return nil, err
	}

	maxAdditional := s.workshop.MaxSelectable
	if req.MaxAdditional != nil {
		maxAdditional = *req.MaxAdditional
	}

	grid := s.grid(plan.DurationMinutes)
	minLead := int(s.workshop.MinLeadTime.Minutes())
	result, trace := Recommend(grid, selection, booked, blocks, s.workshop.Capacity, nowMinutes, minLead, maxAdditional)
	if trace.Winner != "none" {
		s.metrics.RecordSolverWin(trace.Winner)
	}

	s.logger.Debug("recommendation computed",
		zap.String("date", req.Date),
		zap.String("plan_id", req.PlanID),
		zap.Int("candidates", trace.Candidates),
		zap.String("winner", trace.Winner),
		zap.Int("recommended", len(result.Recommended)),
	)

	resp := &dto.RecommendationResponse{
		Date:                     req.Date,
		PlanID:                   req.PlanID,
		Recommended:              make([]dto.SlotRange, 0, len(result.Recommended)),
		CurrentMaxAppointments:   result.CurrentMaxAppointments,
		PotentialMaxAppointments: result.PotentialMaxAppointments,
		ImprovementPossible:      result.ImprovementPossible,
		Trace:                    trace,
	}
	for _, slot := range result.Recommended {
		resp.Recommended = append(resp.Recommended, dto.SlotRange{
			Start: MinutesToClock(slot.Start),
			End:   MinutesToClock(slot.End),
		})
	}
	return resp, nil
}
