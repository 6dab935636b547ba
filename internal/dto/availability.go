package dto

import "github.com/fixbay/booking-api/internal/models"

// SlotRange is a slot boundary pair in "HH:MM" clock form.
type SlotRange struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

// SlotVerdictResponse is the per-slot availability payload.
type SlotVerdictResponse struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
	Reason    string `json:"reason"`
	Occupied  int    `json:"occupied"`
	Capacity  int    `json:"capacity"`
}

// DayAvailabilityResponse is the full-day availability payload.
type DayAvailabilityResponse struct {
	Date         string                `json:"date"`
	PlanID       string                `json:"plan_id"`
	SlotMinutes  int                   `json:"slot_minutes"`
	Capacity     int                   `json:"capacity"`
	Slots        []SlotVerdictResponse `json:"slots"`
	Stats        models.DayStats       `json:"stats"`
	GeneratedFor string                `json:"generated_for"`
}

// RecommendationRequest asks for additional slots on top of a selection.
type RecommendationRequest struct {
	Date          string      `json:"date" validate:"required,datetime=2006-01-02"`
	PlanID        string      `json:"plan_id" validate:"required"`
	Selection     []SlotRange `json:"selection" validate:"dive"`
	MaxAdditional *int        `json:"max_additional" validate:"omitempty,min=0,max=24"`
}

// RecommendationResponse carries the chosen slots and the solver trace.
type RecommendationResponse struct {
	Date                     string             `json:"date"`
	PlanID                   string             `json:"plan_id"`
	Recommended              []SlotRange        `json:"recommended"`
	CurrentMaxAppointments   int                `json:"current_max_appointments"`
	PotentialMaxAppointments int                `json:"potential_max_appointments"`
	ImprovementPossible      bool               `json:"improvement_possible"`
	Trace                    models.SolverTrace `json:"trace"`
}

// PlanResponse is the catalog payload for one service plan.
type PlanResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	Active          bool   `json:"active"`
}
