package models

import "fmt"

// TimeSlot is a candidate appointment window on the day grid. Boundaries are
// minutes since midnight and the interval is half-open: [Start, End).
type TimeSlot struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Duration returns the slot length in minutes.
func (s TimeSlot) Duration() int {
	return s.End - s.Start
}

// Clock renders a slot boundary as "HH:MM".
func Clock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// String renders the slot as "HH:MM-HH:MM".
func (s TimeSlot) String() string {
	return Clock(s.Start) + "-" + Clock(s.End)
}

// BookedInterval is one unit of consumed capacity: a confirmed appointment
// schedule or one ranked candidate slot of a pending appointment. Boundaries
// stay as raw clock strings so a malformed stored value can be skipped
// instead of failing the whole availability pass.
type BookedInterval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ManualBlock is an administrator-declared unavailable interval. It consumes
// all capacity for any overlapping slot regardless of booking count.
type ManualBlock struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SlotReason classifies why a slot is or is not selectable.
type SlotReason string

const (
	ReasonAvailable       SlotReason = "AVAILABLE"
	ReasonFullyBooked     SlotReason = "FULLY_BOOKED"
	ReasonManuallyBlocked SlotReason = "MANUALLY_BLOCKED"
	ReasonTooSoon         SlotReason = "TOO_SOON"
)

// SlotVerdict is the computed availability of one slot. It is rebuilt on
// every query; the underlying booked and blocked sets change between calls.
type SlotVerdict struct {
	Slot      TimeSlot   `json:"slot"`
	Available bool       `json:"available"`
	Reason    SlotReason `json:"reason"`
	// Occupied is the raw count of booked intervals overlapping the slot.
	// It may exceed Capacity when the day is over-booked.
	Occupied int `json:"occupied"`
	Capacity int `json:"capacity"`
}

// DayStats aggregates verdicts over the full grid.
type DayStats struct {
	Available       int `json:"available"`
	FullyBooked     int `json:"fullyBooked"`
	ManuallyBlocked int `json:"manuallyBlocked"`
	TooSoon         int `json:"tooSoon"`
	// MaximumCapacity is the theoretical best daily throughput: an
	// earliest-end greedy packing of the raw grid, one pass per mechanic.
	MaximumCapacity int `json:"maximumCapacity"`
	// Utilization is current appointments over MaximumCapacity, one
	// decimal place, "0.0%" when the maximum is zero.
	Utilization string `json:"utilization"`
}

// RecommendationResult is the engine's suggested set of additional slots.
type RecommendationResult struct {
	Recommended              []TimeSlot `json:"recommended"`
	CurrentMaxAppointments   int        `json:"currentMaxAppointments"`
	PotentialMaxAppointments int        `json:"potentialMaxAppointments"`
	ImprovementPossible      bool       `json:"improvementPossible"`
}

// SolverTrace records how the recommendation was arrived at. It replaces the
// ad hoc console diagnostics the optimisation path would otherwise need.
type SolverTrace struct {
	Candidates   int    `json:"candidates"`
	DPWeight     int    `json:"dpWeight"`
	DPCount      int    `json:"dpCount"`
	GreedyWeight int    `json:"greedyWeight"`
	GreedyCount  int    `json:"greedyCount"`
	Winner       string `json:"winner"`
	Backfilled   int    `json:"backfilled"`
}
