package models

import "time"

// Appointment statuses relevant to capacity consumption.
const (
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusPending   = "pending"
)

// Appointment is one capacity-consuming row for a calendar day: either a
// confirmed schedule or one ranked candidate slot of a pending appointment.
type Appointment struct {
	ID            string    `db:"id" json:"id"`
	PlanID        string    `db:"plan_id" json:"plan_id"`
	Status        string    `db:"status" json:"status"`
	SlotDate      string    `db:"slot_date" json:"slot_date"`
	StartTime     string    `db:"start_time" json:"start_time"`
	EndTime       string    `db:"end_time" json:"end_time"`
	CandidateRank int       `db:"candidate_rank" json:"candidate_rank"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// Interval converts the row into the engine's booked-interval shape.
func (a Appointment) Interval() BookedInterval {
	return BookedInterval{Start: a.StartTime, End: a.EndTime}
}

// ManualBlockRow is the stored form of an administrator block.
type ManualBlockRow struct {
	ID        string    `db:"id" json:"id"`
	BlockDate string    `db:"block_date" json:"block_date"`
	StartTime string    `db:"start_time" json:"start_time"`
	EndTime   string    `db:"end_time" json:"end_time"`
	Note      string    `db:"note" json:"note"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Interval converts the row into the engine's manual-block shape.
func (b ManualBlockRow) Interval() ManualBlock {
	return ManualBlock{Start: b.StartTime, End: b.EndTime}
}
