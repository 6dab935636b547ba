package service

import "github.com/fixbay/booking-api/internal/models"

// GridSpec describes the day grid: working hours, step between consecutive
// slot starts, and the slot length. All values are minutes.
type GridSpec struct {
	OpenMinutes  int
	CloseMinutes int
	StepMinutes  int
	SlotMinutes  int
}

// Generate produces every slot whose full duration fits inside working
// hours. Slot starts advance by StepMinutes from opening; a slot whose end
// would pass closing time is excluded.
func (g GridSpec) Generate() []models.TimeSlot {
	if g.StepMinutes <= 0 || g.SlotMinutes <= 0 {
		return nil
	}
	slots := make([]models.TimeSlot, 0, (g.CloseMinutes-g.OpenMinutes)/g.StepMinutes+1)
	for start := g.OpenMinutes; start+g.SlotMinutes <= g.CloseMinutes; start += g.StepMinutes {
		slots = append(slots, models.TimeSlot{Start: start, End: start + g.SlotMinutes})
	}
	return slots
}
