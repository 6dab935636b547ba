package service

import (
	"strconv"

	"github.com/fixbay/booking-api/internal/dto"
	"github.com/fixbay/booking-api/pkg/export"
)

var daySheetHeaders = []string{"Slot", "Available", "Reason", "Occupied", "Capacity"}

// DaySheet flattens a day availability response into an exportable table,
// one row per slot plus the aggregate footer rows.
func DaySheet(day *dto.DayAvailabilityResponse) export.Dataset {
	rows := make([]map[string]string, 0, len(day.Slots)+2)
	for _, slot := range day.Slots {
		rows = append(rows, map[string]string{
			"Slot":      slot.Start + "-" + slot.End,
			"Available": strconv.FormatBool(slot.Available),
			"Reason":    slot.Reason,
			"Occupied":  strconv.Itoa(slot.Occupied),
			"Capacity":  strconv.Itoa(slot.Capacity),
		})
	}
	rows = append(rows, map[string]string{
		"Slot":      "MAX CAPACITY",
		"Available": strconv.Itoa(day.Stats.MaximumCapacity),
	})
	rows = append(rows, map[string]string{
		"Slot":      "UTILIZATION",
		"Available": day.Stats.Utilization,
	})
	return export.Dataset{Headers: daySheetHeaders, Rows: rows}
}
