package service

import (
	"strconv"
	"strings"

	"github.com/fixbay/booking-api/internal/models"
	appErrors "github.com/fixbay/booking-api/pkg/errors"
)

// ClockToMinutes parses an "HH:MM" clock string into minutes since midnight.
func ClockToMinutes(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, appErrors.Clone(appErrors.ErrInvalidTime, "expected HH:MM, got "+strconv.Quote(clock))
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, appErrors.Clone(appErrors.ErrInvalidTime, "bad hour in "+strconv.Quote(clock))
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, appErrors.Clone(appErrors.ErrInvalidTime, "bad minute in "+strconv.Quote(clock))
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, appErrors.Clone(appErrors.ErrInvalidTime, "out of range: "+strconv.Quote(clock))
	}
	return hours*60 + minutes, nil
}

// MinutesToClock renders minutes since midnight as "HH:MM".
func MinutesToClock(minutes int) string {
	return models.Clock(minutes)
}

// Overlaps reports whether two half-open intervals share any time. Intervals
// that merely touch at a boundary do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// overlapsInterval counts a stored clock-string interval against a slot.
// Unparseable intervals contribute zero overlap rather than failing the pass.
func overlapsInterval(slot models.TimeSlot, start, end string) bool {
	s, err := ClockToMinutes(start)
	if err != nil {
		return false
	}
	e, err := ClockToMinutes(end)
	if err != nil {
		return false
	}
	return Overlaps(slot.Start, slot.End, s, e)
}

// TooSoon reports whether a slot starts before the minimum lead time has
// elapsed from now. Both instants are minutes since midnight on the queried
// day; for past dates every slot is too soon, for future dates none are
// (callers pass a negative nowMinutes far below zero or above the day).
func TooSoon(slotStart, nowMinutes, minLeadMinutes int) bool {
	return slotStart < nowMinutes+minLeadMinutes
}
