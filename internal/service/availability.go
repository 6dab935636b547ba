package service

import (
	"fmt"
	"sort"

	"github.com/fixbay/booking-api/internal/models"
)

// verdictCheck inspects one slot against one unavailability cause. The first
// matching check in precedence order decides the verdict.
type verdictCheck struct {
	reason  models.SlotReason
	applies func(slot models.TimeSlot, ctx evalContext) bool
}

// evalContext carries the per-slot inputs the precedence checks need.
type evalContext struct {
	occupied   int
	capacity   int
	blocked    bool
	nowMinutes int
	minLead    int
}

// verdictPolicy is the ordered precedence of unavailability causes. A slot
// both too soon and fully booked reports TOO_SOON; a blocked slot reports
// MANUALLY_BLOCKED even when also at capacity.
var verdictPolicy = []verdictCheck{
	{
		reason: models.ReasonTooSoon,
		applies: func(slot models.TimeSlot, ctx evalContext) bool {
			return TooSoon(slot.Start, ctx.nowMinutes, ctx.minLead)
		},
	},
	{
		reason: models.ReasonManuallyBlocked,
		applies: func(slot models.TimeSlot, ctx evalContext) bool {
			return ctx.blocked
		},
	},
	{
		reason: models.ReasonFullyBooked,
		applies: func(slot models.TimeSlot, ctx evalContext) bool {
			return ctx.occupied >= ctx.capacity
		},
	},
}

// EvaluateSlot computes the verdict for one slot given the day's bookings
// and blocks. Occupied is always the raw overlap count, even when another
// reason wins the verdict.
func EvaluateSlot(slot models.TimeSlot, booked []models.BookedInterval, blocks []models.ManualBlock, capacity, nowMinutes, minLead int) models.SlotVerdict {
	occupied := 0
	for _, b := range booked {
		if overlapsInterval(slot, b.Start, b.End) {
			occupied++
		}
	}
	blocked := false
	for _, blk := range blocks {
		if overlapsInterval(slot, blk.Start, blk.End) {
			blocked = true
			break
		}
	}

	ctx := evalContext{
		occupied:   occupied,
		capacity:   capacity,
		blocked:    blocked,
		nowMinutes: nowMinutes,
		minLead:    minLead,
	}
	verdict := models.SlotVerdict{
		Slot:      slot,
		Available: true,
		Reason:    models.ReasonAvailable,
		Occupied:  occupied,
		Capacity:  capacity,
	}
	for _, check := range verdictPolicy {
		if check.applies(slot, ctx) {
			verdict.Available = false
			verdict.Reason = check.reason
			break
		}
	}
	return verdict
}

// Aggregate summarises a day's verdicts and derives the theoretical best
// throughput plus a utilization percentage against it.
func Aggregate(verdicts []models.SlotVerdict, grid []models.TimeSlot, booked []models.BookedInterval, capacity int) models.DayStats {
	stats := models.DayStats{}
	for _, v := range verdicts {
		switch v.Reason {
		case models.ReasonAvailable:
			stats.Available++
		case models.ReasonFullyBooked:
			stats.FullyBooked++
		case models.ReasonManuallyBlocked:
			stats.ManuallyBlocked++
		case models.ReasonTooSoon:
			stats.TooSoon++
		}
	}
	stats.MaximumCapacity = maximumDailyCapacity(grid, capacity)
	if stats.MaximumCapacity > 0 {
		stats.Utilization = fmt.Sprintf("%.1f%%", float64(len(booked))/float64(stats.MaximumCapacity)*100)
	} else {
		stats.Utilization = "0.0%"
	}
	return stats
}

// maximumDailyCapacity computes the theoretical daily throughput: for each
// mechanic, greedily pack non-overlapping slots from the raw grid by earliest
// end time. Manual blocks are deliberately not subtracted; the figure is an
// upper bound on a fully staffed, unobstructed day.
func maximumDailyCapacity(grid []models.TimeSlot, capacity int) int {
	if capacity <= 0 || len(grid) == 0 {
		return 0
	}
	total := 0
	for unit := 0; unit < capacity; unit++ {
		total += packNonOverlapping(grid)
	}
	return total
}

// packNonOverlapping counts the largest set of mutually non-overlapping
// slots, taking the earliest-ending compatible slot each time.
func packNonOverlapping(slots []models.TimeSlot) int {
	ordered := make([]models.TimeSlot, len(slots))
	copy(ordered, slots)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].End != ordered[j].End {
			return ordered[i].End < ordered[j].End
		}
		return ordered[i].Start < ordered[j].Start
	})
	count := 0
	lastEnd := -1
	for _, s := range ordered {
		if s.Start >= lastEnd {
			count++
			lastEnd = s.End
		}
	}
	return count
}
