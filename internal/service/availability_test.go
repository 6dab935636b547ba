package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixbay/booking-api/internal/models"
)

var (
	noBooked []models.BookedInterval
	noBlocks []models.ManualBlock
	// farFuture stands for a query on a day well past the lead window.
	farFuture = -24 * 60
)

func TestEvaluateSlotAvailable(t *testing.T) {
	slot := models.TimeSlot{Start: 540, End: 600}
	verdict := EvaluateSlot(slot, noBooked, noBlocks, 2, farFuture, 120)

	assert.True(t, verdict.Available)
	assert.Equal(t, models.ReasonAvailable, verdict.Reason)
	assert.Equal(t, 0, verdict.Occupied)
	assert.Equal(t, 2, verdict.Capacity)
}

func TestEvaluateSlotCountsAllOverlappingBookings(t *testing.T) {
	slot := models.TimeSlot{Start: 540, End: 600}
	booked := []models.BookedInterval{
		{Start: "09:00", End: "10:00"},
		{Start: "09:30", End: "10:30"},
	}
	verdict := EvaluateSlot(slot, booked, noBlocks, 2, farFuture, 120)

	assert.False(t, verdict.Available)
	assert.Equal(t, models.ReasonFullyBooked, verdict.Reason)
	assert.Equal(t, 2, verdict.Occupied)
	assert.Equal(t, 2, verdict.Capacity)
}

func TestEvaluateSlotTouchingBookingDoesNotCount(t *testing.T) {
	slot := models.TimeSlot{Start: 540, End: 600}
	booked := []models.BookedInterval{
		{Start: "08:00", End: "09:00"},
		{Start: "10:00", End: "11:00"},
	}
	verdict := EvaluateSlot(slot, booked, noBlocks, 1, farFuture, 120)

	assert.True(t, verdict.Available)
	assert.Equal(t, 0, verdict.Occupied)
}

func TestEvaluateSlotTooSoonWinsOverBlocked(t *testing.T) {
	slot := models.TimeSlot{Start: 480, End: 540}
	blocks := []models.ManualBlock{{Start: "08:00", End: "12:00"}}

	// Now 07:00 with a 2h lead: 08:00 is both too soon and blocked.
	verdict := EvaluateSlot(slot, noBooked, blocks, 2, 420, 120)

	assert.False(t, verdict.Available)
	assert.Equal(t, models.ReasonTooSoon, verdict.Reason)
}

func TestEvaluateSlotBlockedWinsOverFullyBooked(t *testing.T) {
	slot := models.TimeSlot{Start: 540, End: 600}
	booked := []models.BookedInterval{
		{Start: "09:00", End: "10:00"},
		{Start: "09:00", End: "10:00"},
	}
	blocks := []models.ManualBlock{{Start: "09:00", End: "10:00"}}

	verdict := EvaluateSlot(slot, booked, blocks, 2, farFuture, 120)

	assert.Equal(t, models.ReasonManuallyBlocked, verdict.Reason)
	assert.Equal(t, 2, verdict.Occupied)
}

func TestEvaluateSlotZeroCapacity(t *testing.T) {
	slot := models.TimeSlot{Start: 540, End: 600}
	verdict := EvaluateSlot(slot, noBooked, noBlocks, 0, farFuture, 120)

	assert.False(t, verdict.Available)
	assert.Equal(t, models.ReasonFullyBooked, verdict.Reason)
	assert.Equal(t, 0, verdict.Occupied)
	assert.Equal(t, 0, verdict.Capacity)
}

func TestEvaluateSlotMalformedBookingIsIgnored(t *testing.T) {
	slot := models.TimeSlot{Start: 540, End: 600}
	booked := []models.BookedInterval{
		{Start: "garbage", End: "10:00"},
		{Start: "09:00", End: "25:99"},
	}
	verdict := EvaluateSlot(slot, booked, noBlocks, 1, farFuture, 120)

	assert.True(t, verdict.Available)
	assert.Equal(t, 0, verdict.Occupied)
}

func evaluateDay(grid []models.TimeSlot, booked []models.BookedInterval, blocks []models.ManualBlock, capacity int) []models.SlotVerdict {
	verdicts := make([]models.SlotVerdict, 0, len(grid))
	for _, slot := range grid {
		verdicts = append(verdicts, EvaluateSlot(slot, booked, blocks, capacity, farFuture, 120))
	}
	return verdicts
}

func TestAggregateTallies(t *testing.T) {
	grid := workshopGrid(60).Generate()
	booked := []models.BookedInterval{
		{Start: "09:00", End: "10:00"},
		{Start: "09:00", End: "10:00"},
	}
	blocks := []models.ManualBlock{{Start: "14:00", End: "15:00"}}

	verdicts := evaluateDay(grid, booked, blocks, 2)
	stats := Aggregate(verdicts, grid, booked, 2)

	total := stats.Available + stats.FullyBooked + stats.ManuallyBlocked + stats.TooSoon
	assert.Equal(t, len(grid), total)
	assert.Positive(t, stats.FullyBooked)
	assert.Positive(t, stats.ManuallyBlocked)
	assert.Zero(t, stats.TooSoon)
}

func TestAggregateAvailableMonotonicInCapacity(t *testing.T) {
	grid := workshopGrid(60).Generate()
	booked := []models.BookedInterval{
		{Start: "09:00", End: "10:00"},
		{Start: "09:30", End: "10:30"},
		{Start: "13:00", End: "14:00"},
	}
	blocks := []models.ManualBlock{{Start: "16:00", End: "17:00"}}

	previous := -1
	for capacity := 0; capacity <= 4; capacity++ {
		verdicts := evaluateDay(grid, booked, blocks, capacity)
		stats := Aggregate(verdicts, grid, booked, capacity)
		assert.GreaterOrEqual(t, stats.Available, previous, "capacity %d", capacity)
		previous = stats.Available
	}
}

func TestMaximumDailyCapacityPacksPerMechanic(t *testing.T) {
	grid := workshopGrid(60).Generate()

	// One mechanic fits 12 non-overlapping hour slots in a 12-hour day.
	assert.Equal(t, 12, maximumDailyCapacity(grid, 1))
	assert.Equal(t, 24, maximumDailyCapacity(grid, 2))
	assert.Equal(t, 0, maximumDailyCapacity(grid, 0))
	assert.Equal(t, 0, maximumDailyCapacity(nil, 3))
}

func TestMaximumDailyCapacityIgnoresBlocks(t *testing.T) {
	grid := workshopGrid(60).Generate()
	blocks := []models.ManualBlock{{Start: "08:00", End: "20:00"}}

	verdicts := evaluateDay(grid, noBooked, blocks, 1)
	stats := Aggregate(verdicts, grid, noBooked, 1)

	// The theoretical maximum is computed over the raw grid, so a fully
	// blocked day still reports the unobstructed throughput.
	assert.Zero(t, stats.Available)
	assert.Equal(t, 12, stats.MaximumCapacity)
}

func TestAggregateUtilization(t *testing.T) {
	grid := workshopGrid(60).Generate()
	booked := []models.BookedInterval{
		{Start: "09:00", End: "10:00"},
		{Start: "11:00", End: "12:00"},
		{Start: "15:00", End: "16:00"},
	}

	verdicts := evaluateDay(grid, booked, nil, 1)
	stats := Aggregate(verdicts, grid, booked, 1)
	require.Equal(t, 12, stats.MaximumCapacity)
	assert.Equal(t, "25.0%", stats.Utilization)

	zeroStats := Aggregate(nil, nil, booked, 0)
	assert.Equal(t, "0.0%", zeroStats.Utilization)
}
