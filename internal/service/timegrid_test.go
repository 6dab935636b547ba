package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func workshopGrid(slotMinutes int) GridSpec {
	return GridSpec{
		OpenMinutes:  8 * 60,
		CloseMinutes: 20 * 60,
		StepMinutes:  30,
		SlotMinutes:  slotMinutes,
	}
}

func TestGridSlotsStayInsideWorkingHours(t *testing.T) {
	for duration := 30; duration <= 720; duration += 30 {
		slots := workshopGrid(duration).Generate()
		require.NotEmpty(t, slots, "duration %d should produce slots", duration)
		for _, slot := range slots {
			assert.GreaterOrEqual(t, slot.Start, 8*60)
			assert.LessOrEqual(t, slot.End, 20*60)
			assert.Equal(t, duration, slot.Duration())
		}
	}
}

func TestGridEmptyWhenDurationExceedsDay(t *testing.T) {
	assert.Empty(t, workshopGrid(721).Generate())
	assert.Empty(t, workshopGrid(12*60+30).Generate())
}

func TestGridSixtyMinuteSlots(t *testing.T) {
	slots := workshopGrid(60).Generate()
	require.Len(t, slots, 23)
	assert.Equal(t, "08:00-09:00", slots[0].String())
	assert.Equal(t, "19:00-20:00", slots[len(slots)-1].String())
}

func TestGridRejectsDegenerateSpec(t *testing.T) {
	assert.Nil(t, GridSpec{OpenMinutes: 480, CloseMinutes: 1200, StepMinutes: 0, SlotMinutes: 60}.Generate())
	assert.Nil(t, GridSpec{OpenMinutes: 480, CloseMinutes: 1200, StepMinutes: 30, SlotMinutes: 0}.Generate())
}
