package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixbay/booking-api/internal/models"
)

func slot(start, end int) models.TimeSlot {
	return models.TimeSlot{Start: start, End: end}
}

func TestDPSolverBeatsGreedyOnSplitWeights(t *testing.T) {
	candidates := []candidate{
		{slot: slot(540, 660), weight: 3},
		{slot: slot(540, 600), weight: 2},
		{slot: slot(600, 660), weight: 2},
	}

	greedy := greedySolver{}.Solve(candidates, 2)
	assert.Equal(t, 3, greedy.weight)
	assert.Equal(t, 1, greedy.count())

	dp := dpSolver{}.Solve(candidates, 2)
	assert.Equal(t, 4, dp.weight)
	assert.Equal(t, 2, dp.count())

	chosen, winner := pickSolution(dp, greedy)
	assert.Equal(t, "dp", winner)
	assert.Equal(t, 4, chosen.weight)
}

func TestDPSolverHonoursBudget(t *testing.T) {
	candidates := []candidate{
		{slot: slot(480, 540), weight: 1},
		{slot: slot(540, 600), weight: 1},
		{slot: slot(600, 660), weight: 1},
		{slot: slot(660, 720), weight: 1},
	}
	sol := dpSolver{}.Solve(candidates, 2)
	assert.Equal(t, 2, sol.count())
	assert.Equal(t, 2, sol.weight)
}

func TestGreedySolverPrefersHeavyThenEarly(t *testing.T) {
	candidates := []candidate{
		{slot: slot(600, 660), weight: 1},
		{slot: slot(480, 540), weight: 1},
		{slot: slot(540, 600), weight: 2},
	}
	sol := greedySolver{}.Solve(candidates, 3)
	require.Equal(t, 3, sol.count())
	assert.Equal(t, slot(480, 540), sol.slots[0])
	assert.Equal(t, 4, sol.weight)
}

func TestSolversOnEmptyInput(t *testing.T) {
	assert.Zero(t, dpSolver{}.Solve(nil, 4).count())
	assert.Zero(t, greedySolver{}.Solve(nil, 4).count())
	assert.Zero(t, dpSolver{}.Solve([]candidate{{slot: slot(480, 540), weight: 1}}, 0).count())
}

func TestPickSolutionPolicy(t *testing.T) {
	heavy := solution{slots: []models.TimeSlot{slot(480, 600)}, weight: 4}
	lightPair := solution{slots: []models.TimeSlot{slot(480, 540), slot(540, 600)}, weight: 4}
	light := solution{slots: []models.TimeSlot{slot(480, 540)}, weight: 2}

	_, winner := pickSolution(heavy, light)
	assert.Equal(t, "dp", winner)

	_, winner = pickSolution(light, heavy)
	assert.Equal(t, "greedy", winner)

	// Equal weight: more slots win.
	chosen, winner := pickSolution(lightPair, heavy)
	assert.Equal(t, "dp", winner)
	assert.Equal(t, 2, chosen.count())

	// Exact tie in weight and count goes to greedy.
	_, winner = pickSolution(heavy, solution{slots: []models.TimeSlot{slot(600, 720)}, weight: 4})
	assert.Equal(t, "greedy", winner)
}

func TestRecommendDisjointness(t *testing.T) {
	grid := workshopGrid(60).Generate()
	selection := []models.TimeSlot{slot(600, 660)}
	booked := []models.BookedInterval{{Start: "13:00", End: "14:00"}}

	result, trace := Recommend(grid, selection, booked, noBlocks, 2, farFuture, 120, 4)
	require.NotEmpty(t, result.Recommended)
	assert.Equal(t, 3, len(result.Recommended))
	assert.Positive(t, trace.Candidates)

	for i, a := range result.Recommended {
		for _, sel := range selection {
			assert.False(t, Overlaps(a.Start, a.End, sel.Start, sel.End), "overlaps selection")
		}
		for j, b := range result.Recommended {
			if i == j {
				continue
			}
			assert.False(t, Overlaps(a.Start, a.End, b.Start, b.End), "recommended slots overlap")
		}
	}
}

func TestRecommendNeverWorseThanGreedy(t *testing.T) {
	grid := workshopGrid(90).Generate()
	booked := []models.BookedInterval{
		{Start: "09:00", End: "10:30"},
		{Start: "12:00", End: "13:30"},
	}
	blocks := []models.ManualBlock{{Start: "17:00", End: "18:00"}}

	result, trace := Recommend(grid, nil, booked, blocks, 2, farFuture, 120, 4)

	finalWeight := 0
	for _, s := range result.Recommended {
		verdict := EvaluateSlot(s, booked, blocks, 2, farFuture, 120)
		finalWeight += 2 - verdict.Occupied
	}
	assert.GreaterOrEqual(t, finalWeight, trace.GreedyWeight)
}

func TestRecommendEmptyWhenSelectionSaturated(t *testing.T) {
	grid := workshopGrid(60).Generate()
	selection := []models.TimeSlot{
		slot(480, 540), slot(540, 600), slot(600, 660), slot(660, 720),
	}

	result, trace := Recommend(grid, selection, noBooked, noBlocks, 2, farFuture, 120, 4)
	assert.Empty(t, result.Recommended)
	assert.False(t, result.ImprovementPossible)
	assert.Equal(t, "none", trace.Winner)
	assert.Equal(t, result.CurrentMaxAppointments, result.PotentialMaxAppointments)
}

func TestRecommendEmptyWhenNothingAvailable(t *testing.T) {
	grid := workshopGrid(60).Generate()
	blocks := []models.ManualBlock{{Start: "08:00", End: "20:00"}}

	result, _ := Recommend(grid, nil, noBooked, blocks, 2, farFuture, 120, 4)
	assert.Empty(t, result.Recommended)
	assert.False(t, result.ImprovementPossible)
}

func TestRecommendReportsImprovement(t *testing.T) {
	grid := workshopGrid(60).Generate()

	result, trace := Recommend(grid, nil, noBooked, noBlocks, 2, farFuture, 120, 2)
	require.Len(t, result.Recommended, 2)
	assert.Equal(t, 0, result.CurrentMaxAppointments)
	assert.Equal(t, 4, result.PotentialMaxAppointments)
	assert.True(t, result.ImprovementPossible)
	assert.Zero(t, trace.Backfilled)
}
