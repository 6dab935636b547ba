package service

import (
	"sort"

	"github.com/fixbay/booking-api/internal/models"
)

// candidate is an available slot annotated with its remaining free capacity,
// the weight the solvers maximize.
type candidate struct {
	slot   models.TimeSlot
	weight int
}

// solution is one solver's pick: the chosen slots and their summed weight.
type solution struct {
	slots  []models.TimeSlot
	weight int
}

func (s solution) count() int { return len(s.slots) }

// slotSolver selects up to budget mutually non-overlapping candidates.
type slotSolver interface {
	Name() string
	Solve(candidates []candidate, budget int) solution
}

// dpSolver runs the weighted-interval-scheduling dynamic program bounded by
// the selection budget. It is exact for the stated objective.
type dpSolver struct{}

func (dpSolver) Name() string { return "dp" }

func (dpSolver) Solve(candidates []candidate, budget int) solution {
	n := len(candidates)
	if n == 0 || budget <= 0 {
		return solution{}
	}
	ordered := make([]candidate, n)
	copy(ordered, candidates)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].slot.End != ordered[j].slot.End {
			return ordered[i].slot.End < ordered[j].slot.End
		}
		return ordered[i].slot.Start < ordered[j].slot.Start
	})

	// prev[i] is the rightmost candidate ending at or before candidate i
	// starts, or -1 when none exists.
	prev := make([]int, n)
	for i := 0; i < n; i++ {
		prev[i] = -1
		for j := i - 1; j >= 0; j-- {
			if ordered[j].slot.End <= ordered[i].slot.Start {
				prev[i] = j
				break
			}
		}
	}

	// dp[i][j] = best weight using the first i candidates with at most j
	// picks; take[i][j] records whether candidate i-1 is in that optimum.
	dp := make([][]int, n+1)
	take := make([][]bool, n+1)
	for i := 0; i <= n; i++ {
		dp[i] = make([]int, budget+1)
		take[i] = make([]bool, budget+1)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= budget; j++ {
			skip := dp[i-1][j]
			with := ordered[i-1].weight + dp[prev[i-1]+1][j-1]
			if with > skip {
				dp[i][j] = with
				take[i][j] = true
			} else {
				dp[i][j] = skip
			}
		}
	}

	var picked []models.TimeSlot
	for i, j := n, budget; i > 0 && j > 0; {
		if take[i][j] {
			picked = append(picked, ordered[i-1].slot)
			i = prev[i-1] + 1
			j--
		} else {
			i--
		}
	}
	sort.Slice(picked, func(i, j int) bool { return picked[i].Start < picked[j].Start })
	return solution{slots: picked, weight: dp[n][budget]}
}

// greedySolver takes candidates by weight descending, start ascending,
// keeping each one that stays disjoint from what it already took.
type greedySolver struct{}

func (greedySolver) Name() string { return "greedy" }

func (greedySolver) Solve(candidates []candidate, budget int) solution {
	if len(candidates) == 0 || budget <= 0 {
		return solution{}
	}
	ordered := make([]candidate, len(candidates))
	copy(ordered, candidates)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].weight != ordered[j].weight {
			return ordered[i].weight > ordered[j].weight
		}
		return ordered[i].slot.Start < ordered[j].slot.Start
	})

	var sol solution
	for _, c := range ordered {
		if sol.count() >= budget {
			break
		}
		if overlapsAny(c.slot, sol.slots) {
			continue
		}
		sol.slots = append(sol.slots, c.slot)
		sol.weight += c.weight
	}
	sort.Slice(sol.slots, func(i, j int) bool { return sol.slots[i].Start < sol.slots[j].Start })
	return sol
}

// pickSolution decides between the exact and greedy results. The exact
// result wins on strictly higher weight; on equal weight the solution
// offering more slots wins, greedy taking an exact tie.
func pickSolution(dp, greedy solution) (solution, string) {
	if dp.weight > greedy.weight {
		return dp, "dp"
	}
	if dp.weight == greedy.weight && dp.count() > greedy.count() {
		return dp, "dp"
	}
	return greedy, "greedy"
}

func overlapsAny(slot models.TimeSlot, others []models.TimeSlot) bool {
	for _, o := range others {
		if Overlaps(slot.Start, slot.End, o.Start, o.End) {
			return true
		}
	}
	return false
}

// Recommend chooses up to maxAdditional slots, disjoint from each other and
// from the current selection, that maximize the additional appointments the
// day could still absorb. The returned trace records both solver outcomes
// and the comparator's decision.
func Recommend(grid []models.TimeSlot, selection []models.TimeSlot, booked []models.BookedInterval, blocks []models.ManualBlock, capacity, nowMinutes, minLead, maxAdditional int) (models.RecommendationResult, models.SolverTrace) {
	trace := models.SolverTrace{Winner: "none"}
	result := models.RecommendationResult{Recommended: []models.TimeSlot{}}

	budget := maxAdditional - len(selection)
	if budget <= 0 {
		result.CurrentMaxAppointments = weightSum(selection, booked, capacity)
		result.PotentialMaxAppointments = result.CurrentMaxAppointments
		return result, trace
	}

	var candidates []candidate
	for _, slot := range grid {
		verdict := EvaluateSlot(slot, booked, blocks, capacity, nowMinutes, minLead)
		if !verdict.Available {
			continue
		}
		if overlapsAny(slot, selection) {
			continue
		}
		candidates = append(candidates, candidate{slot: slot, weight: capacity - verdict.Occupied})
	}
	trace.Candidates = len(candidates)

	dpSol := dpSolver{}.Solve(candidates, budget)
	greedySol := greedySolver{}.Solve(candidates, budget)
	trace.DPWeight = dpSol.weight
	trace.DPCount = dpSol.count()
	trace.GreedyWeight = greedySol.weight
	trace.GreedyCount = greedySol.count()

	chosen, winner := pickSolution(dpSol, greedySol)
	trace.Winner = winner

	// Backfill: the bounded optimum can leave budget unused when another
	// disjoint candidate still fits. Append remaining candidates in
	// chronological order until the budget or candidates run out.
	if chosen.count() < budget {
		remaining := make([]candidate, 0, len(candidates))
		for _, c := range candidates {
			if !containsSlot(chosen.slots, c.slot) {
				remaining = append(remaining, c)
			}
		}
		sort.Slice(remaining, func(i, j int) bool { return remaining[i].slot.Start < remaining[j].slot.Start })
		for _, c := range remaining {
			if chosen.count() >= budget {
				break
			}
			if overlapsAny(c.slot, chosen.slots) {
				continue
			}
			chosen.slots = append(chosen.slots, c.slot)
			chosen.weight += c.weight
			trace.Backfilled++
		}
		sort.Slice(chosen.slots, func(i, j int) bool { return chosen.slots[i].Start < chosen.slots[j].Start })
	}

	result.Recommended = chosen.slots
	result.CurrentMaxAppointments = weightSum(selection, booked, capacity)
	combined := make([]models.TimeSlot, 0, len(selection)+len(chosen.slots))
	combined = append(combined, selection...)
	combined = append(combined, chosen.slots...)
	result.PotentialMaxAppointments = weightSum(combined, booked, capacity)
	result.ImprovementPossible = result.PotentialMaxAppointments > result.CurrentMaxAppointments
	return result, trace
}

// weightSum totals the remaining free capacity across a disjoint slot set.
func weightSum(slots []models.TimeSlot, booked []models.BookedInterval, capacity int) int {
	total := 0
	for _, slot := range slots {
		occupied := 0
		for _, b := range booked {
			if overlapsInterval(slot, b.Start, b.End) {
				occupied++
			}
		}
		if w := capacity - occupied; w > 0 {
			total += w
		}
	}
	return total
}

func containsSlot(slots []models.TimeSlot, target models.TimeSlot) bool {
	for _, s := range slots {
		if s == target {
			return true
		}
	}
	return false
}
