package solver

import (
	"sort"

	"github.com/samber/lo"

	"github.com/domino14/crossgen/crossword"
)

// SelectUnassignedSlot picks the next slot to fill: minimum remaining
// values first, then maximum degree, then the tie-break policy. A lone
// unassigned slot is returned outright. Callers must not invoke this
// on a complete assignment.
func (s *Solver) SelectUnassignedSlot(a Assignment) crossword.Slot {
	unassigned := lo.Filter(s.cw.Slots(), func(slot crossword.Slot, _ int) bool {
		_, ok := a[slot]
		return !ok
	})
	minRemaining := len(s.domains[unassigned[0]])
	for _, slot := range unassigned[1:] {
		if n := len(s.domains[slot]); n < minRemaining {
			minRemaining = n
		}
	}
	mrv := lo.Filter(unassigned, func(slot crossword.Slot, _ int) bool {
		return len(s.domains[slot]) == minRemaining
	})
	if len(unassigned) == 1 {
		return mrv[0]
	}
	maxDegree := len(s.cw.Neighbors(mrv[0]))
	for _, slot := range mrv[1:] {
		if d := len(s.cw.Neighbors(slot)); d > maxDegree {
			maxDegree = d
		}
	}
	tied := lo.Filter(mrv, func(slot crossword.Slot, _ int) bool {
		return len(s.cw.Neighbors(slot)) == maxDegree
	})
	return tied[s.tieBreak(len(tied))]
}

// OrderDomainValues orders a slot's candidates least-constraining
// first. A candidate's cost counts the already-assigned neighbors
// whose word is that same candidate; anything else costs zero. The
// sort is stable, so equal-cost words keep domain order.
func (s *Solver) OrderDomainValues(slot crossword.Slot, a Assignment) []string {
	domain := s.domains[slot]
	cost := make(map[string]int, len(domain))
	for _, w := range domain {
		cost[w] = 0
	}
	for _, n := range s.cw.Neighbors(slot) {
		neighborWord, ok := a[n]
		if !ok {
			continue
		}
		if _, inDomain := cost[neighborWord]; inDomain {
			cost[neighborWord]++
		}
	}
	ordered := make([]string, len(domain))
	copy(ordered, domain)
	sort.SliceStable(ordered, func(i, k int) bool {
		return cost[ordered[i]] < cost[ordered[k]]
	})
	return ordered
}
