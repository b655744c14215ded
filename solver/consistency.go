package solver

import (
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/crossgen/crossword"
)

// An Arc is the ordered pair "make X consistent with Y".
type Arc struct {
	X, Y crossword.Slot
}

// EnforceNodeConsistency drops from every slot's domain the words
// whose length does not fit the slot. An emptied domain is left in
// place; AC-3 or the search will notice.
func (s *Solver) EnforceNodeConsistency() {
	for slot, domain := range s.domains {
		s.domains[slot] = lo.Filter(domain, func(w string, _ int) bool {
			return len(w) == slot.Length
		})
	}
}

// Revise removes from x's domain every word with no compatible partner
// left in y's domain, where compatible means agreeing at the overlap
// indices of (x, y). Returns whether x's domain shrank. Depends only
// on the two domains and the overlap entry.
func (s *Solver) Revise(x, y crossword.Slot) bool {
	ov, ok := s.cw.Overlap(x, y)
	if !ok {
		return false
	}
	domainX := s.domains[x]
	domainY := s.domains[y]
	kept := lo.Filter(domainX, func(wx string, _ int) bool {
		for _, wy := range domainY {
			if wx[ov.XIdx] == wy[ov.YIdx] {
				return true
			}
		}
		return false
	})
	s.domains[x] = kept
	return len(kept) != len(domainX)
}

// AC3 runs arc-consistency propagation over a FIFO worklist. A nil
// arcs argument seeds the worklist with every slot paired against each
// of its neighbors. Returns false as soon as any revision empties a
// domain, true once the worklist drains.
//
// After a revision of x, the arcs re-enqueued are (x, neighbor) for
// every neighbor of x, not the conventional (neighbor, x). Changing it
// would change which fills the search reaches first, so callers that
// care have to keep relying on the search's own consistency check
// rather than on propagation being complete.
func (s *Solver) AC3(arcs []Arc) bool {
	var queue []Arc
	if arcs == nil {
		for _, x := range s.cw.Slots() {
			for _, y := range s.cw.Neighbors(x) {
				queue = append(queue, Arc{x, y})
			}
		}
	} else {
		// work on a copy; re-enqueued arcs must never land in the
		// caller's backing array
		queue = make([]Arc, len(arcs))
		copy(queue, arcs)
	}
	processed := 0
	for len(queue) > 0 {
		arc := queue[0]
		queue = queue[1:]
		processed++
		if s.Revise(arc.X, arc.Y) {
			if len(s.domains[arc.X]) == 0 {
				log.Debug().Stringer("slot", arc.X).Int("arcs", processed).
					Msg("domain emptied during propagation")
				return false
			}
			for _, n := range s.cw.Neighbors(arc.X) {
				queue = append(queue, Arc{arc.X, n})
			}
		}
	}
	log.Debug().Int("arcs", processed).Msg("propagation drained")
	return true
}
