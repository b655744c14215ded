// Package solver fills a crossword by constraint satisfaction: node
// consistency over word lengths, AC-3 arc propagation over slot
// overlaps, and backtracking search with MRV/degree variable ordering
// and a least-constraining-value ordering of candidates.
package solver

import (
	"encoding/binary"
	"errors"
	"maps"
	"time"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"github.com/domino14/crossgen/crossword"
)

var ErrNoSolution = errors.New("no crossword fill found")

// An Assignment maps slots to their chosen words. It is partial during
// search and complete when every slot of the puzzle has an entry.
type Assignment map[crossword.Slot]string

// A TieBreaker picks an index in [0, n) among slots tied on both the
// MRV and degree heuristics. n is always >= 1.
type TieBreaker func(n int) int

// FirstTieBreaker always takes the first tied slot, which makes the
// whole search deterministic. This is the default.
func FirstTieBreaker(n int) int { return 0 }

// RandomTieBreaker picks uniformly among tied slots.
func RandomTieBreaker(n int) int { return frand.Intn(n) }

// SeededTieBreaker picks uniformly among tied slots but with a fixed
// seed, so repeated solves of the same puzzle are reproducible.
func SeededTieBreaker(seed uint64) TieBreaker {
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, seed)
	rng := frand.NewCustom(key, 1024, 12)
	return func(n int) int { return rng.Intn(n) }
}

// A Solver owns the domain store for one puzzle. It must not be shared
// between concurrent solves; create one Solver per Solve call.
type Solver struct {
	cw       *crossword.Crossword
	domains  map[crossword.Slot][]string
	tieBreak TieBreaker

	nodesVisited int
}

type Option func(*Solver)

// WithTieBreaker overrides the default deterministic tie-break.
func WithTieBreaker(tb TieBreaker) Option {
	return func(s *Solver) { s.tieBreak = tb }
}

// New creates a Solver with every slot's domain initialized to the
// full vocabulary. No length filtering has happened yet.
func New(cw *crossword.Crossword, opts ...Option) *Solver {
	s := &Solver{
		cw:       cw,
		domains:  make(map[crossword.Slot][]string, len(cw.Slots())),
		tieBreak: FirstTieBreaker,
	}
	for _, slot := range cw.Slots() {
		domain := make([]string, len(cw.Words()))
		copy(domain, cw.Words())
		s.domains[slot] = domain
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Domain returns the current candidate words for a slot.
func (s *Solver) Domain(slot crossword.Slot) []string {
	return s.domains[slot]
}

// SetDomain replaces a slot's candidate set, for callers that want to
// pre-filter a vocabulary before propagation.
func (s *Solver) SetDomain(slot crossword.Slot, words []string) {
	s.domains[slot] = words
}

// Solve narrows the domains with node and arc consistency, then runs
// backtracking search. AC-3's verdict is logged but not gated on; the
// search handles emptied domains on its own. Returns ErrNoSolution if
// the search exhausts without a complete consistent assignment.
func (s *Solver) Solve() (Assignment, error) {
	start := time.Now()
	s.EnforceNodeConsistency()
	if !s.AC3(nil) {
		log.Debug().Msg("arc consistency emptied a domain; searching anyway")
	}
	fill := s.Backtrack(Assignment{})
	log.Debug().Int("nodes", s.nodesVisited).
		Dur("elapsed", time.Since(start)).
		Bool("solved", fill != nil).
		Msg("search done")
	if fill == nil {
		return nil, ErrNoSolution
	}
	return fill, nil
}

// Backtrack extends a partial assignment to a complete consistent one,
// or returns nil if none is reachable from it. Each recursive step
// works on its own copy of the assignment, so failing branches are
// discarded rather than rolled back.
func (s *Solver) Backtrack(a Assignment) Assignment {
	s.nodesVisited++
	if s.AssignmentComplete(a) {
		if s.Consistent(a) {
			return a
		}
		return nil
	}
	slot := s.SelectUnassignedSlot(a)
	for _, word := range s.OrderDomainValues(slot, a) {
		next := maps.Clone(a)
		next[slot] = word
		if fill := s.Backtrack(next); fill != nil {
			return fill
		}
	}
	return nil
}
