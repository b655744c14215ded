// Package crossword contains the slot model for a crossword fill: the
// grid structure, the slots derived from it, and the overlap and
// neighbor relations between slots that the solver constrains against.
package crossword

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

type Direction uint8

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Across {
		return "across"
	}
	return "down"
}

// A Slot is one maximal run of open cells, to be filled with a single
// word. Row and Col locate its first cell. Slots are value types and
// are used as map keys throughout the solver.
type Slot struct {
	Row       int
	Col       int
	Length    int
	Direction Direction
}

func (s Slot) String() string {
	return fmt.Sprintf("(%d,%d) %s len %d", s.Row, s.Col, s.Direction, s.Length)
}

// Cell returns the grid coordinates of the k-th cell of the slot.
func (s Slot) Cell(k int) (int, int) {
	if s.Direction == Down {
		return s.Row + k, s.Col
	}
	return s.Row, s.Col + k
}

// An Overlap records, for an ordered pair of slots (x, y) sharing a
// cell, the character offset within each slot's word that must agree.
type Overlap struct {
	XIdx int
	YIdx int
}

type slotPair struct {
	x, y Slot
}

// A Crossword is the immutable description of one puzzle: grid shape,
// slots, overlap/neighbor relations, and the candidate vocabulary.
type Crossword struct {
	height    int
	width     int
	structure [][]bool
	slots     []Slot
	overlaps  map[slotPair]Overlap
	neighbors map[Slot][]Slot
	words     []string
}

// New builds a Crossword from a parsed structure (true = open cell)
// and a candidate vocabulary. The vocabulary is deduplicated but its
// first-seen order is kept; slot iteration order is stable for the
// lifetime of the Crossword.
func New(structure [][]bool, words []string) (*Crossword, error) {
	if len(structure) == 0 || len(structure[0]) == 0 {
		return nil, fmt.Errorf("structure has no cells")
	}
	cw := &Crossword{
		height:    len(structure),
		width:     len(structure[0]),
		structure: structure,
		overlaps:  map[slotPair]Overlap{},
		neighbors: map[Slot][]Slot{},
		words:     lo.Uniq(words),
	}
	cw.slots = deriveSlots(structure)
	cw.computeOverlaps()
	log.Debug().Int("slots", len(cw.slots)).Int("words", len(cw.words)).
		Msg("built crossword")
	return cw, nil
}

// computeOverlaps symmetrizes at construction: both ordered pairs of
// every crossing get an entry, with the index pair swapped.
func (cw *Crossword) computeOverlaps() {
	// cell -> slots covering it, with the offset inside each slot.
	type slotAt struct {
		slot Slot
		idx  int
	}
	covering := map[[2]int][]slotAt{}
	for _, s := range cw.slots {
		for k := 0; k < s.Length; k++ {
			i, j := s.Cell(k)
			covering[[2]int{i, j}] = append(covering[[2]int{i, j}], slotAt{s, k})
		}
	}
	for _, at := range covering {
		for a := 0; a < len(at); a++ {
			for b := a + 1; b < len(at); b++ {
				x, y := at[a], at[b]
				cw.overlaps[slotPair{x.slot, y.slot}] = Overlap{x.idx, y.idx}
				cw.overlaps[slotPair{y.slot, x.slot}] = Overlap{y.idx, x.idx}
			}
		}
	}
	for _, s := range cw.slots {
		for _, n := range cw.slots {
			if s == n {
				continue
			}
			if _, ok := cw.overlaps[slotPair{s, n}]; ok {
				cw.neighbors[s] = append(cw.neighbors[s], n)
			}
		}
	}
}

func (cw *Crossword) Height() int { return cw.height }
func (cw *Crossword) Width() int  { return cw.width }

// Open returns whether the cell at (i, j) is fillable.
func (cw *Crossword) Open(i, j int) bool {
	return i >= 0 && i < cw.height && j >= 0 && j < cw.width && cw.structure[i][j]
}

// Slots returns every slot in the puzzle, in a stable order.
func (cw *Crossword) Slots() []Slot {
	return cw.slots
}

// Neighbors returns the slots sharing at least one cell with s, in
// stable slot order.
func (cw *Crossword) Neighbors(s Slot) []Slot {
	return cw.neighbors[s]
}

// Overlap returns the index pair at which x's and y's words must agree,
// or ok=false if the two slots share no cell.
func (cw *Crossword) Overlap(x, y Slot) (Overlap, bool) {
	ov, ok := cw.overlaps[slotPair{x, y}]
	return ov, ok
}

// Words returns the full candidate vocabulary, before any filtering.
func (cw *Crossword) Words() []string {
	return cw.words
}
