package solver

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/crossgen/crossword"
)

func TestNodeConsistencyLengths(t *testing.T) {
	is := is.New(t)
	cw := mustCrossword(t, crossingRows,
		[]string{"a", "do", "cat", "tar", "word", "longer"})
	s := New(cw)
	s.EnforceNodeConsistency()
	for _, slot := range cw.Slots() {
		for _, w := range s.Domain(slot) {
			is.Equal(len(w), slot.Length)
		}
	}
	is.Equal(len(s.Domain(cw.Slots()[0])), 2) // cat, tar
}

func TestNodeConsistencyCanEmptyADomain(t *testing.T) {
	is := is.New(t)
	cw := mustCrossword(t, crossingRows, []string{"do", "word"})
	s := New(cw)
	s.EnforceNodeConsistency()
	for _, slot := range cw.Slots() {
		is.Equal(len(s.Domain(slot)), 0) // unsatisfiable but valid state
	}
}

func TestReviseShrinksOrReportsFalse(t *testing.T) {
	is := is.New(t)
	cw := mustCrossword(t, crossingRows, nil)
	s := New(cw)
	down := crossword.Slot{Row: 0, Col: 1, Length: 3, Direction: crossword.Down}
	across := crossword.Slot{Row: 1, Col: 0, Length: 3, Direction: crossword.Across}

	s.SetDomain(across, []string{"cat", "dim", "tar"})
	s.SetDomain(down, []string{"law", "saw"})

	before := len(s.Domain(across))
	// only "tar" has 'a' at index 1 on the other side
	revised := s.Revise(across, down)
	is.True(revised)
	is.True(len(s.Domain(across)) < before)
	is.Equal(s.Domain(across), []string{"cat", "tar"})

	// a second pass changes nothing
	is.True(!s.Revise(across, down))
	is.Equal(s.Domain(across), []string{"cat", "tar"})
}

func TestReviseNoOverlap(t *testing.T) {
	is := is.New(t)
	cw := mustCrossword(t, []string{"__#__"}, []string{"at", "it"})
	s := New(cw)
	slots := cw.Slots()
	is.True(!s.Revise(slots[0], slots[1]))
}

// elbowRows crosses a length-3 across slot's index 1 with a length-3
// down slot's index 0. The asymmetric overlap means a word cannot
// trivially survive by pairing with its own copy in the other domain.
var elbowRows = []string{
	"___",
	"#_#",
	"#_#",
}

func TestAC3NarrowsDomains(t *testing.T) {
	is := is.New(t)
	cw := mustCrossword(t, elbowRows, []string{"saw", "was", "axe"})
	s := New(cw)
	s.EnforceNodeConsistency()
	is.True(s.AC3(nil))
	across := crossword.Slot{Row: 0, Col: 0, Length: 3, Direction: crossword.Across}
	down := crossword.Slot{Row: 0, Col: 1, Length: 3, Direction: crossword.Down}
	// only "axe" starts with a letter some across word has at index 1,
	// and "axe" itself cannot sit across (nothing has 'x' down)
	is.Equal(s.Domain(across), []string{"saw", "was"})
	is.Equal(s.Domain(down), []string{"axe"})
}

func TestAC3ExplicitArcs(t *testing.T) {
	is := is.New(t)
	cw := mustCrossword(t, elbowRows, []string{"saw", "was", "axe"})
	s := New(cw)
	s.EnforceNodeConsistency()
	across := crossword.Slot{Row: 0, Col: 0, Length: 3, Direction: crossword.Across}
	down := crossword.Slot{Row: 0, Col: 1, Length: 3, Direction: crossword.Down}

	is.True(s.AC3([]Arc{{X: across, Y: down}}))
	is.Equal(s.Domain(across), []string{"saw", "was"})
	// the supplied worklist never made down consistent with across
	is.Equal(s.Domain(down), []string{"saw", "was", "axe"})
}

func TestAC3LeavesCallerArcsAlone(t *testing.T) {
	is := is.New(t)
	cw := mustCrossword(t, elbowRows, []string{"saw", "was", "axe"})
	s := New(cw)
	s.EnforceNodeConsistency()
	across := crossword.Slot{Row: 0, Col: 0, Length: 3, Direction: crossword.Across}
	down := crossword.Slot{Row: 0, Col: 1, Length: 3, Direction: crossword.Down}

	// the caller still owns backing[1]; the revision of (across, down)
	// re-enqueues arcs, which must not spill into its array
	backing := make([]Arc, 2, 8)
	backing[0] = Arc{X: across, Y: down}
	backing[1] = Arc{X: down, Y: across}

	is.True(s.AC3(backing[:1]))
	is.Equal(backing[1], Arc{X: down, Y: across})
}

func TestAC3FailureOnEmptiedDomain(t *testing.T) {
	is := is.New(t)
	cw := mustCrossword(t, crossingRows, nil)
	s := New(cw)
	down := crossword.Slot{Row: 0, Col: 1, Length: 3, Direction: crossword.Down}
	across := crossword.Slot{Row: 1, Col: 0, Length: 3, Direction: crossword.Across}
	s.SetDomain(across, []string{"dim"})
	s.SetDomain(down, []string{"law", "saw"})
	is.True(!s.AC3(nil))
}

func TestAC3Terminates(t *testing.T) {
	is := is.New(t)
	// a denser grid with several interacting slots; the worklist grows
	// while domains shrink but has to drain eventually
	cw := mustCrossword(t, ringRows, ringWords)
	s := New(cw)
	s.EnforceNodeConsistency()
	is.True(s.AC3(nil))
	for _, slot := range cw.Slots() {
		is.True(len(s.Domain(slot)) > 0)
	}
}
