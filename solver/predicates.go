package solver

// AssignmentComplete reports whether every slot of the puzzle has an
// assigned word.
func (s *Solver) AssignmentComplete(a Assignment) bool {
	for _, slot := range s.cw.Slots() {
		if _, ok := a[slot]; !ok {
			return false
		}
	}
	return true
}

// Consistent reports whether a (possibly partial) assignment violates
// no constraint: all assigned words distinct, every word the length of
// its slot, and every pair of assigned neighbors agreeing at their
// overlap. Unassigned neighbors are unconstrained.
func (s *Solver) Consistent(a Assignment) bool {
	seen := make(map[string]bool, len(a))
	for slot, word := range a {
		if seen[word] || len(word) != slot.Length {
			return false
		}
		seen[word] = true
		for _, n := range s.cw.Neighbors(slot) {
			neighborWord, ok := a[n]
			if !ok {
				continue
			}
			ov, ok := s.cw.Overlap(slot, n)
			if !ok {
				continue
			}
			if word[ov.XIdx] != neighborWord[ov.YIdx] {
				return false
			}
		}
	}
	return true
}
