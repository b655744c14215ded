package crossword

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// OpenCell marks a fillable cell in a structure file. Any other
// character is a blocked cell.
const OpenCell = '_'

// ParseStructure reads a grid-shape description: one line per row,
// OpenCell for fillable cells. Short lines are padded with blocked
// cells so every row has the width of the longest one.
func ParseStructure(r io.Reader) ([][]bool, error) {
	var rows [][]rune
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		rows = append(rows, []rune(strings.TrimRight(scanner.Text(), "\r")))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty structure")
	}
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return nil, fmt.Errorf("structure has no columns")
	}
	structure := make([][]bool, len(rows))
	for i, row := range rows {
		structure[i] = make([]bool, width)
		for j, c := range row {
			structure[i][j] = c == OpenCell
		}
	}
	return structure, nil
}

// LoadStructure parses a structure from a file on disk.
func LoadStructure(path string) ([][]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseStructure(f)
}

// deriveSlots finds every maximal run of open cells of length >= 2, in
// both directions. An open cell covered by no such run still needs a
// word, so it becomes a length-1 across slot; generating only one
// direction for isolated cells keeps the all-words-distinct rule
// satisfiable on single-cell grids.
func deriveSlots(structure [][]bool) []Slot {
	height := len(structure)
	width := len(structure[0])
	open := func(i, j int) bool {
		return i >= 0 && i < height && j >= 0 && j < width && structure[i][j]
	}
	var slots []Slot
	covered := map[[2]int]bool{}

	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			if open(i, j) && !open(i, j-1) {
				length := 0
				for open(i, j+length) {
					length++
				}
				if length >= 2 {
					slots = append(slots, Slot{Row: i, Col: j, Length: length, Direction: Across})
					for k := 0; k < length; k++ {
						covered[[2]int{i, j + k}] = true
					}
				}
			}
			if open(i, j) && !open(i-1, j) {
				length := 0
				for open(i+length, j) {
					length++
				}
				if length >= 2 {
					slots = append(slots, Slot{Row: i, Col: j, Length: length, Direction: Down})
					for k := 0; k < length; k++ {
						covered[[2]int{i + k, j}] = true
					}
				}
			}
		}
	}
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			if open(i, j) && !covered[[2]int{i, j}] {
				slots = append(slots, Slot{Row: i, Col: j, Length: 1, Direction: Across})
			}
		}
	}
	sortSlots(slots)
	return slots
}

// sortSlots orders row-major, across before down, shorter first; this
// is the stable iteration order the solver sees.
func sortSlots(slots []Slot) {
	sort.Slice(slots, func(i, k int) bool {
		return slotLess(slots[i], slots[k])
	})
}

func slotLess(a, b Slot) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	if a.Col != b.Col {
		return a.Col < b.Col
	}
	if a.Direction != b.Direction {
		return a.Direction < b.Direction
	}
	return a.Length < b.Length
}
