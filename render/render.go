// Package render turns a fill assignment back into human-readable
// forms: a letter matrix, terminal text, and a PNG image.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/domino14/crossgen/crossword"
	"github.com/domino14/crossgen/solver"
)

const blockedGlyph = '█'

// LetterGrid places every assigned word into a Height x Width rune
// matrix. Cells with no letter (blocked, or their slot unassigned)
// hold zero. The assignment may be partial. A cell holds one byte of
// its word: the solver constrains byte offsets, so a word's byte
// length is what has to match the slot, and rendering has to agree
// with that or a solved grid could show blank cells.
func LetterGrid(cw *crossword.Crossword, a solver.Assignment) [][]rune {
	letters := make([][]rune, cw.Height())
	for i := range letters {
		letters[i] = make([]rune, cw.Width())
	}
	for slot, word := range a {
		for k := 0; k < len(word); k++ {
			i, j := slot.Cell(k)
			letters[i][j] = rune(word[k])
		}
	}
	return letters
}

// Text renders the grid for a terminal: letters in open cells, a
// block glyph elsewhere.
func Text(cw *crossword.Crossword, a solver.Assignment) string {
	letters := LetterGrid(cw, a)
	var sb strings.Builder
	for i := 0; i < cw.Height(); i++ {
		for j := 0; j < cw.Width(); j++ {
			switch {
			case !cw.Open(i, j):
				sb.WriteRune(blockedGlyph)
			case letters[i][j] != 0:
				sb.WriteRune(letters[i][j])
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

const (
	cellSize   = 42
	cellBorder = 2
)

// SavePNG writes the filled grid as an image: white squares with black
// letters on a black background.
func SavePNG(cw *crossword.Crossword, a solver.Assignment, filename string) error {
	letters := LetterGrid(cw, a)
	img := image.NewRGBA(image.Rect(0, 0, cw.Width()*cellSize, cw.Height()*cellSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	for i := 0; i < cw.Height(); i++ {
		for j := 0; j < cw.Width(); j++ {
			if !cw.Open(i, j) {
				continue
			}
			rect := image.Rect(
				j*cellSize+cellBorder, i*cellSize+cellBorder,
				(j+1)*cellSize-cellBorder, (i+1)*cellSize-cellBorder)
			draw.Draw(img, rect, image.NewUniform(color.White), image.Point{}, draw.Src)
			if letters[i][j] == 0 {
				continue
			}
			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(color.Black),
				Face: face,
				Dot: fixed.P(
					j*cellSize+(cellSize-face.Advance)/2,
					i*cellSize+(cellSize+face.Ascent)/2),
			}
			d.DrawString(string(letters[i][j]))
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
