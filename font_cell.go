package widgets

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

// CellFont is a fixed-cell Font: every rune occupies a whole number of
// cells, as on a terminal. East Asian wide runes take two cells and
// combining marks take none.
//
// With CellWidth and Height of 1 a CellFont measures in terminal columns and
// rows, which is how cmd/widgetdemo lays widgets out.
type CellFont struct {
	CellWidth float32 // Pixel width of one cell
	Height    float32 // Line spacing in pixels
	TabCells  int     // Cells taken by a tab (0 = 4)
}

// NewCellFont creates a CellFont.
func NewCellFont(cellWidth, lineSpacing float32) *CellFont {
	return &CellFont{CellWidth: cellWidth, Height: lineSpacing}
}

// LineSpacing returns the configured line height.
func (f *CellFont) LineSpacing() float32 {
	return f.Height
}

func (f *CellFont) cells(r rune) int {
	switch r {
	case '\t':
		if f.TabCells > 0 {
			return f.TabCells
		}
		return 4
	case '\n', '\r':
		return 0
	}
	return runewidth.RuneWidth(r)
}

// TextExtent returns the width of text in pixels.
func (f *CellFont) TextExtent(text string) float32 {
	n := 0
	for _, r := range text {
		n += f.cells(r)
	}
	return float32(n) * f.CellWidth
}

// TextAdvance equals TextExtent for cell fonts.
func (f *CellFont) TextAdvance(text string) float32 {
	return f.TextExtent(text)
}

// CharAtPixel returns the index of the rune covering pixel x.
func (f *CellFont) CharAtPixel(text string, x float32) int {
	var cur float32
	idx := 0
	for _, r := range text {
		cur += float32(f.cells(r)) * f.CellWidth
		if x < cur {
			return idx
		}
		idx++
	}
	return idx
}

// HasGlyph reports whether r is printable (or a tab / line break).
func (f *CellFont) HasGlyph(r rune) bool {
	return r == '\n' || r == '\t' || unicode.IsGraphic(r)
}
