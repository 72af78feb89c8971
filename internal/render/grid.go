package render

import (
	"image/color"
)

// Cell is a single character cell of a terminal frame.
type Cell struct {
	Glyph rune
	FG    color.RGBA
	BG    color.RGBA
}

var blankCell = Cell{Glyph: ' ', FG: Palette[ColorWhite], BG: Palette[ColorBlack]}

// CellBuffer is a 2D grid of character cells.
type CellBuffer struct {
	Cols  int
	Rows  int
	Cells []Cell
}

// NewCellBuffer creates a new cell buffer filled with blank cells.
func NewCellBuffer(cols, rows int) *CellBuffer {
	b := &CellBuffer{Cols: cols, Rows: rows, Cells: make([]Cell, cols*rows)}
	b.Clear()
	return b
}

func (b *CellBuffer) in(x, y int) bool {
	return x >= 0 && x < b.Cols && y >= 0 && y < b.Rows
}

// Set writes a single cell at (x, y). Out-of-bounds writes are ignored.
func (b *CellBuffer) Set(x, y int, c Cell) {
	if b.in(x, y) {
		b.Cells[y*b.Cols+x] = c
	}
}

// Get reads a single cell at (x, y). Out-of-bounds reads return a blank cell.
func (b *CellBuffer) Get(x, y int) Cell {
	if b.in(x, y) {
		return b.Cells[y*b.Cols+x]
	}
	return blankCell
}

// Paint sets the background of (x, y), keeping its glyph.
func (b *CellBuffer) Paint(x, y int, bg color.RGBA) {
	if b.in(x, y) {
		b.Cells[y*b.Cols+x].BG = bg
	}
}

// Plot sets the glyph and foreground of (x, y), keeping its background.
func (b *CellBuffer) Plot(x, y int, glyph rune, fg color.RGBA) {
	if b.in(x, y) {
		c := &b.Cells[y*b.Cols+x]
		c.Glyph = glyph
		c.FG = fg
	}
}

// Clear resets all cells to blank (space on black).
func (b *CellBuffer) Clear() {
	for i := range b.Cells {
		b.Cells[i] = blankCell
	}
}

// WriteString writes s starting at (x, y), one rune per cell, over the
// existing backgrounds.
func (b *CellBuffer) WriteString(x, y int, s string, fg color.RGBA) {
	offset := 0
	for _, ch := range s {
		b.Plot(x+offset, y, ch, fg)
		offset++
	}
}
