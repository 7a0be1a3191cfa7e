package core

import (
	"strings"
)

// Grid dimensions in character cells. They are compile-time constants because
// Frame is a fixed-size array value.
const (
	Cols = 40
	Rows = 20
)

// Cell is one display cell of a Frame.
// The zero Cell is the empty sentinel: nothing has been drawn there.
type Cell struct {
	Glyph rune
	Color Color
}

// Empty reports whether nothing has been drawn in the cell.
func (c Cell) Empty() bool {
	return c.Glyph == 0
}

// Rune returns the glyph to put on the terminal for this cell.
// Empty cells are shown as a space.
func (c Cell) Rune() rune {
	if c.Glyph == 0 {
		return ' '
	}
	return c.Glyph
}

// Frame is a fixed Cols x Rows grid of cells, the unit of rendered state.
// It is a plain value: copying a Frame copies every cell, and two frames are
// equal (==) when all their cells are equal. A frame handed to the render
// loop belongs to it and is never written again by the producer.
type Frame [Rows][Cols]Cell

// NewFrame returns a frame where every cell is empty.
func NewFrame() Frame {
	return Frame{}
}

// InBounds reports whether (x, y) addresses a cell of the grid.
func InBounds(x, y int) bool {
	return x >= 0 && x < Cols && y >= 0 && y < Rows
}

// Set places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (f *Frame) Set(x, y int, c Cell) {
	if !InBounds(x, y) {
		return
	}
	f[y][x] = c
}

// SetGlyph places a glyph with the given color at (x, y).
func (f *Frame) SetGlyph(x, y int, r rune, color Color) {
	f.Set(x, y, Cell{Glyph: r, Color: color})
}

// Get returns the cell at the given position.
// Returns the empty cell for out-of-bounds coordinates.
func (f *Frame) Get(x, y int) Cell {
	if !InBounds(x, y) {
		return Cell{}
	}
	return f[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond the grid are clipped.
func (f *Frame) DrawText(x, y int, text string, color Color) {
	i := 0
	for _, r := range text {
		f.SetGlyph(x+i, y, r, color)
		i++
	}
}

// Count returns how many cells hold a glyph.
func (f *Frame) Count() int {
	n := 0
	for y := range f {
		for x := range f[y] {
			if !f[y][x].Empty() {
				n++
			}
		}
	}
	return n
}

// String converts the frame to plain text, one line per row.
// Empty cells become spaces and colors are dropped.
func (f *Frame) String() string {
	var sb strings.Builder
	sb.Grow(Cols*Rows + Rows)

	for y := 0; y < Rows; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < Cols; x++ {
			sb.WriteRune(f[y][x].Rune())
		}
	}
	return sb.String()
}
