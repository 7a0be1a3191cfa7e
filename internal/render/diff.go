// Package render turns frames into terminal writes. Diff computes the minimal
// set of cell writes between two frames; Painter applies them to a screen.
package render

import "github.com/vovakirdan/term-invaders/internal/core"

// Op is a single cell write: put Cell at column X, row Y.
type Op struct {
	X, Y int
	Cell core.Cell
}

// Diff returns one Op for every cell of curr that differs from prev, in
// row-major order. With force set every cell of curr is returned, which is
// how the first frame is painted.
func Diff(prev, curr *core.Frame, force bool) []Op {
	if force {
		ops := make([]Op, 0, core.Cols*core.Rows)
		for y := 0; y < core.Rows; y++ {
			for x := 0; x < core.Cols; x++ {
				ops = append(ops, Op{X: x, Y: y, Cell: curr[y][x]})
			}
		}
		return ops
	}

	if *prev == *curr {
		return nil
	}

	var ops []Op
	for y := 0; y < core.Rows; y++ {
		if prev[y] == curr[y] {
			continue
		}
		for x := 0; x < core.Cols; x++ {
			if prev[y][x] != curr[y][x] {
				ops = append(ops, Op{X: x, Y: y, Cell: curr[y][x]})
			}
		}
	}
	return ops
}
