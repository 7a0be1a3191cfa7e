package render

import (
	"github.com/gdamore/tcell/v2"
)

// ScreenPainter applies ops to a tcell screen with the grid's top-left
// corner placed at (OriginX, OriginY).
type ScreenPainter struct {
	screen  tcell.Screen
	OriginX int
	OriginY int
	writes  int
}

// NewScreenPainter returns a painter drawing at the top-left of screen.
func NewScreenPainter(screen tcell.Screen) *ScreenPainter {
	return &ScreenPainter{screen: screen}
}

// Paint writes every op and flushes the screen once.
// An empty batch writes nothing and does not flush.
func (p *ScreenPainter) Paint(ops []Op) {
	if len(ops) == 0 {
		return
	}
	for _, op := range ops {
		p.screen.SetContent(p.OriginX+op.X, p.OriginY+op.Y, op.Cell.Rune(), nil, StyleFor(op.Cell.Color))
	}
	p.writes += len(ops)
	p.screen.Show()
}

// Writes returns the total number of cells written so far.
func (p *ScreenPainter) Writes() int {
	return p.writes
}
