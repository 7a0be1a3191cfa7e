package invaders

import (
	"time"

	"github.com/vovakirdan/term-invaders/internal/config"
	"github.com/vovakirdan/term-invaders/internal/core"
)

const (
	glyphInvaderA = 'x'
	glyphInvaderB = '+'
)

// Invader is one member of the swarm.
type Invader struct {
	Pos   core.Point
	Alive bool
}

// Invaders is the swarm. Dead invaders stay in the slice with Alive unset so
// indices remain stable; they are skipped by drawing and movement checks.
type Invaders struct {
	army      []Invader
	direction int // +1 right, -1 left
	descents  int
	timer     Timer
	cfg       config.SwarmConfig
}

// NewInvaders lays out the formation centered on the grid and heading right.
func NewInvaders(cfg config.SwarmConfig) *Invaders {
	left := (core.Cols - cfg.Span()) / 2
	army := make([]Invader, 0, cfg.Columns*cfg.Rows)
	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Columns; col++ {
			army = append(army, Invader{
				Pos: core.Point{
					X: left + col*cfg.Spacing,
					Y: cfg.TopMargin + row*cfg.Spacing,
				},
				Alive: true,
			})
		}
	}
	return newInvadersFrom(cfg, army)
}

func newInvadersFrom(cfg config.SwarmConfig, army []Invader) *Invaders {
	inv := &Invaders{
		army:      army,
		direction: 1,
		cfg:       cfg,
	}
	inv.timer = NewTimer(cfg.MoveInterval(inv.Alive(), len(army)))
	return inv
}

// Update advances the move timer. When it fires the whole swarm steps one
// column in its current direction, or, if that step would carry an alive
// invader off the grid, reverses and descends one row instead.
// Returns true when the swarm moved.
func (inv *Invaders) Update(delta time.Duration) bool {
	inv.timer.Update(delta)
	if !inv.timer.Ready() {
		return false
	}
	alive := inv.Alive()
	inv.timer.ResetTo(inv.cfg.MoveInterval(alive, len(inv.army)))
	if alive == 0 {
		return false
	}

	minX, maxX := inv.horizontalExtent()
	if minX+inv.direction < 0 || maxX+inv.direction > core.Cols-1 {
		inv.direction = -inv.direction
		inv.descents++
		for i := range inv.army {
			inv.army[i].Pos.Y++
		}
		return true
	}

	for i := range inv.army {
		inv.army[i].Pos.X += inv.direction
	}
	return true
}

// horizontalExtent returns the leftmost and rightmost alive columns.
// Only valid while at least one invader is alive.
func (inv *Invaders) horizontalExtent() (int, int) {
	minX, maxX := core.Cols, -1
	for _, in := range inv.army {
		if !in.Alive {
			continue
		}
		minX = core.Min(minX, in.Pos.X)
		maxX = core.Max(maxX, in.Pos.X)
	}
	return minX, maxX
}

// KillAt kills the first alive invader at (x, y).
// Returns false if no alive invader occupies that cell.
func (inv *Invaders) KillAt(x, y int) bool {
	for i := range inv.army {
		in := &inv.army[i]
		if in.Alive && in.Pos.X == x && in.Pos.Y == y {
			in.Alive = false
			return true
		}
	}
	return false
}

// AllKilled reports whether no invader is alive.
func (inv *Invaders) AllKilled() bool {
	return inv.Alive() == 0
}

// ReachedBottom reports whether any alive invader has reached the landing row.
func (inv *Invaders) ReachedBottom() bool {
	bottom := inv.cfg.BottomRow()
	for _, in := range inv.army {
		if in.Alive && in.Pos.Y >= bottom {
			return true
		}
	}
	return false
}

// Alive returns the number of invaders still alive.
func (inv *Invaders) Alive() int {
	n := 0
	for _, in := range inv.army {
		if in.Alive {
			n++
		}
	}
	return n
}

// Len returns the size of the swarm, dead invaders included.
func (inv *Invaders) Len() int {
	return len(inv.army)
}

// At returns the invader at index i.
func (inv *Invaders) At(i int) Invader {
	return inv.army[i]
}

// Direction returns +1 while the swarm heads right and -1 while it heads left.
func (inv *Invaders) Direction() int {
	return inv.direction
}

// Descents returns how many rows the swarm has dropped.
func (inv *Invaders) Descents() int {
	return inv.descents
}

// Interval returns the current step interval.
func (inv *Invaders) Interval() time.Duration {
	return inv.timer.Duration()
}

// Draw paints the alive invaders. They alternate between two glyphs over the
// course of each step interval.
func (inv *Invaders) Draw(dst *core.Frame) {
	glyph := glyphInvaderB
	if inv.timer.Left() > 0.5 {
		glyph = glyphInvaderA
	}
	for _, in := range inv.army {
		if !in.Alive {
			continue
		}
		dst.SetGlyph(in.Pos.X, in.Pos.Y, glyph, core.ColorBrightCyan)
	}
}
