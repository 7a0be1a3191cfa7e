package invaders

import (
	"time"

	"github.com/vovakirdan/term-invaders/internal/config"
	"github.com/vovakirdan/term-invaders/internal/core"
)

const glyphShip = 'A'

// Player is the ship on the bottom row and its shots in flight.
type Player struct {
	x, y     int
	step     int
	maxShots int
	shotStep time.Duration
	explode  time.Duration
	shots    []*Shot
	score    int
}

// NewPlayer places the ship in the middle of the bottom row.
func NewPlayer(cfg config.InvadersConfig) *Player {
	return &Player{
		x:        core.Cols / 2,
		y:        core.Rows - 1,
		step:     cfg.Player.Step,
		maxShots: cfg.Player.MaxShots,
		shotStep: cfg.Shot.ShotStep(),
		explode:  cfg.Shot.ExplodeFor(),
		shots:    make([]*Shot, 0, cfg.Player.MaxShots),
	}
}

// Pos returns the ship's cell.
func (p *Player) Pos() core.Point {
	return core.Point{X: p.x, Y: p.y}
}

// MoveLeft moves the ship one step left, stopping at the left edge.
func (p *Player) MoveLeft() {
	p.x = core.Clamp(p.x-p.step, 0, core.Cols-1)
}

// MoveRight moves the ship one step right, stopping at the right edge.
func (p *Player) MoveRight() {
	p.x = core.Clamp(p.x+p.step, 0, core.Cols-1)
}

// Shoot launches a shot from just above the ship.
// Returns false, and does nothing, when MaxShots shots are already in flight.
func (p *Player) Shoot() bool {
	if len(p.shots) >= p.maxShots {
		return false
	}
	p.shots = append(p.shots, newShot(p.Pos().Add(0, -1), p.shotStep, p.explode))
	return true
}

// Update advances every shot and drops those that are finished.
func (p *Player) Update(delta time.Duration) {
	kept := p.shots[:0]
	for _, s := range p.shots {
		s.Update(delta)
		if !s.Dead() {
			kept = append(kept, s)
		}
	}
	// Clear the tail so removed shots can be collected
	for i := len(kept); i < len(p.shots); i++ {
		p.shots[i] = nil
	}
	p.shots = kept
}

// DetectHits tests every alive shot against the swarm. A shot that shares a
// cell with an alive invader kills it and explodes, so it cannot score again.
// Returns true if at least one invader was destroyed.
func (p *Player) DetectHits(inv *Invaders) bool {
	hit := false
	for _, s := range p.shots {
		if !s.Alive() {
			continue
		}
		if inv.KillAt(s.Pos.X, s.Pos.Y) {
			s.Explode()
			p.score++
			hit = true
		}
	}
	return hit
}

// Shots returns the number of shots in flight, explosions included.
func (p *Player) Shots() int {
	return len(p.shots)
}

// Score returns the number of invaders destroyed.
func (p *Player) Score() int {
	return p.score
}

// Draw paints the ship and its shots.
func (p *Player) Draw(dst *core.Frame) {
	dst.SetGlyph(p.x, p.y, glyphShip, core.ColorBrightGreen)
	for _, s := range p.shots {
		s.Draw(dst)
	}
}
