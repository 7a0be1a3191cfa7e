package invaders

import (
	"time"

	"github.com/vovakirdan/term-invaders/internal/core"
)

const (
	glyphShot      = '|'
	glyphExplosion = '*'
)

// Shot is a projectile climbing from the ship toward the swarm.
// Once it hits something it explodes: it stops moving, can no longer hit,
// and disappears when the explosion timer runs out.
type Shot struct {
	Pos       core.Point
	exploding bool
	timer     Timer
	explodeT  time.Duration
}

func newShot(pos core.Point, step, explode time.Duration) *Shot {
	return &Shot{
		Pos:      pos,
		timer:    NewTimer(step),
		explodeT: explode,
	}
}

// Alive reports whether the shot can still hit an invader.
func (s *Shot) Alive() bool {
	return !s.exploding
}

// Update advances the shot by delta.
func (s *Shot) Update(delta time.Duration) {
	s.timer.Update(delta)
	if s.timer.Ready() && !s.exploding {
		if s.Pos.Y > 0 {
			s.Pos.Y--
		}
		s.timer.Reset()
	}
}

// Explode switches the shot to its explosion phase.
func (s *Shot) Explode() {
	s.exploding = true
	s.timer.ResetTo(s.explodeT)
}

// Dead reports whether the shot should be removed: its explosion has ended
// or it reached the top row.
func (s *Shot) Dead() bool {
	return (s.exploding && s.timer.Ready()) || s.Pos.Y <= 0
}

// Draw paints the shot, or its explosion.
func (s *Shot) Draw(dst *core.Frame) {
	if s.exploding {
		dst.SetGlyph(s.Pos.X, s.Pos.Y, glyphExplosion, core.ColorOrange)
		return
	}
	dst.SetGlyph(s.Pos.X, s.Pos.Y, glyphShot, core.ColorBrightYellow)
}
