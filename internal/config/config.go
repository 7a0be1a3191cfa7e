// Package config provides the YAML-backed tuning constants of the game.
// The document is embedded in the binary; there is no user override because
// difficulty is not meant to be configurable.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/term-invaders/internal/core"
)

// ErrInvalid is returned (wrapped) when a configuration value cannot be used.
var ErrInvalid = errors.New("config: invalid value")

// InvadersConfig contains all tuning for the game.
type InvadersConfig struct {
	Player PlayerConfig `yaml:"player"`
	Shot   ShotConfig   `yaml:"shot"`
	Swarm  SwarmConfig  `yaml:"swarm"`
	Loop   LoopConfig   `yaml:"loop"`
	Audio  AudioConfig  `yaml:"audio"`
}

// PlayerConfig defines ship parameters.
type PlayerConfig struct {
	Step     int `yaml:"step"`      // Columns moved per key press
	MaxShots int `yaml:"max_shots"` // Shots allowed in flight at once
}

// ShotConfig defines projectile timing.
type ShotConfig struct {
	StepMs    int `yaml:"step_ms"`    // Time for a shot to climb one row
	ExplodeMs int `yaml:"explode_ms"` // How long an explosion stays on screen
}

// SwarmConfig defines the invader formation and its tempo.
type SwarmConfig struct {
	Columns      int `yaml:"columns"`
	Rows         int `yaml:"rows"`
	Spacing      int `yaml:"spacing"`       // Cells between neighbouring invaders
	TopMargin    int `yaml:"top_margin"`    // Row of the first invader line
	BottomMargin int `yaml:"bottom_margin"` // Rows above the grid bottom that count as "landed"
	MoveSlowMs   int `yaml:"move_slow_ms"`  // Step interval with the full swarm alive
	MoveFastMs   int `yaml:"move_fast_ms"`  // Step interval with one invader left
}

// LoopConfig defines update loop pacing.
type LoopConfig struct {
	YieldUs int `yaml:"yield_us"` // Sleep after each update iteration
}

// AudioConfig defines sound output.
type AudioConfig struct {
	Volume float64 `yaml:"volume"` // Gain in powers of two; 0 is unchanged, -1 is half
}

// ShotStep returns the time a shot needs to climb one row.
func (c ShotConfig) ShotStep() time.Duration {
	return time.Duration(c.StepMs) * time.Millisecond
}

// ExplodeFor returns how long an exploding shot stays visible.
func (c ShotConfig) ExplodeFor() time.Duration {
	return time.Duration(c.ExplodeMs) * time.Millisecond
}

// Yield returns the pause after each update loop iteration.
func (c LoopConfig) Yield() time.Duration {
	return time.Duration(c.YieldUs) * time.Microsecond
}

// Span returns the width of the formation in cells.
func (c SwarmConfig) Span() int {
	return (c.Columns-1)*c.Spacing + 1
}

// BottomRow returns the row at which an alive invader means the game is lost.
func (c SwarmConfig) BottomRow() int {
	return core.Rows - c.BottomMargin
}

// Validate checks that every value fits the fixed grid.
func (c InvadersConfig) Validate() error {
	switch {
	case c.Player.Step < 1:
		return fmt.Errorf("%w: player.step must be at least 1, got %d", ErrInvalid, c.Player.Step)
	case c.Player.MaxShots < 1:
		return fmt.Errorf("%w: player.max_shots must be at least 1, got %d", ErrInvalid, c.Player.MaxShots)
	case c.Shot.StepMs <= 0:
		return fmt.Errorf("%w: shot.step_ms must be positive, got %d", ErrInvalid, c.Shot.StepMs)
	case c.Shot.ExplodeMs < 0:
		return fmt.Errorf("%w: shot.explode_ms must not be negative, got %d", ErrInvalid, c.Shot.ExplodeMs)
	case c.Swarm.Columns < 1 || c.Swarm.Rows < 1:
		return fmt.Errorf("%w: swarm needs at least one column and one row", ErrInvalid)
	case c.Swarm.Spacing < 1:
		return fmt.Errorf("%w: swarm.spacing must be at least 1, got %d", ErrInvalid, c.Swarm.Spacing)
	case c.Swarm.Span() > core.Cols:
		return fmt.Errorf("%w: swarm is %d cells wide, grid has %d columns", ErrInvalid, c.Swarm.Span(), core.Cols)
	case c.Swarm.BottomMargin < 1 || c.Swarm.BottomMargin >= core.Rows:
		return fmt.Errorf("%w: swarm.bottom_margin must be in [1, %d), got %d", ErrInvalid, core.Rows, c.Swarm.BottomMargin)
	case c.Swarm.TopMargin < 0 || c.Swarm.TopMargin+(c.Swarm.Rows-1)*c.Swarm.Spacing >= c.Swarm.BottomRow():
		return fmt.Errorf("%w: swarm starts at or below the landing row %d", ErrInvalid, c.Swarm.BottomRow())
	case c.Swarm.MoveFastMs <= 0 || c.Swarm.MoveSlowMs < c.Swarm.MoveFastMs:
		return fmt.Errorf("%w: need 0 < swarm.move_fast_ms <= swarm.move_slow_ms, got %d and %d",
			ErrInvalid, c.Swarm.MoveFastMs, c.Swarm.MoveSlowMs)
	case c.Loop.YieldUs < 0:
		return fmt.Errorf("%w: loop.yield_us must not be negative, got %d", ErrInvalid, c.Loop.YieldUs)
	}
	return nil
}
