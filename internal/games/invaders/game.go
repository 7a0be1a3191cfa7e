// Package invaders implements the game model: the ship, its shots and the
// swarm, plus the per-tick rules that tie them together. It never touches the
// terminal or the speaker; the frame pipeline drives it.
package invaders

import (
	"time"

	"github.com/vovakirdan/term-invaders/internal/config"
	"github.com/vovakirdan/term-invaders/internal/core"
)

// Game holds one round of play.
type Game struct {
	cfg      config.InvadersConfig
	player   *Player
	invaders *Invaders
	tick     uint64
	outcome  core.Outcome
}

// New creates a game with the ship centered and a full swarm.
func New(cfg config.InvadersConfig) *Game {
	return &Game{
		cfg:      cfg,
		player:   NewPlayer(cfg),
		invaders: NewInvaders(cfg.Swarm),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Invaders"
}

// Player returns the ship.
func (g *Game) Player() *Player {
	return g.player
}

// Invaders returns the swarm.
func (g *Game) Invaders() *Invaders {
	return g.invaders
}

// Step advances the simulation by one tick. Actions are applied in the order
// given, then shots and swarm advance by delta and hits are resolved.
// New shots, swarm movement and hits are reported as events in that order.
// Once the game is over Step does nothing.
func (g *Game) Step(actions []core.Action, delta time.Duration) core.StepResult {
	if g.outcome != core.OutcomeNone {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	var events []core.Event
	for _, a := range actions {
		switch a {
		case core.ActionLeft:
			g.player.MoveLeft()
		case core.ActionRight:
			g.player.MoveRight()
		case core.ActionFire:
			if g.player.Shoot() {
				events = append(events, core.EventFired)
			}
		}
	}

	g.player.Update(delta)
	if g.invaders.Update(delta) {
		events = append(events, core.EventMoved)
	}
	if g.player.DetectHits(g.invaders) {
		events = append(events, core.EventHit)
	}

	switch {
	case g.invaders.AllKilled():
		g.outcome = core.OutcomeWon
	case g.invaders.ReachedBottom():
		g.outcome = core.OutcomeLost
	}

	return core.StepResult{State: g.State(), Events: events}
}

// Draw paints the current state. The ship and its shots are drawn first and
// the swarm second, so an invader sharing a cell with the ship is what shows.
func (g *Game) Draw(dst *core.Frame) {
	core.DrawAll(dst, g.player, g.invaders)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:   g.player.Score(),
		Alive:   g.invaders.Alive(),
		Outcome: g.outcome,
	}
}

// Tick returns the number of simulation steps taken.
func (g *Game) Tick() uint64 {
	return g.tick
}
