package invaders

import "github.com/vovakirdan/term-invaders/internal/core"

// Snapshot captures the game state for tests and debug logging.
type Snapshot struct {
	Tick      uint64
	Score     int
	ShipX     int
	Shots     int
	Alive     int
	Direction int
	Descents  int
	Outcome   core.Outcome
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Score:     g.player.Score(),
		ShipX:     g.player.Pos().X,
		Shots:     g.player.Shots(),
		Alive:     g.invaders.Alive(),
		Direction: g.invaders.Direction(),
		Descents:  g.invaders.Descents(),
		Outcome:   g.outcome,
	}
}
