package core

// Outcome is how a game ended, or OutcomeNone while it is still running.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWon          // every invader destroyed
	OutcomeLost         // the swarm reached the ship's row
	OutcomeQuit         // the player pressed a quit key
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "playing"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is something that happened during one simulation tick that the
// platform may want to react to, typically with a sound cue.
type Event int

const (
	EventFired Event = iota + 1 // a new shot left the ship
	EventMoved                  // the swarm took a step
	EventHit                    // at least one invader was destroyed
)

// GameState represents the current state of a game.
type GameState struct {
	Score   int     // Invaders destroyed so far
	Alive   int     // Invaders still alive
	Outcome Outcome // OutcomeNone while playing
}

// Over reports whether the game has reached an end state.
func (s GameState) Over() bool {
	return s.Outcome != OutcomeNone
}

// StepResult is returned by a game after each simulation tick.
// Events are listed in the order they happened.
type StepResult struct {
	State  GameState
	Events []Event
}
