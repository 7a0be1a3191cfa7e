// Package audio synthesizes the game's sound cues and plays them on the
// system speaker.
package audio

// Cue names a sound the game can play.
type Cue int

const (
	CueStartup Cue = iota // game window opened
	CuePew                // a shot was fired
	CueMove               // the swarm took a step
	CueExplode            // an invader was destroyed
	CueWin                // every invader destroyed
	CueLose               // the swarm landed or the player quit
)

// String returns the cue's name.
func (c Cue) String() string {
	switch c {
	case CueStartup:
		return "startup"
	case CuePew:
		return "pew"
	case CueMove:
		return "move"
	case CueExplode:
		return "explode"
	case CueWin:
		return "win"
	case CueLose:
		return "lose"
	default:
		return "unknown"
	}
}

// AllCues returns every cue in declaration order.
func AllCues() []Cue {
	return []Cue{CueStartup, CuePew, CueMove, CueExplode, CueWin, CueLose}
}
