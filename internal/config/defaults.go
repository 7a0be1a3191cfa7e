package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the hard-coded configuration.
// It mirrors defaults/invaders.yaml and is used if the embedded document
// cannot be decoded.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Player: PlayerConfig{
			Step:     1,
			MaxShots: 2,
		},
		Shot: ShotConfig{
			StepMs:    50,
			ExplodeMs: 250,
		},
		Swarm: SwarmConfig{
			Columns:      18,
			Rows:         4,
			Spacing:      2,
			TopMargin:    2,
			BottomMargin: 1,
			MoveSlowMs:   2000,
			MoveFastMs:   250,
		},
		Loop: LoopConfig{
			YieldUs: 1000,
		},
		Audio: AudioConfig{
			Volume: -1,
		},
	}
}

// DefaultYAML returns the embedded default document.
func DefaultYAML() []byte {
	return defaultInvadersYAML
}
