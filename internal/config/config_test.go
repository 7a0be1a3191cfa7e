package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadEmbeddedMatchesDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != DefaultInvadersConfig() {
		t.Errorf("embedded YAML and DefaultInvadersConfig() disagree:\n%+v\n%+v", cfg, DefaultInvadersConfig())
	}
}

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Parse([]byte("player:\n  max_shots: 1\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if cfg.Player.MaxShots != 1 {
		t.Errorf("MaxShots = %d, expected 1", cfg.Player.MaxShots)
	}
	if cfg.Player.Step != DefaultInvadersConfig().Player.Step {
		t.Errorf("Step = %d, expected default", cfg.Player.Step)
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	if _, err := Parse([]byte("player: [")); err == nil {
		t.Error("expected a parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*InvadersConfig)
	}{
		{"zero step", func(c *InvadersConfig) { c.Player.Step = 0 }},
		{"no shots", func(c *InvadersConfig) { c.Player.MaxShots = 0 }},
		{"zero shot speed", func(c *InvadersConfig) { c.Shot.StepMs = 0 }},
		{"swarm too wide", func(c *InvadersConfig) { c.Swarm.Columns = 30 }},
		{"swarm starts landed", func(c *InvadersConfig) { c.Swarm.TopMargin = 18 }},
		{"fast slower than slow", func(c *InvadersConfig) { c.Swarm.MoveFastMs = 3000 }},
		{"no bottom margin", func(c *InvadersConfig) { c.Swarm.BottomMargin = 0 }},
		{"negative yield", func(c *InvadersConfig) { c.Loop.YieldUs = -1 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultInvadersConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestMoveInterval(t *testing.T) {
	sw := DefaultInvadersConfig().Swarm
	sw.MoveSlowMs = 1000
	sw.MoveFastMs = 100

	tests := []struct {
		alive, total int
		expected     time.Duration
	}{
		{10, 10, 1000 * time.Millisecond},
		{1, 10, 100 * time.Millisecond},
		{0, 10, 100 * time.Millisecond},
		{1, 1, 1000 * time.Millisecond},
		{3, 5, 550 * time.Millisecond},
	}

	for _, tc := range tests {
		got := sw.MoveInterval(tc.alive, tc.total)
		if got != tc.expected {
			t.Errorf("MoveInterval(%d, %d) = %v, expected %v", tc.alive, tc.total, got, tc.expected)
		}
	}

	// Fewer invaders never means a slower tempo
	prev := sw.MoveInterval(72, 72)
	for alive := 71; alive >= 1; alive-- {
		cur := sw.MoveInterval(alive, 72)
		if cur > prev {
			t.Fatalf("interval grew from %v to %v at alive=%d", prev, cur, alive)
		}
		prev = cur
	}
}
