package invaders

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/term-invaders/internal/config"
	"github.com/vovakirdan/term-invaders/internal/core"
)

func testConfig() config.InvadersConfig {
	return config.DefaultInvadersConfig()
}

func TestPlayerStaysOnGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	p := NewPlayer(testConfig())

	for i := 0; i < 2000; i++ {
		if rng.Intn(2) == 0 {
			p.MoveLeft()
		} else {
			p.MoveRight()
		}
		x := p.Pos().X
		if x < 0 || x > core.Cols-1 {
			t.Fatalf("move %d: column %d outside [0, %d]", i, x, core.Cols-1)
		}
	}
}

func TestPlayerClampsAtEdges(t *testing.T) {
	cfg := testConfig()
	cfg.Player.Step = 3
	p := NewPlayer(cfg)

	for i := 0; i < core.Cols; i++ {
		p.MoveLeft()
	}
	if p.Pos().X != 0 {
		t.Errorf("After many left moves, x = %d, expected 0", p.Pos().X)
	}

	for i := 0; i < core.Cols; i++ {
		p.MoveRight()
	}
	if p.Pos().X != core.Cols-1 {
		t.Errorf("After many right moves, x = %d, expected %d", p.Pos().X, core.Cols-1)
	}
}

func TestShootRespectsCap(t *testing.T) {
	cfg := testConfig()
	cfg.Player.MaxShots = 2
	p := NewPlayer(cfg)

	for i := 0; i < 2; i++ {
		before := p.Shots()
		if !p.Shoot() {
			t.Fatalf("Shoot() #%d returned false below the cap", i+1)
		}
		if p.Shots() != before+1 {
			t.Fatalf("Shots() = %d after a successful shot, expected %d", p.Shots(), before+1)
		}
	}

	if p.Shoot() {
		t.Error("Shoot() should return false at the cap")
	}
	if p.Shots() != 2 {
		t.Errorf("Shots() = %d after a refused shot, expected 2", p.Shots())
	}
}

func TestShotClimbsAndLeavesGrid(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(cfg)
	p.Shoot()

	startY := p.shots[0].Pos.Y
	p.Update(cfg.Shot.ShotStep() / 2)
	if p.shots[0].Pos.Y != startY {
		t.Fatalf("Shot moved before its step interval elapsed")
	}
	p.Update(cfg.Shot.ShotStep() / 2)
	if p.shots[0].Pos.Y != startY-1 {
		t.Fatalf("Shot y = %d, expected %d", p.shots[0].Pos.Y, startY-1)
	}

	for i := 0; i < core.Rows*2 && p.Shots() > 0; i++ {
		p.Update(cfg.Shot.ShotStep())
	}
	if p.Shots() != 0 {
		t.Errorf("Shot should be removed after reaching the top, %d left", p.Shots())
	}

	// A slot is free again
	if !p.Shoot() {
		t.Error("Shoot() should succeed once shots have left the grid")
	}
}

func TestDetectHitsCreditsEachInvaderOnce(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(cfg)
	inv := newInvadersFrom(cfg.Swarm, []Invader{
		{Pos: core.Point{X: 5, Y: 5}, Alive: true},
		{Pos: core.Point{X: 6, Y: 5}, Alive: true},
		{Pos: core.Point{X: 7, Y: 5}, Alive: true},
		{Pos: core.Point{X: 8, Y: 5}, Alive: false},
	})

	step, boom := cfg.Shot.ShotStep(), cfg.Shot.ExplodeFor()
	p.shots = []*Shot{
		newShot(core.Point{X: 5, Y: 5}, step, boom),
		newShot(core.Point{X: 6, Y: 5}, step, boom),
		newShot(core.Point{X: 7, Y: 5}, step, boom),
		newShot(core.Point{X: 7, Y: 5}, step, boom), // same cell as the previous shot
		newShot(core.Point{X: 8, Y: 5}, step, boom), // dead invader
		newShot(core.Point{X: 9, Y: 5}, step, boom), // nothing there
	}

	if !p.DetectHits(inv) {
		t.Fatal("DetectHits() should report a hit")
	}
	if inv.Alive() != 0 {
		t.Errorf("Alive() = %d, expected 0", inv.Alive())
	}
	if p.Score() != 3 {
		t.Errorf("Score() = %d, expected 3 (one per invader)", p.Score())
	}

	alive := 0
	for _, s := range p.shots {
		if s.Alive() {
			alive++
		}
	}
	// The second shot on (7,5), the one on the dead invader and the miss
	if alive != 3 {
		t.Errorf("%d shots still alive, expected 3", alive)
	}

	if p.DetectHits(inv) {
		t.Error("A second DetectHits() with nothing alive should report no hit")
	}
	if p.Score() != 3 {
		t.Errorf("Score changed on a second pass: %d", p.Score())
	}
}

func TestExplosionLingersThenClears(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(cfg)
	inv := newInvadersFrom(cfg.Swarm, []Invader{{Pos: core.Point{X: 3, Y: 4}, Alive: true}})
	p.shots = []*Shot{newShot(core.Point{X: 3, Y: 4}, cfg.Shot.ShotStep(), cfg.Shot.ExplodeFor())}

	p.DetectHits(inv)

	frame := core.NewFrame()
	p.Draw(&frame)
	if got := frame.Get(3, 4).Glyph; got != glyphExplosion {
		t.Errorf("Expected explosion glyph at the hit cell, got %q", got)
	}

	p.Update(cfg.Shot.ExplodeFor() - time.Millisecond)
	if p.Shots() != 1 {
		t.Fatal("Explosion removed too early")
	}
	if p.shots[0].Pos.Y != 4 {
		t.Error("Exploding shot should not move")
	}
	p.Update(time.Millisecond)
	if p.Shots() != 0 {
		t.Error("Explosion should be removed once its timer ends")
	}
}
