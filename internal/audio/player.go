package audio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/term-invaders/internal/config"
)

// SampleRate is the rate every cue is synthesized at.
const SampleRate = beep.SampleRate(44100)

// Player plays cues without blocking the caller.
type Player interface {
	Play(cue Cue)
	// Wait blocks until every cue started so far has finished or ctx ends.
	Wait(ctx context.Context) error
	Close()
}

// Speaker plays cues on the system audio device.
type Speaker struct {
	volume  float64
	playing sync.WaitGroup
}

// NewSpeaker opens the audio device.
func NewSpeaker(cfg config.AudioConfig) (*Speaker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("audio: init speaker: %w", err)
	}
	return &Speaker{volume: cfg.Volume}, nil
}

// Play starts cue and returns immediately.
func (s *Speaker) Play(cue Cue) {
	st := Stream(cue, SampleRate, s.volume)
	if st == nil {
		return
	}
	s.playing.Add(1)
	speaker.Play(beep.Seq(st, beep.Callback(s.playing.Done)))
}

// Wait blocks until all cues have played out or ctx ends.
func (s *Speaker) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.playing.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("audio: wait for playback: %w", ctx.Err())
	}
}

// Close releases the audio device.
func (s *Speaker) Close() {
	speaker.Close()
}

// Silent discards every cue.
type Silent struct{}

func (Silent) Play(Cue) {}
func (Silent) Wait(context.Context) error { return nil }
func (Silent) Close() {}

// Open returns a speaker, or a silent player when muted or when the audio
// device cannot be opened. A missing device is not an error for the game.
func Open(cfg config.AudioConfig, mute bool, logger *log.Logger) Player {
	if mute {
		logger.Info("audio muted")
		return Silent{}
	}
	s, err := NewSpeaker(cfg)
	if err != nil {
		logger.Warn("audio unavailable, continuing without sound", "err", err)
		return Silent{}
	}
	logger.Info("audio ready", "rate", int(SampleRate))
	return s
}
