package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/term-invaders/internal/audio"
	"github.com/vovakirdan/term-invaders/internal/core"
	"github.com/vovakirdan/term-invaders/internal/render"
)

// Game is the simulation driven by the update loop.
type Game interface {
	Step(actions []core.Action, delta time.Duration) core.StepResult
	Draw(dst *core.Frame)
}

// Input returns the actions pending since the previous call without blocking.
// A non-nil error means input can no longer be read.
type Input interface {
	Poll() ([]core.Action, error)
}

// Painter writes a batch of cell changes to the output.
type Painter interface {
	Paint(ops []render.Op)
}

// Sounds starts a cue without waiting for it.
type Sounds interface {
	Play(cue audio.Cue)
}

// Options tune the update loop. Zero values fall back to real time and a
// discarding logger.
type Options struct {
	Yield  time.Duration // pause after each iteration
	Logger *log.Logger
	Now    func() time.Time
	Sleep  func(time.Duration)
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Sleep == nil {
		o.Sleep = time.Sleep
	}
	return o
}

// Result summarizes a finished game.
type Result struct {
	Outcome        core.Outcome
	Score          int
	Alive          int
	Ticks          int
	FramesSent     int
	FramesRendered int
}

var eventCues = map[core.Event]audio.Cue{
	core.EventFired: audio.CuePew,
	core.EventMoved: audio.CueMove,
	core.EventHit:   audio.CueExplode,
}

// UpdateLoop runs the game until it is won, lost or quit, sending one frame
// per tick to q. It never blocks on output. Only input errors are returned.
func UpdateLoop(g Game, in Input, sounds Sounds, q *Queue, opts Options) (Result, error) {
	opts = opts.withDefaults()
	logger := opts.Logger

	var res Result
	last := opts.Now()
	for {
		now := opts.Now()
		delta := now.Sub(last)
		last = now

		actions, err := in.Poll()
		if err != nil {
			return res, fmt.Errorf("pipeline: read input: %w", err)
		}
		if quitRequested(actions) {
			sounds.Play(audio.CueLose)
			res.Outcome = core.OutcomeQuit
			logger.Debug("player quit", "ticks", res.Ticks)
			return res, nil
		}

		step := g.Step(actions, delta)
		res.Ticks++
		res.Score = step.State.Score
		res.Alive = step.State.Alive
		for _, ev := range step.Events {
			if cue, ok := eventCues[ev]; ok {
				sounds.Play(cue)
			}
		}

		frame := core.NewFrame()
		g.Draw(&frame)
		// Send only fails once the render side is gone. The game keeps its
		// own pace and finishes normally, so the error is dropped.
		if q.Send(frame) == nil {
			res.FramesSent++
		}

		opts.Sleep(opts.Yield)

		switch step.State.Outcome {
		case core.OutcomeWon:
			sounds.Play(audio.CueWin)
		case core.OutcomeLost:
			sounds.Play(audio.CueLose)
		default:
			continue
		}
		res.Outcome = step.State.Outcome
		logger.Debug("game over", "outcome", res.Outcome, "score", res.Score, "ticks", res.Ticks)
		return res, nil
	}
}

func quitRequested(actions []core.Action) bool {
	for _, a := range actions {
		if a == core.ActionQuit {
			return true
		}
	}
	return false
}

// RenderLoop paints frames from q until the queue is closed and drained.
// The first frame is painted in full, every later one as a diff against the
// frame painted before it. The queue is abandoned on return so the producer
// stops queueing frames nobody will read.
func RenderLoop(q *Queue, p Painter) (rendered int, err error) {
	defer q.Abandon()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pipeline: render loop panic: %v", r)
		}
	}()

	var prev core.Frame
	for {
		frame, ok := q.Recv()
		if !ok {
			return rendered, nil
		}
		p.Paint(render.Diff(&prev, &frame, rendered == 0))
		prev = frame
		rendered++
	}
}

// Run plays one game: the render loop on its own goroutine, the update loop on
// the caller's. It returns after the render loop has painted every frame.
func Run(g Game, in Input, p Painter, sounds Sounds, opts Options) (Result, error) {
	opts = opts.withDefaults()
	q := NewQueue()

	var (
		rendered  int
		renderErr error
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		rendered, renderErr = RenderLoop(q, p)
	}()

	res, err := func() (Result, error) {
		defer q.Close()
		return UpdateLoop(g, in, sounds, q, opts)
	}()
	<-done

	res.FramesRendered = rendered
	opts.Logger.Debug("pipeline stopped", "sent", res.FramesSent, "rendered", rendered)
	if err != nil {
		return res, err
	}
	return res, renderErr
}
