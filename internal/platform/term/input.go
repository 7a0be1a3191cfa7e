package term

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/term-invaders/internal/core"
)

// ErrInputClosed is returned by Poll once the screen stopped delivering events.
var ErrInputClosed = errors.New("term: input closed")

// pumpBuffer is how many events may wait between two polls.
const pumpBuffer = 64

// EventSource is the blocking side of a tcell screen.
type EventSource interface {
	PollEvent() tcell.Event
}

// Pump reads events on its own goroutine so the game can poll without
// blocking. It never touches the screen contents.
type Pump struct {
	keys   KeyMap
	events chan tcell.Event
	stopCh chan struct{}
}

// NewPump starts reading events from src.
func NewPump(src EventSource, keys KeyMap) *Pump {
	p := &Pump{
		keys:   keys,
		events: make(chan tcell.Event, pumpBuffer),
		stopCh: make(chan struct{}),
	}
	go p.run(src)
	return p
}

func (p *Pump) run(src EventSource) {
	defer close(p.events)
	for {
		// PollEvent returns nil once the screen is finalized
		ev := src.PollEvent()
		if ev == nil {
			return
		}
		select {
		case p.events <- ev:
		case <-p.stopCh:
			return
		}
	}
}

// Poll returns the actions of every key event received since the last call,
// in arrival order, one per key event. It never blocks. A terminal read error
// is returned together with the actions that preceded it.
func (p *Pump) Poll() ([]core.Action, error) {
	var actions []core.Action
	for {
		select {
		case ev, ok := <-p.events:
			if !ok {
				return actions, ErrInputClosed
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if a := p.keys.Action(ev); a != core.ActionNone {
					actions = append(actions, a)
				}
			case *tcell.EventError:
				return actions, fmt.Errorf("term: read input: %w", ev)
			}
		default:
			return actions, nil
		}
	}
}

// Stop ends the pump. A goroutine blocked in PollEvent exits once the screen
// is finalized.
func (p *Pump) Stop() {
	select {
	case <-p.stopCh:
	default:
		close(p.stopCh)
	}
}
