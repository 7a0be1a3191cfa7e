package term

import (
	"errors"
	"io"
	"os"
	"slices"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/term-invaders/internal/core"
)

// chanSource feeds events from a channel; a closed channel ends the stream.
type chanSource chan tcell.Event

func (c chanSource) PollEvent() tcell.Event {
	ev, ok := <-c
	if !ok {
		return nil
	}
	return ev
}

// pollUntil polls until want actions have arrived or the deadline passes.
func pollUntil(t *testing.T, p *Pump, want int) ([]core.Action, error) {
	t.Helper()
	var got []core.Action
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		actions, err := p.Poll()
		got = append(got, actions...)
		if err != nil || len(got) >= want {
			return got, err
		}
		time.Sleep(time.Millisecond)
	}
	return got, nil
}

func TestPumpDeliversActionsInOrder(t *testing.T) {
	src := make(chanSource, 8)
	p := NewPump(src, DefaultKeyMap())
	defer p.Stop()

	src <- tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)
	src <- tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)
	src <- tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)
	src <- tcell.NewEventResize(80, 24)
	src <- tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)

	got, err := pollUntil(t, p, 3)
	if err != nil {
		t.Fatalf("Poll() error: %v", err)
	}
	want := []core.Action{core.ActionLeft, core.ActionFire, core.ActionRight}
	if !slices.Equal(got, want) {
		t.Errorf("actions = %v, expected %v", got, want)
	}
}

func TestPumpPollNeverBlocks(t *testing.T) {
	p := NewPump(make(chanSource), DefaultKeyMap())
	defer p.Stop()

	done := make(chan struct{})
	go func() {
		_, _ = p.Poll()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Poll() blocked with no events pending")
	}
}

func TestPumpReadErrorIsReturned(t *testing.T) {
	src := make(chanSource, 4)
	p := NewPump(src, DefaultKeyMap())
	defer p.Stop()

	cause := errors.New("tty gone")
	src <- tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)
	src <- tcell.NewEventError(cause)

	got, err := pollUntil(t, p, 100)
	if !errors.Is(err, cause) {
		t.Fatalf("Poll() error = %v, expected it to wrap %v", err, cause)
	}
	if !slices.Equal(got, []core.Action{core.ActionLeft}) {
		t.Errorf("actions before the error = %v", got)
	}
}

func TestPumpClosedSource(t *testing.T) {
	src := make(chanSource)
	p := NewPump(src, DefaultKeyMap())
	close(src)

	_, err := pollUntil(t, p, 100)
	if !errors.Is(err, ErrInputClosed) {
		t.Errorf("Poll() error = %v, expected ErrInputClosed", err)
	}
	p.Stop()
	p.Stop()
}

func TestSessionOnSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	s, err := NewSession(screen, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSession() error: %v", err)
	}
	defer s.Restore()
	screen.SetSize(core.Cols+20, core.Rows+4)

	p := s.Painter()
	if p.OriginX != 10 || p.OriginY != 2 {
		t.Errorf("origin = (%d, %d), expected (10, 2)", p.OriginX, p.OriginY)
	}

	pump := s.Input(DefaultKeyMap())
	defer pump.Stop()
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	got, err := pollUntil(t, pump, 1)
	if err != nil {
		t.Fatalf("Poll() error: %v", err)
	}
	if !slices.Equal(got, []core.Action{core.ActionQuit}) {
		t.Errorf("actions = %v, expected [Quit]", got)
	}
}

func TestCheckSizeRejectsNonTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() error: %v", err)
	}
	defer r.Close()
	defer w.Close()

	if err := CheckSize(int(w.Fd())); !errors.Is(err, ErrNotTerminal) {
		t.Errorf("CheckSize(pipe) = %v, expected ErrNotTerminal", err)
	}
}
