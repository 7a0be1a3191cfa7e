package term

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	xterm "golang.org/x/term"

	"github.com/vovakirdan/term-invaders/internal/core"
	"github.com/vovakirdan/term-invaders/internal/render"
)

var (
	// ErrNotTerminal is returned when stdout is not an interactive terminal.
	ErrNotTerminal = errors.New("term: stdout is not a terminal")
	// ErrTooSmall is returned when the terminal cannot hold the playfield.
	ErrTooSmall = errors.New("term: terminal too small")
)

// CheckSize verifies that fd is a terminal of at least the grid's size.
func CheckSize(fd int) error {
	if !xterm.IsTerminal(fd) {
		return ErrNotTerminal
	}
	w, h, err := xterm.GetSize(fd)
	if err != nil {
		return fmt.Errorf("term: get size: %w", err)
	}
	if w < core.Cols || h < core.Rows {
		return fmt.Errorf("%w: need %dx%d, have %dx%d", ErrTooSmall, core.Cols, core.Rows, w, h)
	}
	return nil
}

// Session is the terminal in game mode: alternate screen, raw input and a
// hidden cursor. Close restores it.
type Session struct {
	screen tcell.Screen
	logger *log.Logger
	once   sync.Once
}

// Open checks stdout and takes over the terminal.
func Open(logger *log.Logger) (*Session, error) {
	if err := CheckSize(int(os.Stdout.Fd())); err != nil {
		return nil, err
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("term: create screen: %w", err)
	}
	return NewSession(screen, logger)
}

// NewSession initializes screen and prepares it for painting.
func NewSession(screen tcell.Screen, logger *log.Logger) (*Session, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("term: init screen: %w", err)
	}
	screen.SetStyle(render.StyleFor(core.ColorDefault))
	screen.HideCursor()
	screen.Clear()

	w, h := screen.Size()
	logger.Info("terminal ready", "width", w, "height", h)
	return &Session{screen: screen, logger: logger}, nil
}

// Screen returns the underlying tcell screen.
func (s *Session) Screen() tcell.Screen {
	return s.screen
}

// Painter returns a painter that centers the grid on the screen.
func (s *Session) Painter() *render.ScreenPainter {
	p := render.NewScreenPainter(s.screen)
	w, h := s.screen.Size()
	p.OriginX = max(0, (w-core.Cols)/2)
	p.OriginY = max(0, (h-core.Rows)/2)
	return p
}

// Input starts the input pump for this screen.
func (s *Session) Input(keys KeyMap) *Pump {
	return NewPump(s.screen, keys)
}

// Close restores the terminal. Safe to call more than once.
func (s *Session) Close() {
	s.once.Do(func() {
		s.screen.Fini()
		s.logger.Info("terminal restored")
	})
}

// Restore is meant to be deferred right after Open. It restores the terminal
// on every exit path and re-raises a panic once the terminal is usable again.
func (s *Session) Restore() {
	if r := recover(); r != nil {
		s.Close()
		s.logger.Error("panic", "err", r)
		panic(r)
	}
	s.Close()
}
