// Package term owns the terminal: the tcell screen session, the mapping from
// key events to game actions and the goroutine that reads input.
package term

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/term-invaders/internal/core"
)

// KeyMap defines the key bindings of the game.
type KeyMap struct {
	Left  key.Binding
	Right key.Binding
	Fire  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Fire, k.Quit},
	}
}

// DefaultKeyMap returns the game's key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "move right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space/enter", "fire"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc/q", "quit"),
		),
	}
}

// keyName is a tcell key event spelled the way bindings name keys.
type keyName string

func (k keyName) String() string { return string(k) }

// nameOf returns the binding name of a key event.
func nameOf(ev *tcell.EventKey) keyName {
	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			return keyName("ctrl+" + strings.ToLower(string(ev.Rune())))
		}
		return keyName(string(ev.Rune()))
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	default:
		return keyName(strings.ToLower(ev.Name()))
	}
}

// Action translates a key event to a game action.
// Keys without a binding map to ActionNone.
func (k KeyMap) Action(ev *tcell.EventKey) core.Action {
	name := nameOf(ev)
	switch {
	case key.Matches(name, k.Quit):
		return core.ActionQuit
	case key.Matches(name, k.Left):
		return core.ActionLeft
	case key.Matches(name, k.Right):
		return core.ActionRight
	case key.Matches(name, k.Fire):
		return core.ActionFire
	}
	return core.ActionNone
}

// HelpView renders the bindings for display outside the game screen.
func (k KeyMap) HelpView(full bool) string {
	h := help.New()
	h.ShowAll = full
	return h.View(k)
}
