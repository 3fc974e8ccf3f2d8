package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-pixels/internal/core"
	"github.com/vovakirdan/snake-pixels/internal/driver"
)

// KeyMap defines the key bindings for the snake view.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Exit  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Exit, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Exit, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d/l", "right"),
		),
		Exit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "exit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Event translates a Bubble Tea key message into a driver event.
// Quit keys become a close request; everything else is a key press.
func (k KeyMap) Event(msg tea.KeyMsg) driver.Event {
	switch {
	case key.Matches(msg, k.Quit):
		return driver.Event{Kind: driver.EventCloseRequested}
	case key.Matches(msg, k.Exit):
		return driver.Event{Kind: driver.EventKeyPressed, Key: core.KeyEscape}
	case key.Matches(msg, k.Up):
		return driver.Event{Kind: driver.EventKeyPressed, Key: core.KeyUp}
	case key.Matches(msg, k.Down):
		return driver.Event{Kind: driver.EventKeyPressed, Key: core.KeyDown}
	case key.Matches(msg, k.Left):
		return driver.Event{Kind: driver.EventKeyPressed, Key: core.KeyLeft}
	case key.Matches(msg, k.Right):
		return driver.Event{Kind: driver.EventKeyPressed, Key: core.KeyRight}
	}
	return driver.Event{Kind: driver.EventKeyPressed, Key: core.KeyOther}
}
