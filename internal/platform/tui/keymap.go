package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pixel-racers/internal/core"
)

// KeyMap holds the bindings shown in the help footer and the ones the
// platform handles itself. Letter keys reach the state machine unchanged.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	Left         key.Binding
	Right        key.Binding
	Start        key.Binding
	Instructions key.Binding
	Mode         key.Binding
	Pause        key.Binding
	Back         key.Binding
	ForceWin     key.Binding
	Restart      key.Binding
	Results      key.Binding
	Quit         key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.Restart, k.Results, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Start, k.Instructions, k.Mode, k.Back},
		{k.Pause, k.ForceWin, k.Restart},
		{k.Results, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "accelerate"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "brake"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "steer left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "steer right"),
		),
		Start: key.NewBinding(
			key.WithKeys("s", "S"),
			key.WithHelp("s", "start"),
		),
		Instructions: key.NewBinding(
			key.WithKeys("i", "I"),
			key.WithHelp("i", "instructions"),
		),
		Mode: key.NewBinding(
			key.WithKeys("m", "M"),
			key.WithHelp("m", "infinite mode"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("p", "pause"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "B"),
			key.WithHelp("b", "back"),
		),
		ForceWin: key.NewBinding(
			key.WithKeys("q", "Q"),
			key.WithHelp("q", "end race"),
		),
		Restart: key.NewBinding(
			key.WithKeys("c", "C"),
			key.WithHelp("c", "continue"),
		),
		Results: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "results"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to state machine keys.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper with the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to a machine key.
// Returns KeyNone for keys the machine does not see, and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (k core.Key, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.KeyNone, true
	case key.Matches(msg, km.keys.Up):
		return core.KeyUp, false
	case key.Matches(msg, km.keys.Down):
		return core.KeyDown, false
	case key.Matches(msg, km.keys.Left):
		return core.KeyLeft, false
	case key.Matches(msg, km.keys.Right):
		return core.KeyRight, false
	}

	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		return core.NormalizeKey(msg.Runes[0]), false
	}
	return core.KeyNone, false
}
