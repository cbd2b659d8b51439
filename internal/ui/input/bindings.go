package input

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"scrollpage/internal/ui/input/types"
)

// KeyBindings are the Bubble Tea key bindings. Their help text also labels
// the scroller legend.
type KeyBindings struct {
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Home      key.Binding
	End       key.Binding
	Enter     key.Binding
	Quit      key.Binding
	Escape    key.Binding
	Interrupt key.Binding
}

// DefaultKeyBindings returns the standard bindings
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "scroll up")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "scroll down")),
		PageUp:    key.NewBinding(key.WithKeys("pgup"), key.WithHelp("PgUp", "page up")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("PgDn", "page down")),
		Home:      key.NewBinding(key.WithKeys("home"), key.WithHelp("Home", "top")),
		End:       key.NewBinding(key.WithKeys("end"), key.WithHelp("End", "bottom")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "next page")),
		Quit:      key.NewBinding(key.WithKeys("q", "Q"), key.WithHelp("Q", "quit")),
		Escape:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "quit")),
		Interrupt: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("Ctrl+C", "quit")),
	}
}

// KeyFromTea maps a Bubble Tea key message to a key
func (b KeyBindings) KeyFromTea(msg tea.KeyMsg) types.Key {
	switch {
	case key.Matches(msg, b.Up):
		return types.KeyUp
	case key.Matches(msg, b.Down):
		return types.KeyDown
	case key.Matches(msg, b.PageUp):
		return types.KeyPageUp
	case key.Matches(msg, b.PageDown):
		return types.KeyPageDown
	case key.Matches(msg, b.Home):
		return types.KeyHome
	case key.Matches(msg, b.End):
		return types.KeyEnd
	case key.Matches(msg, b.Enter):
		return types.KeyEnter
	case key.Matches(msg, b.Quit):
		return types.KeyQuit
	case key.Matches(msg, b.Escape):
		return types.KeyEscape
	case key.Matches(msg, b.Interrupt):
		return types.KeyInterrupt
	}
	return types.KeyNone
}

// Binding returns the binding whose help labels k
func (b KeyBindings) Binding(k types.Key) (key.Binding, bool) {
	switch k {
	case types.KeyUp:
		return b.Up, true
	case types.KeyDown:
		return b.Down, true
	case types.KeyPageUp:
		return b.PageUp, true
	case types.KeyPageDown:
		return b.PageDown, true
	case types.KeyHome:
		return b.Home, true
	case types.KeyEnd:
		return b.End, true
	case types.KeyEnter:
		return b.Enter, true
	case types.KeyQuit:
		return b.Quit, true
	case types.KeyEscape:
		return b.Escape, true
	case types.KeyInterrupt:
		return b.Interrupt, true
	}
	return key.Binding{}, false
}
