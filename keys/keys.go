// Package keys adapts bubbletea input to grid cursor input and holds the
// application key bindings.
package keys

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"tally/selection"
)

// Key converts a key press for a cursor.
func Key(msg tea.KeyPressMsg) selection.Key {
	return parse(msg.String(), msg.Text)
}

// Click returns the cell coordinates of a left click.
func Click(msg tea.MouseClickMsg) (x, y int, ok bool) {

	mouse := msg.Mouse()
	if mouse.Button != tea.MouseLeft {
		return
	}

	return mouse.X, mouse.Y, true
}

// Wheel returns -1 for wheel up, 1 for wheel down and 0 otherwise.
func Wheel(msg tea.MouseWheelMsg) int {

	switch msg.Mouse().Button {
	case tea.MouseWheelUp:
		return -1
	case tea.MouseWheelDown:
		return 1
	}
	return 0
}

// Map is the application key bindings.
type Map struct {
	Quit        key.Binding
	NextScreen  key.Binding
	Reload      key.Binding
	ClearFilter key.Binding
}

// DefaultMap returns the default application key bindings.
func DefaultMap() Map {

	return Map{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("ctrl+q", "quit"),
		),
		NextScreen: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "next screen"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload layout"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "all accounts"),
		),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (km Map) ShortHelp() []key.Binding {
	return []key.Binding{km.NextScreen, km.ClearFilter, km.Reload, km.Quit}
}

// unexported

// parse splits a keystroke like "ctrl+shift+home" into its modifiers and name.
// Unmodified text is reported as text with no name.
func parse(stroke, text string) (sk selection.Key) {

	alt := false
	name := stroke
	for {
		mod, rest, ok := strings.Cut(name, "+")
		if !ok || rest == "" {
			break
		}

		switch mod {
		case "ctrl":
			sk.Ctrl = true
		case "shift":
			sk.Shift = true
		case "alt":
			alt = true
		default:
			// not a modifier, leave the name alone
			sk.Name = name
			return
		}
		name = rest
	}

	if text != "" && !sk.Ctrl && !alt {
		sk.Text = text
		return
	}

	sk.Name = name
	return
}
