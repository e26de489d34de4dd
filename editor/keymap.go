package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	Home, End             key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding

	// Accept commits a displayed suggestion; Right doubles as a second
	// accept key and falls back to cursor movement.
	Accept key.Binding

	Save     key.Binding
	Open     key.Binding
	Exit     key.Binding
	ToggleAI key.Binding
	Cancel   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right/accept")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),

		Accept: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "accept suggestion")),

		Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("^S", "save")),
		Open:     key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("^O", "open")),
		Exit:     key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("^X", "exit")),
		ToggleAI: key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("^G", "toggle AI")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}
