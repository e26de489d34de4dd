package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.mode != modeNormal {
		return m.handleLineInput(msg)
	}

	k := m.keys
	if key.Matches(msg, k.Exit) {
		return m.handleExit()
	}
	// Any other key abandons a pending exit confirmation.
	m.exit = exitClean

	switch {
	case key.Matches(msg, k.Save):
		_ = m.save()

	case key.Matches(msg, k.Open):
		m.mode = modeOpenPrompt
		m.input = nil
		m.engine.clear()

	case key.Matches(msg, k.ToggleAI):
		m.toggleAI()

	case key.Matches(msg, k.Accept):
		m.acceptSuggestion()

	case key.Matches(msg, k.Right):
		if !m.acceptSuggestion() {
			m.engine.clear()
			m.buf.Move(0, 1)
		}

	case key.Matches(msg, k.Left):
		m.engine.clear()
		m.buf.Move(0, -1)
	case key.Matches(msg, k.Up):
		m.engine.clear()
		m.buf.Move(-1, 0)
	case key.Matches(msg, k.Down):
		m.engine.clear()
		m.buf.Move(1, 0)
	case key.Matches(msg, k.Home):
		m.engine.clear()
		m.buf.MoveLineStart()
	case key.Matches(msg, k.End):
		m.engine.clear()
		m.buf.MoveLineEnd()

	case key.Matches(msg, k.Backspace):
		m.engine.clear()
		m.buf.DeleteBackward()
		m.engine.noteInput(m.now)
	case key.Matches(msg, k.Delete):
		m.engine.clear()
		m.buf.DeleteForward()
		m.engine.noteInput(m.now)
	case key.Matches(msg, k.Enter):
		m.engine.clear()
		m.buf.InsertNewline()
		m.engine.noteInput(m.now)

	default:
		if msg.Type == tea.KeyRunes && !msg.Alt {
			m.insertRunes(msg.Runes)
		}
	}
	return m, nil
}

// insertRunes is the typing path: each rune is matched against the
// displayed suggestion, inserted, and wrap-checked. A colon at column 0 of
// an empty line enters command mode instead of inserting.
func (m *Model) insertRunes(rs []rune) {
	for _, r := range rs {
		if r == commandTrigger && m.atEmptyLineStart() {
			m.mode = modeCommand
			m.input = nil
			m.engine.clear()
			return
		}

		m.engine.matchRune(r)
		m.buf.InsertRune(r)

		before := m.buf.Cursor()
		if m.buf.WrapOverflow(m.wrapWidth(), wrapLookback) && m.buf.Cursor() != before {
			// The wrap carried the insertion point onto a new line, which
			// breaks the suggestion's anchor relation.
			m.engine.clear()
		}
		m.engine.noteInput(m.now)
	}
}

func (m *Model) atEmptyLineStart() bool {
	cur := m.buf.Cursor()
	return cur.Col == 0 && m.buf.LineLen(cur.Row) == 0
}

// acceptSuggestion inserts the unmatched remainder at the cursor, wrapping
// incrementally so no line ends up wider than the terminal.
func (m *Model) acceptSuggestion() bool {
	rest, ok := m.engine.remaining()
	if !ok || rest == "" {
		m.engine.clear()
		return false
	}
	m.engine.clear()
	for _, r := range rest {
		m.buf.InsertRune(r)
		m.buf.WrapOverflow(m.wrapWidth(), wrapLookback)
	}
	m.engine.noteInput(m.now)
	return true
}

func (m *Model) toggleAI() {
	on := !m.engine.enabled
	m.engine.setEnabled(on)
	if on {
		m.setStatus("AI autocomplete enabled")
	} else {
		m.setStatus("AI autocomplete disabled")
	}
}
