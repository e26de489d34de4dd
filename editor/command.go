package editor

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// commandTrigger enters command-line mode when typed at column 0 of an
// empty line.
const commandTrigger = ':'

// exitConfirmWindow is how long a quit request with unsaved changes stays
// armed; a second request inside the window terminates the session.
const exitConfirmWindow = 3 * time.Second

// exitState is the exit-confirmation machine.
type exitState int

const (
	exitClean exitState = iota
	exitConfirmPending
)

// inputMode selects where printable input goes.
type inputMode int

const (
	modeNormal inputMode = iota
	modeCommand
	modeOpenPrompt
)

func (m Model) handleExit() (Model, tea.Cmd) {
	if !m.buf.Dirty() {
		return m, tea.Quit
	}
	if m.exit == exitConfirmPending && m.now.Sub(m.exitAt) <= exitConfirmWindow {
		return m, tea.Quit
	}
	// First request, or the confirmation window lapsed: restart the flow.
	m.exit = exitConfirmPending
	m.exitAt = m.now
	m.setStatus("Unsaved changes: ^S to save, ^X again to exit")
	return m, nil
}

// handleLineInput feeds keystrokes to the command line or the open-file
// prompt. Enter executes, Esc cancels, and either way the editor returns
// to Normal mode.
func (m Model) handleLineInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Cancel):
		m.mode = modeNormal
		m.input = nil

	case key.Matches(msg, k.Backspace):
		if len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		} else {
			// Deleting past the trigger cancels the mode.
			m.mode = modeNormal
		}

	case key.Matches(msg, k.Enter):
		line := strings.TrimSpace(string(m.input))
		mode := m.mode
		m.mode = modeNormal
		m.input = nil
		if mode == modeCommand {
			return m.execCommand(line)
		}
		if line != "" {
			m.openFile(line)
		}

	default:
		if msg.Type == tea.KeyRunes && !msg.Alt {
			m.input = append(m.input, msg.Runes...)
		}
	}
	return m, nil
}

// execCommand runs one accumulated command line. Recognized forms: w
// (optionally with a filename), q, q!, wq, and x. Outcomes surface on the
// status line; quit with unsaved changes is rejected unless forced.
func (m Model) execCommand(line string) (Model, tea.Cmd) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return m, nil
	}

	switch fields[0] {
	case "w":
		if len(fields) > 1 {
			m.filename = fields[1]
		}
		_ = m.save()

	case "q":
		if m.buf.Dirty() {
			m.setStatus("Unsaved changes (use :q! to force quit)")
			return m, nil
		}
		return m, tea.Quit

	case "q!":
		return m, tea.Quit

	case "wq", "x":
		if len(fields) > 1 {
			m.filename = fields[1]
		}
		if err := m.save(); err != nil {
			return m, nil
		}
		return m, tea.Quit

	default:
		m.setStatus("Unknown command: " + line)
	}
	return m, nil
}
