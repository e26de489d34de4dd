package editor

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

const helpText = "^S Save | ^O Open | ^X Exit | ^G Toggle AI | Tab/→ Accept"

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	return m.viewport.View() + "\n" +
		m.statusBar() + "\n" +
		m.messageLine() + "\n" +
		m.helpLine()
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) renderContent() string {
	cursor := m.buf.Cursor()
	ghost, hasGhost := m.engine.remaining()

	lines := make([]string, 0, m.buf.LineCount())
	for row := 0; row < m.buf.LineCount(); row++ {
		if row == cursor.Row {
			lines = append(lines, m.renderCursorLine(m.buf.Line(row), cursor.Col, ghost, hasGhost))
			continue
		}
		lines = append(lines, m.styles.Text.Render(m.buf.Line(row)))
	}
	return strings.Join(lines, "\n")
}

// renderCursorLine draws the active line: committed text, the ghost tail
// at the cursor, and a reverse-video cursor cell. With a ghost showing,
// its first rune doubles as the cursor cell.
func (m *Model) renderCursorLine(line string, col int, ghost string, hasGhost bool) string {
	rs := []rune(line)
	if col > len(rs) {
		col = len(rs)
	}
	prefix := string(rs[:col])
	rest := string(rs[col:])

	var sb strings.Builder
	sb.WriteString(m.styles.Text.Render(prefix))

	switch {
	case hasGhost && ghost != "":
		gr := []rune(m.clipGhost(ghost, prefix))
		if len(gr) > 0 {
			sb.WriteString(m.styles.GhostCursor.Render(string(gr[:1])))
			sb.WriteString(m.styles.Ghost.Render(string(gr[1:])))
		}
		sb.WriteString(m.styles.Text.Render(rest))
	case rest != "":
		rr := []rune(rest)
		sb.WriteString(m.styles.Cursor.Render(string(rr[:1])))
		sb.WriteString(m.styles.Text.Render(string(rr[1:])))
	default:
		// Cursor at EOL renders as a 1-cell placeholder space.
		sb.WriteString(m.styles.Cursor.Render(" "))
	}
	return sb.String()
}

// clipGhost keeps the ghost tail inside the terminal width. Committed text
// is already wrap-bounded; the ghost is display-only and may overflow.
func (m *Model) clipGhost(ghost, prefix string) string {
	if m.width <= 0 {
		return ghost
	}
	avail := m.width - 1 - runewidth.StringWidth(prefix)
	if avail <= 0 {
		return ""
	}
	return runewidth.Truncate(ghost, avail, "")
}

func (m *Model) statusBar() string {
	name := m.filename
	if name == "" {
		name = "[No Name]"
	}

	var sb strings.Builder
	sb.WriteString(" " + name + " ")
	if m.buf.Dirty() {
		sb.WriteString("[Modified] ")
	}
	cur := m.buf.Cursor()
	fmt.Fprintf(&sb, "| Line %d/%d Col %d", cur.Row+1, m.buf.LineCount(), cur.Col+1)

	switch {
	case m.ai == nil || !m.ai.Available():
		sb.WriteString(" | AI: Not configured")
	case !m.engine.enabled:
		sb.WriteString(" | AI: Disabled")
	default:
		sb.WriteString(" | AI: Enabled")
	}
	return m.styles.StatusBar.Render(padToWidth(sb.String(), m.width))
}

// messageLine shows the live command/prompt input, or the transient status
// message while it is fresh.
func (m *Model) messageLine() string {
	switch m.mode {
	case modeCommand:
		return m.styles.Message.Render(m.truncLine(":" + string(m.input)))
	case modeOpenPrompt:
		return m.styles.Message.Render(m.truncLine("Open file: " + string(m.input)))
	}
	if m.status != "" && m.now.Sub(m.statusAt) < statusTTL {
		return m.styles.Message.Render(m.truncLine(m.status))
	}
	return ""
}

func (m *Model) helpLine() string {
	return m.styles.Help.Render(m.truncLine(helpText))
}

func (m *Model) truncLine(s string) string {
	if m.width <= 0 {
		return s
	}
	return runewidth.Truncate(s, m.width, "")
}

func padToWidth(s string, width int) string {
	if width <= 0 {
		return s
	}
	s = runewidth.Truncate(s, width, "")
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// followCursor keeps the cursor row inside the viewport.
func (m *Model) followCursor() {
	h := m.viewport.Height
	if h <= 0 {
		return
	}
	cur := m.buf.Cursor()
	y := m.viewport.YOffset
	if cur.Row < y {
		m.viewport.SetYOffset(cur.Row)
		return
	}
	if cur.Row >= y+h {
		m.viewport.SetYOffset(cur.Row - h + 1)
	}
}
