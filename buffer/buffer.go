package buffer

import "strings"

// Pos points into the document by (row, col) in runes. Row and Col are
// 0-based.
type Pos struct {
	Row int
	Col int
}

// Buffer is the document state: text lines, cursor, and a dirty flag.
//
// Invariants: there is always at least one line (possibly empty), and the
// cursor satisfies 0 <= Row < line count and 0 <= Col <= len(line).
type Buffer struct {
	lines  [][]rune
	cursor Pos
	dirty  bool
}

func New(text string) *Buffer {
	return &Buffer{lines: splitLines(text)}
}

func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// SetText replaces the whole document and resets cursor and dirty state.
func (b *Buffer) SetText(text string) {
	b.lines = splitLines(text)
	b.cursor = Pos{}
	b.dirty = false
}

func (b *Buffer) LineCount() int { return len(b.lines) }

func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return string(b.lines[row])
}

func (b *Buffer) LineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) { b.cursor = b.clampPos(p) }

func (b *Buffer) Dirty() bool { return b.dirty }

func (b *Buffer) MarkClean() { b.dirty = false }

// ContextBefore returns up to maxRows previous lines plus the current line
// up to the cursor, joined with newlines and trimmed to the last maxChars
// runes. This is the context sent to the completion endpoint.
func (b *Buffer) ContextBefore(maxRows, maxChars int) string {
	row, col := b.cursor.Row, b.cursor.Col
	start := row - maxRows
	if start < 0 {
		start = 0
	}

	var sb strings.Builder
	for i := start; i < row; i++ {
		sb.WriteString(string(b.lines[i]))
		sb.WriteByte('\n')
	}
	line := b.lines[row]
	if col > len(line) {
		col = len(line)
	}
	sb.WriteString(string(line[:col]))

	out := []rune(sb.String())
	if maxChars > 0 && len(out) > maxChars {
		out = out[len(out)-maxChars:]
	}
	return string(out)
}

func (b *Buffer) clampPos(p Pos) Pos {
	row := clampInt(p.Row, 0, len(b.lines)-1)
	col := clampInt(p.Col, 0, len(b.lines[row]))
	return Pos{Row: row, Col: col}
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}
