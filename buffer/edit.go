package buffer

// InsertRune inserts a single rune at the cursor and advances it.
func (b *Buffer) InsertRune(r rune) {
	row, col := b.cursor.Row, b.cursor.Col
	line := b.lines[row]

	next := make([]rune, 0, len(line)+1)
	next = append(next, line[:col]...)
	next = append(next, r)
	next = append(next, line[col:]...)

	b.lines[row] = next
	b.cursor.Col = col + 1
	b.dirty = true
}

// InsertText inserts a single-line string at the cursor. Line breaks are the
// caller's concern; use InsertNewline to break lines.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		return
	}
	rs := []rune(s)
	row, col := b.cursor.Row, b.cursor.Col
	line := b.lines[row]

	next := make([]rune, 0, len(line)+len(rs))
	next = append(next, line[:col]...)
	next = append(next, rs...)
	next = append(next, line[col:]...)

	b.lines[row] = next
	b.cursor.Col = col + len(rs)
	b.dirty = true
}

// InsertNewline splits the current line at the cursor.
func (b *Buffer) InsertNewline() {
	row, col := b.cursor.Row, b.cursor.Col
	line := b.lines[row]

	before := append([]rune(nil), line[:col]...)
	after := append([]rune(nil), line[col:]...)

	b.lines[row] = before
	b.insertLineAfter(row, after)
	b.cursor = Pos{Row: row + 1, Col: 0}
	b.dirty = true
}

// DeleteBackward applies backspace semantics: remove the rune before the
// cursor, or join with the previous line at column 0.
func (b *Buffer) DeleteBackward() {
	row, col := b.cursor.Row, b.cursor.Col

	if col > 0 {
		line := b.lines[row]
		next := make([]rune, 0, len(line)-1)
		next = append(next, line[:col-1]...)
		next = append(next, line[col:]...)
		b.lines[row] = next
		b.cursor.Col = col - 1
		b.dirty = true
		return
	}

	if row == 0 {
		return
	}

	prev := b.lines[row-1]
	joined := make([]rune, 0, len(prev)+len(b.lines[row]))
	joined = append(joined, prev...)
	joined = append(joined, b.lines[row]...)
	b.lines[row-1] = joined
	b.removeLine(row)
	b.cursor = Pos{Row: row - 1, Col: len(prev)}
	b.dirty = true
}

// DeleteForward applies delete-key semantics: remove the rune under the
// cursor, or join with the next line at end of line.
func (b *Buffer) DeleteForward() {
	row, col := b.cursor.Row, b.cursor.Col
	line := b.lines[row]

	if col < len(line) {
		next := make([]rune, 0, len(line)-1)
		next = append(next, line[:col]...)
		next = append(next, line[col+1:]...)
		b.lines[row] = next
		b.dirty = true
		return
	}

	if row == len(b.lines)-1 {
		return
	}

	joined := make([]rune, 0, len(line)+len(b.lines[row+1]))
	joined = append(joined, line...)
	joined = append(joined, b.lines[row+1]...)
	b.lines[row] = joined
	b.removeLine(row + 1)
	b.dirty = true
}

// Move applies clamped relative cursor movement. Vertical movement clamps
// the column to the target line; horizontal movement stays within the line.
func (b *Buffer) Move(dRow, dCol int) {
	row, col := b.cursor.Row, b.cursor.Col

	if dRow != 0 {
		row = clampInt(row+dRow, 0, len(b.lines)-1)
		col = clampInt(col, 0, len(b.lines[row]))
	}
	if dCol != 0 {
		col = clampInt(col+dCol, 0, len(b.lines[row]))
	}
	b.cursor = Pos{Row: row, Col: col}
}

// MoveLineStart moves the cursor to column 0.
func (b *Buffer) MoveLineStart() { b.cursor.Col = 0 }

// MoveLineEnd moves the cursor past the last rune of the current line.
func (b *Buffer) MoveLineEnd() { b.cursor.Col = len(b.lines[b.cursor.Row]) }

func (b *Buffer) insertLineAfter(row int, line []rune) {
	tail := append([][]rune{line}, b.lines[row+1:]...)
	b.lines = append(b.lines[:row+1:row+1], tail...)
}

func (b *Buffer) removeLine(row int) {
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	if len(b.lines) == 0 {
		b.lines = [][]rune{nil}
	}
}
