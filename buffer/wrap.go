package buffer

// WrapOverflow splits the cursor row when it exceeds width runes. The break
// lands on the latest space within lookback runes before the overflow
// column; the space is consumed by the break. With no space in range the
// line splits hard at the overflow column. The remainder becomes a new line
// directly below and the cursor relocates with whichever side of the split
// it falls on.
//
// Reports whether a split happened. Content is preserved: rejoining the two
// lines at the break (re-adding the consumed space) reproduces the original.
func (b *Buffer) WrapOverflow(width, lookback int) bool {
	if width <= 0 {
		return false
	}
	row := b.cursor.Row
	line := b.lines[row]
	if len(line) <= width {
		return false
	}

	split, spaceConsumed := wrapPoint(line, width, lookback)
	restStart := split
	if spaceConsumed {
		restStart++
	}

	left := append([]rune(nil), line[:split]...)
	rest := append([]rune(nil), line[restStart:]...)

	b.lines[row] = left
	b.insertLineAfter(row, rest)

	if col := b.cursor.Col; col > split {
		b.cursor = Pos{Row: row + 1, Col: maxInt(col-restStart, 0)}
	}
	b.dirty = true
	return true
}

// wrapPoint finds the break column: the latest space within lookback runes
// before the overflow column, or the overflow column itself.
func wrapPoint(line []rune, width, lookback int) (split int, spaceConsumed bool) {
	lo := width - lookback
	if lo < 0 {
		lo = 0
	}
	for i := width; i > lo; i-- {
		if line[i-1] == ' ' {
			return i - 1, true
		}
	}
	return width, false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
