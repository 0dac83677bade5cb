package buffer

import "strings"

// IndentCurrentLine prepends one tab width of spaces to the cursor's line.
func (b *Buffer) IndentCurrentLine() {
	b.indentLine(b.cursor.Line)
}

// UnindentCurrentLine removes up to one tab width of leading spaces.
func (b *Buffer) UnindentCurrentLine() {
	b.unindentLine(b.cursor.Line)
}

// IndentLines indents every in-range line of start..end inclusive.
func (b *Buffer) IndentLines(start, end int) {
	start = max(start, 0)
	end = min(end, len(b.lines)-1)
	for i := start; i <= end; i++ {
		b.indentLine(i)
	}
}

// UnindentLines unindents every in-range line of start..end inclusive.
func (b *Buffer) UnindentLines(start, end int) {
	start = max(start, 0)
	end = min(end, len(b.lines)-1)
	for i := start; i <= end; i++ {
		b.unindentLine(i)
	}
}

func (b *Buffer) indentLine(row int) {
	pad := []rune(strings.Repeat(" ", b.tabWidth))
	b.lines[row] = concatRunes(pad, b.lines[row])
	b.shiftColumns(row, b.tabWidth)
}

func (b *Buffer) unindentLine(row int) {
	line := b.lines[row]
	n := 0
	for n < b.tabWidth && n < len(line) && line[n] == ' ' {
		n++
	}
	if n == 0 {
		return
	}
	b.lines[row] = cloneRunes(line[n:])
	b.shiftColumns(row, -n)
}

// shiftColumns moves the cursor and anchor columns on row by delta, clamped
// at zero.
func (b *Buffer) shiftColumns(row, delta int) {
	if b.cursor.Line == row {
		b.cursor.Col = max(b.cursor.Col+delta, 0)
	}
	if b.selecting && b.anchor.Line == row {
		b.anchor.Col = max(b.anchor.Col+delta, 0)
	}
}
