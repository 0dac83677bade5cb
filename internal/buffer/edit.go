package buffer

import "strings"

// InsertChar inserts r at the cursor and advances one character. A newline
// splits the line instead.
func (b *Buffer) InsertChar(r rune) {
	if r == '\n' {
		b.InsertNewline()
		return
	}
	row, col := b.cursor.Line, b.cursor.Col
	line := append(b.lines[row], 0)
	copy(line[col+1:], line[col:])
	line[col] = r
	b.lines[row] = line
	b.cursor.Col++
}

// ReplaceChar overwrites the character under the cursor and advances. At the
// end of a line it appends; a newline still splits the line.
func (b *Buffer) ReplaceChar(r rune) {
	if r == '\n' || b.cursor.Col >= len(b.lines[b.cursor.Line]) {
		b.InsertChar(r)
		return
	}
	b.lines[b.cursor.Line][b.cursor.Col] = r
	b.cursor.Col++
}

// InsertString inserts text one character at a time. CRLF is treated as a
// single line break.
func (b *Buffer) InsertString(text string) {
	for _, r := range strings.ReplaceAll(text, "\r\n", "\n") {
		b.InsertChar(r)
	}
}

// InsertNewline splits the current line at the cursor. The tail becomes a new
// line below and the cursor moves to its start.
func (b *Buffer) InsertNewline() {
	row, col := b.cursor.Line, b.cursor.Col
	line := b.lines[row]
	left := cloneRunes(line[:col])
	right := cloneRunes(line[col:])

	lines := make([][]rune, 0, len(b.lines)+1)
	lines = append(lines, b.lines[:row]...)
	lines = append(lines, left, right)
	lines = append(lines, b.lines[row+1:]...)
	b.lines = lines
	b.cursor = Position{Line: row + 1}
}

// DeleteCharBeforeCursor is backspace. At column 0 the line is joined onto
// the previous one and the cursor lands on the join point.
func (b *Buffer) DeleteCharBeforeCursor() {
	row, col := b.cursor.Line, b.cursor.Col
	if col > 0 {
		line := b.lines[row]
		b.lines[row] = append(line[:col-1], line[col:]...)
		b.cursor.Col--
		return
	}
	if row == 0 {
		return
	}
	prev := b.lines[row-1]
	join := len(prev)
	b.lines[row-1] = concatRunes(prev, b.lines[row])
	b.removeLines(row, row)
	b.cursor = Position{Line: row - 1, Col: join}
}

// DeleteCharAtCursor is forward delete. At the end of a line the next line is
// pulled up; the cursor does not move.
func (b *Buffer) DeleteCharAtCursor() {
	row, col := b.cursor.Line, b.cursor.Col
	line := b.lines[row]
	if col < len(line) {
		b.lines[row] = append(line[:col], line[col+1:]...)
		return
	}
	if row >= len(b.lines)-1 {
		return
	}
	b.lines[row] = concatRunes(line, b.lines[row+1])
	b.removeLines(row+1, row+1)
}

// Undo is a placeholder: edits are not recorded.
func (b *Buffer) Undo() {}

// Redo is a placeholder: edits are not recorded.
func (b *Buffer) Redo() {}

// removeLines drops lines[start..end] inclusive and returns them. Callers
// must restore the one-line minimum themselves.
func (b *Buffer) removeLines(start, end int) [][]rune {
	removed := make([][]rune, 0, end-start+1)
	removed = append(removed, b.lines[start:end+1]...)
	lines := make([][]rune, 0, len(b.lines)-len(removed))
	lines = append(lines, b.lines[:start]...)
	lines = append(lines, b.lines[end+1:]...)
	b.lines = lines
	return removed
}

// deleteRange removes the text in [start, end) and puts the cursor at start.
func (b *Buffer) deleteRange(start, end Position) {
	if start.Line == end.Line {
		line := b.lines[start.Line]
		b.lines[start.Line] = concatRunes(line[:start.Col], line[end.Col:])
		b.cursor = start
		return
	}
	merged := concatRunes(b.lines[start.Line][:start.Col], b.lines[end.Line][end.Col:])
	lines := make([][]rune, 0, len(b.lines)-(end.Line-start.Line))
	lines = append(lines, b.lines[:start.Line]...)
	lines = append(lines, merged)
	lines = append(lines, b.lines[end.Line+1:]...)
	b.lines = lines
	b.cursor = start
}

// textRange copies the text in [start, end) as lines.
func (b *Buffer) textRange(start, end Position) [][]rune {
	if start.Line == end.Line {
		return [][]rune{cloneRunes(b.lines[start.Line][start.Col:end.Col])}
	}
	out := make([][]rune, 0, end.Line-start.Line+1)
	out = append(out, cloneRunes(b.lines[start.Line][start.Col:]))
	for i := start.Line + 1; i < end.Line; i++ {
		out = append(out, cloneRunes(b.lines[i]))
	}
	return append(out, cloneRunes(b.lines[end.Line][:end.Col]))
}
