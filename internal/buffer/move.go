package buffer

// MoveCursor places the cursor at (line, col). An out-of-range line leaves
// the cursor untouched; col is clamped to the target line.
func (b *Buffer) MoveCursor(line, col int) {
	if line < 0 || line >= len(b.lines) {
		return
	}
	b.cursor.Line = line
	b.cursor.Col = col
	b.clampCursorCol()
}

func (b *Buffer) MoveCursorLeft() {
	if b.cursor.Col > 0 {
		b.cursor.Col--
		return
	}
	if b.cursor.Line == 0 {
		return
	}
	b.cursor.Line--
	b.cursor.Col = len(b.lines[b.cursor.Line])
}

func (b *Buffer) MoveCursorRight() {
	if b.cursor.Col < len(b.lines[b.cursor.Line]) {
		b.cursor.Col++
		return
	}
	if b.cursor.Line >= len(b.lines)-1 {
		return
	}
	b.cursor.Line++
	b.cursor.Col = 0
}

func (b *Buffer) MoveCursorUp() {
	if b.cursor.Line == 0 {
		return
	}
	b.cursor.Line--
	b.clampCursorCol()
}

func (b *Buffer) MoveCursorDown() {
	if b.cursor.Line >= len(b.lines)-1 {
		return
	}
	b.cursor.Line++
	b.clampCursorCol()
}

func (b *Buffer) MoveCursorToLineStart() {
	b.cursor.Col = 0
}

func (b *Buffer) MoveCursorToLineEnd() {
	b.cursor.Col = len(b.lines[b.cursor.Line])
}

func (b *Buffer) MoveCursorToDocumentStart() {
	b.cursor = Position{}
}

func (b *Buffer) MoveCursorToDocumentEnd() {
	last := len(b.lines) - 1
	b.cursor = Position{Line: last, Col: len(b.lines[last])}
}
