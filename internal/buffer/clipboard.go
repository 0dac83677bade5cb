package buffer

import (
	"strings"
	"unicode"
)

// Selection returns the range between the anchor and the cursor in document
// order. ok is false when no selection is active or it is empty.
func (b *Buffer) Selection() (start, end Position, ok bool) {
	if !b.selecting {
		return Position{}, Position{}, false
	}
	anchor := b.clampPosition(b.anchor)
	if anchor == b.cursor {
		return Position{}, Position{}, false
	}
	if anchor.Less(b.cursor) {
		return anchor, b.cursor, true
	}
	return b.cursor, anchor, true
}

func (b *Buffer) HasSelection() bool {
	_, _, ok := b.Selection()
	return ok
}

func (b *Buffer) ClearSelection() {
	b.selecting = false
	b.anchor = Position{}
}

// startSelection drops the anchor at the cursor unless one is already set.
func (b *Buffer) startSelection() {
	if b.selecting {
		return
	}
	b.anchor = b.cursor
	b.selecting = true
}

// SelectCharLeft extends the selection one character left and puts that
// character on the clipboard. No-op at the start of a line.
func (b *Buffer) SelectCharLeft() {
	col := b.cursor.Col
	if col == 0 {
		return
	}
	b.startSelection()
	line := b.lines[b.cursor.Line]
	b.setClipboard([][]rune{cloneRunes(line[col-1 : col])}, false)
	b.cursor.Col--
}

// SelectCharRight extends the selection one character right and puts that
// character on the clipboard. No-op at the end of a line.
func (b *Buffer) SelectCharRight() {
	col := b.cursor.Col
	line := b.lines[b.cursor.Line]
	if col >= len(line) {
		return
	}
	b.startSelection()
	b.setClipboard([][]rune{cloneRunes(line[col : col+1])}, false)
	b.cursor.Col++
}

// SelectWordLeft moves to the start of the run of non-whitespace characters
// ending at the cursor and puts that run on the clipboard. No-op when the
// cursor is at the line start or right after whitespace.
func (b *Buffer) SelectWordLeft() {
	col := b.cursor.Col
	line := b.lines[b.cursor.Line]
	start := col
	for start > 0 && !unicode.IsSpace(line[start-1]) {
		start--
	}
	if start == col {
		return
	}
	b.startSelection()
	b.setClipboard([][]rune{cloneRunes(line[start:col])}, false)
	b.cursor.Col = start
}

// SelectWordRight is the mirror of SelectWordLeft.
func (b *Buffer) SelectWordRight() {
	col := b.cursor.Col
	line := b.lines[b.cursor.Line]
	end := col
	for end < len(line) && !unicode.IsSpace(line[end]) {
		end++
	}
	if end == col {
		return
	}
	b.startSelection()
	b.setClipboard([][]rune{cloneRunes(line[col:end])}, false)
	b.cursor.Col = end
}

// SelectLineUp moves the cursor one line up, extending the selection. The
// clipboard is not touched.
func (b *Buffer) SelectLineUp() {
	if b.cursor.Line == 0 {
		return
	}
	b.startSelection()
	b.cursor.Line--
	b.clampCursorCol()
}

func (b *Buffer) SelectLineDown() {
	if b.cursor.Line >= len(b.lines)-1 {
		return
	}
	b.startSelection()
	b.cursor.Line++
	b.clampCursorCol()
}

// SelectTo extends the selection to (line, col) without touching the
// clipboard. The target is clamped; a target equal to the cursor is a no-op.
func (b *Buffer) SelectTo(line, col int) {
	p := b.clampPosition(Position{Line: line, Col: col})
	if p == b.cursor {
		return
	}
	b.startSelection()
	b.cursor = p
}

// SelectAll anchors at the document start and moves the cursor to the end.
func (b *Buffer) SelectAll() {
	b.anchor = Position{}
	b.selecting = true
	b.MoveCursorToDocumentEnd()
}

// CopySelectedText puts the selected text on the clipboard. It reports false
// when nothing is selected.
func (b *Buffer) CopySelectedText() bool {
	start, end, ok := b.Selection()
	if !ok {
		return false
	}
	b.setClipboard(b.textRange(start, end), false)
	return true
}

// CutSelectedText moves the selected text to the clipboard and clears the
// selection. It reports false when nothing is selected.
func (b *Buffer) CutSelectedText() bool {
	start, end, ok := b.Selection()
	if !ok {
		return false
	}
	b.setClipboard(b.textRange(start, end), false)
	b.deleteRange(start, end)
	b.ClearSelection()
	return true
}

// CutCurrentLine removes the cursor's line onto the clipboard.
func (b *Buffer) CutCurrentLine() {
	b.CutLines(b.cursor.Line, b.cursor.Line)
}

// CutLines removes lines start..end inclusive onto the clipboard. Invalid
// ranges are ignored. The cursor stays on a remaining line with its column
// clamped; cutting everything leaves one empty line with the cursor at (0, 0).
func (b *Buffer) CutLines(start, end int) {
	if start < 0 || start > end || end >= len(b.lines) {
		return
	}
	removed := b.removeLines(start, end)
	b.setClipboard(removed, true)
	b.ClearSelection()

	if len(b.lines) == 0 {
		b.lines = [][]rune{{}}
		b.cursor = Position{}
		return
	}
	switch {
	case b.cursor.Line > end:
		b.cursor.Line -= end - start + 1
	case b.cursor.Line >= start:
		b.cursor.Line = min(start, len(b.lines)-1)
	}
	b.clampCursorCol()
}

// CopyCurrentLine puts a copy of the cursor's line on the clipboard.
func (b *Buffer) CopyCurrentLine() {
	b.setClipboard([][]rune{cloneRunes(b.lines[b.cursor.Line])}, false)
}

// Paste inserts the clipboard at the cursor. Whole lines from a line cut go
// in above the cursor's line without splitting it, and the cursor stays on
// the text it was on. Otherwise a single line is spliced into the current
// line; several lines split it, with the text after the cursor following the
// last pasted line, and the cursor ends right after the pasted text.
func (b *Buffer) Paste() {
	if b.clip == nil || len(b.clip.lines) == 0 {
		return
	}
	if b.clip.linewise {
		b.pasteLines()
		return
	}
	payload := b.clip.lines
	row, col := b.cursor.Line, b.cursor.Col
	line := b.lines[row]
	before, after := line[:col], line[col:]

	if len(payload) == 1 {
		b.lines[row] = concatRunes(before, payload[0], after)
		b.cursor.Col = col + len(payload[0])
		return
	}

	last := payload[len(payload)-1]
	lines := make([][]rune, 0, len(b.lines)+len(payload)-1)
	lines = append(lines, b.lines[:row]...)
	lines = append(lines, concatRunes(before, payload[0]))
	for _, mid := range payload[1 : len(payload)-1] {
		lines = append(lines, cloneRunes(mid))
	}
	lines = append(lines, concatRunes(last, after))
	lines = append(lines, b.lines[row+1:]...)
	b.lines = lines
	b.cursor = Position{Line: row + len(payload) - 1, Col: len(last)}
}

func (b *Buffer) pasteLines() {
	row := b.cursor.Line
	n := len(b.clip.lines)
	lines := make([][]rune, 0, len(b.lines)+n)
	lines = append(lines, b.lines[:row]...)
	for _, l := range b.clip.lines {
		lines = append(lines, cloneRunes(l))
	}
	lines = append(lines, b.lines[row:]...)
	b.lines = lines
	b.cursor.Line = row + n
}

// Clipboard returns the clipboard lines, or false if nothing was ever cut or
// copied.
func (b *Buffer) Clipboard() ([]string, bool) {
	if b.clip == nil {
		return nil, false
	}
	out := make([]string, len(b.clip.lines))
	for i, line := range b.clip.lines {
		out[i] = string(line)
	}
	return out, true
}

// ClipboardText is the clipboard joined with newlines, as it would be pasted.
func (b *Buffer) ClipboardText() string {
	payload := b.clip.payload()
	parts := make([]string, len(payload))
	for i, line := range payload {
		parts[i] = string(line)
	}
	return strings.Join(parts, "\n")
}

func (b *Buffer) setClipboard(lines [][]rune, linewise bool) {
	b.clip = &clipboard{lines: lines, linewise: linewise}
}
