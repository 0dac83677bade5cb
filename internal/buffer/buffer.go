// Package buffer holds the document being edited: an ordered list of lines,
// the cursor, the selection anchor and the clipboard.
//
// Lines are stored as rune slices, so every column is a character offset and
// no edit can split a multi-byte sequence. Byte offsets are only produced on
// demand by ByteOffset.
package buffer

import (
	"strings"
	"unicode/utf8"
)

const defaultTabWidth = 4

// Position is a zero-based (line, column) pair. Col counts runes.
type Position struct {
	Line int
	Col  int
}

// Less reports whether p comes before o in document order.
func (p Position) Less(o Position) bool {
	if p.Line != o.Line {
		return p.Line < o.Line
	}
	return p.Col < o.Col
}

type clipboard struct {
	lines [][]rune
	// linewise payloads came from whole-line cuts and end with a line break.
	linewise bool
}

// payload returns the clipboard as text lines. A linewise clipboard gets a
// trailing empty line so its last line is terminated.
func (c *clipboard) payload() [][]rune {
	if c == nil || len(c.lines) == 0 {
		return nil
	}
	if !c.linewise {
		return c.lines
	}
	out := make([][]rune, 0, len(c.lines)+1)
	out = append(out, c.lines...)
	return append(out, []rune{})
}

// Buffer is the single owner of the document and cursor. It is not safe for
// concurrent use; the editor drives it from one goroutine.
type Buffer struct {
	lines     [][]rune
	cursor    Position
	anchor    Position
	selecting bool
	clip      *clipboard
	tabWidth  int
}

// New returns a buffer with one empty line and the cursor at (0, 0).
func New() *Buffer {
	return &Buffer{
		lines:    [][]rune{{}},
		tabWidth: defaultTabWidth,
	}
}

// SetTabWidth sets the indent width. Zero is ignored.
func (b *Buffer) SetTabWidth(width int) {
	if width > 0 {
		b.tabWidth = width
	}
}

func (b *Buffer) TabWidth() int {
	return b.tabWidth
}

func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the text of line index, or false when index is out of range.
func (b *Buffer) Line(index int) (string, bool) {
	if index < 0 || index >= len(b.lines) {
		return "", false
	}
	return string(b.lines[index]), true
}

// LineRunes returns line index as runes. The slice must not be modified.
func (b *Buffer) LineRunes(index int) []rune {
	if index < 0 || index >= len(b.lines) {
		return nil
	}
	return b.lines[index]
}

// LineLen returns the number of characters on line index.
func (b *Buffer) LineLen(index int) int {
	if index < 0 || index >= len(b.lines) {
		return 0
	}
	return len(b.lines[index])
}

func (b *Buffer) CursorLine() int {
	return b.cursor.Line
}

func (b *Buffer) CursorCol() int {
	return b.cursor.Col
}

func (b *Buffer) Cursor() Position {
	return b.cursor
}

// Content joins the document with a newline after every line.
func (b *Buffer) Content() string {
	var sb strings.Builder
	for _, line := range b.lines {
		sb.WriteString(string(line))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ByteOffset translates a character column on line into the byte offset of
// that character in the line's UTF-8 encoding. A column equal to the line
// length maps to the end of the line.
func (b *Buffer) ByteOffset(line, col int) (int, bool) {
	if line < 0 || line >= len(b.lines) {
		return 0, false
	}
	runes := b.lines[line]
	if col < 0 {
		col = 0
	}
	if col > len(runes) {
		col = len(runes)
	}
	n := 0
	for _, r := range runes[:col] {
		n += runeByteLen(r)
	}
	return n, true
}

func runeByteLen(r rune) int {
	if n := utf8.RuneLen(r); n > 0 {
		return n
	}
	// string conversion encodes invalid runes as U+FFFD
	return utf8.RuneLen(utf8.RuneError)
}

func (b *Buffer) clampCursorCol() {
	if n := len(b.lines[b.cursor.Line]); b.cursor.Col > n {
		b.cursor.Col = n
	}
	if b.cursor.Col < 0 {
		b.cursor.Col = 0
	}
}

func (b *Buffer) clampPosition(p Position) Position {
	if p.Line < 0 {
		p.Line = 0
	}
	if p.Line >= len(b.lines) {
		p.Line = len(b.lines) - 1
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if n := len(b.lines[p.Line]); p.Col > n {
		p.Col = n
	}
	return p
}

func cloneRunes(r []rune) []rune {
	return append([]rune(nil), r...)
}

func concatRunes(parts ...[]rune) []rune {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]rune, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
