package buffer

import (
	"reflect"
	"testing"
)

func newTestBuffer(lines ...string) *Buffer {
	if len(lines) == 0 {
		lines = []string{""}
	}
	b := New()
	b.lines = make([][]rune, len(lines))
	for i, line := range lines {
		b.lines[i] = []rune(line)
	}
	return b
}

func lineStrings(b *Buffer) []string {
	out := make([]string, b.LineCount())
	for i := range out {
		out[i], _ = b.Line(i)
	}
	return out
}

func assertLines(t *testing.T, b *Buffer, want ...string) {
	t.Helper()
	if got := lineStrings(b); !reflect.DeepEqual(got, want) {
		t.Fatalf("lines = %q, want %q", got, want)
	}
}

func assertCursor(t *testing.T, b *Buffer, line, col int) {
	t.Helper()
	if b.CursorLine() != line || b.CursorCol() != col {
		t.Fatalf("cursor = (%d,%d), want (%d,%d)", b.CursorLine(), b.CursorCol(), line, col)
	}
}

func assertInvariants(t *testing.T, b *Buffer) {
	t.Helper()
	if b.LineCount() < 1 {
		t.Fatalf("line count = %d, want >= 1", b.LineCount())
	}
	if b.CursorLine() < 0 || b.CursorLine() >= b.LineCount() {
		t.Fatalf("cursor line %d out of range [0,%d)", b.CursorLine(), b.LineCount())
	}
	if b.CursorCol() < 0 || b.CursorCol() > b.LineLen(b.CursorLine()) {
		t.Fatalf("cursor col %d out of range [0,%d]", b.CursorCol(), b.LineLen(b.CursorLine()))
	}
}

func TestNewBuffer(t *testing.T) {
	b := New()
	assertLines(t, b, "")
	assertCursor(t, b, 0, 0)
	if _, ok := b.Clipboard(); ok {
		t.Fatalf("clipboard present on a new buffer")
	}
	if got := b.Content(); got != "\n" {
		t.Fatalf("Content = %q, want %q", got, "\n")
	}
	if b.TabWidth() != 4 {
		t.Fatalf("TabWidth = %d, want 4", b.TabWidth())
	}
}

func TestLineOutOfRange(t *testing.T) {
	b := newTestBuffer("a", "b")
	if _, ok := b.Line(2); ok {
		t.Fatalf("Line(2) ok = true, want false")
	}
	if _, ok := b.Line(-1); ok {
		t.Fatalf("Line(-1) ok = true, want false")
	}
	if got, ok := b.Line(1); !ok || got != "b" {
		t.Fatalf("Line(1) = %q,%v, want %q,true", got, ok, "b")
	}
}

func TestContentTrailingNewlinePerLine(t *testing.T) {
	b := newTestBuffer("abc", "", "d")
	if got := b.Content(); got != "abc\n\nd\n" {
		t.Fatalf("Content = %q", got)
	}
}

func TestSetTabWidthIgnoresZero(t *testing.T) {
	b := New()
	b.SetTabWidth(0)
	if b.TabWidth() != 4 {
		t.Fatalf("TabWidth = %d, want 4", b.TabWidth())
	}
	b.SetTabWidth(2)
	if b.TabWidth() != 2 {
		t.Fatalf("TabWidth = %d, want 2", b.TabWidth())
	}
}

func TestByteOffset(t *testing.T) {
	b := newTestBuffer("aé€😀z")
	tests := []struct {
		col  int
		want int
	}{
		{0, 0},
		{1, 1},
		{2, 3},
		{3, 6},
		{4, 10},
		{5, 11},
		{99, 11},
	}
	for _, tt := range tests {
		got, ok := b.ByteOffset(0, tt.col)
		if !ok || got != tt.want {
			t.Fatalf("ByteOffset(0,%d) = %d,%v, want %d,true", tt.col, got, ok, tt.want)
		}
	}
	if _, ok := b.ByteOffset(1, 0); ok {
		t.Fatalf("ByteOffset on missing line ok = true")
	}
}

func TestMoveCursorClamps(t *testing.T) {
	b := newTestBuffer("abc", "de")
	b.MoveCursor(1, 10)
	assertCursor(t, b, 1, 2)
	b.MoveCursor(5, 0)
	assertCursor(t, b, 1, 2)
	b.MoveCursor(0, 1)
	assertCursor(t, b, 0, 1)
}

func TestMoveCursorLeftRightWrap(t *testing.T) {
	b := newTestBuffer("ab", "c")
	b.MoveCursorLeft()
	assertCursor(t, b, 0, 0)

	b.MoveCursor(0, 2)
	b.MoveCursorRight()
	assertCursor(t, b, 1, 0)
	b.MoveCursorLeft()
	assertCursor(t, b, 0, 2)

	b.MoveCursor(1, 1)
	b.MoveCursorRight()
	assertCursor(t, b, 1, 1)
}

func TestMoveCursorUpDownClampsColumn(t *testing.T) {
	b := newTestBuffer("long line", "ab", "another one")
	b.MoveCursor(0, 7)
	b.MoveCursorDown()
	assertCursor(t, b, 1, 2)
	b.MoveCursorDown()
	assertCursor(t, b, 2, 2)
	b.MoveCursorDown()
	assertCursor(t, b, 2, 2)

	b.MoveCursor(0, 3)
	b.MoveCursorUp()
	assertCursor(t, b, 0, 3)
}

func TestMoveLineStartEnd(t *testing.T) {
	b := newTestBuffer("héllo")
	b.MoveCursorToLineEnd()
	assertCursor(t, b, 0, 5)
	b.MoveCursorToLineStart()
	assertCursor(t, b, 0, 0)
}

func TestMoveDocumentStartEnd(t *testing.T) {
	b := newTestBuffer("a", "bc", "def")
	b.MoveCursorToDocumentEnd()
	assertCursor(t, b, 2, 3)
	b.MoveCursorToDocumentStart()
	assertCursor(t, b, 0, 0)
}
