package buffer

import (
	"math/rand"
	"testing"
	"unicode/utf8"
)

func TestBasicTyping(t *testing.T) {
	b := New()
	b.InsertString("abc")
	b.InsertNewline()
	b.InsertChar('d')
	assertLines(t, b, "abc", "d")
	assertCursor(t, b, 1, 1)
}

func TestInsertCharNewlineDelegates(t *testing.T) {
	b := newTestBuffer("abcd")
	b.MoveCursor(0, 2)
	b.InsertChar('\n')
	assertLines(t, b, "ab", "cd")
	assertCursor(t, b, 1, 0)
}

func TestInsertStringEmbeddedNewlines(t *testing.T) {
	b := newTestBuffer("[]")
	b.MoveCursor(0, 1)
	b.InsertString("x\r\ny\nz")
	assertLines(t, b, "[x", "y", "z]")
	assertCursor(t, b, 2, 1)
}

func TestInsertMultiByte(t *testing.T) {
	b := newTestBuffer("añb")
	b.MoveCursor(0, 2)
	b.InsertChar('€')
	assertLines(t, b, "añ€b")
	assertCursor(t, b, 0, 3)
	b.InsertChar('😀')
	assertLines(t, b, "añ€😀b")
	assertCursor(t, b, 0, 4)
}

func TestReplaceChar(t *testing.T) {
	b := newTestBuffer("abc")
	b.ReplaceChar('X')
	assertLines(t, b, "Xbc")
	assertCursor(t, b, 0, 1)
	b.MoveCursorToLineEnd()
	b.ReplaceChar('d')
	assertLines(t, b, "Xbcd")
	assertCursor(t, b, 0, 4)
	b.MoveCursor(0, 1)
	b.ReplaceChar('\n')
	assertLines(t, b, "X", "bcd")
}

func TestBackspaceMerge(t *testing.T) {
	b := newTestBuffer("ab", "cd")
	b.MoveCursor(1, 0)
	b.DeleteCharBeforeCursor()
	assertLines(t, b, "abcd")
	assertCursor(t, b, 0, 2)
}

func TestBackspaceAtDocumentStart(t *testing.T) {
	b := newTestBuffer("ab", "cd")
	b.DeleteCharBeforeCursor()
	assertLines(t, b, "ab", "cd")
	assertCursor(t, b, 0, 0)
}

func TestBackspaceMultiByte(t *testing.T) {
	b := newTestBuffer("x€y")
	b.MoveCursor(0, 2)
	b.DeleteCharBeforeCursor()
	assertLines(t, b, "xy")
	assertCursor(t, b, 0, 1)
}

func TestDeleteAtCursor(t *testing.T) {
	b := newTestBuffer("aéb", "cd")
	b.MoveCursor(0, 1)
	b.DeleteCharAtCursor()
	assertLines(t, b, "ab", "cd")
	assertCursor(t, b, 0, 1)

	b.MoveCursorToLineEnd()
	b.DeleteCharAtCursor()
	assertLines(t, b, "abcd")
	assertCursor(t, b, 0, 2)

	b.MoveCursorToLineEnd()
	b.DeleteCharAtCursor()
	assertLines(t, b, "abcd")
	assertCursor(t, b, 0, 4)
}

func TestInsertThenBackspaceRoundTrip(t *testing.T) {
	for _, r := range []rune{'a', 'ß', '€', '😀', '\t'} {
		b := newTestBuffer("héllo", "wörld")
		b.MoveCursor(1, 3)
		before := b.Content()
		b.InsertChar(r)
		if b.CursorCol() != 4 {
			t.Fatalf("insert %q: col = %d, want 4", r, b.CursorCol())
		}
		b.DeleteCharBeforeCursor()
		if got := b.Content(); got != before {
			t.Fatalf("insert %q + backspace: content = %q, want %q", r, got, before)
		}
		assertCursor(t, b, 1, 3)
		if !utf8.ValidString(b.Content()) {
			t.Fatalf("content not valid UTF-8 after %q", r)
		}
	}
}

func TestSplitMergeDuality(t *testing.T) {
	const original = "za€😀 bc"
	for k := 0; k <= utf8.RuneCountInString(original); k++ {
		b := newTestBuffer(original)
		b.MoveCursor(0, k)
		b.InsertNewline()
		assertCursor(t, b, 1, 0)
		b.DeleteCharBeforeCursor()
		assertLines(t, b, original)
		assertCursor(t, b, 0, k)
	}
}

func TestUndoRedoAreNoOps(t *testing.T) {
	b := newTestBuffer("abc")
	b.MoveCursor(0, 1)
	b.Undo()
	b.Redo()
	assertLines(t, b, "abc")
	assertCursor(t, b, 0, 1)
}

func TestRandomEditsKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	alphabet := []rune("ab é€😀 \n")
	b := New()
	for i := 0; i < 5000; i++ {
		switch rng.Intn(20) {
		case 0, 1, 2, 3, 4:
			b.InsertChar(alphabet[rng.Intn(len(alphabet))])
		case 5:
			b.InsertNewline()
		case 6, 7:
			b.DeleteCharBeforeCursor()
		case 8:
			b.DeleteCharAtCursor()
		case 9:
			b.MoveCursorLeft()
		case 10:
			b.MoveCursorRight()
		case 11:
			b.MoveCursorUp()
		case 12:
			b.MoveCursorDown()
		case 13:
			b.MoveCursor(rng.Intn(b.LineCount()+2), rng.Intn(10))
		case 14:
			b.SelectWordLeft()
		case 15:
			b.SelectCharRight()
		case 16:
			b.CutLines(rng.Intn(b.LineCount()+1), rng.Intn(b.LineCount()+1))
		case 17:
			b.Paste()
		case 18:
			b.UnindentCurrentLine()
		case 19:
			b.CutSelectedText()
		}
		assertInvariants(t, b)
		if !utf8.ValidString(b.Content()) {
			t.Fatalf("step %d: content not valid UTF-8", i)
		}
	}
}
