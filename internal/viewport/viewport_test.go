package viewport

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/kobzarvs/tedit/internal/buffer"
)

func bufferWithLines(n int) *buffer.Buffer {
	b := buffer.New()
	b.InsertString(strings.Repeat("line\n", n-1) + "last")
	b.MoveCursorToDocumentStart()
	return b
}

func TestNewReservesStatusRows(t *testing.T) {
	tests := []struct {
		term, want int
	}{
		{24, 22},
		{3, 1},
		{2, 1},
		{0, 1},
	}
	for _, tt := range tests {
		v := New(tt.term)
		if v.Height() != tt.want {
			t.Fatalf("New(%d).Height() = %d, want %d", tt.term, v.Height(), tt.want)
		}
		if v.Top() != 0 {
			t.Fatalf("New(%d).Top() = %d, want 0", tt.term, v.Top())
		}
	}
}

func TestEnsureCursorVisible(t *testing.T) {
	v := New(12) // height 10
	v.EnsureCursorVisible(25)
	if v.Top() != 16 {
		t.Fatalf("top = %d, want 16", v.Top())
	}
	v.EnsureCursorVisible(20)
	if v.Top() != 16 {
		t.Fatalf("top moved for visible cursor: %d", v.Top())
	}
	v.EnsureCursorVisible(3)
	if v.Top() != 3 {
		t.Fatalf("top = %d, want 3", v.Top())
	}
}

func TestScrollUpFloorsAtZero(t *testing.T) {
	v := New(12)
	v.SetTop(1)
	if !v.ScrollUp() {
		t.Fatalf("ScrollUp from 1 = false")
	}
	if v.ScrollUp() {
		t.Fatalf("ScrollUp from 0 = true")
	}
	if v.Top() != 0 {
		t.Fatalf("top = %d, want 0", v.Top())
	}
}

func TestScrollDownStopsAtLastLine(t *testing.T) {
	v := New(12)
	moved := 0
	for v.ScrollDown(15) {
		moved++
	}
	if moved != 5 || v.Top() != 5 {
		t.Fatalf("scrolled %d lines to top %d, want 5 and 5", moved, v.Top())
	}

	short := New(12)
	if short.ScrollDown(4) {
		t.Fatalf("ScrollDown on a short document = true")
	}
}

func TestVisibleRange(t *testing.T) {
	v := New(12)
	if s, e := v.VisibleRange(4); s != 0 || e != 4 {
		t.Fatalf("VisibleRange(4) = %d,%d, want 0,4", s, e)
	}
	if s, e := v.VisibleRange(100); s != 0 || e != 10 {
		t.Fatalf("VisibleRange(100) = %d,%d, want 0,10", s, e)
	}
	v.SetTop(8)
	if s, e := v.VisibleRange(5); s != 8 || e != 8 {
		t.Fatalf("VisibleRange(5) past end = %d,%d, want 8,8", s, e)
	}
}

func TestResizeKeepsTop(t *testing.T) {
	v := New(12)
	v.SetTop(7)
	v.Resize(6)
	if v.Height() != 4 || v.Top() != 7 {
		t.Fatalf("after resize top,height = %d,%d, want 7,4", v.Top(), v.Height())
	}
	if !v.Contains(10) || v.Contains(11) || v.Contains(6) {
		t.Fatalf("Contains disagrees with window [7,11)")
	}
}

func TestPageDownClampsOnShortDocument(t *testing.T) {
	v := New(12)
	b := bufferWithLines(5)
	v.PageDown(b)
	if v.Top() != 0 {
		t.Fatalf("top = %d, want 0", v.Top())
	}
	if b.CursorLine() != 4 {
		t.Fatalf("cursor line = %d, want 4", b.CursorLine())
	}
}

func TestPageUpDown(t *testing.T) {
	v := New(12)
	b := bufferWithLines(35)
	b.MoveCursor(2, 3)

	v.PageDown(b)
	if b.CursorLine() != 12 || b.CursorCol() != 3 || v.Top() != 10 {
		t.Fatalf("after PageDown cursor (%d,%d) top %d, want (12,3) top 10", b.CursorLine(), b.CursorCol(), v.Top())
	}
	v.PageDown(b)
	v.PageDown(b)
	if b.CursorLine() != 32 || v.Top() != 25 {
		t.Fatalf("after 3x PageDown cursor %d top %d, want 32 top 25", b.CursorLine(), v.Top())
	}
	v.PageDown(b)
	if b.CursorLine() != 34 || v.Top() != 25 {
		t.Fatalf("PageDown at end: cursor %d top %d, want 34 top 25", b.CursorLine(), v.Top())
	}

	v.PageUp(b)
	if b.CursorLine() != 24 || v.Top() != 15 {
		t.Fatalf("after PageUp cursor %d top %d, want 24 top 15", b.CursorLine(), v.Top())
	}
	for range 5 {
		v.PageUp(b)
	}
	if b.CursorLine() != 0 || v.Top() != 0 {
		t.Fatalf("PageUp at start: cursor %d top %d, want 0 top 0", b.CursorLine(), v.Top())
	}
}

func TestCursorAlwaysVisibleAfterSync(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	b := bufferWithLines(1)
	v := New(8)
	for i := 0; i < 3000; i++ {
		switch rng.Intn(10) {
		case 0, 1:
			b.InsertNewline()
		case 2:
			b.DeleteCharBeforeCursor()
		case 3:
			b.MoveCursorUp()
		case 4:
			b.MoveCursorDown()
		case 5:
			b.MoveCursor(rng.Intn(b.LineCount()), 0)
		case 6:
			v.PageUp(b)
		case 7:
			v.PageDown(b)
		case 8:
			b.CutCurrentLine()
		case 9:
			v.Resize(3 + rng.Intn(20))
		}
		v.EnsureCursorVisible(b.CursorLine())
		line := b.CursorLine()
		if line < v.Top() || line >= v.Top()+v.Height() {
			t.Fatalf("step %d: cursor line %d outside [%d,%d)", i, line, v.Top(), v.Top()+v.Height())
		}
	}
}
