// Package viewport tracks which lines of the document are on screen and keeps
// the cursor inside that window.
//
// The buffer has no notion of visibility, so callers must call
// EnsureCursorVisible after every operation that can move the cursor or change
// the line count.
package viewport

// StatusRows is the number of terminal rows reserved below the text area for
// the status line and the message line.
const StatusRows = 2

// Viewport is the window [Top, Top+Height) into the document's lines.
type Viewport struct {
	top    int
	height int
}

// New sizes a viewport for a terminal termHeight rows tall.
func New(termHeight int) *Viewport {
	v := &Viewport{}
	v.Resize(termHeight)
	return v
}

// Resize recomputes the window height from the terminal height. The height
// never drops below one line.
func (v *Viewport) Resize(termHeight int) {
	v.height = max(termHeight-StatusRows, 1)
}

// Top is the index of the first visible line.
func (v *Viewport) Top() int {
	return v.top
}

func (v *Viewport) Height() int {
	return v.height
}

// SetTop moves the window so line starts it. Negative values are floored at 0.
func (v *Viewport) SetTop(line int) {
	v.top = max(line, 0)
}

// EnsureCursorVisible scrolls the minimum amount needed to bring cursorLine
// into the window.
func (v *Viewport) EnsureCursorVisible(cursorLine int) {
	if cursorLine < v.top {
		v.top = max(cursorLine, 0)
		return
	}
	if cursorLine >= v.top+v.height {
		v.top = cursorLine - v.height + 1
	}
}

// ScrollUp moves the window one line up. It reports whether anything moved.
func (v *Viewport) ScrollUp() bool {
	if v.top == 0 {
		return false
	}
	v.top--
	return true
}

// ScrollDown moves the window one line down unless the last of totalLines is
// already at or above the bottom edge.
func (v *Viewport) ScrollDown(totalLines int) bool {
	if v.top+v.height >= totalLines {
		return false
	}
	v.top++
	return true
}

// VisibleRange returns the half-open range of line indices to draw. end is
// clipped to totalLines and never precedes start.
func (v *Viewport) VisibleRange(totalLines int) (start, end int) {
	start = v.top
	end = min(v.top+v.height, totalLines)
	if end < start {
		end = start
	}
	return start, end
}

// Contains reports whether line is inside the window.
func (v *Viewport) Contains(line int) bool {
	return line >= v.top && line < v.top+v.height
}

// Pager is the part of the buffer page movement drives.
type Pager interface {
	LineCount() int
	CursorLine() int
	CursorCol() int
	MoveCursor(line, col int)
}

// PageUp moves the cursor and the window up by one window height.
func (v *Viewport) PageUp(p Pager) {
	v.page(p, -v.height)
}

// PageDown moves the cursor and the window down by one window height. The
// window never starts past the point where the last line fills its bottom row.
func (v *Viewport) PageDown(p Pager) {
	v.page(p, v.height)
}

func (v *Viewport) page(p Pager, delta int) {
	total := p.LineCount()
	target := min(max(p.CursorLine()+delta, 0), total-1)
	p.MoveCursor(target, p.CursorCol())

	maxTop := max(total-v.height, 0)
	v.top = min(max(v.top+delta, 0), maxTop)
}
