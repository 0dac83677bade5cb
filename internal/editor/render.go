package editor

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/kobzarvs/tedit/internal/viewport"
)

// Render paints the visible lines, the status line and the message line, and
// places the hardware cursor. The cursor is hidden when its line is off
// screen. The window height comes from Resize, not from the screen.
func (e *Editor) Render(s tcell.Screen) {
	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return
	}
	s.SetStyle(e.styleMain)
	s.Clear()

	total := e.buf.LineCount()
	start, end := e.view.VisibleRange(total)
	textRows := min(e.view.Height(), h)
	gutter := e.gutterWidth()
	for y := 0; y < textRows; y++ {
		lineIdx := start + y
		if lineIdx >= end {
			clearLine(s, y, w, e.styleMain)
			continue
		}
		e.drawLineWithGutter(s, y, w, gutter, lineIdx)
	}

	if statusY := h - viewport.StatusRows; statusY >= 0 {
		e.renderStatusline(s, w, statusY, start, end, total)
	}
	e.renderMessageline(s, w, h-1)

	line := e.buf.CursorLine()
	cy := line - e.view.Top()
	if !e.view.Contains(line) || cy >= textRows {
		s.HideCursor()
		s.Show()
		return
	}
	cx := gutter + visualCol(e.buf.LineRunes(line), e.buf.CursorCol(), e.buf.TabWidth())
	if cx >= w {
		cx = w - 1
	}
	cursorStyle := tcell.CursorStyleSteadyBar
	if e.writingMode == WritingOverwrite {
		cursorStyle = tcell.CursorStyleSteadyBlock
	}
	s.SetCursorStyle(cursorStyle)
	s.ShowCursor(cx, cy)
	s.Show()
}

func (e *Editor) gutterWidth() int {
	if e.lineNumberMode == LineNumberOff {
		return 0
	}
	digits := max(len(strconv.Itoa(e.buf.LineCount())), 2)
	// leading space + number + trailing space
	return 1 + digits + 1
}

func (e *Editor) drawLineWithGutter(s tcell.Screen, y, w, gutterWidth, lineIdx int) {
	cursorLine := e.buf.CursorLine()
	if gutterWidth > 0 {
		digits := gutterWidth - 2
		num := lineIdx + 1
		if e.lineNumberMode == LineNumberRelative && lineIdx != cursorLine {
			num = lineIdx - cursorLine
			if num < 0 {
				num = -num
			}
		}
		style := e.styleLineNumber
		if lineIdx == cursorLine {
			style = e.styleLineNumberActive
		}
		numStr := fmt.Sprintf(" %*d ", digits, num)
		for i, r := range numStr {
			if i >= gutterWidth || i >= w {
				break
			}
			s.SetContent(i, y, r, nil, style)
		}
	}
	if gutterWidth >= w {
		return
	}
	selStart, selEnd := e.selectionColumns(lineIdx)
	e.drawLine(s, y, w, gutterWidth, e.buf.LineRunes(lineIdx), selStart, selEnd)
}

// selectionColumns returns the selected column range [start, end) on
// lineIdx, or -1, -1 when the line holds no selection.
func (e *Editor) selectionColumns(lineIdx int) (int, int) {
	start, end, ok := e.buf.Selection()
	if !ok || lineIdx < start.Line || lineIdx > end.Line {
		return -1, -1
	}
	from, to := 0, e.buf.LineLen(lineIdx)
	if lineIdx == start.Line {
		from = start.Col
	}
	if lineIdx == end.Line {
		to = end.Col
	}
	return from, to
}

func (e *Editor) drawLine(s tcell.Screen, y, w, startX int, line []rune, selStart, selEnd int) {
	tabWidth := e.buf.TabWidth()
	x := startX
	col := 0
	for idx, r := range line {
		if x >= w {
			break
		}
		style := e.styleMain
		if idx >= selStart && idx < selEnd {
			style = e.styleSelection
		}
		cw := cellWidth(r, col, tabWidth)
		if r == '\t' {
			for i := 0; i < cw && x < w; i++ {
				s.SetContent(x, y, ' ', nil, style)
				x++
			}
			col += cw
			continue
		}
		if x+cw > w {
			// a wide rune that does not fit is dropped
			break
		}
		s.SetContent(x, y, r, nil, style)
		x += cw
		col += cw
	}
	for x < w {
		s.SetContent(x, y, ' ', nil, e.styleMain)
		x++
	}
}

func (e *Editor) renderStatusline(s tcell.Screen, w, y, start, end, total int) {
	left := fmt.Sprintf(" %s | Ln %d, Col %d", e.writingMode, e.buf.CursorLine()+1, e.buf.CursorCol()+1)
	if e.buf.HasSelection() {
		left += " | SEL"
	}
	right := fmt.Sprintf("lines %d-%d of %d ", start+1, end, total)
	drawCells(s, y, w, composeStatusLine(left, right, w), e.styleStatus)
}

func (e *Editor) renderMessageline(s tcell.Screen, w, y int) {
	if y < 0 {
		return
	}
	drawCells(s, y, w, composeStatusLine(" "+e.message, "", w), e.styleMessage)
}

// composeStatusLine lays out left and right within width cells, padding the
// middle with spaces. When both do not fit, right is kept and left is
// truncated at a grapheme boundary.
func composeStatusLine(left, right string, width int) string {
	if width <= 0 {
		return ""
	}
	rightW := uniseg.StringWidth(right)
	if rightW >= width {
		return truncateToWidth(right, width)
	}
	left = truncateToWidth(left, width-rightW)
	pad := width - uniseg.StringWidth(left) - rightW
	out := left
	for range pad {
		out += " "
	}
	return out + right
}

// truncateToWidth cuts text after the last grapheme cluster that fits in
// width cells.
func truncateToWidth(text string, width int) string {
	used := 0
	n := 0
	state := -1
	rest := text
	for len(rest) > 0 {
		cluster, next, cw, newState := uniseg.FirstGraphemeClusterInString(rest, state)
		if used+cw > width {
			break
		}
		used += cw
		n += len(cluster)
		rest, state = next, newState
	}
	return text[:n]
}

// drawCells paints text from column 0 and pads row y with spaces.
func drawCells(s tcell.Screen, y, w int, text string, style tcell.Style) {
	x := 0
	state := -1
	for len(text) > 0 && x < w {
		cluster, rest, cw, newState := uniseg.FirstGraphemeClusterInString(text, state)
		text, state = rest, newState
		runes := []rune(cluster)
		s.SetContent(x, y, runes[0], runes[1:], style)
		x += max(cw, 1)
	}
	for x < w {
		s.SetContent(x, y, ' ', nil, style)
		x++
	}
}

func clearLine(s tcell.Screen, y, w int, style tcell.Style) {
	for x := 0; x < w; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

// cellWidth is the number of screen cells r occupies when it starts at
// visual column col. Tabs advance to the next tab stop; zero-width runes
// take one cell so that every character stays addressable.
func cellWidth(r rune, col, tabWidth int) int {
	if r == '\t' {
		tabWidth = max(tabWidth, 1)
		return tabWidth - col%tabWidth
	}
	return max(runewidth.RuneWidth(r), 1)
}

// visualCol converts a character column into a screen column.
func visualCol(line []rune, logicalCol, tabWidth int) int {
	logicalCol = min(max(logicalCol, 0), len(line))
	col := 0
	for _, r := range line[:logicalCol] {
		col += cellWidth(r, col, tabWidth)
	}
	return col
}

// visualToLogicalCol converts a screen column back into the character column
// whose cell contains it. Clicks past the end land at the end of the line.
func visualToLogicalCol(line []rune, visualX, tabWidth int) int {
	if visualX <= 0 {
		return 0
	}
	col := 0
	for i, r := range line {
		advance := cellWidth(r, col, tabWidth)
		if col+advance > visualX {
			return i
		}
		col += advance
		if col >= visualX {
			return i + 1
		}
	}
	return len(line)
}
