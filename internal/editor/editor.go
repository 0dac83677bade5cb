package editor

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/tedit/internal/buffer"
	"github.com/kobzarvs/tedit/internal/config"
	"github.com/kobzarvs/tedit/internal/input"
	"github.com/kobzarvs/tedit/internal/logger"
	"github.com/kobzarvs/tedit/internal/viewport"
)

// WritingMode decides what a typed character does to the character under the
// cursor.
type WritingMode int

const (
	WritingInsert WritingMode = iota
	WritingOverwrite
)

func (m WritingMode) String() string {
	if m == WritingOverwrite {
		return "OVERWRITE"
	}
	return "INSERT"
}

type LineNumberMode int

const (
	LineNumberOff LineNumberMode = iota
	LineNumberAbsolute
	LineNumberRelative
)

const (
	actionMoveLeft          = "move_left"
	actionMoveRight         = "move_right"
	actionMoveUp            = "move_up"
	actionMoveDown          = "move_down"
	actionLineStart         = "line_start"
	actionLineEnd           = "line_end"
	actionDocumentStart     = "document_start"
	actionDocumentEnd       = "document_end"
	actionPageUp            = "page_up"
	actionPageDown          = "page_down"
	actionScrollUp          = "scroll_up"
	actionScrollDown        = "scroll_down"
	actionSelectCharLeft    = "select_char_left"
	actionSelectCharRight   = "select_char_right"
	actionSelectWordLeft    = "select_word_left"
	actionSelectWordRight   = "select_word_right"
	actionSelectLineUp      = "select_line_up"
	actionSelectLineDown    = "select_line_down"
	actionSelectAll         = "select_all"
	actionNewline           = "newline"
	actionBackspace         = "backspace"
	actionDeleteChar        = "delete_char"
	actionInsertTab         = "insert_tab"
	actionIndent            = "indent"
	actionUnindent          = "unindent"
	actionToggleWritingMode = "toggle_writing_mode"
	actionToggleLineNumbers = "toggle_line_numbers"
	actionCopy              = "copy"
	actionCut               = "cut"
	actionPaste             = "paste"
	actionCutLine           = "cut_line"
	actionCopyLine          = "copy_line"
	actionUndo              = "undo"
	actionRedo              = "redo"
	actionQuit              = "quit"
)

var knownActions = map[string]bool{
	actionMoveLeft: true, actionMoveRight: true, actionMoveUp: true, actionMoveDown: true,
	actionLineStart: true, actionLineEnd: true, actionDocumentStart: true, actionDocumentEnd: true,
	actionPageUp: true, actionPageDown: true, actionScrollUp: true, actionScrollDown: true,
	actionSelectCharLeft: true, actionSelectCharRight: true, actionSelectWordLeft: true,
	actionSelectWordRight: true, actionSelectLineUp: true, actionSelectLineDown: true,
	actionSelectAll: true, actionNewline: true, actionBackspace: true, actionDeleteChar: true,
	actionInsertTab: true, actionIndent: true, actionUnindent: true,
	actionToggleWritingMode: true, actionToggleLineNumbers: true,
	actionCopy: true, actionCut: true, actionPaste: true, actionCutLine: true, actionCopyLine: true,
	actionUndo: true, actionRedo: true, actionQuit: true,
}

// ClipboardWriter receives a copy of the clipboard after every copy or cut.
type ClipboardWriter interface {
	WriteText(text string) error
}

// Editor maps key events onto one buffer and its viewport and paints them.
type Editor struct {
	buf  *buffer.Buffer
	view *viewport.Viewport

	writingMode    WritingMode
	lineNumberMode LineNumberMode
	keymap         map[string]string
	scrollLines    int
	exitPresses    int
	escapes        int // consecutive quit presses
	system         ClipboardWriter
	message        string

	styleMain             tcell.Style
	styleStatus           tcell.Style
	styleMessage          tcell.Style
	styleLineNumber       tcell.Style
	styleLineNumberActive tcell.Style
	styleSelection        tcell.Style

	actionHook func(action string)
}

// New builds an editor for a terminal termHeight rows tall. Keymap entries
// that do not parse or name an unknown action are logged and skipped.
func New(cfg config.Config, termHeight int) *Editor {
	buf := buffer.New()
	buf.SetTabWidth(cfg.Editor.TabWidth)

	keymap := make(map[string]string, len(cfg.Keymap))
	for k, action := range cfg.Keymap {
		key, err := input.Parse(k)
		if err != nil {
			logger.Warn("skipping keymap entry", "key", k, "err", err)
			continue
		}
		if !knownActions[action] {
			logger.Warn("skipping keymap entry", "key", k, "action", action, "err", "unknown action")
			continue
		}
		keymap[key.String()] = action
	}

	mode := WritingInsert
	if strings.EqualFold(cfg.Editor.WritingMode, "overwrite") {
		mode = WritingOverwrite
	}

	e := &Editor{
		buf:            buf,
		view:           viewport.New(termHeight),
		writingMode:    mode,
		lineNumberMode: parseLineNumberMode(cfg.Editor.LineNumbers),
		keymap:         keymap,
		scrollLines:    max(cfg.Editor.ScrollLines, 1),
		exitPresses:    max(cfg.Editor.ExitEscapePresses, 1),
	}
	e.applyTheme(cfg.Theme)
	return e
}

// SetSystemClipboard mirrors future copies and cuts to w. nil disables it.
func (e *Editor) SetSystemClipboard(w ClipboardWriter) {
	e.system = w
}

// SetMessage shows msg on the message line until the next key press.
func (e *Editor) SetMessage(msg string) {
	e.message = msg
}

func (e *Editor) Message() string {
	return e.message
}

// Content is the document with a newline after every line.
func (e *Editor) Content() string {
	return e.buf.Content()
}

func (e *Editor) WritingMode() WritingMode {
	return e.writingMode
}

// HandleKey applies one key press. It returns true when the editor should
// exit.
func (e *Editor) HandleKey(ev *tcell.EventKey) bool {
	key, ok := input.Decode(ev)
	if !ok {
		logger.Debug("ignoring key", "key", ev.Name())
		return false
	}
	return e.handleKey(key)
}

func (e *Editor) handleKey(key input.Key) bool {
	e.message = ""
	action, bound := e.keymap[key.String()]
	if action != actionQuit {
		e.escapes = 0
	}
	quit := false
	switch {
	case bound:
		quit = e.execAction(action)
	case key.IsText():
		e.typeRune(key.Rune)
	}
	e.view.EnsureCursorVisible(e.buf.CursorLine())
	return quit
}

func (e *Editor) typeRune(r rune) {
	e.buf.ClearSelection()
	if e.writingMode == WritingOverwrite {
		e.buf.ReplaceChar(r)
		return
	}
	e.buf.InsertChar(r)
}

// execAction runs one named action and reports whether the editor should
// exit. Every action except the select_* family drops the selection anchor.
func (e *Editor) execAction(action string) bool {
	if e.actionHook != nil {
		e.actionHook(action)
	}
	keepSelection := false
	switch action {
	case actionMoveLeft:
		e.buf.MoveCursorLeft()
	case actionMoveRight:
		e.buf.MoveCursorRight()
	case actionMoveUp:
		e.buf.MoveCursorUp()
	case actionMoveDown:
		e.buf.MoveCursorDown()
	case actionLineStart:
		e.buf.MoveCursorToLineStart()
	case actionLineEnd:
		e.buf.MoveCursorToLineEnd()
	case actionDocumentStart:
		e.buf.MoveCursorToDocumentStart()
	case actionDocumentEnd:
		e.buf.MoveCursorToDocumentEnd()
	case actionPageUp:
		e.view.PageUp(e.buf)
	case actionPageDown:
		e.view.PageDown(e.buf)
	case actionScrollUp:
		e.scrollViewUp()
	case actionScrollDown:
		e.scrollViewDown()

	case actionSelectCharLeft:
		e.buf.SelectCharLeft()
		keepSelection = true
	case actionSelectCharRight:
		e.buf.SelectCharRight()
		keepSelection = true
	case actionSelectWordLeft:
		e.selectWord(false)
		keepSelection = true
	case actionSelectWordRight:
		e.selectWord(true)
		keepSelection = true
	case actionSelectLineUp:
		e.buf.SelectLineUp()
		keepSelection = true
	case actionSelectLineDown:
		e.buf.SelectLineDown()
		keepSelection = true
	case actionSelectAll:
		e.buf.SelectAll()
		keepSelection = true

	case actionNewline:
		e.buf.ClearSelection()
		e.buf.InsertNewline()
	case actionBackspace:
		e.buf.DeleteCharBeforeCursor()
	case actionDeleteChar:
		e.buf.DeleteCharAtCursor()
	case actionInsertTab:
		e.buf.ClearSelection()
		e.buf.InsertChar('\t')
	case actionIndent:
		keepSelection = e.indent(true)
	case actionUnindent:
		keepSelection = e.indent(false)
	case actionToggleWritingMode:
		if e.writingMode == WritingInsert {
			e.writingMode = WritingOverwrite
		} else {
			e.writingMode = WritingInsert
		}
	case actionToggleLineNumbers:
		e.toggleLineNumbers()

	case actionCopy:
		if e.buf.CopySelectedText() {
			e.mirrorClipboard("copied")
		} else {
			e.buf.CopyCurrentLine()
			e.mirrorClipboard("line copied")
		}
	case actionCut:
		if e.buf.CutSelectedText() {
			e.mirrorClipboard("cut")
		} else {
			e.buf.CutCurrentLine()
			e.mirrorClipboard("line cut")
		}
	case actionCutLine:
		e.buf.CutCurrentLine()
		e.mirrorClipboard("line cut")
	case actionCopyLine:
		e.buf.CopyCurrentLine()
		e.mirrorClipboard("line copied")
	case actionPaste:
		if _, ok := e.buf.Clipboard(); !ok {
			e.message = "clipboard empty"
		}
		e.buf.ClearSelection()
		e.buf.Paste()
	case actionUndo:
		e.buf.Undo()
		e.message = "undo is not available"
	case actionRedo:
		e.buf.Redo()
		e.message = "redo is not available"

	case actionQuit:
		e.escapes++
		if e.escapes >= e.exitPresses {
			return true
		}
		left := e.exitPresses - e.escapes
		e.message = fmt.Sprintf("press esc %d more time(s) to quit", left)
	default:
		logger.Warn("unknown action", "action", action)
	}
	if !keepSelection {
		e.buf.ClearSelection()
	}
	return false
}

// selectWord extends the selection over any whitespace next to the cursor,
// then over the word beyond it. Only the word reaches the clipboard.
func (e *Editor) selectWord(right bool) {
	row, col := e.buf.CursorLine(), e.buf.CursorCol()
	line := e.buf.LineRunes(row)
	if right {
		for col < len(line) && unicode.IsSpace(line[col]) {
			col++
		}
		e.buf.SelectTo(row, col)
		e.buf.SelectWordRight()
		return
	}
	for col > 0 && unicode.IsSpace(line[col-1]) {
		col--
	}
	e.buf.SelectTo(row, col)
	e.buf.SelectWordLeft()
}

// indent shifts the cursor's line, or every line a multi-line selection
// touches. It reports whether the selection should survive.
func (e *Editor) indent(right bool) bool {
	start, end, ok := e.buf.Selection()
	if ok && start.Line != end.Line {
		if right {
			e.buf.IndentLines(start.Line, end.Line)
		} else {
			e.buf.UnindentLines(start.Line, end.Line)
		}
		return true
	}
	if right {
		e.buf.IndentCurrentLine()
	} else {
		e.buf.UnindentCurrentLine()
	}
	return false
}

// mirrorClipboard copies the clipboard to the system clipboard when one is
// configured, and reports the outcome on the message line.
func (e *Editor) mirrorClipboard(done string) {
	e.message = done
	if e.system == nil {
		return
	}
	if err := e.system.WriteText(e.buf.ClipboardText()); err != nil {
		logger.Warn("system clipboard write failed", "err", err)
		e.message = done + " (system clipboard unavailable)"
	}
}

// scrollViewUp scrolls the view up one line, pulling the cursor up if it
// falls below the window.
func (e *Editor) scrollViewUp() {
	if !e.view.ScrollUp() {
		return
	}
	if bottom := e.view.Top() + e.view.Height() - 1; e.buf.CursorLine() > bottom {
		e.buf.MoveCursor(bottom, e.buf.CursorCol())
	}
}

// scrollViewDown scrolls the view down one line, pulling the cursor down if
// it falls above the window.
func (e *Editor) scrollViewDown() {
	if !e.view.ScrollDown(e.buf.LineCount()) {
		return
	}
	if top := e.view.Top(); e.buf.CursorLine() < top {
		e.buf.MoveCursor(top, e.buf.CursorCol())
	}
}

// HandleMouse scrolls on wheel events and moves the cursor on a left click
// inside the text area.
func (e *Editor) HandleMouse(ev *tcell.EventMouse) {
	switch ev.Buttons() {
	case tcell.WheelUp:
		for range e.scrollLines {
			e.scrollViewUp()
		}
	case tcell.WheelDown:
		for range e.scrollLines {
			e.scrollViewDown()
		}
	case tcell.Button1:
		e.handleMouseClick(ev)
	}
	e.view.EnsureCursorVisible(e.buf.CursorLine())
}

func (e *Editor) handleMouseClick(ev *tcell.EventMouse) {
	x, y := ev.Position()
	if y < 0 || y >= e.view.Height() {
		return
	}
	row := min(e.view.Top()+y, e.buf.LineCount()-1)
	visualX := max(x-e.gutterWidth(), 0)
	col := visualToLogicalCol(e.buf.LineRunes(row), visualX, e.buf.TabWidth())
	e.buf.ClearSelection()
	e.buf.MoveCursor(row, col)
}

// Resize adapts the viewport to a new terminal height.
func (e *Editor) Resize(termHeight int) {
	e.view.Resize(termHeight)
	e.view.EnsureCursorVisible(e.buf.CursorLine())
}

func parseLineNumberMode(value string) LineNumberMode {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "relative", "rel":
		return LineNumberRelative
	case "off", "none", "false":
		return LineNumberOff
	default:
		return LineNumberAbsolute
	}
}

func (e *Editor) toggleLineNumbers() {
	switch e.lineNumberMode {
	case LineNumberAbsolute:
		e.lineNumberMode = LineNumberRelative
		e.message = "line numbers relative"
	case LineNumberRelative:
		e.lineNumberMode = LineNumberOff
		e.message = "line numbers off"
	default:
		e.lineNumberMode = LineNumberAbsolute
		e.message = "line numbers absolute"
	}
}
