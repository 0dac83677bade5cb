package editor

import (
	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/tedit/internal/config"
)

func parseColor(name string, fallback tcell.Color) tcell.Color {
	if c, ok := config.ParseColor(name); ok {
		return c
	}
	return fallback
}

func (e *Editor) applyTheme(t config.Theme) {
	mainFg := parseColor(t.Foreground, tcell.ColorWhite)
	mainBg := parseColor(t.Background, tcell.ColorBlack)
	statusFg := parseColor(t.StatuslineForeground, tcell.ColorBlack)
	statusBg := parseColor(t.StatuslineBackground, tcell.ColorGray)
	messageFg := parseColor(t.MessagelineForeground, mainFg)
	messageBg := parseColor(t.MessagelineBackground, mainBg)
	lineNumberFg := parseColor(t.LineNumberForeground, tcell.ColorGray)
	lineNumberActiveFg := parseColor(t.LineNumberActiveForeground, mainFg)
	selectionFg := parseColor(t.SelectionForeground, mainFg)
	selectionBg := parseColor(t.SelectionBackground, tcell.ColorNavy)

	e.styleMain = tcell.StyleDefault.Foreground(mainFg).Background(mainBg)
	e.styleStatus = tcell.StyleDefault.Foreground(statusFg).Background(statusBg)
	e.styleMessage = tcell.StyleDefault.Foreground(messageFg).Background(messageBg)
	e.styleLineNumber = tcell.StyleDefault.Foreground(lineNumberFg).Background(mainBg)
	e.styleLineNumberActive = tcell.StyleDefault.Foreground(lineNumberActiveFg).Background(mainBg)
	e.styleSelection = tcell.StyleDefault.Foreground(selectionFg).Background(selectionBg)
}
