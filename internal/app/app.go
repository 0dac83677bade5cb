package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/kobzarvs/tedit/internal/config"
	"github.com/kobzarvs/tedit/internal/editor"
	"github.com/kobzarvs/tedit/internal/logger"
	"github.com/kobzarvs/tedit/internal/platform/clipboard"
)

// ErrNotTerminal is returned when stdin is not attached to a terminal.
var ErrNotTerminal = errors.New("stdin is not a terminal")

// App is the top-level runtime for tedit.
type App struct {
	args []string

	newScreen  func() (tcell.Screen, error)
	isTerminal func() bool
	// started runs once the screen is initialised, before the first event.
	started func(tcell.Screen)
}

func New(args []string) *App {
	return &App{
		args:      args,
		newScreen: tcell.NewScreen,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
}

func (a *App) Run() error {
	debug, err := parseArgs(a.args)
	if err != nil {
		return err
	}
	if err := logger.Init(debug || logger.DebugFromEnv()); err != nil {
		return err
	}
	defer logger.Close()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if !a.isTerminal() {
		return ErrNotTerminal
	}

	s, err := a.newScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	return withScreen(s, func() error {
		return a.loop(s, cfg)
	})
}

// withScreen initialises s, runs fn and always restores the terminal, even
// when fn panics. The panic is re-raised after the restore.
func withScreen(s tcell.Screen, fn func() error) error {
	if err := s.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	s.EnableMouse()
	defer func() {
		r := recover()
		s.Fini()
		if r != nil {
			logger.Error("panic in event loop", "panic", r)
			panic(r)
		}
	}()
	return fn()
}

func (a *App) loop(s tcell.Screen, cfg config.Config) error {
	_, h := s.Size()
	ed := editor.New(cfg, h)
	if cfg.Editor.SystemClipboard {
		ed.SetSystemClipboard(clipboard.New())
	}
	if a.started != nil {
		a.started(s)
	}
	logger.Info("editor started", "height", h, "writing-mode", ed.WritingMode().String())

	ed.Render(s)
	for {
		ev := s.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventKey:
			if ed.HandleKey(ev) {
				logger.Info("exit requested")
				return nil
			}
		case *tcell.EventMouse:
			ed.HandleMouse(ev)
		case *tcell.EventResize:
			_, h := ev.Size()
			ed.Resize(h)
			s.Sync()
		case *tcell.EventError:
			logger.Error("input error", "err", ev.Error())
			continue
		}
		ed.Render(s)
	}
}

func parseArgs(args []string) (debug bool, err error) {
	for _, arg := range args {
		switch arg {
		case "--debug", "-d":
			debug = true
		default:
			return false, fmt.Errorf("unexpected argument %q", arg)
		}
	}
	return debug, nil
}
