// Package clipboard mirrors the editor's clipboard to the operating system's.
package clipboard

import (
	"errors"
	"fmt"

	osclip "github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no system clipboard helper is installed,
// for example xclip or wl-copy on Linux.
var ErrUnavailable = errors.New("system clipboard unavailable")

// System writes text to the OS clipboard.
type System struct {
	write       func(string) error
	unsupported func() bool
}

func New() *System {
	return &System{
		write:       osclip.WriteAll,
		unsupported: func() bool { return osclip.Unsupported },
	}
}

// WriteText replaces the OS clipboard contents with text.
func (s *System) WriteText(text string) error {
	if s.unsupported() {
		return ErrUnavailable
	}
	if err := s.write(text); err != nil {
		return fmt.Errorf("write system clipboard: %w", err)
	}
	return nil
}
