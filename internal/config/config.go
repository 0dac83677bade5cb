package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"

	"github.com/kobzarvs/tedit/internal/input"
)

type EditorOptions struct {
	TabWidth          int    `toml:"tab-width"`
	LineNumbers       string `toml:"line-numbers"`
	WritingMode       string `toml:"writing-mode"`
	ExitEscapePresses int    `toml:"exit-escape-presses"`
	ScrollLines       int    `toml:"scroll-lines"`
	SystemClipboard   bool   `toml:"system-clipboard"`
}

type Theme struct {
	Theme                      string `toml:"theme"`
	Foreground                 string `toml:"foreground"`
	Background                 string `toml:"background"`
	StatuslineForeground       string `toml:"statusline-foreground"`
	StatuslineBackground       string `toml:"statusline-background"`
	MessagelineForeground      string `toml:"messageline-foreground"`
	MessagelineBackground      string `toml:"messageline-background"`
	LineNumberForeground       string `toml:"line-number-foreground"`
	LineNumberActiveForeground string `toml:"line-number-active-foreground"`
	SelectionForeground        string `toml:"selection-foreground"`
	SelectionBackground        string `toml:"selection-background"`
}

// Keymap maps key notation (see input.Parse) to action names.
type Keymap map[string]string

type Config struct {
	Editor EditorOptions `toml:"editor"`
	Theme  Theme         `toml:"theme"`
	Keymap Keymap        `toml:"keymap"`
}

const maxTabWidth = 16

func Default() Config {
	return Config{
		Editor: EditorOptions{
			TabWidth:          4,
			LineNumbers:       "absolute",
			WritingMode:       "insert",
			ExitEscapePresses: 1,
			ScrollLines:       3,
		},
		Theme: Theme{
			Foreground:                 "#B3B1AD",
			Background:                 "#0A0E14",
			StatuslineForeground:       "#B3B1AD",
			StatuslineBackground:       "#0F1419",
			MessagelineForeground:      "#B3B1AD",
			MessagelineBackground:      "#0A0E14",
			LineNumberForeground:       "#3E4B59",
			LineNumberActiveForeground: "#B3B1AD",
			SelectionForeground:        "#B3B1AD",
			SelectionBackground:        "#27425A",
		},
		Keymap: Keymap{
			"left":             "move_left",
			"right":            "move_right",
			"up":               "move_up",
			"down":             "move_down",
			"home":             "line_start",
			"end":              "line_end",
			"ctrl+home":        "document_start",
			"ctrl+end":         "document_end",
			"shift+left":       "select_char_left",
			"shift+right":      "select_char_right",
			"ctrl+shift+left":  "select_word_left",
			"ctrl+shift+right": "select_word_right",
			"alt+shift+left":   "select_word_left",
			"alt+shift+right":  "select_word_right",
			"shift+up":         "select_line_up",
			"shift+down":       "select_line_down",
			"enter":            "newline",
			"backspace":        "backspace",
			"del":              "delete_char",
			"tab":              "insert_tab",
			"shift+tab":        "unindent",
			"ctrl+t":           "indent",
			"insert":           "toggle_writing_mode",
			"pgup":             "page_up",
			"pgdn":             "page_down",
			"ctrl+y":           "scroll_up",
			"ctrl+e":           "scroll_down",
			"ctrl+c":           "copy",
			"ctrl+v":           "paste",
			"ctrl+x":           "cut",
			"ctrl+a":           "select_all",
			"ctrl+z":           "undo",
			"ctrl+r":           "redo",
			"ctrl+k":           "cut_line",
			"ctrl+o":           "copy_line",
			"esc":              "quit",
		},
	}
}

// Load reads config.toml from ConfigDir and merges it over Default. A missing
// file is not an error. Unknown keys and invalid values are all reported in
// one combined error.
func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var userCfg Config
	md, err := toml.Decode(string(data), &userCfg)
	if err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	var errs error
	for _, key := range md.Undecoded() {
		errs = multierr.Append(errs, fmt.Errorf("%s: unknown key %q", path, key.String()))
	}

	mergeEditor(&cfg.Editor, userCfg.Editor, md)
	if userCfg.Theme.Theme != "" {
		cfg.Theme.Theme = userCfg.Theme.Theme
		theme, err := LoadTheme(cfg.Theme.Theme)
		if err != nil {
			errs = multierr.Append(errs, err)
		} else {
			mergeTheme(&cfg.Theme, theme)
		}
	}
	mergeTheme(&cfg.Theme, userCfg.Theme)

	keymap, err := mergeKeymap(cfg.Keymap, userCfg.Keymap)
	errs = multierr.Append(errs, err)
	cfg.Keymap = keymap

	errs = multierr.Append(errs, cfg.Validate())
	return cfg, errs
}

// mergeEditor copies the options the file actually sets, so explicit zero
// values such as system-clipboard = false still apply.
func mergeEditor(dst *EditorOptions, src EditorOptions, md toml.MetaData) {
	if md.IsDefined("editor", "tab-width") {
		dst.TabWidth = src.TabWidth
	}
	if md.IsDefined("editor", "line-numbers") {
		dst.LineNumbers = src.LineNumbers
	}
	if md.IsDefined("editor", "writing-mode") {
		dst.WritingMode = src.WritingMode
	}
	if md.IsDefined("editor", "exit-escape-presses") {
		dst.ExitEscapePresses = src.ExitEscapePresses
	}
	if md.IsDefined("editor", "scroll-lines") {
		dst.ScrollLines = src.ScrollLines
	}
	if md.IsDefined("editor", "system-clipboard") {
		dst.SystemClipboard = src.SystemClipboard
	}
}

func mergeTheme(dst *Theme, src Theme) {
	if src.Foreground != "" {
		dst.Foreground = src.Foreground
	}
	if src.Background != "" {
		dst.Background = src.Background
	}
	if src.StatuslineForeground != "" {
		dst.StatuslineForeground = src.StatuslineForeground
	}
	if src.StatuslineBackground != "" {
		dst.StatuslineBackground = src.StatuslineBackground
	}
	if src.MessagelineForeground != "" {
		dst.MessagelineForeground = src.MessagelineForeground
	}
	if src.MessagelineBackground != "" {
		dst.MessagelineBackground = src.MessagelineBackground
	}
	if src.LineNumberForeground != "" {
		dst.LineNumberForeground = src.LineNumberForeground
	}
	if src.LineNumberActiveForeground != "" {
		dst.LineNumberActiveForeground = src.LineNumberActiveForeground
	}
	if src.SelectionForeground != "" {
		dst.SelectionForeground = src.SelectionForeground
	}
	if src.SelectionBackground != "" {
		dst.SelectionBackground = src.SelectionBackground
	}
}

// mergeKeymap normalises every key of user to canonical notation and lays it
// over base. An empty action unbinds the key. Entries that fail to parse are
// skipped and reported.
func mergeKeymap(base, user Keymap) (Keymap, error) {
	out := make(Keymap, len(base)+len(user))
	for k, v := range base {
		out[k] = v
	}
	var errs error
	for k, action := range user {
		key, err := input.Parse(k)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("keymap: %w", err))
			continue
		}
		action = strings.TrimSpace(action)
		if action == "" {
			delete(out, key.String())
			continue
		}
		out[key.String()] = action
	}
	return out, errs
}

// Validate checks option ranges and colour values.
func (c Config) Validate() error {
	var errs error
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > maxTabWidth {
		errs = multierr.Append(errs, fmt.Errorf("editor.tab-width: %d not in 1..%d", c.Editor.TabWidth, maxTabWidth))
	}
	switch c.Editor.LineNumbers {
	case "absolute", "relative", "off":
	default:
		errs = multierr.Append(errs, fmt.Errorf("editor.line-numbers: %q is not absolute, relative or off", c.Editor.LineNumbers))
	}
	switch c.Editor.WritingMode {
	case "insert", "overwrite":
	default:
		errs = multierr.Append(errs, fmt.Errorf("editor.writing-mode: %q is not insert or overwrite", c.Editor.WritingMode))
	}
	if c.Editor.ExitEscapePresses < 1 {
		errs = multierr.Append(errs, fmt.Errorf("editor.exit-escape-presses: %d must be at least 1", c.Editor.ExitEscapePresses))
	}
	if c.Editor.ScrollLines < 1 {
		errs = multierr.Append(errs, fmt.Errorf("editor.scroll-lines: %d must be at least 1", c.Editor.ScrollLines))
	}
	for name, value := range c.Theme.colors() {
		if value == "" {
			continue
		}
		if _, ok := ParseColor(value); !ok {
			errs = multierr.Append(errs, fmt.Errorf("theme.%s: invalid colour %q", name, value))
		}
	}
	return errs
}

func (t Theme) colors() map[string]string {
	return map[string]string{
		"foreground":                    t.Foreground,
		"background":                    t.Background,
		"statusline-foreground":         t.StatuslineForeground,
		"statusline-background":         t.StatuslineBackground,
		"messageline-foreground":        t.MessagelineForeground,
		"messageline-background":        t.MessagelineBackground,
		"line-number-foreground":        t.LineNumberForeground,
		"line-number-active-foreground": t.LineNumberActiveForeground,
		"selection-foreground":          t.SelectionForeground,
		"selection-background":          t.SelectionBackground,
	}
}

func ThemePath(name string) (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "theme", name+".toml"), nil
}

// LoadTheme reads theme/<name>.toml. The file may hold the colours at the top
// level or inside a [theme] table.
func LoadTheme(name string) (Theme, error) {
	path, err := ThemePath(name)
	if err != nil {
		return Theme{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("theme %q: %w", name, err)
	}
	var wrap struct {
		Theme *Theme `toml:"theme"`
	}
	md, err := toml.Decode(string(data), &wrap)
	if err != nil {
		return Theme{}, fmt.Errorf("theme %q: %w", name, err)
	}
	if wrap.Theme != nil && md.IsDefined("theme") {
		return *wrap.Theme, nil
	}
	var t Theme
	if _, err := toml.Decode(string(data), &t); err != nil {
		return Theme{}, fmt.Errorf("theme %q: %w", name, err)
	}
	return t, nil
}

func ConfigDir() (string, error) {
	if v := os.Getenv("TEDIT_CONFIG_HOME"); v != "" {
		return filepath.Clean(v), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "tedit"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config dir: %w", err)
	}
	return filepath.Join(home, ".config", "tedit"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
