// Package input turns terminal key events into Keys and Keys into the string
// notation used by keymaps ("ctrl+c", "shift+left", "a").
package input

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// Name identifies a key. KeyRune means the key is a character held in Key.Rune.
type Name int

const (
	KeyRune Name = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyHome
	KeyEnd
	KeyTab
	KeyEscape
	KeyInsert
	KeyPageUp
	KeyPageDown
)

var names = map[Name]string{
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyDelete:    "del",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyTab:       "tab",
	KeyEscape:    "esc",
	KeyInsert:    "insert",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdn",
}

// aliases are accepted by Parse in addition to the names above.
var aliases = map[string]Name{
	"delete":   KeyDelete,
	"escape":   KeyEscape,
	"return":   KeyEnter,
	"ins":      KeyInsert,
	"pageup":   KeyPageUp,
	"pagedown": KeyPageDown,
}

// Mod is a set of modifier flags.
type Mod uint8

const (
	ModShift Mod = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Key is one decoded key press.
type Key struct {
	Name Name
	Rune rune
	Mods Mod
}

// IsText reports whether k should be typed into the document: a character
// with no modifier other than shift.
func (k Key) IsText() bool {
	return k.Name == KeyRune && k.Mods&^ModShift == 0
}

// String renders k in keymap notation. Modifiers come first in the order
// ctrl, alt, meta, shift. Shift is implied by the character for plain runes
// and is omitted for them.
func (k Key) String() string {
	var sb strings.Builder
	if k.Mods&ModCtrl != 0 {
		sb.WriteString("ctrl+")
	}
	if k.Mods&ModAlt != 0 {
		sb.WriteString("alt+")
	}
	if k.Mods&ModMeta != 0 {
		sb.WriteString("meta+")
	}
	if k.Mods&ModShift != 0 && k.Name != KeyRune {
		sb.WriteString("shift+")
	}
	if k.Name != KeyRune {
		sb.WriteString(names[k.Name])
		return sb.String()
	}
	switch {
	case k.Rune == ' ':
		sb.WriteString("space")
	case k.Mods&(ModCtrl|ModAlt|ModMeta) != 0:
		sb.WriteRune(unicode.ToLower(k.Rune))
	default:
		sb.WriteRune(k.Rune)
	}
	return sb.String()
}

// Parse reads keymap notation such as "ctrl+shift+left". Modifier and key
// names are case-insensitive; "cmd" is accepted for meta.
func Parse(s string) (Key, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Key{}, fmt.Errorf("empty key")
	}
	// "+" on its own, or as the last part of "ctrl++", is the plus character.
	var base string
	var modParts []string
	switch {
	case s == "+":
		base = "+"
	case strings.HasSuffix(s, "++"):
		base = "+"
		modParts = strings.Split(strings.TrimSuffix(s, "++"), "+")
	default:
		parts := strings.Split(s, "+")
		base = parts[len(parts)-1]
		modParts = parts[:len(parts)-1]
	}

	var k Key
	for _, part := range modParts {
		switch strings.ToLower(part) {
		case "ctrl", "control":
			k.Mods |= ModCtrl
		case "alt", "option":
			k.Mods |= ModAlt
		case "meta", "cmd":
			k.Mods |= ModMeta
		case "shift":
			k.Mods |= ModShift
		default:
			return Key{}, fmt.Errorf("key %q: unknown modifier %q", s, part)
		}
	}

	if utf8.RuneCountInString(base) == 1 {
		r, _ := utf8.DecodeRuneInString(base)
		k.Name = KeyRune
		k.Rune = r
		if k.Mods&(ModCtrl|ModAlt|ModMeta) != 0 {
			k.Rune = unicode.ToLower(r)
		}
		k.Mods &^= ModShift
		return k, nil
	}
	lower := strings.ToLower(base)
	if lower == "space" {
		k.Name = KeyRune
		k.Rune = ' '
		k.Mods &^= ModShift
		return k, nil
	}
	if name, ok := aliases[lower]; ok {
		k.Name = name
		return k, nil
	}
	for name, str := range names {
		if str == lower {
			k.Name = name
			return k, nil
		}
	}
	return Key{}, fmt.Errorf("key %q: unknown key %q", s, base)
}

// Decode converts a tcell key event. It reports false for keys the editor
// has no name for, such as function keys.
func Decode(ev *tcell.EventKey) (Key, bool) {
	mods := decodeMods(ev.Modifiers())
	// Named keys first: tcell aliases Enter, Tab, Backspace and Escape to
	// control codes.
	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		if mods&(ModCtrl|ModAlt|ModMeta) != 0 {
			r = unicode.ToLower(r)
		}
		return Key{Name: KeyRune, Rune: r, Mods: mods &^ ModShift}, true
	case tcell.KeyLeft:
		return Key{Name: KeyLeft, Mods: mods}, true
	case tcell.KeyRight:
		return Key{Name: KeyRight, Mods: mods}, true
	case tcell.KeyUp:
		return Key{Name: KeyUp, Mods: mods}, true
	case tcell.KeyDown:
		return Key{Name: KeyDown, Mods: mods}, true
	case tcell.KeyEnter:
		return Key{Name: KeyEnter, Mods: mods &^ ModCtrl}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return Key{Name: KeyBackspace, Mods: mods &^ ModCtrl}, true
	case tcell.KeyDelete:
		return Key{Name: KeyDelete, Mods: mods}, true
	case tcell.KeyHome:
		return Key{Name: KeyHome, Mods: mods}, true
	case tcell.KeyEnd:
		return Key{Name: KeyEnd, Mods: mods}, true
	case tcell.KeyTab:
		return Key{Name: KeyTab, Mods: mods &^ ModCtrl}, true
	case tcell.KeyBacktab:
		return Key{Name: KeyTab, Mods: mods | ModShift}, true
	case tcell.KeyEscape:
		return Key{Name: KeyEscape, Mods: mods &^ ModCtrl}, true
	case tcell.KeyInsert:
		return Key{Name: KeyInsert, Mods: mods}, true
	case tcell.KeyPgUp:
		return Key{Name: KeyPageUp, Mods: mods}, true
	case tcell.KeyPgDn:
		return Key{Name: KeyPageDown, Mods: mods}, true
	}
	if k := ev.Key(); k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := 'a' + rune(k-tcell.KeyCtrlA)
		return Key{Name: KeyRune, Rune: r, Mods: (mods | ModCtrl) &^ ModShift}, true
	}
	return Key{}, false
}

func decodeMods(m tcell.ModMask) Mod {
	var mods Mod
	if m&tcell.ModShift != 0 {
		mods |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= ModMeta
	}
	return mods
}
