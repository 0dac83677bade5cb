package config

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor accepts "#rrggbb", "#rgb", "default" or a tcell colour name.
func ParseColor(name string) (tcell.Color, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return tcell.ColorDefault, false
	}
	if strings.HasPrefix(name, "#") {
		c, err := colorful.Hex(name)
		if err != nil {
			return tcell.ColorDefault, false
		}
		r, g, b := c.RGB255()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b)), true
	}
	name = strings.ToLower(name)
	if name == "default" {
		return tcell.ColorDefault, true
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return c, false
	}
	return c, true
}
