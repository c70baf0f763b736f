package gamedata

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseColor resolves a catalog color. Accepts "#RRGGBB", bare "RRGGBB" or
// any color name tcell knows ("red", "darkgoldenrod").
func ParseColor(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return tcell.ColorDefault, fmt.Errorf("empty color")
	}
	if len(s) == 6 && !strings.HasPrefix(s, "#") {
		if c := tcell.GetColor("#" + s); c != tcell.ColorDefault {
			return c, nil
		}
	}
	c := tcell.GetColor(s)
	if c == tcell.ColorDefault {
		return tcell.ColorDefault, fmt.Errorf("unknown color %q", s)
	}
	return c, nil
}
