package tcss

import (
	"strconv"
	"strings"
)

// Theme is a named palette that stylesheet $variables and the cascade
// defaults resolve against.
type Theme struct {
	Name   string
	Dark   bool
	Colors map[string]Color
}

// Resolve looks up a theme variable by name. Generated shades are
// understood: "primary-lighten-2" is the primary color lightened two
// steps, "surface-darken-1" one step darker, for steps 1 through 3.
func (t *Theme) Resolve(name string) (Color, bool) {
	if t == nil {
		return Color{}, false
	}
	if c, ok := t.Colors[name]; ok {
		return c, true
	}
	base, op, steps, ok := splitShade(name)
	if !ok {
		return Color{}, false
	}
	c, ok := t.Colors[base]
	if !ok {
		return Color{}, false
	}
	if op == "lighten" {
		return c.Lighten(float64(steps)), true
	}
	return c.Darken(float64(steps)), true
}

func splitShade(name string) (base, op string, steps int, ok bool) {
	i := strings.LastIndexByte(name, '-')
	if i < 0 {
		return "", "", 0, false
	}
	n, err := strconv.Atoi(name[i+1:])
	if err != nil || n < 1 || n > 3 {
		return "", "", 0, false
	}
	rest := name[:i]
	j := strings.LastIndexByte(rest, '-')
	if j < 0 {
		return "", "", 0, false
	}
	op = rest[j+1:]
	if op != "lighten" && op != "darken" {
		return "", "", 0, false
	}
	return rest[:j], op, n, true
}

// Background returns the theme background, defaulting to black.
func (t *Theme) Background() Color {
	if t != nil {
		if c, ok := t.Colors["background"]; ok {
			return c
		}
	}
	return RGB(0, 0, 0)
}

// Foreground returns the theme text color, defaulting to white.
func (t *Theme) Foreground() Color {
	if t != nil {
		if c, ok := t.Colors["foreground"]; ok {
			return c
		}
	}
	return RGB(1, 1, 1)
}

func mustColor(s string) Color {
	c, ok := ParseColor(s)
	if !ok {
		panic("bad builtin color: " + s)
	}
	return c
}

// StandardThemes returns the built-in palettes keyed by name.
func StandardThemes() map[string]*Theme {
	dark := &Theme{
		Name: "textual-dark",
		Dark: true,
		Colors: map[string]Color{
			"primary":    mustColor("#004578"),
			"secondary":  mustColor("#ffa62b"),
			"background": mustColor("#1e1e1e"),
			"surface":    mustColor("#121212"),
			"panel":      mustColor("#24292f"),
			"boost":      mustColor("#ffffff 4%"),
			"foreground": mustColor("#e0e0e0"),
			"accent":     mustColor("#0178d4"),
			"warning":    mustColor("#ffa62b"),
			"error":      mustColor("#ba3c5b"),
			"success":    mustColor("#4ebf71"),
		},
	}
	light := &Theme{
		Name: "textual-light",
		Colors: map[string]Color{
			"primary":    mustColor("#004578"),
			"secondary":  mustColor("#ffa62b"),
			"background": mustColor("#f5f5f5"),
			"surface":    mustColor("#efefef"),
			"panel":      mustColor("#dce3e8"),
			"boost":      mustColor("#000000 4%"),
			"foreground": mustColor("#0a0a0a"),
			"accent":     mustColor("#0178d4"),
			"warning":    mustColor("#ffa62b"),
			"error":      mustColor("#ba3c5b"),
			"success":    mustColor("#4ebf71"),
		},
	}
	return map[string]*Theme{dark.Name: dark, light.Name: light}
}
