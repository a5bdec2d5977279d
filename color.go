package tcss

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA color with channels in [0, 1]. Auto marks the special
// "auto" keyword that picks a contrasting text color at inheritance time.
// ThemeVar carries an unresolved $variable name until a theme is applied.
type Color struct {
	R, G, B, A float64
	Auto       bool
	ThemeVar   string
}

// Transparent is fully clear black.
var Transparent = Color{A: 0}

func RGB(r, g, b float64) Color { return Color{r, g, b, 1, false, ""} }

func RGBA(r, g, b, a float64) Color { return Color{r, g, b, a, false, ""} }

var namedColors = map[string]Color{
	"black":   RGB(0, 0, 0),
	"white":   RGB(1, 1, 1),
	"red":     RGB(1, 0, 0),
	"green":   RGB(0, 0.5, 0),
	"lime":    RGB(0, 1, 0),
	"blue":    RGB(0, 0, 1),
	"yellow":  RGB(1, 1, 0),
	"cyan":    RGB(0, 1, 1),
	"magenta": RGB(1, 0, 1),
	"gray":    RGB(0.5, 0.5, 0.5),
	"grey":    RGB(0.5, 0.5, 0.5),
	"silver":  RGB(0.75, 0.75, 0.75),
	"maroon":  RGB(0.5, 0, 0),
	"olive":   RGB(0.5, 0.5, 0),
	"navy":    RGB(0, 0, 0.5),
	"purple":  RGB(0.5, 0, 0.5),
	"teal":    RGB(0, 0.5, 0.5),
	"orange":  RGB(1, 0.647, 0),
	"pink":    RGB(1, 0.753, 0.796),
	"brown":   RGB(0.647, 0.165, 0.165),
	"gold":    RGB(1, 0.843, 0),
	"indigo":  RGB(0.294, 0, 0.51),
	"violet":  RGB(0.933, 0.51, 0.933),
	"crimson": RGB(0.863, 0.078, 0.235),
	"coral":   RGB(1, 0.498, 0.314),
	"salmon":  RGB(0.98, 0.5, 0.447),
	"khaki":   RGB(0.941, 0.902, 0.549),
	"plum":    RGB(0.867, 0.627, 0.867),
	"orchid":  RGB(0.855, 0.439, 0.839),
	"tomato":  RGB(1, 0.388, 0.278),
}

// ParseColor reads a TCSS color value: hex, rgb()/rgba(), hsl(), a named
// color, "auto", "transparent", or an unresolved "$variable". A trailing
// percentage ("red 40%") scales the alpha.
func ParseColor(s string) (Color, bool) {
	s = strings.TrimSpace(s)
	alpha := 1.0
	if i := strings.LastIndexByte(s, ' '); i > 0 {
		suffix := strings.TrimSpace(s[i+1:])
		if strings.HasSuffix(suffix, "%") {
			if pct, err := strconv.ParseFloat(strings.TrimSuffix(suffix, "%"), 64); err == nil {
				alpha = clamp01(pct / 100)
				s = strings.TrimSpace(s[:i])
			}
		}
	}

	c, ok := parseColorBase(s)
	if !ok {
		return Color{}, false
	}
	c.A *= alpha
	return c, true
}

func parseColorBase(s string) (Color, bool) {
	lower := strings.ToLower(s)
	switch {
	case lower == "auto":
		return Color{Auto: true, A: 1}, true
	case lower == "transparent":
		return Transparent, true
	case strings.HasPrefix(s, "$"):
		return Color{ThemeVar: s[1:], A: 1}, true
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(lower, "rgba(") || strings.HasPrefix(lower, "rgb("):
		return parseRGBFunc(lower)
	case strings.HasPrefix(lower, "hsl("), strings.HasPrefix(lower, "hsla("):
		return parseHSLFunc(lower)
	}
	c, ok := namedColors[lower]
	return c, ok
}

func parseHex(s string) (Color, bool) {
	hex := s[1:]
	switch len(hex) {
	case 3:
		var out [3]float64
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseUint(string([]byte{hex[i], hex[i]}), 16, 8)
			if err != nil {
				return Color{}, false
			}
			out[i] = float64(v) / 255
		}
		return RGB(out[0], out[1], out[2]), true
	case 6, 8:
		var out [4]float64
		out[3] = 1
		for i := 0; i*2 < len(hex); i++ {
			v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
			if err != nil {
				return Color{}, false
			}
			out[i] = float64(v) / 255
		}
		return RGBA(out[0], out[1], out[2], out[3]), true
	}
	return Color{}, false
}

func colorArgs(s string) []string {
	open := strings.IndexByte(s, '(')
	close := strings.LastIndexByte(s, ')')
	if open < 0 || close < open {
		return nil
	}
	parts := strings.Split(s[open+1:close], ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func parseRGBFunc(s string) (Color, bool) {
	args := colorArgs(s)
	if len(args) != 3 && len(args) != 4 {
		return Color{}, false
	}
	var ch [4]float64
	ch[3] = 1
	for i, a := range args {
		v, err := strconv.ParseFloat(strings.TrimSuffix(a, "%"), 64)
		if err != nil {
			return Color{}, false
		}
		if i < 3 {
			ch[i] = clamp01(v / 255)
		} else {
			ch[i] = clamp01(v)
		}
	}
	return RGBA(ch[0], ch[1], ch[2], ch[3]), true
}

func parseHSLFunc(s string) (Color, bool) {
	args := colorArgs(s)
	if len(args) != 3 && len(args) != 4 {
		return Color{}, false
	}
	h, err1 := strconv.ParseFloat(args[0], 64)
	sat, err2 := strconv.ParseFloat(strings.TrimSuffix(args[1], "%"), 64)
	l, err3 := strconv.ParseFloat(strings.TrimSuffix(args[2], "%"), 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return Color{}, false
	}
	a := 1.0
	if len(args) == 4 {
		v, err := strconv.ParseFloat(args[3], 64)
		if err != nil {
			return Color{}, false
		}
		a = clamp01(v)
	}
	c := colorful.Hsl(h, clamp01(sat/100), clamp01(l/100))
	return RGBA(c.R, c.G, c.B, a), true
}

func clamp01(v float64) float64 { return math.Min(1, math.Max(0, v)) }

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// Blend mixes c toward other in RGB space. factor 0 is c, 1 is other.
// Alpha interpolates linearly.
func (c Color) Blend(other Color, factor float64) Color {
	factor = clamp01(factor)
	m := c.colorful().BlendRgb(other.colorful(), factor)
	return RGBA(m.R, m.G, m.B, c.A+(other.A-c.A)*factor)
}

// Lighten raises HSL lightness by f steps of 0.1.
func (c Color) Lighten(f float64) Color {
	h, s, l := c.colorful().Hsl()
	out := colorful.Hsl(h, s, clamp01(l+f*0.1))
	return RGBA(out.R, out.G, out.B, c.A)
}

// Darken lowers HSL lightness by f steps of 0.1.
func (c Color) Darken(f float64) Color {
	return c.Lighten(-f)
}

// Luminance is the BT.709 relative luminance of the color.
func (c Color) Luminance() float64 {
	return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
}

// Composite draws overlay over c using the overlay's alpha.
func (c Color) Composite(overlay Color) Color {
	if overlay.A >= 1 {
		return overlay
	}
	if overlay.A <= 0 {
		return c
	}
	a := overlay.A
	return RGBA(
		c.R*(1-a)+overlay.R*a,
		c.G*(1-a)+overlay.G*a,
		c.B*(1-a)+overlay.B*a,
		math.Min(1, c.A+overlay.A*(1-c.A)),
	)
}

// Contrasting returns white or black, whichever reads better against c,
// at the given alpha.
func (c Color) Contrasting(alpha float64) Color {
	if c.Luminance() < 0.5 {
		return RGBA(1, 1, 1, alpha)
	}
	return RGBA(0, 0, 0, alpha)
}

// Hex renders the color as #rrggbb, or #rrggbbaa when translucent.
func (c Color) Hex() string {
	r := int(math.Round(c.R * 255))
	g := int(math.Round(c.G * 255))
	b := int(math.Round(c.B * 255))
	if c.A < 1 {
		return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, int(math.Round(c.A*255)))
	}
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
