package tcss

import (
	"strconv"
	"strings"
)

// borderValue is the parsed form of a border declaration.
type borderValue struct {
	Kind  BorderKind
	Color Color
}

// gridSizeValue is columns and optional rows from grid-size.
type gridSizeValue struct {
	Columns, Rows int
}

// parseDeclarationValue dispatches a property to its value parser.
// known=false means the property name itself is not recognized. A known
// property with a bad value returns (nil, true) and is skipped.
func parseDeclarationValue(prop, value string) (d *Declaration, known bool) {
	mk := func(v any) *Declaration {
		if v == nil {
			return nil
		}
		return &Declaration{Property: prop, Value: v}
	}
	switch prop {
	case "display":
		return mk(parseKeyword(value, map[string]any{"block": DisplayBlock, "none": DisplayNone})), true
	case "visibility":
		return mk(parseKeyword(value, map[string]any{"visible": VisibilityVisible, "hidden": VisibilityHidden})), true
	case "layout":
		return mk(parseKeyword(value, map[string]any{
			"vertical": LayoutVertical, "horizontal": LayoutHorizontal, "grid": LayoutGrid,
		})), true
	case "box-sizing":
		return mk(parseKeyword(value, map[string]any{"border-box": BorderBox, "content-box": ContentBox})), true
	case "width", "height", "min-width", "min-height", "max-width", "max-height":
		return mk(parseScalarValue(value)), true
	case "margin", "padding":
		return mk(parseSpacingValue(value)), true
	case "margin-top", "margin-right", "margin-bottom", "margin-left",
		"padding-top", "padding-right", "padding-bottom", "padding-left":
		return mk(parseIntValue(value)), true
	case "border", "border-top", "border-right", "border-bottom", "border-left":
		return mk(parseBorderValue(value)), true
	case "color", "background", "tint":
		return mk(parseColorValue(value)), true
	case "opacity", "text-opacity":
		return mk(parseOpacityValue(value)), true
	case "text-style":
		return mk(parseTextStyleValue(value)), true
	case "align":
		return mk(parseAlignPair(value)), true
	case "align-horizontal":
		return mk(parseAlignH(value)), true
	case "align-vertical":
		return mk(parseAlignV(value)), true
	case "dock":
		return mk(parseKeyword(value, map[string]any{
			"top": DockTop, "right": DockRight, "bottom": DockBottom, "left": DockLeft, "none": DockNone,
		})), true
	case "position":
		return mk(parseKeyword(value, map[string]any{
			"relative": PositionRelative, "absolute": PositionAbsolute,
		})), true
	case "offset":
		return mk(parseScalarPair(value)), true
	case "offset-x", "offset-y":
		return mk(parseScalarValue(value)), true
	case "layer":
		if value == "" {
			return nil, true
		}
		return mk(value), true
	case "layers":
		if fields := strings.Fields(value); len(fields) > 0 {
			return mk(fields), true
		}
		return nil, true
	case "grid-size":
		return mk(parseGridSize(value)), true
	case "grid-columns", "grid-rows":
		return mk(parseScalarListValue(value)), true
	case "grid-gutter":
		return mk(parseGutter(value)), true
	case "column-span", "row-span":
		return mk(parseSpanValue(value)), true
	case "overflow":
		return mk(parseOverflowPair(value)), true
	case "overflow-x", "overflow-y":
		return mk(parseOverflowWord(value)), true
	}
	return nil, false
}

func parseKeyword(value string, table map[string]any) any {
	if v, ok := table[strings.ToLower(strings.TrimSpace(value))]; ok {
		return v
	}
	return nil
}

// parseScalarValue reads one scalar: "auto", "3", "1fr", "50%", "20w",
// "100vh" and so on.
func parseScalarValue(value string) any {
	s, ok := parseScalar(value)
	if !ok {
		return nil
	}
	return s
}

func parseScalar(value string) (Scalar, bool) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "auto" {
		return Auto(), true
	}
	unit := UnitCells
	for _, suffix := range []struct {
		text string
		unit Unit
	}{
		{"fr", UnitFraction}, {"%", UnitPercent},
		{"vw", UnitViewWidth}, {"vh", UnitViewHeight},
		{"w", UnitWidth}, {"h", UnitHeight},
	} {
		if strings.HasSuffix(value, suffix.text) {
			unit = suffix.unit
			value = strings.TrimSuffix(value, suffix.text)
			break
		}
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return Scalar{}, false
	}
	return Scalar{v, unit}, true
}

func parseScalarPair(value string) any {
	fields := strings.Fields(value)
	if len(fields) != 2 {
		return nil
	}
	x, okx := parseScalar(fields[0])
	y, oky := parseScalar(fields[1])
	if !okx || !oky {
		return nil
	}
	return [2]Scalar{x, y}
}

func parseScalarListValue(value string) any {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return nil
	}
	out := make([]Scalar, len(fields))
	for i, f := range fields {
		s, ok := parseScalar(f)
		if !ok {
			return nil
		}
		out[i] = s
	}
	return out
}

func parseIntValue(value string) any {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return nil
	}
	return n
}

func parseSpacingValue(value string) any {
	fields := strings.Fields(value)
	if len(fields) != 1 && len(fields) != 2 && len(fields) != 4 {
		return nil
	}
	ints := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return nil
		}
		ints[i] = n
	}
	return SpacingFrom(ints)
}

// parseBorderValue reads "solid red", "round", or "none". Color defaults
// to the theme foreground at apply time when omitted.
func parseBorderValue(value string) any {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return nil
	}
	kind, ok := borderKinds[strings.ToLower(fields[0])]
	if !ok {
		return nil
	}
	out := borderValue{Kind: kind}
	if len(fields) > 1 {
		c, ok := ParseColor(strings.Join(fields[1:], " "))
		if !ok {
			return nil
		}
		out.Color = c
	} else {
		out.Color = Color{Auto: true, A: 1}
	}
	return out
}

func parseColorValue(value string) any {
	c, ok := ParseColor(value)
	if !ok {
		return nil
	}
	return c
}

// parseOpacityValue accepts "45%" or a 0..1 float.
func parseOpacityValue(value string) any {
	value = strings.TrimSpace(value)
	if strings.HasSuffix(value, "%") {
		pct, err := strconv.ParseFloat(strings.TrimSuffix(value, "%"), 64)
		if err != nil {
			return nil
		}
		return clamp01(pct / 100)
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil
	}
	return clamp01(v)
}

var textStyleWords = map[string]TextStyle{
	"bold":      TextBold,
	"italic":    TextItalic,
	"underline": TextUnderline,
	"strike":    TextStrike,
	"reverse":   TextReverse,
	"dim":       TextDim,
	"blink":     TextBlink,
}

func parseTextStyleValue(value string) any {
	fields := strings.Fields(strings.ToLower(value))
	if len(fields) == 0 {
		return nil
	}
	if len(fields) == 1 && fields[0] == "none" {
		return TextStyle(0)
	}
	var ts TextStyle
	for _, f := range fields {
		s, ok := textStyleWords[f]
		if !ok {
			return nil
		}
		ts |= s
	}
	return ts
}

var alignHWords = map[string]Align{"left": AlignStart, "center": AlignCenter, "right": AlignEnd}
var alignVWords = map[string]Align{"top": AlignStart, "middle": AlignCenter, "bottom": AlignEnd}

func parseAlignH(value string) any {
	if a, ok := alignHWords[strings.ToLower(strings.TrimSpace(value))]; ok {
		return a
	}
	return nil
}

func parseAlignV(value string) any {
	if a, ok := alignVWords[strings.ToLower(strings.TrimSpace(value))]; ok {
		return a
	}
	return nil
}

// parseAlignPair reads "center middle", horizontal then vertical.
func parseAlignPair(value string) any {
	fields := strings.Fields(strings.ToLower(value))
	if len(fields) != 2 {
		return nil
	}
	h, okh := alignHWords[fields[0]]
	v, okv := alignVWords[fields[1]]
	if !okh || !okv {
		return nil
	}
	return [2]Align{h, v}
}

// parseGridSize reads "columns" or "columns rows".
func parseGridSize(value string) any {
	fields := strings.Fields(value)
	if len(fields) != 1 && len(fields) != 2 {
		return nil
	}
	cols, err := strconv.Atoi(fields[0])
	if err != nil || cols < 1 {
		return nil
	}
	out := gridSizeValue{Columns: cols}
	if len(fields) == 2 {
		rows, err := strconv.Atoi(fields[1])
		if err != nil || rows < 1 {
			return nil
		}
		out.Rows = rows
	}
	return out
}

// parseGutter reads "n" or "vertical horizontal".
func parseGutter(value string) any {
	fields := strings.Fields(value)
	if len(fields) != 1 && len(fields) != 2 {
		return nil
	}
	v, err := strconv.Atoi(fields[0])
	if err != nil || v < 0 {
		return nil
	}
	h := v
	if len(fields) == 2 {
		h, err = strconv.Atoi(fields[1])
		if err != nil || h < 0 {
			return nil
		}
	}
	return [2]int{v, h}
}

func parseSpanValue(value string) any {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 1 {
		return nil
	}
	return n
}

var overflowWords = map[string]Overflow{
	"hidden": OverflowHidden, "scroll": OverflowScroll, "auto": OverflowAuto,
}

func parseOverflowWord(value string) any {
	if o, ok := overflowWords[strings.ToLower(strings.TrimSpace(value))]; ok {
		return o
	}
	return nil
}

func parseOverflowPair(value string) any {
	fields := strings.Fields(strings.ToLower(value))
	if len(fields) != 1 && len(fields) != 2 {
		return nil
	}
	x, ok := overflowWords[fields[0]]
	if !ok {
		return nil
	}
	y := x
	if len(fields) == 2 {
		if y, ok = overflowWords[fields[1]]; !ok {
			return nil
		}
	}
	return [2]Overflow{x, y}
}
