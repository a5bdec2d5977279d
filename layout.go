package tcss

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// LayoutChild is what a layout needs to know about one child widget:
// its computed style, its position among siblings, and callbacks that
// measure its content. Nil callbacks measure zero, which keeps the
// engine independent of any widget implementation. Fill marks a child
// whose content wants all remaining space; with no style size set, a
// linear layout treats it as an implicit 1fr instead of measuring it.
type LayoutChild struct {
	Index           int
	Style           *Style
	Fill            bool
	IntrinsicWidth  func(height int) int
	IntrinsicHeight func(width int) int
}

func (c LayoutChild) intrinsicWidth(height int) int {
	if c.IntrinsicWidth == nil {
		return 0
	}
	return max(0, c.IntrinsicWidth(height))
}

func (c LayoutChild) intrinsicHeight(width int) int {
	if c.IntrinsicHeight == nil {
		return 0
	}
	return max(0, c.IntrinsicHeight(width))
}

// Placement is a layout result: which child goes where.
type Placement struct {
	Index  int
	Region Region
}

// Layout arranges flow children inside a container of the given size.
// viewport backs viewport-relative units.
type Layout interface {
	Arrange(parent *Style, children []LayoutChild, size Size, viewport Size) []Placement
}

// LayoutFor returns the layout implementation for a kind.
func LayoutFor(kind LayoutKind) Layout {
	switch kind {
	case LayoutHorizontal:
		return HorizontalLayout{}
	case LayoutGrid:
		return NewGridLayout()
	default:
		return VerticalLayout{}
	}
}

// TextMeasurer builds intrinsic size callbacks for plain text content,
// measured in display cells so wide runes count double.
type TextMeasurer struct {
	lines []string
}

func NewTextMeasurer(text string) *TextMeasurer {
	return &TextMeasurer{lines: strings.Split(text, "\n")}
}

// Width is the widest line in cells.
func (t *TextMeasurer) Width(height int) int {
	w := 0
	for _, line := range t.lines {
		w = max(w, runewidth.StringWidth(line))
	}
	return w
}

// Height is the line count after wrapping to the given width.
func (t *TextMeasurer) Height(width int) int {
	if width <= 0 {
		return len(t.lines)
	}
	rows := 0
	for _, line := range t.lines {
		w := runewidth.StringWidth(line)
		rows += max(1, (w+width-1)/width)
	}
	return rows
}

// TextChild wraps text content as a LayoutChild with intrinsic sizing.
func TextChild(index int, style *Style, text string) LayoutChild {
	m := NewTextMeasurer(text)
	return LayoutChild{
		Index:           index,
		Style:           style,
		IntrinsicWidth:  m.Width,
		IntrinsicHeight: m.Height,
	}
}
