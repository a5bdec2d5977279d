package tcss

// Display controls whether a widget occupies space at all.
type Display uint8

const (
	DisplayBlock Display = iota
	DisplayNone
)

// Visibility hides a widget while keeping its space.
type Visibility uint8

const (
	VisibilityVisible Visibility = iota
	VisibilityHidden
)

// LayoutKind selects how a container arranges its flow children.
type LayoutKind uint8

const (
	LayoutVertical LayoutKind = iota
	LayoutHorizontal
	LayoutGrid
)

// BoxSizing decides whether width/height include border and padding.
type BoxSizing uint8

const (
	BorderBox BoxSizing = iota
	ContentBox
)

// Dock pins a widget to an edge of its container, outside flow layout.
type Dock uint8

const (
	DockNone Dock = iota
	DockTop
	DockRight
	DockBottom
	DockLeft
)

// PositionKind is flow-relative by default; absolute children are placed
// against the container origin and skip flow layout.
type PositionKind uint8

const (
	PositionRelative PositionKind = iota
	PositionAbsolute
)

// Align positions content inside leftover space on one axis.
type Align uint8

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// Overflow controls clipping behavior on one axis.
type Overflow uint8

const (
	OverflowHidden Overflow = iota
	OverflowScroll
	OverflowAuto
)

// TextStyle is a bitset of terminal text attributes.
type TextStyle uint8

const (
	TextBold TextStyle = 1 << iota
	TextItalic
	TextUnderline
	TextStrike
	TextReverse
	TextDim
	TextBlink
)

func (t TextStyle) Has(s TextStyle) bool { return t&s != 0 }

// BorderKind names the rune set used to draw an edge. BorderNone draws
// nothing and takes no space.
type BorderKind uint8

const (
	BorderNone BorderKind = iota
	BorderSolid
	BorderRound
	BorderDouble
	BorderHeavy
	BorderAscii
	BorderDashed
	BorderHidden
)

var borderKinds = map[string]BorderKind{
	"none":   BorderNone,
	"solid":  BorderSolid,
	"round":  BorderRound,
	"double": BorderDouble,
	"heavy":  BorderHeavy,
	"ascii":  BorderAscii,
	"dashed": BorderDashed,
	"hidden": BorderHidden,
}

// BorderEdge is one side of a border. Hidden edges keep their cell so
// toggling visibility does not reflow.
type BorderEdge struct {
	Kind  BorderKind
	Color Color
}

func (e BorderEdge) width() int {
	if e.Kind == BorderNone {
		return 0
	}
	return 1
}

// Border holds the four edges.
type Border struct {
	Top, Right, Bottom, Left BorderEdge
}

// Spacing is the cells the border occupies on each edge.
func (b Border) Spacing() Spacing {
	return Spacing{b.Top.width(), b.Right.width(), b.Bottom.width(), b.Left.width()}
}

// GridStyle is the container side of grid layout configuration.
type GridStyle struct {
	Columns      int // 0 means derive from content / min column width
	Rows         int
	ColumnWidths []Scalar
	RowHeights   []Scalar
	GutterV      int
	GutterH      int
}

// GridPlacement is the child side: how many tracks the child spans.
type GridPlacement struct {
	ColumnSpan int
	RowSpan    int
}

// Style is the computed style of a widget after the cascade. Pointer
// fields are nil until a declaration or default sets them.
type Style struct {
	Display    Display
	Visibility Visibility
	Layout     LayoutKind

	Width, Height       *Scalar
	MinWidth, MinHeight *Scalar
	MaxWidth, MaxHeight *Scalar

	Margin  Spacing
	Padding Spacing
	Border  Border

	BoxSizing BoxSizing

	Color      *Color
	Background *Color
	Tint       *Color

	Opacity     float64
	TextOpacity float64
	TextStyle   TextStyle

	AlignH Align
	AlignV Align

	Dock     Dock
	Position PositionKind
	OffsetX  Scalar
	OffsetY  Scalar

	Layer  string
	Layers []string

	Grid GridStyle
	Span GridPlacement

	OverflowX Overflow
	OverflowY Overflow

	// Filled by the inheritance pass.
	EffectiveColor      Color
	EffectiveBackground Color
}

// DefaultStyle is the base every cascade starts from.
func DefaultStyle() *Style {
	return &Style{
		Opacity:     1,
		TextOpacity: 1,
		Span:        GridPlacement{ColumnSpan: 1, RowSpan: 1},
	}
}

// Gutter is border plus padding, the chrome between the widget's outer
// box and its content.
func (s *Style) Gutter() Spacing {
	return s.Border.Spacing().Add(s.Padding)
}

// ChromeX is the horizontal chrome in cells.
func (s *Style) ChromeX() int { return s.Gutter().Width() }

// ChromeY is the vertical chrome in cells.
func (s *Style) ChromeY() int { return s.Gutter().Height() }

// AlignSet reports whether either alignment axis moved off the default.
func (s *Style) AlignSet() bool {
	return s.AlignH != AlignStart || s.AlignV != AlignStart
}

// HasOffset reports whether the offset pair is non-zero.
func (s *Style) HasOffset() bool {
	return s.OffsetX != (Scalar{}) || s.OffsetY != (Scalar{})
}

// Clone returns a deep copy. Pointer fields are duplicated so cascade
// application never aliases the defaults.
func (s *Style) Clone() *Style {
	out := *s
	out.Width = cloneScalar(s.Width)
	out.Height = cloneScalar(s.Height)
	out.MinWidth = cloneScalar(s.MinWidth)
	out.MinHeight = cloneScalar(s.MinHeight)
	out.MaxWidth = cloneScalar(s.MaxWidth)
	out.MaxHeight = cloneScalar(s.MaxHeight)
	out.Color = cloneColor(s.Color)
	out.Background = cloneColor(s.Background)
	out.Tint = cloneColor(s.Tint)
	out.Layers = append([]string(nil), s.Layers...)
	out.Grid.ColumnWidths = append([]Scalar(nil), s.Grid.ColumnWidths...)
	out.Grid.RowHeights = append([]Scalar(nil), s.Grid.RowHeights...)
	return &out
}

func cloneScalar(s *Scalar) *Scalar {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func cloneColor(c *Color) *Color {
	if c == nil {
		return nil
	}
	out := *c
	return &out
}
