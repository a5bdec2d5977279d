package tcss

import "math"

// VerticalLayout stacks flow children top to bottom. It is the default
// layout kind.
type VerticalLayout struct{}

func (VerticalLayout) Arrange(parent *Style, children []LayoutChild, size Size, viewport Size) []Placement {
	return arrangeLinear(true, children, size, viewport)
}

// HorizontalLayout places flow children left to right.
type HorizontalLayout struct{}

func (HorizontalLayout) Arrange(parent *Style, children []LayoutChild, size Size, viewport Size) []Placement {
	return arrangeLinear(false, children, size, viewport)
}

// linearChild is the per-child working state shared by the two passes.
type linearChild struct {
	child  LayoutChild
	style  *Style
	margin Spacing
	// unrounded main-axis size for non-fraction children; weight for
	// fraction children.
	fixed    float64
	weight   float64
	cross    int
	leading  int // collapsed leading margin
	trailing int
}

// arrangeLinear is the core of both linear layouts. Pass one resolves
// every fixed main-axis extent and collects fraction weights; pass two
// walks a fractional running position so that rounding never drifts:
// each child's integer extent is floor(next) - floor(pos), and fixed
// extents stay unrounded so their remainders carry too.
func arrangeLinear(vertical bool, children []LayoutChild, size Size, viewport Size) []Placement {
	availMain, availCross := size.Width, size.Height
	if vertical {
		availMain, availCross = size.Height, size.Width
	}

	states := make([]linearChild, 0, len(children))
	totalWeight := 0.0
	fixedTotal := 0.0
	marginTotal := 0
	prevTrailing := 0
	first := true

	for _, c := range children {
		st := c.Style
		if st != nil && st.Display == DisplayNone {
			continue
		}
		var margin Spacing
		if st != nil {
			margin = st.Margin
		}
		lc := linearChild{child: c, style: st, margin: margin}

		// Main-axis margins collapse between neighbours: the gap is the
		// larger of the two adjoining margins, not their sum.
		own, trail := margin.Left, margin.Right
		if vertical {
			own, trail = margin.Top, margin.Bottom
		}
		if first {
			lc.leading = own
		} else {
			lc.leading = max(0, own-prevTrailing)
		}
		lc.trailing = trail
		prevTrailing = trail
		first = false
		marginTotal += lc.leading + lc.trailing

		crossMargin := margin.Height()
		if vertical {
			crossMargin = margin.Width()
		}
		lc.cross = linearCross(vertical, lc, max(0, availCross-crossMargin), viewport)

		main, hasMain := linearMainScalar(vertical, st)
		switch {
		case hasMain && main.IsFraction():
			lc.weight = main.Value
			totalWeight += main.Value
		case !hasMain && c.Fill:
			// A child asking to fill the main axis is an implicit 1fr.
			lc.weight = 1
			totalWeight++
		default:
			lc.fixed = linearMainFixed(vertical, lc, availMain, viewport)
			fixedTotal += lc.fixed
		}
		states = append(states, lc)
	}

	// Space left for fraction children. When nothing remains each
	// weight unit is still worth one cell so fraction children never
	// collapse to nothing.
	fractionUnit := 1.0
	if remaining := float64(availMain) - fixedTotal - float64(marginTotal); remaining > 0 && totalWeight > 0 {
		fractionUnit = remaining / totalWeight
	}

	placements := make([]Placement, 0, len(states))
	pos := 0.0
	for _, lc := range states {
		pos += float64(lc.leading)
		var next float64
		var extent int
		if lc.weight > 0 {
			next = pos + lc.weight*fractionUnit
			extent = int(math.Floor(next)) - int(math.Floor(pos))
			extent = linearClampMain(vertical, lc.style, extent, availMain, viewport)
		} else {
			next = pos + lc.fixed
			extent = int(math.Floor(next)) - int(math.Floor(pos))
		}

		start := int(math.Floor(pos))
		var region Region
		if vertical {
			region = Region{X: lc.margin.Left, Y: start, Width: lc.cross, Height: extent}
		} else {
			region = Region{X: start, Y: lc.margin.Top, Width: extent, Height: lc.cross}
		}
		placements = append(placements, Placement{Index: lc.child.Index, Region: region})
		pos = next + float64(lc.trailing)
	}
	return placements
}

// linearMainScalar returns the style scalar governing the main axis.
func linearMainScalar(vertical bool, s *Style) (Scalar, bool) {
	if s == nil {
		return Scalar{}, false
	}
	sc := s.Width
	if vertical {
		sc = s.Height
	}
	if sc == nil {
		return Scalar{}, false
	}
	return *sc, true
}

// linearMainFixed resolves a non-fraction main-axis extent: explicit
// sizes resolve against the container, auto measures content at the
// already-resolved cross extent and an unsized child with no content
// falls back to the default fixed size. Explicit sizes come back
// unrounded so the caller can carry their remainders.
func linearMainFixed(vertical bool, lc linearChild, availMain int, viewport Size) float64 {
	s := lc.style
	sc, has := linearMainScalar(vertical, s)
	if has && !sc.IsAuto() {
		v := sc.resolveF(availMain, viewport)
		if s != nil && s.BoxSizing == ContentBox {
			if vertical {
				v += float64(s.ChromeY())
			} else {
				v += float64(s.ChromeX())
			}
		}
		return linearClampMainF(vertical, s, v, availMain, viewport)
	}

	var chromeMain, chromeCross, intrinsic int
	if s != nil {
		chromeMain, chromeCross = s.ChromeX(), s.ChromeY()
		if vertical {
			chromeMain, chromeCross = chromeCross, chromeMain
		}
	}
	inner := max(0, lc.cross-chromeCross)
	if vertical {
		intrinsic = lc.child.intrinsicHeight(inner)
	} else {
		intrinsic = lc.child.intrinsicWidth(inner)
	}
	v := 0
	switch {
	case intrinsic > 0:
		v = intrinsic + chromeMain
	case !has:
		v = defaultFixedHeight
		if !vertical {
			v = defaultFixedWidth
		}
	default:
		v = chromeMain
	}
	return float64(linearClampMain(vertical, s, v, availMain, viewport))
}

// linearCross resolves the cross-axis extent: unsized and fraction
// children fill the available cross space, auto measures content.
func linearCross(vertical bool, lc linearChild, availCross int, viewport Size) int {
	s := lc.style
	var sc *Scalar
	if s != nil {
		sc = s.Height
		if vertical {
			sc = s.Width
		}
	}
	v := availCross
	switch {
	case sc == nil || sc.IsFraction():
		// fill
	case sc.IsAuto():
		chromeCross := 0
		if s != nil {
			if vertical {
				chromeCross = s.ChromeX()
			} else {
				chromeCross = s.ChromeY()
			}
		}
		var intrinsic int
		if vertical {
			intrinsic = lc.child.intrinsicWidth(0)
		} else {
			intrinsic = lc.child.intrinsicHeight(0)
		}
		if intrinsic > 0 {
			v = intrinsic + chromeCross
		}
	default:
		v = sc.Resolve(availCross, viewport)
		if vertical {
			v = applyBoxSizingX(s, v)
		} else {
			v = applyBoxSizingY(s, v)
		}
	}
	if vertical {
		return clampWidth(s, v, availCross, viewport)
	}
	return clampHeight(s, v, availCross, viewport)
}

func linearClampMain(vertical bool, s *Style, v, avail int, viewport Size) int {
	if vertical {
		return clampHeight(s, v, avail, viewport)
	}
	return clampWidth(s, v, avail, viewport)
}

// linearClampMainF is linearClampMain for an unrounded extent. Min and
// max still resolve to whole cells; min wins over max.
func linearClampMainF(vertical bool, s *Style, v float64, avail int, viewport Size) float64 {
	if s != nil {
		lo, hi := s.MinWidth, s.MaxWidth
		if vertical {
			lo, hi = s.MinHeight, s.MaxHeight
		}
		if hi != nil && !hi.IsAuto() {
			v = math.Min(v, float64(hi.Resolve(avail, viewport)))
		}
		if lo != nil && !lo.IsAuto() {
			v = math.Max(v, float64(lo.Resolve(avail, viewport)))
		}
	}
	return math.Max(0, v)
}
