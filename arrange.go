package tcss

// Arrange runs the full placement pipeline for one container: docked
// children carve the edges, flow children go through the container's
// layout, alignment and offsets translate the results, and layers repeat
// the whole process over the same region. Returned placements are in the
// coordinate space of the given region, ordered unnamed layer first so
// named layers paint on top.
func Arrange(parent *Style, children []LayoutChild, region Region, viewport Size) []Placement {
	var layers []string
	if parent != nil {
		layers = parent.Layers
	}
	if len(layers) == 0 {
		return arrangeLayer(parent, children, region, viewport)
	}

	known := map[string]bool{}
	for _, name := range layers {
		known[name] = true
	}
	byLayer := map[string][]LayoutChild{}
	for _, c := range children {
		name := ""
		if c.Style != nil && known[c.Style.Layer] {
			name = c.Style.Layer
		}
		byLayer[name] = append(byLayer[name], c)
	}

	var out []Placement
	// Every layer gets the entire region; the unnamed layer goes first.
	if group := byLayer[""]; len(group) > 0 {
		out = append(out, arrangeLayer(parent, group, region, viewport)...)
	}
	for _, name := range layers {
		if name == "" {
			continue
		}
		if group := byLayer[name]; len(group) > 0 {
			out = append(out, arrangeLayer(parent, group, region, viewport)...)
		}
	}
	return out
}

func arrangeLayer(parent *Style, children []LayoutChild, region Region, viewport Size) []Placement {
	var docked, absolute, flow []LayoutChild
	for _, c := range children {
		switch {
		case c.Style != nil && c.Style.Display == DisplayNone:
		case c.Style != nil && c.Style.Dock != DockNone:
			docked = append(docked, c)
		case c.Style != nil && c.Style.Position == PositionAbsolute:
			absolute = append(absolute, c)
		default:
			flow = append(flow, c)
		}
	}

	var placements []Placement
	shrunk := region
	for _, c := range docked {
		p, next := placeDocked(c, region, shrunk, viewport)
		placements = append(placements, p)
		shrunk = next
	}

	kind := LayoutVertical
	if parent != nil {
		kind = parent.Layout
	}
	flowPlacements := LayoutFor(kind).Arrange(parent, flow, shrunk.Size(), viewport)
	for i := range flowPlacements {
		flowPlacements[i].Region = flowPlacements[i].Region.Translate(shrunk.X, shrunk.Y)
	}
	if parent != nil && parent.AlignSet() {
		alignPlacements(flowPlacements, flow, shrunk, parent.AlignH, parent.AlignV)
	}
	placements = append(placements, flowPlacements...)

	for _, c := range absolute {
		w := resolveWidth(c, shrunk.Width, shrunk.Height, viewport)
		h := resolveHeight(c, w, shrunk.Height, viewport)
		placements = append(placements, Placement{
			Index:  c.Index,
			Region: Region{X: shrunk.X, Y: shrunk.Y, Width: w, Height: h},
		})
	}

	applyOffsets(placements, children, region, viewport)
	return placements
}

// placeDocked pins one child to its dock edge. The child takes the full
// cross extent of the original region, and the returned region is the
// remaining space for flow layout.
func placeDocked(c LayoutChild, original, shrunk Region, viewport Size) (Placement, Region) {
	var r Region
	next := shrunk
	switch c.Style.Dock {
	case DockTop:
		h := dockExtent(c, true, original, viewport)
		r = Region{X: original.X, Y: shrunk.Y, Width: original.Width, Height: h}
		next.Y += h
		next.Height = max(0, next.Height-h)
	case DockBottom:
		h := dockExtent(c, true, original, viewport)
		r = Region{X: original.X, Y: shrunk.Bottom() - h, Width: original.Width, Height: h}
		next.Height = max(0, next.Height-h)
	case DockLeft:
		w := dockExtent(c, false, original, viewport)
		r = Region{X: shrunk.X, Y: original.Y, Width: w, Height: original.Height}
		next.X += w
		next.Width = max(0, next.Width-w)
	case DockRight:
		w := dockExtent(c, false, original, viewport)
		r = Region{X: shrunk.Right() - w, Y: original.Y, Width: w, Height: original.Height}
		next.Width = max(0, next.Width-w)
	}
	return Placement{Index: c.Index, Region: r}, next
}

// dockExtent is the docked child's size along its dock axis: the style
// size when given, content otherwise.
func dockExtent(c LayoutChild, vertical bool, original Region, viewport Size) int {
	s := c.Style
	if vertical {
		if s.Height != nil && !s.Height.IsAuto() && !s.Height.IsFraction() {
			return clampHeight(s, applyBoxSizingY(s, s.Height.Resolve(original.Height, viewport)), original.Height, viewport)
		}
		if ih := c.intrinsicHeight(max(0, original.Width-s.ChromeX())); ih > 0 {
			return clampHeight(s, ih+s.ChromeY(), original.Height, viewport)
		}
		return clampHeight(s, defaultFixedHeight, original.Height, viewport)
	}
	if s.Width != nil && !s.Width.IsAuto() && !s.Width.IsFraction() {
		return clampWidth(s, applyBoxSizingX(s, s.Width.Resolve(original.Width, viewport)), original.Width, viewport)
	}
	if iw := c.intrinsicWidth(max(0, original.Height-s.ChromeY())); iw > 0 {
		return clampWidth(s, iw+s.ChromeX(), original.Width, viewport)
	}
	return clampWidth(s, defaultFixedWidth, original.Width, viewport)
}

// alignPlacements translates the flow placements so their bounding box
// sits where the container's alignment asks, leaving relative positions
// untouched.
func alignPlacements(placements []Placement, children []LayoutChild, within Region, alignH, alignV Align) {
	if len(placements) == 0 {
		return
	}
	// The box being aligned includes each child's margins, so trailing
	// margins keep their whitespace after the group shifts.
	margins := make(map[int]Spacing, len(children))
	for _, c := range children {
		if c.Style != nil {
			margins[c.Index] = c.Style.Margin
		}
	}
	var bounds Region
	for _, p := range placements {
		bounds = bounds.Union(p.Region.Expand(margins[p.Index]))
	}
	dx := alignDelta(alignH, within.X, within.Width, bounds.X, bounds.Width)
	dy := alignDelta(alignV, within.Y, within.Height, bounds.Y, bounds.Height)
	if dx == 0 && dy == 0 {
		return
	}
	for i := range placements {
		placements[i].Region = placements[i].Region.Translate(dx, dy)
	}
}

func alignDelta(a Align, start, extent, boundsStart, boundsExtent int) int {
	switch a {
	case AlignCenter:
		return start + (extent-boundsExtent)/2 - boundsStart
	case AlignEnd:
		return start + extent - boundsExtent - boundsStart
	}
	return 0
}

// applyOffsets translates every placement by its own style offset,
// docked and absolute children included. Offset scalars resolve against
// the container region.
func applyOffsets(placements []Placement, children []LayoutChild, region Region, viewport Size) {
	styles := map[int]*Style{}
	for _, c := range children {
		if c.Style != nil && c.Style.HasOffset() {
			styles[c.Index] = c.Style
		}
	}
	if len(styles) == 0 {
		return
	}
	for i := range placements {
		s := styles[placements[i].Index]
		if s == nil {
			continue
		}
		dx := offsetCells(s.OffsetX, region.Width, viewport)
		dy := offsetCells(s.OffsetY, region.Height, viewport)
		placements[i].Region = placements[i].Region.Translate(dx, dy)
	}
}

// offsetCells resolves an offset scalar, keeping the sign that
// Scalar.Resolve would clamp away.
func offsetCells(s Scalar, avail int, viewport Size) int {
	if s.Value >= 0 {
		return s.Resolve(avail, viewport)
	}
	neg := s
	neg.Value = -neg.Value
	return -neg.Resolve(avail, viewport)
}
