package tcss

// Size is a width and height in terminal cells.
type Size struct {
	Width, Height int
}

// Region is a rectangle in cell coordinates.
type Region struct {
	X, Y, Width, Height int
}

func (r Region) Right() int  { return r.X + r.Width }
func (r Region) Bottom() int { return r.Y + r.Height }

func (r Region) Size() Size { return Size{r.Width, r.Height} }

func (r Region) Translate(dx, dy int) Region {
	r.X += dx
	r.Y += dy
	return r
}

// Shrink insets the region by a spacing, never producing negative extents.
func (r Region) Shrink(s Spacing) Region {
	return Region{
		X:      r.X + s.Left,
		Y:      r.Y + s.Top,
		Width:  max(0, r.Width-s.Left-s.Right),
		Height: max(0, r.Height-s.Top-s.Bottom),
	}
}

// Expand grows the region outward by a spacing.
func (r Region) Expand(s Spacing) Region {
	return Region{
		X:      r.X - s.Left,
		Y:      r.Y - s.Top,
		Width:  r.Width + s.Left + s.Right,
		Height: r.Height + s.Top + s.Bottom,
	}
}

func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Union returns the smallest region containing both r and o. An empty
// region contributes nothing.
func (r Region) Union(o Region) Region {
	if r.Width == 0 && r.Height == 0 {
		return o
	}
	if o.Width == 0 && o.Height == 0 {
		return r
	}
	x1 := min(r.X, o.X)
	y1 := min(r.Y, o.Y)
	x2 := max(r.Right(), o.Right())
	y2 := max(r.Bottom(), o.Bottom())
	return Region{x1, y1, x2 - x1, y2 - y1}
}

// Spacing is per-edge whitespace, clockwise from the top.
type Spacing struct {
	Top, Right, Bottom, Left int
}

// SpacingAll gives every edge the same value.
func SpacingAll(n int) Spacing { return Spacing{n, n, n, n} }

// SpacingVH sets vertical and horizontal edges.
func SpacingVH(v, h int) Spacing { return Spacing{v, h, v, h} }

// SpacingFrom applies the CSS shorthand: one value for all edges, two for
// vertical/horizontal, four clockwise from the top. Anything else is zero.
func SpacingFrom(values []int) Spacing {
	switch len(values) {
	case 1:
		return SpacingAll(values[0])
	case 2:
		return SpacingVH(values[0], values[1])
	case 4:
		return Spacing{values[0], values[1], values[2], values[3]}
	}
	return Spacing{}
}

// Width is the total horizontal spacing.
func (s Spacing) Width() int { return s.Left + s.Right }

// Height is the total vertical spacing.
func (s Spacing) Height() int { return s.Top + s.Bottom }

func (s Spacing) Add(o Spacing) Spacing {
	return Spacing{s.Top + o.Top, s.Right + o.Right, s.Bottom + o.Bottom, s.Left + o.Left}
}
