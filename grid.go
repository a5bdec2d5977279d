package tcss

// GridLayout arranges children into tracks. Cell assignment is a
// first-fit scan: each child takes the first free cell in row-major
// order that its (clamped) span fits into.
type GridLayout struct {
	// MinColumnWidth derives the column count from the available width
	// when the style gives no explicit grid-size.
	MinColumnWidth int
	// StretchHeight stretches auto-height children to fill their cell.
	StretchHeight bool
}

func NewGridLayout() *GridLayout { return &GridLayout{} }

// track is a resolved grid track: where it starts and how wide it is.
type track struct {
	offset, size int
}

// occupancyGrid tracks which cells are taken during placement.
type occupancyGrid struct {
	cols, rows int
	cells      []bool
}

func newOccupancyGrid(cols, rows int) *occupancyGrid {
	return &occupancyGrid{cols: cols, rows: rows, cells: make([]bool, cols*rows)}
}

func (g *occupancyGrid) at(col, row int) bool { return g.cells[row*g.cols+col] }

// findFit scans free cells in row-major order and returns the first one
// whose clamped span fits. A blocked candidate does not stop the scan;
// later children can slot into cells an earlier span jumped over.
func (g *occupancyGrid) findFit(colSpan, rowSpan int) (col, row int, ok bool) {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.at(c, r) {
				continue
			}
			cs := min(colSpan, g.cols-c)
			rs := min(rowSpan, g.rows-r)
			if g.canFit(c, r, cs, rs) {
				return c, r, true
			}
		}
	}
	return 0, 0, false
}

// canFit reports whether a span of cells starting at (col, row) is
// entirely free and inside the grid.
func (g *occupancyGrid) canFit(col, row, colSpan, rowSpan int) bool {
	if col+colSpan > g.cols || row+rowSpan > g.rows {
		return false
	}
	for r := row; r < row+rowSpan; r++ {
		for c := col; c < col+colSpan; c++ {
			if g.at(c, r) {
				return false
			}
		}
	}
	return true
}

func (g *occupancyGrid) occupy(col, row, colSpan, rowSpan int) {
	for r := row; r < row+rowSpan; r++ {
		for c := col; c < col+colSpan; c++ {
			g.cells[r*g.cols+c] = true
		}
	}
}

// cellAssignment records the cell and clamped span a child landed on.
type cellAssignment struct {
	child            LayoutChild
	col, row         int
	colSpan, rowSpan int
}

func (l *GridLayout) Arrange(parent *Style, children []LayoutChild, size Size, viewport Size) []Placement {
	flow := make([]LayoutChild, 0, len(children))
	for _, c := range children {
		if c.Style != nil && c.Style.Display == DisplayNone {
			continue
		}
		flow = append(flow, c)
	}
	if len(flow) == 0 {
		return nil
	}

	var grid GridStyle
	if parent != nil {
		grid = parent.Grid
	}
	cols := l.columnCount(grid, size.Width)
	rows := rowCount(grid, flow, cols)

	assignments := assignCells(flow, cols, rows)

	colTracks := l.resolveAxis(grid.ColumnWidths, cols, size.Width, grid.GutterH, viewport,
		contentColumnWidths(parent, assignments, cols, size.Width, grid.GutterH))
	rowTracks := l.resolveAxis(grid.RowHeights, rows, size.Height, grid.GutterV, viewport,
		contentRowHeights(parent, assignments, rows, size.Height, grid.GutterV, colTracks, grid.GutterH))

	placements := make([]Placement, 0, len(assignments))
	for _, a := range assignments {
		cell := Region{
			X:      colTracks[a.col].offset,
			Y:      rowTracks[a.row].offset,
			Width:  spanExtent(colTracks, a.col, a.colSpan, grid.GutterH),
			Height: spanExtent(rowTracks, a.row, a.rowSpan, grid.GutterV),
		}
		placements = append(placements, Placement{
			Index:  a.child.Index,
			Region: l.childRegion(parent, a.child, cell, viewport),
		})
	}
	return placements
}

// columnCount prefers an explicit grid-size, then a width-derived count
// from MinColumnWidth, then a single column.
func (l *GridLayout) columnCount(grid GridStyle, availWidth int) int {
	if grid.Columns > 0 {
		return grid.Columns
	}
	if l.MinColumnWidth > 0 {
		return max(1, availWidth/l.MinColumnWidth)
	}
	return 1
}

// rowCount uses an explicit grid-size row figure, else enough rows for
// every child's span worth of cells.
func rowCount(grid GridStyle, children []LayoutChild, cols int) int {
	if grid.Rows > 0 {
		return grid.Rows
	}
	cells := 0
	for _, c := range children {
		colSpan, rowSpan := spans(c.Style)
		cells += min(colSpan, cols) * rowSpan
	}
	return max(1, (cells+cols-1)/cols)
}

func spans(s *Style) (colSpan, rowSpan int) {
	colSpan, rowSpan = 1, 1
	if s != nil {
		colSpan = max(1, s.Span.ColumnSpan)
		rowSpan = max(1, s.Span.RowSpan)
	}
	return colSpan, rowSpan
}

// assignCells runs the first-fit placement. Each child lands on the
// first free cell that can hold its clamped span, scanning past cells
// that cannot; placement stops only when a child fits nowhere.
func assignCells(children []LayoutChild, cols, rows int) []cellAssignment {
	occ := newOccupancyGrid(cols, rows)
	out := make([]cellAssignment, 0, len(children))
	for _, c := range children {
		colSpan, rowSpan := spans(c.Style)
		col, row, ok := occ.findFit(colSpan, rowSpan)
		if !ok {
			break
		}
		colSpan = min(colSpan, cols-col)
		rowSpan = min(rowSpan, rows-row)
		occ.occupy(col, row, colSpan, rowSpan)
		out = append(out, cellAssignment{c, col, row, colSpan, rowSpan})
	}
	return out
}

// resolveAxis turns track specs into offsets and sizes. When the style
// gives no specs and the container is content-sized, the measured
// content sizes win; otherwise the available space distributes across
// fixed, fraction and auto specs.
func (l *GridLayout) resolveAxis(specs []Scalar, count, avail, gutter int, viewport Size, content []int) []track {
	var sizes []int
	if content != nil {
		sizes = content
	} else {
		sizes = distributeSpace(specs, count, avail, gutter, viewport)
	}
	tracks := make([]track, len(sizes))
	offset := 0
	for i, sz := range sizes {
		tracks[i] = track{offset, sz}
		offset += sz + gutter
	}
	return tracks
}

// distributeSpace shares an extent among count tracks. Specs cycle when
// there are fewer than count; a missing spec is 1fr. Fixed and percent
// tracks resolve first, fraction tracks split the remainder with exact
// rational carry so later tracks absorb leftover cells, and auto tracks
// split whatever is left equally. No track goes below one cell.
func distributeSpace(specs []Scalar, count, avail, gutter int, viewport Size) []int {
	avail = max(0, avail-max(0, count-1)*gutter)

	sizes := make([]int, count)
	weights := make([]int64, count)
	autos := make([]bool, count)
	var totalWeight int64
	autoCount := 0
	fixedTotal := 0

	oneFr := Fr(1)
	for i := 0; i < count; i++ {
		spec := oneFr
		if len(specs) > 0 {
			spec = specs[i%len(specs)]
		}
		switch {
		case spec.IsFraction():
			// Scale to integer thousandths so 1.5fr stays exact.
			weights[i] = int64(spec.Value*1000 + 0.5)
			totalWeight += weights[i]
		case spec.IsAuto():
			autos[i] = true
			autoCount++
		default:
			sizes[i] = spec.Resolve(avail, viewport)
			fixedTotal += sizes[i]
		}
	}

	remaining := max(0, avail-fixedTotal)
	if totalWeight > 0 {
		pos := FracZero
		used := 0
		for i := 0; i < count; i++ {
			if weights[i] == 0 {
				continue
			}
			next := pos.Add(NewFrac(int64(remaining)*weights[i], totalWeight))
			sizes[i] = next.Int() - pos.Int()
			used += sizes[i]
			pos = next
		}
		remaining -= used
	}
	if autoCount > 0 && remaining > 0 {
		pos := FracZero
		for i := 0; i < count; i++ {
			if !autos[i] {
				continue
			}
			next := pos.Add(NewFrac(int64(remaining), int64(autoCount)))
			sizes[i] = next.Int() - pos.Int()
			pos = next
		}
	}
	for i := range sizes {
		sizes[i] = max(1, sizes[i])
	}
	return sizes
}

// spanExtent is the width of a span of tracks. With a following track
// the distance between offsets minus one gutter is exact; at the end of
// the axis the sizes and internal gutters sum instead.
func spanExtent(tracks []track, start, span, gutter int) int {
	if start >= len(tracks) {
		return 0
	}
	span = min(span, len(tracks)-start)
	if start+span < len(tracks) {
		return tracks[start+span].offset - tracks[start].offset - gutter
	}
	total := 0
	for i := start; i < start+span; i++ {
		total += tracks[i].size
	}
	return total + (span-1)*gutter
}

// childRegion sizes a child inside its cell. An unsized or auto width
// fills the cell unless the parent aligns that axis, in which case the
// child keeps its content width and shifts within the cell. Auto height
// measures content at the resolved width, and margins inset the child.
func (l *GridLayout) childRegion(parent *Style, c LayoutChild, cell Region, viewport Size) Region {
	s := c.Style
	var margin Spacing
	if s != nil {
		margin = s.Margin
	}
	inner := cell.Shrink(margin)

	alignH, alignV := AlignStart, AlignStart
	if parent != nil {
		alignH, alignV = parent.AlignH, parent.AlignV
	}
	chromeX, chromeY := 0, 0
	if s != nil {
		chromeX, chromeY = s.ChromeX(), s.ChromeY()
	}

	w := inner.Width
	if s != nil && s.Width != nil && !s.Width.IsAuto() && !s.Width.IsFraction() {
		w = min(inner.Width, applyBoxSizingX(s, s.Width.Resolve(inner.Width, viewport)))
	} else if alignH != AlignStart {
		if iw := c.intrinsicWidth(0); iw > 0 {
			w = min(inner.Width, iw+chromeX)
		}
	}
	w = clampWidth(s, w, inner.Width, viewport)

	h := inner.Height
	if s == nil || s.Height == nil || s.Height.IsAuto() {
		if !l.StretchHeight || (s != nil && s.Height != nil && s.Height.IsAuto()) {
			if ih := c.intrinsicHeight(max(0, w-chromeX)); ih > 0 {
				h = min(inner.Height, ih+chromeY)
			}
		}
	} else if !s.Height.IsFraction() {
		h = min(inner.Height, applyBoxSizingY(s, s.Height.Resolve(inner.Height, viewport)))
	}
	h = clampHeight(s, h, inner.Height, viewport)

	return Region{
		X:      inner.X + alignDelta(alignH, 0, inner.Width, 0, w),
		Y:      inner.Y + alignDelta(alignV, 0, inner.Height, 0, h),
		Width:  w,
		Height: h,
	}
}

// contentColumnWidths measures columns from child content. Only applies
// when the style names no column specs and the container width is auto;
// otherwise nil defers to distributeSpace. Oversized totals scale down
// proportionally to fit.
func contentColumnWidths(parent *Style, assignments []cellAssignment, cols, avail, gutter int) []int {
	if parent == nil || len(parent.Grid.ColumnWidths) > 0 {
		return nil
	}
	if parent.Width == nil || !parent.Width.IsAuto() {
		return nil
	}
	widths := make([]int, cols)
	for _, a := range assignments {
		if a.colSpan != 1 {
			continue
		}
		widths[a.col] = max(widths[a.col], a.child.intrinsicWidth(0))
	}
	scaleToFit(widths, max(0, avail-max(0, cols-1)*gutter))
	return widths
}

// contentRowHeights mirrors contentColumnWidths for rows, measuring each
// single-span child at its column width.
func contentRowHeights(parent *Style, assignments []cellAssignment, rows, avail, gutter int, colTracks []track, colGutter int) []int {
	if parent == nil || len(parent.Grid.RowHeights) > 0 {
		return nil
	}
	if parent.Height == nil || !parent.Height.IsAuto() {
		return nil
	}
	heights := make([]int, rows)
	for _, a := range assignments {
		if a.rowSpan != 1 {
			continue
		}
		w := spanExtent(colTracks, a.col, a.colSpan, colGutter)
		heights[a.row] = max(heights[a.row], a.child.intrinsicHeight(w))
	}
	scaleToFit(heights, max(0, avail-max(0, rows-1)*gutter))
	return heights
}

// scaleToFit shrinks sizes proportionally when their sum overflows
// avail, using rational carry so the scaled sizes still sum exactly.
func scaleToFit(sizes []int, avail int) {
	total := 0
	for _, s := range sizes {
		total += s
	}
	if total <= avail || total == 0 {
		return
	}
	pos := FracZero
	for i, s := range sizes {
		next := pos.Add(NewFrac(int64(s)*int64(avail), int64(total)))
		sizes[i] = next.Int() - pos.Int()
		pos = next
	}
}
