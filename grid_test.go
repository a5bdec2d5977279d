package tcss

import (
	"strings"
	"testing"
)

func gridParent(mutate func(*Style)) *Style {
	s := DefaultStyle()
	s.Layout = LayoutGrid
	if mutate != nil {
		mutate(s)
	}
	return s
}

func TestDistributeSpaceEqualFractions(t *testing.T) {
	// 80 wide, 3 columns, gutter 1: 78 cells split three ways.
	sizes := distributeSpace(nil, 3, 80, 1, Size{80, 24})
	want := []int{26, 26, 26}
	for i := range want {
		if sizes[i] != want[i] {
			t.Fatalf("sizes: got %v, want %v", sizes, want)
		}
	}
}

func TestResolveTracksOffsets(t *testing.T) {
	l := NewGridLayout()
	tracks := l.resolveAxis(nil, 3, 80, 1, Size{80, 24}, nil)
	wantOffsets := []int{0, 27, 54}
	for i, w := range wantOffsets {
		if tracks[i].offset != w {
			t.Fatalf("offsets: got %+v, want %v", tracks, wantOffsets)
		}
		if tracks[i].size != 26 {
			t.Fatalf("track %d size: got %d, want 26", i, tracks[i].size)
		}
	}
}

func TestDistributeSpaceRemainderGoesToLaterTracks(t *testing.T) {
	sizes := distributeSpace(nil, 2, 25, 0, Size{25, 24})
	if sizes[0] != 12 || sizes[1] != 13 {
		t.Errorf("got %v, want [12 13]", sizes)
	}
	sizes = distributeSpace([]Scalar{Fr(1), Fr(2), Fr(1)}, 3, 170, 0, Size{170, 24})
	if sizes[0] != 42 || sizes[1] != 85 || sizes[2] != 43 {
		t.Errorf("got %v, want [42 85 43]", sizes)
	}
}

func TestDistributeSpaceSpecsCycle(t *testing.T) {
	// Two specs across four tracks repeat 10, 1fr, 10, 1fr.
	sizes := distributeSpace([]Scalar{Cells(10), Fr(1)}, 4, 60, 0, Size{60, 24})
	if sizes[0] != 10 || sizes[2] != 10 {
		t.Errorf("fixed tracks: got %v", sizes)
	}
	if sizes[1]+sizes[3] != 40 {
		t.Errorf("fr tracks should share 40 cells: got %v", sizes)
	}
}

func TestDistributeSpaceMixedFixedAndFraction(t *testing.T) {
	sizes := distributeSpace([]Scalar{Cells(20), Fr(1), Fr(1)}, 3, 80, 0, Size{80, 24})
	if sizes[0] != 20 || sizes[1] != 30 || sizes[2] != 30 {
		t.Errorf("got %v, want [20 30 30]", sizes)
	}
}

func TestDistributeSpaceMinimumOneCell(t *testing.T) {
	sizes := distributeSpace(nil, 5, 2, 0, Size{2, 24})
	for i, s := range sizes {
		if s < 1 {
			t.Errorf("track %d collapsed to %d", i, s)
		}
	}
}

func TestGridArrangeThreeColumns(t *testing.T) {
	parent := gridParent(func(s *Style) {
		s.Grid.Columns = 3
		s.Grid.GutterH = 1
		s.Grid.GutterV = 1
	})
	children := make([]LayoutChild, 6)
	for i := range children {
		children[i] = styled(i, func(s *Style) { s.Height = scalar(Cells(3)) })
	}
	p := NewGridLayout().Arrange(parent, children, Size{80, 24}, Size{80, 24})
	if len(p) != 6 {
		t.Fatalf("placed %d of 6", len(p))
	}
	wantX := []int{0, 27, 54, 0, 27, 54}
	for i, x := range wantX {
		if p[i].Region.X != x {
			t.Errorf("child %d X: got %d, want %d", i, p[i].Region.X, x)
		}
		if p[i].Region.Width != 26 {
			t.Errorf("child %d width: got %d, want 26", i, p[i].Region.Width)
		}
	}
	if p[3].Region.Y == p[0].Region.Y {
		t.Error("fourth child should wrap to the second row")
	}
}

func TestGridColumnSpanWidth(t *testing.T) {
	// Two 10-wide tracks with gutter 1: a span of both is 21 wide.
	parent := gridParent(func(s *Style) {
		s.Grid.Columns = 2
		s.Grid.ColumnWidths = []Scalar{Cells(10)}
		s.Grid.GutterH = 1
	})
	children := []LayoutChild{
		styled(0, func(s *Style) { s.Span.ColumnSpan = 2; s.Height = scalar(Cells(1)) }),
	}
	p := NewGridLayout().Arrange(parent, children, Size{80, 24}, Size{80, 24})
	if p[0].Region.Width != 21 {
		t.Errorf("span width: got %d, want 21", p[0].Region.Width)
	}
}

func TestGridSpanWithFollowingTrack(t *testing.T) {
	// Spanning 2 of 3 tracks: next offset minus start offset minus one
	// gutter.
	parent := gridParent(func(s *Style) {
		s.Grid.Columns = 3
		s.Grid.ColumnWidths = []Scalar{Cells(10)}
		s.Grid.GutterH = 1
	})
	children := []LayoutChild{
		styled(0, func(s *Style) { s.Span.ColumnSpan = 2; s.Height = scalar(Cells(1)) }),
		styled(1, func(s *Style) { s.Height = scalar(Cells(1)) }),
	}
	p := NewGridLayout().Arrange(parent, children, Size{80, 24}, Size{80, 24})
	if p[0].Region.Width != 21 {
		t.Errorf("span width: got %d, want 21", p[0].Region.Width)
	}
	if p[1].Region.X != 22 {
		t.Errorf("next child X: got %d, want 22", p[1].Region.X)
	}
}

func TestGridSpanClampsToRemainingColumns(t *testing.T) {
	parent := gridParent(func(s *Style) { s.Grid.Columns = 2 })
	children := []LayoutChild{
		styled(0, func(s *Style) { s.Height = scalar(Cells(1)) }),
		styled(1, func(s *Style) { s.Span.ColumnSpan = 5; s.Height = scalar(Cells(1)) }),
	}
	p := NewGridLayout().Arrange(parent, children, Size{40, 24}, Size{40, 24})
	if len(p) != 2 {
		t.Fatalf("both children should place, got %d", len(p))
	}
	// The oversized span clamps to the single remaining column.
	if p[1].Region.Width != 20 {
		t.Errorf("clamped span width: got %d, want 20", p[1].Region.Width)
	}
}

func TestGridTetrisPlacement(t *testing.T) {
	// A 2x2 spanning child occupies the first two columns of two rows;
	// later children flow around it.
	parent := gridParent(func(s *Style) {
		s.Grid.Columns = 3
		s.Grid.Rows = 2
	})
	children := []LayoutChild{
		styled(0, func(s *Style) {
			s.Span.ColumnSpan = 2
			s.Span.RowSpan = 2
			s.Height = scalar(Cells(1))
		}),
		styled(1, func(s *Style) { s.Height = scalar(Cells(1)) }),
		styled(2, func(s *Style) { s.Height = scalar(Cells(1)) }),
	}
	p := NewGridLayout().Arrange(parent, children, Size{30, 20}, Size{30, 20})
	if len(p) != 3 {
		t.Fatalf("placed %d of 3", len(p))
	}
	// Children 1 and 2 stack in the third column.
	if p[1].Region.X != 20 || p[2].Region.X != 20 {
		t.Errorf("flow-around X: got %d and %d, want 20", p[1].Region.X, p[2].Region.X)
	}
	if p[1].Region.Y == p[2].Region.Y {
		t.Error("children in the same column should be on different rows")
	}
}

func TestGridScanSkipsBlockedCells(t *testing.T) {
	// A span that cannot fit at the first free cell keeps scanning for
	// one that holds it instead of stopping placement. With two tall
	// children flanking the middle column, the 2-wide child must skip
	// the lone free cell on row 1 and land on row 2, and the last child
	// then takes the skipped cell.
	parent := gridParent(func(s *Style) { s.Grid.Columns = 3 })
	children := []LayoutChild{
		styled(0, func(s *Style) { s.Span.RowSpan = 2; s.Height = scalar(Cells(1)) }),
		styled(1, func(s *Style) { s.Height = scalar(Cells(1)) }),
		styled(2, func(s *Style) { s.Span.RowSpan = 2; s.Height = scalar(Cells(1)) }),
		styled(3, func(s *Style) { s.Span.ColumnSpan = 2; s.Height = scalar(Cells(1)) }),
		styled(4, func(s *Style) { s.Height = scalar(Cells(1)) }),
	}
	p := NewGridLayout().Arrange(parent, children, Size{30, 9}, Size{30, 9})
	if len(p) != 5 {
		t.Fatalf("want all 5 children placed, got %d", len(p))
	}
	// Rows are 3 cells tall (9 over three 1fr rows), columns 10 wide.
	if p[3].Region.X != 0 || p[3].Region.Y != 6 {
		t.Errorf("2-wide child: got (%d,%d), want (0,6) on the third row",
			p[3].Region.X, p[3].Region.Y)
	}
	if p[4].Region.X != 10 || p[4].Region.Y != 3 {
		t.Errorf("last child should fill the skipped cell: got (%d,%d), want (10,3)",
			p[4].Region.X, p[4].Region.Y)
	}
}

func TestGridHaltsWhenFull(t *testing.T) {
	parent := gridParent(func(s *Style) {
		s.Grid.Columns = 2
		s.Grid.Rows = 1
	})
	children := make([]LayoutChild, 4)
	for i := range children {
		children[i] = styled(i, func(s *Style) { s.Height = scalar(Cells(1)) })
	}
	p := NewGridLayout().Arrange(parent, children, Size{40, 10}, Size{40, 10})
	if len(p) != 2 {
		t.Errorf("a full 2x1 grid places 2 children, got %d", len(p))
	}
}

func TestGridCellAlignment(t *testing.T) {
	// With the container aligned center/middle, an unsized child keeps
	// its content size and floats to the middle of its cell instead of
	// filling it from the origin.
	parent := gridParent(func(s *Style) {
		s.AlignH = AlignCenter
		s.AlignV = AlignCenter
	})
	children := []LayoutChild{TextChild(0, DefaultStyle(), "hi")}
	p := NewGridLayout().Arrange(parent, children, Size{40, 24}, Size{40, 24})
	r := p[0].Region
	if r.Width != 2 || r.Height != 1 {
		t.Fatalf("content size: got %dx%d, want 2x1", r.Width, r.Height)
	}
	if r.X != 19 || r.Y != 11 {
		t.Errorf("centered cell position: got (%d,%d), want (19,11)", r.X, r.Y)
	}
}

func TestGridCellAlignmentEnd(t *testing.T) {
	// An explicitly sized child smaller than its cell also shifts, here
	// to the right edge of a 40-wide single-column cell.
	parent := gridParent(func(s *Style) { s.AlignH = AlignEnd })
	children := []LayoutChild{
		styled(0, func(s *Style) { s.Width = scalar(Cells(10)); s.Height = scalar(Cells(1)) }),
	}
	p := NewGridLayout().Arrange(parent, children, Size{40, 24}, Size{40, 24})
	if p[0].Region.X != 30 {
		t.Errorf("end-aligned X: got %d, want 30", p[0].Region.X)
	}
}

func TestGridMinColumnWidthDerivesCount(t *testing.T) {
	l := &GridLayout{MinColumnWidth: 20}
	parent := gridParent(nil)
	children := make([]LayoutChild, 4)
	for i := range children {
		children[i] = styled(i, func(s *Style) { s.Height = scalar(Cells(1)) })
	}
	p := l.Arrange(parent, children, Size{85, 24}, Size{85, 24})
	// 85 / 20 = 4 columns, so all four land on one row.
	y := p[0].Region.Y
	for i, pl := range p {
		if pl.Region.Y != y {
			t.Errorf("child %d should share the first row, got Y %d", i, pl.Region.Y)
		}
	}
}

func TestGridContentSizedColumns(t *testing.T) {
	parent := gridParent(func(s *Style) {
		s.Grid.Columns = 2
		s.Width = scalar(Auto())
		s.Height = scalar(Cells(10))
	})
	children := []LayoutChild{
		TextChild(0, DefaultStyle(), "short"),
		TextChild(1, DefaultStyle(), "much longer text"),
	}
	p := NewGridLayout().Arrange(parent, children, Size{80, 24}, Size{80, 24})
	if p[0].Region.Width != 5 {
		t.Errorf("first column: got %d, want 5", p[0].Region.Width)
	}
	if p[1].Region.Width != 16 {
		t.Errorf("second column: got %d, want 16", p[1].Region.Width)
	}
}

func TestGridContentColumnsScaleDownOnOverflow(t *testing.T) {
	parent := gridParent(func(s *Style) {
		s.Grid.Columns = 2
		s.Width = scalar(Auto())
		s.Height = scalar(Cells(10))
	})
	// Two 30-cell lines against a 40-cell container.
	wide := strings.Repeat("x", 30)
	children := []LayoutChild{
		TextChild(0, DefaultStyle(), wide),
		TextChild(1, DefaultStyle(), wide),
	}

	p := NewGridLayout().Arrange(parent, children, Size{40, 24}, Size{40, 24})
	if w := p[0].Region.Width + p[1].Region.Width; w > 40 {
		t.Errorf("content columns should scale down to fit, got total %d", w)
	}
	if p[0].Region.Width != 20 || p[1].Region.Width != 20 {
		t.Errorf("scaled columns: got %d and %d, want 20 each", p[0].Region.Width, p[1].Region.Width)
	}
}

func TestGridChildMarginsInsetCell(t *testing.T) {
	parent := gridParent(func(s *Style) { s.Grid.Columns = 1 })
	children := []LayoutChild{
		styled(0, func(s *Style) {
			s.Height = scalar(Cells(3))
			s.Margin = SpacingAll(2)
		}),
	}
	p := NewGridLayout().Arrange(parent, children, Size{40, 24}, Size{40, 24})
	if p[0].Region.X != 2 || p[0].Region.Y != 2 {
		t.Errorf("margin offset: got %+v", p[0].Region)
	}
	if p[0].Region.Width != 36 {
		t.Errorf("margin-inset width: got %d, want 36", p[0].Region.Width)
	}
}
