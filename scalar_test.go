package tcss

import "testing"

func TestScalarResolve(t *testing.T) {
	vp := Size{80, 24}
	cases := []struct {
		name  string
		s     Scalar
		avail int
		want  int
	}{
		{"cells", Cells(12), 40, 12},
		{"cells rounds", Scalar{2.6, UnitCells}, 40, 3},
		{"percent of container", Percent(50), 40, 20},
		{"percent rounds", Percent(33), 10, 3},
		{"w against viewport", Scalar{50, UnitWidth}, 40, 40},
		{"h against viewport", Scalar{50, UnitHeight}, 40, 12},
		{"vw against viewport", Scalar{25, UnitViewWidth}, 10, 20},
		{"vh against viewport", Scalar{100, UnitViewHeight}, 10, 24},
		{"fraction falls back to available", Fr(1), 40, 40},
		{"auto falls back to available", Auto(), 40, 40},
		{"never negative", Cells(-5), 40, 0},
	}
	for _, c := range cases {
		if got := c.s.Resolve(c.avail, vp); got != c.want {
			t.Errorf("%s: got %d, want %d", c.name, got, c.want)
		}
	}
}

func TestSpacingShorthand(t *testing.T) {
	if s := SpacingFrom([]int{2}); s != SpacingAll(2) {
		t.Errorf("one value: got %+v", s)
	}
	if s := SpacingFrom([]int{2, 4}); s != (Spacing{2, 4, 2, 4}) {
		t.Errorf("two values: got %+v", s)
	}
	if s := SpacingFrom([]int{1, 2, 3, 4}); s != (Spacing{1, 2, 3, 4}) {
		t.Errorf("four values: got %+v", s)
	}
	if s := SpacingFrom([]int{1, 2, 3}); s != (Spacing{}) {
		t.Errorf("three values should be ignored, got %+v", s)
	}
}

func TestRegionShrinkClamps(t *testing.T) {
	r := Region{0, 0, 4, 4}.Shrink(SpacingAll(3))
	if r.Width != 0 || r.Height != 0 {
		t.Errorf("over-shrunk region should clamp to zero, got %+v", r)
	}
}
