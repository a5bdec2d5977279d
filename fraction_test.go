package tcss

import "testing"

func TestFracReduces(t *testing.T) {
	f := NewFrac(50, 100)
	if f.num != 1 || f.den != 2 {
		t.Errorf("50/100 should reduce to 1/2, got %d/%d", f.num, f.den)
	}
	f = NewFrac(3, -6)
	if f.num != -1 || f.den != 2 {
		t.Errorf("3/-6 should reduce to -1/2, got %d/%d", f.num, f.den)
	}
	if !NewFrac(5, 0).IsZero() {
		t.Error("zero denominator should normalize to zero")
	}
}

func TestFracFloorTowardNegInf(t *testing.T) {
	cases := []struct {
		num, den int64
		want     int64
	}{
		{7, 2, 3},
		{-7, 2, -4},
		{-1, 2, -1},
		{4, 2, 2},
		{-4, 2, -2},
		{0, 5, 0},
	}
	for _, c := range cases {
		if got := NewFrac(c.num, c.den).Floor(); got != c.want {
			t.Errorf("floor(%d/%d) = %d, want %d", c.num, c.den, got, c.want)
		}
	}
}

func TestFracFractNonNegative(t *testing.T) {
	f := NewFrac(-7, 2).Fract()
	if f.num != 1 || f.den != 2 {
		t.Errorf("fract(-7/2) = %d/%d, want 1/2", f.num, f.den)
	}
}

// Distributing cells with a rational accumulator puts leftover cells on
// the later tracks and the results always sum to the whole.
func distribute(total int64, weights []int64) []int {
	var sum int64
	for _, w := range weights {
		sum += w
	}
	out := make([]int, len(weights))
	pos := FracZero
	for i, w := range weights {
		next := pos.Add(NewFrac(total*w, sum))
		out[i] = next.Int() - pos.Int()
		pos = next
	}
	return out
}

func TestFracDistribution(t *testing.T) {
	cases := []struct {
		total   int64
		weights []int64
		want    []int
	}{
		{25, []int64{1, 1}, []int{12, 13}},
		{100, []int64{1, 1, 1}, []int{33, 33, 34}},
		{170, []int64{1, 2, 1}, []int{42, 85, 43}},
	}
	for _, c := range cases {
		got := distribute(c.total, c.weights)
		for i := range c.want {
			if got[i] != c.want[i] {
				t.Errorf("distribute(%d, %v) = %v, want %v", c.total, c.weights, got, c.want)
				break
			}
		}
		var sum int
		for _, v := range got {
			sum += v
		}
		if sum != int(c.total) {
			t.Errorf("distribute(%d, %v) sums to %d", c.total, c.weights, sum)
		}
	}
}
