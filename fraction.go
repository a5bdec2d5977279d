package tcss

// Frac is an exact rational number used wherever fractional space is
// distributed across integer cell tracks. Carrying the remainder exactly
// guarantees the distributed sizes always sum to the available space,
// with leftover cells landing on later tracks.
type Frac struct {
	num, den int64
}

// FracZero is the zero value in normalized form.
var FracZero = Frac{0, 1}

// NewFrac returns num/den reduced to lowest terms with the sign on the
// numerator. A zero denominator normalizes to zero.
func NewFrac(num, den int64) Frac {
	if den == 0 {
		return FracZero
	}
	if den < 0 {
		num, den = -num, -den
	}
	if g := gcd64(abs64(num), den); g > 1 {
		num /= g
		den /= g
	}
	return Frac{num, den}
}

// FracInt returns n as a rational.
func FracInt(n int64) Frac { return Frac{n, 1} }

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

func gcd64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

func (f Frac) Add(o Frac) Frac {
	return NewFrac(f.num*o.den+o.num*f.den, f.den*o.den)
}

func (f Frac) Sub(o Frac) Frac {
	return NewFrac(f.num*o.den-o.num*f.den, f.den*o.den)
}

func (f Frac) Mul(o Frac) Frac {
	return NewFrac(f.num*o.num, f.den*o.den)
}

// MulRatio multiplies by n/d without constructing an intermediate Frac.
func (f Frac) MulRatio(n, d int64) Frac {
	return NewFrac(f.num*n, f.den*d)
}

// Floor rounds toward negative infinity, so -1/2 floors to -1.
func (f Frac) Floor() int64 {
	if f.num >= 0 || f.num%f.den == 0 {
		return f.num / f.den
	}
	return (f.num - f.den + 1) / f.den
}

// Fract returns the fractional part, always in [0, 1).
func (f Frac) Fract() Frac {
	return f.Sub(Frac{f.Floor(), 1})
}

// Int is Floor narrowed to int for use as a cell coordinate.
func (f Frac) Int() int { return int(f.Floor()) }

func (f Frac) IsZero() bool { return f.num == 0 }

func (f Frac) Less(o Frac) bool {
	return f.num*o.den < o.num*f.den
}

func (f Frac) Float() float64 {
	return float64(f.num) / float64(f.den)
}
