package tcss

import "math"

// Unit is the dimension a Scalar is expressed in.
type Unit uint8

const (
	UnitCells Unit = iota
	UnitFraction
	UnitPercent
	UnitWidth      // % of viewport width
	UnitHeight     // % of viewport height
	UnitViewWidth  // vw, % of viewport width
	UnitViewHeight // vh, % of viewport height
	UnitAuto
)

func (u Unit) String() string {
	switch u {
	case UnitCells:
		return ""
	case UnitFraction:
		return "fr"
	case UnitPercent:
		return "%"
	case UnitWidth:
		return "w"
	case UnitHeight:
		return "h"
	case UnitViewWidth:
		return "vw"
	case UnitViewHeight:
		return "vh"
	case UnitAuto:
		return "auto"
	}
	return "?"
}

// Scalar is a dimension value with its unit.
type Scalar struct {
	Value float64
	Unit  Unit
}

func Cells(n int) Scalar       { return Scalar{float64(n), UnitCells} }
func Fr(v float64) Scalar      { return Scalar{v, UnitFraction} }
func Percent(v float64) Scalar { return Scalar{v, UnitPercent} }
func Auto() Scalar             { return Scalar{0, UnitAuto} }

func (s Scalar) IsAuto() bool     { return s.Unit == UnitAuto }
func (s Scalar) IsFraction() bool { return s.Unit == UnitFraction }

// Resolve converts the scalar to whole cells. availMain is the container
// extent on the scalar's own axis; viewport backs the w/h/vw/vh units,
// which deliberately ignore the parent so a widget can claim a share of
// the screen from deep in the tree. Fraction and auto have no standalone
// size and resolve to the full available extent; layouts handle them
// before calling here. Results never go below zero.
func (s Scalar) Resolve(availMain int, viewport Size) int {
	if s.Unit == UnitFraction || s.Unit == UnitAuto {
		return max(0, availMain)
	}
	return max(0, int(math.Round(s.resolveF(availMain, viewport))))
}

// resolveF is Resolve before rounding, for layouts that carry the
// fractional remainder of one child's extent into the next.
func (s Scalar) resolveF(availMain int, viewport Size) float64 {
	var v float64
	switch s.Unit {
	case UnitCells:
		v = s.Value
	case UnitPercent:
		v = s.Value / 100 * float64(availMain)
	case UnitWidth, UnitViewWidth:
		v = s.Value / 100 * float64(viewport.Width)
	case UnitHeight, UnitViewHeight:
		v = s.Value / 100 * float64(viewport.Height)
	case UnitFraction, UnitAuto:
		v = float64(availMain)
	}
	return math.Max(0, v)
}
