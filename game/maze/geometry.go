package maze

import (
	"math"

	"github.com/beka-birhanu/vinom-maze/game"
)

const (
	tau = 2 * math.Pi

	// Default radial layout: the outer wall sits at radius 1 and the
	// innermost ring starts at 20% of it.
	defaultOuterRadius = 1.0
	defaultInnerRadius = 0.2
)

// CellCount returns the number of cells in ring r.
func CellCount(ring int) int {
	return (ring + 2) * 6
}

// CellToAngle returns the angle of the middle of a cell's arc.
func CellToAngle(ring, cell int) float64 {
	return (float64(cell) + 0.5) * tau / float64(CellCount(ring))
}

// AngleToCell returns the cell of ring whose arc contains angle.
func AngleToCell(ring int, angle float64) int {
	n := CellCount(ring)
	c := int(math.Floor(normalizeAngle(angle) * float64(n) / tau))
	return max(0, min(n-1, c))
}

// normalizeAngle maps a into [0, 2π).
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, tau)
	if a < 0 {
		a += tau
	}
	if a >= tau {
		a = 0
	}
	return a
}

// angleBetween reports whether angle lies on the arc running counter-clockwise
// from start to end, bounds included.
func angleBetween(angle, start, end float64) bool {
	angle, start, end = normalizeAngle(angle), normalizeAngle(start), normalizeAngle(end)
	if start <= end {
		return angle >= start && angle <= end
	}
	return angle >= start || angle <= end
}

// angleStrictlyBetween is angleBetween without the bounds.
func angleStrictlyBetween(angle, start, end float64) bool {
	angle, start, end = normalizeAngle(angle), normalizeAngle(start), normalizeAngle(end)
	if start < end {
		return angle > start && angle < end
	}
	return angle > start || angle < end
}

// arcMidpoint returns the middle of the shorter arc between a and b.
func arcMidpoint(a, b float64) float64 {
	a, b = normalizeAngle(a), normalizeAngle(b)
	mid := (a + b) / 2
	if math.Abs(a-b) > math.Pi {
		mid += math.Pi
	}
	return normalizeAngle(mid)
}

// shorterArc orders a and b so that the counter-clockwise arc from the first to
// the second is the shorter one.
func shorterArc(a, b float64) (float64, float64) {
	d := normalizeAngle(b - a)
	if d <= math.Pi {
		return a, b
	}
	return b, a
}

// Polar is a location relative to the center of a radial maze.
type Polar struct {
	Angle  float64 `json:"angle" yaml:"angle"`
	Radius float64 `json:"radius" yaml:"radius"`
}

// PolarLayout maps ring/cell coordinates onto concentric bands between
// InnerRadius and OuterRadius.
type PolarLayout struct {
	Rings       int
	InnerRadius float64
	OuterRadius float64
}

// NewPolarLayout returns the normalized layout used by the radial mazes.
func NewPolarLayout(rings int) PolarLayout {
	return PolarLayout{
		Rings:       rings,
		InnerRadius: defaultInnerRadius,
		OuterRadius: defaultOuterRadius,
	}
}

// Scaled returns the same layout with both radii multiplied by s, e.g. to
// convert to pixels.
func (l PolarLayout) Scaled(s float64) PolarLayout {
	return PolarLayout{Rings: l.Rings, InnerRadius: l.InnerRadius * s, OuterRadius: l.OuterRadius * s}
}

// RingWidth returns the radial thickness of one ring.
func (l PolarLayout) RingWidth() float64 {
	return (l.OuterRadius - l.InnerRadius) / float64(l.Rings)
}

// Radii returns the Rings+1 boundary radii from the innermost outwards.
func (l PolarLayout) Radii() []float64 {
	radii := make([]float64, l.Rings+1)
	for i := range radii {
		radii[i] = l.InnerRadius + float64(i)*l.RingWidth()
	}
	return radii
}

// CellCenter returns the polar middle of a cell. Center maps to the origin.
func (l PolarLayout) CellCenter(pos game.CellPosition) Polar {
	if pos.IsCenter() {
		return Polar{}
	}
	return Polar{
		Angle:  CellToAngle(pos.Ring(), pos.Cell()),
		Radius: l.InnerRadius + (float64(pos.Ring())+0.5)*l.RingWidth(),
	}
}

// ToPoint converts a polar location into layout coordinates.
func (p Polar) ToPoint() game.Point {
	return game.Point{X: p.Radius * math.Cos(p.Angle), Y: p.Radius * math.Sin(p.Angle)}
}

// PointToGrid resolves an offset from the maze center to a cell.
// Points inside the innermost boundary give game.Center, points past the
// outer wall give game.OutOfBounds.
func (l PolarLayout) PointToGrid(x, y float64) game.CellPosition {
	dist := math.Hypot(x, y)
	if dist < l.InnerRadius {
		return game.Center
	}
	if dist > l.OuterRadius {
		return game.OutOfBounds
	}

	ring := int(math.Floor((dist - l.InnerRadius) / l.RingWidth()))
	ring = max(0, min(l.Rings-1, ring))
	return game.RingCell(ring, AngleToCell(ring, math.Atan2(y, x)))
}

// radialCells lists every cell of a radial maze with the given ring count.
func radialCells(rings int) []game.CellPosition {
	var cells []game.CellPosition
	for r := 0; r < rings; r++ {
		for c := 0; c < CellCount(r); c++ {
			cells = append(cells, game.RingCell(r, c))
		}
	}
	return cells
}

// inRadialBounds reports whether pos is a real cell of a maze with the given ring count.
func inRadialBounds(rings int, pos game.CellPosition) bool {
	return pos.Ring() >= 0 && pos.Ring() < rings && pos.Cell() >= 0 && pos.Cell() < CellCount(pos.Ring())
}
