package domain

import (
	"fmt"
	"math"
)

// PointTolerance is the absolute tolerance used when comparing coordinates.
const PointTolerance = 1e-9

// Point is a position in 2D space. Points are value types; all operations
// return new points.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y) without validation. Use NewPoint for
// coordinates coming from untrusted input.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// NewPoint validates and returns the point (x, y). NaN coordinates are
// rejected.
func NewPoint(x, y float64) (Point, error) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return Point{}, &OpError{
			Op:   "domain.new_point",
			Kind: KindInvalidInput,
			Err:  fmt.Errorf("coordinates cannot be NaN: (%v, %v)", x, y),
		}
	}
	return Point{X: x, Y: y}, nil
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Norm returns the Euclidean norm of p interpreted as a vector.
func (p Point) Norm() float64 {
	return math.Hypot(p.X, p.Y)
}

// Normalize returns the unit vector in the direction of p, or the zero
// point if p is degenerate.
func (p Point) Normalize() Point {
	n := p.Norm()
	if n < 1e-12 {
		return Point{}
	}
	return p.Scale(1 / n)
}

func (p Point) DistanceTo(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// Midpoint returns the midpoint of two points.
func (p Point) Midpoint(o Point) Point {
	return Point{X: 0.5 * (p.X + o.X), Y: 0.5 * (p.Y + o.Y)}
}

// Lerp linearly interpolates between p and o.
func (p Point) Lerp(o Point, t float64) Point {
	return Point{X: p.X + (o.X-p.X)*t, Y: p.Y + (o.Y-p.Y)*t}
}

// Eq reports whether two points coincide within tolerance.
func (p Point) Eq(o Point) bool {
	return closeTo(p.X, o.X) && closeTo(p.Y, o.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func closeTo(a, b float64) bool {
	diff := math.Abs(a - b)
	if diff <= PointTolerance {
		return true
	}
	return diff <= PointTolerance*math.Max(math.Abs(a), math.Abs(b))
}
