package domain

import "fmt"

// C0Tolerance is the largest endpoint gap accepted between adjacent
// segments when a boundary curve is constructed. Fitting is expected to
// close gaps exactly; anything above this is a construction error, never
// silently tolerated.
const C0Tolerance = 1e-5

// cornerMatchTolerance is used when matching curve points against the
// recorded corner coordinates.
const cornerMatchTolerance = 1e-6

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

func (r Rect) Area() float64 {
	return (r.MaxX - r.MinX) * (r.MaxY - r.MinY)
}

// Contains reports whether o lies entirely inside r.
func (r Rect) Contains(o Rect) bool {
	return o.MinX >= r.MinX && o.MaxX <= r.MaxX &&
		o.MinY >= r.MinY && o.MaxY <= r.MaxY
}

// BoundaryCurve is one piecewise Bezier outline of a colored region. It is
// read-only after construction; grouping and meshing never mutate it.
type BoundaryCurve struct {
	segments []BezierSegment
	corners  []Point
	color    Color
	closed   bool
}

// NewBoundaryCurve builds a curve from fitted segments. Adjacent segments
// must share an endpoint within C0Tolerance.
func NewBoundaryCurve(segments []BezierSegment, corners []Point, color Color, closed bool) (BoundaryCurve, error) {
	if len(segments) == 0 {
		return BoundaryCurve{}, &OpError{
			Op:   "domain.new_boundary_curve",
			Kind: KindInvalidInput,
			Err:  fmt.Errorf("boundary curve must have at least one segment"),
		}
	}
	if color.IsZero() {
		return BoundaryCurve{}, &OpError{
			Op:   "domain.new_boundary_curve",
			Kind: KindUnknownColor,
			Err:  fmt.Errorf("boundary curve has no color"),
		}
	}
	for i := 0; i < len(segments)-1; i++ {
		gap := segments[i].EndPoint().DistanceTo(segments[i+1].StartPoint())
		if gap > C0Tolerance {
			return BoundaryCurve{}, &OpError{
				Op:   "domain.new_boundary_curve",
				Kind: KindGeometry,
				Err:  fmt.Errorf("discontinuity of %g between segments %d and %d", gap, i, i+1),
			}
		}
	}

	segs := make([]BezierSegment, len(segments))
	copy(segs, segments)
	crn := make([]Point, len(corners))
	copy(crn, corners)
	return BoundaryCurve{segments: segs, corners: crn, color: color, closed: closed}, nil
}

func (c BoundaryCurve) Segments() []BezierSegment {
	out := make([]BezierSegment, len(c.segments))
	copy(out, c.segments)
	return out
}

func (c BoundaryCurve) NumSegments() int { return len(c.segments) }

func (c BoundaryCurve) Corners() []Point {
	out := make([]Point, len(c.corners))
	copy(out, c.corners)
	return out
}

func (c BoundaryCurve) Color() Color { return c.color }

func (c BoundaryCurve) Closed() bool { return c.closed }

// ControlPoints returns all control points of all segments, including the
// duplicates at segment interfaces.
func (c BoundaryCurve) ControlPoints() []Point {
	var out []Point
	for _, s := range c.segments {
		out = append(out, s.ControlPoints()...)
	}
	return out
}

// UniqueControlPoints returns all control points with the interface
// duplicates removed.
func (c BoundaryCurve) UniqueControlPoints() []Point {
	var out []Point
	for i, s := range c.segments {
		ctrl := s.ControlPoints()
		if i > 0 {
			ctrl = ctrl[1:]
		}
		out = append(out, ctrl...)
	}
	return out
}

// Evaluate returns the curve point at global parameter t in [0, 1]. The
// parameter range is split uniformly across segments.
func (c BoundaryCurve) Evaluate(t float64) Point {
	seg, local := c.segmentAt(t)
	return c.segments[seg].Evaluate(local)
}

// Derivative returns the curve derivative at global parameter t, with the
// chain-rule factor for the per-segment reparameterization applied.
func (c BoundaryCurve) Derivative(t float64) Point {
	seg, local := c.segmentAt(t)
	return c.segments[seg].Derivative(local).Scale(float64(len(c.segments)))
}

// SamplePoints samples the whole curve at n uniformly spaced global
// parameters, including both endpoints.
func (c BoundaryCurve) SamplePoints(n int) []Point {
	if n < 2 {
		n = 2
	}
	out := make([]Point, n)
	for i := 0; i < n; i++ {
		out[i] = c.Evaluate(float64(i) / float64(n-1))
	}
	return out
}

// BoundingBox returns the bounding box of the control polygon. The control
// polygon encloses the curve, which is all containment testing needs.
func (c BoundaryCurve) BoundingBox() Rect {
	first := c.segments[0].StartPoint()
	box := Rect{MinX: first.X, MaxX: first.X, MinY: first.Y, MaxY: first.Y}
	for _, s := range c.segments {
		for _, p := range s.ControlPoints() {
			if p.X < box.MinX {
				box.MinX = p.X
			}
			if p.X > box.MaxX {
				box.MaxX = p.X
			}
			if p.Y < box.MinY {
				box.MinY = p.Y
			}
			if p.Y > box.MaxY {
				box.MaxY = p.Y
			}
		}
	}
	return box
}

// IsCornerJunction reports whether the junction between segments i and i+1
// coincides with a detected corner.
func (c BoundaryCurve) IsCornerJunction(i int) bool {
	if i < 0 || i >= len(c.segments)-1 {
		return false
	}
	junction := c.segments[i].EndPoint()
	for _, corner := range c.corners {
		if junction.DistanceTo(corner) < cornerMatchTolerance {
			return true
		}
	}
	return false
}

func (c BoundaryCurve) segmentAt(t float64) (idx int, local float64) {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	n := len(c.segments)
	idx = int(t * float64(n))
	if idx >= n {
		idx = n - 1
	}
	local = t*float64(n) - float64(idx)
	return idx, local
}
