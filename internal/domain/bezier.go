package domain

import (
	"fmt"
	"math"
)

// BezierSegment is a single Bezier curve of degree len(control points)-1,
// evaluated over the Bernstein basis. Segments are immutable: control
// points are copied in and copied out.
type BezierSegment struct {
	ctrl []Point
}

// NewBezierSegment builds a segment from its ordered control points.
// At least two control points (degree 1) are required.
func NewBezierSegment(controlPoints []Point) (BezierSegment, error) {
	if len(controlPoints) < 2 {
		return BezierSegment{}, &OpError{
			Op:   "domain.new_bezier_segment",
			Kind: KindInvalidInput,
			Err:  fmt.Errorf("need at least 2 control points, got %d", len(controlPoints)),
		}
	}
	ctrl := make([]Point, len(controlPoints))
	copy(ctrl, controlPoints)
	return BezierSegment{ctrl: ctrl}, nil
}

func (s BezierSegment) Degree() int {
	return len(s.ctrl) - 1
}

// ControlPoints returns a copy of the ordered control points.
func (s BezierSegment) ControlPoints() []Point {
	out := make([]Point, len(s.ctrl))
	copy(out, s.ctrl)
	return out
}

// StartPoint is the first control point b_0.
func (s BezierSegment) StartPoint() Point { return s.ctrl[0] }

// EndPoint is the last control point b_n.
func (s BezierSegment) EndPoint() Point { return s.ctrl[len(s.ctrl)-1] }

// Evaluate returns the curve point C(t) for t in [0, 1].
func (s BezierSegment) Evaluate(t float64) Point {
	n := s.Degree()
	var out Point
	for i, cp := range s.ctrl {
		out = out.Add(cp.Scale(bernstein(i, n, t)))
	}
	return out
}

// Derivative returns dC/dt at parameter t in [0, 1].
func (s BezierSegment) Derivative(t float64) Point {
	n := s.Degree()
	if n == 0 {
		return Point{}
	}
	var out Point
	for i := 0; i < n; i++ {
		diff := s.ctrl[i+1].Sub(s.ctrl[i])
		out = out.Add(diff.Scale(float64(n) * bernstein(i, n-1, t)))
	}
	return out
}

// SamplePoints samples the segment at n uniformly spaced parameters,
// including both endpoints.
func (s BezierSegment) SamplePoints(n int) []Point {
	if n < 2 {
		n = 2
	}
	out := make([]Point, n)
	for i := 0; i < n; i++ {
		out[i] = s.Evaluate(float64(i) / float64(n-1))
	}
	return out
}

// bernstein computes the i-th Bernstein basis polynomial of degree n at t.
func bernstein(i, n int, t float64) float64 {
	return binomial(n, i) * math.Pow(t, float64(i)) * math.Pow(1-t, float64(n-i))
}

func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	out := 1.0
	for i := 0; i < k; i++ {
		out = out * float64(n-i) / float64(i+1)
	}
	return out
}
