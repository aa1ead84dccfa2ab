package bezierfit

import (
	"github.com/lamdangelo/sketchmesh/internal/domain"
)

// fitSegment fits one Bezier segment to points[start..end]. Classification
// order is fixed: corner-region, then straight-edge, then curved.
func (f *Fitter) fitSegment(points []domain.Point, start, end int, corners []int, closed bool) (domain.BezierSegment, error) {
	n := len(points)
	segPoints := points[start : end+1]

	radius := cornerRadius(n)
	if insideCornerWindow(start, end, corners, radius, n, closed) {
		return f.chordDampedFit(segPoints)
	}
	if spansConsecutiveCorners(start, end, corners) {
		return f.chordDampedFit(segPoints)
	}
	return f.leastSquaresFit(segPoints)
}

// cornerRadius is the half-width, in sample indices, of the window around
// a corner treated as corner region.
func cornerRadius(n int) int {
	r := n / 20
	if r > 20 {
		r = 20
	}
	return r
}

// insideCornerWindow reports whether [start, end] lies wholly inside the
// radius window of a single corner, accounting for wrap-around on closed
// curves.
func insideCornerWindow(start, end int, corners []int, radius, n int, closed bool) bool {
	if radius <= 0 {
		return false
	}
	for _, c := range corners {
		shifts := []int{0}
		if closed {
			shifts = []int{0, n, -n}
		}
		for _, shift := range shifts {
			cc := c + shift
			if start >= cc-radius && end <= cc+radius {
				return true
			}
		}
	}
	return false
}

// spansConsecutiveCorners reports whether the segment runs exactly from
// one corner to the next (a straight edge of the sketch).
func spansConsecutiveCorners(start, end int, corners []int) bool {
	for i := 0; i < len(corners)-1; i++ {
		if corners[i] == start && corners[i+1] == end {
			return true
		}
	}
	return false
}

// chordDampedFit places interior control points near the straight line
// between the endpoints: each interior candidate (a sample at its
// parameter position) is pulled chordDamping of the way to the chord.
// Used for corner-region and straight-edge segments, where a free fit
// overshoots.
func (f *Fitter) chordDampedFit(segPoints []domain.Point) (domain.BezierSegment, error) {
	first := segPoints[0]
	last := segPoints[len(segPoints)-1]

	ctrl := make([]domain.Point, f.degree+1)
	ctrl[0] = first
	ctrl[f.degree] = last
	for i := 1; i < f.degree; i++ {
		t := float64(i) / float64(f.degree)
		candidate := segPoints[int(t*float64(len(segPoints)-1))]
		onChord := first.Lerp(last, t)
		ctrl[i] = candidate.Lerp(onChord, chordDamping)
	}
	return domain.NewBezierSegment(ctrl)
}

// leastSquaresFit solves the Bernstein-basis least-squares system over
// all samples of the segment, falling back to direct interpolation when
// the system is too small or singular.
func (f *Fitter) leastSquaresFit(segPoints []domain.Point) (domain.BezierSegment, error) {
	n := len(segPoints)
	unknowns := f.degree + 1
	if n <= unknowns {
		return f.directFit(segPoints)
	}

	// Normal equations M c = A^T b with a tiny ridge term for numerical
	// stability.
	basis := make([][]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		row := make([]float64, unknowns)
		for j := 0; j < unknowns; j++ {
			row[j] = bernsteinBasis(j, f.degree, t)
		}
		basis[i] = row
	}

	m := make([][]float64, unknowns)
	rhsX := make([]float64, unknowns)
	rhsY := make([]float64, unknowns)
	for j := 0; j < unknowns; j++ {
		m[j] = make([]float64, unknowns)
		for k := 0; k < unknowns; k++ {
			var sum float64
			for i := 0; i < n; i++ {
				sum += basis[i][j] * basis[i][k]
			}
			m[j][k] = sum
		}
		m[j][j] += 1e-8
		for i := 0; i < n; i++ {
			rhsX[j] += basis[i][j] * segPoints[i].X
			rhsY[j] += basis[i][j] * segPoints[i].Y
		}
	}

	cx, okX := solveLinear(m, rhsX)
	cy, okY := solveLinear(m, rhsY)
	if !okX || !okY {
		return f.directFit(segPoints)
	}

	ctrl := make([]domain.Point, unknowns)
	for i := 0; i < unknowns; i++ {
		ctrl[i] = domain.Pt(cx[i], cy[i])
	}
	return domain.NewBezierSegment(ctrl)
}

// directFit interpolates control points straight from the samples: the
// two endpoints plus, for a quadratic, the middle sample.
func (f *Fitter) directFit(segPoints []domain.Point) (domain.BezierSegment, error) {
	n := len(segPoints)
	first := segPoints[0]
	last := segPoints[n-1]

	ctrl := make([]domain.Point, f.degree+1)
	ctrl[0] = first
	ctrl[f.degree] = last
	for i := 1; i < f.degree; i++ {
		t := float64(i) / float64(f.degree)
		if n == 2 {
			ctrl[i] = first.Lerp(last, t)
		} else {
			ctrl[i] = segPoints[int(t*float64(n-1))]
		}
	}
	return domain.NewBezierSegment(ctrl)
}
