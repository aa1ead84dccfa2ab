package bezierfit

import (
	"math"
	"testing"

	"github.com/lamdangelo/sketchmesh/internal/domain"
)

// sparseSquare samples a unit square with 5 points per side.
func sparseSquare() (points []domain.Point, corners []int) {
	for i := 0; i < 5; i++ {
		t := float64(i) / 5
		points = append(points, domain.Pt(t, 0))
	}
	for i := 0; i < 5; i++ {
		t := float64(i) / 5
		points = append(points, domain.Pt(1, t))
	}
	for i := 0; i < 5; i++ {
		t := float64(i) / 5
		points = append(points, domain.Pt(1-t, 1))
	}
	for i := 0; i < 5; i++ {
		t := float64(i) / 5
		points = append(points, domain.Pt(0, 1-t))
	}
	return points, []int{0, 5, 10, 15}
}

func TestFitSparseSquareOneSegmentPerEdge(t *testing.T) {
	points, corners := sparseSquare()

	f := NewFitter()
	curve, err := f.FitBoundaryCurve(points, corners, domain.Black, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Corner spacing is below the synthesis separation, so no extra
	// boundaries appear: one segment per edge.
	if curve.NumSegments() != 4 {
		t.Fatalf("expected 4 segments, got %d", curve.NumSegments())
	}
	if len(curve.Corners()) != 4 {
		t.Fatalf("expected 4 corner points, got %d", len(curve.Corners()))
	}

	// Each edge is straight: interior control points collinear with the
	// segment endpoints.
	for i, seg := range curve.Segments() {
		ctrl := seg.ControlPoints()
		first, last := ctrl[0], ctrl[len(ctrl)-1]
		chord := last.Sub(first)
		for _, p := range ctrl[1 : len(ctrl)-1] {
			d := p.Sub(first)
			cross := chord.X*d.Y - chord.Y*d.X
			if math.Abs(cross) > 1e-6 {
				t.Fatalf("segment %d: control point %s off the edge line (cross %g)", i, p, cross)
			}
		}
	}
}

func TestFitEnforcesC0(t *testing.T) {
	points, corners := sparseSquare()

	f := NewFitter()
	curve, err := f.FitBoundaryCurve(points, corners, domain.Blue, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	segs := curve.Segments()
	for i := 1; i < len(segs); i++ {
		gap := segs[i-1].EndPoint().DistanceTo(segs[i].StartPoint())
		if gap > 1e-9 {
			t.Fatalf("junction %d: gap %g", i, gap)
		}
	}
	// Closed curve: the weld joins the last segment back to the first.
	gap := segs[len(segs)-1].EndPoint().DistanceTo(segs[0].StartPoint())
	if gap > 1e-9 {
		t.Fatalf("closing junction: gap %g", gap)
	}
}

func TestFitTooFewDistinctPoints(t *testing.T) {
	p := domain.Pt(0.5, 0.5)
	points := []domain.Point{p, p, p, p, p}

	f := NewFitter()
	_, err := f.FitBoundaryCurve(points, nil, domain.Black, true)
	if !domain.IsKind(err, domain.KindTooFewPoints) {
		t.Fatalf("expected too-few-points kind, got %v", err)
	}
}

func TestEnforceContinuityReducesTangentError(t *testing.T) {
	// Two quadratics meeting at (1, 0) with mismatched tangents.
	s1, err := domain.NewBezierSegment([]domain.Point{
		domain.Pt(0, 0), domain.Pt(0.5, 0.4), domain.Pt(1, 0),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s2, err := domain.NewBezierSegment([]domain.Point{
		domain.Pt(1, 0), domain.Pt(1.5, 0.9), domain.Pt(2, 0),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	before := tangentMismatch(s1, s2)
	out, err := EnforceContinuity([]domain.BezierSegment{s1, s2}, nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after := tangentMismatch(out[0], out[1])

	if !out[0].EndPoint().Eq(out[1].StartPoint()) {
		t.Fatalf("junction must be C0 after the pass")
	}
	if after >= before {
		t.Fatalf("tangent mismatch must shrink: before %g, after %g", before, after)
	}
}

func TestEnforceContinuitySkipsCornerJunctions(t *testing.T) {
	s1, _ := domain.NewBezierSegment([]domain.Point{
		domain.Pt(0, 0), domain.Pt(0.5, 0), domain.Pt(1, 0),
	})
	s2, _ := domain.NewBezierSegment([]domain.Point{
		domain.Pt(1, 0), domain.Pt(1, 0.5), domain.Pt(1, 1),
	})

	isCorner := func(j int) bool { return j == 1 }
	out, err := EnforceContinuity([]domain.BezierSegment{s1, s2}, isCorner, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The corner junction keeps its interior control points: the right
	// angle survives.
	if !out[0].ControlPoints()[1].Eq(domain.Pt(0.5, 0)) {
		t.Fatalf("corner junction must not move the previous interior point")
	}
	if !out[1].ControlPoints()[1].Eq(domain.Pt(1, 0.5)) {
		t.Fatalf("corner junction must not move the next interior point")
	}
}

// tangentMismatch measures the difference between the outgoing and
// incoming tangent directions at the junction of two segments.
func tangentMismatch(a, b domain.BezierSegment) float64 {
	ta := a.Derivative(1).Normalize()
	tb := b.Derivative(0).Normalize()
	return ta.Sub(tb).Norm()
}

func TestSolveLinearIdentity(t *testing.T) {
	m := [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	rhs := []float64{3, -2, 7}
	x, ok := solveLinear(m, rhs)
	if !ok {
		t.Fatalf("identity system must be solvable")
	}
	for i := range rhs {
		if math.Abs(x[i]-rhs[i]) > 1e-12 {
			t.Fatalf("x[%d]: expected %g, got %g", i, rhs[i], x[i])
		}
	}
}

func TestSolveLinearSingular(t *testing.T) {
	m := [][]float64{{1, 2}, {2, 4}}
	if _, ok := solveLinear(m, []float64{1, 2}); ok {
		t.Fatalf("singular system must report failure")
	}
}
