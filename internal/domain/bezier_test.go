package domain

import (
	"math"
	"testing"
)

func quad(t *testing.T, p0, p1, p2 Point) BezierSegment {
	t.Helper()
	seg, err := NewBezierSegment([]Point{p0, p1, p2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return seg
}

func TestNewBezierSegmentNeedsTwoPoints(t *testing.T) {
	_, err := NewBezierSegment([]Point{Pt(0, 0)})
	if err == nil {
		t.Fatalf("expected error for single control point")
	}
}

func TestBezierEndpointInterpolation(t *testing.T) {
	seg := quad(t, Pt(0, 0), Pt(1, 2), Pt(2, 0))

	if p := seg.Evaluate(0); !p.Eq(Pt(0, 0)) {
		t.Fatalf("Evaluate(0): got %s", p)
	}
	if p := seg.Evaluate(1); !p.Eq(Pt(2, 0)) {
		t.Fatalf("Evaluate(1): got %s", p)
	}
}

func TestBezierMidpointOfQuadratic(t *testing.T) {
	seg := quad(t, Pt(0, 0), Pt(1, 2), Pt(2, 0))

	// B(0.5) = 0.25 p0 + 0.5 p1 + 0.25 p2
	mid := seg.Evaluate(0.5)
	if !mid.Eq(Pt(1, 1)) {
		t.Fatalf("Evaluate(0.5): got %s", mid)
	}
}

func TestBezierDerivativeAtEndpoints(t *testing.T) {
	seg := quad(t, Pt(0, 0), Pt(1, 2), Pt(2, 0))

	// Quadratic derivative at t=0 is 2(p1-p0).
	d0 := seg.Derivative(0)
	if !d0.Eq(Pt(2, 4)) {
		t.Fatalf("Derivative(0): got %s", d0)
	}
	d1 := seg.Derivative(1)
	if !d1.Eq(Pt(2, -4)) {
		t.Fatalf("Derivative(1): got %s", d1)
	}
}

func TestBezierControlPointsAreCopied(t *testing.T) {
	ctrl := []Point{Pt(0, 0), Pt(1, 1), Pt(2, 0)}
	seg := quad(t, ctrl[0], ctrl[1], ctrl[2])

	got := seg.ControlPoints()
	got[1] = Pt(99, 99)
	if !seg.ControlPoints()[1].Eq(Pt(1, 1)) {
		t.Fatalf("mutating the returned slice must not affect the segment")
	}
}

func TestBezierSamplePointsEndpoints(t *testing.T) {
	seg := quad(t, Pt(0, 0), Pt(1, 2), Pt(2, 0))
	samples := seg.SamplePoints(11)
	if len(samples) != 11 {
		t.Fatalf("expected 11 samples, got %d", len(samples))
	}
	if !samples[0].Eq(seg.StartPoint()) || !samples[10].Eq(seg.EndPoint()) {
		t.Fatalf("samples must span the full segment")
	}
	for i := 1; i < len(samples); i++ {
		if math.IsNaN(samples[i].X) || math.IsNaN(samples[i].Y) {
			t.Fatalf("sample %d is NaN", i)
		}
	}
}
