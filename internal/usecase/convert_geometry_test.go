package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/lamdangelo/sketchmesh/internal/domain"
)

type fakeExtractor struct {
	out map[domain.Color][]domain.RawBoundary
	err error
}

func (f *fakeExtractor) ExtractBoundariesByColor(io.Reader) (map[domain.Color][]domain.RawBoundary, error) {
	return f.out, f.err
}

type fakeDetector struct {
	calls   int
	corners []int
}

func (f *fakeDetector) DetectCorners(points []domain.Point, closed bool) ([]int, error) {
	f.calls++
	return f.corners, nil
}

type fakeFitter struct {
	calls  []domain.Color
	failOn domain.Color
}

func (f *fakeFitter) FitBoundaryCurve(points []domain.Point, corners []int, color domain.Color, closed bool) (domain.BoundaryCurve, error) {
	f.calls = append(f.calls, color)
	if color == f.failOn {
		return domain.BoundaryCurve{}, &domain.OpError{Op: "fit", Kind: domain.KindTooFewPoints, Err: fmt.Errorf("fail")}
	}
	seg, err := domain.NewBezierSegment([]domain.Point{points[0], points[len(points)-1]})
	if err != nil {
		return domain.BoundaryCurve{}, err
	}
	return domain.NewBoundaryCurve([]domain.BezierSegment{seg}, nil, color, false)
}

func triangle(color domain.Color) domain.RawBoundary {
	return domain.RawBoundary{
		Points: []domain.Point{domain.Pt(0, 0), domain.Pt(1, 0), domain.Pt(0.5, 1)},
		Color:  color,
		Closed: true,
	}
}

func TestConvertGeometrySeparatesElectrodes(t *testing.T) {
	extractor := &fakeExtractor{out: map[domain.Color][]domain.RawBoundary{
		domain.Black: {triangle(domain.Black)},
		domain.Red: {{
			Points: []domain.Point{domain.Pt(0.5, 0.5)},
			Color:  domain.Red,
			Closed: true,
		}},
	}}
	detector := &fakeDetector{}
	fitter := &fakeFitter{}

	uc := NewConvertGeometry(extractor, detector, fitter)
	result, err := uc.Execute(context.Background(), strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Curves) != 1 {
		t.Fatalf("expected 1 curve, got %d", len(result.Curves))
	}
	if len(result.Electrodes) != 1 {
		t.Fatalf("expected 1 electrode, got %d", len(result.Electrodes))
	}
	if !result.Electrodes[0].Center.Eq(domain.Pt(0.5, 0.5)) {
		t.Fatalf("electrode center mismatch: %s", result.Electrodes[0].Center)
	}
	if detector.calls != 1 {
		t.Fatalf("red boundaries must not reach the corner detector, got %d calls", detector.calls)
	}
}

func TestConvertGeometryDeterministicColorOrder(t *testing.T) {
	extractor := &fakeExtractor{out: map[domain.Color][]domain.RawBoundary{
		domain.Green: {triangle(domain.Green)},
		domain.Black: {triangle(domain.Black)},
		domain.Blue:  {triangle(domain.Blue)},
	}}
	fitter := &fakeFitter{}

	uc := NewConvertGeometry(extractor, &fakeDetector{}, fitter)
	if _, err := uc.Execute(context.Background(), strings.NewReader("")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.Color{domain.Black, domain.Blue, domain.Green}
	if len(fitter.calls) != len(want) {
		t.Fatalf("expected %d fits, got %d", len(want), len(fitter.calls))
	}
	for i := range want {
		if fitter.calls[i] != want[i] {
			t.Fatalf("fit %d: expected %s, got %s", i, want[i], fitter.calls[i])
		}
	}
}

func TestConvertGeometryPropagatesExtractorError(t *testing.T) {
	extractor := &fakeExtractor{err: &domain.OpError{Op: "x", Kind: domain.KindInvalidInput}}

	uc := NewConvertGeometry(extractor, &fakeDetector{}, &fakeFitter{})
	_, err := uc.Execute(context.Background(), strings.NewReader(""))
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected extractor error, got %v", err)
	}
}

func TestConvertGeometryPropagatesFitError(t *testing.T) {
	extractor := &fakeExtractor{out: map[domain.Color][]domain.RawBoundary{
		domain.Blue: {triangle(domain.Blue)},
	}}
	fitter := &fakeFitter{failOn: domain.Blue}

	uc := NewConvertGeometry(extractor, &fakeDetector{}, fitter)
	_, err := uc.Execute(context.Background(), strings.NewReader(""))
	if !domain.IsKind(err, domain.KindTooFewPoints) {
		t.Fatalf("expected fit error, got %v", err)
	}
}

func TestConvertGeometryHonorsContextCancel(t *testing.T) {
	extractor := &fakeExtractor{out: map[domain.Color][]domain.RawBoundary{
		domain.Blue: {triangle(domain.Blue)},
	}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uc := NewConvertGeometry(extractor, &fakeDetector{}, &fakeFitter{})
	if _, err := uc.Execute(ctx, strings.NewReader("")); err == nil {
		t.Fatalf("expected context error")
	}
}
