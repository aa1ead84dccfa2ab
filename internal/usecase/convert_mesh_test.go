package usecase

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/lamdangelo/sketchmesh/internal/domain"
	"github.com/lamdangelo/sketchmesh/internal/ports"
)

type fakeSession struct {
	log    []string
	closed bool
}

func (s *fakeSession) record(op string) { s.log = append(s.log, op) }

func (s *fakeSession) AddPoint(x, y float64) (int, error) { s.record("point"); return 1, nil }

func (s *fakeSession) AddLine(a, b int) (int, error) { s.record("line"); return 1, nil }

func (s *fakeSession) AddBezier([]int) (int, error) { s.record("bezier"); return 1, nil }

func (s *fakeSession) AddCurveLoop([]int) (int, error) { s.record("loop"); return 1, nil }

func (s *fakeSession) AddPlaneSurface([]int) (int, error) { s.record("surface"); return 1, nil }

func (s *fakeSession) AddPhysicalGroup(int, []int, int) error { s.record("physical"); return nil }

func (s *fakeSession) Synchronize() error { s.record("sync"); return nil }

func (s *fakeSession) Generate(dim int) error {
	s.record(fmt.Sprintf("generate:%d", dim))
	return nil
}

func (s *fakeSession) Write(path string) error { s.record("write:" + path); return nil }

func (s *fakeSession) Close() error { s.closed = true; return nil }

type fakeEngine struct {
	session *fakeSession
	model   string
	size    float64
}

func (e *fakeEngine) Open(modelName string, meshSize float64) (ports.GeometrySession, error) {
	e.model = modelName
	e.size = meshSize
	return e.session, nil
}

type fakeGrouper struct {
	err error
}

func (f *fakeGrouper) GroupBoundaryCurves(curves []domain.BoundaryCurve) ([]domain.Grouping, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Grouping, len(curves))
	for i := range curves {
		out[i] = domain.Grouping{Groups: []domain.PhysicalGroup{domain.DomainVa}}
	}
	return out, nil
}

type fakeCurveMesher struct {
	called bool
}

func (f *fakeCurveMesher) MeshBoundaryCurves(b ports.GeometryBuilder, curves []domain.BoundaryCurve, groupings []domain.Grouping) (domain.CurveMeshReport, error) {
	f.called = true
	if _, err := b.AddPoint(0, 0); err != nil {
		return domain.CurveMeshReport{}, err
	}
	return domain.CurveMeshReport{Order: []int{0}}, nil
}

type fakeElectrodeMesher struct {
	called bool
}

func (f *fakeElectrodeMesher) MeshElectrodes(b ports.GeometryBuilder, cfg domain.SimulationConfig, electrodes []domain.Electrode) ([]domain.ElectrodeRecord, error) {
	f.called = true
	return nil, nil
}

func meshDeps(t *testing.T) (*ConvertMesh, *fakeEngine, *fakeCurveMesher) {
	t.Helper()
	extractor := &fakeExtractor{out: map[domain.Color][]domain.RawBoundary{
		domain.Black: {triangle(domain.Black)},
	}}
	geometry := NewConvertGeometry(extractor, &fakeDetector{}, &fakeFitter{})

	engine := &fakeEngine{session: &fakeSession{}}
	cm := &fakeCurveMesher{}
	uc := NewConvertMesh(geometry, &fakeGrouper{}, engine, cm, &fakeElectrodeMesher{})
	return uc, engine, cm
}

func TestConvertMeshHappyPath(t *testing.T) {
	uc, engine, cm := meshDeps(t)

	cfg := domain.DefaultSimulationConfig()
	result, err := uc.Execute(context.Background(), strings.NewReader(""), cfg, "model", "out/base")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if engine.model != "model" || engine.size != domain.DefaultMeshSize {
		t.Fatalf("engine opened with %q/%g", engine.model, engine.size)
	}
	if !cm.called {
		t.Fatalf("curve mesher not invoked")
	}
	if !engine.session.closed {
		t.Fatalf("session must be closed")
	}
	if result.Artifact != "out/base" {
		t.Fatalf("artifact path mismatch: %q", result.Artifact)
	}

	// The tail of the call sequence is fixed: sync, generate 2D, write.
	log := engine.session.log
	tail := log[len(log)-3:]
	want := []string{"sync", "generate:2", "write:out/base"}
	for i := range want {
		if tail[i] != want[i] {
			t.Fatalf("call sequence tail mismatch: %v", log)
		}
	}
}

func TestConvertMeshClosesSessionOnError(t *testing.T) {
	extractor := &fakeExtractor{out: map[domain.Color][]domain.RawBoundary{
		domain.Black: {triangle(domain.Black)},
	}}
	geometry := NewConvertGeometry(extractor, &fakeDetector{}, &fakeFitter{})

	engine := &fakeEngine{session: &fakeSession{}}
	grouper := &fakeGrouper{err: &domain.OpError{Op: "group", Kind: domain.KindUnknownColor}}
	uc := NewConvertMesh(geometry, grouper, engine, &fakeCurveMesher{}, &fakeElectrodeMesher{})

	_, err := uc.Execute(context.Background(), strings.NewReader(""), domain.DefaultSimulationConfig(), "m", "o")
	if !domain.IsKind(err, domain.KindUnknownColor) {
		t.Fatalf("expected grouper error, got %v", err)
	}
	if !engine.session.closed {
		t.Fatalf("session must be closed on the error path")
	}
}

func TestConvertMeshElectrodesBeforeCurves(t *testing.T) {
	uc, engine, _ := meshDeps(t)

	em := &fakeElectrodeMesher{}
	uc.electrodes = em

	if _, err := uc.Execute(context.Background(), strings.NewReader(""), domain.DefaultSimulationConfig(), "m", "o"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !em.called {
		t.Fatalf("electrode mesher not invoked")
	}
	_ = engine
}
