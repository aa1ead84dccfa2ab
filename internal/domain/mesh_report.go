package domain

import "fmt"

// CurveMeshReport records the engine tags created for one mesh run of the
// boundary curves. It is owned by a single run and queryable afterwards.
type CurveMeshReport struct {
	// Order is the sequence of curve indices in which the curves were
	// built (holes before their containers).
	Order []int

	// FallbackOrder is true when a containment cycle prevented a
	// topological order and the curves were built in input order instead.
	FallbackOrder bool

	CurveLoops map[int]int
	Surfaces   map[int]int
	Curves     map[int][]int
}

// CurveLoopTag returns the engine curve-loop tag built for curve idx.
func (r CurveMeshReport) CurveLoopTag(idx int) (int, error) {
	tag, ok := r.CurveLoops[idx]
	if !ok {
		return 0, &OpError{Op: "domain.mesh_report", Kind: KindNotFound, Err: fmt.Errorf("no curve loop for curve %d", idx)}
	}
	return tag, nil
}

// SurfaceTag returns the engine surface tag built for curve idx.
func (r CurveMeshReport) SurfaceTag(idx int) (int, error) {
	tag, ok := r.Surfaces[idx]
	if !ok {
		return 0, &OpError{Op: "domain.mesh_report", Kind: KindNotFound, Err: fmt.Errorf("no surface for curve %d", idx)}
	}
	return tag, nil
}

// CurveTags returns the engine curve tags built for curve idx.
func (r CurveMeshReport) CurveTags(idx int) ([]int, error) {
	tags, ok := r.Curves[idx]
	if !ok {
		return nil, &OpError{Op: "domain.mesh_report", Kind: KindNotFound, Err: fmt.Errorf("no curves for curve %d", idx)}
	}
	out := make([]int, len(tags))
	copy(out, tags)
	return out, nil
}

// ElectrodeRecord describes one meshed electrode in sorted (reading)
// order.
type ElectrodeRecord struct {
	// Index is the 0-based position in the sorted electrode order.
	Index int

	Center   Point
	CoilName string
	PointTag int
	Group    PhysicalGroup
}
