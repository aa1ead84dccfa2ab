// Package meshing drives a geometry engine from boundary curves,
// groupings and electrodes, producing points, curves, loops, surfaces
// and physical groups.
package meshing

import (
	"fmt"
	"sort"

	"github.com/lamdangelo/sketchmesh/internal/domain"
	"github.com/lamdangelo/sketchmesh/internal/infra/logger"
	"github.com/lamdangelo/sketchmesh/internal/ports"
)

type CurveMesher struct{}

var _ ports.CurveMesher = (*CurveMesher)(nil)

func NewCurveMesher() *CurveMesher {
	return &CurveMesher{}
}

// MeshBoundaryCurves builds every curve in hole-first order, so that a
// container's plane surface can reference the already-built loops of its
// holes. Shared endpoints between curves reuse the same engine point.
func (m *CurveMesher) MeshBoundaryCurves(b ports.GeometryBuilder, curves []domain.BoundaryCurve, groupings []domain.Grouping) (domain.CurveMeshReport, error) {
	if len(curves) != len(groupings) {
		return domain.CurveMeshReport{}, &domain.OpError{
			Op:   "meshing.curves",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("got %d curves but %d groupings", len(curves), len(groupings)),
		}
	}

	order, ok := holeFirstOrder(groupings)
	report := domain.CurveMeshReport{
		Order:      order,
		CurveLoops: make(map[int]int, len(curves)),
		Surfaces:   make(map[int]int, len(curves)),
		Curves:     make(map[int][]int, len(curves)),
	}
	if !ok {
		report.FallbackOrder = true
		logger.L().Warn("meshing.containment_cycle", "curves", len(curves))
	}

	points := newPointRegistry(b)
	for _, idx := range order {
		if err := m.buildCurve(b, curves[idx], groupings[idx], idx, points, &report); err != nil {
			return domain.CurveMeshReport{}, err
		}
	}

	if err := m.tagPhysicalGroups(b, groupings, report); err != nil {
		return domain.CurveMeshReport{}, err
	}
	return report, nil
}

func (m *CurveMesher) buildCurve(b ports.GeometryBuilder, curve domain.BoundaryCurve, grouping domain.Grouping, idx int, points *pointRegistry, report *domain.CurveMeshReport) error {
	curveTags := make([]int, 0, curve.NumSegments())
	for _, seg := range curve.Segments() {
		ctrl := seg.ControlPoints()
		ptTags := make([]int, len(ctrl))
		for i, p := range ctrl {
			tag, err := points.tagFor(p)
			if err != nil {
				return err
			}
			ptTags[i] = tag
		}

		var tag int
		var err error
		if seg.Degree() == 1 {
			tag, err = b.AddLine(ptTags[0], ptTags[1])
		} else {
			tag, err = b.AddBezier(ptTags)
		}
		if err != nil {
			return err
		}
		curveTags = append(curveTags, tag)
	}

	loopTag, err := b.AddCurveLoop(curveTags)
	if err != nil {
		return err
	}

	loops := []int{loopTag}
	for _, hole := range grouping.Holes {
		holeLoop, ok := report.CurveLoops[hole]
		if !ok {
			return &domain.OpError{
				Op:   "meshing.curves",
				Kind: domain.KindDanglingHole,
				Err:  fmt.Errorf("curve %d lists hole %d, which has no curve loop yet", idx, hole),
			}
		}
		loops = append(loops, holeLoop)
	}
	surfaceTag, err := b.AddPlaneSurface(loops)
	if err != nil {
		return err
	}

	report.Curves[idx] = curveTags
	report.CurveLoops[idx] = loopTag
	report.Surfaces[idx] = surfaceTag
	return nil
}

// tagPhysicalGroups issues exactly one AddPhysicalGroup call per group
// value: boundary groups collect curve tags, domain groups collect
// surface tags, across every curve that carries the group.
func (m *CurveMesher) tagPhysicalGroups(b ports.GeometryBuilder, groupings []domain.Grouping, report domain.CurveMeshReport) error {
	type tagged struct {
		group domain.PhysicalGroup
		tags  []int
	}
	byValue := make(map[int]*tagged)

	for idx, grouping := range groupings {
		for _, g := range grouping.Groups {
			entry, ok := byValue[g.Value()]
			if !ok {
				entry = &tagged{group: g}
				byValue[g.Value()] = entry
			}
			if g.IsBoundary() {
				entry.tags = append(entry.tags, report.Curves[idx]...)
			} else {
				entry.tags = append(entry.tags, report.Surfaces[idx])
			}
		}
	}

	values := make([]int, 0, len(byValue))
	for v := range byValue {
		values = append(values, v)
	}
	sort.Ints(values)

	for _, v := range values {
		entry := byValue[v]
		dim := 2
		if entry.group.IsBoundary() {
			dim = 1
		}
		if err := b.AddPhysicalGroup(dim, dedupeInts(entry.tags), v); err != nil {
			return err
		}
	}
	return nil
}

// holeFirstOrder topologically sorts curve indices so every hole comes
// before its container, breaking ties by input index. The second return
// is false when a containment cycle forces a fallback to input order.
func holeFirstOrder(groupings []domain.Grouping) ([]int, bool) {
	n := len(groupings)
	indegree := make([]int, n)
	containers := make([][]int, n)
	for i, g := range groupings {
		indegree[i] = len(g.Holes)
		for _, h := range g.Holes {
			containers[h] = append(containers[h], i)
		}
	}

	ready := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if indegree[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, n)
	for len(ready) > 0 {
		sort.Ints(ready)
		cur := ready[0]
		ready = ready[1:]
		order = append(order, cur)
		for _, c := range containers[cur] {
			indegree[c]--
			if indegree[c] == 0 {
				ready = append(ready, c)
			}
		}
	}

	if len(order) != n {
		order = order[:0]
		for i := 0; i < n; i++ {
			order = append(order, i)
		}
		return order, false
	}
	return order, true
}

func dedupeInts(tags []int) []int {
	seen := make(map[int]struct{}, len(tags))
	out := make([]int, 0, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// pointRegistry deduplicates engine points globally: curves that share an
// endpoint get the same point tag.
type pointRegistry struct {
	b      ports.GeometryBuilder
	points []domain.Point
	tags   []int
}

func newPointRegistry(b ports.GeometryBuilder) *pointRegistry {
	return &pointRegistry{b: b}
}

func (r *pointRegistry) tagFor(p domain.Point) (int, error) {
	for i, q := range r.points {
		if p.Eq(q) {
			return r.tags[i], nil
		}
	}
	tag, err := r.b.AddPoint(p.X, p.Y)
	if err != nil {
		return 0, err
	}
	r.points = append(r.points, p)
	r.tags = append(r.tags, tag)
	return tag, nil
}
