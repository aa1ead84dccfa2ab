// Package grouping discovers the containment hierarchy among boundary
// curves and assigns physical groups from the fixed vocabulary.
package grouping

import (
	"fmt"
	"math"
	"sort"

	"github.com/lamdangelo/sketchmesh/internal/domain"
	"github.com/lamdangelo/sketchmesh/internal/ports"
)

const (
	// containmentSamples is how densely a candidate container is sampled
	// for the ray-casting test.
	containmentSamples = 1000

	// probeSamples is how many points of the inner curve are tested
	// against the container.
	probeSamples = 10

	edgeTolerance = 1e-10
)

type Grouper struct{}

var _ ports.CurveGrouper = (*Grouper)(nil)

func NewGrouper() *Grouper {
	return &Grouper{}
}

type classification int

const (
	classVa classification = iota
	classViIron
	classViAir
)

// GroupBoundaryCurves returns, per input curve and in input order, the
// indices of the curves that are holes in it plus its physical groups.
func (g *Grouper) GroupBoundaryCurves(curves []domain.BoundaryCurve) ([]domain.Grouping, error) {
	if len(curves) == 0 {
		return nil, nil
	}

	classes := make([]classification, len(curves))
	boxes := make([]domain.Rect, len(curves))
	for i, c := range curves {
		cls, err := classifyColor(c.Color())
		if err != nil {
			return nil, err
		}
		classes[i] = cls

		if len(c.ControlPoints()) == 0 {
			return nil, &domain.OpError{
				Op:   "grouping.group",
				Kind: domain.KindGeometry,
				Err:  fmt.Errorf("curve %d has no control points", i),
			}
		}
		boxes[i] = c.BoundingBox()
	}

	holes := containmentForest(curves, boxes)
	outermost := outermostIndex(holes, boxes)

	out := make([]domain.Grouping, len(curves))
	for i := range curves {
		groups := make([]domain.PhysicalGroup, 0, 3)
		switch classes[i] {
		case classVa:
			if vaInsideVi(i, curves, classes) {
				groups = append(groups, domain.BoundaryGamma)
			}
			groups = append(groups, domain.DomainVa)
		case classViIron:
			groups = append(groups, domain.DomainViIron)
		case classViAir:
			groups = append(groups, domain.DomainViAir)
		}
		if i == outermost {
			groups = append(groups, domain.BoundaryOut)
		}
		out[i] = domain.Grouping{Holes: holes[i], Groups: groups}
	}
	return out, nil
}

func classifyColor(c domain.Color) (classification, error) {
	switch c {
	case domain.Black:
		return classVa, nil
	case domain.Blue:
		return classViIron, nil
	case domain.Green:
		return classViAir, nil
	default:
		return 0, &domain.OpError{
			Op:   "grouping.classify",
			Kind: domain.KindUnknownColor,
			Err:  fmt.Errorf("no domain meaning for curve color %q", c.Name()),
		}
	}
}

// containmentForest records, per curve, the indices of the curves it is
// the immediate parent of. Curves are scanned in bounding-box-area order,
// largest first; an (outer, inner) pair is recorded only when no curve
// between them in that order also contains the inner one.
func containmentForest(curves []domain.BoundaryCurve, boxes []domain.Rect) [][]int {
	n := len(curves)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return boxes[order[a]].Area() > boxes[order[b]].Area()
	})

	holes := make([][]int, n)
	for oi := 0; oi < n; oi++ {
		outer := order[oi]
		for ii := oi + 1; ii < n; ii++ {
			inner := order[ii]
			if !curveInside(curves[inner], curves[outer], boxes[inner], boxes[outer]) {
				continue
			}
			closerParent := false
			for mi := oi + 1; mi < ii; mi++ {
				mid := order[mi]
				if curveInside(curves[inner], curves[mid], boxes[inner], boxes[mid]) {
					closerParent = true
					break
				}
			}
			if !closerParent {
				holes[outer] = append(holes[outer], inner)
			}
		}
	}
	for i := range holes {
		sort.Ints(holes[i])
	}
	return holes
}

// outermostIndex returns the parentless curve with the largest bounding
// box area.
func outermostIndex(holes [][]int, boxes []domain.Rect) int {
	hasParent := make([]bool, len(boxes))
	for _, children := range holes {
		for _, c := range children {
			hasParent[c] = true
		}
	}

	best := -1
	bestArea := math.Inf(-1)
	for i := range boxes {
		if hasParent[i] {
			continue
		}
		if area := boxes[i].Area(); area > bestArea {
			best, bestArea = i, area
		}
	}
	return best
}

func vaInsideVi(i int, curves []domain.BoundaryCurve, classes []classification) bool {
	for j := range curves {
		if j == i {
			continue
		}
		if classes[j] != classViIron && classes[j] != classViAir {
			continue
		}
		if curveInside(curves[i], curves[j], curves[i].BoundingBox(), curves[j].BoundingBox()) {
			return true
		}
	}
	return false
}

// curveInside reports whether inner lies completely inside outer: the
// bounding box must be contained and every coarse sample of inner must
// pass the ray-casting test against outer.
func curveInside(inner, outer domain.BoundaryCurve, innerBox, outerBox domain.Rect) bool {
	if !inner.Closed() || !outer.Closed() {
		return false
	}
	if !outerBox.Contains(innerBox) {
		return false
	}
	polygon := outer.SamplePoints(containmentSamples)
	for _, p := range inner.SamplePoints(probeSamples) {
		if !pointInPolygon(p, polygon) {
			return false
		}
	}
	return true
}

// pointInPolygon ray-casts a horizontal ray to the right of the point.
// Points exactly on a vertex or on a horizontal edge count as outside,
// and horizontal edges are skipped so crossings are not double-counted.
func pointInPolygon(point domain.Point, polygon []domain.Point) bool {
	crossings := 0
	n := len(polygon)
	for i := 0; i < n; i++ {
		p1 := polygon[i]
		p2 := polygon[(i+1)%n]

		if math.Abs(p1.X-point.X) < edgeTolerance && math.Abs(p1.Y-point.Y) < edgeTolerance {
			return false
		}

		if math.Abs(p1.Y-p2.Y) < edgeTolerance {
			if math.Abs(p1.Y-point.Y) < edgeTolerance &&
				point.X >= math.Min(p1.X, p2.X) && point.X <= math.Max(p1.X, p2.X) {
				return false
			}
			continue
		}

		if (p1.Y > point.Y) != (p2.Y > point.Y) {
			xIntersect := p1.X + (point.Y-p1.Y)*(p2.X-p1.X)/(p2.Y-p1.Y)
			if xIntersect > point.X+edgeTolerance {
				crossings++
			} else if math.Abs(xIntersect-point.X) < edgeTolerance {
				return false
			}
		}
	}
	return crossings%2 == 1
}
