// Package bezierfit fits piecewise quadratic Bezier curves to ordered
// boundary points with corner-aware segmentation and continuity
// enforcement.
package bezierfit

import (
	"fmt"
	"sort"

	"github.com/lamdangelo/sketchmesh/internal/domain"
	"github.com/lamdangelo/sketchmesh/internal/ports"
)

const (
	// DefaultDegree is the Bezier degree used for fitted segments.
	DefaultDegree = 2

	// minSegments and maxSegments clamp the density-derived target
	// segment count.
	minSegments = 20
	maxSegments = 100

	// pointsPerSegment drives the density target: one segment per this
	// many boundary points before clamping.
	pointsPerSegment = 10

	// minBoundarySeparation is the smallest index distance allowed
	// between a synthesized segment boundary and an existing one.
	minBoundarySeparation = 5

	// chordDamping pulls interior control points of corner-region and
	// straight-edge segments toward the endpoint chord, preventing
	// overshoot near sharp features.
	chordDamping = 0.7

	// tangentBlend is how far interior control points move toward the
	// shared-tangent ideal at non-corner junctions.
	tangentBlend = 0.3

	// dedupTolerance removes consecutive duplicate input points.
	dedupTolerance = 1e-10
)

type Fitter struct {
	degree int
}

var _ ports.CurveFitter = (*Fitter)(nil)

type Option func(*Fitter)

// WithDegree overrides the Bezier degree (minimum 2).
func WithDegree(d int) Option {
	return func(f *Fitter) {
		if d >= 2 {
			f.degree = d
		}
	}
}

func NewFitter(opts ...Option) *Fitter {
	f := &Fitter{degree: DefaultDegree}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FitBoundaryCurve fits a continuity-enforced piecewise Bezier curve
// through the points. Corner indices become mandatory segment boundaries;
// additional boundaries are synthesized up to a density-derived target.
func (f *Fitter) FitBoundaryCurve(points []domain.Point, corners []int, color domain.Color, closed bool) (domain.BoundaryCurve, error) {
	cleaned, remap := dedupConsecutive(points)
	if len(cleaned) < 3 {
		return domain.BoundaryCurve{}, &domain.OpError{
			Op:   "bezierfit.fit",
			Kind: domain.KindTooFewPoints,
			Err:  fmt.Errorf("need at least 3 distinct points, got %d", len(cleaned)),
		}
	}

	n := len(cleaned)
	cornerIdx := remapCorners(corners, remap, n)
	boundaries := segmentBoundaries(n, cornerIdx, closed)

	cornerSet := make(map[int]struct{}, len(cornerIdx))
	for _, c := range cornerIdx {
		cornerSet[c] = struct{}{}
	}

	segments := make([]domain.BezierSegment, 0, len(boundaries)-1)
	for i := 0; i < len(boundaries)-1; i++ {
		seg, err := f.fitSegment(cleaned, boundaries[i], boundaries[i+1], cornerIdx, closed)
		if err != nil {
			return domain.BoundaryCurve{}, err
		}
		segments = append(segments, seg)
	}

	junctionIsCorner := func(j int) bool {
		if j < 1 || j >= len(boundaries)-1 {
			return false
		}
		_, ok := cornerSet[boundaries[j]]
		return ok
	}
	segments, err := EnforceContinuity(segments, junctionIsCorner, closed)
	if err != nil {
		return domain.BoundaryCurve{}, err
	}

	cornerPoints := make([]domain.Point, 0, len(cornerIdx))
	for _, c := range cornerIdx {
		cornerPoints = append(cornerPoints, cleaned[c])
	}
	return domain.NewBoundaryCurve(segments, cornerPoints, color, closed)
}

// dedupConsecutive removes consecutive duplicates and returns a map from
// original indices to cleaned indices.
func dedupConsecutive(points []domain.Point) ([]domain.Point, []int) {
	if len(points) == 0 {
		return nil, nil
	}
	cleaned := []domain.Point{points[0]}
	remap := make([]int, len(points))
	remap[0] = 0
	for i := 1; i < len(points); i++ {
		last := cleaned[len(cleaned)-1]
		if points[i].DistanceTo(last) > dedupTolerance {
			cleaned = append(cleaned, points[i])
		}
		remap[i] = len(cleaned) - 1
	}
	return cleaned, remap
}

func remapCorners(corners []int, remap []int, n int) []int {
	set := map[int]struct{}{}
	for _, c := range corners {
		if c < 0 || c >= len(remap) {
			continue
		}
		idx := remap[c]
		if idx >= 0 && idx < n {
			set[idx] = struct{}{}
		}
	}
	out := make([]int, 0, len(set))
	for idx := range set {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// segmentBoundaries returns the sorted point indices splitting the curve
// into segments. Corners are mandatory; when the corner-derived count
// falls short of the density target, extra boundaries are synthesized at
// least minBoundarySeparation away from existing ones. Open curves split
// the largest gaps first; closed curves take evenly spaced candidates.
func segmentBoundaries(n int, corners []int, closed bool) []int {
	set := map[int]struct{}{0: {}, n - 1: {}}
	for _, c := range corners {
		set[c] = struct{}{}
	}
	boundaries := sortedKeys(set)

	target := n / pointsPerSegment
	if target < minSegments {
		target = minSegments
	}
	if target > maxSegments {
		target = maxSegments
	}

	if closed {
		for i := 1; i < target && len(boundaries)-1 < target; i++ {
			candidate := i * n / target
			if candidate <= 0 || candidate >= n-1 {
				continue
			}
			if separated(candidate, boundaries) {
				set[candidate] = struct{}{}
				boundaries = sortedKeys(set)
			}
		}
		return boundaries
	}

	for len(boundaries)-1 < target {
		gapIdx, gap := largestGap(boundaries)
		if gap < 2*minBoundarySeparation {
			break
		}
		set[boundaries[gapIdx]+gap/2] = struct{}{}
		boundaries = sortedKeys(set)
	}
	return boundaries
}

func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

func separated(candidate int, boundaries []int) bool {
	for _, b := range boundaries {
		if abs(candidate-b) < minBoundarySeparation {
			return false
		}
	}
	return true
}

func largestGap(boundaries []int) (idx, gap int) {
	for i := 0; i < len(boundaries)-1; i++ {
		if g := boundaries[i+1] - boundaries[i]; g > gap {
			idx, gap = i, g
		}
	}
	return idx, gap
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
