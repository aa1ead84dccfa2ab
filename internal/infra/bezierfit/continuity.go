package bezierfit

import "github.com/lamdangelo/sketchmesh/internal/domain"

// EnforceContinuity returns a fresh segment list with continuity enforced
// at every junction. The input segments are not modified.
//
// At every junction the next segment's first control point is overwritten
// with the previous segment's end point (C0). At junctions not flagged as
// corners, both interior control points additionally move tangentBlend of
// the way toward the shared-tangent ideal (C1). For closed curves the
// last segment's last control point is welded to the first segment's
// first control point.
//
// junctionIsCorner receives the junction index j, meaning the junction
// between segments j-1 and j.
func EnforceContinuity(segments []domain.BezierSegment, junctionIsCorner func(j int) bool, closed bool) ([]domain.BezierSegment, error) {
	if len(segments) == 0 {
		return nil, nil
	}

	ctrls := make([][]domain.Point, len(segments))
	for i, s := range segments {
		ctrls[i] = s.ControlPoints()
	}

	for j := 1; j < len(ctrls); j++ {
		prev := ctrls[j-1]
		ctrls[j][0] = prev[len(prev)-1]
	}

	for j := 1; j < len(ctrls); j++ {
		if junctionIsCorner != nil && junctionIsCorner(j) {
			continue
		}
		prev := ctrls[j-1]
		next := ctrls[j]
		if len(prev) < 3 || len(next) < 3 {
			// A degree-1 side has no interior control point to move.
			continue
		}

		p := prev[len(prev)-1]
		q1 := prev[len(prev)-2]
		q2 := next[1]

		// The shared-tangent ideal places the interior points
		// symmetrically about the junction.
		d := q2.Sub(q1).Scale(0.5)
		prev[len(prev)-2] = q1.Lerp(p.Sub(d), tangentBlend)
		next[1] = q2.Lerp(p.Add(d), tangentBlend)
	}

	if closed {
		last := ctrls[len(ctrls)-1]
		last[len(last)-1] = ctrls[0][0]
	}

	out := make([]domain.BezierSegment, len(ctrls))
	for i, ctrl := range ctrls {
		seg, err := domain.NewBezierSegment(ctrl)
		if err != nil {
			return nil, err
		}
		out[i] = seg
	}
	return out, nil
}
