package ports

import "github.com/lamdangelo/sketchmesh/internal/domain"

// CurveGrouper discovers the containment hierarchy among boundary curves
// and assigns physical groups. The result has one entry per input curve,
// in input order.
type CurveGrouper interface {
	GroupBoundaryCurves(curves []domain.BoundaryCurve) ([]domain.Grouping, error)
}
