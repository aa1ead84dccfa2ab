package ports

import "github.com/lamdangelo/sketchmesh/internal/domain"

// CurveFitter fits a piecewise Bezier curve to ordered boundary points.
// Corner indices refer into points and become mandatory segment
// boundaries.
type CurveFitter interface {
	FitBoundaryCurve(points []domain.Point, corners []int, color domain.Color, closed bool) (domain.BoundaryCurve, error)
}
