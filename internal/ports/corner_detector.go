package ports

import "github.com/lamdangelo/sketchmesh/internal/domain"

// CornerDetector finds indices of sharp direction changes in an ordered
// point sequence.
type CornerDetector interface {
	DetectCorners(points []domain.Point, closed bool) ([]int, error)
}
