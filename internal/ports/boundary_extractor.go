package ports

import (
	"io"

	"github.com/lamdangelo/sketchmesh/internal/domain"
)

// BoundaryExtractor turns a vector sketch into raw boundaries grouped by
// color.
type BoundaryExtractor interface {
	ExtractBoundariesByColor(r io.Reader) (map[domain.Color][]domain.RawBoundary, error)
}
