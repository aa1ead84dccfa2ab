// Package svgparse extracts colored raw boundaries from SVG documents.
// Coordinates are normalized into the unit square with the Y axis
// pointing up, and boundary points are redistributed to near-uniform
// arc-length spacing.
package svgparse

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/lamdangelo/sketchmesh/internal/domain"
	"github.com/lamdangelo/sketchmesh/internal/ports"
)

const (
	// DefaultPointsPerUnit drives the uniform resampling density: points
	// per unit of normalized arc length.
	DefaultPointsPerUnit = 200

	// minResamplePoints is the floor on the resampled point count.
	minResamplePoints = 16

	// ellipseSegments is the polygon resolution used for circle and
	// ellipse elements.
	ellipseSegments = 32

	coincidenceTolerance = 1e-9
)

var shapeTags = []string{"path", "rect", "circle", "ellipse", "polygon", "polyline"}

type Parser struct {
	pointsPerUnit float64
}

var _ ports.BoundaryExtractor = (*Parser)(nil)

type Option func(*Parser)

// WithPointsPerUnit overrides the resampling density.
func WithPointsPerUnit(n float64) Option {
	return func(p *Parser) {
		if n > 0 {
			p.pointsPerUnit = n
		}
	}
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{pointsPerUnit: DefaultPointsPerUnit}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ExtractBoundariesByColor parses an SVG document and returns its
// boundaries grouped by resolved color. Red elements collapse to their
// centroid and come back as single-point closed boundaries; every other
// color must yield at least 3 points per element.
func (p *Parser) ExtractBoundariesByColor(r io.Reader) (map[domain.Color][]domain.RawBoundary, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "svgparse.extract",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("unparseable SVG document: %w", err),
		}
	}

	vp := viewportOf(root)

	out := make(map[domain.Color][]domain.RawBoundary)
	for _, tag := range shapeTags {
		for _, el := range root.FindAll(tag) {
			color, err := resolveColor(el)
			if err != nil {
				return nil, err
			}

			raw, closed, err := elementPoints(el)
			if err != nil {
				return nil, err
			}
			if len(raw) == 0 {
				continue
			}

			points := make([]domain.Point, len(raw))
			for i, q := range raw {
				points[i] = vp.normalize(q)
			}
			points = dropConsecutiveDuplicates(points)
			if closed && len(points) > 1 && points[0].Eq(points[len(points)-1]) {
				points = points[:len(points)-1]
			}

			if color == domain.Red {
				out[color] = append(out[color], domain.RawBoundary{
					Points: []domain.Point{centroid(points)},
					Color:  color,
					Closed: true,
				})
				continue
			}

			points = p.resampleUniform(points, closed)
			if len(points) < 3 {
				return nil, &domain.OpError{
					Op:   "svgparse.extract",
					Kind: domain.KindTooFewPoints,
					Err:  fmt.Errorf("%s element yields %d points, need at least 3", el.Name, len(points)),
				}
			}
			out[color] = append(out[color], domain.RawBoundary{
				Points: points,
				Color:  color,
				Closed: closed,
			})
		}
	}
	return out, nil
}

// viewport maps document coordinates into the unit square. The Y axis is
// flipped so geometry ends up y-up.
type viewport struct {
	minX, minY    float64
	width, height float64
}

func viewportOf(root *svgparser.Element) viewport {
	if vb, ok := root.Attributes["viewBox"]; ok {
		fields := strings.FieldsFunc(vb, func(r rune) bool { return r == ' ' || r == ',' })
		if len(fields) == 4 {
			vals := make([]float64, 4)
			valid := true
			for i, f := range fields {
				v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
				if err != nil {
					valid = false
					break
				}
				vals[i] = v
			}
			if valid && vals[2] > 0 && vals[3] > 0 {
				return viewport{minX: vals[0], minY: vals[1], width: vals[2], height: vals[3]}
			}
		}
	}

	w := dimensionAttr(root, "width")
	h := dimensionAttr(root, "height")
	if w > 0 && h > 0 {
		return viewport{width: w, height: h}
	}
	return viewport{width: 100, height: 100}
}

func dimensionAttr(el *svgparser.Element, key string) float64 {
	raw, ok := el.Attributes[key]
	if !ok {
		return 0
	}
	var digits strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			digits.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(digits.String(), 64)
	if err != nil {
		return 0
	}
	return v
}

func (v viewport) normalize(p domain.Point) domain.Point {
	return domain.Pt(
		(p.X-v.minX)/v.width,
		1-(p.Y-v.minY)/v.height,
	)
}

func centroid(points []domain.Point) domain.Point {
	var sx, sy float64
	for _, p := range points {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(points))
	return domain.Pt(sx/n, sy/n)
}

func dropConsecutiveDuplicates(points []domain.Point) []domain.Point {
	if len(points) == 0 {
		return points
	}
	out := points[:1]
	for _, p := range points[1:] {
		if p.DistanceTo(out[len(out)-1]) > coincidenceTolerance {
			out = append(out, p)
		}
	}
	return out
}

// resampleUniform redistributes points at uniform arc-length spacing.
// Downstream corner windows and segment-density heuristics assume near
// uniform spacing, which freehand input rarely has.
func (p *Parser) resampleUniform(points []domain.Point, closed bool) []domain.Point {
	if len(points) < 3 {
		return points
	}

	verts := points
	if closed {
		verts = append(append([]domain.Point{}, points...), points[0])
	}

	cum := make([]float64, len(verts))
	for i := 1; i < len(verts); i++ {
		cum[i] = cum[i-1] + verts[i].DistanceTo(verts[i-1])
	}
	total := cum[len(cum)-1]
	if total <= 0 {
		return points
	}

	count := int(math.Round(total * p.pointsPerUnit))
	if count < minResamplePoints {
		count = minResamplePoints
	}

	steps := count
	if !closed {
		steps = count - 1
	}

	out := make([]domain.Point, 0, count)
	seg := 1
	for i := 0; i < count; i++ {
		target := total * float64(i) / float64(steps)
		for seg < len(cum)-1 && cum[seg] < target {
			seg++
		}
		span := cum[seg] - cum[seg-1]
		t := 0.0
		if span > 0 {
			t = (target - cum[seg-1]) / span
		}
		out = append(out, verts[seg-1].Lerp(verts[seg], t))
	}
	return out
}
