package svgparse

import (
	"fmt"
	"math"
	"strconv"

	"github.com/JoshVarga/svgparser"
	"github.com/lamdangelo/sketchmesh/internal/domain"
)

// elementPoints converts one shape element to an ordered point list in
// document coordinates, plus whether the outline is closed.
func elementPoints(el *svgparser.Element) ([]domain.Point, bool, error) {
	switch el.Name {
	case "path":
		return parsePathData(el.Attributes["d"])
	case "rect":
		return rectPoints(el)
	case "circle":
		cx := floatAttr(el, "cx")
		cy := floatAttr(el, "cy")
		r := floatAttr(el, "r")
		return ellipsePoints(cx, cy, r, r), true, nil
	case "ellipse":
		cx := floatAttr(el, "cx")
		cy := floatAttr(el, "cy")
		return ellipsePoints(cx, cy, floatAttr(el, "rx"), floatAttr(el, "ry")), true, nil
	case "polygon":
		pts, err := parsePointPairs(el.Attributes["points"])
		return pts, true, err
	case "polyline":
		pts, err := parsePointPairs(el.Attributes["points"])
		if err != nil {
			return nil, false, err
		}
		closed := len(pts) > 2 && pts[0].DistanceTo(pts[len(pts)-1]) < coincidenceTolerance
		return pts, closed, nil
	}
	return nil, false, nil
}

func floatAttr(el *svgparser.Element, key string) float64 {
	v, err := strconv.ParseFloat(el.Attributes[key], 64)
	if err != nil {
		return 0
	}
	return v
}

func rectPoints(el *svgparser.Element) ([]domain.Point, bool, error) {
	x := floatAttr(el, "x")
	y := floatAttr(el, "y")
	w := floatAttr(el, "width")
	h := floatAttr(el, "height")
	if w <= 0 || h <= 0 {
		return nil, false, nil
	}
	return []domain.Point{
		domain.Pt(x, y),
		domain.Pt(x+w, y),
		domain.Pt(x+w, y+h),
		domain.Pt(x, y+h),
	}, true, nil
}

func ellipsePoints(cx, cy, rx, ry float64) []domain.Point {
	if rx <= 0 || ry <= 0 {
		return nil
	}
	pts := make([]domain.Point, 0, ellipseSegments)
	for i := 0; i < ellipseSegments; i++ {
		angle := 2 * math.Pi * float64(i) / ellipseSegments
		pts = append(pts, domain.Pt(cx+rx*math.Cos(angle), cy+ry*math.Sin(angle)))
	}
	return pts
}

func parsePointPairs(raw string) ([]domain.Point, error) {
	nums, err := scanNumbers(raw)
	if err != nil {
		return nil, err
	}
	pts := make([]domain.Point, 0, len(nums)/2)
	for i := 0; i+1 < len(nums); i += 2 {
		pts = append(pts, domain.Pt(nums[i], nums[i+1]))
	}
	return pts, nil
}

func scanNumbers(raw string) ([]float64, error) {
	var nums []float64
	start := -1
	flush := func(end int) error {
		if start < 0 {
			return nil
		}
		v, err := strconv.ParseFloat(raw[start:end], 64)
		if err != nil {
			return &domain.OpError{
				Op:   "svgparse.shapes",
				Kind: domain.KindInvalidInput,
				Err:  fmt.Errorf("bad coordinate %q", raw[start:end]),
			}
		}
		nums = append(nums, v)
		start = -1
		return nil
	}

	for i, r := range raw {
		switch {
		case r >= '0' && r <= '9' || r == '.' || r == 'e' || r == 'E':
			if start < 0 {
				start = i
			}
		case r == '-' || r == '+':
			// A sign not following an exponent starts a new number.
			if start >= 0 && i > 0 && raw[i-1] != 'e' && raw[i-1] != 'E' {
				if err := flush(i); err != nil {
					return nil, err
				}
			}
			if start < 0 {
				start = i
			}
		default:
			if err := flush(i); err != nil {
				return nil, err
			}
		}
	}
	if err := flush(len(raw)); err != nil {
		return nil, err
	}
	return nums, nil
}
