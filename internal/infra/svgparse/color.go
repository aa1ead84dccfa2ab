package svgparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/lamdangelo/sketchmesh/internal/domain"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	rgbPattern   = regexp.MustCompile(`^rgb\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)$`)
	stylePattern = regexp.MustCompile(`(stroke|fill)\s*:\s*([^;]+)`)
)

// namedColors covers the CSS color names a sketching tool is likely to
// emit; anything else resolves through hex or rgb() notation.
var namedColors = map[string][3]uint8{
	"red":     {255, 0, 0},
	"green":   {0, 128, 0},
	"lime":    {0, 255, 0},
	"blue":    {0, 0, 255},
	"black":   {0, 0, 0},
	"white":   {255, 255, 255},
	"yellow":  {255, 255, 0},
	"cyan":    {0, 255, 255},
	"magenta": {255, 0, 255},
	"orange":  {255, 165, 0},
	"purple":  {128, 0, 128},
	"gray":    {128, 128, 128},
	"grey":    {128, 128, 128},
	"navy":    {0, 0, 128},
	"darkred": {139, 0, 0},
}

// resolveColor reads an element's paint from stroke, then fill, then the
// style attribute, and maps it to the nearest primary. Elements with no
// declared paint default to red; a declared but unparseable paint is an
// error.
func resolveColor(el *svgparser.Element) (domain.Color, error) {
	candidates := []string{
		el.Attributes["stroke"],
		el.Attributes["fill"],
	}
	if style, ok := el.Attributes["style"]; ok {
		for _, m := range stylePattern.FindAllStringSubmatch(style, -1) {
			candidates = append(candidates, m[2])
		}
	}

	for _, raw := range candidates {
		value := strings.ToLower(strings.TrimSpace(raw))
		if value == "" || value == "none" {
			continue
		}
		r, g, b, err := parsePaint(value)
		if err != nil {
			return domain.Color{}, &domain.OpError{
				Op:   "svgparse.color",
				Kind: domain.KindUnknownColor,
				Err:  err,
			}
		}
		return nearestPrimary(r, g, b), nil
	}
	return domain.Red, nil
}

func parsePaint(value string) (r, g, b uint8, err error) {
	if rgb, ok := namedColors[value]; ok {
		return rgb[0], rgb[1], rgb[2], nil
	}

	if strings.HasPrefix(value, "#") {
		return parseHex(value)
	}

	if m := rgbPattern.FindStringSubmatch(value); m != nil {
		channels := make([]uint8, 3)
		for i := 0; i < 3; i++ {
			v, perr := strconv.Atoi(m[i+1])
			if perr != nil || v > 255 {
				return 0, 0, 0, fmt.Errorf("invalid rgb() channel %q", m[i+1])
			}
			channels[i] = uint8(v)
		}
		return channels[0], channels[1], channels[2], nil
	}

	return 0, 0, 0, fmt.Errorf("unrecognized paint value %q", value)
}

func parseHex(value string) (r, g, b uint8, err error) {
	hex := strings.TrimPrefix(value, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", value)
	}
	v, perr := strconv.ParseUint(hex, 16, 32)
	if perr != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", value)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// nearestPrimary maps an arbitrary paint to the closest member of the
// fixed color vocabulary by RGB distance.
func nearestPrimary(r, g, b uint8) domain.Color {
	paint := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}

	best := domain.Red
	bestDist := -1.0
	for _, c := range domain.Colors() {
		cr, cg, cb := c.RGB()
		candidate := colorful.Color{R: float64(cr) / 255, G: float64(cg) / 255, B: float64(cb) / 255}
		if d := paint.DistanceRgb(candidate); bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
