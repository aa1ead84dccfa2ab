package svgparse

import (
	"fmt"
	"strings"

	"github.com/lamdangelo/sketchmesh/internal/domain"
)

// curveSamples is how many points each curve command contributes.
const curveSamples = 16

const pathCommands = "MmLlHhVvCcQqZz"

type pathCommand struct {
	letter byte
	args   []float64
}

// parsePathData converts a path data string to points. Curve commands
// are sampled at fixed parametric resolution; the outline counts as
// closed when a close command appears or the endpoints coincide.
func parsePathData(d string) ([]domain.Point, bool, error) {
	commands, err := splitPathCommands(d)
	if err != nil {
		return nil, false, err
	}
	if len(commands) == 0 {
		return nil, false, nil
	}

	var (
		points  []domain.Point
		cur     domain.Point
		start   domain.Point
		closed  bool
		started bool
	)
	emit := func(p domain.Point) {
		points = append(points, p)
		cur = p
	}

	for _, c := range commands {
		relative := c.letter >= 'a'
		switch upper := c.letter &^ 0x20; upper {
		case 'M':
			if len(c.args) < 2 || len(c.args)%2 != 0 {
				return nil, false, pathError(c.letter, len(c.args))
			}
			for i := 0; i+1 < len(c.args); i += 2 {
				p := domain.Pt(c.args[i], c.args[i+1])
				if relative && started {
					p = cur.Add(p)
				}
				emit(p)
				if i == 0 {
					start = p
					started = true
				}
			}
		case 'L':
			if len(c.args) < 2 || len(c.args)%2 != 0 {
				return nil, false, pathError(c.letter, len(c.args))
			}
			for i := 0; i+1 < len(c.args); i += 2 {
				p := domain.Pt(c.args[i], c.args[i+1])
				if relative {
					p = cur.Add(p)
				}
				emit(p)
			}
		case 'H':
			if len(c.args) == 0 {
				return nil, false, pathError(c.letter, 0)
			}
			for _, x := range c.args {
				if relative {
					x += cur.X
				}
				emit(domain.Pt(x, cur.Y))
			}
		case 'V':
			if len(c.args) == 0 {
				return nil, false, pathError(c.letter, 0)
			}
			for _, y := range c.args {
				if relative {
					y += cur.Y
				}
				emit(domain.Pt(cur.X, y))
			}
		case 'C':
			if len(c.args) == 0 || len(c.args)%6 != 0 {
				return nil, false, pathError(c.letter, len(c.args))
			}
			for i := 0; i+5 < len(c.args); i += 6 {
				c1 := domain.Pt(c.args[i], c.args[i+1])
				c2 := domain.Pt(c.args[i+2], c.args[i+3])
				end := domain.Pt(c.args[i+4], c.args[i+5])
				if relative {
					c1, c2, end = cur.Add(c1), cur.Add(c2), cur.Add(end)
				}
				for _, p := range sampleCubic(cur, c1, c2, end) {
					emit(p)
				}
			}
		case 'Q':
			if len(c.args) == 0 || len(c.args)%4 != 0 {
				return nil, false, pathError(c.letter, len(c.args))
			}
			for i := 0; i+3 < len(c.args); i += 4 {
				ctrl := domain.Pt(c.args[i], c.args[i+1])
				end := domain.Pt(c.args[i+2], c.args[i+3])
				if relative {
					ctrl, end = cur.Add(ctrl), cur.Add(end)
				}
				for _, p := range sampleQuadratic(cur, ctrl, end) {
					emit(p)
				}
			}
		case 'Z':
			closed = true
			cur = start
		}
	}

	if !closed && len(points) > 2 && points[0].DistanceTo(points[len(points)-1]) < coincidenceTolerance {
		closed = true
	}
	return points, closed, nil
}

func splitPathCommands(d string) ([]pathCommand, error) {
	var commands []pathCommand
	i := 0
	for i < len(d) {
		ch := d[i]
		if ch == ' ' || ch == ',' || ch == '\n' || ch == '\t' || ch == '\r' {
			i++
			continue
		}
		if strings.IndexByte(pathCommands, ch) < 0 {
			return nil, &domain.OpError{
				Op:   "svgparse.path",
				Kind: domain.KindInvalidInput,
				Err:  fmt.Errorf("unsupported path command %q", string(ch)),
			}
		}

		j := i + 1
		for j < len(d) && strings.IndexByte(pathCommands, d[j]) < 0 {
			j++
		}
		args, err := scanNumbers(d[i+1 : j])
		if err != nil {
			return nil, err
		}
		commands = append(commands, pathCommand{letter: ch, args: args})
		i = j
	}
	return commands, nil
}

func pathError(letter byte, argc int) error {
	return &domain.OpError{
		Op:   "svgparse.path",
		Kind: domain.KindInvalidInput,
		Err:  fmt.Errorf("path command %q has %d arguments", string(letter), argc),
	}
}

// sampleCubic evaluates the cubic at t in (0, 1], so the caller's current
// point is not duplicated.
func sampleCubic(p0, p1, p2, p3 domain.Point) []domain.Point {
	out := make([]domain.Point, 0, curveSamples)
	for k := 1; k <= curveSamples; k++ {
		t := float64(k) / curveSamples
		u := 1 - t
		x := u*u*u*p0.X + 3*u*u*t*p1.X + 3*u*t*t*p2.X + t*t*t*p3.X
		y := u*u*u*p0.Y + 3*u*u*t*p1.Y + 3*u*t*t*p2.Y + t*t*t*p3.Y
		out = append(out, domain.Pt(x, y))
	}
	return out
}

func sampleQuadratic(p0, p1, p2 domain.Point) []domain.Point {
	out := make([]domain.Point, 0, curveSamples)
	for k := 1; k <= curveSamples; k++ {
		t := float64(k) / curveSamples
		u := 1 - t
		x := u*u*p0.X + 2*u*t*p1.X + t*t*p2.X
		y := u*u*p0.Y + 2*u*t*p1.Y + t*t*p2.Y
		out = append(out, domain.Pt(x, y))
	}
	return out
}
