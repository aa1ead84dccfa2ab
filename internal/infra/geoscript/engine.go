// Package geoscript implements the geometry engine port by emitting a
// Gmsh .geo script. The script is buffered in memory during the session
// and written to disk on Write, together with a Save directive for the
// mesh artifact.
package geoscript

import (
	"fmt"
	"os"
	"strings"

	"github.com/lamdangelo/sketchmesh/internal/domain"
	"github.com/lamdangelo/sketchmesh/internal/ports"
)

type Engine struct{}

var _ ports.GeometryEngine = (*Engine)(nil)

func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) Open(modelName string, meshSize float64) (ports.GeometrySession, error) {
	if meshSize <= 0 {
		return nil, &domain.OpError{
			Op:   "geoscript.open",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("mesh size must be positive, got %g", meshSize),
		}
	}

	s := &Session{physicalTags: make(map[int]struct{})}
	fmt.Fprintf(&s.buf, "// model: %s\n", modelName)
	fmt.Fprintf(&s.buf, "Mesh.CharacteristicLengthFactor = %g;\n", meshSize)
	return s, nil
}

// Session accumulates one .geo script. Tags are drawn from a single
// monotonically increasing counter, so no two entities share a tag.
type Session struct {
	buf          strings.Builder
	nextTag      int
	physicalTags map[int]struct{}
	closed       bool
}

var _ ports.GeometrySession = (*Session)(nil)

func (s *Session) AddPoint(x, y float64) (int, error) {
	if err := s.open("geoscript.add_point"); err != nil {
		return 0, err
	}
	tag := s.newTag()
	fmt.Fprintf(&s.buf, "Point(%d) = {%g, %g, 0};\n", tag, x, y)
	return tag, nil
}

func (s *Session) AddLine(start, end int) (int, error) {
	if err := s.open("geoscript.add_line"); err != nil {
		return 0, err
	}
	tag := s.newTag()
	fmt.Fprintf(&s.buf, "Line(%d) = {%d, %d};\n", tag, start, end)
	return tag, nil
}

func (s *Session) AddBezier(pointTags []int) (int, error) {
	if err := s.open("geoscript.add_bezier"); err != nil {
		return 0, err
	}
	if len(pointTags) < 3 {
		return 0, &domain.OpError{
			Op:   "geoscript.add_bezier",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("bezier needs at least 3 point tags, got %d", len(pointTags)),
		}
	}
	tag := s.newTag()
	fmt.Fprintf(&s.buf, "Bezier(%d) = {%s};\n", tag, joinTags(pointTags))
	return tag, nil
}

func (s *Session) AddCurveLoop(curveTags []int) (int, error) {
	if err := s.open("geoscript.add_curve_loop"); err != nil {
		return 0, err
	}
	tag := s.newTag()
	fmt.Fprintf(&s.buf, "Curve Loop(%d) = {%s};\n", tag, joinTags(curveTags))
	return tag, nil
}

func (s *Session) AddPlaneSurface(loopTags []int) (int, error) {
	if err := s.open("geoscript.add_plane_surface"); err != nil {
		return 0, err
	}
	tag := s.newTag()
	fmt.Fprintf(&s.buf, "Plane Surface(%d) = {%s};\n", tag, joinTags(loopTags))
	return tag, nil
}

func (s *Session) AddPhysicalGroup(dim int, entityTags []int, tag int) error {
	if err := s.open("geoscript.add_physical_group"); err != nil {
		return err
	}
	if _, dup := s.physicalTags[tag]; dup {
		return &domain.OpError{
			Op:   "geoscript.add_physical_group",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("physical tag %d already assigned", tag),
		}
	}

	var kind string
	switch dim {
	case 0:
		kind = "Physical Point"
	case 1:
		kind = "Physical Curve"
	case 2:
		kind = "Physical Surface"
	default:
		return &domain.OpError{
			Op:   "geoscript.add_physical_group",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("unsupported dimension %d", dim),
		}
	}

	s.physicalTags[tag] = struct{}{}
	fmt.Fprintf(&s.buf, "%s(%d) = {%s};\n", kind, tag, joinTags(entityTags))
	return nil
}

// Synchronize is a no-op: the script form has no pending kernel state.
func (s *Session) Synchronize() error {
	return s.open("geoscript.synchronize")
}

func (s *Session) Generate(dim int) error {
	if err := s.open("geoscript.generate"); err != nil {
		return err
	}
	fmt.Fprintf(&s.buf, "Mesh %d;\n", dim)
	return nil
}

// Write saves the script to path+".geo". The script itself ends with a
// Save directive for path+".msh", so running it through gmsh produces
// the mesh artifact next to the script.
func (s *Session) Write(path string) error {
	if err := s.open("geoscript.write"); err != nil {
		return err
	}
	script := s.buf.String() + fmt.Sprintf("Save %q;\n", path+".msh")
	if err := os.WriteFile(path+".geo", []byte(script), 0o644); err != nil {
		return &domain.OpError{Op: "geoscript.write", Kind: domain.KindGeometry, Path: path + ".geo", Err: err}
	}
	return nil
}

func (s *Session) Close() error {
	s.closed = true
	return nil
}

// Script returns the buffered script text, mainly for inspection.
func (s *Session) Script() string {
	return s.buf.String()
}

func (s *Session) open(op string) error {
	if s.closed {
		return &domain.OpError{Op: op, Kind: domain.KindInvalidInput, Err: fmt.Errorf("session is closed")}
	}
	return nil
}

func (s *Session) newTag() int {
	s.nextTag++
	return s.nextTag
}

func joinTags(tags []int) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = fmt.Sprintf("%d", t)
	}
	return strings.Join(parts, ", ")
}
