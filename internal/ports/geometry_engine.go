package ports

// GeometryBuilder exposes the imperative construction primitives of the
// external geometry/meshing engine. Every call returns the engine tag of
// the created entity.
type GeometryBuilder interface {
	AddPoint(x, y float64) (int, error)
	AddLine(start, end int) (int, error)
	AddBezier(pointTags []int) (int, error)
	AddCurveLoop(curveTags []int) (int, error)
	AddPlaneSurface(loopTags []int) (int, error)

	// AddPhysicalGroup assigns entities of the given dimension (0 points,
	// 1 curves, 2 surfaces) to the physical tag. The engine must see at
	// most one call per tag value.
	AddPhysicalGroup(dim int, entityTags []int, tag int) error
}

// GeometrySession is one active engine session. Two conversions must not
// share a session; the session is released on every exit path.
type GeometrySession interface {
	GeometryBuilder

	Synchronize() error
	Generate(dim int) error
	Write(path string) error
	Close() error
}

// GeometryEngine opens engine sessions. meshSize is the characteristic
// mesh length factor for the session.
type GeometryEngine interface {
	Open(modelName string, meshSize float64) (GeometrySession, error)
}
