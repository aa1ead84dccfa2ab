package domain

// RawBoundary is the transient parser output for one colored element:
// scaled sample points plus the source closure flag. It is produced by the
// parser and consumed immediately by the fitter within one conversion.
type RawBoundary struct {
	Points []Point
	Color  Color
	Closed bool
}

// Electrode is a red zero-area point marker representing a current-source
// contact. It is meshed as a bare point with a polarity tag.
type Electrode struct {
	Center Point
	Color  Color
}

// Grouping is the per-curve result of containment analysis: the indices of
// the curves forming holes in this curve's surface, and the physical
// groups assigned to it.
type Grouping struct {
	Holes  []int
	Groups []PhysicalGroup
}
