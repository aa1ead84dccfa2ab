package ports

import "github.com/lamdangelo/sketchmesh/internal/domain"

// CurveMesher emits the geometry-engine construction calls for a set of
// boundary curves and their grouping. Implementations keep no state across
// runs: each call returns a fresh report.
type CurveMesher interface {
	MeshBoundaryCurves(b GeometryBuilder, curves []domain.BoundaryCurve, groupings []domain.Grouping) (domain.CurveMeshReport, error)
}

// ElectrodeMesher emits engine point calls and polarity tags for the red
// point electrodes.
type ElectrodeMesher interface {
	MeshElectrodes(b GeometryBuilder, cfg domain.SimulationConfig, electrodes []domain.Electrode) ([]domain.ElectrodeRecord, error)
}
