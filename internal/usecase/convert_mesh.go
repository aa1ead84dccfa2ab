package usecase

import (
	"context"
	"io"

	"github.com/lamdangelo/sketchmesh/internal/domain"
	"github.com/lamdangelo/sketchmesh/internal/infra/logger"
	"github.com/lamdangelo/sketchmesh/internal/ports"
)

// MeshResult describes one completed mesh run.
type MeshResult struct {
	Geometry   GeometryResult
	Groupings  []domain.Grouping
	Electrodes []domain.ElectrodeRecord
	Report     domain.CurveMeshReport
	Artifact   string
}

type ConvertMesh struct {
	geometry   *ConvertGeometry
	grouper    ports.CurveGrouper
	engine     ports.GeometryEngine
	curves     ports.CurveMesher
	electrodes ports.ElectrodeMesher
}

func NewConvertMesh(g *ConvertGeometry, gr ports.CurveGrouper, en ports.GeometryEngine, cm ports.CurveMesher, em ports.ElectrodeMesher) *ConvertMesh {
	return &ConvertMesh{
		geometry:   g,
		grouper:    gr,
		engine:     en,
		curves:     cm,
		electrodes: em,
	}
}

// Execute runs the full pipeline: sketch to curves, curves to engine
// calls, engine state to the mesh artifact at outPath. The engine
// session is released on every exit path.
func (uc *ConvertMesh) Execute(ctx context.Context, sketch io.Reader, cfg domain.SimulationConfig, modelName, outPath string) (MeshResult, error) {
	geo, err := uc.geometry.Execute(ctx, sketch)
	if err != nil {
		return MeshResult{}, err
	}

	session, err := uc.engine.Open(modelName, cfg.MeshSize)
	if err != nil {
		return MeshResult{}, err
	}
	defer func() {
		if cerr := session.Close(); cerr != nil {
			logger.L().Warn("usecase.session_close", "err", cerr)
		}
	}()

	records, err := uc.electrodes.MeshElectrodes(session, cfg, geo.Electrodes)
	if err != nil {
		return MeshResult{}, err
	}

	groupings, err := uc.grouper.GroupBoundaryCurves(geo.Curves)
	if err != nil {
		return MeshResult{}, err
	}

	report, err := uc.curves.MeshBoundaryCurves(session, geo.Curves, groupings)
	if err != nil {
		return MeshResult{}, err
	}

	if err := session.Synchronize(); err != nil {
		return MeshResult{}, err
	}
	if err := session.Generate(2); err != nil {
		return MeshResult{}, err
	}
	if err := session.Write(outPath); err != nil {
		return MeshResult{}, err
	}

	logger.L().Info("usecase.mesh_converted",
		"model", modelName,
		"curves", len(geo.Curves),
		"electrodes", len(records),
		"fallback_order", report.FallbackOrder,
		"out", outPath,
	)
	return MeshResult{
		Geometry:   geo,
		Groupings:  groupings,
		Electrodes: records,
		Report:     report,
		Artifact:   outPath,
	}, nil
}
