// Package usecase wires the sketch-to-mesh pipeline stages together.
package usecase

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/lamdangelo/sketchmesh/internal/domain"
	"github.com/lamdangelo/sketchmesh/internal/infra/logger"
	"github.com/lamdangelo/sketchmesh/internal/ports"
)

// GeometryResult is the mesh-ready intermediate form of a sketch: fitted
// boundary curves plus the red point electrodes.
type GeometryResult struct {
	Curves     []domain.BoundaryCurve
	Electrodes []domain.Electrode
}

type ConvertGeometry struct {
	extractor ports.BoundaryExtractor
	corners   ports.CornerDetector
	fitter    ports.CurveFitter
}

func NewConvertGeometry(ex ports.BoundaryExtractor, cd ports.CornerDetector, cf ports.CurveFitter) *ConvertGeometry {
	return &ConvertGeometry{
		extractor: ex,
		corners:   cd,
		fitter:    cf,
	}
}

// Execute extracts colored boundaries from the sketch and fits each
// non-red one into a boundary curve. Red boundaries become electrodes.
// Colors are processed in name order so output order is deterministic.
func (uc *ConvertGeometry) Execute(ctx context.Context, sketch io.Reader) (GeometryResult, error) {
	byColor, err := uc.extractor.ExtractBoundariesByColor(sketch)
	if err != nil {
		return GeometryResult{}, err
	}

	colors := make([]domain.Color, 0, len(byColor))
	for c := range byColor {
		colors = append(colors, c)
	}
	sort.Slice(colors, func(i, j int) bool { return colors[i].Name() < colors[j].Name() })

	var result GeometryResult
	for _, color := range colors {
		if err := ctx.Err(); err != nil {
			return GeometryResult{}, err
		}

		for _, raw := range byColor[color] {
			if color == domain.Red {
				if len(raw.Points) == 0 {
					return GeometryResult{}, &domain.OpError{
						Op:   "usecase.convert_geometry",
						Kind: domain.KindTooFewPoints,
						Err:  fmt.Errorf("electrode with no center point"),
					}
				}
				result.Electrodes = append(result.Electrodes, domain.Electrode{
					Center: raw.Points[0],
					Color:  color,
				})
				continue
			}

			cornerIdx, err := uc.corners.DetectCorners(raw.Points, raw.Closed)
			if err != nil {
				return GeometryResult{}, err
			}
			curve, err := uc.fitter.FitBoundaryCurve(raw.Points, cornerIdx, color, raw.Closed)
			if err != nil {
				return GeometryResult{}, err
			}
			result.Curves = append(result.Curves, curve)

			logger.L().Debug("usecase.curve_fitted",
				"color", color.Name(),
				"points", len(raw.Points),
				"corners", len(cornerIdx),
				"segments", curve.NumSegments(),
			)
		}
	}

	logger.L().Info("usecase.geometry_converted",
		"curves", len(result.Curves),
		"electrodes", len(result.Electrodes),
	)
	return result, nil
}
