package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lamdangelo/sketchmesh/internal/domain"
	"github.com/lamdangelo/sketchmesh/internal/infra/bezierfit"
	"github.com/lamdangelo/sketchmesh/internal/infra/corners"
	"github.com/lamdangelo/sketchmesh/internal/infra/geoscript"
	"github.com/lamdangelo/sketchmesh/internal/infra/grouping"
	"github.com/lamdangelo/sketchmesh/internal/infra/meshing"
	"github.com/lamdangelo/sketchmesh/internal/infra/prowriter"
	"github.com/lamdangelo/sketchmesh/internal/infra/svgparse"
	"github.com/lamdangelo/sketchmesh/internal/infra/yamlconfig"
	"github.com/lamdangelo/sketchmesh/internal/usecase"
)

func meshCmd() *cobra.Command {
	var svgPath string
	var configPath string
	var outPath string
	var modelName string

	c := &cobra.Command{
		Use:   "mesh",
		Short: "Convert an SVG sketch into a mesh script with physical groups",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := yamlconfig.NewLoader().LoadSimulationConfig(configPath)
			if err != nil {
				return err
			}

			f, err := os.Open(svgPath)
			if err != nil {
				return err
			}
			defer f.Close()

			geometry := usecase.NewConvertGeometry(
				svgparse.NewParser(),
				corners.NewDetector(),
				bezierfit.NewFitter(),
			)
			uc := usecase.NewConvertMesh(
				geometry,
				grouping.NewGrouper(),
				geoscript.NewEngine(),
				meshing.NewCurveMesher(),
				meshing.NewElectrodeMesher(),
			)

			result, err := uc.Execute(cmd.Context(), f, cfg, modelName, outPath)
			if err != nil {
				return err
			}

			proPath := outPath + ".pro"
			if err := prowriter.WriteIdentifiers(proPath, domain.PhysicalIdentifiers()); err != nil {
				return err
			}

			fmt.Printf("model: %s\n", modelName)
			fmt.Printf("curves: %d (order %v", len(result.Geometry.Curves), result.Report.Order)
			if result.Report.FallbackOrder {
				fmt.Print(", input-order fallback")
			}
			fmt.Println(")")
			for _, rec := range result.Electrodes {
				fmt.Printf("  %s at %s -> %s\n", rec.CoilName, rec.Center, rec.Group.Name())
			}
			fmt.Printf("wrote %s.geo and %s\n", result.Artifact, proPath)
			return nil
		},
	}

	c.Flags().StringVarP(&svgPath, "svg", "s", "", "Path to the SVG sketch (required)")
	c.Flags().StringVarP(&configPath, "config", "c", "", "Simulation config YAML (optional)")
	c.Flags().StringVarP(&outPath, "out", "o", "sketch", "Output base path (writes <out>.geo and <out>.pro)")
	c.Flags().StringVarP(&modelName, "model", "m", "sketch", "Engine model name")

	_ = c.MarkFlagRequired("svg")
	return c
}
