package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lamdangelo/sketchmesh/internal/infra/bezierfit"
	"github.com/lamdangelo/sketchmesh/internal/infra/corners"
	"github.com/lamdangelo/sketchmesh/internal/infra/svgparse"
	"github.com/lamdangelo/sketchmesh/internal/usecase"
)

func convertCmd() *cobra.Command {
	var svgPath string

	c := &cobra.Command{
		Use:   "convert",
		Short: "Convert an SVG sketch to fitted boundary curves (no meshing)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(svgPath)
			if err != nil {
				return err
			}
			defer f.Close()

			uc := usecase.NewConvertGeometry(
				svgparse.NewParser(),
				corners.NewDetector(),
				bezierfit.NewFitter(),
			)
			result, err := uc.Execute(cmd.Context(), f)
			if err != nil {
				return err
			}

			fmt.Printf("curves: %d\n", len(result.Curves))
			for i, curve := range result.Curves {
				fmt.Printf("  [%d] color=%s segments=%d corners=%d closed=%v\n",
					i, curve.Color().Name(), curve.NumSegments(), len(curve.Corners()), curve.Closed())
			}
			fmt.Printf("electrodes: %d\n", len(result.Electrodes))
			for i, e := range result.Electrodes {
				fmt.Printf("  [%d] center=%s\n", i, e.Center)
			}
			return nil
		},
	}

	c.Flags().StringVarP(&svgPath, "svg", "s", "", "Path to the SVG sketch (required)")
	_ = c.MarkFlagRequired("svg")
	return c
}
