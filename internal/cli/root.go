// Package cli wires the command line surface for sketchmesh.
package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lamdangelo/sketchmesh/internal/infra/logger"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "sketchmesh",
		Short:        "Convert colored vector sketches to mesh-ready geometry",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			wd, _ = filepath.Abs(wd)

			cleanup, _ := logger.Setup(logger.Config{
				Root:  wd,
				Debug: debug,
			})
			if cleanup != nil {
				cobra.OnFinalize(func() { _ = cleanup() })
			}
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .sketchmesh/logs/sketchmesh.log")
	cmd.AddCommand(convertCmd())
	cmd.AddCommand(meshCmd())
	return cmd
}
