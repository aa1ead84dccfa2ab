package ports

import "github.com/lamdangelo/sketchmesh/internal/domain"

// ConfigLoader loads the simulation configuration (coil currents, mesh
// size) from a source such as a YAML file.
type ConfigLoader interface {
	LoadSimulationConfig(path string) (domain.SimulationConfig, error)
}
