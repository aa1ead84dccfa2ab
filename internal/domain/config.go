package domain

import "fmt"

// DefaultMeshSize is the characteristic mesh length factor used when the
// configuration does not specify one.
const DefaultMeshSize = 0.1

// SimulationConfig carries the per-sketch configuration: the current
// direction of each coil electrode and the characteristic mesh size.
//
// Coil names follow the reading-order contract with the electrode mesher:
// coil_1 is the topmost (then leftmost) electrode, coil_2 the next, and so
// on.
type SimulationConfig struct {
	CoilCurrents map[string]int
	MeshSize     float64
}

// DefaultSimulationConfig provides defaults for a sketch without
// electrodes.
func DefaultSimulationConfig() SimulationConfig {
	return SimulationConfig{
		CoilCurrents: map[string]int{},
		MeshSize:     DefaultMeshSize,
	}
}

// Validate checks that every configured current is +1 or -1 and that the
// mesh size is positive.
func (c SimulationConfig) Validate() error {
	if c.MeshSize <= 0 {
		return &OpError{
			Op:   "domain.simulation_config",
			Kind: KindInvalidConfig,
			Err:  fmt.Errorf("mesh size must be positive, got %g", c.MeshSize),
		}
	}
	for name, sign := range c.CoilCurrents {
		if sign != 1 && sign != -1 {
			return &OpError{
				Op:   "domain.simulation_config",
				Kind: KindInvalidConfig,
				Err:  fmt.Errorf("coil %q: current must be 1 or -1, got %d", name, sign),
			}
		}
	}
	return nil
}
