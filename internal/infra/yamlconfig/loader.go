// Package yamlconfig loads the simulation configuration from YAML.
package yamlconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lamdangelo/sketchmesh/internal/domain"
	"github.com/lamdangelo/sketchmesh/internal/ports"
	"gopkg.in/yaml.v3"
)

type Loader struct{}

var _ ports.ConfigLoader = (*Loader)(nil)

func NewLoader() *Loader {
	return &Loader{}
}

type yamlConfig struct {
	CoilCurrents map[string]int `yaml:"coil_currents"`
	MeshSize     *float64       `yaml:"mesh_size"`
}

// LoadSimulationConfig reads a YAML config file. An empty path returns
// the defaults. mesh_size falls back to the default when omitted; coil
// current signs must be +1 or -1.
func (l *Loader) LoadSimulationConfig(path string) (domain.SimulationConfig, error) {
	if path == "" {
		return domain.DefaultSimulationConfig(), nil
	}
	path = filepath.Clean(path)

	b, err := os.ReadFile(path)
	if err != nil {
		return domain.SimulationConfig{}, &domain.OpError{
			Op:   "yamlconfig.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return domain.SimulationConfig{}, &domain.OpError{
			Op:   "yamlconfig.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	cfg := domain.DefaultSimulationConfig()
	if y.CoilCurrents != nil {
		cfg.CoilCurrents = y.CoilCurrents
	}
	if y.MeshSize != nil {
		cfg.MeshSize = *y.MeshSize
	}

	if err := cfg.Validate(); err != nil {
		return domain.SimulationConfig{}, &domain.OpError{
			Op:   "yamlconfig.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("invalid configuration: %w", err),
		}
	}
	return cfg, nil
}
