package yamlconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lamdangelo/sketchmesh/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sim.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := NewLoader().LoadSimulationConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MeshSize != domain.DefaultMeshSize {
		t.Fatalf("expected default mesh size, got %g", cfg.MeshSize)
	}
	if len(cfg.CoilCurrents) != 0 {
		t.Fatalf("expected no coil currents, got %v", cfg.CoilCurrents)
	}
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, "coil_currents:\n  coil_1: 1\n  coil_2: -1\nmesh_size: 0.05\n")

	cfg, err := NewLoader().LoadSimulationConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MeshSize != 0.05 {
		t.Fatalf("expected mesh size 0.05, got %g", cfg.MeshSize)
	}
	if cfg.CoilCurrents["coil_1"] != 1 || cfg.CoilCurrents["coil_2"] != -1 {
		t.Fatalf("coil currents mismatch: %v", cfg.CoilCurrents)
	}
}

func TestLoadOmittedMeshSizeDefaults(t *testing.T) {
	path := writeConfig(t, "coil_currents:\n  coil_1: -1\n")

	cfg, err := NewLoader().LoadSimulationConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MeshSize != domain.DefaultMeshSize {
		t.Fatalf("expected default mesh size, got %g", cfg.MeshSize)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewLoader().LoadSimulationConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found kind, got %v", err)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "coil_currents: [not: a map\n")

	_, err := NewLoader().LoadSimulationConfig(path)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid config kind, got %v", err)
	}
}

func TestLoadInvalidCurrentSign(t *testing.T) {
	path := writeConfig(t, "coil_currents:\n  coil_1: 5\n")

	_, err := NewLoader().LoadSimulationConfig(path)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid config kind, got %v", err)
	}
}
