package domain

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestOpErrorMessage(t *testing.T) {
	err := &OpError{
		Op:   "svgparse.extract",
		Kind: KindInvalidInput,
		Path: "sketch.svg",
		Err:  fmt.Errorf("boom"),
	}
	msg := err.Error()
	for _, part := range []string{"svgparse.extract", "invalid_input", "sketch.svg", "boom"} {
		if !strings.Contains(msg, part) {
			t.Fatalf("message %q missing %q", msg, part)
		}
	}
}

func TestOpErrorUnwrap(t *testing.T) {
	inner := errors.New("inner")
	err := &OpError{Op: "x", Kind: KindGeometry, Err: inner}
	if !errors.Is(err, inner) {
		t.Fatalf("expected errors.Is to reach the wrapped error")
	}
}

func TestIsKind(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &OpError{Op: "x", Kind: KindDanglingHole})
	if !IsKind(err, KindDanglingHole) {
		t.Fatalf("IsKind should see through wrapping")
	}
	if IsKind(err, KindNotFound) {
		t.Fatalf("IsKind must not match a different kind")
	}
	if IsKind(errors.New("plain"), KindNotFound) {
		t.Fatalf("plain errors carry no kind")
	}
}

func TestSimulationConfigValidate(t *testing.T) {
	cfg := DefaultSimulationConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}

	cfg.CoilCurrents = map[string]int{"coil_1": 2}
	if err := cfg.Validate(); !IsKind(err, KindInvalidConfig) {
		t.Fatalf("expected invalid config for sign 2, got %v", err)
	}

	cfg = DefaultSimulationConfig()
	cfg.MeshSize = 0
	if err := cfg.Validate(); !IsKind(err, KindInvalidConfig) {
		t.Fatalf("expected invalid config for zero mesh size, got %v", err)
	}
}
