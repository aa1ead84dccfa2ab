package domain

import (
	"fmt"
	"strings"
)

// GroupKind distinguishes 2D domain groups from 1D boundary groups.
type GroupKind string

const (
	GroupDomain   GroupKind = "domain"
	GroupBoundary GroupKind = "boundary"
)

// PhysicalGroup is an immutable tag attached to mesh entities and consumed
// by the downstream field solver. The vocabulary is a fixed, closed set:
// the package-level instances below are the only valid groups, and they
// are never mutated.
type PhysicalGroup struct {
	name        string
	kind        GroupKind
	value       int
	color       Color // zero for colorless boundary groups
	currentSign int   // +1 or -1 for coil domains, 0 otherwise
}

// The fixed physical-group vocabulary. Tag values match the solver's
// identifier table.
var (
	DomainVa           = PhysicalGroup{name: "domain_Va", kind: GroupDomain, value: 1, color: Black}
	DomainViIron       = PhysicalGroup{name: "domain_Vi_iron", kind: GroupDomain, value: 2, color: Blue}
	DomainViAir        = PhysicalGroup{name: "domain_Vi_air", kind: GroupDomain, value: 3, color: Green}
	DomainCoilPositive = PhysicalGroup{name: "domain_coil_positive", kind: GroupDomain, value: 101, color: Red, currentSign: 1}
	DomainCoilNegative = PhysicalGroup{name: "domain_coil_negative", kind: GroupDomain, value: 102, color: Red, currentSign: -1}
	BoundaryGamma      = PhysicalGroup{name: "boundary_gamma", kind: GroupBoundary, value: 11}
	BoundaryOut        = PhysicalGroup{name: "boundary_out", kind: GroupBoundary, value: 12}
)

// PhysicalGroups lists the full vocabulary in tag-value order.
func PhysicalGroups() []PhysicalGroup {
	return []PhysicalGroup{
		DomainVa, DomainViIron, DomainViAir,
		BoundaryGamma, BoundaryOut,
		DomainCoilPositive, DomainCoilNegative,
	}
}

// PhysicalIdentifiers returns the name-to-tag table handed to the solver.
func PhysicalIdentifiers() map[string]int {
	out := make(map[string]int)
	for _, g := range PhysicalGroups() {
		out[g.name] = g.value
	}
	return out
}

func (g PhysicalGroup) Name() string    { return g.name }
func (g PhysicalGroup) Kind() GroupKind { return g.kind }
func (g PhysicalGroup) Value() int      { return g.value }
func (g PhysicalGroup) Color() Color    { return g.color }

// CurrentSign returns +1 or -1 for coil domains and 0 for every other
// group.
func (g PhysicalGroup) CurrentSign() int { return g.currentSign }

func (g PhysicalGroup) IsDomain() bool   { return g.kind == GroupDomain }
func (g PhysicalGroup) IsBoundary() bool { return g.kind == GroupBoundary }

// IsCoil reports whether g is a coil domain (the only groups carrying a
// current sign).
func (g PhysicalGroup) IsCoil() bool {
	return g.kind == GroupDomain && strings.Contains(strings.ToLower(g.name), "coil")
}

// Validate checks the group invariants: a current sign is set iff the
// group is a red coil domain.
func (g PhysicalGroup) Validate() error {
	if g.name == "" {
		return &OpError{Op: "domain.physical_group", Kind: KindInvalidInput, Err: fmt.Errorf("physical group has no name")}
	}
	if g.kind != GroupDomain && g.kind != GroupBoundary {
		return &OpError{Op: "domain.physical_group", Kind: KindInvalidInput, Err: fmt.Errorf("invalid group kind %q", g.kind)}
	}
	if g.currentSign != 0 && g.currentSign != 1 && g.currentSign != -1 {
		return &OpError{Op: "domain.physical_group", Kind: KindInvalidInput, Err: fmt.Errorf("invalid current sign %d", g.currentSign)}
	}
	if g.IsCoil() {
		if g.currentSign == 0 {
			return &OpError{Op: "domain.physical_group", Kind: KindInvalidInput, Err: fmt.Errorf("coil domain %q must have a current sign", g.name)}
		}
		if g.color != Red {
			return &OpError{Op: "domain.physical_group", Kind: KindInvalidInput, Err: fmt.Errorf("coil domain %q must be red", g.name)}
		}
	} else if g.currentSign != 0 {
		return &OpError{Op: "domain.physical_group", Kind: KindInvalidInput, Err: fmt.Errorf("non-coil group %q cannot have a current sign", g.name)}
	}
	return nil
}

func (g PhysicalGroup) String() string {
	return fmt.Sprintf("%s(%s=%d)", g.name, g.kind, g.value)
}
