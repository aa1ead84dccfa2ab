// Package domain contains the core geometric model for sketchmesh.
//
// The domain is format- and engine-agnostic: it does not depend on SVG
// parsing, YAML loading, or any geometry engine. Infra/adapters map
// into/from these types.
package domain
