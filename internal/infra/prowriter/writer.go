// Package prowriter emits the solver-side constants file that mirrors
// the physical group vocabulary, so the solver problem definition can
// reference groups by name.
package prowriter

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/lamdangelo/sketchmesh/internal/domain"
)

// WriteIdentifiers writes a DefineConstant block mapping group names to
// their integer tags, sorted by name for stable output.
func WriteIdentifiers(path string, identifiers map[string]int) error {
	if len(identifiers) == 0 {
		return &domain.OpError{
			Op:   "prowriter.write",
			Kind: domain.KindInvalidInput,
			Path: path,
			Err:  fmt.Errorf("no identifiers to write"),
		}
	}

	names := make([]string, 0, len(identifiers))
	for name := range identifiers {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("DefineConstant[\n")
	for i, name := range names {
		sep := ","
		if i == len(names)-1 {
			sep = ""
		}
		fmt.Fprintf(&b, "  %s = %d%s\n", name, identifiers[name], sep)
	}
	b.WriteString("];\n")

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return &domain.OpError{
			Op:   "prowriter.write",
			Kind: domain.KindInvalidInput,
			Path: path,
			Err:  err,
		}
	}
	return nil
}
