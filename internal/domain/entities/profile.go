// Package entities contains domain entities for the ekm domain model.
// These are pure domain types with NO infrastructure dependencies.
package entities

import (
	"github.com/ekm-build/ekm/internal/domain/values"
)

// ReservedProfileName is the pseudo-profile holding a project's shared
// defaults. It participates in layering only and can never be selected.
const ReservedProfileName = "all"

// Profile is a named, partially specified build configuration.
//
// Invariant: every field is independently nullable. A nil pointer or nil
// slice means "unset", which is distinct from any concrete value including
// an explicit empty list. The merge engine relies on that distinction to
// decide whether a layer contributes a value.
type Profile struct {
	// Inherits maps attribute keys (or the wildcard "all") to parent profile
	// names. A nil map means the profile takes no part in graph inheritance;
	// a non-nil map, even an empty one, opts the profile out of plain
	// layering.
	Inherits map[string]string

	Debug    *values.Debug
	Warn     []string
	Sanitize []string
	CFlags   []string
	LDFlags  []string
	LTO      *bool
	CC       *string
	Out      *string
	Run      *values.RunSpec
	OptLevel *string
}

// HasInherits reports whether the profile declares graph inheritance.
func (p *Profile) HasInherits() bool {
	return p.Inherits != nil
}
