package services

import (
	"github.com/ekm-build/ekm/internal/domain/entities"
)

// LayerResolver produces the initial fully-layered profile per name, before
// graph inheritance is applied.
//
// Layer order, lowest to highest: the user-global profile of the same name,
// the project's shared "all" block, the project's own declaration. The
// declaration wins on override attributes; joinable flag lists concatenate
// global-then-all-then-declared.
type LayerResolver struct {
	merger *ProfileMerger
}

// NewLayerResolver creates a new layer resolver service.
func NewLayerResolver() *LayerResolver {
	return &LayerResolver{merger: NewProfileMerger()}
}

// Resolve layers every profile in the union of the global base names and the
// project-declared names. The reserved name "all" never appears in the
// result.
//
// A project declaration carrying an inherits key is exempt from layering:
// its effective values depend on graph resolution, so it is carried through
// untouched for the inheritance resolver. A layered result may still carry
// an inherits mapping contributed by the global base; the inheritance
// resolver picks those up as well.
func (r *LayerResolver) Resolve(
	base map[string]*entities.Profile,
	projectAll *entities.Profile,
	declared map[string]*entities.Profile,
) map[string]*entities.Profile {
	result := make(map[string]*entities.Profile, len(base)+len(declared))

	for name := range base {
		if name == entities.ReservedProfileName {
			continue
		}
		result[name] = r.layerOne(base[name], projectAll, declared[name])
	}
	for name, decl := range declared {
		if name == entities.ReservedProfileName {
			continue
		}
		if _, done := result[name]; done {
			continue
		}
		result[name] = r.layerOne(base[name], projectAll, decl)
	}

	return result
}

// layerOne layers a single profile. Any of the three layers may be nil.
func (r *LayerResolver) layerOne(
	global, projectAll, declared *entities.Profile,
) *entities.Profile {
	if declared != nil && declared.HasInherits() {
		return CloneProfile(declared)
	}
	// Base layer: global same-named profile. Overridden by the project's
	// shared "all" block, overridden again by the declaration itself.
	return r.merger.Merge(r.merger.Merge(global, projectAll), declared)
}
