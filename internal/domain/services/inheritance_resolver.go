package services

import (
	"fmt"
	"sort"

	"github.com/ekm-build/ekm/internal/domain/entities"
	"github.com/ekm-build/ekm/internal/domain/values"
)

// InheritanceResolver resolves explicit inherits references between
// profiles. A profile may inherit single attributes from named parents and,
// via the wildcard key "all", every remaining attribute from one parent.
//
// Resolution is an explicit dependency-graph pass: parents are validated up
// front, profiles are processed in topological order level by level, and a
// stalled pass reports the implicated profiles as a cycle instead of
// looping.
type InheritanceResolver struct {
	merger *ProfileMerger
}

// NewInheritanceResolver creates a new inheritance resolver service.
func NewInheritanceResolver() *InheritanceResolver {
	return &InheritanceResolver{merger: NewProfileMerger()}
}

// Resolve computes the final record for every profile in the set. Profiles
// without inherits (or with an empty mapping) resolve to themselves; the
// rest resolve once all of their parents have. The returned records never
// carry an inherits mapping.
func (r *InheritanceResolver) Resolve(
	profiles map[string]*entities.Profile,
) (map[string]*entities.Profile, error) {
	parents, err := r.collectParents(profiles)
	if err != nil {
		return nil, err
	}

	// Kahn's algorithm over the parent edges. Dependents of a resolved
	// profile have their in-degree decremented; a pass that resolves
	// nothing while work remains means a cycle.
	inDegree := make(map[string]int, len(profiles))
	dependents := make(map[string][]string)
	for name, parentSet := range parents {
		inDegree[name] = len(parentSet)
		for parent := range parentSet {
			dependents[parent] = append(dependents[parent], name)
		}
	}

	resolved := make(map[string]*entities.Profile, len(profiles))
	for len(resolved) < len(profiles) {
		var ready []string
		for name := range profiles {
			if _, done := resolved[name]; done {
				continue
			}
			if inDegree[name] == 0 {
				ready = append(ready, name)
			}
		}

		if len(ready) == 0 {
			var remaining []string
			for name := range profiles {
				if _, done := resolved[name]; !done {
					remaining = append(remaining, name)
				}
			}
			sort.Strings(remaining)
			return nil, &entities.InheritanceCycleError{Profiles: remaining}
		}

		sort.Strings(ready)
		for _, name := range ready {
			resolved[name] = r.resolveOne(name, profiles[name], resolved)
			for _, dependent := range dependents[name] {
				inDegree[dependent]--
			}
		}
	}

	return resolved, nil
}

// collectParents validates every inherits mapping and returns the distinct
// parent names per profile. Empty parent names are ignored, matching an
// explicitly disabled inherits entry.
func (r *InheritanceResolver) collectParents(
	profiles map[string]*entities.Profile,
) (map[string]map[string]bool, error) {
	parents := make(map[string]map[string]bool, len(profiles))
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		profile := profiles[name]
		parents[name] = make(map[string]bool)
		for key, parent := range profile.Inherits {
			if key != entities.ReservedProfileName {
				if _, err := values.ParseAttribute(key); err != nil {
					return nil, &entities.AttributeValueError{
						Profile:   name,
						Attribute: "inherits",
						Cause:     err,
					}
				}
			}
			if parent == "" {
				continue
			}
			if _, declared := profiles[parent]; !declared {
				return nil, &entities.UnknownParentError{
					Profile:   name,
					Attribute: key,
					Parent:    parent,
				}
			}
			parents[name][parent] = true
		}
	}

	return parents, nil
}

// resolveOne computes the final record for a single profile whose parents
// are all resolved.
func (r *InheritanceResolver) resolveOne(
	name string,
	profile *entities.Profile,
	resolved map[string]*entities.Profile,
) *entities.Profile {
	// Start from the profile's own literal values.
	result := r.merger.Merge(nil, profile)

	// Explicitly named attributes first: the parent supplies the base, the
	// profile's own value wins (flag lists concatenate parent-then-own).
	// Every named key joins the exclusion set, even with an empty parent:
	// naming an attribute opts it out of the wildcard either way.
	explicit := make(map[values.Attribute]bool)
	for key, parentName := range profile.Inherits {
		if key == entities.ReservedProfileName {
			continue
		}
		attr, err := values.ParseAttribute(key)
		if err != nil {
			// Validated by collectParents; unreachable.
			panic(fmt.Sprintf("inheritance: %v", err))
		}
		explicit[attr] = true
		if parentName == "" {
			continue
		}
		r.merger.MergeAttribute(result, attr, resolved[parentName], profile)
	}

	// The wildcard covers the exact set difference: every attribute not
	// explicitly named above, merged the same way from the wildcard parent.
	if parentName, ok := profile.Inherits[entities.ReservedProfileName]; ok && parentName != "" {
		parent := resolved[parentName]
		for _, attr := range values.AllAttributes() {
			if explicit[attr] {
				continue
			}
			r.merger.MergeAttribute(result, attr, parent, profile)
		}
	}

	// Inherits is not propagated into resolved records.
	result.Inherits = nil
	return result
}
