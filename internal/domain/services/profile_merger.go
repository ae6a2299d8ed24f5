package services

import (
	"github.com/ekm-build/ekm/internal/domain/entities"
	"github.com/ekm-build/ekm/internal/domain/values"
)

// ProfileMerger combines two profiles attribute by attribute. This is a
// DOMAIN SERVICE because the merge semantics are the business rules of the
// whole resolver.
//
// Merge Semantics:
//   - Joinable attributes (cflags, ldflags): when both sides carry a value
//     the result is base followed by override, order preserved, duplicates
//     kept. Concatenation is associative but not commutative, so every call
//     site documents which side is the base layer.
//   - Every other attribute (including inherits): override wins when set,
//     otherwise the base value is kept. An unset override never erases a
//     set base value, and two unset sides stay unset.
//
// Inputs are never mutated; results are always freshly allocated.
type ProfileMerger struct{}

// NewProfileMerger creates a new profile merger service.
func NewProfileMerger() *ProfileMerger {
	return &ProfileMerger{}
}

// Merge combines every attribute of base and override into a new profile.
// Either input may be nil, which reads as the fully-unset profile.
func (m *ProfileMerger) Merge(base, override *entities.Profile) *entities.Profile {
	if base == nil {
		base = &entities.Profile{}
	}
	if override == nil {
		override = &entities.Profile{}
	}

	result := &entities.Profile{}
	result.Inherits = mergeInherits(base.Inherits, override.Inherits)
	for _, attr := range values.AllAttributes() {
		m.MergeAttribute(result, attr, base, override)
	}
	return result
}

// MergeAttribute sets exactly one attribute of result from base and
// override, applying that attribute's merge rule. The switch is exhaustive
// over the attribute enum; there is no name-based field access anywhere in
// the resolver.
func (m *ProfileMerger) MergeAttribute(
	result *entities.Profile,
	attr values.Attribute,
	base, override *entities.Profile,
) {
	switch attr {
	case values.AttrCFlags:
		result.CFlags = mergeFlagList(base.CFlags, override.CFlags)
	case values.AttrLDFlags:
		result.LDFlags = mergeFlagList(base.LDFlags, override.LDFlags)
	case values.AttrWarn:
		result.Warn = overrideSlice(base.Warn, override.Warn)
	case values.AttrSanitize:
		result.Sanitize = overrideSlice(base.Sanitize, override.Sanitize)
	case values.AttrDebug:
		result.Debug = overridePtr(base.Debug, override.Debug)
	case values.AttrLTO:
		result.LTO = overridePtr(base.LTO, override.LTO)
	case values.AttrCC:
		result.CC = overridePtr(base.CC, override.CC)
	case values.AttrOut:
		result.Out = overridePtr(base.Out, override.Out)
	case values.AttrRun:
		result.Run = overridePtr(base.Run, override.Run)
	case values.AttrOptLevel:
		result.OptLevel = overridePtr(base.OptLevel, override.OptLevel)
	}
}

// mergeFlagList applies the joinable rule: base first, override appended.
// An unset side yields a copy of the other; two unset sides stay unset.
func mergeFlagList(base, override []string) []string {
	if base == nil {
		return CopyStringSlice(override)
	}
	if override == nil {
		return CopyStringSlice(base)
	}
	result := make([]string, 0, len(base)+len(override))
	result = append(result, base...)
	result = append(result, override...)
	return result
}

// overrideSlice applies the override rule to a list attribute. A set but
// empty override still wins over the base.
func overrideSlice(base, override []string) []string {
	if override != nil {
		return CopyStringSlice(override)
	}
	return CopyStringSlice(base)
}

// overridePtr applies the override rule to an optional scalar attribute.
func overridePtr[T any](base, override *T) *T {
	if override != nil {
		return copyPtr(override)
	}
	return copyPtr(base)
}

// mergeInherits applies the override rule to the inherits mapping.
func mergeInherits(base, override map[string]string) map[string]string {
	if override != nil {
		return CopyInherits(override)
	}
	return CopyInherits(base)
}
