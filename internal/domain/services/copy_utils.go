// Package services contains domain services for the ekm domain model.
// These are stateless services that encapsulate the resolution rules.
package services

import (
	"github.com/ekm-build/ekm/internal/domain/entities"
)

// CloneProfile creates a complete deep copy of a profile. Resolution works
// on copies so that merge inputs are never mutated.
func CloneProfile(original *entities.Profile) *entities.Profile {
	if original == nil {
		return nil
	}

	return &entities.Profile{
		Inherits: CopyInherits(original.Inherits),
		Debug:    copyPtr(original.Debug),
		Warn:     CopyStringSlice(original.Warn),
		Sanitize: CopyStringSlice(original.Sanitize),
		CFlags:   CopyStringSlice(original.CFlags),
		LDFlags:  CopyStringSlice(original.LDFlags),
		LTO:      copyPtr(original.LTO),
		CC:       copyPtr(original.CC),
		Out:      copyPtr(original.Out),
		Run:      copyPtr(original.Run),
		OptLevel: copyPtr(original.OptLevel),
	}
}

// CopyStringSlice creates a deep copy of a string slice, preserving the
// nil/empty distinction.
func CopyStringSlice(src []string) []string {
	if src == nil {
		return nil
	}
	dst := make([]string, len(src))
	copy(dst, src)
	return dst
}

// CopyInherits creates a deep copy of an inherits mapping, preserving the
// nil/empty distinction.
func CopyInherits(src map[string]string) map[string]string {
	if src == nil {
		return nil
	}
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// copyPtr copies an optional value, preserving unset as nil.
func copyPtr[T any](src *T) *T {
	if src == nil {
		return nil
	}
	v := *src
	return &v
}
