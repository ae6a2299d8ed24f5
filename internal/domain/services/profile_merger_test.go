package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekm-build/ekm/internal/domain/entities"
	"github.com/ekm-build/ekm/internal/domain/values"
)

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }
func debugp(d values.Debug) *values.Debug { return &d }

func Test_ProfileMerger_Merge_UnsetIsIdentity(t *testing.T) {
	t.Parallel()
	merger := NewProfileMerger()

	full := &entities.Profile{
		Debug:    debugp(values.DebugLevel(2)),
		Warn:     []string{"all"},
		Sanitize: []string{"address"},
		CFlags:   []string{"-std=c11"},
		LDFlags:  []string{"-lm"},
		LTO:      boolp(true),
		CC:       strp("clang"),
		Out:      strp("demo"),
		OptLevel: strp("2"),
	}

	fromBase := merger.Merge(full, &entities.Profile{})
	fromOverride := merger.Merge(&entities.Profile{}, full)

	assert.Equal(t, full, fromBase)
	assert.Equal(t, full, fromOverride)
}

func Test_ProfileMerger_Merge_NilInputsYieldUnset(t *testing.T) {
	t.Parallel()
	merger := NewProfileMerger()

	result := merger.Merge(nil, nil)

	assert.Equal(t, &entities.Profile{}, result)
}

func Test_ProfileMerger_Merge_JoinableConcatenatesInOrder(t *testing.T) {
	t.Parallel()
	merger := NewProfileMerger()

	base := &entities.Profile{
		CFlags:  []string{"-std=c11", "-Ivendor"},
		LDFlags: []string{"-lm"},
	}
	override := &entities.Profile{
		CFlags:  []string{"-Ivendor", "-DNDEBUG"}, // duplicate kept
		LDFlags: []string{"-lpthread"},
	}

	result := merger.Merge(base, override)

	assert.Equal(t, []string{"-std=c11", "-Ivendor", "-Ivendor", "-DNDEBUG"}, result.CFlags)
	assert.Equal(t, []string{"-lm", "-lpthread"}, result.LDFlags)
}

func Test_ProfileMerger_Merge_OverrideWinsOnScalarAttributes(t *testing.T) {
	t.Parallel()
	merger := NewProfileMerger()

	base := &entities.Profile{
		CC:       strp("gcc"),
		Out:      strp("base-out"),
		Debug:    debugp(values.DebugLevel(0)),
		OptLevel: strp("0"),
		LTO:      boolp(false),
	}
	override := &entities.Profile{
		CC:       strp("clang"),
		Debug:    debugp(values.DebugSuffix("dwarf")),
		OptLevel: strp("3"),
		LTO:      boolp(true),
		// Out unset: base value survives
	}

	result := merger.Merge(base, override)

	require.NotNil(t, result.CC)
	assert.Equal(t, "clang", *result.CC)
	assert.Equal(t, "base-out", *result.Out)
	assert.Equal(t, values.DebugSuffix("dwarf"), *result.Debug)
	assert.Equal(t, "3", *result.OptLevel)
	assert.True(t, *result.LTO)
}

func Test_ProfileMerger_Merge_ExplicitEmptyListOverridesBase(t *testing.T) {
	t.Parallel()
	merger := NewProfileMerger()

	base := &entities.Profile{Warn: []string{"all", "error"}}
	override := &entities.Profile{Warn: []string{}}

	result := merger.Merge(base, override)

	require.NotNil(t, result.Warn, "explicit empty list is set, not unset")
	assert.Empty(t, result.Warn)
}

func Test_ProfileMerger_Merge_InheritsOverrideWins(t *testing.T) {
	t.Parallel()
	merger := NewProfileMerger()

	base := &entities.Profile{Inherits: map[string]string{"all": "release"}}
	override := &entities.Profile{Inherits: map[string]string{"cflags": "dev"}}

	result := merger.Merge(base, override)

	assert.Equal(t, map[string]string{"cflags": "dev"}, result.Inherits)

	kept := merger.Merge(base, &entities.Profile{})
	assert.Equal(t, map[string]string{"all": "release"}, kept.Inherits)
}

func Test_ProfileMerger_Merge_DoesNotMutateInputs(t *testing.T) {
	t.Parallel()
	merger := NewProfileMerger()

	base := &entities.Profile{CFlags: []string{"-std=c11"}, CC: strp("gcc")}
	override := &entities.Profile{CFlags: []string{"-DNDEBUG"}}

	result := merger.Merge(base, override)
	result.CFlags[0] = "mutated"
	*result.CC = "mutated"

	assert.Equal(t, []string{"-std=c11"}, base.CFlags)
	assert.Equal(t, []string{"-DNDEBUG"}, override.CFlags)
	assert.Equal(t, "gcc", *base.CC)
}

func Test_ProfileMerger_MergeAttribute_SingleAttributeOnly(t *testing.T) {
	t.Parallel()
	merger := NewProfileMerger()

	base := &entities.Profile{CFlags: []string{"-Wall"}, CC: strp("gcc")}
	override := &entities.Profile{CFlags: []string{"-Wextra"}, CC: strp("clang")}

	result := &entities.Profile{}
	merger.MergeAttribute(result, values.AttrCFlags, base, override)

	assert.Equal(t, []string{"-Wall", "-Wextra"}, result.CFlags)
	assert.Nil(t, result.CC, "untouched attributes stay unset")
}
