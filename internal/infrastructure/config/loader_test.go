package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekm-build/ekm/internal/domain/entities"
	"github.com/ekm-build/ekm/internal/domain/values"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func Test_DeclarationLoader_LoadProject_TOML(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "ekm.toml", `
[profile.all]
opt-level = 2

[profile.dev]
debug = 2
warn = ["all", "extra"]

[profile.release]
opt-level = 3
lto = true
`)

	decls, err := NewDeclarationLoader().LoadProject(dir)

	require.NoError(t, err)
	require.NotNil(t, decls.All)
	assert.Equal(t, "2", *decls.All.OptLevel)
	require.Contains(t, decls.Profiles, "dev")
	assert.Equal(t, values.DebugLevel(2), *decls.Profiles["dev"].Debug)
	assert.Equal(t, []string{"all", "extra"}, decls.Profiles["dev"].Warn)
	assert.True(t, *decls.Profiles["release"].LTO)
	assert.NotContains(t, decls.Profiles, "all")
}

func Test_DeclarationLoader_LoadProject_YAML(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "ekm.yaml", `
profile:
  dev:
    cc: clang
    cflags: -std=c11
`)

	decls, err := NewDeclarationLoader().LoadProject(dir)

	require.NoError(t, err)
	dev := decls.Profiles["dev"]
	require.NotNil(t, dev)
	assert.Equal(t, "clang", *dev.CC)
	assert.Equal(t, []string{"-std=c11"}, dev.CFlags, "bare string coerces to a one-element list")
}

func Test_DeclarationLoader_LoadProject_PrefersTOML(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "ekm.toml", "[profile.dev]\ncc = \"gcc\"\n")
	writeFile(t, dir, "ekm.yaml", "profile:\n  dev:\n    cc: clang\n")

	decls, err := NewDeclarationLoader().LoadProject(dir)

	require.NoError(t, err)
	assert.Equal(t, "gcc", *decls.Profiles["dev"].CC)
}

func Test_DeclarationLoader_LoadProject_Missing(t *testing.T) {
	t.Parallel()

	_, err := NewDeclarationLoader().LoadProject(t.TempDir())

	assert.ErrorIs(t, err, ErrNoProjectFile)
}

func Test_DeclarationLoader_LoadFile_MalformedTOML(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, "ekm.toml", "[profile.dev\ndebug = ")

	_, err := NewDeclarationLoader().LoadFile(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), path, "parse errors carry the file path")
}

func Test_DeclarationLoader_LoadGlobal_MissingIsEmpty(t *testing.T) {
	t.Parallel()

	decls, err := NewDeclarationLoader().LoadGlobal(filepath.Join(t.TempDir(), "absent.toml"))

	require.NoError(t, err)
	assert.Nil(t, decls.All)
	assert.Empty(t, decls.Profiles)
}

func Test_DeclarationLoader_LoadGlobal_Override(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, "global.toml", "[profile.dev]\ncc = \"gcc\"\n")

	decls, err := NewDeclarationLoader().LoadGlobal(path)

	require.NoError(t, err)
	assert.Equal(t, "gcc", *decls.Profiles["dev"].CC)
}

func Test_DeclarationLoader_LoadFile_VersionGate(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	// The dev build version is not semver, so the gate only validates the
	// constraint itself.
	ok := writeFile(t, dir, "ok.toml", "ekm-version = \">= 0.1\"\n[profile.dev]\ndebug = 1\n")
	_, err := NewDeclarationLoader().LoadFile(ok)
	assert.NoError(t, err)

	bad := writeFile(t, dir, "bad.toml", "ekm-version = \"not a constraint ><\"\n")
	_, err = NewDeclarationLoader().LoadFile(bad)
	assert.Error(t, err)
}

func Test_decodeProfile_Coercions(t *testing.T) {
	t.Parallel()

	profile, err := decodeProfile("dev", map[string]any{
		"warn":      "all",
		"sanitize":  []any{"address", "undefined"},
		"inherits":  "release",
		"debug":     "3",
		"opt-level": int64(2),
		"lto":       "thin",
		"run":       []any{"{bin}", "--seed", "{args}"},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"all"}, profile.Warn)
	assert.Equal(t, []string{"address", "undefined"}, profile.Sanitize)
	assert.Equal(t, map[string]string{"all": "release"}, profile.Inherits)
	assert.Equal(t, values.DebugLevel(3), *profile.Debug, "numeric-looking string coerces to a level")
	assert.Equal(t, "2", *profile.OptLevel)
	assert.True(t, *profile.LTO, "non-empty string is truthy")
	argv, ok := profile.Run.Argv()
	require.True(t, ok)
	assert.Equal(t, []string{"{bin}", "--seed", "{args}"}, argv)
}

func Test_decodeProfile_DebugSuffix(t *testing.T) {
	t.Parallel()

	profile, err := decodeProfile("dev", map[string]any{"debug": "split-dwarf"})

	require.NoError(t, err)
	assert.Equal(t, values.DebugSuffix("split-dwarf"), *profile.Debug)
}

func Test_decodeProfile_InvalidValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		record map[string]any
	}{
		{"debug float", map[string]any{"debug": 1.5}},
		{"warn number", map[string]any{"warn": 42}},
		{"lto number", map[string]any{"lto": 1}},
		{"inherits number", map[string]any{"inherits": 7}},
		{"run mixed list", map[string]any{"run": []any{"{bin}", 3}}},
		{"run empty list", map[string]any{"run": []any{}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := decodeProfile("dev", tc.record)
			var attrErr *entities.AttributeValueError
			require.ErrorAs(t, err, &attrErr)
			assert.Equal(t, "dev", attrErr.Profile)
		})
	}
}

func Test_decodeProfiles_AllBlockCannotInherit(t *testing.T) {
	t.Parallel()

	_, err := decodeProfiles(map[string]map[string]any{
		"all": {"inherits": "dev"},
	})

	var attrErr *entities.AttributeValueError
	assert.ErrorAs(t, err, &attrErr)
}

func Test_decodeProfile_UnknownAttributeIgnored(t *testing.T) {
	t.Parallel()

	profile, err := decodeProfile("dev", map[string]any{"colour": "mauve"})

	require.NoError(t, err)
	assert.Equal(t, &entities.Profile{}, profile)
}
