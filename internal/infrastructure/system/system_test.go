package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekm-build/ekm/internal/domain/values"
)

func Test_ScanSources_FiltersAndSorts(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	require.NoError(t, os.MkdirAll(filepath.Join(src, "nested"), 0o755))
	for _, name := range []string{"util.c", "main.c", "scanner_old.c", "notes.txt", "header.h"} {
		require.NoError(t, os.WriteFile(filepath.Join(src, name), nil, 0o644))
	}

	sources, err := ScanSources(dir)

	require.NoError(t, err)
	assert.Equal(t, []string{"main", "util"}, sources)
}

func Test_ScanSources_MissingDir(t *testing.T) {
	t.Parallel()

	_, err := ScanSources(t.TempDir())

	assert.Error(t, err)
}

func Test_RunCommand_BareBinary(t *testing.T) {
	t.Parallel()

	argv := RunCommand("target/dev/demo", nil, []string{"--seed", "7"})

	assert.Equal(t, []string{"target/dev/demo", "--seed", "7"}, argv)
}

func Test_RunCommand_ShellTemplate(t *testing.T) {
	t.Parallel()

	spec := values.ShellRun("{bin} --seed {args} | head")
	argv := RunCommand("target/dev/demo", &spec, []string{"1", "2"})

	assert.Equal(t, []string{"sh", "-c", "target/dev/demo --seed 1 2 | head"}, argv)
}

func Test_RunCommand_ArgvTemplate(t *testing.T) {
	t.Parallel()

	spec := values.ArgvRun([]string{"valgrind", "{bin}", "{args}"})
	argv := RunCommand("target/dev/demo", &spec, []string{"--fast"})

	assert.Equal(t, []string{"valgrind", "target/dev/demo", "--fast"}, argv)
}

func Test_RunCommand_EmptyArgvFallsBackToBinary(t *testing.T) {
	t.Parallel()

	spec := values.ArgvRun(nil)
	argv := RunCommand("target/dev/demo", &spec, []string{"--seed", "7"})

	assert.Equal(t, []string{"target/dev/demo", "--seed", "7"}, argv)
}
