// Package system provides infrastructure for interacting with the project
// on disk: source discovery and subprocess execution of the build executor
// and built binaries.
package system

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ekm-build/ekm/internal/infrastructure/ninja"
)

// ScanSources lists the project's C source base names (no directory, no .c
// extension), sorted so generated build scripts are deterministic. Files
// ending in _old.c are parked sources and are skipped.
func ScanSources(projectDir string) ([]string, error) {
	dir := filepath.Join(projectDir, ninja.SourceDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	var sources []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".c") || strings.HasSuffix(name, "_old.c") {
			continue
		}
		sources = append(sources, strings.TrimSuffix(name, ".c"))
	}

	sort.Strings(sources)
	return sources, nil
}
