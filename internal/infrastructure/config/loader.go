package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/ekm-build/ekm/internal/domain/entities"
	"github.com/ekm-build/ekm/internal/version"
)

// Declaration file names probed in the project root, in order.
var projectFileNames = []string{"ekm.toml", "ekm.yaml"}

// ErrNoProjectFile indicates the project root has no declaration file.
var ErrNoProjectFile = errors.New("no ekm.toml or ekm.yaml found")

// document is the top-level shape of a declaration file.
type document struct {
	// Version is an optional semver constraint on the tool version.
	Version string `toml:"ekm-version" yaml:"ekm-version"`
	// Profiles maps profile names to their raw attribute records.
	Profiles map[string]map[string]any `toml:"profile" yaml:"profile"`
}

// DeclarationLoader reads declaration files from disk.
type DeclarationLoader struct{}

// NewDeclarationLoader creates a new declaration loader.
func NewDeclarationLoader() *DeclarationLoader {
	return &DeclarationLoader{}
}

// LoadProject loads the project-local declaration file from dir, probing
// ekm.toml then ekm.yaml. A missing file is ErrNoProjectFile.
func (l *DeclarationLoader) LoadProject(dir string) (*Declarations, error) {
	for _, name := range projectFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return l.LoadFile(path)
	}
	return nil, fmt.Errorf("%w in %s", ErrNoProjectFile, dir)
}

// LoadGlobal loads the user-global declaration file, using override when
// non-empty. A missing global file is not an error: the base set is empty.
func (l *DeclarationLoader) LoadGlobal(override string) (*Declarations, error) {
	paths := []string{override}
	if override == "" {
		paths = defaultGlobalPaths()
	}

	for _, path := range paths {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return l.LoadFile(path)
	}

	slog.Debug("no global profile declarations found")
	return &Declarations{Profiles: map[string]*entities.Profile{}}, nil
}

// LoadFile loads one declaration file, selecting the parser by extension.
func (l *DeclarationLoader) LoadFile(path string) (*Declarations, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported declaration format %q", filepath.Ext(path))
	}

	if err := checkToolVersion(doc.Version); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	decls, err := decodeProfiles(doc.Profiles)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return decls, nil
}

// defaultGlobalPaths returns the global declaration file candidates,
// honoring XDG_DATA_HOME with the usual ~/.local/share fallback.
func defaultGlobalPaths() []string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	dir := filepath.Join(dataHome, "ekm")
	return []string{filepath.Join(dir, "ekm.toml"), filepath.Join(dir, "ekm.yaml")}
}

// checkToolVersion enforces a declaration file's ekm-version constraint.
// Development builds carry an unparsable version and skip the gate.
func checkToolVersion(constraint string) error {
	if constraint == "" {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("invalid ekm-version constraint %q: %w", constraint, err)
	}

	v, err := semver.NewVersion(version.Get().Version)
	if err != nil {
		slog.Debug("skipping ekm-version gate", "version", version.Get().Version)
		return nil
	}

	if !c.Check(v) {
		return fmt.Errorf("project requires ekm version %q, running %s", constraint, v)
	}
	return nil
}
