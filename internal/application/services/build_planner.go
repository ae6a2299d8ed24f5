// Package services contains application services orchestrating the
// resolution pipeline: declarations in, a concrete build plan out.
package services

import (
	"fmt"
	"path/filepath"

	"github.com/ekm-build/ekm/internal/domain/entities"
	domain "github.com/ekm-build/ekm/internal/domain/services"
	"github.com/ekm-build/ekm/internal/infrastructure/config"
	"github.com/ekm-build/ekm/internal/infrastructure/ninja"
	"github.com/ekm-build/ekm/internal/infrastructure/system"
)

// BuildPlan is everything a command needs to build or run one profile.
type BuildPlan struct {
	ProjectName string
	Profile     string
	Resolved    *entities.Profile
	Flags       *entities.FlagSet
	Sources     []string
	Script      string
	BuildDir    string
	BuildFile   string
	Binary      string
}

// BuildPlanner resolves profiles and materializes build plans. It wires the
// declaration loader to the domain resolution pipeline.
type BuildPlanner struct {
	loader       *config.DeclarationLoader
	layers       *domain.LayerResolver
	inheritance  *domain.InheritanceResolver
	materializer *domain.FlagMaterializer

	// GlobalOverride replaces the default user-global declaration path.
	GlobalOverride string
}

// NewBuildPlanner creates a build planner.
func NewBuildPlanner() *BuildPlanner {
	return &BuildPlanner{
		loader:       config.NewDeclarationLoader(),
		layers:       domain.NewLayerResolver(),
		inheritance:  domain.NewInheritanceResolver(),
		materializer: domain.NewFlagMaterializer(),
	}
}

// ResolveProfiles runs layering and graph inheritance for every profile
// visible from projectDir: the user-global base first, the project
// declarations over it.
func (p *BuildPlanner) ResolveProfiles(projectDir string) (map[string]*entities.Profile, error) {
	global, err := p.loader.LoadGlobal(p.GlobalOverride)
	if err != nil {
		return nil, err
	}
	// The global file layers against its own "all" block, without a base.
	base := p.layers.Resolve(nil, global.All, global.Profiles)

	project, err := p.loader.LoadProject(projectDir)
	if err != nil {
		return nil, err
	}

	layered := p.layers.Resolve(base, project.All, project.Profiles)
	return p.inheritance.Resolve(layered)
}

// Plan resolves the named profile and materializes a full build plan for
// the project at projectDir.
func (p *BuildPlanner) Plan(projectDir, profileName string) (*BuildPlan, error) {
	if profileName == entities.ReservedProfileName {
		return nil, fmt.Errorf("%q is the shared-defaults block and cannot be selected", profileName)
	}

	resolved, err := p.ResolveProfiles(projectDir)
	if err != nil {
		return nil, err
	}

	profile, ok := resolved[profileName]
	if !ok {
		return nil, &entities.UnknownProfileError{Name: profileName}
	}

	projectName, err := projectNameOf(projectDir)
	if err != nil {
		return nil, err
	}
	flags := p.materializer.Materialize(projectName, profile)

	sources, err := system.ScanSources(projectDir)
	if err != nil {
		return nil, err
	}

	gen := ninja.NewGenerator(profileName, flags)
	return &BuildPlan{
		ProjectName: projectName,
		Profile:     profileName,
		Resolved:    profile,
		Flags:       flags,
		Sources:     sources,
		Script:      gen.Generate(sources),
		BuildDir:    gen.BuildDir(),
		BuildFile:   gen.BuildFile(),
		Binary:      gen.BinaryPath(),
	}, nil
}

// projectNameOf derives the default output name from the project directory.
func projectNameOf(projectDir string) (string, error) {
	abs, err := filepath.Abs(projectDir)
	if err != nil {
		return "", fmt.Errorf("resolving project directory: %w", err)
	}
	return filepath.Base(abs), nil
}
