// Package ninja generates build scripts for the ninja build executor.
// The script encodes exactly two rules: a compile rule per source file with
// gcc-style depfile tracking, and a link rule producing the named output.
package ninja

import (
	"path"
	"strings"

	"github.com/ekm-build/ekm/internal/domain/entities"
)

// SourceDir is the project-relative directory holding C sources.
const SourceDir = "src"

// targetDir is the project-relative root of all build outputs.
const targetDir = "target"

// Generator renders a build script from one profile's concrete flag set.
type Generator struct {
	profile string
	flags   *entities.FlagSet
}

// NewGenerator creates a generator for the named profile.
func NewGenerator(profile string, flags *entities.FlagSet) *Generator {
	return &Generator{profile: profile, flags: flags}
}

// BuildDir returns the profile's build directory, relative to the project
// root.
func (g *Generator) BuildDir() string {
	return path.Join(targetDir, g.profile)
}

// BuildFile returns the build-script path, relative to the project root.
func (g *Generator) BuildFile() string {
	return path.Join(g.BuildDir(), "build.ninja")
}

// BinaryPath returns the built binary's path, relative to the project root.
func (g *Generator) BinaryPath() string {
	return path.Join(g.BuildDir(), g.flags.Out)
}

// Generate renders the build script for the given source base names (no
// directory, no .c extension).
func (g *Generator) Generate(sources []string) string {
	var b strings.Builder

	b.WriteString("builddir = " + g.BuildDir() + "\n")

	b.WriteString("rule compile\n")
	b.WriteString("  command = " + g.flags.CC + " -MMD -MF $out.d " +
		strings.Join(g.flags.CFlags, " ") + " -c $in -o $out\n")
	b.WriteString("  description = COMPILE $out\n")
	b.WriteString("  depfile = $out.d\n")
	b.WriteString("  deps = gcc\n")
	b.WriteString("  restat = 1\n")

	b.WriteString("rule link\n")
	b.WriteString("  command = " + g.flags.CC + " " +
		strings.Join(g.flags.LDFlags, " ") + " $in -o $out\n")
	b.WriteString("  description = LINK $out\n")
	b.WriteString("\n")

	objects := make([]string, 0, len(sources))
	for _, source := range sources {
		object := "$builddir/" + source + ".o"
		b.WriteString("build " + object + ": compile " + SourceDir + "/" + source + ".c\n")
		objects = append(objects, object)
	}

	b.WriteString("build $builddir/" + g.flags.Out + ": link " + strings.Join(objects, " ") + "\n")
	b.WriteString("default $builddir/" + g.flags.Out + "\n")

	return b.String()
}
