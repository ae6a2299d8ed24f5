package system

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/ekm-build/ekm/internal/domain/values"
)

// DefaultNinjaBinary is the build executor invoked unless the tool config
// names another one.
const DefaultNinjaBinary = "ninja"

// Executor shells out to the external build executor and to built binaries.
// Subprocess stdio is passed straight through to the user.
type Executor struct {
	NinjaBinary string
	Verbose     bool
}

// NewExecutor creates an executor. An empty ninjaBinary selects the default.
func NewExecutor(ninjaBinary string, verbose bool) *Executor {
	if ninjaBinary == "" {
		ninjaBinary = DefaultNinjaBinary
	}
	return &Executor{NinjaBinary: ninjaBinary, Verbose: verbose}
}

// Build runs the build executor against the given build file, from the
// project root.
func (e *Executor) Build(ctx context.Context, projectDir, buildFile string) error {
	args := []string{}
	if e.Verbose {
		args = append(args, "-v")
	}
	args = append(args, "-f", buildFile)

	cmd := exec.CommandContext(ctx, e.NinjaBinary, args...)
	cmd.Dir = projectDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", e.NinjaBinary, err)
	}
	return nil
}

// Run executes the built binary, honoring the profile's run template when
// present. The returned error carries the subprocess exit status.
func (e *Executor) Run(ctx context.Context, projectDir, binary string, spec *values.RunSpec, extra []string) error {
	argv := RunCommand(binary, spec, extra)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = projectDir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

// RunCommand expands a run template into the argv to execute. With no
// template, or an empty argv template, the binary runs bare with the extra
// arguments appended. A shell template becomes a sh -c invocation; an argv
// template expands per argument. Templates may reference {bin} and {args}.
func RunCommand(binary string, spec *values.RunSpec, extra []string) []string {
	if spec == nil {
		return append([]string{binary}, extra...)
	}

	expand := strings.NewReplacer(
		"{bin}", binary,
		"{args}", strings.Join(extra, " "),
	)

	if command, ok := spec.Shell(); ok {
		return []string{"sh", "-c", expand.Replace(command)}
	}

	argv, _ := spec.Argv()
	if len(argv) == 0 {
		return append([]string{binary}, extra...)
	}
	expanded := make([]string, len(argv))
	for i, arg := range argv {
		expanded[i] = expand.Replace(arg)
	}
	return expanded
}
