package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	appservices "github.com/ekm-build/ekm/internal/application/services"
	"github.com/ekm-build/ekm/internal/infrastructure/system"
)

var (
	dryRun    bool
	extraArgs []string
)

// buildCmd represents the build command.
var buildCmd = &cobra.Command{
	Use:   "build [profile]",
	Short: "Resolve a profile and build the project",
	Long: `Resolve the named profile (default: the configured default profile),
generate the build script, and hand it to the ninja build executor.

With --dry-run the generated script is printed instead of executed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plan, err := preparePlan(args)
		if err != nil {
			return err
		}
		if dryRun {
			fmt.Print(plan.Script)
			return nil
		}
		return executeBuild(cmd.Context(), plan)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the generated build script instead of building")
	buildCmd.Flags().StringSliceVar(&extraArgs, "args", nil, "extra arguments for the built binary (used by run)")
}

// preparePlan resolves the selected profile into a build plan.
func preparePlan(args []string) (*appservices.BuildPlan, error) {
	dir, err := projectDir()
	if err != nil {
		return nil, err
	}

	profile := selectedProfile(args)
	slog.Debug("resolving profile", "profile", profile)

	plan, err := newPlanner().Plan(dir, profile)
	if err != nil {
		return nil, err
	}

	slog.Info("profile resolved", "profile", plan.Profile, "cc", plan.Flags.CC, "sources", len(plan.Sources))
	return plan, nil
}

// executeBuild writes the build script and invokes the build executor.
func executeBuild(ctx context.Context, plan *appservices.BuildPlan) error {
	dir, err := projectDir()
	if err != nil {
		return err
	}

	buildDir := filepath.Join(dir, plan.BuildDir)
	if err := os.MkdirAll(buildDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", plan.BuildDir, err)
	}

	buildFile := filepath.Join(dir, plan.BuildFile)
	if err := os.WriteFile(buildFile, []byte(plan.Script), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", plan.BuildFile, err)
	}

	executor := system.NewExecutor(viper.GetString("ninja_binary"), verbose)
	return executor.Build(ctx, dir, plan.BuildFile)
}
