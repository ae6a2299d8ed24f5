package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ekm-build/ekm/internal/infrastructure/system"
)

// runCmd represents the run command.
var runCmd = &cobra.Command{
	Use:   "run [profile]",
	Short: "Build the project and run the resulting binary",
	Long: `Build the named profile, then execute the built binary. A profile's run
template, when set, controls the invocation; {bin} expands to the binary
path and {args} to the extra arguments given with --args.

The binary's exit code is propagated.`,
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
		if err := executeBuild(cmd.Context(), plan); err != nil {
			return err
		}

		dir, err := projectDir()
		if err != nil {
			return err
		}

		executor := system.NewExecutor(viper.GetString("ninja_binary"), verbose)
		return executor.Run(cmd.Context(), dir, plan.Binary, plan.Resolved.Run, extraArgs)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the generated build script instead of building")
	runCmd.Flags().StringSliceVar(&extraArgs, "args", nil, "extra arguments passed to the binary")
}
