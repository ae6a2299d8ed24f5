package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// cleanCmd represents the clean command.
var cleanCmd = &cobra.Command{
	Use:   "clean [profile]",
	Short: "Remove build outputs",
	Long: `Remove the build directory of the named profile, or all build outputs
when no profile is given (or "all" is).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		dir, err := projectDir()
		if err != nil {
			return err
		}

		target := filepath.Join(dir, "target")
		if len(args) == 1 && args[0] != "all" {
			target = filepath.Join(target, args[0])
		}

		slog.Debug("removing build outputs", "path", target)
		if err := os.RemoveAll(target); err != nil {
			return fmt.Errorf("cleaning %s: %w", target, err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
