package main

import (
	"os"

	"github.com/spf13/viper"

	appservices "github.com/ekm-build/ekm/internal/application/services"
)

// newPlanner builds a planner honoring the tool config's global-profiles
// override.
func newPlanner() *appservices.BuildPlanner {
	planner := appservices.NewBuildPlanner()
	planner.GlobalOverride = viper.GetString("global_profiles")
	return planner
}

// selectedProfile resolves the positional profile argument, falling back to
// the configured default.
func selectedProfile(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return viper.GetString("default_profile")
}

// projectDir is the directory ekm operates on: the current working
// directory.
func projectDir() (string, error) {
	return os.Getwd()
}
