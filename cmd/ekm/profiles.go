package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ekm-build/ekm/internal/domain/entities"
)

// profilesCmd represents the profiles command.
var profilesCmd = &cobra.Command{
	Use:   "profiles [name]",
	Short: "List resolved profiles, or show one in detail",
	Long: `Without arguments, list every profile visible from this project after
layering and inheritance. With a name, show the resolved attributes and
the concrete compiler/linker flags that profile materializes to.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		dir, err := projectDir()
		if err != nil {
			return err
		}

		if len(args) == 1 {
			plan, err := newPlanner().Plan(dir, args[0])
			if err != nil {
				return err
			}
			printProfile(plan.Profile, plan.Resolved)
			fmt.Printf("materialized:\n")
			fmt.Printf("  cc:      %s\n", plan.Flags.CC)
			fmt.Printf("  out:     %s\n", plan.Flags.Out)
			fmt.Printf("  cflags:  %s\n", strings.Join(plan.Flags.CFlags, " "))
			fmt.Printf("  ldflags: %s\n", strings.Join(plan.Flags.LDFlags, " "))
			return nil
		}

		resolved, err := newPlanner().ResolveProfiles(dir)
		if err != nil {
			return err
		}

		names := make([]string, 0, len(resolved))
		for name := range resolved {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}

// printProfile prints the set attributes of a resolved profile.
func printProfile(name string, p *entities.Profile) {
	fmt.Printf("profile %s:\n", name)
	if p.CC != nil {
		fmt.Printf("  cc:        %s\n", *p.CC)
	}
	if p.Out != nil {
		fmt.Printf("  out:       %s\n", *p.Out)
	}
	if p.OptLevel != nil {
		fmt.Printf("  opt-level: %s\n", *p.OptLevel)
	}
	if p.Debug != nil {
		fmt.Printf("  debug:     %s\n", p.Debug)
	}
	if p.Warn != nil {
		fmt.Printf("  warn:      %s\n", strings.Join(p.Warn, " "))
	}
	if p.Sanitize != nil {
		fmt.Printf("  sanitize:  %s\n", strings.Join(p.Sanitize, " "))
	}
	if p.LTO != nil {
		fmt.Printf("  lto:       %t\n", *p.LTO)
	}
	if p.CFlags != nil {
		fmt.Printf("  cflags:    %s\n", strings.Join(p.CFlags, " "))
	}
	if p.LDFlags != nil {
		fmt.Printf("  ldflags:   %s\n", strings.Join(p.LDFlags, " "))
	}
}
