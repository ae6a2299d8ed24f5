package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var noInteractive bool

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold a new ekm project in the current directory",
	Long: `Create an ekm.toml with dev and release profiles plus a minimal
src/main.c. Existing files are never overwritten.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		dir, err := projectDir()
		if err != nil {
			return err
		}
		return runInitAction(dir)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().BoolVar(&noInteractive, "no-interactive", false, "use defaults without prompting")
}

func runInitAction(dir string) error {
	declPath := filepath.Join(dir, "ekm.toml")
	if _, err := os.Stat(declPath); err == nil {
		return fmt.Errorf("ekm.toml already exists in %s", dir)
	}

	name := filepath.Base(dir)
	compiler := "gcc"
	withMain := true

	if !noInteractive {
		err := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Output binary name").
					Value(&name),
				huh.NewSelect[string]().
					Title("Compiler").
					Options(
						huh.NewOption("gcc", "gcc"),
						huh.NewOption("clang", "clang"),
					).
					Value(&compiler),
				huh.NewConfirm().
					Title("Create src/main.c?").
					Value(&withMain),
			),
		).Run()
		if err != nil {
			return err
		}
	}

	decl := fmt.Sprintf(`[profile.all]
cc = %q
out = %q

[profile.dev]
debug = 2
warn = ["full"]

[profile.release]
opt-level = 3
lto = true
`, compiler, name)

	if err := os.WriteFile(declPath, []byte(decl), 0o644); err != nil {
		return fmt.Errorf("writing ekm.toml: %w", err)
	}

	if withMain {
		srcDir := filepath.Join(dir, "src")
		if err := os.MkdirAll(srcDir, 0o755); err != nil {
			return fmt.Errorf("creating src: %w", err)
		}
		mainPath := filepath.Join(srcDir, "main.c")
		if _, err := os.Stat(mainPath); os.IsNotExist(err) {
			program := "#include <stdio.h>\n\nint main(void) {\n\tprintf(\"hello from " + name + "\\n\");\n\treturn 0;\n}\n"
			if err := os.WriteFile(mainPath, []byte(program), 0o644); err != nil {
				return fmt.Errorf("writing src/main.c: %w", err)
			}
		}
	}

	fmt.Printf("Initialized ekm project %q\n", name)
	fmt.Println("Run 'ekm build' to build the dev profile.")
	return nil
}
