package commands

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/codecraft/codecraft-terminal/internal/cli"
	"github.com/codecraft/codecraft-terminal/pkg/examples"
)

func NewExamplesCommand() *cobra.Command {
	var listOnly bool
	var force bool
	var dir string

	cmd := &cobra.Command{
		Use:   "examples [category]",
		Short: "Write example playground manifests",
		Long: `Write example playground manifests to the current directory. Each
manifest can be passed to compose, export, list or the TUI.

Categories:
  basics   - A single-folder page with a stylesheet and a script (default)
  layout   - A project split across folders
  all      - Every example`,
		Example: `  # Write the basic examples
  codecraft examples

  # List everything without writing
  codecraft examples all --list

  # Overwrite existing files
  codecraft examples layout --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := "basics"
			if len(args) > 0 {
				category = args[0]
			}
			if category != "all" && !slices.Contains(examples.Categories, category) {
				return fmt.Errorf("invalid category: %s (must be one of: basics, layout, all)", category)
			}

			sets := examples.GetExamples(category)
			out := cmd.OutOrStdout()

			if listOnly {
				fmt.Fprintf(out, "Available examples in category '%s':\n\n", category)
				for _, set := range sets {
					fmt.Fprintf(out, "[%s] %s (%s)\n    %s\n", set.Category, set.Name, set.Filename, set.Description)
				}
				return nil
			}

			if dir == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("failed to determine current directory: %w", err)
				}
				dir = wd
			}

			installed := 0
			for _, set := range sets {
				path, err := examples.Install(set, dir, force)
				if err != nil {
					cli.PrintWarning("Skipped %s: %v", set.Name, err)
					continue
				}
				installed++
				cli.PrintSuccess("Wrote %s", path)
			}

			if installed == 0 {
				return fmt.Errorf("no examples were written (use --force to overwrite)")
			}
			cli.PrintInfo("Try: codecraft compose %s", sets[0].Filename)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&listOnly, "list", "l", false, "List examples without writing them")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing manifests")
	cmd.Flags().StringVar(&dir, "dir", "", "Directory to write to (default: current directory)")

	return cmd
}
