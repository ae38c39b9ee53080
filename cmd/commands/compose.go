package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codecraft/codecraft-terminal/pkg/composer"
	"github.com/codecraft/codecraft-terminal/pkg/preview"
)

// NewComposeCommand creates the compose command
func NewComposeCommand() *cobra.Command {
	var flags workspaceFlags
	var outline bool

	cmd := &cobra.Command{
		Use:   "compose [manifest]",
		Short: "Print the composed preview document of a project",
		Long: `Compose a project into a single HTML document and print it.

The last HTML file of the project is used as the page. The last CSS file is
placed in a <style> tag before </head> and the last JS file in a <script>
tag before </body>.

Without a manifest the built-in sample project is used.

Examples:
  # Compose the sample project
  codecraft compose

  # Compose a project from a manifest
  codecraft compose playground.yaml --project Landing

  # Show an outline of the composed page instead
  codecraft compose playground.yaml --outline`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, store, err := loadWorkspace(cmd, args, &flags)
			if err != nil {
				return err
			}

			project, _ := store.CurrentProject()
			doc, err := composer.ComposeProjectWithSettings(store, project.ID, ctx.Settings, ctx.Logger)
			if err != nil {
				return err
			}

			if !outline {
				fmt.Fprintln(cmd.OutOrStdout(), doc)
				return nil
			}

			o, err := preview.OutlineOf(doc)
			if err != nil {
				return err
			}
			printOutline(cmd, project.Name, o)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&outline, "outline", false, "Print an outline instead of the document")

	return cmd
}

func printOutline(cmd *cobra.Command, project string, o preview.Outline) {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Project:  %s\n", project)
	fmt.Fprintf(w, "Title:    %s\n", o.Title)
	if len(o.Headings) > 0 {
		fmt.Fprintf(w, "Headings: %s\n", strings.Join(o.Headings, " | "))
	}
	if len(o.Buttons) > 0 {
		fmt.Fprintf(w, "Buttons:  %s\n", strings.Join(o.Buttons, " | "))
	}
	fmt.Fprintf(w, "Styles:   %d\n", o.Styles)
	fmt.Fprintf(w, "Scripts:  %d\n", o.Scripts)
}
