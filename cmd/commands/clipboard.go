package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/codecraft/codecraft-terminal/internal/cli"
	"github.com/codecraft/codecraft-terminal/pkg/preview"
	"github.com/codecraft/codecraft-terminal/pkg/session"
)

// NewClipboardCommand creates the clipboard command
func NewClipboardCommand() *cobra.Command {
	var flags workspaceFlags

	cmd := &cobra.Command{
		Use:     "clipboard [manifest]",
		Short:   "Copy the composed preview document to the clipboard",
		Aliases: []string{"clip", "copy"},
		Long: `Compose a project and copy the resulting HTML document to the system
clipboard, ready to paste into a browser sandbox.

Examples:
  # Copy the sample project
  codecraft clipboard

  # Copy a minified project from a manifest
  codecraft clip playground.yaml --project Landing --minify`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, store, err := loadWorkspace(cmd, args, &flags)
			if err != nil {
				return err
			}

			sess := session.New(store, preview.Clipboard{},
				session.WithSettings(ctx.Settings),
				session.WithLogger(ctx.Logger),
			)
			defer sess.Close()

			doc, err := sess.Run()
			if err != nil {
				return err
			}

			project, _ := store.CurrentProject()
			cli.PrintSuccess("Project '%s' copied to clipboard", project.Name)

			// Show a preview of what was copied
			lines := strings.Split(doc, "\n")
			first := lines[0]
			if len(lines) > 1 {
				first += " ..."
			}
			cli.PrintInfo("Preview: %s", cli.TruncateString(first, 80))
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}
