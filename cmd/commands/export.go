package commands

import (
	"github.com/spf13/cobra"

	"github.com/codecraft/codecraft-terminal/internal/cli"
	"github.com/codecraft/codecraft-terminal/pkg/files"
	"github.com/codecraft/codecraft-terminal/pkg/preview"
	"github.com/codecraft/codecraft-terminal/pkg/session"
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	var flags workspaceFlags
	var output string
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:   "export [manifest]",
		Short: "Write the composed preview document to an HTML file",
		Long: `Compose a project and write the document to an HTML file that can be
opened in a browser.

The output path defaults to output.export_path/output.default_filename
from .codecraft/settings.yaml.

Examples:
  # Export the sample project to ./preview.html
  codecraft export

  # Export a manifest project to a chosen file
  codecraft export playground.yaml --project Landing --file build/landing.html

  # Export and copy the document in one go
  codecraft export --copy`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, store, err := loadWorkspace(cmd, args, &flags)
			if err != nil {
				return err
			}

			path := files.ExportPath(ctx.Settings, output)
			var surface preview.Surface = preview.HTMLFile{Path: path}
			if copyToClipboard {
				surface = preview.Multi{surface, preview.Clipboard{}}
			}
			sess := session.New(store, surface,
				session.WithSettings(ctx.Settings),
				session.WithLogger(ctx.Logger),
			)
			defer sess.Close()

			doc, err := sess.Run()
			if err != nil {
				return err
			}

			cli.PrintSuccess("Exported preview to %s", path)
			if copyToClipboard {
				cli.PrintSuccess("Copied preview to clipboard")
			}
			cli.PrintInfo("Size: %s", cli.FormatBytes(int64(len(doc))))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "file", "f", "", "File to write (default from settings)")
	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Also copy the document to the clipboard")

	return cmd
}
