package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codecraft/codecraft-terminal/internal/cli"
	"github.com/codecraft/codecraft-terminal/pkg/workspace"
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	var manifest string

	cmd := &cobra.Command{
		Use:   "show <project/folder/file>",
		Short: "Print the content of a single file",
		Long: `Print the raw content of one file, addressed by its path in the tree
as shown by 'codecraft list'.

Examples:
  # Show the sample stylesheet
  codecraft show "My Project/Main/styles.css"

  # Show a file from a manifest
  codecraft show Landing/Main/index.html --manifest playground.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			store, err := ctx.LoadWorkspace(manifest, "")
			if err != nil {
				return err
			}

			content, err := findFileContent(store, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), content)
			return nil
		},
	}

	cmd.Flags().StringVarP(&manifest, "manifest", "m", "", "Manifest to load (default: sample project)")

	return cmd
}

// findFileContent resolves "project/folder/file". The first match wins when
// names repeat.
func findFileContent(store *workspace.Store, ref string) (string, error) {
	parts := strings.Split(ref, "/")
	if len(parts) != 3 {
		return "", fmt.Errorf("invalid file reference '%s' (expected project/folder/file)", ref)
	}

	for _, p := range store.Projects() {
		if p.Name != parts[0] {
			continue
		}
		for _, f := range store.Folders(p.ID) {
			if f.Name != parts[1] {
				continue
			}
			for _, file := range store.Files(f.ID) {
				if file.Name == parts[2] {
					return file.Content, nil
				}
			}
		}
	}
	return "", fmt.Errorf("file not found: %s", ref)
}
