package commands

import (
	"github.com/spf13/cobra"

	"github.com/codecraft/codecraft-terminal/internal/cli"
	"github.com/codecraft/codecraft-terminal/pkg/workspace"
)

// workspaceFlags are shared by commands that load a playground.
type workspaceFlags struct {
	project string
	minify  bool
}

func (f *workspaceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.project, "project", "p", "", "Project to use (default: first project)")
	cmd.Flags().BoolVar(&f.minify, "minify", false, "Minify the composed document")
}

// loadWorkspace builds the command context and the store for args, which
// optionally names a manifest file.
func loadWorkspace(cmd *cobra.Command, args []string, f *workspaceFlags) (*cli.CommandContext, *workspace.Store, error) {
	ctx, err := cli.NewCommandContext(cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}
	if f.minify {
		ctx.Settings.Preview.Minify = true
	}

	manifest := ""
	if len(args) > 0 {
		manifest = args[0]
	}
	store, err := ctx.LoadWorkspace(manifest, f.project)
	if err != nil {
		return nil, nil, err
	}
	return ctx, store, nil
}
