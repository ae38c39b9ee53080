package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codecraft/codecraft-terminal/internal/cli"
	"github.com/codecraft/codecraft-terminal/pkg/workspace"
)

// ListResult represents the output structure for list command
type ListResult struct {
	Projects []ListProject `json:"projects" yaml:"projects"`
	Count    int           `json:"count" yaml:"count"`
}

type ListProject struct {
	Name    string       `json:"name" yaml:"name"`
	Current bool         `json:"current,omitempty" yaml:"current,omitempty"`
	Folders []ListFolder `json:"folders" yaml:"folders"`
}

type ListFolder struct {
	Name    string     `json:"name" yaml:"name"`
	Current bool       `json:"current,omitempty" yaml:"current,omitempty"`
	Files   []ListFile `json:"files" yaml:"files"`
}

type ListFile struct {
	Name    string `json:"name" yaml:"name"`
	Type    string `json:"type" yaml:"type"`
	Size    int    `json:"size" yaml:"size"`
	Current bool   `json:"current,omitempty" yaml:"current,omitempty"`
}

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	var flags workspaceFlags
	var outputFormat string

	cmd := &cobra.Command{
		Use:     "list [manifest]",
		Aliases: []string{"tree", "ls"},
		Short:   "List projects, folders and files",
		Long: `List the project tree of a playground in creation order. The current
selection is marked with '*'.

Examples:
  # List the sample project
  codecraft list

  # List a manifest as YAML
  codecraft list playground.yaml -o yaml`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateOutputFormat(outputFormat)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, store, err := loadWorkspace(cmd, args, &flags)
			if err != nil {
				return err
			}

			result := buildListResult(store)
			switch outputFormat {
			case "json", "yaml":
				return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
			default:
				return outputListText(cmd, result)
			}
		},
	}

	cmd.Flags().StringVarP(&flags.project, "project", "p", "", "Project to mark as current")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

func buildListResult(store *workspace.Store) ListResult {
	sel := store.Selection()
	var result ListResult
	for _, p := range store.Projects() {
		lp := ListProject{Name: p.Name, Current: p.ID == sel.Project}
		for _, f := range store.Folders(p.ID) {
			lf := ListFolder{Name: f.Name, Current: lp.Current && f.ID == sel.Folder}
			for _, file := range store.Files(f.ID) {
				lf.Files = append(lf.Files, ListFile{
					Name:    file.Name,
					Type:    string(file.Type),
					Size:    len(file.Content),
					Current: lf.Current && file.ID == sel.File,
				})
			}
			lp.Folders = append(lp.Folders, lf)
		}
		result.Projects = append(result.Projects, lp)
	}
	result.Count = len(result.Projects)
	return result
}

func outputListText(cmd *cobra.Command, result ListResult) error {
	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("PATH", "TYPE", "SIZE")
	for _, p := range result.Projects {
		for _, f := range p.Folders {
			for _, file := range f.Files {
				path := strings.Join([]string{p.Name, f.Name, file.Name}, "/")
				if file.Current {
					path = "* " + path
				} else {
					path = "  " + path
				}
				table.Row(path, file.Type, cli.FormatBytes(int64(file.Size)))
			}
		}
	}
	table.Flush()

	fmt.Fprintf(cmd.OutOrStdout(), "\n%d project(s)\n", result.Count)
	return nil
}
