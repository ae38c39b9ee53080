package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/codecraft/codecraft-terminal/internal/cli"
	"github.com/codecraft/codecraft-terminal/pkg/search"
)

// SearchResultOutput represents the formatted search results
type SearchResultOutput struct {
	Query   string             `json:"query" yaml:"query"`
	Count   int                `json:"count" yaml:"count"`
	Results []SearchItemOutput `json:"results" yaml:"results"`
}

type SearchItemOutput struct {
	Path    string `json:"path" yaml:"path"`
	Type    string `json:"type" yaml:"type"`
	Line    int    `json:"line,omitempty" yaml:"line,omitempty"`
	Excerpt string `json:"excerpt,omitempty" yaml:"excerpt,omitempty"`
}

// NewSearchCommand creates the search command
func NewSearchCommand() *cobra.Command {
	var manifest string
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find files by type, name, folder or content",
		Long: `Search the files of a playground.

Query Syntax:
  type:css             - Files of one type (html, css, js)
  name:style           - File name contains "style"
  folder:main          - Folder name contains "main"
  project:landing      - Project name contains "landing"
  content:"Click Me"   - Content contains the phrase
  button               - Bare words search content

  Conditions are joined with AND by default. OR and NOT are supported
  and evaluate left to right.

Examples:
  # Stylesheets in the sample project
  codecraft search type:css

  # Scripts or stylesheets mentioning a button id
  codecraft search "demo-btn NOT type:html"`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateOutputFormat(outputFormat)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			q, err := search.Parse(query)
			if err != nil {
				return fmt.Errorf("invalid query: %w", err)
			}

			ctx, err := cli.NewCommandContext(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			store, err := ctx.LoadWorkspace(manifest, "")
			if err != nil {
				return err
			}

			result := SearchResultOutput{Query: query, Results: []SearchItemOutput{}}
			for _, m := range search.Search(store, q) {
				result.Results = append(result.Results, SearchItemOutput{
					Path:    m.Path(),
					Type:    string(m.File.Type),
					Line:    m.Line,
					Excerpt: m.Snippet,
				})
			}
			result.Count = len(result.Results)
			ctx.Logger.Debug("search finished", "query", query, "matches", result.Count)

			switch outputFormat {
			case "json", "yaml":
				return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
			default:
				return outputSearchText(cmd, result)
			}
		},
	}

	cmd.Flags().StringVarP(&manifest, "manifest", "m", "", "Manifest to load (default: sample project)")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "text", "Output format (text, json, yaml)")

	return cmd
}

func outputSearchText(cmd *cobra.Command, result SearchResultOutput) error {
	if result.Count == 0 {
		cli.PrintInfo("No results found for query: %s", result.Query)
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	table.Header("PATH", "TYPE", "LINE", "EXCERPT")
	for _, item := range result.Results {
		line := ""
		if item.Line > 0 {
			line = strconv.Itoa(item.Line)
		}
		table.Row(item.Path, item.Type, line, cli.TruncateString(item.Excerpt, 60))
	}
	table.Flush()
	return nil
}
