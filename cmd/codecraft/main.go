package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/codecraft/codecraft-terminal/cmd/commands"
	"github.com/codecraft/codecraft-terminal/internal/cli"
	"github.com/codecraft/codecraft-terminal/pkg/files"
	"github.com/codecraft/codecraft-terminal/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	quiet   bool
	noColor bool
	project string
)

var rootCmd = &cobra.Command{
	Use:   "codecraft [manifest]",
	Short: "Terminal playground for HTML, CSS and JavaScript snippets",
	Long: `CodeCraft is a terminal playground for small HTML, CSS and JavaScript
snippets organized into projects, folders and files. Running a project
composes its files into a single HTML document for preview.

Without arguments the playground opens with a sample project. Pass a
manifest (see 'codecraft examples') to start from its contents instead.
Nothing is saved back: export or copy the composed document to keep it.`,
	Args: cobra.MaximumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(quiet, noColor)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := files.ReadSettings()
		if err != nil {
			return err
		}

		// the TUI owns the terminal, so logs go to a file or nowhere
		logger, closeLog, err := cli.OpenLogFile(settings.Log.File, settings.Log.Level)
		if err != nil {
			return err
		}
		defer closeLog()

		ctx := &cli.CommandContext{Settings: settings, Logger: logger}
		manifest := ""
		if len(args) > 0 {
			manifest = args[0]
		}
		store, err := ctx.LoadWorkspace(manifest, project)
		if err != nil {
			return err
		}

		app := tui.NewApp(store, tui.WithSettings(settings), tui.WithLogger(logger))
		defer app.Close()

		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("failed to start the terminal user interface: %w", err)
		}
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default settings file",
	Long:  `Creates .codecraft/settings.yaml in the current directory with the default settings`,
	RunE: func(cmd *cobra.Command, args []string) error {
		created, err := files.InitConfig()
		if err != nil {
			return fmt.Errorf("failed to initialize settings: %w", err)
		}
		if !created {
			cli.PrintWarning("%s already exists, leaving it unchanged", files.SettingsPath())
			return nil
		}
		cli.PrintSuccess("Created %s", files.SettingsPath())
		cli.PrintInfo("Run 'codecraft' to open the playground.")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of CodeCraft",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "codecraft version %s\n", version)
	},
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().StringVarP(&project, "project", "p", "", "Project to open (default: first project)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewComposeCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
	rootCmd.AddCommand(commands.NewClipboardCommand())
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewSearchCommand())
	rootCmd.AddCommand(commands.NewExamplesCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
