package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"mtodo/cmd/mtodo/output"
	"mtodo/internal/di"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"

	// Global flags
	outputFormat string
	configPath   string
	quiet        bool
	noSave       bool

	// Shared instances
	container *di.Container
	cleanup   = func() {}
	printer   *output.Printer
	formatter *output.Formatter
)

// skipContainer marks commands that must work without loading tasks
const skipContainer = "skip-container"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mtodo",
	Short: "Text-command task tracker",
	Long: `mtodo keeps a list of todos, deadlines and events driven by short text commands.

Commands understood by the interpreter:
  todo <description>
  deadline <description> /by <YYYY-MM-DD>
  event <description> /at <YYYY-MM-DD>
  list
  done <n>
  undo <n>
  delete <n>
  query <YYYY-MM-DD>
  bye

Examples:
  # Start an interactive session
  mtodo
  mtodo repl

  # Run a single command against the saved list
  mtodo exec todo read book

  # List tasks as JSON
  mtodo list --output json

  # Show what happens on a given day
  mtodo query 2024-01-15`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize output formatter
		format, err := output.ParseFormat(outputFormat)
		if err != nil {
			return err
		}
		formatter = output.NewFormatter(format, cmd.OutOrStdout())
		printer = output.NewPrinter(cmd.OutOrStdout())

		if cmd.Annotations[skipContainer] == "true" {
			return nil
		}

		// Initialize DI container
		c, release, err := di.InitializeContainer(cmd.Context(), di.Options{
			ConfigPath: configPath,
			NoSave:     noSave,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize container: %w", err)
		}
		container, cleanup = c, release
		printer = output.NewConfiguredPrinter(cmd.OutOrStdout(), container.Config.UI.Styles)

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			printVersion(cmd)
			return nil
		}

		// Default behavior: interactive session
		return runREPL(cmd)
	},
}

// Execute runs the root command and returns the process exit code
func Execute(ctx context.Context) int {
	if err := executeRoot(ctx); err != nil {
		output.NewPrinter(os.Stderr).Error("%v", err)
		return 1
	}
	return 0
}

// executeRoot executes the command tree and releases the container whether or
// not the command failed
func executeRoot(ctx context.Context) error {
	defer func() {
		cleanup()
		cleanup = func() {}
	}()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text, json, yaml")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noSave, "no-save", false, "Do not write changes to the tasks file")

	// Version flag
	rootCmd.Flags().BoolP("version", "v", false, "Show version information")
}

// printVersion prints version information
func printVersion(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "mtodo version %s\n", Version)
	fmt.Fprintf(out, "  Git commit: %s\n", GitCommit)
	fmt.Fprintf(out, "  Built:      %s\n", BuildDate)
}
