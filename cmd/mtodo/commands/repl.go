package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"mtodo/internal/repl"
	"mtodo/internal/ui"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Read commands line by line until "bye" or end of input.

Each command gets one reply; mistakes are reported and the session goes on.

Examples:
  # Interactive session
  mtodo repl

  # Feed a script of commands
  mtodo repl < commands.txt

  # Try things out without touching the saved list
  mtodo repl --no-save`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL(cmd)
	},
}

func runREPL(cmd *cobra.Command) error {
	loop := repl.NewLoop(cmd.InOrStdin(), cmd.OutOrStdout(), container.ExecuteCommandUseCase, container.Logger).
		WithTheme(ui.NewTheme(container.Config.UI.Styles))
	if !quiet {
		loop = loop.WithPrompt(container.Config.UI.Prompt)
	}

	err := loop.Run(cmd.Context())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func init() {
	rootCmd.AddCommand(replCmd)
}
