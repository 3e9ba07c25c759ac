package commands

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"mtodo/tui"
	"mtodo/tui/style"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the full-screen interpreter",
	Long: `Launch a full-screen session: a transcript of commands and replies,
an input line, and a panel showing the current list.

Keyboard shortcuts:
  enter      - Run the typed command
  pgup/pgdn  - Scroll the transcript
  esc/Ctrl+C - Quit

Typing "bye" also ends the session.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Initialize styles from config
		style.InitStyles(container.Config)

		m := tui.NewModel(ctx, container.ExecuteCommandUseCase, container.Config.UI.Prompt)

		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("error running program: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
