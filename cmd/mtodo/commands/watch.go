package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print the list whenever the tasks file changes",
	Long: `Print the saved list, then print it again every time the tasks file is
written by another mtodo session. Stop with Ctrl+C.

Examples:
  # Keep a listing open next to an interactive session
  mtodo watch`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if !container.Config.Storage.Enabled {
			return fmt.Errorf("storage is disabled, nothing to watch")
		}

		render := func() {
			tasks, err := container.ListTasksUseCase.Execute(ctx)
			if err != nil {
				printer.Error("failed to load tasks: %v", err)
				return
			}

			if !formatter.IsText() {
				if err := formatter.Print(tasks); err != nil {
					printer.Error("%v", err)
				}
				return
			}

			if !quiet {
				printer.Subtle("── %s ──", container.Config.TasksPath())
			}
			if len(tasks) == 0 {
				printer.Subtle("Nothing here yet...")
				return
			}
			printer.Tasks(tasks)
		}

		render()
		return container.FileWatcher.Watch(ctx, render)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
