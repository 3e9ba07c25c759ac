package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"mtodo/internal/domain/valueobject"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List saved tasks",
	Long: `List every saved task with its position.

Examples:
  # Numbered listing
  mtodo list

  # Machine readable
  mtodo list --output json
  mtodo list --output yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tasks, err := container.ListTasksUseCase.Execute(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}

		if !formatter.IsText() {
			return formatter.Print(tasks)
		}

		if len(tasks) == 0 {
			if !quiet {
				printer.Subtle("Nothing here yet...")
			}
			return nil
		}
		printer.Tasks(tasks)
		return nil
	},
}

// queryCmd represents the query command
var queryCmd = &cobra.Command{
	Use:   "query <YYYY-MM-DD>",
	Short: "List deadlines and events on a date",
	Long: `List the deadlines due and events happening on the given date.

Examples:
  mtodo query 2024-01-15
  mtodo query 2024-01-15 --output json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := valueobject.ParseDate(args[0])
		if err != nil {
			return fmt.Errorf("please use the YYYY-MM-DD format for the date: %w", err)
		}

		tasks, err := container.ListTasksUseCase.ExecuteByDate(cmd.Context(), date)
		if err != nil {
			return fmt.Errorf("failed to query tasks: %w", err)
		}

		if !formatter.IsText() {
			return formatter.Print(tasks)
		}

		if len(tasks) == 0 {
			if !quiet {
				printer.Subtle("Nothing special will happen on this day")
			}
			return nil
		}
		printer.Tasks(tasks)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(queryCmd)
}
