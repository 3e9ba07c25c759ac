package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"mtodo/internal/application/command"
)

// execCmd represents the exec command
var execCmd = &cobra.Command{
	Use:   "exec [command...]",
	Short: "Run commands without an interactive session",
	Long: `Run one command given as arguments, or one command per line read from stdin.

Changes are saved to the tasks file unless --no-save is set. The exit
status is non-zero when any command is rejected.

Examples:
  # Add a deadline
  mtodo exec deadline submit report /by 2024-01-15

  # Mark the second task done and print the result as JSON
  mtodo exec done 2 --output json

  # Run a batch
  printf 'todo a\ntodo b\nlist\n' | mtodo exec`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return runLines(cmd, []string{strings.Join(args, " ")})
		}

		var lines []string
		scanner := bufio.NewScanner(cmd.InOrStdin())
		for scanner.Scan() {
			lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read commands: %w", err)
		}
		return runLines(cmd, lines)
	},
}

// runLines executes each line in order, stopping at "bye"
func runLines(cmd *cobra.Command, lines []string) error {
	ctx := cmd.Context()
	failed := 0

	for _, line := range lines {
		if line == command.KeywordBye {
			break
		}

		result, err := container.ExecuteCommandUseCase.Execute(ctx, line)
		if err != nil {
			failed++
			printer.CommandError(err)
			continue
		}

		if formatter.IsText() {
			if !quiet {
				printer.Result(result)
			}
			continue
		}
		if err := formatter.Print(result); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d command(s) rejected", failed)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(execCmd)
}
