// Package repl runs the line-oriented interpreter session.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"mtodo/internal/application/command"
	"mtodo/internal/application/dto"
	"mtodo/internal/ui"
)

const maxLineSize = 1024 * 1024

// Executor runs one command line
type Executor interface {
	Execute(ctx context.Context, line string) (*dto.CommandResult, error)
}

// Loop reads command lines from in and writes replies to out
type Loop struct {
	in       io.Reader
	out      io.Writer
	executor Executor
	prompt   string
	theme    *ui.Theme
	logger   *log.Logger
}

// NewLoop creates a new interpreter loop
func NewLoop(in io.Reader, out io.Writer, executor Executor, logger *log.Logger) *Loop {
	return &Loop{
		in:       in,
		out:      out,
		executor: executor,
		theme:    ui.PlainTheme(),
		logger:   logger,
	}
}

// WithPrompt sets the text printed before each read
func (l *Loop) WithPrompt(prompt string) *Loop {
	l.prompt = prompt
	return l
}

// WithTheme sets the styles used for replies
func (l *Loop) WithTheme(theme *ui.Theme) *Loop {
	l.theme = theme
	return l
}

// Run greets, then executes lines until "bye", end of input or ctx is done.
// Only "bye" prints the farewell.
func (l *Loop) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines, readErr := l.readLines(ctx)

	l.println(l.theme.Render(l.theme.Banner, ui.Greeting()))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if l.prompt != "" {
			fmt.Fprint(l.out, l.theme.Render(l.theme.Prompt, l.prompt))
		}

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case text, ok := <-lines:
			if !ok {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				l.logger.Debug("input closed")
				return nil
			}
			line = strings.TrimSuffix(text, "\r")
		}

		if line == command.KeywordBye {
			l.println(l.theme.Render(l.theme.Reply, ui.Farewell()))
			return nil
		}

		result, err := l.executor.Execute(ctx, line)
		if err != nil {
			l.println(l.theme.Render(l.theme.Error, ui.ErrorText(err)))
			continue
		}

		style := l.theme.Reply
		if result.Outcome == dto.OutcomeHint {
			style = l.theme.Hint
		}
		l.println(l.theme.Render(style, ui.Reply(result)))

		if result.IsExit() {
			return nil
		}
	}
}

// readLines scans in on its own goroutine so a blocked read does not
// keep Run from noticing cancellation
func (l *Loop) readLines(ctx context.Context) (<-chan string, <-chan error) {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(l.in)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				readErr <- ctx.Err()
				return
			}
		}
		readErr <- scanner.Err()
	}()

	return lines, readErr
}

func (l *Loop) println(s string) {
	fmt.Fprintln(l.out, s)
}
