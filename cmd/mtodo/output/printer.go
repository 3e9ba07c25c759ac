package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"mtodo/internal/application/dto"
	"mtodo/internal/infrastructure/config"
	"mtodo/internal/ui"
)

// Printer provides methods for formatted console output
type Printer struct {
	writer io.Writer
	styles *Styles
}

// Styles holds lipgloss styles for console output
type Styles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Reply   lipgloss.Style
	Hint    lipgloss.Style
	Done    lipgloss.Style
	Subtle  lipgloss.Style
}

// NewPrinter creates a console printer with the built-in styles
func NewPrinter(writer io.Writer) *Printer {
	return &Printer{
		writer: writer,
		styles: &Styles{
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
			Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
			Reply:   lipgloss.NewStyle(),
			Hint:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Italic(true),
			Done:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Subtle:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		},
	}
}

// NewConfiguredPrinter creates a printer whose reply styles follow the config
func NewConfiguredPrinter(writer io.Writer, styles config.StylesConfig) *Printer {
	p := NewPrinter(writer)
	p.styles.Reply = ui.StyleFrom(styles.Reply)
	p.styles.Error = ui.StyleFrom(styles.Error)
	p.styles.Hint = ui.StyleFrom(styles.Hint)
	p.styles.Done = ui.StyleFrom(styles.Done)
	p.styles.Subtle = ui.StyleFrom(styles.Help)
	return p
}

// Success prints a success message
func (p *Printer) Success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(p.writer, p.styles.Success.Render("✓ "+msg))
}

// Error prints an error message
func (p *Printer) Error(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(p.writer, p.styles.Error.Render("✗ "+msg))
}

// Warning prints a warning message
func (p *Printer) Warning(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(p.writer, p.styles.Warning.Render("⚠ "+msg))
}

// Info prints an info message
func (p *Printer) Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(p.writer, p.styles.Info.Render("ℹ "+msg))
}

// Subtle prints a dimmed message
func (p *Printer) Subtle(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(p.writer, p.styles.Subtle.Render(msg))
}

// Result prints the reply for an executed command
func (p *Printer) Result(result *dto.CommandResult) {
	style := p.styles.Reply
	if result.Outcome == dto.OutcomeHint {
		style = p.styles.Hint
	}
	fmt.Fprintln(p.writer, style.Render(ui.Reply(result)))
}

// CommandError prints err the way the interpreter reports it
func (p *Printer) CommandError(err error) {
	fmt.Fprintln(p.writer, p.styles.Error.Render(ui.ErrorText(err)))
}

// Tasks prints a numbered listing, highlighting finished tasks
func (p *Printer) Tasks(tasks []dto.TaskDTO) {
	for _, task := range tasks {
		line := fmt.Sprintf("%d. %s", task.Position, task.Display)
		if task.Done {
			line = p.styles.Done.Render(line)
		}
		fmt.Fprintln(p.writer, line)
	}
}

// DefaultPrinter returns a printer that writes to stdout
func DefaultPrinter() *Printer {
	return NewPrinter(os.Stdout)
}
