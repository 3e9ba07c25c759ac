package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"mtodo/tui/style"
)

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.quitting {
		return ""
	}

	body := m.viewport.View()
	if width := m.panelWidth(); width > 0 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.renderTasks(width))
	}

	separator := style.SeparatorStyle.Render(strings.Repeat("─", m.width))

	return lipgloss.JoinVertical(lipgloss.Left, body, separator, m.input.View(), m.renderHelp())
}

// renderTranscript renders every transcript entry in order
func (m Model) renderTranscript() string {
	blocks := make([]string, 0, len(m.transcript))
	for _, e := range m.transcript {
		switch e.kind {
		case entryBanner:
			blocks = append(blocks, style.BannerStyle.Render(e.text))
		case entryInput:
			blocks = append(blocks, style.PromptStyle.Render(e.text))
		case entryHint:
			blocks = append(blocks, style.HintStyle.Render(e.text))
		case entryError:
			blocks = append(blocks, style.ErrorStyle.Render(e.text))
		default:
			blocks = append(blocks, style.ReplyStyle.Render(e.text))
		}
	}
	return strings.Join(blocks, "\n")
}

// renderTasks renders the side panel with the current list
func (m Model) renderTasks(width int) string {
	lines := []string{style.PanelTitle.Render(fmt.Sprintf("Tasks (%d)", len(m.tasks))), ""}

	if len(m.tasks) == 0 {
		lines = append(lines, style.HelpStyle.Render("Nothing here yet..."))
	}
	for _, task := range m.tasks {
		line := fmt.Sprintf("%d. %s", task.Position, task.Display)
		if task.Done {
			line = style.DoneStyle.Render(line)
		}
		lines = append(lines, line)
	}

	// the border takes two columns and two rows
	return style.PanelStyle.
		Width(width - 2).
		Height(m.viewport.Height - 2).
		Render(strings.Join(lines, "\n"))
}

// renderHelp renders the help text at the bottom
func (m Model) renderHelp() string {
	helpText := []string{
		"enter (run)",
		"pgup/pgdn (scroll)",
		"bye/esc (quit)",
	}

	return style.HelpStyle.Render(strings.Join(helpText, "  •  "))
}
