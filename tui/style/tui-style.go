package style

import (
	"github.com/charmbracelet/lipgloss"
	"mtodo/internal/infrastructure/config"
	"mtodo/internal/ui"
)

var (
	BannerStyle    = lipgloss.NewStyle()
	ReplyStyle     = lipgloss.NewStyle()
	ErrorStyle     = lipgloss.NewStyle()
	HintStyle      = lipgloss.NewStyle()
	PromptStyle    = lipgloss.NewStyle()
	DoneStyle      = lipgloss.NewStyle()
	HelpStyle      = lipgloss.NewStyle()
	SeparatorStyle = lipgloss.NewStyle()
	PanelStyle     = lipgloss.NewStyle()
	PanelTitle     = lipgloss.NewStyle()
)

// InitStyles initializes the styles from config
func InitStyles(cfg *config.Config) {
	styles := cfg.UI.Styles

	BannerStyle = ui.StyleFrom(styles.Banner)
	ReplyStyle = ui.StyleFrom(styles.Reply)
	ErrorStyle = ui.StyleFrom(styles.Error)
	HintStyle = ui.StyleFrom(styles.Hint)
	PromptStyle = ui.StyleFrom(styles.Prompt)
	DoneStyle = ui.StyleFrom(styles.Done)

	// Help line sits under the input
	HelpStyle = ui.StyleFrom(styles.Help).Padding(0, 1)

	SeparatorStyle = ui.StyleFrom(styles.Separator)

	// Task panel
	PanelStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())
	if styles.Separator.Foreground != "" {
		PanelStyle = PanelStyle.BorderForeground(lipgloss.Color(styles.Separator.Foreground))
	}
	PanelTitle = ui.StyleFrom(styles.Banner).Underline(true)
}
