package ui

import (
	"github.com/charmbracelet/lipgloss"
	"mtodo/internal/infrastructure/config"
)

// Theme styles console output
type Theme struct {
	Reply  lipgloss.Style
	Error  lipgloss.Style
	Hint   lipgloss.Style
	Prompt lipgloss.Style
	Banner lipgloss.Style
	plain  bool
}

// NewTheme builds a theme from the configured styles
func NewTheme(styles config.StylesConfig) *Theme {
	return &Theme{
		Reply:  StyleFrom(styles.Reply),
		Error:  StyleFrom(styles.Error),
		Hint:   StyleFrom(styles.Hint),
		Prompt: StyleFrom(styles.Prompt),
		Banner: StyleFrom(styles.Banner),
	}
}

// PlainTheme returns a theme that leaves text untouched
func PlainTheme() *Theme {
	return &Theme{plain: true}
}

// Render applies style to s unless the theme is plain
func (t *Theme) Render(style lipgloss.Style, s string) string {
	if t == nil || t.plain {
		return s
	}
	return style.Render(s)
}

// StyleFrom converts a configured text style
func StyleFrom(ts config.TextStyle) lipgloss.Style {
	style := lipgloss.NewStyle()
	if ts.Foreground != "" {
		style = style.Foreground(lipgloss.Color(ts.Foreground))
	}
	if ts.Background != "" {
		style = style.Background(lipgloss.Color(ts.Background))
	}
	if ts.Bold {
		style = style.Bold(true)
	}
	if ts.Italic {
		style = style.Italic(true)
	}
	return style
}
