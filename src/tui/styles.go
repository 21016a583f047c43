package tui

import "github.com/charmbracelet/lipgloss"

// StyleConfig holds all customizable style colors for terminal output.
type StyleConfig struct {
	HeaderColor   lipgloss.Color
	BorderColor   lipgloss.Color
	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	WarnColor     lipgloss.Color
	ErrorColor    lipgloss.Color
}

// DefaultStyles returns the default color palette
func DefaultStyles() *StyleConfig {
	return &StyleConfig{
		HeaderColor:   lipgloss.Color("#8AB4F8"),
		BorderColor:   lipgloss.Color("#5F6368"),
		TextPrimary:   lipgloss.Color("#E8EAED"),
		TextSecondary: lipgloss.Color("#9AA0A6"),
		WarnColor:     lipgloss.Color("#FBBC04"),
		ErrorColor:    lipgloss.Color("#EA4335"),
	}
}

// HeaderStyle styles table header cells.
func (s *StyleConfig) HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(s.HeaderColor).
		Bold(true).
		Padding(0, 1)
}

// CellStyle styles table body cells.
func (s *StyleConfig) CellStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(s.TextPrimary).
		Padding(0, 1)
}

// BorderStyle styles table borders.
func (s *StyleConfig) BorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.BorderColor)
}

// WarnStyle is used for the not-found notice.
func (s *StyleConfig) WarnStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.WarnColor)
}

// ErrorStyle is used for load failures.
func (s *StyleConfig) ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.ErrorColor)
}

// MutedStyle is used for secondary notices.
func (s *StyleConfig) MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(s.TextSecondary)
}

// URLStyle highlights a feed URL.
func (s *StyleConfig) URLStyle() lipgloss.Style {
	return lipgloss.NewStyle().Reverse(true)
}

// PathStyle highlights a file path.
func (s *StyleConfig) PathStyle() lipgloss.Style {
	return lipgloss.NewStyle().Underline(true)
}
