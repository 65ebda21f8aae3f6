package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorPrimary   = lipgloss.Color("#7C3AED")
	colorSecondary = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorFg        = lipgloss.Color("#F9FAFB")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(5)

	CellStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	SelectedCellStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	ResultLabelStyle = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)
)

// RenderError formats an error line.
func RenderError(err error) string {
	return ErrorStyle.Render("error: " + err.Error())
}

// RenderHelp formats the key help line.
func RenderHelp(help string) string {
	return HelpStyle.Render(help)
}
