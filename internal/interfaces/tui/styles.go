// Package tui is the bubbletea shell around the chat and checkout controllers.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	userLabelStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	assistantLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170"))
	userTextStyle       = lipgloss.NewStyle().PaddingLeft(2)

	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	fieldLabelStyle = lipgloss.NewStyle().Width(8).Foreground(lipgloss.Color("#AFAFAF"))

	payButtonStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("62"))
	payButtonDisabledStyle = payButtonStyle.
				Foreground(lipgloss.Color("#888888")).
				Background(lipgloss.Color("236"))

	bannerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("42")).
			Padding(0, 2)

	docStyle = lipgloss.NewStyle().Margin(1, 2)
)
