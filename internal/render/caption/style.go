package caption

import "github.com/charmbracelet/lipgloss"

var linkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Faint(true)
