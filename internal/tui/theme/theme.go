package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/glabrego/gallery-cli/internal/gallery"
)

type Theme struct {
	Title     lipgloss.Style
	ModePill  lipgloss.Style
	Heading   lipgloss.Style
	Divider   lipgloss.Style
	Count     lipgloss.Style
	MetaLabel lipgloss.Style
	MetaValue lipgloss.Style
	StateIdle lipgloss.Style
	StateWarn lipgloss.Style
	StateLoad lipgloss.Style

	ActiveLine     lipgloss.Style
	ActiveLocation lipgloss.Style
	Location       lipgloss.Style
	PhotoTitle     lipgloss.Style
	Caption        lipgloss.Style
	Sidebar        lipgloss.Style
	SidebarFocused lipgloss.Style
}

func Default() Theme {
	cpMauve := lipgloss.Color("#cba6f7")
	cpRed := lipgloss.Color("#f38ba8")
	cpPeach := lipgloss.Color("#fab387")
	cpYellow := lipgloss.Color("#f9e2af")
	cpGreen := lipgloss.Color("#a6e3a1")
	cpTeal := lipgloss.Color("#94e2d5")
	cpLavender := lipgloss.Color("#b4befe")
	cpText := lipgloss.Color("#cdd6f4")
	cpSubtext0 := lipgloss.Color("#a6adc8")
	cpSubtext1 := lipgloss.Color("#bac2de")
	cpOverlay0 := lipgloss.Color("#6c7086")
	cpOverlay1 := lipgloss.Color("#7f849c")
	cpSurface0 := lipgloss.Color("#313244")
	cpSurface2 := lipgloss.Color("#585b70")

	return Theme{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(cpMauve),
		ModePill:  lipgloss.NewStyle().Foreground(cpLavender).Background(cpSurface0).Padding(0, 1),
		Heading:   lipgloss.NewStyle().Bold(true).Foreground(cpTeal),
		Divider:   lipgloss.NewStyle().Foreground(cpSurface2),
		Count:     lipgloss.NewStyle().Foreground(cpYellow).Bold(true),
		MetaLabel: lipgloss.NewStyle().Foreground(cpOverlay1),
		MetaValue: lipgloss.NewStyle().Foreground(cpSubtext1),
		StateIdle: lipgloss.NewStyle().Foreground(cpGreen),
		StateWarn: lipgloss.NewStyle().Foreground(cpRed),
		StateLoad: lipgloss.NewStyle().Foreground(cpPeach),

		ActiveLine:     lipgloss.NewStyle().Background(cpSurface0).Foreground(cpText),
		ActiveLocation: lipgloss.NewStyle().Bold(true).Foreground(cpLavender),
		Location:       lipgloss.NewStyle().Foreground(cpSubtext0),
		PhotoTitle:     lipgloss.NewStyle().Bold(true).Foreground(cpText),
		Caption:        lipgloss.NewStyle().Italic(true).Foreground(cpSubtext0),
		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(cpOverlay0).
			PaddingRight(1),
		SidebarFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(cpMauve).
			PaddingRight(1),
	}
}

// StyleGroupLabel styles a chooser row by kind. Active marks the location
// currently filtering the grid.
func (t Theme) StyleGroupLabel(group gallery.Group, label string, active bool) string {
	if label == "" {
		return label
	}
	switch {
	case group.Kind == gallery.GroupHeading:
		return t.Heading.Render(label)
	case group.Kind == gallery.GroupDivider:
		return t.Divider.Render(label)
	case active:
		return t.ActiveLocation.Render(label)
	default:
		return t.Location.Render(label)
	}
}

func (t Theme) RenderActiveLine(active bool, line string) string {
	if !active {
		return line
	}
	return t.ActiveLine.Render(line)
}
