package view

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/glabrego/gallery-cli/internal/gallery"
	"github.com/glabrego/gallery-cli/internal/manifest"
	tuitheme "github.com/glabrego/gallery-cli/internal/tui/theme"
)

var reANSICodes = regexp.MustCompile(`\x1b\[[0-9;]*m`)

type LocationLineParams struct {
	Group    gallery.Group
	Active   bool
	Selected bool
	Width    int
}

// RenderLocationLine draws one chooser row. Active is the cursor row,
// Selected marks the location currently filtering the grid.
func RenderLocationLine(p LocationLineParams, th tuitheme.Theme) string {
	switch p.Group.Kind {
	case gallery.GroupHeading:
		return th.StyleGroupLabel(p.Group, truncateRunes(p.Group.Label, p.Width), false)
	case gallery.GroupDivider:
		return th.StyleGroupLabel(p.Group, strings.Repeat("─", max(1, p.Width)), false)
	}

	marker := "  "
	if p.Selected {
		marker = "● "
	}
	right := th.Count.Render(fmt.Sprintf("%d", p.Group.Count))
	available := p.Width - visibleLen(marker) - visibleLen(right) - 1
	if available < 1 {
		available = 1
	}
	label := truncateRunes(p.Group.Label, available)
	gap := p.Width - visibleLen(marker) - visibleLen(label) - visibleLen(right)
	if gap < 1 {
		gap = 1
	}
	styled := th.StyleGroupLabel(p.Group, label, p.Selected)
	return th.RenderActiveLine(p.Active, marker+styled+strings.Repeat(" ", gap)+right)
}

type PhotoLineParams struct {
	Photo       manifest.Photo
	ShowNumbers bool
	Position    int
	Active      bool
	Width       int
}

func RenderPhotoLine(p PhotoLineParams, th tuitheme.Theme) string {
	cursorMarker := " "
	if p.Active {
		cursorMarker = ">"
	}
	prefix := fmt.Sprintf(" %s ", cursorMarker)
	if p.ShowNumbers {
		prefix = fmt.Sprintf(" %s%3d. ", cursorMarker, p.Position+1)
	}

	location := "[" + gallery.NormalizeLocation(p.Photo.Location) + "]"
	available := p.Width - visibleLen(prefix) - 1 - visibleLen(location)
	if available < 1 {
		available = 1
	}
	label := truncateRunes(PhotoLabel(p.Photo), available)
	gap := p.Width - visibleLen(prefix) - visibleLen(label) - visibleLen(location)
	if gap < 1 {
		gap = 1
	}
	return th.RenderActiveLine(p.Active, prefix+th.PhotoTitle.Render(label)+strings.Repeat(" ", gap)+th.MetaLabel.Render(location))
}

// PhotoLabel is the title, or the file name for untitled photos.
func PhotoLabel(photo manifest.Photo) string {
	if title := strings.TrimSpace(photo.Title); title != "" {
		return title
	}
	if file := strings.TrimSpace(photo.File); file != "" {
		return file
	}
	return "(untitled)"
}

func truncateRunes(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return strings.Repeat(".", maxLen)
	}
	runes := []rune(s)
	return string(runes[:maxLen-3]) + "..."
}

func visibleLen(s string) int {
	return utf8.RuneCountInString(stripANSIText(s))
}

func stripANSIText(s string) string {
	return reANSICodes.ReplaceAllString(s, "")
}
