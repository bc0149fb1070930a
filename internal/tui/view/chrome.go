package view

import (
	"fmt"
	"strings"

	tuitheme "github.com/glabrego/gallery-cli/internal/tui/theme"
)

func Toolbar(inLightbox, searching bool) string {
	if searching {
		return "type to filter locations | enter select | esc cancel"
	}
	if inLightbox {
		return "h/l or [ ] prev/next | o open | y copy path | esc close | ? help"
	}
	return "j/k move | tab focus | enter select/open | / search | s sidebar | r reload | ? help"
}

func HelpLines() []string {
	return []string{
		"Gallery",
		"  j/k, arrows      move cursor",
		"  pgup/pgdown      jump a page",
		"  g/G              top/bottom",
		"  tab              switch between locations and photos",
		"  enter            filter by location / open photo",
		"  /                search locations",
		"  s                toggle sidebar",
		"  N                toggle numbering",
		"  p                toggle inline preview",
		"  r                reload photos.json",
		"",
		"Lightbox",
		"  h/l, left/right  previous/next photo",
		"  [ ]              previous/next photo",
		"  o                open in system viewer",
		"  y                copy photo path",
		"  esc, backspace   close",
		"",
		"  q, ctrl+c        quit",
	}
}

// Header is the title line above the grid: the active label and the count of
// photos it shows.
func Header(activeLabel, countLabel string, th tuitheme.Theme) string {
	return th.Title.Render(activeLabel) + " • " + th.Count.Render(countLabel)
}

func Footer(source string, locations, total int, sidebar bool, searchQuery string, searchMatches int, th tuitheme.Theme) string {
	sidebarLabel := "on"
	if !sidebar {
		sidebarLabel = "off"
	}
	parts := []string{
		th.MetaLabel.Render("source") + " " + th.MetaValue.Render(source),
		th.MetaLabel.Render("locations") + " " + th.MetaValue.Render(fmt.Sprintf("%d", locations)),
		th.MetaValue.Render(fmt.Sprintf("%d total", total)),
		th.MetaLabel.Render("sidebar") + " " + th.MetaValue.Render(sidebarLabel),
	}
	if searchQuery != "" {
		parts = append(parts, th.MetaLabel.Render("search")+" "+th.MetaValue.Render(fmt.Sprintf("%q (%d)", searchQuery, searchMatches)))
	}
	return strings.Join(parts, " • ")
}

func Message(loading bool, hasWarning bool, status, warning string, th tuitheme.Theme) string {
	state := "idle"
	if loading {
		state = "loading"
	}
	if hasWarning {
		state = "warning"
	}
	main := "Ready"
	if status != "" {
		main = status
	} else if hasWarning {
		main = warning
	}
	stateLabel := th.StateIdle.Render("state")
	switch state {
	case "warning":
		stateLabel = th.StateWarn.Render("state")
	case "loading":
		stateLabel = th.StateLoad.Render("state")
	}
	return fmt.Sprintf("%s: %s | %s", stateLabel, state, th.MetaValue.Render(main))
}
