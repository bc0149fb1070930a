package theme

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/glabrego/gallery-cli/internal/gallery"
)

func TestStyleGroupLabel_ByKind(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI)
	th := Default()

	cases := []struct {
		name   string
		group  gallery.Group
		active bool
	}{
		{name: "heading", group: gallery.Group{Kind: gallery.GroupHeading}},
		{name: "divider", group: gallery.Group{Kind: gallery.GroupDivider}},
		{name: "active", group: gallery.Group{Kind: gallery.GroupLocation, Name: "Zion"}, active: true},
		{name: "location", group: gallery.Group{Kind: gallery.GroupLocation, Name: "Paris"}},
	}
	for _, tc := range cases {
		got := th.StyleGroupLabel(tc.group, "Label", tc.active)
		if !strings.Contains(got, "\x1b[") || !strings.Contains(got, "Label") {
			t.Fatalf("%s: expected styled label, got %q", tc.name, got)
		}
	}

	if got := th.StyleGroupLabel(gallery.Group{Kind: gallery.GroupDivider}, "", false); got != "" {
		t.Fatalf("expected empty label to stay empty, got %q", got)
	}
}

func TestRenderActiveLine(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI)
	th := Default()

	if got := th.RenderActiveLine(false, "plain"); got != "plain" {
		t.Fatalf("expected inactive line untouched, got %q", got)
	}
	if got := th.RenderActiveLine(true, "cursor"); !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected active line styled, got %q", got)
	}
}
