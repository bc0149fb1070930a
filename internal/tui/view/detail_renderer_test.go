package view

import (
	"strings"
	"testing"

	"github.com/glabrego/gallery-cli/internal/manifest"
)

func TestCenterLines(t *testing.T) {
	lines := centerLines([]string{"abc"}, 9)
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d", len(lines))
	}
	if lines[0] != "   abc" {
		t.Fatalf("expected centered line with padding, got %q", lines[0])
	}
}

func TestLightboxLines_UsesMarginsCaptionAndPreview(t *testing.T) {
	lines := LightboxLines(LightboxInput{
		Photo: manifest.Photo{
			File:     "half-dome.jpg",
			Title:    "Half Dome",
			Location: "Yosemite",
			Caption:  "<p>Sunset from <b>Glacier Point</b>.</p>",
		},
		Position:         1,
		Total:            3,
		ContentWidth:     60,
		HorizontalMargin: 4,
		Wrap:             func(s string, _ int) []string { return []string{s} },
		Preview:          InlineImagePreviewState{Enabled: true, Err: "chafa is not installed"},
	})
	joined := stripANSI(strings.Join(lines, "\n"))
	for _, want := range []string{
		"    Half Dome",
		"    Location: Yosemite",
		"    File: half-dome.jpg",
		"    2 / 3",
		"    Sunset from Glacier Point.",
		"    Image preview unavailable: chafa is not installed",
	} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected %q in lightbox, got %q", want, joined)
		}
	}
}

func TestLightboxLines_PreviewDisabled(t *testing.T) {
	lines := LightboxLines(LightboxInput{
		Photo:        manifest.Photo{File: "a.jpg"},
		Total:        1,
		ContentWidth: 40,
		Wrap:         func(s string, _ int) []string { return []string{s} },
		Preview:      InlineImagePreviewState{Enabled: false, Err: "ignored"},
	})
	if strings.Contains(strings.Join(lines, "\n"), "preview") {
		t.Fatalf("expected no preview lines, got %q", lines)
	}
}

func TestPositionLabel(t *testing.T) {
	if got := PositionLabel(0, 3); got != "1 / 3" {
		t.Fatalf("unexpected label: %q", got)
	}
	if got := PositionLabel(3, 3); got != "1 / 3" {
		t.Fatalf("expected wrapped label, got %q", got)
	}
	if got := PositionLabel(0, 0); got != "0 / 0" {
		t.Fatalf("unexpected empty label: %q", got)
	}
}

func TestRenderDetailLines(t *testing.T) {
	lines := []string{"a", "b", "c", "d"}
	if got := RenderDetailLines(lines, 1, 2); got != "b\nc\n" {
		t.Fatalf("unexpected window: %q", got)
	}
	if got := DetailMaxTop(len(lines), 10); got != 0 {
		t.Fatalf("expected 0 max top, got %d", got)
	}
}
