package view

import (
	"fmt"
	"strings"

	"github.com/glabrego/gallery-cli/internal/gallery"
	"github.com/glabrego/gallery-cli/internal/manifest"
)

type WrapFunc func(string, int) []string

// LightboxMetaLines lists the title block of the open photo. position is the
// 0-based index in the active list of total photos.
func LightboxMetaLines(photo manifest.Photo, position, total, width int, wrap WrapFunc) []string {
	title := PhotoLabel(photo)
	lines := make([]string, 0, 8)
	lines = append(lines, wrap(title, width)...)
	lines = append(lines, strings.Repeat("=", max(1, min(width, visibleLen(title)))))
	lines = append(lines, "")
	lines = append(lines, wrap("Location: "+gallery.NormalizeLocation(photo.Location), width)...)
	lines = append(lines, wrap("File: "+photo.File, width)...)
	lines = append(lines, PositionLabel(position, total))
	return lines
}

// PositionLabel renders "i / n" with a 1-based i.
func PositionLabel(position, total int) string {
	if total <= 0 {
		return "0 / 0"
	}
	return fmt.Sprintf("%d / %d", gallery.WrapIndex(position, total)+1, total)
}
