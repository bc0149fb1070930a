package view

import (
	"strings"

	"github.com/glabrego/gallery-cli/internal/gallery"
	"github.com/glabrego/gallery-cli/internal/manifest"
)

type LocationListInput struct {
	Groups         []gallery.Group
	Start          int
	End            int
	Cursor         int
	ActiveLocation string
	Focused        bool

	RenderLine func(group gallery.Group, active, selected bool) string
}

func RenderLocationList(in LocationListInput) string {
	if len(in.Groups) == 0 || in.Start >= in.End || in.Start < 0 {
		return ""
	}
	end := min(in.End, len(in.Groups))
	var b strings.Builder
	for i := in.Start; i < end; i++ {
		group := in.Groups[i]
		selected := group.Selectable() && group.Name == in.ActiveLocation
		b.WriteString(in.RenderLine(group, in.Focused && i == in.Cursor, selected))
		b.WriteString("\n")
	}
	return b.String()
}

type PhotoGridInput struct {
	Photos  []manifest.Photo
	Start   int
	End     int
	Cursor  int
	Focused bool

	RenderLine func(photo manifest.Photo, position int, active bool) string
}

func RenderPhotoGrid(in PhotoGridInput) string {
	if len(in.Photos) == 0 || in.Start >= in.End || in.Start < 0 {
		return ""
	}
	end := min(in.End, len(in.Photos))
	var b strings.Builder
	for i := in.Start; i < end; i++ {
		b.WriteString(in.RenderLine(in.Photos[i], i, in.Focused && i == in.Cursor))
		b.WriteString("\n")
	}
	return b.String()
}
