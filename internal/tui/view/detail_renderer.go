package view

import (
	"strings"

	"github.com/glabrego/gallery-cli/internal/manifest"
	"github.com/glabrego/gallery-cli/internal/render/caption"
)

type InlineImagePreviewState struct {
	Enabled bool
	Loading bool
	Raw     string
	Err     string
}

type LightboxInput struct {
	Photo            manifest.Photo
	Position         int
	Total            int
	ContentWidth     int
	HorizontalMargin int
	Wrap             WrapFunc
	Preview          InlineImagePreviewState
}

func LightboxLines(in LightboxInput) []string {
	lines := LightboxMetaLines(in.Photo, in.Position, in.Total, in.ContentWidth, in.Wrap)
	if captionLines := caption.Lines(in.Photo.Caption, in.ContentWidth); len(captionLines) > 0 {
		lines = append(lines, "")
		lines = append(lines, captionLines...)
	}
	lines = appendInlineImagePreview(lines, in.Preview, in.ContentWidth)
	return leftPadLines(lines, in.HorizontalMargin)
}

func DetailMaxTop(linesLen, bodyHeight int) int {
	maxTop := linesLen - bodyHeight
	if maxTop < 0 {
		return 0
	}
	return maxTop
}

func RenderDetailLines(lines []string, top, maxLines int) string {
	if len(lines) == 0 {
		return ""
	}
	if top < 0 {
		top = 0
	}
	if top > len(lines)-1 {
		top = len(lines) - 1
	}
	end := len(lines)
	if maxLines > 0 && top+maxLines < end {
		end = top + maxLines
	}
	return strings.Join(lines[top:end], "\n") + "\n"
}

func appendInlineImagePreview(lines []string, preview InlineImagePreviewState, contentWidth int) []string {
	if !preview.Enabled {
		return lines
	}
	var previewLines []string
	switch {
	case preview.Loading:
		previewLines = []string{"Loading image preview..."}
	case strings.TrimSpace(preview.Raw) != "":
		if ContainsKittyGraphicsEscape(preview.Raw) {
			previewLines = []string{strings.TrimRight(preview.Raw, "\r\n")}
		} else {
			previewLines = centerLines(strings.Split(strings.TrimRight(preview.Raw, "\r\n"), "\n"), contentWidth)
		}
	case strings.TrimSpace(preview.Err) != "":
		previewLines = []string{"Image preview unavailable: " + strings.TrimSpace(preview.Err)}
	}
	if len(previewLines) == 0 {
		return lines
	}
	out := make([]string, 0, len(lines)+len(previewLines)+1)
	out = append(out, lines...)
	out = append(out, "")
	return append(out, previewLines...)
}

func leftPadLines(lines []string, padding int) []string {
	if padding <= 0 || len(lines) == 0 {
		return lines
	}
	prefix := strings.Repeat(" ", padding)
	out := make([]string, len(lines))
	for i, line := range lines {
		if ContainsKittyGraphicsEscape(line) {
			out[i] = line
			continue
		}
		out[i] = prefix + line
	}
	return out
}

func centerLines(lines []string, width int) []string {
	if width <= 0 || len(lines) == 0 {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		visible := visibleLen(line)
		if visible >= width {
			out[i] = line
			continue
		}
		out[i] = strings.Repeat(" ", (width-visible)/2) + line
	}
	return out
}
