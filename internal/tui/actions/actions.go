package actions

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glabrego/gallery-cli/internal/manifest"
)

type Service interface {
	Load(ctx context.Context) ([]manifest.Photo, error)
}

type LoadSuccessMsg struct {
	Photos   []manifest.Photo
	Duration time.Duration
	Source   string
}

type LoadErrorMsg struct {
	Err      error
	Duration time.Duration
	Source   string
}

type InlinePreviewSuccessMsg struct {
	File   string
	Width  int
	Output string
}

type InlinePreviewErrorMsg struct {
	File string
	Err  error
}

type PreferencesSavedMsg struct{}

type PreferencesErrorMsg struct {
	Err error
}

type PhotoActionSuccessMsg struct {
	Status string
	Opened bool
}

type PhotoActionErrorMsg struct {
	Err error
}

// LoadManifestCmd loads photos.json within timeout. source tags the message
// with what triggered the load ("startup" or "manual").
func LoadManifestCmd(service Service, timeout time.Duration, source string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		start := time.Now()

		photos, err := service.Load(ctx)
		if err != nil {
			return LoadErrorMsg{Err: err, Duration: time.Since(start), Source: source}
		}
		return LoadSuccessMsg{Photos: photos, Duration: time.Since(start), Source: source}
	}
}

func InlinePreviewCmd(file, target string, width int, render func(string, int) (string, error)) tea.Cmd {
	return func() tea.Msg {
		output, err := render(target, width)
		if err != nil {
			return InlinePreviewErrorMsg{File: file, Err: err}
		}
		return InlinePreviewSuccessMsg{File: file, Width: width, Output: output}
	}
}

func SavePreferencesCmd(save func() error) tea.Cmd {
	return func() tea.Msg {
		if err := save(); err != nil {
			return PreferencesErrorMsg{Err: err}
		}
		return PreferencesSavedMsg{}
	}
}

func OpenPhotoCmd(target string, openFn, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if openFn != nil {
			if err := openFn(target); err == nil {
				return PhotoActionSuccessMsg{Status: "Opened photo in viewer", Opened: true}
			}
		}
		if copyFn != nil {
			if err := copyFn(target); err == nil {
				return PhotoActionSuccessMsg{Status: "Could not open viewer, path copied to clipboard"}
			}
		}
		return PhotoActionErrorMsg{Err: fmt.Errorf("could not open photo or copy its path")}
	}
}

func CopyPathCmd(target string, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if copyFn != nil {
			if err := copyFn(target); err == nil {
				return PhotoActionSuccessMsg{Status: "Photo path copied to clipboard"}
			}
		}
		return PhotoActionErrorMsg{Err: fmt.Errorf("could not copy photo path to clipboard")}
	}
}
