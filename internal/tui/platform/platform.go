package platform

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

var clipboardCommands = [][]string{
	{"pbcopy"},
	{"xclip", "-selection", "clipboard"},
	{"wl-copy"},
}

// ValidatePhotoTarget accepts an http(s) photo URL or a path to an existing
// local file. Local paths are returned absolute.
func ValidatePhotoTarget(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("photo has no file")
	}
	if strings.Contains(trimmed, "://") {
		parsed, err := url.Parse(trimmed)
		if err != nil {
			return "", fmt.Errorf("invalid URL format")
		}
		if parsed.Scheme != "http" && parsed.Scheme != "https" {
			return "", fmt.Errorf("unsupported URL scheme: %s", parsed.Scheme)
		}
		if parsed.Host == "" {
			return "", fmt.Errorf("invalid URL host")
		}
		return trimmed, nil
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return "", fmt.Errorf("resolve photo path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("photo file not found: %s", trimmed)
	}
	if info.IsDir() {
		return "", fmt.Errorf("photo path is a directory: %s", trimmed)
	}
	return abs, nil
}

func OpenInViewer(target string) error {
	name, args := viewerCommand(runtime.GOOS, target)
	return exec.Command(name, args...).Run()
}

func viewerCommand(goos, target string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{target}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}
	default:
		return "xdg-open", []string{target}
	}
}

func CopyToClipboard(text string) error {
	command, err := selectClipboardCommand(exec.LookPath)
	if err != nil {
		return err
	}
	cmd := exec.Command(command[0], command[1:]...)
	cmd.Stdin = bytes.NewBufferString(text)
	return cmd.Run()
}

func selectClipboardCommand(lookup func(string) (string, error)) ([]string, error) {
	for _, c := range clipboardCommands {
		if _, err := lookup(c[0]); err == nil {
			return c, nil
		}
	}
	return nil, fmt.Errorf("no clipboard command available")
}
