package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/glabrego/gallery-cli/internal/manifest"
	"github.com/glabrego/gallery-cli/internal/tui/actions"
	"github.com/glabrego/gallery-cli/internal/tui/view"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

type fakeService struct {
	photos []manifest.Photo
	err    error
	calls  int
}

func (f *fakeService) Source() string { return "photos.json" }

func (f *fakeService) Load(context.Context) ([]manifest.Photo, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.photos, nil
}

func samplePhotos() []manifest.Photo {
	return []manifest.Photo{
		{File: "half-dome.jpg", Title: "Half Dome", Location: "Yosemite"},
		{File: "angels.jpg", Title: "Angels Landing", Location: "Zion"},
		{File: "tower.jpg", Title: "Eiffel Tower", Location: "Paris"},
		{File: "falls.jpg", Title: "Yosemite Falls", Location: "Yosemite"},
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("expected Model, got %T", next)
	}
	return model, cmd
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = update(t, m, keyMsg(k))
	}
	return m
}

func loadedModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(&fakeService{photos: samplePhotos()}, nil)
	m.renderImageFn = nil
	m, _ = update(t, m, actions.LoadSuccessMsg{Photos: samplePhotos(), Source: "startup"})
	return m
}

func TestModel_InitLoadsManifest(t *testing.T) {
	svc := &fakeService{photos: samplePhotos()}
	m := NewModel(svc, nil)
	if !strings.Contains(stripANSI(m.View()), "Loading photos...") {
		t.Fatalf("expected loading view before the first load")
	}

	cmd := m.Init()
	if cmd == nil {
		t.Fatal("expected init command")
	}
	msg := cmd()
	success, ok := msg.(actions.LoadSuccessMsg)
	if !ok {
		t.Fatalf("expected LoadSuccessMsg, got %T", msg)
	}
	if success.Source != "startup" || svc.calls != 1 {
		t.Fatalf("unexpected load: source=%q calls=%d", success.Source, svc.calls)
	}

	m, _ = update(t, m, success)
	out := stripANSI(m.View())
	for _, want := range []string{"All Photos • 4 photos", "National Parks", "Yosemite", "Paris", "Half Dome", "source photos.json"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in view, got %q", want, out)
		}
	}
}

func TestModel_InitWithoutService(t *testing.T) {
	m := NewModel(nil, nil)
	if cmd := m.Init(); cmd != nil {
		t.Fatal("expected no init command without a service")
	}
}

func TestModel_LoadErrorShowsFailure(t *testing.T) {
	m := NewModel(&fakeService{}, nil)
	m, _ = update(t, m, actions.LoadErrorMsg{
		Err:    &manifest.LoadFailure{Source: "photos.json", Err: errors.New("404 Not Found")},
		Source: "startup",
	})
	out := stripANSI(m.View())
	if !strings.Contains(out, "Unable to load photos.") {
		t.Fatalf("expected failure message, got %q", out)
	}
	if strings.Contains(out, "All Photos") {
		t.Fatalf("expected no gallery after failure, got %q", out)
	}
	if !strings.Contains(out, "state: warning") {
		t.Fatalf("expected warning state, got %q", out)
	}

	m = press(t, m, "enter", "/")
	if m.searching || m.gallery.Lightbox.IsOpen() {
		t.Fatal("expected gallery keys to be ignored after a load failure")
	}
}

func TestModel_EmptyManifest(t *testing.T) {
	m := NewModel(&fakeService{}, nil)
	m, _ = update(t, m, actions.LoadSuccessMsg{Source: "startup"})
	out := stripANSI(m.View())
	if !strings.Contains(out, "All Photos • 0 photos") {
		t.Fatalf("expected empty labels, got %q", out)
	}
	if strings.Contains(out, "National Parks") {
		t.Fatalf("expected no featured heading, got %q", out)
	}

	m = press(t, m, "enter")
	if m.gallery.Lightbox.IsOpen() {
		t.Fatal("expected enter on an empty grid to do nothing")
	}
}

func TestModel_SelectLocationUpdatesLabels(t *testing.T) {
	m := loadedModel(t)
	m = press(t, m, "tab", "down")
	if m.groupCursor != 2 {
		t.Fatalf("expected cursor to skip heading onto Yosemite, got %d", m.groupCursor)
	}
	m = press(t, m, "enter")

	if m.projection.ActiveLocation != "Yosemite" || len(m.projection.Photos) != 2 {
		t.Fatalf("unexpected projection: %+v", m.projection)
	}
	if m.focus != focusPhotos {
		t.Fatal("expected focus to move to photos after selecting a location")
	}
	out := stripANSI(m.View())
	if !strings.Contains(out, "Yosemite • 2 photos") {
		t.Fatalf("expected Yosemite header, got %q", out)
	}
	if strings.Contains(out, "Eiffel Tower") {
		t.Fatalf("expected Paris photo to be filtered out, got %q", out)
	}

	m = press(t, m, "h", "g", "enter")
	if m.projection.ActiveLocation != "All" || m.projection.ActiveLabel != "All Photos" {
		t.Fatalf("expected All after selecting the first row, got %+v", m.projection)
	}
}

func TestModel_GroupCursorSkipsMarkers(t *testing.T) {
	m := loadedModel(t)
	m = press(t, m, "tab")

	want := []int{2, 3, 5, 5}
	for i, expected := range want {
		m = press(t, m, "j")
		if m.groupCursor != expected {
			t.Fatalf("step %d: expected cursor %d, got %d", i, expected, m.groupCursor)
		}
	}
	m = press(t, m, "k")
	if m.groupCursor != 3 {
		t.Fatalf("expected cursor to skip divider upwards, got %d", m.groupCursor)
	}
	m = press(t, m, "G")
	if m.groupCursor != 5 {
		t.Fatalf("expected bottom to land on Paris, got %d", m.groupCursor)
	}
}

func TestModel_LightboxPrevWraps(t *testing.T) {
	m := loadedModel(t)
	m = press(t, m, "enter")
	if !m.gallery.Lightbox.IsOpen() || m.gallery.ActiveIndex() != 0 {
		t.Fatal("expected lightbox on the first photo")
	}

	m = press(t, m, "h")
	photo, ok := m.gallery.CurrentPhoto()
	if !ok || photo.File != "falls.jpg" {
		t.Fatalf("expected prev to wrap to the last photo, got %+v", photo)
	}
	out := stripANSI(m.View())
	if !strings.Contains(out, "4 / 4") || !strings.Contains(out, "Yosemite Falls") {
		t.Fatalf("expected last photo in lightbox, got %q", out)
	}

	m = press(t, m, "]")
	if m.gallery.ActiveIndex() != 0 {
		t.Fatalf("expected next to wrap back to 0, got %d", m.gallery.ActiveIndex())
	}

	m = press(t, m, "l", "esc")
	if m.gallery.Lightbox.IsOpen() {
		t.Fatal("expected esc to close the lightbox")
	}
	if m.photoCursor != 1 {
		t.Fatalf("expected grid cursor to follow the lightbox, got %d", m.photoCursor)
	}
}

func TestModel_LightboxRequestsInlinePreview(t *testing.T) {
	m := loadedModel(t)
	var gotTarget string
	m.SetPhotoResolver(func(file string) string { return "/photos/" + file })
	m.renderImageFn = func(target string, _ int) (string, error) {
		gotTarget = target
		return "IMG", nil
	}

	m, cmd := update(t, m, keyMsg("enter"))
	if cmd == nil {
		t.Fatal("expected preview command")
	}
	if !strings.Contains(stripANSI(m.View()), "Loading image preview...") {
		t.Fatal("expected loading placeholder while preview renders")
	}
	msg := cmd()
	if gotTarget != "/photos/half-dome.jpg" {
		t.Fatalf("expected resolved target, got %q", gotTarget)
	}
	m, _ = update(t, m, msg)
	if !strings.Contains(stripANSI(m.View()), "IMG") {
		t.Fatal("expected rendered preview in lightbox")
	}

	m = press(t, m, "esc")
	if _, cmd = update(t, m, keyMsg("enter")); cmd != nil {
		t.Fatal("expected cached preview to skip rendering")
	}
}

func TestModel_InlinePreviewError(t *testing.T) {
	m := loadedModel(t)
	m.renderImageFn = func(string, int) (string, error) { return "", errors.New("chafa is not installed") }
	m, cmd := update(t, m, keyMsg("enter"))
	m, _ = update(t, m, cmd())
	if !strings.Contains(stripANSI(m.View()), "Image preview unavailable: chafa is not installed") {
		t.Fatalf("expected preview error, got %q", stripANSI(m.View()))
	}
}

func TestModel_SearchSelectsBestMatch(t *testing.T) {
	m := loadedModel(t)
	m = press(t, m, "/")
	if !m.searching {
		t.Fatal("expected search mode")
	}
	m = press(t, m, "p", "a", "r")
	groups := m.visibleGroups()
	if m.groupCursor < 0 || m.groupCursor >= len(groups) || groups[m.groupCursor].Name != "Paris" {
		t.Fatalf("expected cursor on Paris, got %d in %+v", m.groupCursor, groups)
	}
	if !strings.Contains(stripANSI(m.View()), `search "par" (1)`) {
		t.Fatalf("expected search summary in footer, got %q", stripANSI(m.View()))
	}

	m = press(t, m, "enter")
	if m.searching {
		t.Fatal("expected enter to leave search mode")
	}
	if m.projection.ActiveLocation != "Paris" || m.projection.CountLabel != "1 photo" {
		t.Fatalf("unexpected projection after search: %+v", m.projection)
	}
	if m.projection.Groups[m.groupCursor].Name != "Paris" {
		t.Fatalf("expected group cursor mapped back to full list, got %d", m.groupCursor)
	}
}

func TestModel_SearchEscKeepsFilter(t *testing.T) {
	m := loadedModel(t)
	m = press(t, m, "/", "z", "i", "esc")
	if m.searching {
		t.Fatal("expected esc to cancel search")
	}
	if m.projection.ActiveLocation != "All" {
		t.Fatalf("expected filter unchanged, got %q", m.projection.ActiveLocation)
	}
	if m.groupCursor != 0 {
		t.Fatalf("expected cursor back on All, got %d", m.groupCursor)
	}
}

func TestModel_TogglesPersistPreferences(t *testing.T) {
	m := loadedModel(t)
	var saved []Preferences
	m.SetPreferencesSaver(func(p Preferences) error {
		saved = append(saved, p)
		return nil
	})

	m, cmd := update(t, m, keyMsg("s"))
	if cmd == nil {
		t.Fatal("expected persist command")
	}
	if _, ok := cmd().(actions.PreferencesSavedMsg); !ok {
		t.Fatal("expected PreferencesSavedMsg")
	}
	if len(saved) != 1 || saved[0].ShowSidebar {
		t.Fatalf("expected sidebar off to be saved, got %+v", saved)
	}
	if m.focus != focusPhotos || m.sidebarVisible() {
		t.Fatal("expected hidden sidebar to move focus to photos")
	}
	if !strings.Contains(stripANSI(m.View()), "Sidebar: off") {
		t.Fatal("expected sidebar status")
	}

	m, cmd = update(t, m, keyMsg("N"))
	cmd()
	if !saved[1].ShowNumbers || !strings.Contains(stripANSI(m.View()), "  1. Half Dome") {
		t.Fatalf("expected numbering on, got %+v / %q", saved, stripANSI(m.View()))
	}
}

func TestModel_PreferencesErrorIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := NewModel(&fakeService{}, zap.New(core))
	m.SetPreferencesSaver(func(Preferences) error { return errors.New("disk full") })

	m, cmd := update(t, m, keyMsg("p"))
	m, _ = update(t, m, cmd())
	if m.status != "Could not persist UI preferences" || m.err == nil {
		t.Fatalf("unexpected status=%q err=%v", m.status, m.err)
	}
	entries := logs.FilterMessage("persist preferences").All()
	if len(entries) != 1 || entries[0].Level != zapcore.WarnLevel {
		t.Fatalf("expected one warning, got %+v", entries)
	}
}

func TestModel_ApplyPreferences(t *testing.T) {
	m := NewModel(nil, nil)
	m.ApplyPreferences(Preferences{ShowSidebar: false, ShowNumbers: true, InlinePreview: false})
	got := m.Preferences()
	if got.ShowSidebar || !got.ShowNumbers || got.InlinePreview {
		t.Fatalf("unexpected preferences: %+v", got)
	}
	if m.focus != focusPhotos {
		t.Fatal("expected photo focus without sidebar")
	}
}

func TestModel_OpenPhotoUsesResolvedPath(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "half-dome.jpg"), []byte("jpg"), 0o600); err != nil {
		t.Fatalf("write photo: %v", err)
	}
	m := loadedModel(t)
	m.SetPhotoResolver(func(file string) string { return filepath.Join(dir, file) })
	var opened string
	m.openFn = func(target string) error {
		opened = target
		return nil
	}

	m, cmd := update(t, m, keyMsg("o"))
	if cmd == nil {
		t.Fatal("expected open command")
	}
	msg, ok := cmd().(actions.PhotoActionSuccessMsg)
	if !ok || !msg.Opened {
		t.Fatalf("expected opened photo, got %+v", msg)
	}
	if opened != filepath.Join(dir, "half-dome.jpg") {
		t.Fatalf("unexpected target: %q", opened)
	}

	m, cmd = update(t, m, msg)
	if m.status != "Opened photo in viewer" || cmd == nil {
		t.Fatalf("expected status with clear command, got %q", m.status)
	}
}

func TestModel_CopyMissingFileSetsStatus(t *testing.T) {
	m := loadedModel(t)
	m.SetPhotoResolver(func(file string) string { return filepath.Join(t.TempDir(), file) })
	m.copyFn = func(string) error {
		t.Fatal("copy should not run for a missing file")
		return nil
	}
	m, cmd := update(t, m, keyMsg("y"))
	if cmd == nil || !strings.HasPrefix(m.status, "photo file not found") {
		t.Fatalf("expected not-found status, got %q", m.status)
	}
}

func TestModel_PhotoActionErrorAndStatusClear(t *testing.T) {
	m := loadedModel(t)
	m, _ = update(t, m, actions.PhotoActionErrorMsg{Err: errors.New("could not copy photo path to clipboard")})
	if m.status != "could not copy photo path to clipboard" {
		t.Fatalf("unexpected status: %q", m.status)
	}
	id := m.statusID

	m, _ = update(t, m, clearStatusMsg{id: id - 1})
	if m.status == "" {
		t.Fatal("expected stale clear to be ignored")
	}
	m, _ = update(t, m, clearStatusMsg{id: id})
	if m.status != "" {
		t.Fatalf("expected status cleared, got %q", m.status)
	}
}

func TestModel_ManualReload(t *testing.T) {
	svc := &fakeService{photos: samplePhotos()[:1]}
	m := loadedModel(t)
	m.service = svc
	m = press(t, m, "tab", "j", "enter")

	m, cmd := update(t, m, keyMsg("r"))
	if !m.loading || cmd == nil {
		t.Fatal("expected reload to start")
	}
	if _, again := update(t, m, keyMsg("r")); again != nil {
		t.Fatal("expected reload to be ignored while loading")
	}
	m, _ = update(t, m, cmd())
	if m.status != "Reloaded 1 photo" {
		t.Fatalf("unexpected status: %q", m.status)
	}
	if m.projection.ActiveLocation != "All" || m.projection.CountLabel != "1 photo" {
		t.Fatalf("expected reload to reset to All, got %+v", m.projection)
	}
}

func TestModel_HelpAndQuit(t *testing.T) {
	m := loadedModel(t)
	m = press(t, m, "?")
	if !strings.Contains(stripANSI(m.View()), "Help (? to close)") {
		t.Fatal("expected help view")
	}
	m = press(t, m, "esc")
	if m.showHelp {
		t.Fatal("expected esc to close help")
	}
	if _, cmd := update(t, m, keyMsg("q")); cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestModel_WindowSizeBoundsGrid(t *testing.T) {
	m := NewModel(&fakeService{}, nil)
	photos := make([]manifest.Photo, 40)
	for i := range photos {
		photos[i] = manifest.Photo{File: filepath.Join("p", string(rune('a'+i%26))) + ".jpg", Location: "Zion"}
	}
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 20})
	m, _ = update(t, m, actions.LoadSuccessMsg{Photos: photos})
	lines := strings.Split(strings.TrimRight(m.View(), "\n"), "\n")
	if len(lines) > 20 {
		t.Fatalf("expected view to fit 20 rows, got %d", len(lines))
	}
}

func TestLightboxRowCount(t *testing.T) {
	lines := []string{"title", "\x1b_Gf=100;AAAA\x1b\\\nrow\nrow"}
	if got := lightboxRowCount(lines); got != 4 {
		t.Fatalf("expected kitty image rows to be counted, got %d", got)
	}
}

func TestModel_LightboxScrollStaysWithinEntriesWithKittyPreview(t *testing.T) {
	m := loadedModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 20})
	m.renderImageFn = func(string, int) (string, error) { return "", nil }
	m.imagePreview["half-dome.jpg"] = "\x1b_Ga=T;AAAA\x1b\\" + strings.Repeat("\nrow", 9)
	m = press(t, m, "enter")

	lines := m.lightboxLines()
	for i := 0; i < 3*len(lines); i++ {
		m = press(t, m, "j")
	}
	if m.detailTop < 1 || m.detailTop > len(lines)-1 {
		t.Fatalf("expected scroll offset within %d entries, got %d", len(lines), m.detailTop)
	}
	want := view.DetailMaxTop(len(lines), m.detailEntryBudget(lines))
	if m.detailTop != want {
		t.Fatalf("expected scroll to stop at %d, got %d", want, m.detailTop)
	}

	before := m.detailTop
	m = press(t, m, "k")
	if m.detailTop != before-1 {
		t.Fatalf("expected a single up to scroll back, got %d from %d", m.detailTop, before)
	}
}
