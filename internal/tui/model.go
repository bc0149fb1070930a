package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/glabrego/gallery-cli/internal/gallery"
	"github.com/glabrego/gallery-cli/internal/logging"
	"github.com/glabrego/gallery-cli/internal/manifest"
	"github.com/glabrego/gallery-cli/internal/render/caption"
	"github.com/glabrego/gallery-cli/internal/tui/actions"
	"github.com/glabrego/gallery-cli/internal/tui/platform"
	"github.com/glabrego/gallery-cli/internal/tui/state"
	tuitheme "github.com/glabrego/gallery-cli/internal/tui/theme"
	"github.com/glabrego/gallery-cli/internal/tui/view"
)

const defaultLoadTimeout = 15 * time.Second

type Service interface {
	Source() string
	Load(ctx context.Context) ([]manifest.Photo, error)
}

type clearStatusMsg struct {
	id int
}

type Preferences struct {
	ShowSidebar   bool
	ShowNumbers   bool
	InlinePreview bool
}

type focusArea int

const (
	focusLocations focusArea = iota
	focusPhotos
)

type Model struct {
	service     Service
	logger      *zap.Logger
	keys        keyMap
	theme       tuitheme.Theme
	gallery     gallery.ViewState
	projection  gallery.Projection
	loadTimeout time.Duration

	loaded  bool
	loading bool
	loadErr error

	focus         focusArea
	groupCursor   int
	photoCursor   int
	detailTop     int
	showSidebar   bool
	showNumbers   bool
	inlinePreview bool
	showHelp      bool
	searching     bool
	search        textinput.Model

	width    int
	height   int
	status   string
	statusID int
	err      error

	resolveFn           func(string) string
	openFn              func(string) error
	copyFn              func(string) error
	renderImageFn       func(string, int) (string, error)
	savePreferencesFn   func(Preferences) error
	imagePreview        map[string]string
	imagePreviewErr     map[string]string
	imagePreviewLoading map[string]bool
}

func NewModel(service Service, logger *zap.Logger) Model {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "location"
	search.CharLimit = 64

	vs := gallery.NewViewState()
	return Model{
		service:             service,
		logger:              logging.OrNop(logger),
		keys:                defaultKeyMap(),
		theme:               tuitheme.Default(),
		gallery:             vs,
		projection:          vs.Render(),
		loadTimeout:         defaultLoadTimeout,
		loading:             service != nil,
		focus:               focusPhotos,
		showSidebar:         true,
		inlinePreview:       true,
		search:              search,
		resolveFn:           func(file string) string { return file },
		openFn:              platform.OpenInViewer,
		copyFn:              platform.CopyToClipboard,
		renderImageFn:       view.RenderInlineImagePreview,
		imagePreview:        make(map[string]string),
		imagePreviewErr:     make(map[string]string),
		imagePreviewLoading: make(map[string]bool),
	}
}

func (m Model) Init() tea.Cmd {
	if m.service == nil {
		return nil
	}
	return actions.LoadManifestCmd(m.service, m.loadTimeout, "startup")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case actions.LoadSuccessMsg:
		m.loading = false
		m.loaded = true
		m.loadErr = nil
		m.err = nil
		m.projection = m.gallery.Load(msg.Photos)
		m.groupCursor = state.SnapGroupCursor(m.projection.Groups, 0)
		m.photoCursor = 0
		m.detailTop = 0
		m.logger.Debug("gallery loaded",
			zap.String("trigger", msg.Source),
			zap.Int("photos", len(msg.Photos)),
			zap.Duration("duration", msg.Duration),
		)
		if msg.Source == "manual" {
			return m.setStatus(fmt.Sprintf("Reloaded %s", gallery.CountLabel(len(msg.Photos))), 3*time.Second)
		}
		return m, nil
	case actions.LoadErrorMsg:
		m.loading = false
		m.loadErr = msg.Err
		m.status = ""
		m.gallery.CloseLightbox()
		m.logger.Debug("gallery load failed",
			zap.String("trigger", msg.Source),
			zap.Duration("duration", msg.Duration),
			zap.Error(msg.Err),
		)
		return m, nil
	case actions.InlinePreviewSuccessMsg:
		delete(m.imagePreviewLoading, msg.File)
		delete(m.imagePreviewErr, msg.File)
		m.imagePreview[msg.File] = msg.Output
		return m, nil
	case actions.InlinePreviewErrorMsg:
		delete(m.imagePreviewLoading, msg.File)
		m.imagePreviewErr[msg.File] = msg.Err.Error()
		m.logger.Debug("inline preview failed", zap.String("file", msg.File), zap.Error(msg.Err))
		return m, nil
	case actions.PreferencesSavedMsg:
		return m, nil
	case actions.PreferencesErrorMsg:
		m.err = msg.Err
		m.status = "Could not persist UI preferences"
		m.logger.Warn("persist preferences", zap.Error(msg.Err))
		return m, nil
	case actions.PhotoActionSuccessMsg:
		m.err = nil
		return m.setStatus(msg.Status, 3*time.Second)
	case actions.PhotoActionErrorMsg:
		m.err = nil
		return m.setStatus(msg.Err.Error(), 4*time.Second)
	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	}
	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}
	if key.Matches(msg, m.keys.Help) {
		m.showHelp = !m.showHelp
		return m, nil
	}
	if m.showHelp {
		switch {
		case key.Matches(msg, m.keys.Back):
			m.showHelp = false
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		return m, nil
	}
	if m.gallery.Lightbox.IsOpen() {
		return m.handleLightboxKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Reload):
		if m.service == nil || m.loading {
			return m, nil
		}
		m.loading = true
		m.status = ""
		m.err = nil
		return m, actions.LoadManifestCmd(m.service, m.loadTimeout, "manual")
	case key.Matches(msg, m.keys.Sidebar):
		m.showSidebar = !m.showSidebar
		if !m.showSidebar {
			m.focus = focusPhotos
		}
		m.err = nil
		m.status = "Sidebar: " + onOff(m.showSidebar)
		return m, m.persistPreferencesCmd()
	case key.Matches(msg, m.keys.Numbers):
		m.showNumbers = !m.showNumbers
		m.err = nil
		m.status = "Numbering: " + onOff(m.showNumbers)
		return m, m.persistPreferencesCmd()
	case key.Matches(msg, m.keys.Preview):
		m.inlinePreview = !m.inlinePreview
		m.err = nil
		m.status = "Inline preview: " + onOff(m.inlinePreview)
		return m, m.persistPreferencesCmd()
	}

	if !m.loaded || m.loadErr != nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.focus = focusLocations
		m.search.SetValue("")
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.Focus):
		if m.sidebarVisible() && m.focus == focusPhotos {
			m.focus = focusLocations
		} else {
			m.focus = focusPhotos
		}
		return m, nil
	case key.Matches(msg, m.keys.Left):
		if m.sidebarVisible() {
			m.focus = focusLocations
		}
		return m, nil
	case key.Matches(msg, m.keys.Right):
		m.focus = focusPhotos
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-state.PageStep(m.height, m.status != ""))
		return m, nil
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(state.PageStep(m.height, m.status != ""))
		return m, nil
	case key.Matches(msg, m.keys.Top):
		m.moveCursor(-len(m.projection.Groups) - len(m.projection.Photos))
		return m, nil
	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(len(m.projection.Groups) + len(m.projection.Photos))
		return m, nil
	case key.Matches(msg, m.keys.Enter):
		if m.focus == focusLocations {
			return m.selectGroupAtCursor(m.projection.Groups)
		}
		return m.openPhotoAtCursor()
	case key.Matches(msg, m.keys.Copy):
		if photo, ok := m.photoAtCursor(); ok {
			return m.copyPhotoPath(photo)
		}
		return m, nil
	case key.Matches(msg, m.keys.Open):
		if photo, ok := m.photoAtCursor(); ok {
			return m.openPhotoInViewer(photo)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleLightboxKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.photoCursor = m.gallery.ActiveIndex()
		m.gallery.CloseLightbox()
		m.detailTop = 0
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.gallery.PrevPhoto()
		m.photoCursor = m.gallery.ActiveIndex()
		m.detailTop = 0
		return m, m.ensureInlineImagePreviewCmd()
	case key.Matches(msg, m.keys.Next):
		m.gallery.NextPhoto()
		m.photoCursor = m.gallery.ActiveIndex()
		m.detailTop = 0
		return m, m.ensureInlineImagePreviewCmd()
	case key.Matches(msg, m.keys.Up):
		if m.detailTop > 0 {
			m.detailTop--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		lines := m.lightboxLines()
		maxTop := view.DetailMaxTop(len(lines), m.detailEntryBudget(lines))
		if m.detailTop < maxTop {
			m.detailTop++
		}
		return m, nil
	case key.Matches(msg, m.keys.Open):
		if photo, ok := m.gallery.CurrentPhoto(); ok {
			return m.openPhotoInViewer(photo)
		}
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		if photo, ok := m.gallery.CurrentPhoto(); ok {
			return m.copyPhotoPath(photo)
		}
		return m, nil
	case key.Matches(msg, m.keys.Preview):
		m.inlinePreview = !m.inlinePreview
		m.err = nil
		m.status = "Inline preview: " + onOff(m.inlinePreview)
		return m, tea.Batch(m.persistPreferencesCmd(), m.ensureInlineImagePreviewCmd())
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.endSearch()
		m.groupCursor = m.activeGroupIndex()
		return m, nil
	case "enter":
		groups := m.visibleGroups()
		m.endSearch()
		return m.selectGroupAtCursor(groups)
	case "up":
		m.groupCursor = state.MoveGroupCursor(m.visibleGroups(), m.groupCursor, -1)
		return m, nil
	case "down":
		m.groupCursor = state.MoveGroupCursor(m.visibleGroups(), m.groupCursor, 1)
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	groups := m.visibleGroups()
	if best := state.BestGroupMatch(groups, m.search.Value()); best >= 0 {
		m.groupCursor = best
	} else {
		m.groupCursor = state.SnapGroupCursor(groups, 0)
	}
	return m, cmd
}

func (m *Model) endSearch() {
	m.searching = false
	m.search.Blur()
	m.search.SetValue("")
}

// selectGroupAtCursor applies the location under the group cursor. groups is
// the list the cursor indexes into, which differs from the projection while a
// search narrows the chooser.
func (m Model) selectGroupAtCursor(groups []gallery.Group) (tea.Model, tea.Cmd) {
	if m.groupCursor < 0 || m.groupCursor >= len(groups) {
		return m, nil
	}
	group := groups[m.groupCursor]
	if !group.Selectable() {
		return m, nil
	}
	m.selectLocation(group.Name)
	if len(m.projection.Photos) > 0 {
		m.focus = focusPhotos
	}
	return m, nil
}

func (m *Model) selectLocation(name string) {
	m.projection = m.gallery.SelectLocation(name)
	m.groupCursor = m.activeGroupIndex()
	m.photoCursor = 0
	m.detailTop = 0
}

func (m Model) openPhotoAtCursor() (tea.Model, tea.Cmd) {
	photo, ok := m.photoAtCursor()
	if !ok {
		return m, nil
	}
	m.gallery.OpenPhoto(photo)
	m.detailTop = 0
	return m, m.ensureInlineImagePreviewCmd()
}

func (m Model) photoAtCursor() (manifest.Photo, bool) {
	if m.photoCursor < 0 || m.photoCursor >= len(m.projection.Photos) {
		return manifest.Photo{}, false
	}
	return m.projection.Photos[m.photoCursor], true
}

func (m Model) openPhotoInViewer(photo manifest.Photo) (tea.Model, tea.Cmd) {
	target, err := platform.ValidatePhotoTarget(m.resolveFn(photo.File))
	if err != nil {
		m.err = nil
		return m.setStatus(err.Error(), 4*time.Second)
	}
	return m, actions.OpenPhotoCmd(target, m.openFn, m.copyFn)
}

func (m Model) copyPhotoPath(photo manifest.Photo) (tea.Model, tea.Cmd) {
	target, err := platform.ValidatePhotoTarget(m.resolveFn(photo.File))
	if err != nil {
		m.err = nil
		return m.setStatus(err.Error(), 4*time.Second)
	}
	return m, actions.CopyPathCmd(target, m.copyFn)
}

func (m *Model) moveCursor(delta int) {
	if m.focus == focusLocations && m.sidebarVisible() {
		m.groupCursor = state.MoveGroupCursor(m.visibleGroups(), m.groupCursor, delta)
		return
	}
	m.photoCursor = state.ClampCursor(m.photoCursor+delta, len(m.projection.Photos))
}

func (m *Model) ensureInlineImagePreviewCmd() tea.Cmd {
	if !m.inlinePreview || m.renderImageFn == nil {
		return nil
	}
	photo, ok := m.gallery.CurrentPhoto()
	if !ok || strings.TrimSpace(photo.File) == "" {
		return nil
	}
	if _, ok := m.imagePreview[photo.File]; ok {
		return nil
	}
	if m.imagePreviewLoading[photo.File] {
		return nil
	}
	m.imagePreviewLoading[photo.File] = true
	delete(m.imagePreviewErr, photo.File)
	return actions.InlinePreviewCmd(photo.File, m.resolveFn(photo.File), m.contentWidth(), m.renderImageFn)
}

func (m Model) persistPreferencesCmd() tea.Cmd {
	saveFn := m.savePreferencesFn
	if saveFn == nil {
		return nil
	}
	prefs := m.Preferences()
	return actions.SavePreferencesCmd(func() error { return saveFn(prefs) })
}

func (m Model) setStatus(status string, after time.Duration) (tea.Model, tea.Cmd) {
	m.status = status
	m.statusID++
	return m, clearStatusCmd(m.statusID, after)
}

func clearStatusCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

func (m Model) View() string {
	var b strings.Builder
	if view.SupportsKittyGraphics() && !m.showingKittyPreview() {
		b.WriteString(view.ClearKittyGraphicsSequence())
	}
	b.WriteString(m.theme.Title.Render("Photo Gallery"))
	b.WriteString(" ")
	b.WriteString(m.theme.ModePill.Render(m.mode()))
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString("Help (? to close)\n\n")
		b.WriteString(strings.Join(view.HelpLines(), "\n"))
		b.WriteString("\n\n")
		b.WriteString(m.messagePanel())
		b.WriteString("\n")
		b.WriteString(m.footer())
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(view.Toolbar(m.gallery.Lightbox.IsOpen(), m.searching))
	b.WriteString("\n\n")

	switch {
	case m.loadErr != nil:
		b.WriteString("Unable to load photos.\n")
	case !m.loaded:
		b.WriteString("Loading photos...\n")
	default:
		b.WriteString(view.Header(m.projection.ActiveLabel, m.projection.CountLabel, m.theme))
		b.WriteString("\n\n")
		if m.gallery.Lightbox.IsOpen() {
			lines := m.lightboxLines()
			b.WriteString(view.RenderDetailLines(lines, m.detailTop, m.detailEntryBudget(lines)))
		} else {
			b.WriteString(m.galleryView())
		}
	}

	b.WriteString("\n")
	b.WriteString(m.messagePanel())
	b.WriteString("\n")
	b.WriteString(m.footer())
	b.WriteString("\n")
	return b.String()
}

func (m Model) galleryView() string {
	height := m.listBodyHeight()
	if !m.sidebarVisible() {
		return m.gridView(m.contentWidth(), height)
	}
	sidebarWidth := m.sidebarWidth()
	gridWidth := max(20, m.contentWidth()-sidebarWidth-3)
	style := m.theme.Sidebar
	if m.focus == focusLocations {
		style = m.theme.SidebarFocused
	}
	sidebar := style.Render(strings.TrimRight(m.sidebarView(sidebarWidth, height), "\n"))
	grid := strings.TrimRight(m.gridView(gridWidth, height), "\n")
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", grid) + "\n"
}

func (m Model) sidebarView(width, height int) string {
	var b strings.Builder
	if m.searching {
		b.WriteString(m.search.View())
		b.WriteString("\n")
		height--
	}
	groups := m.visibleGroups()
	start, end := state.CenteredWindow(len(groups), m.groupCursor, max(1, height))
	b.WriteString(view.RenderLocationList(view.LocationListInput{
		Groups:         groups,
		Start:          start,
		End:            end,
		Cursor:         m.groupCursor,
		ActiveLocation: m.projection.ActiveLocation,
		Focused:        m.focus == focusLocations,
		RenderLine: func(group gallery.Group, active, selected bool) string {
			return view.RenderLocationLine(view.LocationLineParams{
				Group:    group,
				Active:   active,
				Selected: selected,
				Width:    width,
			}, m.theme)
		},
	}))
	return b.String()
}

func (m Model) gridView(width, height int) string {
	photos := m.projection.Photos
	if len(photos) == 0 {
		return "No photos to show.\n"
	}
	start, end := state.CenteredWindow(len(photos), m.photoCursor, height)
	return view.RenderPhotoGrid(view.PhotoGridInput{
		Photos:  photos,
		Start:   start,
		End:     end,
		Cursor:  m.photoCursor,
		Focused: m.focus == focusPhotos || !m.sidebarVisible(),
		RenderLine: func(photo manifest.Photo, position int, active bool) string {
			return view.RenderPhotoLine(view.PhotoLineParams{
				Photo:       photo,
				ShowNumbers: m.showNumbers,
				Position:    position,
				Active:      active,
				Width:       width,
			}, m.theme)
		},
	})
}

func (m Model) lightboxLines() []string {
	photo, ok := m.gallery.CurrentPhoto()
	if !ok {
		return []string{"No photo selected."}
	}
	margin := 0
	if m.contentWidth() >= 100 {
		margin = 4
	}
	width := max(20, m.contentWidth()-2*margin)
	return view.LightboxLines(view.LightboxInput{
		Photo:            photo,
		Position:         m.gallery.ActiveIndex(),
		Total:            len(m.projection.Photos),
		ContentWidth:     width,
		HorizontalMargin: margin,
		Wrap:             caption.Wrap,
		Preview: view.InlineImagePreviewState{
			Enabled: m.inlinePreview && m.renderImageFn != nil,
			Loading: m.imagePreviewLoading[photo.File],
			Raw:     m.imagePreview[photo.File],
			Err:     m.imagePreviewErr[photo.File],
		},
	})
}

func (m Model) showingKittyPreview() bool {
	photo, ok := m.gallery.CurrentPhoto()
	if !ok || !m.inlinePreview {
		return false
	}
	return view.ContainsKittyGraphicsEscape(m.imagePreview[photo.File])
}

// detailEntryBudget is how many entries of lines fit the lightbox body. Scroll
// offsets and the render window are both counted in entries.
func (m Model) detailEntryBudget(lines []string) int {
	extra := lightboxRowCount(lines) - len(lines)
	return max(1, m.detailBodyHeight()-extra)
}

// lightboxRowCount counts terminal rows; a kitty image occupies several rows
// but is a single entry in lines.
func lightboxRowCount(lines []string) int {
	rows := 0
	for _, line := range lines {
		if view.ContainsKittyGraphicsEscape(line) {
			rows += view.KittyRenderedLineCount(line)
			continue
		}
		rows++
	}
	return rows
}

func (m Model) messagePanel() string {
	warning := ""
	switch {
	case m.err != nil:
		warning = m.err.Error()
	case m.loadErr != nil:
		warning = m.loadErr.Error()
	}
	return view.Message(m.loading, warning != "", m.status, warning, m.theme)
}

func (m Model) footer() string {
	source := "-"
	if m.service != nil {
		source = m.service.Source()
	}
	matches := 0
	query := ""
	if m.searching {
		query = m.search.Value()
		matches = countLocations(m.visibleGroups())
	}
	return view.Footer(source, countLocations(m.projection.Groups), len(m.gallery.Photos), m.sidebarVisible(), query, matches, m.theme)
}

func (m Model) mode() string {
	switch {
	case m.showHelp:
		return "help"
	case m.searching:
		return "search"
	case m.gallery.Lightbox.IsOpen():
		return "lightbox"
	}
	return "gallery"
}

func (m Model) visibleGroups() []gallery.Group {
	if m.searching {
		return state.FilterGroups(m.projection.Groups, m.search.Value())
	}
	return m.projection.Groups
}

func (m Model) activeGroupIndex() int {
	idx := gallery.SelectableIndex(m.projection.Groups, m.projection.ActiveLocation)
	if idx < 0 {
		return state.SnapGroupCursor(m.projection.Groups, 0)
	}
	return idx
}

func (m Model) sidebarVisible() bool {
	return m.showSidebar || m.searching
}

func (m Model) sidebarWidth() int {
	return min(32, max(16, m.contentWidth()/3))
}

func (m Model) contentWidth() int {
	if m.width > 0 {
		return m.width - 1
	}
	return 100
}

func (m Model) listBodyHeight() int {
	if m.height > 0 {
		if h := m.height - 8; h > 3 {
			return h
		}
		return 3
	}
	return 20
}

func (m Model) detailBodyHeight() int {
	if m.height > 0 {
		usedByHeader := 8
		if m.status != "" {
			usedByHeader++
		}
		if h := m.height - usedByHeader; h > 3 {
			return h
		}
	}
	return 16
}

// countLocations counts selectable rows other than "All".
func countLocations(groups []gallery.Group) int {
	n := 0
	for _, group := range groups {
		if group.Selectable() && group.Name != gallery.AllLocation {
			n++
		}
	}
	return n
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func (m *Model) ApplyPreferences(prefs Preferences) {
	m.showSidebar = prefs.ShowSidebar
	m.showNumbers = prefs.ShowNumbers
	m.inlinePreview = prefs.InlinePreview
	if !m.showSidebar {
		m.focus = focusPhotos
	}
}

func (m *Model) SetPreferencesSaver(saveFn func(Preferences) error) {
	m.savePreferencesFn = saveFn
}

func (m Model) Preferences() Preferences {
	return Preferences{
		ShowSidebar:   m.showSidebar,
		ShowNumbers:   m.showNumbers,
		InlinePreview: m.inlinePreview,
	}
}

func (m *Model) SetLoadTimeout(timeout time.Duration) {
	if timeout > 0 {
		m.loadTimeout = timeout
	}
}

// SetPhotoResolver maps a manifest file name to the path or URL used for
// previews and the system viewer.
func (m *Model) SetPhotoResolver(resolve func(string) string) {
	if resolve != nil {
		m.resolveFn = resolve
	}
}
