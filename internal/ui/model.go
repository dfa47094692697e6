package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"mirrorpick/internal/catalog"
	"mirrorpick/internal/config"
	"mirrorpick/internal/domain"
	"mirrorpick/internal/engine"
	"mirrorpick/internal/eventbus"
	"mirrorpick/internal/manifest"
	"mirrorpick/internal/platform"
	"mirrorpick/internal/ui/input"
	inputtypes "mirrorpick/internal/ui/input/types"
	"mirrorpick/internal/ui/views"
)

const statusTimeout = 3 * time.Second

// rows used by title, tabs, header, scroll indicators, status and help
const tableChrome = 14

// CatalogLoader loads and merges the catalog sources
type CatalogLoader interface {
	Load(ctx context.Context, sources ...catalog.Source) ([]domain.CatalogEntry, error)
}

// Options wires the model's collaborators
type Options struct {
	Bus       eventbus.EventBus
	Config    *config.Config
	Profile   *platform.Profile
	Loader    CatalogLoader
	Sources   []catalog.Source
	Registry  *manifest.Registry
	Clipboard Clipboard
	Pager     Pager // defaults to ov
}

// Model represents the UI state
type Model struct {
	config    *config.Config
	profile   *platform.Profile
	loader    CatalogLoader
	sources   []catalog.Source
	engine    *engine.Engine
	registry  *manifest.Registry
	builder   *manifest.Builder
	clipboard Clipboard
	pager     Pager
	pagerOps  *PagerOps

	inputHandler *input.Handler
	renderer     *views.Renderer
	help         *HelpRenderer

	width  int
	height int

	// table cursor and viewport over engine.View()
	cursor int
	offset int

	loading     bool
	loadStarted bool // the catalog is loaded once per session
	inPagerMode bool

	status    string
	statusErr bool
	statusAt  time.Time

	manifest       *manifest.Manifest // last confirmed manifest
	manifestCursor int

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(opts Options) *Model {
	if opts.Bus == nil {
		opts.Bus = eventbus.Null{}
	}
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	if opts.Profile == nil {
		opts.Profile = platform.Windows()
	}
	if opts.Registry == nil {
		opts.Registry = manifest.NewRegistry()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = SystemClipboard()
	}

	m := &Model{
		config:       opts.Config,
		profile:      opts.Profile,
		loader:       opts.Loader,
		sources:      opts.Sources,
		registry:     opts.Registry,
		clipboard:    opts.Clipboard,
		pager:        opts.Pager,
		inputHandler: input.New(),
		renderer:     views.NewRenderer(),
		help:         NewHelpRenderer(opts.Profile.Title),
	}

	if m.pager == nil {
		m.pagerOps = NewPagerOps()
		m.pager = m.pagerOps
	}

	m.engine = engine.New(engine.Options{
		PresetCategory:  opts.Profile.PresetCategory,
		PresetMembers:   opts.Profile.PresetMembers,
		DefaultCategory: opts.Profile.DefaultCategory,
		Bus:             opts.Bus,
	})
	m.builder = manifest.NewBuilder(opts.Registry, opts.Profile.PresetCategory)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	if m.pagerOps != nil {
		m.pagerOps.SetProgram(p)
	}
}

// Engine exposes the selection engine
func (m *Model) Engine() *engine.Engine {
	return m.engine
}

// Init starts loading the catalog
func (m *Model) Init() tea.Cmd {
	return m.loadCatalog()
}

func (m *Model) loadCatalog() tea.Cmd {
	if m.loader == nil || m.loadStarted {
		return nil
	}
	m.loadStarted = true
	m.loading = true
	loader, sources := m.loader, m.sources
	return func() tea.Msg {
		entries, err := loader.Load(context.Background(), sources...)
		if err != nil {
			return catalogFailedMsg{err: err}
		}
		return catalogLoadedMsg{entries: entries}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorVisible()
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		actions, cmd := m.inputHandler.HandleKey(msg, m)
		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, m.processAction(action))
		}
		return m, tea.Batch(cmds...)
	}

	return m.handleNonKeyboardMsg(msg)
}

func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogLoadedMsg:
		m.loading = false
		m.engine.SetCatalog(msg.entries)
		m.resetCursor()
		return m, nil

	case catalogFailedMsg:
		m.loading = false
		m.engine.SetCatalog(nil)
		m.resetCursor()
		return m, m.setStatus(fmt.Sprintf("Failed to load catalog: %v", msg.err), true)

	case pagerMsg:
		if msg.err != nil {
			log.Printf("%s pager failed: %v", msg.what, msg.err)
			return m, m.setStatus(fmt.Sprintf("Could not open %s", msg.what), true)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		if msg.at.Equal(m.statusAt) {
			m.status = ""
			m.statusErr = false
		}
		return m, nil

	default:
		return m, m.inputHandler.Update(msg)
	}
}

// processAction executes one action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.SlideAction:
		if a.Delta < 0 {
			m.engine.Prev()
		} else {
			m.engine.Next()
		}

	case inputtypes.CategoryAction:
		m.switchCategory(a)

	case inputtypes.SelectAction:
		if m.engine.Mode() == engine.ModeSlider {
			m.engine.ToggleCurrent()
			break
		}
		view := m.engine.View()
		if m.cursor < len(view) {
			entry := view[m.cursor]
			m.engine.Toggle(entry.ID, !entry.Selected)
		}

	case inputtypes.ToggleAllAction:
		m.engine.ToggleAll()

	case inputtypes.UpdateTextAction:
		m.setQuery(a.Text)

	case inputtypes.SubmitTextAction:
		m.setQuery(a.Text)

	case inputtypes.CancelTextAction, inputtypes.ClearSearchAction:
		m.setQuery("")

	case inputtypes.ConfirmAction:
		return m.confirm()

	case inputtypes.ShowManifestAction:
		if m.manifest == nil {
			return m.setStatus("Nothing confirmed yet", false)
		}
		m.openManifest()

	case inputtypes.ManifestNavigateAction:
		if m.manifest != nil {
			m.manifestCursor = clamp(m.manifestCursor+a.Delta, 0, len(m.manifest.Items)-1)
		}

	case inputtypes.ShowInstructionsAction:
		return m.showInstructions()

	case inputtypes.ViewManifestAction:
		return m.viewManifest()

	case inputtypes.CopyURLsAction:
		return m.copyURLs()

	case inputtypes.CopyPasswordAction:
		return m.copyPassword()

	case inputtypes.CloseManifestAction:
		m.manifestCursor = 0

	case inputtypes.ToggleHelpAction:
		return m.showInPager("help", "", m.help.RenderHelpContent())

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

func (m *Model) navigate(direction string) {
	if m.engine.Mode() == engine.ModeSlider {
		return
	}
	last := len(m.engine.View()) - 1
	page := m.pageSize()
	if page <= 0 {
		page = 10
	}
	switch direction {
	case "up":
		m.cursor--
	case "down":
		m.cursor++
	case "pageup":
		m.cursor -= page
	case "pagedown":
		m.cursor += page
	case "home":
		m.cursor = 0
	case "end":
		m.cursor = last
	}
	m.cursor = clamp(m.cursor, 0, last)
	m.ensureCursorVisible()
}

func (m *Model) switchCategory(a inputtypes.CategoryAction) {
	tabs := m.profile.Categories
	if len(tabs) == 0 {
		return
	}
	idx := a.Index
	if idx < 0 {
		current := 0
		for i, tab := range tabs {
			if tab.Tag == m.engine.ViewState().Category {
				current = i
				break
			}
		}
		idx = ((current+a.Delta)%len(tabs) + len(tabs)) % len(tabs)
	}
	if idx >= len(tabs) {
		return
	}
	m.engine.SetCategory(tabs[idx].Tag)
	m.resetCursor()
}

func (m *Model) setQuery(q string) {
	if strings.TrimSpace(q) == m.engine.ViewState().SearchQuery {
		return
	}
	m.engine.SetQuery(q)
	m.resetCursor()
}

func (m *Model) confirm() tea.Cmd {
	built, err := m.engine.Confirm(m.builder)
	if errors.Is(err, engine.ErrNothingSelected) {
		return m.setStatus("Select at least one entry", true)
	}
	if err != nil {
		log.Printf("Failed to build manifest: %v", err)
		return m.setStatus(fmt.Sprintf("Failed to build manifest: %v", err), true)
	}
	m.manifest = built
	m.openManifest()
	return nil
}

func (m *Model) openManifest() {
	m.manifestCursor = 0
	m.inputHandler.ChangeMode(inputtypes.ModeManifest, m)
}

func (m *Model) showInstructions() tea.Cmd {
	if m.manifest == nil || len(m.manifest.Items) == 0 {
		return nil
	}
	item := m.manifest.Items[m.manifestCursor]
	if item.InstructionKey == "" {
		return m.setStatus(fmt.Sprintf("No install guide for %s", item.Filename), false)
	}
	inst, ok := m.registry.Lookup(item.InstructionKey)
	if !ok {
		return nil
	}
	return m.showInPager("install guide", inst.Title, inst.Body)
}

func (m *Model) viewManifest() tea.Cmd {
	if m.manifest == nil {
		return nil
	}
	var b strings.Builder
	if err := m.manifest.Render(&b); err != nil {
		return m.setStatus(fmt.Sprintf("Failed to render manifest: %v", err), true)
	}
	return m.showInPager("manifest", "Download manifest", b.String())
}

func (m *Model) copyURLs() tea.Cmd {
	if m.manifest == nil {
		return nil
	}
	urls := m.manifest.URLs()
	if len(urls) == 0 {
		return m.setStatus("No mirror links to copy", true)
	}
	if err := m.clipboard.WriteAll(strings.Join(urls, "\n")); err != nil {
		log.Printf("Clipboard write failed: %v", err)
		return m.setStatus(fmt.Sprintf("Copy failed: %v", err), true)
	}
	return m.setStatus(fmt.Sprintf("Copied %d mirror links", len(urls)), false)
}

func (m *Model) copyPassword() tea.Cmd {
	password := m.profile.ArchivePassword
	if password == "" {
		return m.setStatus("No archive password configured", true)
	}
	if err := m.clipboard.WriteAll(password); err != nil {
		log.Printf("Clipboard write failed: %v", err)
		return m.setStatus(fmt.Sprintf("Copy failed: %v", err), true)
	}
	return m.setStatus("Archive password copied", false)
}

// showInPager returns a command that shows content in the pager, pausing
// rendering while it owns the terminal
func (m *Model) showInPager(what, title, content string) tea.Cmd {
	pager, program := m.pager, m.program
	return func() tea.Msg {
		if program != nil {
			program.Send(pauseRenderingMsg{})
		}
		err := pager.Show(title, content)
		if program != nil {
			program.Send(resumeRenderingMsg{})
		}
		return pagerMsg{what: what, err: err}
	}
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	at := time.Now()
	m.status = text
	m.statusErr = isErr
	m.statusAt = at
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{at: at}
	})
}

func (m *Model) resetCursor() {
	m.cursor = 0
	m.offset = 0
}

func (m *Model) pageSize() int {
	if m.height == 0 {
		return 0
	}
	size := m.height - tableChrome
	if size < 3 {
		size = 3
	}
	return size
}

func (m *Model) ensureCursorVisible() {
	page := m.pageSize()
	if page == 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+page {
		m.offset = m.cursor - page + 1
	}
}

// Context implementation for the input handler

func (m *Model) InSlider() bool      { return m.engine.Mode() == engine.ModeSlider }
func (m *Model) VisibleCount() int   { return len(m.engine.View()) }
func (m *Model) SelectedCount() int  { return m.engine.SelectedCount() }
func (m *Model) CategoryCount() int  { return len(m.profile.Categories) }
func (m *Model) SearchQuery() string { return m.engine.ViewState().SearchQuery }

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.buildViewState())
}

func (m *Model) buildViewState() views.ViewState {
	vs := m.engine.ViewState()
	state := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Title:         m.profile.Title,
		SearchQuery:   vs.SearchQuery,
		Loading:       m.loading,
		Cursor:        m.cursor,
		Offset:        m.offset,
		PageSize:      m.pageSize(),
		OSColumn:      m.profile.OSColumn,
		ShowSize:      m.config.UI.ShowSize,
		ShowPreview:   m.config.UI.ShowPreviewKind,
		SelectedCount: m.engine.SelectedCount(),
		StatusMessage: m.status,
		StatusIsError: m.statusErr,
	}

	for _, tab := range m.profile.Categories {
		state.Tabs = append(state.Tabs, views.Tab{Label: tab.Label, Active: tab.Tag == vs.Category})
	}

	if m.inputHandler.CurrentMode() == inputtypes.ModeSearch {
		state.SearchActive = true
		if ti := m.inputHandler.TextInput(); ti != nil {
			state.SearchInput = ti.View()
		}
	}

	total, unknown := m.engine.SelectedSize()
	if total > 0 {
		state.TotalSize = humanize.Bytes(total)
	}
	state.UnknownSizes = unknown

	view := m.engine.View()
	if m.engine.Mode() == engine.ModeSlider {
		state.Slider = true
		if entry := m.engine.Current(); entry != nil {
			state.Card = m.card(entry, len(view))
		}
	} else {
		tri := m.engine.SelectAllState()
		state.SelectAll = views.SelectAll{Checked: tri.Checked, Indeterminate: tri.Indeterminate}
		state.Rows = make([]views.Row, 0, len(view))
		for _, entry := range view {
			state.Rows = append(state.Rows, views.Row{
				Name:     entry.Filename,
				OS:       m.profile.OSDisplay(entry.OSMin),
				Size:     entry.Size,
				FileType: entry.FileType(),
				Selected: entry.Selected,
			})
		}
	}

	if m.inputHandler.CurrentMode() == inputtypes.ModeManifest && m.manifest != nil {
		state.Manifest = m.manifestView()
	}
	return state
}

func (m *Model) card(entry *domain.CatalogEntry, total int) *views.Card {
	preview := ""
	if entry.Preview != "" {
		preview = "image"
		if entry.PreviewIsVideo() {
			preview = "video"
		}
	}
	position := m.engine.ViewState().SlideIndex
	return &views.Card{
		Name:     entry.Filename,
		Category: string(entry.Category),
		OS:       m.profile.PresetOSDisplay(entry.OSMin),
		FileType: entry.FileType(),
		Size:     entry.Size,
		Preview:  preview,
		Selected: entry.Selected,
		Position: position + 1,
		Total:    total,
		HasPrev:  m.engine.HasPrev(),
		HasNext:  m.engine.HasNext(),
	}
}

func (m *Model) manifestView() *views.ManifestView {
	mv := &views.ManifestView{
		Cursor:       m.manifestCursor,
		Password:     m.profile.ArchivePassword,
		PasswordHint: m.config.UI.CopyPasswordHint,
	}
	for _, item := range m.manifest.Items {
		row := views.ManifestRow{
			Name:     item.Filename,
			Size:     item.Size,
			HasGuide: item.InstructionKey != "",
		}
		for _, mirror := range item.Mirrors {
			row.Mirrors = append(row.Mirrors, fmt.Sprintf("Mirror %d: %s", mirror.Index, mirror.URL))
		}
		mv.Rows = append(mv.Rows, row)
	}
	return mv
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
