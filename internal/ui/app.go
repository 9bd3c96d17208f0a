package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/lrrview/internal/browse"
	"github.com/five82/lrrview/internal/logging"
	"github.com/five82/lrrview/internal/prefs"
	"github.com/five82/lrrview/internal/state"
)

// pane identifies which side of the split layout has focus.
type pane int

const (
	paneList pane = iota
	paneDetail
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	PageSize  int
	ThemeName string
	PrefsPath string
	Logger    *logging.Logger
	PollTick  time.Duration

	// SavedPageSize is the page size read from prefs. It is written back
	// unchanged unless the user picks a new size.
	SavedPageSize int
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	store     *state.Store
	prefsPath string
	pollTick  time.Duration
	logger    *logging.Logger
	keys      keyMap

	// UI state
	theme       Theme
	width       int
	height      int
	ready       bool
	focusedPane pane

	// Data state
	snapshot      state.Snapshot
	pageSize      int
	savedPageSize int // page size persisted to prefs

	// Browsing state, built once the dataset is loaded
	nav         *browse.Navigator
	detail      *browse.Detail
	cursor      int // row within the visible page
	activeIndex int // absolute index of the shown sequence, -1 for none

	// Detail pane
	detailViewport viewport.Model
	lastRendered   uint64
	renderedFor    string // theme and width the viewport content was built for

	// Footer and overlays
	pager    paginator.Model
	help     help.Model
	showHelp bool
	prompt   promptState
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = DefaultUIInterval
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = browse.DefaultPageSize
	}

	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.PerPage = pageSize

	return Model{
		store:         opts.Store,
		prefsPath:     prefsPath,
		pollTick:      pollTick,
		logger:        logger.With("component", "ui"),
		keys:          DefaultKeyMap(),
		theme:         GetTheme(themeName),
		pageSize:      pageSize,
		savedPageSize: opts.SavedPageSize,
		activeIndex:   -1,
		pager:         pager,
		help:          help.New(),
		prompt:        newPromptState(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
	}
	// Fetch snapshot immediately on start
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initDetailViewport()
		}
		m.ready = true
		m.updateDetailViewport()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		if m.snapshot.Loaded && m.nav == nil {
			m.buildBrowser()
		}
		return m, nil

	case tea.MouseMsg:
		if m.focusedPane == paneDetail {
			var cmd tea.Cmd
			m.detailViewport, cmd = m.detailViewport.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	// Cursor blink and other prompt internals
	if m.prompt.active() {
		var cmd tea.Cmd
		m.prompt.input, cmd = m.prompt.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	// Show help overlay if active
	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// buildBrowser wires the navigator to the detail renderer. It runs once, on
// the first loaded snapshot.
func (m *Model) buildBrowser() {
	m.detail = browse.NewDetail()
	m.nav = browse.NewNavigator(m.snapshot.Records, m.pageSize, m.detail.OnSelectSeq)

	logger := m.logger
	m.nav.Subscribe(func(ps browse.PageState) {
		logger.Debug("page changed", "index", ps.Index, "size", ps.Size, "rows", len(ps.Records))
	})
	m.detail.Subscribe(func(ds browse.DetailState) {
		logger.Debug("sequence selected", "seq_id", ds.Selected.ID, "motifs", len(ds.MotifRows), "version", ds.Version)
	})

	m.cursor = 0
	m.syncPager()
	m.logger.Info("browser ready", "records", m.nav.Total(), "pages", m.nav.LastPage()+1, "page_size", m.nav.PageSize())
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Handle help overlay
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	// Prompts capture all other keys
	if m.prompt.active() {
		return m.handlePromptKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		m.updateDetailViewport()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		if m.focusedPane == paneList {
			m.focusedPane = paneDetail
		} else {
			m.focusedPane = paneList
		}
		m.updateDetailViewport()
		return m, nil
	}

	if m.nav == nil {
		return m, nil
	}

	// Paging works from either pane
	switch {
	case key.Matches(msg, m.keys.PrevPage):
		m.nav.PrevPage()
		m.afterPageChange()
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		m.nav.NextPage()
		m.afterPageChange()
		return m, nil

	case key.Matches(msg, m.keys.GoTo):
		cmd := m.openPrompt(promptGoTo)
		return m, cmd

	case key.Matches(msg, m.keys.PageSize):
		cmd := m.openPrompt(promptPageSize)
		return m, cmd
	}

	if m.focusedPane == paneDetail {
		var cmd tea.Cmd
		m.detailViewport, cmd = m.detailViewport.Update(msg)
		return m, cmd
	}
	return m.handleListKey(msg)
}

// handleListKey processes keyboard input for the sequence list.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := len(m.nav.Page())
	if rows == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		if m.cursor < rows-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Select):
		if m.nav.SelectRow(m.cursor) {
			m.activeIndex = m.nav.PageStart() + m.cursor
			m.updateDetailViewport()
		}
	}

	return m, nil
}

// afterPageChange resets the cursor and syncs the page dots.
func (m *Model) afterPageChange() {
	m.cursor = 0
	m.syncPager()
}

// syncPager mirrors the navigator's window into the paginator.
func (m *Model) syncPager() {
	if m.nav == nil {
		return
	}
	m.pager.PerPage = m.nav.PageSize()
	m.pager.TotalPages = m.nav.LastPage() + 1
	if m.pager.TotalPages < 1 {
		m.pager.TotalPages = 1
	}
	m.pager.Page = m.nav.PageIndex()
}

// savePrefs persists the theme and the saved page size. A size that came from
// flags or config is never written. Failures are logged only.
func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, PageSize: m.savedPageSize}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs failed", "error", err, "path", m.prefsPath)
	}
}

// handleTick keeps polling the store until the load settles.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.store == nil || !m.snapshot.Pending() {
		return m, nil
	}
	return m, tea.Batch(fetchSnapshotCmd(m.store), tickCmd(m.pollTick))
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.renderBrowser())
	b.WriteString("\n")

	b.WriteString(m.renderFooter())

	return b.String()
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	popts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if opts.Context != nil {
		popts = append(popts, tea.WithContext(opts.Context))
	}
	p := tea.NewProgram(m, popts...)
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && opts.Context != nil && opts.Context.Err() != nil {
		// Interrupted by signal
		return nil
	}
	return err
}
