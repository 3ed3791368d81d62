package ui

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/liftbook/internal/catalog"
	"github.com/five82/liftbook/internal/prefs"
	"github.com/five82/liftbook/internal/program"
	"github.com/five82/liftbook/internal/source"
	"github.com/five82/liftbook/internal/state"
	"github.com/five82/liftbook/internal/view"
)

// Options configures the UI.
type Options struct {
	Context context.Context
	Catalog *catalog.Catalog
	Fetcher source.Fetcher
	Store   *state.Store
	Logger  *slog.Logger

	// Program opens a single program directly and disables the catalog.
	Program string

	FetchTimeout time.Duration
	ThemeName    string
	PrefsPath    string
	LastProgram  string
	LogPath      string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx          context.Context
	catalog      *catalog.Catalog
	fetcher      source.Fetcher
	store        *state.Store
	log          *slog.Logger
	prefsPath    string
	logPath      string
	fetchTimeout time.Duration
	keys         keyMap

	// UI state
	theme  Theme
	width  int
	height int
	ready  bool

	// Catalog state
	single         bool
	singleID       string
	catalogLoading bool
	snapshot       state.Snapshot
	cursor         int
	lastProgram    string

	// Program state
	view        view.State
	startup     *view.Ticket
	dayViewport viewport.Model
	notice      string

	// Overlays
	showHelp bool
	showLogs bool
	logLines []string
	logErr   error
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	m := Model{
		ctx:          ctx,
		catalog:      opts.Catalog,
		fetcher:      opts.Fetcher,
		store:        store,
		log:          log,
		prefsPath:    prefsPath,
		logPath:      opts.LogPath,
		fetchTimeout: opts.FetchTimeout,
		keys:         DefaultKeyMap(),
		theme:        GetTheme(opts.ThemeName),
		lastProgram:  opts.LastProgram,
		dayViewport:  viewport.New(0, 0),
	}

	id := strings.TrimSpace(opts.Program)
	if id == "" && m.catalog != nil {
		id, _ = m.catalog.Single()
	}
	if id != "" {
		m.single = true
		m.singleID = id
		t := m.view.BeginLoad(id)
		m.startup = &t
	} else {
		m.catalogLoading = true
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.startup != nil {
		return m.loadProgramCmd(*m.startup)
	}
	return m.loadCatalogCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.refreshDayViewport(false)
		return m, nil

	case snapshotMsg:
		m.catalogLoading = false
		m.snapshot = state.Snapshot(msg)
		m.placeCursor()
		return m, nil

	case programLoadedMsg:
		return m.handleProgramLoaded(msg)

	case logTailMsg:
		m.logLines, m.logErr = msg.lines, msg.err
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showLogs {
		return m.renderLogs()
	}
	return m.renderMain()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes an overlay.
	if m.showHelp || m.showLogs {
		m.showHelp, m.showLogs = false, false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.ShowLogs):
		m.showLogs = true
		return m, tailLogCmd(m.logPath)
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		m.refreshDayViewport(false)
		return m, nil
	}

	if m.view.Document() != nil {
		return m.handleProgramKey(msg)
	}
	return m.handleCatalogKey(msg)
}

func (m Model) handleCatalogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.single {
		// The only action without a program is retrying it.
		if key.Matches(msg, m.keys.Reload) && m.view.Phase() == view.PhaseNoProgram {
			return m.openProgram(m.singleID)
		}
		return m, nil
	}

	count := len(m.snapshot.Summaries)
	switch {
	case key.Matches(msg, m.keys.Down):
		if m.cursor < count-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Open):
		if count > 0 {
			return m.openProgram(m.snapshot.Summaries[m.cursor].ID)
		}
	case key.Matches(msg, m.keys.Reload):
		if !m.catalogLoading {
			m.catalogLoading = true
			return m, m.loadCatalogCmd()
		}
	}
	return m, nil
}

func (m Model) handleProgramKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var err error
	switch {
	case key.Matches(msg, m.keys.Back):
		if m.single {
			return m, nil
		}
		m.view.ReturnToCatalog()
		m.notice = ""
		return m, nil
	case key.Matches(msg, m.keys.NextDay):
		err = m.view.NextDay()
	case key.Matches(msg, m.keys.PrevDay):
		err = m.view.PrevDay()
	case key.Matches(msg, m.keys.JumpDay):
		err = m.view.SelectDayIndex(int(msg.String()[0] - '1'))
	case key.Matches(msg, m.keys.Open), key.Matches(msg, m.keys.Reload):
		return m, nil
	default:
		var cmd tea.Cmd
		m.dayViewport, cmd = m.dayViewport.Update(msg)
		return m, cmd
	}

	if err != nil {
		m.log.Debug("day selection ignored", "key", msg.String(), "error", err)
		return m, nil
	}
	m.refreshDayViewport(true)
	return m, nil
}

// openProgram starts loading id. A load already in flight is superseded.
func (m Model) openProgram(id string) (tea.Model, tea.Cmd) {
	t := m.view.BeginLoad(id)
	m.notice = ""
	return m, m.loadProgramCmd(t)
}

func (m Model) handleProgramLoaded(msg programLoadedMsg) (tea.Model, tea.Cmd) {
	err := m.view.Complete(msg.ticket, msg.doc, msg.err)
	switch {
	case errors.Is(err, view.ErrStaleLoad):
		m.log.Debug("stale program load dropped", "program", msg.ticket.ProgramID)
		return m, nil
	case err != nil:
		m.log.Warn("program load failed", "program", msg.ticket.ProgramID, "error", err)
		m.notice = loadFailureNotice(msg.ticket.ProgramID, err)
		return m, nil
	}

	m.log.Info("program opened", "program", msg.ticket.ProgramID, "days", len(msg.doc.Days))
	m.notice = ""
	if !m.single {
		m.lastProgram = msg.ticket.ProgramID
		m.savePrefs()
	}
	m.refreshDayViewport(true)
	return m, nil
}

func loadFailureNotice(id string, err error) string {
	if source.IsParse(err) || errors.Is(err, program.ErrInvalid) {
		return "Program " + id + " is malformed"
	}
	return "Could not load " + id
}

// placeCursor keeps the cursor in range, starting on the last opened program.
func (m *Model) placeCursor() {
	if m.lastProgram != "" {
		for i, sum := range m.snapshot.Summaries {
			if sum.ID == m.lastProgram {
				m.cursor = i
				return
			}
		}
	}
	if m.cursor >= len(m.snapshot.Summaries) {
		m.cursor = max(0, len(m.snapshot.Summaries)-1)
	}
}

func (m Model) savePrefs() {
	p := prefs.Prefs{Theme: m.theme.Name, LastProgram: m.lastProgram}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.log.Warn("save preferences", "error", err)
	}
}

// Messages

type snapshotMsg state.Snapshot

type programLoadedMsg struct {
	ticket view.Ticket
	doc    *program.Document
	err    error
}

type logTailMsg struct {
	lines []string
	err   error
}

// Commands

func (m Model) loadCatalogCmd() tea.Cmd {
	ctx, cat, store := m.ctx, m.catalog, m.store
	return func() tea.Msg {
		if cat == nil {
			return snapshotMsg(store.Snapshot())
		}
		ids := cat.List()
		store.Update(cat.LoadSummaries(ctx, ids), len(ids))
		return snapshotMsg(store.Snapshot())
	}
}

func (m Model) loadProgramCmd(t view.Ticket) tea.Cmd {
	ctx, fetcher, timeout := m.ctx, m.fetcher, m.fetchTimeout
	return func() tea.Msg {
		if fetcher == nil {
			return programLoadedMsg{ticket: t, err: errors.New("no program source configured")}
		}
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		doc, err := fetcher.FetchProgram(ctx, t.ProgramID)
		return programLoadedMsg{ticket: t, doc: doc, err: err}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
