package ui

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/carlot/internal/carapi"
	"github.com/five82/carlot/internal/state"
)

// InitialLoad selects what the UI loads on start.
type InitialLoad int

const (
	LoadNothing InitialLoad = iota
	LoadSimulated
	LoadRemote
)

// ThemeSaver persists the chosen theme name. *prefs.Store implements it.
type ThemeSaver interface {
	SaveTheme(name string) error
}

// Options configures the UI.
type Options struct {
	Context     context.Context
	Store       *state.Store
	Fetcher     carapi.CarFetcher // nil disables remote loads
	Query       carapi.Query
	ThemeName   string
	ThemeSaver  ThemeSaver
	InitialLoad InitialLoad
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	store      *state.Store
	fetcher    carapi.CarFetcher
	query      carapi.Query
	themeSaver ThemeSaver
	initial    InitialLoad

	// UI state
	theme       Theme
	keys        keyMap
	help        help.Model
	spinner     spinner.Model
	table       table.Model
	form        filterForm
	width       int
	height      int
	ready       bool
	columnIdx   int
	showHelp    bool
	showFilters bool
	showDetail  bool

	// Data state
	snapshot state.Snapshot
	pending  int    // loads started by the UI and not yet finished
	source   string // "api" or "simulated" once something loaded
	notice   string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	store := opts.Store
	if store == nil {
		store = state.NewStore(nil)
	}

	theme := GetTheme(opts.ThemeName)

	tbl := table.New(table.WithFocused(true))
	tbl.SetStyles(theme.TableStyles())

	m := Model{
		ctx:        ctx,
		store:      store,
		fetcher:    opts.Fetcher,
		query:      opts.Query,
		themeSaver: opts.ThemeSaver,
		initial:    opts.InitialLoad,
		theme:      theme,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot)),
		table:      tbl,
		form:       newFilterForm(),
	}
	if m.initial == LoadRemote && m.fetcher != nil {
		m.pending = 1
	}
	m.sync()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	switch m.initial {
	case LoadSimulated:
		return loadSimulatedCmd(m.store)
	case LoadRemote:
		if m.fetcher != nil {
			return tea.Batch(loadCmd(m.ctx, m.store, m.fetcher, m.query), m.spinner.Tick)
		}
	}
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.sync()
		return m, nil

	case loadDoneMsg:
		if m.pending > 0 {
			m.pending--
		}
		switch {
		case errors.Is(msg.err, state.ErrNoFetcher):
			m.notice = "No API client configured; press s for simulated data"
		case msg.err == nil:
			m.source = msg.source
			m.table.SetCursor(0)
		}
		m.sync()
		return m, nil

	case spinner.TickMsg:
		m.sync()
		if m.pending == 0 && !m.snapshot.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
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
	if m.showFilters {
		return m.renderFilterForm()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.showFilters {
		return m.handleFilterFormKey(msg)
	}

	m.notice = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.LoadRemote):
		return m, m.startRemoteLoad()

	case key.Matches(msg, m.keys.LoadSimulated):
		return m, loadSimulatedCmd(m.store)

	case key.Matches(msg, m.keys.Up):
		m.table.MoveUp(1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.table.MoveDown(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevColumn):
		m.moveColumn(-1)
		return m, nil

	case key.Matches(msg, m.keys.NextColumn):
		m.moveColumn(1)
		return m, nil

	case key.Matches(msg, m.keys.SortColumn):
		m.sortByFocusedColumn()
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		m.turnPage(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		m.turnPage(-1)
		return m, nil

	case key.Matches(msg, m.keys.Detail):
		m.showDetail = !m.showDetail
		m.sync()
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.form.open(m.snapshot.Filters)
		m.showFilters = true
		return m, nil

	case key.Matches(msg, m.keys.ClearFilters):
		m.store.ClearFilters()
		m.table.SetCursor(0)
		m.sync()
		return m, nil
	}

	return m, nil
}

func (m *Model) startRemoteLoad() tea.Cmd {
	if m.fetcher == nil {
		m.notice = "No API client configured; press s for simulated data"
		return nil
	}
	m.pending++
	cmds := []tea.Cmd{loadCmd(m.ctx, m.store, m.fetcher, m.query)}
	if m.pending == 1 {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.table.SetStyles(m.theme.TableStyles())
	if m.themeSaver != nil {
		if err := m.themeSaver.SaveTheme(m.theme.Name); err != nil {
			log.Printf("save theme: %v", err)
		}
	}
}

func (m *Model) moveColumn(delta int) {
	cols := visibleColumns(m.width)
	m.columnIdx = (m.columnIdx + delta + len(cols)) % len(cols)
	m.sync()
}

func (m *Model) sortByFocusedColumn() {
	cols := visibleColumns(m.width)
	if m.columnIdx >= len(cols) {
		return
	}
	if err := m.store.SetSort(cols[m.columnIdx].id); err != nil {
		log.Printf("sort: %v", err)
		return
	}
	m.table.SetCursor(0)
	m.sync()
}

func (m *Model) turnPage(delta int) {
	if m.store.SetPage(m.snapshot.CurrentPage + delta) {
		m.table.SetCursor(0)
	}
	m.sync()
}

// sync pulls a fresh snapshot from the store and rebuilds the table.
func (m *Model) sync() {
	m.snapshot = m.store.Snapshot()

	cols := visibleColumns(m.width)
	if m.columnIdx >= len(cols) {
		m.columnIdx = len(cols) - 1
	}

	// Rows must shrink before columns do or the table indexes past a row.
	m.table.SetRows(nil)
	m.table.SetColumns(tableColumns(cols, m.columnIdx, m.snapshot.Sort))
	m.table.SetRows(tableRows(cols, m.snapshot.PaginatedVehicles))
	if m.table.Cursor() >= len(m.snapshot.PaginatedVehicles) {
		m.table.SetCursor(max(len(m.snapshot.PaginatedVehicles)-1, 0))
	}

	if m.width > 0 {
		m.table.SetWidth(m.tableWidth())
	}
	if m.height > 0 {
		m.table.SetHeight(m.tableHeight())
	}
}

func (m Model) detailBeside() bool {
	return m.showDetail && m.width >= LayoutDetailWidth
}

func (m Model) tableWidth() int {
	if m.detailBeside() {
		return m.width * 3 / 5
	}
	return m.width
}

func (m Model) tableHeight() int {
	h := m.height - chromeRows
	if m.showDetail && !m.detailBeside() {
		h -= detailRows
	}
	return max(h, 3)
}

// detailRows is the height of the detail pane when stacked under the table.
const detailRows = 16

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())
	b.WriteString("\n")

	body := m.table.View()
	if m.snapshot.FilteredCount == 0 {
		body = m.renderEmpty()
	}
	if m.showDetail {
		if m.detailBeside() {
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.renderDetail(m.width-m.tableWidth()))
		} else {
			body = lipgloss.JoinVertical(lipgloss.Left, body, m.renderDetail(m.width))
		}
	}
	b.WriteString(body)
	b.WriteString("\n")

	bg := NewBgStyle(m.theme.Surface)
	b.WriteString(bg.FillLine(m.help.View(m.keys), m.width))

	return b.String()
}

func (m Model) renderEmpty() string {
	styles := m.theme.Styles()
	msg := "No vehicles loaded. Press r to load from the API or s for simulated data."
	switch {
	case m.snapshot.Loading || m.pending > 0:
		msg = "Loading vehicles..."
	case !m.snapshot.FilterErrors.Empty():
		msg = "Fix the filter ranges to see results."
	case len(m.snapshot.Vehicles) > 0:
		msg = "No vehicles match the current filters. Press c to clear them."
	}
	return lipgloss.NewStyle().
		Width(m.tableWidth()).
		Height(m.tableHeight()).
		Align(lipgloss.Center, lipgloss.Center).
		Render(styles.MutedText.Render(msg))
}

// Messages

type loadDoneMsg struct {
	source string
	err    error
}

// Commands

func loadCmd(ctx context.Context, store *state.Store, fetcher carapi.CarFetcher, query carapi.Query) tea.Cmd {
	return func() tea.Msg {
		return loadDoneMsg{source: "api", err: store.Load(ctx, fetcher, query)}
	}
}

func loadSimulatedCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		store.LoadSimulated()
		return loadDoneMsg{source: "simulated"}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	opts.Context = ctx

	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
