package ui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/carlot/internal/carapi"
	"github.com/five82/carlot/internal/state"
)

type stubFetcher struct {
	vehicles []carapi.Vehicle
	err      error
	calls    int
}

func (f *stubFetcher) FetchCars(context.Context, carapi.Query) ([]carapi.Vehicle, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.vehicles, nil
}

type recordingSaver struct {
	saved []string
}

func (r *recordingSaver) SaveTheme(name string) error {
	r.saved = append(r.saved, name)
	return nil
}

func numberedVehicles(n int) []carapi.Vehicle {
	out := make([]carapi.Vehicle, n)
	for i := range out {
		out[i] = carapi.Vehicle{Make: "make", Model: "model", Year: 2000 + i, Transmission: "a"}
	}
	return out
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msg to the model without running the returned command.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// sendAndLoad feeds a key that starts a load and delivers its result.
func sendAndLoad(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	m, cmd := send(t, m, msg)
	return drainLoads(t, m, cmd)
}

// drainLoads executes a load command and delivers every loadDoneMsg it
// produces. Spinner ticks are dropped so tests never sleep.
func drainLoads(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			m = drainLoads(t, m, c)
		}
	case loadDoneMsg:
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.Store == nil {
		opts.Store = state.NewStore(state.NewMemoryStorage())
	}
	m := New(opts)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 40})
	m = next.(Model)
	return drainLoads(t, m, m.Init())
}

func TestInitLoadsSimulatedDataset(t *testing.T) {
	m := newTestModel(t, Options{InitialLoad: LoadSimulated})

	if got := len(m.snapshot.Vehicles); got != 7 {
		t.Fatalf("vehicles = %d, want 7", got)
	}
	if got := len(m.table.Rows()); got != 7 {
		t.Fatalf("rows = %d, want 7", got)
	}
	if m.source != "simulated" {
		t.Fatalf("source = %q, want simulated", m.source)
	}
	if !strings.Contains(m.View(), "Page 1/1") {
		t.Fatalf("view missing page indicator:\n%s", m.View())
	}
}

func TestInitRemoteLoad(t *testing.T) {
	fetcher := &stubFetcher{vehicles: numberedVehicles(3)}
	m := newTestModel(t, Options{Fetcher: fetcher, InitialLoad: LoadRemote})

	if fetcher.calls != 1 {
		t.Fatalf("fetch calls = %d, want 1", fetcher.calls)
	}
	if m.pending != 0 {
		t.Fatalf("pending = %d, want 0", m.pending)
	}
	if got := len(m.table.Rows()); got != 3 {
		t.Fatalf("rows = %d, want 3", got)
	}
	for _, v := range m.snapshot.Vehicles {
		if !v.HasCoordinates() {
			t.Fatalf("vehicle %+v has no coordinates", v)
		}
	}
}

func TestRemoteLoadWithoutFetcherSetsNotice(t *testing.T) {
	m := newTestModel(t, Options{})

	m, cmd := send(t, m, runes("r"))
	if cmd != nil {
		t.Fatalf("cmd = %v, want nil", cmd)
	}
	if m.notice == "" {
		t.Fatalf("notice is empty, want a hint")
	}
}

func TestRemoteLoadFailureShowsError(t *testing.T) {
	fetcher := &stubFetcher{err: carapi.ErrFetchVehicles}
	m := newTestModel(t, Options{Fetcher: fetcher})

	m = sendAndLoad(t, m, runes("r"))
	if m.snapshot.Error != carapi.ErrFetchVehicles.Error() {
		t.Fatalf("error = %q, want %q", m.snapshot.Error, carapi.ErrFetchVehicles.Error())
	}
	if !strings.Contains(m.View(), "could not retrieve vehicles") {
		t.Fatalf("view missing error:\n%s", m.View())
	}
}

func TestSortKeysToggleDirection(t *testing.T) {
	m := newTestModel(t, Options{InitialLoad: LoadSimulated})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = send(t, m, runes("o"))
	if got := m.store.Sort(); got != (state.Sort{Column: state.ColumnMake, Asc: true}) {
		t.Fatalf("sort = %+v, want make asc", got)
	}
	if got := m.table.Rows()[0][1]; got != "bmw" {
		t.Fatalf("first make = %q, want bmw", got)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.store.Sort(); got != (state.Sort{Column: state.ColumnMake, Asc: false}) {
		t.Fatalf("sort = %+v, want make desc", got)
	}
	if got := m.table.Rows()[0][1]; got != "toyota" {
		t.Fatalf("first make = %q, want toyota", got)
	}
}

func TestColumnCursorWraps(t *testing.T) {
	m := newTestModel(t, Options{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if want := len(vehicleColumns) - 1; m.columnIdx != want {
		t.Fatalf("columnIdx = %d, want %d", m.columnIdx, want)
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.columnIdx != 0 {
		t.Fatalf("columnIdx = %d, want 0", m.columnIdx)
	}
}

func TestPagingKeys(t *testing.T) {
	fetcher := &stubFetcher{vehicles: numberedVehicles(45)}
	m := newTestModel(t, Options{Fetcher: fetcher, InitialLoad: LoadRemote})

	if m.snapshot.TotalPages != 3 {
		t.Fatalf("total pages = %d, want 3", m.snapshot.TotalPages)
	}

	m, _ = send(t, m, runes("n"))
	m, _ = send(t, m, runes("n"))
	if m.snapshot.CurrentPage != 3 {
		t.Fatalf("page = %d, want 3", m.snapshot.CurrentPage)
	}
	if got := len(m.table.Rows()); got != 5 {
		t.Fatalf("rows on last page = %d, want 5", got)
	}

	m, _ = send(t, m, runes("n"))
	if m.snapshot.CurrentPage != 3 {
		t.Fatalf("page after overflow = %d, want 3", m.snapshot.CurrentPage)
	}

	m, _ = send(t, m, runes("p"))
	if m.snapshot.CurrentPage != 2 {
		t.Fatalf("page = %d, want 2", m.snapshot.CurrentPage)
	}
}

func TestFilterFormAppliesCriteria(t *testing.T) {
	m := newTestModel(t, Options{InitialLoad: LoadSimulated})

	m, _ = send(t, m, runes("f"))
	if !m.showFilters {
		t.Fatalf("filter form did not open")
	}
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = send(t, m, runes("toyota"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.showFilters {
		t.Fatalf("filter form still open after apply")
	}
	if got := m.store.Filters().Make; got != "toyota" {
		t.Fatalf("make filter = %q, want toyota", got)
	}
	if got := len(m.table.Rows()); got != 2 {
		t.Fatalf("rows = %d, want 2", got)
	}

	m, _ = send(t, m, runes("c"))
	if !m.store.Filters().IsZero() {
		t.Fatalf("filters = %+v, want cleared", m.store.Filters())
	}
	if got := len(m.table.Rows()); got != 7 {
		t.Fatalf("rows after clear = %d, want 7", got)
	}
}

func TestFilterFormRejectsNonNumericBound(t *testing.T) {
	m := newTestModel(t, Options{InitialLoad: LoadSimulated})

	m, _ = send(t, m, runes("f"))
	for i := 0; i < fieldYearMin; i++ {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	m, _ = send(t, m, runes("abc"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !m.showFilters {
		t.Fatalf("filter form closed, want it kept open")
	}
	if m.form.errors[fieldYearMin] == "" {
		t.Fatalf("year min error is empty")
	}
	if !m.store.Filters().IsZero() {
		t.Fatalf("filters = %+v, want unchanged", m.store.Filters())
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.showFilters {
		t.Fatalf("filter form still open after esc")
	}
}

func TestQuitTypedInFilterFormIsText(t *testing.T) {
	m := newTestModel(t, Options{})

	m, _ = send(t, m, runes("f"))
	m, _ = send(t, m, runes("q"))
	if !m.showFilters {
		t.Fatalf("filter form closed after typing q")
	}
	if got := m.form.inputs[fieldClass].Value(); got != "q" {
		t.Fatalf("class input = %q, want q", got)
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, Options{})

	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatalf("cmd = nil, want quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("cmd did not quit")
	}
}

func TestCycleThemeSaves(t *testing.T) {
	saver := &recordingSaver{}
	m := newTestModel(t, Options{ThemeName: "Nightfox", ThemeSaver: saver})

	m, _ = send(t, m, runes("T"))
	if m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", m.theme.Name)
	}
	if len(saver.saved) != 1 || saver.saved[0] != "Kanagawa" {
		t.Fatalf("saved = %v, want [Kanagawa]", saver.saved)
	}
}

func TestDetailPaneShowsCoordinates(t *testing.T) {
	m := newTestModel(t, Options{InitialLoad: LoadSimulated})

	m, _ = send(t, m, runes("d"))
	view := m.View()
	if !strings.Contains(view, "Location") {
		t.Fatalf("view missing detail pane:\n%s", view)
	}
	if !strings.Contains(view, "premium API plan") {
		t.Fatalf("view missing premium note for the first record:\n%s", view)
	}
}

func TestHelpOverlayClosesOnAnyKey(t *testing.T) {
	m := newTestModel(t, Options{})

	m, _ = send(t, m, runes("?"))
	if !m.showHelp {
		t.Fatalf("help not shown")
	}
	if !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help view missing title")
	}
	m, _ = send(t, m, runes("x"))
	if m.showHelp {
		t.Fatalf("help still shown")
	}
}

func TestLoadDoneIgnoresMissingFetcherError(t *testing.T) {
	m := newTestModel(t, Options{})

	next, _ := m.Update(loadDoneMsg{err: state.ErrNoFetcher})
	m = next.(Model)
	if m.snapshot.Error != "" {
		t.Fatalf("error = %q, want empty", m.snapshot.Error)
	}
	if m.notice == "" {
		t.Fatalf("notice is empty")
	}
}

func TestSimulatedKeyReplacesRemoteData(t *testing.T) {
	fetcher := &stubFetcher{vehicles: numberedVehicles(30)}
	m := newTestModel(t, Options{Fetcher: fetcher, InitialLoad: LoadRemote})
	m, _ = send(t, m, runes("n"))

	m = sendAndLoad(t, m, runes("s"))
	if got := len(m.snapshot.Vehicles); got != 7 {
		t.Fatalf("vehicles = %d, want 7", got)
	}
	if m.snapshot.CurrentPage != 1 {
		t.Fatalf("page = %d, want 1", m.snapshot.CurrentPage)
	}
}
