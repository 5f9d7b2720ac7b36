package ui

import (
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/carlot/internal/state"
)

// Filter form field order.
const (
	fieldClass = iota
	fieldMake
	fieldModel
	fieldYearMin
	fieldYearMax
	fieldTransmission
	fieldCityMin
	fieldCityMax
	fieldCount
)

var filterLabels = [fieldCount]string{
	"Class:        ",
	"Make:         ",
	"Model:        ",
	"Year min:     ",
	"Year max:     ",
	"Transmission: ",
	"City mpg min: ",
	"City mpg max: ",
}

var filterPlaceholders = [fieldCount]string{
	"e.g. midsize car",
	"e.g. toyota",
	"e.g. camry",
	"e.g. 2000",
	"e.g. 2020",
	"a, m, automatica, manual",
	"e.g. 20",
	"e.g. 35",
}

// filterForm is the modal used to edit every criterion at once.
type filterForm struct {
	inputs   [fieldCount]textinput.Model
	errors   [fieldCount]string
	focusIdx int
}

func newFilterForm() filterForm {
	var f filterForm
	for i := range f.inputs {
		in := textinput.New()
		in.Placeholder = filterPlaceholders[i]
		in.CharLimit = 40
		in.Width = 30
		f.inputs[i] = in
	}
	return f
}

// open pre-fills the form with the active filters and focuses the first field.
func (f *filterForm) open(current state.Filters) {
	values := filterValues(current)
	for i := range f.inputs {
		f.inputs[i].SetValue(values[i])
		f.inputs[i].Blur()
		f.errors[i] = ""
	}
	f.focusIdx = 0
	f.inputs[0].Focus()
}

func (f *filterForm) focus(idx int) {
	f.inputs[f.focusIdx].Blur()
	f.focusIdx = (idx + fieldCount) % fieldCount
	f.inputs[f.focusIdx].Focus()
}

func (f *filterForm) values() [fieldCount]string {
	var out [fieldCount]string
	for i, in := range f.inputs {
		out[i] = in.Value()
	}
	return out
}

// handleFilterFormKey handles keyboard input while the filter form is open.
func (m Model) handleFilterFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.showFilters = false
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		patch, errs, ok := parseFilterForm(m.form.values())
		m.form.errors = errs
		if !ok {
			return m, nil
		}
		m.store.SetFilters(patch)
		m.showFilters = false
		m.table.SetCursor(0)
		m.sync()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.form.focus(m.form.focusIdx + 1)
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.form.focus(m.form.focusIdx - 1)
		return m, nil
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focusIdx], cmd = m.form.inputs[m.form.focusIdx].Update(msg)
	return m, cmd
}

// parseFilterForm turns raw form values into a full patch. Blank inputs unset
// their criterion. Numeric fields that do not parse are reported per field
// and ok is false.
func parseFilterForm(values [fieldCount]string) (state.FilterPatch, [fieldCount]string, bool) {
	var errs [fieldCount]string
	ok := true

	intBound := func(idx int) *int {
		raw := strings.TrimSpace(values[idx])
		if raw == "" {
			return nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs[idx] = "must be a whole number"
			ok = false
			return nil
		}
		return state.Int(n)
	}
	floatBound := func(idx int) *float64 {
		raw := strings.TrimSpace(values[idx])
		if raw == "" {
			return nil
		}
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			errs[idx] = "must be a number"
			ok = false
			return nil
		}
		return state.Float(n)
	}

	patch := state.FilterPatch{
		Class:        state.Set(values[fieldClass]),
		Make:         state.Set(values[fieldMake]),
		Model:        state.Set(values[fieldModel]),
		YearMin:      state.Set(intBound(fieldYearMin)),
		YearMax:      state.Set(intBound(fieldYearMax)),
		Transmission: state.Set(values[fieldTransmission]),
		CityMPGMin:   state.Set(floatBound(fieldCityMin)),
		CityMPGMax:   state.Set(floatBound(fieldCityMax)),
	}
	return patch, errs, ok
}

func filterValues(f state.Filters) [fieldCount]string {
	var out [fieldCount]string
	out[fieldClass] = f.Class
	out[fieldMake] = f.Make
	out[fieldModel] = f.Model
	out[fieldYearMin] = intPtrValue(f.YearMin)
	out[fieldYearMax] = intPtrValue(f.YearMax)
	out[fieldTransmission] = f.Transmission
	out[fieldCityMin] = floatPtrValue(f.CityMPGMin)
	out[fieldCityMax] = floatPtrValue(f.CityMPGMax)
	return out
}

func intPtrValue(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func floatPtrValue(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// renderFilterForm renders the filter modal.
func (m Model) renderFilterForm() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Filters"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 44)))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("Text fields match case-insensitively."))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("Leave blank to disable a filter."))
	b.WriteString("\n\n")

	for i := range m.form.inputs {
		label := styles.MutedText.Render(filterLabels[i])
		if i == m.form.focusIdx {
			label = styles.AccentText.Render(filterLabels[i])
		}
		b.WriteString(label)
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("\n")
		if msg := m.form.errors[i]; msg != "" {
			b.WriteString(strings.Repeat(" ", len(filterLabels[i])))
			b.WriteString(styles.DangerText.Render(msg))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Enter: Apply  •  Esc: Cancel  •  Tab: Next field"))

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		styles.Modal.Width(58).Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
