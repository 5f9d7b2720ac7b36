package ui

import (
	"fmt"
	"strings"

	"github.com/five82/carlot/internal/state"
)

// renderHeader renders the status bar: logo, page, counts, sort and load state.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)
	snap := m.snapshot

	parts := []string{
		bg.Render("carlot", styles.Logo),
		bg.Render(fmt.Sprintf("Page %d/%d", snap.CurrentPage, snap.TotalPages), styles.Text.Bold(true)),
		bg.Render(fmt.Sprintf("%d of %d vehicles", snap.FilteredCount, len(snap.Vehicles)), styles.MutedText),
		bg.Render(sortLabel(snap.Sort), styles.InfoText),
	}
	if snap.Loading || m.pending > 0 {
		parts = append(parts, bg.Render(m.spinner.View()+" Loading", styles.WarningText))
	}
	if m.source != "" {
		parts = append(parts, bg.Render(m.source, styles.FaintText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderStatusLine shows the load error, filter errors, or the active filters.
func (m Model) renderStatusLine() string {
	styles := m.theme.Styles()
	snap := m.snapshot

	var parts []string
	if snap.Error != "" {
		parts = append(parts, styles.DangerText.Render("Error: "+snap.Error))
	}
	if snap.FilterErrors.Year != "" {
		parts = append(parts, styles.DangerText.Render(snap.FilterErrors.Year))
	}
	if snap.FilterErrors.CityMPG != "" {
		parts = append(parts, styles.DangerText.Render(snap.FilterErrors.CityMPG))
	}
	if m.notice != "" {
		parts = append(parts, styles.WarningText.Render(m.notice))
	}
	if len(parts) == 0 {
		summary := filterSummary(snap.Filters)
		if summary == "" {
			return styles.FaintText.Render("No filters")
		}
		return styles.MutedText.Render("Filters: ") + styles.AccentText.Render(summary)
	}
	return strings.Join(parts, "  ")
}

func sortLabel(s state.Sort) string {
	if s.Column == state.ColumnNone {
		return "unsorted"
	}
	dir := "asc"
	if !s.Asc {
		dir = "desc"
	}
	return fmt.Sprintf("sort %s %s", s.Column, dir)
}

// filterSummary renders the active criteria compactly, e.g. "make~toyota year>=2000".
func filterSummary(f state.Filters) string {
	var parts []string
	add := func(name, value string) {
		if value != "" {
			parts = append(parts, name+"~"+value)
		}
	}
	add("class", f.Class)
	add("make", f.Make)
	add("model", f.Model)
	if f.YearMin != nil {
		parts = append(parts, fmt.Sprintf("year>=%d", *f.YearMin))
	}
	if f.YearMax != nil {
		parts = append(parts, fmt.Sprintf("year<=%d", *f.YearMax))
	}
	if f.Transmission != "" {
		parts = append(parts, "transmission="+f.Transmission)
	}
	if f.CityMPGMin != nil {
		parts = append(parts, "city>="+floatPtrValue(f.CityMPGMin))
	}
	if f.CityMPGMax != nil {
		parts = append(parts, "city<="+floatPtrValue(f.CityMPGMax))
	}
	return strings.Join(parts, " ")
}
