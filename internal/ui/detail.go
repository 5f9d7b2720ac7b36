package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/carlot/internal/carapi"
)

// selectedVehicle returns the vehicle under the table cursor, if any.
func (m Model) selectedVehicle() (carapi.Vehicle, bool) {
	rows := m.snapshot.PaginatedVehicles
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(rows) {
		return carapi.Vehicle{}, false
	}
	return rows[idx], true
}

// renderDetail renders the detail pane for the selected vehicle.
func (m Model) renderDetail(width int) string {
	styles := m.theme.Styles()
	pane := styles.Pane.Width(max(width-2, 10))

	v, ok := m.selectedVehicle()
	if !ok {
		return pane.Render(styles.MutedText.Render("No vehicle selected"))
	}

	var b strings.Builder
	title := strings.TrimSpace(fmt.Sprintf("%s %s", v.Make, v.Model))
	b.WriteString(styles.AccentText.Bold(true).Render(title))
	if v.Year != 0 {
		b.WriteString(styles.MutedText.Render(fmt.Sprintf(" (%d)", v.Year)))
	}
	b.WriteString("\n\n")

	row := func(label, value string, style lipgloss.Style) {
		b.WriteString(styles.FaintText.Render(fmt.Sprintf("%-14s", label)))
		b.WriteString(style.Render(value))
		b.WriteString("\n")
	}

	row("Class", dash(v.Class), styles.Text)
	row("Fuel", dash(v.FuelType), styles.Text)
	row("Transmission", dash(v.TransmissionLabel()), styles.Text)
	row("Drive", stringPtrLabel(v.Drive), styles.Text)
	row("Cylinders", intPtrLabel(v.Cylinders), styles.Text)
	row("Displacement", floatPtrLabel(v.Displacement), styles.Text)

	city, cityOK := v.CityMPG.Float()
	row("City mpg", mpgLabel(v.CityMPG), styles.EfficiencyStyle(city, cityOK))
	row("Highway mpg", mpgLabel(v.HighwayMPG), styles.Text)
	row("Combined mpg", mpgLabel(v.CombinationMPG), styles.Text)

	coords := "-"
	if v.HasCoordinates() {
		coords = fmt.Sprintf("%.4f, %.4f", v.Latitude, v.Longitude)
	}
	row("Location", coords, styles.InfoText)

	if v.CityMPG.String() == carapi.Unavailable {
		b.WriteString("\n")
		b.WriteString(styles.WarningText.Render("Fuel figures need a premium API plan."))
	}

	return pane.Render(strings.TrimRight(b.String(), "\n"))
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
