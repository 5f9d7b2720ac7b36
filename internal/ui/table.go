package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"

	"github.com/five82/carlot/internal/carapi"
	"github.com/five82/carlot/internal/state"
)

// vehicleColumn describes one table column and how to render a vehicle in it.
type vehicleColumn struct {
	id      state.Column
	label   string
	width   int
	compact bool // shown on narrow terminals
	value   func(carapi.Vehicle) string
}

var vehicleColumns = []vehicleColumn{
	{state.ColumnID, "ID", 4, false, func(v carapi.Vehicle) string { return optionalInt(v.ID) }},
	{state.ColumnMake, "Make", 12, true, func(v carapi.Vehicle) string { return v.Make }},
	{state.ColumnModel, "Model", 16, true, func(v carapi.Vehicle) string { return v.Model }},
	{state.ColumnYear, "Year", 6, true, func(v carapi.Vehicle) string { return optionalInt(v.Year) }},
	{state.ColumnClass, "Class", 14, false, func(v carapi.Vehicle) string { return v.Class }},
	{state.ColumnFuelType, "Fuel", 11, false, func(v carapi.Vehicle) string { return v.FuelType }},
	{state.ColumnTransmission, "Trans", 10, true, func(v carapi.Vehicle) string { return v.TransmissionLabel() }},
	{state.ColumnCityMPG, "City", 8, true, func(v carapi.Vehicle) string { return mpgLabel(v.CityMPG) }},
	{state.ColumnHighwayMPG, "Hwy", 8, false, func(v carapi.Vehicle) string { return mpgLabel(v.HighwayMPG) }},
	{state.ColumnCombinationMPG, "Comb", 8, false, func(v carapi.Vehicle) string { return mpgLabel(v.CombinationMPG) }},
	{state.ColumnCylinders, "Cyl", 5, false, func(v carapi.Vehicle) string { return intPtrLabel(v.Cylinders) }},
	{state.ColumnDisplacement, "Disp", 6, false, func(v carapi.Vehicle) string { return floatPtrLabel(v.Displacement) }},
	{state.ColumnDrive, "Drive", 6, false, func(v carapi.Vehicle) string { return stringPtrLabel(v.Drive) }},
}

// visibleColumns returns the columns that fit the given terminal width.
func visibleColumns(width int) []vehicleColumn {
	if width <= 0 || width >= LayoutCompactWidth {
		return vehicleColumns
	}
	out := make([]vehicleColumn, 0, len(vehicleColumns))
	for _, c := range vehicleColumns {
		if c.compact {
			out = append(out, c)
		}
	}
	return out
}

// tableColumns builds the header row. The focused column is bracketed and the
// active sort column carries a direction arrow.
func tableColumns(cols []vehicleColumn, focused int, sort state.Sort) []table.Column {
	out := make([]table.Column, len(cols))
	for i, c := range cols {
		label := c.label
		if c.id == sort.Column {
			if sort.Asc {
				label += "↑"
			} else {
				label += "↓"
			}
		}
		if i == focused {
			label = "[" + label + "]"
		}
		out[i] = table.Column{Title: label, Width: max(c.width, len([]rune(label)))}
	}
	return out
}

func tableRows(cols []vehicleColumn, vehicles []carapi.Vehicle) []table.Row {
	rows := make([]table.Row, len(vehicles))
	for i, v := range vehicles {
		row := make(table.Row, len(cols))
		for j, c := range cols {
			row[j] = c.value(v)
		}
		rows[i] = row
	}
	return rows
}

func mpgLabel(e carapi.Efficiency) string {
	switch {
	case !e.Present():
		return "-"
	case e.String() == carapi.Unavailable:
		return "premium"
	default:
		return e.String()
	}
}

func optionalInt(v int) string {
	if v == 0 {
		return "-"
	}
	return strconv.Itoa(v)
}

func intPtrLabel(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func floatPtrLabel(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func stringPtrLabel(v *string) string {
	if v == nil || *v == "" {
		return "-"
	}
	return *v
}
