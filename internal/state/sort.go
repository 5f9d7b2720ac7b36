package state

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/five82/carlot/internal/carapi"
)

// ErrUnknownColumn is returned when sorting by a column outside Columns.
var ErrUnknownColumn = errors.New("unknown sort column")

// Column names a sortable vehicle field. The zero value means unsorted.
type Column string

const (
	ColumnNone           Column = ""
	ColumnID             Column = "id"
	ColumnMake           Column = "make"
	ColumnModel          Column = "model"
	ColumnYear           Column = "year"
	ColumnClass          Column = "class"
	ColumnFuelType       Column = "fuel_type"
	ColumnTransmission   Column = "transmission"
	ColumnCityMPG        Column = "city_mpg"
	ColumnHighwayMPG     Column = "highway_mpg"
	ColumnCombinationMPG Column = "combination_mpg"
	ColumnCylinders      Column = "cylinders"
	ColumnDisplacement   Column = "displacement"
	ColumnDrive          Column = "drive"
)

// Columns lists every sortable column in display order.
var Columns = []Column{
	ColumnID, ColumnMake, ColumnModel, ColumnYear, ColumnClass, ColumnFuelType,
	ColumnTransmission, ColumnCityMPG, ColumnHighwayMPG, ColumnCombinationMPG,
	ColumnCylinders, ColumnDisplacement, ColumnDrive,
}

// ParseColumn resolves a column name, accepting any case.
func ParseColumn(name string) (Column, bool) {
	c := Column(strings.ToLower(strings.TrimSpace(name)))
	if c == ColumnNone {
		return ColumnNone, true
	}
	return c, c.Valid()
}

// Valid reports whether c is one of Columns.
func (c Column) Valid() bool {
	for _, known := range Columns {
		if c == known {
			return true
		}
	}
	return false
}

// Sort is the persisted sort descriptor.
type Sort struct {
	Column Column `json:"column" yaml:"column"`
	Asc    bool   `json:"asc" yaml:"asc"`
}

type valueKind int

const (
	kindNull valueKind = iota
	kindNumber
	kindString
)

type sortValue struct {
	kind valueKind
	num  float64
	str  string
}

func null() sortValue            { return sortValue{} }
func number(f float64) sortValue { return sortValue{kind: kindNumber, num: f} }
func text(s string) sortValue    { return sortValue{kind: kindString, str: s} }

func efficiency(e carapi.Efficiency) sortValue {
	if f, ok := e.Float(); ok {
		return number(f)
	}
	return null()
}

// valueFor extracts the comparable value of c from v. Efficiency columns are
// coerced to numbers; absent optional fields are null.
func valueFor(v carapi.Vehicle, c Column) sortValue {
	switch c {
	case ColumnID:
		// Upstream sends no ids, so zero means absent.
		if v.ID == 0 {
			return null()
		}
		return number(float64(v.ID))
	case ColumnMake:
		return text(v.Make)
	case ColumnModel:
		return text(v.Model)
	case ColumnYear:
		return number(float64(v.Year))
	case ColumnClass:
		return text(v.Class)
	case ColumnFuelType:
		return text(v.FuelType)
	case ColumnTransmission:
		return text(v.Transmission)
	case ColumnCityMPG:
		return efficiency(v.CityMPG)
	case ColumnHighwayMPG:
		return efficiency(v.HighwayMPG)
	case ColumnCombinationMPG:
		return efficiency(v.CombinationMPG)
	case ColumnCylinders:
		if v.Cylinders == nil {
			return null()
		}
		return number(float64(*v.Cylinders))
	case ColumnDisplacement:
		if v.Displacement == nil {
			return null()
		}
		return number(*v.Displacement)
	case ColumnDrive:
		if v.Drive == nil {
			return null()
		}
		return text(*v.Drive)
	default:
		return null()
	}
}

// compareValues orders a before b. Nulls sort last whatever the direction;
// numbers compare numerically and everything else as lower-cased strings.
func compareValues(a, b sortValue, asc bool) int {
	switch {
	case a.kind == kindNull && b.kind == kindNull:
		return 0
	case a.kind == kindNull:
		return 1
	case b.kind == kindNull:
		return -1
	}

	var cmp int
	if a.kind == kindNumber && b.kind == kindNumber {
		switch {
		case a.num < b.num:
			cmp = -1
		case a.num > b.num:
			cmp = 1
		}
	} else {
		cmp = strings.Compare(strings.ToLower(a.asString()), strings.ToLower(b.asString()))
	}
	if !asc {
		cmp = -cmp
	}
	return cmp
}

func (s sortValue) asString() string {
	if s.kind == kindNumber {
		return strconv.FormatFloat(s.num, 'f', -1, 64)
	}
	return s.str
}

// sortVehicles returns a stably ordered copy of vehicles. With no column or
// fewer than two records the input order is kept.
func sortVehicles(vehicles []carapi.Vehicle, by Sort) []carapi.Vehicle {
	out := make([]carapi.Vehicle, len(vehicles))
	copy(out, vehicles)
	if by.Column == ColumnNone || len(out) <= 1 {
		return out
	}
	keys := make([]sortValue, len(out))
	for i, v := range out {
		keys[i] = valueFor(v, by.Column)
	}
	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return compareValues(keys[idx[i]], keys[idx[j]], by.Asc) < 0
	})
	sorted := make([]carapi.Vehicle, len(out))
	for i, k := range idx {
		sorted[i] = out[k]
	}
	return sorted
}
