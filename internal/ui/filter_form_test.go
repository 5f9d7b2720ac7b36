package ui

import (
	"testing"

	"github.com/five82/carlot/internal/state"
)

func TestParseFilterForm(t *testing.T) {
	var values [fieldCount]string
	values[fieldMake] = "toyota"
	values[fieldYearMin] = " 2000 "
	values[fieldCityMax] = "31.5"
	values[fieldTransmission] = "automática"

	patch, errs, ok := parseFilterForm(values)
	if !ok {
		t.Fatalf("ok = false, errs = %v", errs)
	}

	got := patch.Apply(state.Filters{Class: "suv", YearMax: state.Int(1990)})
	if got.Class != "" {
		t.Fatalf("Class = %q, want cleared", got.Class)
	}
	if got.Make != "toyota" || got.Transmission != "automática" {
		t.Fatalf("filters = %+v, want make toyota, transmission automática", got)
	}
	if got.YearMin == nil || *got.YearMin != 2000 {
		t.Fatalf("YearMin = %v, want 2000", got.YearMin)
	}
	if got.YearMax != nil {
		t.Fatalf("YearMax = %v, want nil", *got.YearMax)
	}
	if got.CityMPGMax == nil || *got.CityMPGMax != 31.5 {
		t.Fatalf("CityMPGMax = %v, want 31.5", got.CityMPGMax)
	}
}

func TestParseFilterForm_ReportsEachBadNumber(t *testing.T) {
	var values [fieldCount]string
	values[fieldYearMax] = "soon"
	values[fieldCityMin] = "12mpg"

	_, errs, ok := parseFilterForm(values)
	if ok {
		t.Fatalf("ok = true, want false")
	}
	if errs[fieldYearMax] == "" || errs[fieldCityMin] == "" {
		t.Fatalf("errs = %v, want year max and city min errors", errs)
	}
	if errs[fieldYearMin] != "" || errs[fieldCityMax] != "" {
		t.Fatalf("errs = %v, want only the bad fields reported", errs)
	}
}

func TestParseFilterForm_RejectsNonFiniteBounds(t *testing.T) {
	for _, raw := range []string{"NaN", "inf", "-Inf"} {
		var values [fieldCount]string
		values[fieldCityMax] = raw

		_, errs, ok := parseFilterForm(values)
		if ok {
			t.Fatalf("parseFilterForm(%q) ok = true, want false", raw)
		}
		if errs[fieldCityMax] != "must be a number" {
			t.Fatalf("errs[fieldCityMax] = %q, want %q", errs[fieldCityMax], "must be a number")
		}
	}
}

func TestFilterValuesRoundTrip(t *testing.T) {
	f := state.Filters{Model: "camry", YearMin: state.Int(1990), CityMPGMin: state.Float(22)}
	values := filterValues(f)

	patch, _, ok := parseFilterForm(values)
	if !ok {
		t.Fatalf("ok = false for values %v", values)
	}
	got := patch.Apply(state.Filters{})
	if got.Model != "camry" || *got.YearMin != 1990 || *got.CityMPGMin != 22 {
		t.Fatalf("round trip = %+v, want %+v", got, f)
	}
}
