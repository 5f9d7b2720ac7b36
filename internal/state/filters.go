package state

import (
	"strings"

	"github.com/five82/carlot/internal/carapi"
)

// Filters holds the active filter criteria. Empty strings and nil bounds are
// inactive. The JSON form is what gets persisted.
type Filters struct {
	Class        string   `json:"class" yaml:"class"`
	Make         string   `json:"make" yaml:"make"`
	Model        string   `json:"model" yaml:"model"`
	YearMin      *int     `json:"yearMin" yaml:"yearMin"`
	YearMax      *int     `json:"yearMax" yaml:"yearMax"`
	Transmission string   `json:"transmission" yaml:"transmission"`
	CityMPGMin   *float64 `json:"cityMpgMin" yaml:"cityMpgMin"`
	CityMPGMax   *float64 `json:"cityMpgMax" yaml:"cityMpgMax"`
}

// Field is one optional update inside a FilterPatch.
type Field[T any] struct {
	Value T
	Set   bool
}

// Set wraps v as an update. Set[*int](nil) clears a bound.
func Set[T any](v T) Field[T] {
	return Field[T]{Value: v, Set: true}
}

// Int returns a pointer to v for use as a bound.
func Int(v int) *int { return &v }

// Float returns a pointer to v for use as a bound.
func Float(v float64) *float64 { return &v }

// FilterPatch is a partial update merged into the current Filters. Fields
// left unset keep their current value.
type FilterPatch struct {
	Class        Field[string]
	Make         Field[string]
	Model        Field[string]
	YearMin      Field[*int]
	YearMax      Field[*int]
	Transmission Field[string]
	CityMPGMin   Field[*float64]
	CityMPGMax   Field[*float64]
}

// Apply returns f with the patch merged in.
func (p FilterPatch) Apply(f Filters) Filters {
	out := f.clone()
	if p.Class.Set {
		out.Class = p.Class.Value
	}
	if p.Make.Set {
		out.Make = p.Make.Value
	}
	if p.Model.Set {
		out.Model = p.Model.Value
	}
	if p.YearMin.Set {
		out.YearMin = cloneInt(p.YearMin.Value)
	}
	if p.YearMax.Set {
		out.YearMax = cloneInt(p.YearMax.Value)
	}
	if p.Transmission.Set {
		out.Transmission = p.Transmission.Value
	}
	if p.CityMPGMin.Set {
		out.CityMPGMin = cloneFloat(p.CityMPGMin.Value)
	}
	if p.CityMPGMax.Set {
		out.CityMPGMax = cloneFloat(p.CityMPGMax.Value)
	}
	return out
}

// FilterErrors holds range validation messages keyed by the failing range.
type FilterErrors struct {
	Year    string `json:"year,omitempty"`
	CityMPG string `json:"cityMpg,omitempty"`
}

// Empty reports whether no range failed.
func (e FilterErrors) Empty() bool {
	return e.Year == "" && e.CityMPG == ""
}

const (
	yearRangeError    = "minimum year cannot be greater than maximum year"
	cityMPGRangeError = "minimum city mpg cannot be greater than maximum city mpg"
)

// Validate checks both ranges. A range is invalid only when both bounds are
// set and min > max.
func (f Filters) Validate() FilterErrors {
	var errs FilterErrors
	if f.YearMin != nil && f.YearMax != nil && *f.YearMin > *f.YearMax {
		errs.Year = yearRangeError
	}
	if f.CityMPGMin != nil && f.CityMPGMax != nil && *f.CityMPGMin > *f.CityMPGMax {
		errs.CityMPG = cityMPGRangeError
	}
	return errs
}

// IsZero reports whether no criterion is active.
func (f Filters) IsZero() bool {
	return f.Class == "" && f.Make == "" && f.Model == "" && f.Transmission == "" &&
		f.YearMin == nil && f.YearMax == nil && f.CityMPGMin == nil && f.CityMPGMax == nil
}

// Matches reports whether v satisfies every active criterion. Range validity
// is not checked here.
func (f Filters) Matches(v carapi.Vehicle) bool {
	if f.Class != "" && !containsFold(v.Class, f.Class) {
		return false
	}
	if f.Make != "" && !containsFold(v.Make, f.Make) {
		return false
	}
	if f.Model != "" && !containsFold(v.Model, f.Model) {
		return false
	}
	if f.Transmission != "" {
		if code, ok := NormalizeTransmission(f.Transmission); ok && !strings.EqualFold(v.Transmission, code) {
			return false
		}
	}
	if f.YearMin != nil && v.Year < *f.YearMin {
		return false
	}
	if f.YearMax != nil && v.Year > *f.YearMax {
		return false
	}
	if f.CityMPGMin != nil || f.CityMPGMax != nil {
		city, ok := v.CityMPG.Float()
		if !ok {
			return false
		}
		if f.CityMPGMin != nil && city < *f.CityMPGMin {
			return false
		}
		if f.CityMPGMax != nil && city > *f.CityMPGMax {
			return false
		}
	}
	return true
}

// NormalizeTransmission maps a user-entered transmission to its code. ok is
// false for values outside the known synonym groups, which do not restrict
// the filtered view.
func NormalizeTransmission(s string) (code string, ok bool) {
	switch strings.ToLower(s) {
	case "a", "automatica", "automática":
		return carapi.TransmissionAutomatic, true
	case "m", "manual":
		return carapi.TransmissionManual, true
	default:
		return "", false
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func (f Filters) clone() Filters {
	out := f
	out.YearMin = cloneInt(f.YearMin)
	out.YearMax = cloneInt(f.YearMax)
	out.CityMPGMin = cloneFloat(f.CityMPGMin)
	out.CityMPGMax = cloneFloat(f.CityMPGMax)
	return out
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
