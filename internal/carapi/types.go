package carapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Transmission codes reported by the upstream API.
const (
	TransmissionAutomatic = "a"
	TransmissionManual    = "m"
)

// Unavailable is the text upstream returns in place of efficiency figures on
// the free tier.
const Unavailable = "this field is for premium subscribers only"

// Vehicle mirrors one entry of the /v1/cars payload. Latitude and Longitude
// are zero when the source has no location.
type Vehicle struct {
	ID             int        `json:"id,omitempty" yaml:"id,omitempty"`
	Make           string     `json:"make" yaml:"make"`
	Model          string     `json:"model" yaml:"model"`
	Year           int        `json:"year" yaml:"year"`
	Class          string     `json:"class" yaml:"class"`
	FuelType       string     `json:"fuel_type" yaml:"fuel_type"`
	Transmission   string     `json:"transmission" yaml:"transmission"`
	CityMPG        Efficiency `json:"city_mpg" yaml:"city_mpg"`
	HighwayMPG     Efficiency `json:"highway_mpg" yaml:"highway_mpg"`
	CombinationMPG Efficiency `json:"combination_mpg" yaml:"combination_mpg"`
	Cylinders      *int       `json:"cylinders,omitempty" yaml:"cylinders,omitempty"`
	Displacement   *float64   `json:"displacement,omitempty" yaml:"displacement,omitempty"`
	Drive          *string    `json:"drive,omitempty" yaml:"drive,omitempty"`
	Latitude       float64    `json:"latitude,omitempty" yaml:"latitude,omitempty"`
	Longitude      float64    `json:"longitude,omitempty" yaml:"longitude,omitempty"`
}

// HasCoordinates reports whether both latitude and longitude are set. A value
// of exactly 0 counts as unset, so a point on the equator or prime meridian is
// treated as missing.
func (v Vehicle) HasCoordinates() bool {
	return v.Latitude != 0 && v.Longitude != 0
}

// TransmissionLabel expands the transmission code for display.
func (v Vehicle) TransmissionLabel() string {
	switch strings.ToLower(strings.TrimSpace(v.Transmission)) {
	case TransmissionAutomatic:
		return "automatic"
	case TransmissionManual:
		return "manual"
	default:
		return v.Transmission
	}
}

// Efficiency is a fuel-efficiency figure. Upstream sends it as a JSON number,
// a numeric string, the Unavailable sentinel, or not at all.
type Efficiency struct {
	raw      string
	isNumber bool
}

// MPG builds an Efficiency from a number.
func MPG(v float64) Efficiency {
	return Efficiency{raw: strconv.FormatFloat(v, 'f', -1, 64), isNumber: true}
}

// MPGText builds an Efficiency from its string form.
func MPGText(s string) Efficiency {
	return Efficiency{raw: s}
}

// Present reports whether any value was supplied.
func (e Efficiency) Present() bool {
	return e.isNumber || e.raw != ""
}

// Float returns the numeric value. ok is false for absent, sentinel and
// otherwise non-numeric values, including NaN and infinities.
func (e Efficiency) Float() (float64, bool) {
	if !e.Present() {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(e.raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// String returns the value as received.
func (e Efficiency) String() string {
	return e.raw
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Efficiency) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*e = Efficiency{}
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("decode efficiency: %w", err)
		}
		*e = MPGText(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("decode efficiency: %w", err)
	}
	*e = Efficiency{raw: n.String(), isNumber: true}
	return nil
}

// MarshalJSON implements json.Marshaler, preserving the original form.
func (e Efficiency) MarshalJSON() ([]byte, error) {
	switch {
	case !e.Present():
		return []byte("null"), nil
	case e.isNumber:
		return []byte(e.raw), nil
	default:
		return json.Marshal(e.raw)
	}
}

// MarshalYAML renders the value as received so YAML output matches JSON.
func (e Efficiency) MarshalYAML() (any, error) {
	if !e.Present() {
		return nil, nil
	}
	if f, ok := e.Float(); ok && e.isNumber {
		return f, nil
	}
	return e.raw, nil
}
