// Package geo derives stand-in coordinates for vehicles whose source data has
// no location. Coordinates are scattered over a fixed bounding box covering
// continental Chile.
package geo

import "unicode/utf16"

// Bounding box used by Synthesize.
const (
	LatMin = -56.0
	LatMax = -17.0
	LngMin = -75.0
	LngMax = -66.0
)

const (
	buckets   = 1000
	lngSuffix = "lng"
)

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether c falls inside the synthesis bounding box.
func (c Coordinates) Valid() bool {
	return c.Latitude >= LatMin && c.Latitude <= LatMax &&
		c.Longitude >= LngMin && c.Longitude <= LngMax
}

// HashString folds s into [0, max) using a 31-multiplier rolling hash over
// UTF-16 code units with 32-bit signed wraparound.
func HashString(s string, max int) int {
	if max <= 0 {
		return 0
	}
	var h int32
	for _, unit := range utf16.Encode([]rune(s)) {
		h = (h << 5) - h + int32(unit)
	}
	abs := int64(h)
	if abs < 0 {
		abs = -abs
	}
	return int(abs % int64(max))
}

// Synthesize returns deterministic coordinates for id. The longitude uses a
// suffixed key so the two axes are not correlated.
func Synthesize(id string) Coordinates {
	latIdx := HashString(id, buckets)
	lngIdx := HashString(id+lngSuffix, buckets)
	return Coordinates{
		Latitude:  interpolate(LatMin, LatMax, latIdx),
		Longitude: interpolate(LngMin, LngMax, lngIdx),
	}
}

func interpolate(lo, hi float64, idx int) float64 {
	return lo + (float64(idx)/float64(buckets-1))*(hi-lo)
}
