package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseLatLon parses coordinate strings to floating point. Surrounding
// whitespace is tolerated; anything non-numeric is an error.
func ParseLatLon(lat, lon string) (float64, float64, error) {
	latF, err := strconv.ParseFloat(strings.TrimSpace(lat), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse latitude %q: %w", lat, err)
	}
	lonF, err := strconv.ParseFloat(strings.TrimSpace(lon), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("parse longitude %q: %w", lon, err)
	}
	return latF, lonF, nil
}

// ValidateCoordinates checks coordinate bounds
func ValidateCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

type coord struct {
	lat float64
	lon float64
}

// CoordSet is an append-only collection of coordinates supporting a
// tolerance-based containment query. A candidate is contained when an
// already-added point lies within the tolerance on both axes
// (absolute difference, strictly less than). Construct one per run.
type CoordSet struct {
	tolerance float64
	points    []coord
}

// NewCoordSet creates an empty set with the given axis tolerance
func NewCoordSet(tolerance float64) *CoordSet {
	return &CoordSet{tolerance: tolerance}
}

// Contains reports whether a point within tolerance was already added
func (s *CoordSet) Contains(lat, lon float64) bool {
	for _, p := range s.points {
		if math.Abs(p.lat-lat) < s.tolerance && math.Abs(p.lon-lon) < s.tolerance {
			return true
		}
	}
	return false
}

// Add records a point. Duplicates are not collapsed here; callers
// check Contains first so that the first-seen point wins.
func (s *CoordSet) Add(lat, lon float64) {
	s.points = append(s.points, coord{lat: lat, lon: lon})
}

// Len returns the number of recorded points
func (s *CoordSet) Len() int {
	return len(s.points)
}
