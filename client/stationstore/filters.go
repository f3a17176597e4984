package stationstore

import "strings"

const (
	defaultPowerOutputMin = 0
	defaultPowerOutputMax = 500
)

// Filters is the active client-side filter set. It is never persisted;
// the filtered view is recomputed from it on every read.
type Filters struct {
	Status         []string
	ConnectorTypes []string
	PowerOutputMin float64
	PowerOutputMax float64
	SearchQuery    string
}

// DefaultFilters returns the filter set a fresh store starts with.
func DefaultFilters() Filters {
	return Filters{
		Status:         []string{},
		ConnectorTypes: []string{},
		PowerOutputMin: defaultPowerOutputMin,
		PowerOutputMax: defaultPowerOutputMax,
	}
}

// FilterStations derives the filtered view: a pure function of the full
// collection and the filter set, preserving relative order. The search
// query short-circuits the predicate; a station that fails the substring
// match is excluded regardless of earlier criteria.
func FilterStations(stations []Station, filters Filters) []Station {
	filtered := make([]Station, 0, len(stations))
	for _, station := range stations {
		if matches(station, filters) {
			filtered = append(filtered, station)
		}
	}
	return filtered
}

func matches(station Station, filters Filters) bool {
	if len(filters.Status) > 0 && !containsString(filters.Status, station.Status) {
		return false
	}

	if len(filters.ConnectorTypes) > 0 && !overlaps(station.ConnectorTypes, filters.ConnectorTypes) {
		return false
	}

	power := float64(station.PowerOutput)
	if power < filters.PowerOutputMin || power > filters.PowerOutputMax {
		return false
	}

	if filters.SearchQuery != "" {
		query := strings.ToLower(filters.SearchQuery)
		return strings.Contains(strings.ToLower(station.Name), query) ||
			strings.Contains(strings.ToLower(station.Address), query) ||
			strings.Contains(strings.ToLower(station.City), query) ||
			strings.Contains(strings.ToLower(station.State), query)
	}

	return true
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func overlaps(a, b []string) bool {
	for _, s := range a {
		if containsString(b, s) {
			return true
		}
	}
	return false
}
