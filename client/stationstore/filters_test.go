package stationstore

import (
	"testing"
)

func sampleStations() []Station {
	return []Station{
		{ID: "tenali-001", Name: "Tenali Central", Address: "1 Main Rd", City: "Tenali", State: "Andhra Pradesh",
			Status: "active", PowerOutput: 120, ConnectorTypes: []string{"CCS2", "Type2"}},
		{ID: "vijayawada-001", Name: "Benz Circle Hub", Address: "5 Ring Rd", City: "Vijayawada", State: "Andhra Pradesh",
			Status: "active", PowerOutput: 50, ConnectorTypes: []string{"CHAdeMO"}},
		{ID: "guntur-001", Name: "Tenali Road Plaza", Address: "9 Tenali Rd", City: "Guntur", State: "Andhra Pradesh",
			Status: "maintenance", PowerOutput: 350, ConnectorTypes: []string{"CCS2"}},
		{ID: "guntur-002", Name: "Brodipet Point", Address: "2 Brodipet", City: "Guntur", State: "Andhra Pradesh",
			Status: "inactive", PowerOutput: 22, ConnectorTypes: []string{"Type1"}},
	}
}

func ids(stations []Station) []string {
	out := make([]string, len(stations))
	for i, s := range stations {
		out[i] = s.ID
	}
	return out
}

func equalIDs(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterStationsDefaultPassesAll(t *testing.T) {
	got := FilterStations(sampleStations(), DefaultFilters())
	if len(got) != 4 {
		t.Fatalf("filtered %d stations, want all 4", len(got))
	}
}

func TestFilterStationsByStatusPreservesOrder(t *testing.T) {
	filters := DefaultFilters()
	filters.Status = []string{"active", "maintenance"}

	got := ids(FilterStations(sampleStations(), filters))
	if !equalIDs(got, "tenali-001", "vijayawada-001", "guntur-001") {
		t.Fatalf("filtered ids = %v, want original relative order", got)
	}
}

func TestFilterStationsByConnectorOverlap(t *testing.T) {
	filters := DefaultFilters()
	filters.ConnectorTypes = []string{"Type2", "CHAdeMO"}

	got := ids(FilterStations(sampleStations(), filters))
	if !equalIDs(got, "tenali-001", "vijayawada-001") {
		t.Fatalf("filtered ids = %v, want any-overlap semantics", got)
	}
}

func TestFilterStationsByPowerRange(t *testing.T) {
	filters := DefaultFilters()
	filters.PowerOutputMin = 50
	filters.PowerOutputMax = 150

	got := ids(FilterStations(sampleStations(), filters))
	if !equalIDs(got, "tenali-001", "vijayawada-001") {
		t.Fatalf("filtered ids = %v, want stations inside [50,150]", got)
	}
}

func TestFilterStationsSearchMatchesAnyTextField(t *testing.T) {
	filters := DefaultFilters()
	filters.SearchQuery = "TENALI"

	// "tenali" appears in the city of tenali-001 and in the name and
	// address of guntur-001; the match is case-insensitive.
	got := ids(FilterStations(sampleStations(), filters))
	if !equalIDs(got, "tenali-001", "guntur-001") {
		t.Fatalf("filtered ids = %v, want name/address/city/state matches", got)
	}
}

func TestFilterStationsSearchOverridesEarlierMatch(t *testing.T) {
	filters := DefaultFilters()
	filters.Status = []string{"active"}
	filters.SearchQuery = "benz"

	// tenali-001 is active but fails the search, so it is excluded even
	// though it passed every earlier criterion.
	got := ids(FilterStations(sampleStations(), filters))
	if !equalIDs(got, "vijayawada-001") {
		t.Fatalf("filtered ids = %v, want search to decide the final outcome", got)
	}
}

func TestFilterStationsCombined(t *testing.T) {
	filters := Filters{
		Status:         []string{"active", "maintenance"},
		ConnectorTypes: []string{"CCS2"},
		PowerOutputMin: 100,
		PowerOutputMax: 400,
		SearchQuery:    "guntur",
	}

	got := ids(FilterStations(sampleStations(), filters))
	if !equalIDs(got, "guntur-001") {
		t.Fatalf("filtered ids = %v, want only guntur-001", got)
	}
}

func TestFilterStationsDoesNotMutateInput(t *testing.T) {
	stations := sampleStations()
	filters := DefaultFilters()
	filters.Status = []string{"inactive"}

	FilterStations(stations, filters)
	if !equalIDs(ids(stations), "tenali-001", "vijayawada-001", "guntur-001", "guntur-002") {
		t.Fatal("input slice was mutated")
	}
}
