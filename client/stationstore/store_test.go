package stationstore

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// fakeAPI is an in-memory station API backing the store tests. It speaks
// the same wire contract as the real server.
type fakeAPI struct {
	mu       sync.Mutex
	stations []Station
	nextID   int64
	failList bool
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/stations", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		switch r.Method {
		case http.MethodGet:
			if f.failList {
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
				return
			}
			json.NewEncoder(w).Encode(f.stations)
		case http.MethodPost:
			var station Station
			json.NewDecoder(r.Body).Decode(&station)
			for _, existing := range f.stations {
				if existing.ID == station.ID {
					w.WriteHeader(http.StatusBadRequest)
					json.NewEncoder(w).Encode(map[string]string{"error": "Station with this ID already exists"})
					return
				}
			}
			f.nextID++
			station.StorageID = f.nextID
			f.stations = append(f.stations, station)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(station)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/api/stations/reset", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.stations = []Station{{ID: "demo-001", Name: "Demo", StorageID: 1}}
		json.NewEncoder(w).Encode(map[string]string{"message": "Mock data reset successfully"})
	})
	mux.HandleFunc("/api/stations/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		id := strings.TrimPrefix(r.URL.Path, "/api/stations/")
		idx := -1
		for i := range f.stations {
			if f.stations[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "Station not found"})
			return
		}

		switch r.Method {
		case http.MethodPut:
			var station Station
			json.NewDecoder(r.Body).Decode(&station)
			station.ID = id
			station.StorageID = f.stations[idx].StorageID
			f.stations[idx] = station
			json.NewEncoder(w).Encode(station)
		case http.MethodDelete:
			f.stations = append(f.stations[:idx], f.stations[idx+1:]...)
			json.NewEncoder(w).Encode(map[string]string{"message": "Station deleted successfully"})
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	return mux
}

func newTestStore(t *testing.T, api *fakeAPI) *Store {
	t.Helper()
	server := httptest.NewServer(api.handler())
	t.Cleanup(server.Close)
	return NewStore(NewClient(server.URL, server.Client()), nil)
}

func testStation(id string) Station {
	return Station{
		ID: id, Name: "Station " + id, Address: "1 Road", City: "Tenali",
		State: "AP", ZipCode: "522202",
		Latitude: 16.243, Longitude: 80.65, PowerOutput: 120,
		Status: "active", ConnectorTypes: []string{"CCS2"},
	}
}

func TestStoreFetchReplacesCollection(t *testing.T) {
	api := &fakeAPI{stations: []Station{testStation("a"), testStation("b")}}
	store := newTestStore(t, api)

	if err := store.Fetch(context.Background()); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if got := store.Stations(); len(got) != 2 {
		t.Fatalf("stations = %d, want 2", len(got))
	}

	api.mu.Lock()
	api.stations = api.stations[:1]
	api.mu.Unlock()

	if err := store.Fetch(context.Background()); err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if got := store.Stations(); len(got) != 1 {
		t.Fatalf("stations = %d after refetch, want 1", len(got))
	}
	if store.Loading() {
		t.Error("no fetch in flight, Loading must be false")
	}
}

func TestStoreFetchFailureKeepsCollection(t *testing.T) {
	api := &fakeAPI{stations: []Station{testStation("a")}}
	store := newTestStore(t, api)

	if err := store.Fetch(context.Background()); err != nil {
		t.Fatalf("fetch: %v", err)
	}

	api.mu.Lock()
	api.failList = true
	api.mu.Unlock()

	if err := store.Fetch(context.Background()); err == nil {
		t.Fatal("failed fetch must return the error")
	}
	if got := store.Stations(); len(got) != 1 {
		t.Fatalf("stations = %d, want previous collection kept", len(got))
	}

	notifications := store.DrainNotifications()
	if len(notifications) != 1 || notifications[0].Severity != SeverityError {
		t.Fatalf("notifications = %+v, want one error", notifications)
	}
}

func TestStoreAddRefetchesAndNotifies(t *testing.T) {
	api := &fakeAPI{}
	store := newTestStore(t, api)

	created, err := store.Add(context.Background(), testStation("tenali-100"))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if created.StorageID == 0 {
		t.Error("created station should carry its storage identifier")
	}

	if _, ok := store.GetByID("tenali-100"); !ok {
		t.Fatal("collection must be refetched after add")
	}

	notifications := store.DrainNotifications()
	if len(notifications) != 1 || notifications[0].Severity != SeveritySuccess {
		t.Fatalf("notifications = %+v, want one success", notifications)
	}
}

func TestStoreAddDuplicateNotifiesError(t *testing.T) {
	api := &fakeAPI{}
	store := newTestStore(t, api)

	if _, err := store.Add(context.Background(), testStation("tenali-100")); err != nil {
		t.Fatalf("first add: %v", err)
	}
	store.DrainNotifications()

	_, err := store.Add(context.Background(), testStation("tenali-100"))
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want APIError", err)
	}
	if apiErr.Status != http.StatusBadRequest || apiErr.Message != "Station with this ID already exists" {
		t.Errorf("apiErr = %+v", apiErr)
	}

	notifications := store.DrainNotifications()
	if len(notifications) != 1 || notifications[0].Severity != SeverityError {
		t.Fatalf("notifications = %+v, want one error", notifications)
	}
	if got := store.Stations(); len(got) != 1 {
		t.Errorf("stations = %d, duplicate must not grow the collection", len(got))
	}
}

func TestStoreUpdateAndDelete(t *testing.T) {
	api := &fakeAPI{}
	store := newTestStore(t, api)

	if _, err := store.Add(context.Background(), testStation("tenali-100")); err != nil {
		t.Fatalf("add: %v", err)
	}

	updated := testStation("tenali-100")
	updated.Name = "Renamed"
	if err := store.Update(context.Background(), updated); err != nil {
		t.Fatalf("update: %v", err)
	}
	station, ok := store.GetByID("tenali-100")
	if !ok || station.Name != "Renamed" {
		t.Fatalf("station = %+v, want renamed", station)
	}

	if err := store.Delete(context.Background(), "tenali-100"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := store.GetByID("tenali-100"); ok {
		t.Fatal("deleted station still present")
	}

	if err := store.Delete(context.Background(), "tenali-100"); err == nil {
		t.Fatal("second delete must fail")
	}
}

func TestStoreResetRestoresDemoData(t *testing.T) {
	api := &fakeAPI{}
	store := newTestStore(t, api)

	if _, err := store.Add(context.Background(), testStation("tenali-100")); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := store.Reset(context.Background()); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, ok := store.GetByID("tenali-100"); ok {
		t.Error("reset must drop previous records")
	}
	if _, ok := store.GetByID("demo-001"); !ok {
		t.Error("reset must load the demo dataset")
	}
}

func TestStoreDiscardsStaleFetch(t *testing.T) {
	api := &fakeAPI{stations: []Station{testStation("fresh")}}
	store := newTestStore(t, api)

	// Simulate an older fetch finishing after a newer one was applied:
	// the newest generation is already applied, so a response carrying an
	// older generation must not replace the collection.
	if err := store.Fetch(context.Background()); err != nil {
		t.Fatalf("fetch: %v", err)
	}

	store.mu.Lock()
	store.appliedGen = store.nextGen + 5
	store.mu.Unlock()

	api.mu.Lock()
	api.stations = []Station{testStation("stale")}
	api.mu.Unlock()

	if err := store.Fetch(context.Background()); err != nil {
		t.Fatalf("stale fetch: %v", err)
	}
	if _, ok := store.GetByID("fresh"); !ok {
		t.Fatal("stale response replaced the fresher collection")
	}
}

func TestStoreViewModeAndFilters(t *testing.T) {
	store := NewStore(NewClient("http://unused", nil), nil)

	if store.ViewMode() != ViewCard {
		t.Errorf("default view = %q, want card", store.ViewMode())
	}
	store.SetViewMode(ViewTable)
	if store.ViewMode() != ViewTable {
		t.Errorf("view = %q, want table", store.ViewMode())
	}

	store.SetSearchQuery("tenali")
	if store.Filters().SearchQuery != "tenali" {
		t.Errorf("search query = %q", store.Filters().SearchQuery)
	}

	filters := store.Filters()
	if filters.PowerOutputMin != 0 || filters.PowerOutputMax != 500 {
		t.Errorf("default power range = [%v,%v], want [0,500]", filters.PowerOutputMin, filters.PowerOutputMax)
	}
}
