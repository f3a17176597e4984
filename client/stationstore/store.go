package stationstore

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Store is the single authoritative owner of the client-side station
// collection and the active filter set. Every mutating operation calls
// the API and then refetches the full collection, so the local view
// matches server state after each round trip.
//
// Overlapping fetches are sequenced with a generation token: each fetch
// takes the next generation number, and a response belonging to an older
// generation than the newest applied one is discarded instead of
// clobbering fresher data.
type Store struct {
	api    *Client
	logger *zap.Logger

	mu            sync.Mutex
	stations      []Station
	filters       Filters
	viewMode      ViewMode
	loading       int
	nextGen       uint64
	appliedGen    uint64
	notifications []Notification
}

// NewStore builds a store around the given API client.
func NewStore(api *Client, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		api:      api,
		logger:   logger,
		stations: []Station{},
		filters:  DefaultFilters(),
		viewMode: ViewCard,
	}
}

// Fetch retrieves the full station list and replaces the in-memory
// collection. A response that lost the race to a newer fetch is dropped.
func (s *Store) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.nextGen++
	gen := s.nextGen
	s.loading++
	s.mu.Unlock()

	stations, err := s.api.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading--

	if err != nil {
		s.notifications = append(s.notifications, Notification{
			Message:  "Failed to fetch stations: " + err.Error(),
			Severity: SeverityError,
		})
		s.logger.Warn("fetch stations failed", zap.Error(err))
		return err
	}

	if gen < s.appliedGen {
		s.logger.Debug("discarding stale fetch response", zap.Uint64("gen", gen))
		return nil
	}
	s.appliedGen = gen
	s.stations = stations
	return nil
}

// Loading reports whether any fetch is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading > 0
}

// Stations returns a copy of the full in-memory collection.
func (s *Store) Stations() []Station {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Station(nil), s.stations...)
}

// Filtered derives the filtered view from the current collection and
// filter set. It is recomputed on every call and never cached.
func (s *Store) Filtered() []Station {
	s.mu.Lock()
	stations := append([]Station(nil), s.stations...)
	filters := s.filters
	s.mu.Unlock()
	return FilterStations(stations, filters)
}

// Filters returns the active filter set.
func (s *Store) Filters() Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// SetFilters replaces the active filter set.
func (s *Store) SetFilters(filters Filters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = filters
}

// SetSearchQuery updates only the search query part of the filter set.
func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.SearchQuery = query
}

// ViewMode returns the active presentation mode.
func (s *Store) ViewMode() ViewMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewMode
}

// SetViewMode switches the presentation mode.
func (s *Store) SetViewMode(mode ViewMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewMode = mode
}

// Add creates a station through the API, refetches the collection and
// records a notification. The error is returned so form handlers can
// react to the failure themselves.
func (s *Store) Add(ctx context.Context, station Station) (*Station, error) {
	created, err := s.api.Create(ctx, station)
	if err != nil {
		s.notify("Failed to add station: "+err.Error(), SeverityError)
		return nil, err
	}

	if err := s.Fetch(ctx); err != nil {
		return created, err
	}
	s.notify(fmt.Sprintf("Station %q added successfully!", created.Name), SeveritySuccess)
	return created, nil
}

// Update replaces a station through the API and refetches.
func (s *Store) Update(ctx context.Context, station Station) error {
	if _, err := s.api.Update(ctx, station); err != nil {
		s.notify("Failed to update station: "+err.Error(), SeverityError)
		return err
	}

	if err := s.Fetch(ctx); err != nil {
		return err
	}
	s.notify(fmt.Sprintf("Station %q updated successfully!", station.Name), SeveritySuccess)
	return nil
}

// Delete removes a station through the API and refetches.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, id); err != nil {
		s.notify("Failed to delete station: "+err.Error(), SeverityError)
		return err
	}

	if err := s.Fetch(ctx); err != nil {
		return err
	}
	s.notify("Station deleted successfully!", SeveritySuccess)
	return nil
}

// Reset restores the server's demo dataset and refetches.
func (s *Store) Reset(ctx context.Context) error {
	if err := s.api.Reset(ctx); err != nil {
		s.notify("Failed to reset stations: "+err.Error(), SeverityError)
		return err
	}

	if err := s.Fetch(ctx); err != nil {
		return err
	}
	s.notify("Mock data reset successfully!", SeveritySuccess)
	return nil
}

// GetByID scans the in-memory collection. The second return value is
// false when no station matches; callers render their own not-found state.
func (s *Store) GetByID(id string) (Station, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, station := range s.stations {
		if station.ID == id {
			return station, true
		}
	}
	return Station{}, false
}

// DrainNotifications returns accumulated notifications and clears them.
func (s *Store) DrainNotifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	drained := s.notifications
	s.notifications = nil
	return drained
}

func (s *Store) notify(message string, severity Severity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, Notification{Message: message, Severity: severity})
}
