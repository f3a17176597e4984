package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"evcharge/backend/services/station-api/internal/models"
	"evcharge/backend/services/station-api/internal/repository"
	"evcharge/backend/services/station-api/internal/seed"
)

// StationRepository defines the storage contract used by the service.
type StationRepository interface {
	List(ctx context.Context) ([]models.Station, error)
	GetByStationID(ctx context.Context, id string) (*models.Station, error)
	Insert(ctx context.Context, station *models.Station) error
	Replace(ctx context.Context, station *models.Station) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
	InsertMany(ctx context.Context, stations []models.Station) error
	Count(ctx context.Context) (int64, error)
}

// StationInput is the inbound station payload. Numeric fields tolerate
// strings so that clients persisting numbers as text still round-trip.
// Any client-supplied storage identifier is deliberately absent: it is
// stripped before the record reaches the store.
type StationInput struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Address        string                 `json:"address"`
	City           string                 `json:"city"`
	State          string                 `json:"state"`
	ZipCode        string                 `json:"zipCode"`
	Latitude       *models.Numeric        `json:"latitude"`
	Longitude      *models.Numeric        `json:"longitude"`
	PowerOutput    *models.Numeric        `json:"powerOutput"`
	Status         models.StationStatus   `json:"status"`
	ConnectorTypes []models.ConnectorType `json:"connectorTypes"`
}

// StationService validates inbound payloads and translates them into
// persistence operations. It owns no business logic beyond field checks.
type StationService struct {
	repo   StationRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewStationService builds StationService.
func NewStationService(repo StationRepository, logger *zap.Logger) *StationService {
	return &StationService{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// List returns all persisted stations.
func (s *StationService) List(ctx context.Context) ([]models.Station, error) {
	return s.repo.List(ctx)
}

// Get fetches a single station by its identifier.
func (s *StationService) Get(ctx context.Context, id string) (*models.Station, error) {
	station, err := s.repo.GetByStationID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStationNotFound) {
			return nil, &NotFoundError{Reason: "Station not found"}
		}
		return nil, err
	}
	return station, nil
}

// Create validates the payload, rejects duplicate identifiers, stamps
// timestamps and persists the station. The existence check and the insert
// are two separate store round trips, same as the original contract.
func (s *StationService) Create(ctx context.Context, input StationInput) (*models.Station, error) {
	station, err := validateStation(input)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByStationID(ctx, station.ID); err == nil {
		return nil, &ConflictError{Reason: "Station with this ID already exists"}
	} else if !errors.Is(err, repository.ErrStationNotFound) {
		return nil, err
	}

	now := s.now()
	station.CreatedAt = now
	station.LastUpdated = now

	if err := s.repo.Insert(ctx, station); err != nil {
		return nil, err
	}

	s.logger.Info("station created", zap.String("station_id", station.ID), zap.String("city", station.City))
	return station, nil
}

// Update validates the payload and performs a full replace of the matched
// record, refreshing last_updated and preserving id and created_at.
func (s *StationService) Update(ctx context.Context, id string, input StationInput) (*models.Station, error) {
	station, err := validateStation(input)
	if err != nil {
		return nil, err
	}
	// The path parameter is authoritative; whatever id the payload carries
	// is ignored, along with any storage identifier.
	station.ID = id

	existing, err := s.repo.GetByStationID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStationNotFound) {
			return nil, &NotFoundError{Reason: "Station not found"}
		}
		return nil, err
	}

	station.StorageID = existing.StorageID
	station.CreatedAt = existing.CreatedAt
	station.LastUpdated = s.now()

	if err := s.repo.Replace(ctx, station); err != nil {
		if errors.Is(err, repository.ErrStationNotFound) {
			return nil, &NotFoundError{Reason: "Station not found"}
		}
		return nil, err
	}

	s.logger.Info("station updated", zap.String("station_id", station.ID))
	return station, nil
}

// Delete removes a station unconditionally. Hard delete, no tombstone.
func (s *StationService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrStationNotFound) {
			return &NotFoundError{Reason: "Station not found"}
		}
		return err
	}
	s.logger.Info("station deleted", zap.String("station_id", id))
	return nil
}

// Reset clears the collection and reinserts the demo dataset.
func (s *StationService) Reset(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.repo.InsertMany(ctx, s.demoStations()); err != nil {
		return err
	}
	s.logger.Info("station collection reset to demo dataset")
	return nil
}

// SeedIfEmpty inserts the demo dataset on first boot.
func (s *StationService) SeedIfEmpty(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if err := s.repo.InsertMany(ctx, s.demoStations()); err != nil {
		return err
	}
	s.logger.Info("seeded empty station collection with demo dataset")
	return nil
}

func (s *StationService) demoStations() []models.Station {
	stations := seed.Stations()
	now := s.now()
	for i := range stations {
		stations[i].CreatedAt = now
		stations[i].LastUpdated = now
	}
	return stations
}

func validateStation(input StationInput) (*models.Station, error) {
	if input.Name == "" || input.Address == "" || input.City == "" ||
		input.State == "" || input.ZipCode == "" {
		return nil, &ValidationError{Reason: "Required fields are missing"}
	}
	if input.ID == "" {
		return nil, &ValidationError{Reason: "Station id is required"}
	}

	if input.Latitude == nil || input.Longitude == nil ||
		!input.Latitude.Finite() || !input.Longitude.Finite() {
		return nil, &ValidationError{Reason: "Invalid latitude or longitude"}
	}
	if input.PowerOutput == nil || !input.PowerOutput.Finite() || input.PowerOutput.Float64() <= 0 {
		return nil, &ValidationError{Reason: "Invalid power output"}
	}

	status := input.Status
	if status == "" {
		status = models.StatusInactive
	}
	if !status.Valid() {
		return nil, &ValidationError{Reason: fmt.Sprintf("Invalid status %q", input.Status)}
	}

	for _, connector := range input.ConnectorTypes {
		if !connector.Valid() {
			return nil, &ValidationError{Reason: fmt.Sprintf("Invalid connector type %q", connector)}
		}
	}
	connectors := input.ConnectorTypes
	if connectors == nil {
		connectors = []models.ConnectorType{}
	}

	return &models.Station{
		ID:             input.ID,
		Name:           input.Name,
		Address:        input.Address,
		City:           input.City,
		State:          input.State,
		ZipCode:        input.ZipCode,
		Latitude:       input.Latitude.Float64(),
		Longitude:      input.Longitude.Float64(),
		PowerOutput:    input.PowerOutput.Float64(),
		Status:         status,
		ConnectorTypes: connectors,
	}, nil
}
