package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"evcharge/backend/services/station-api/internal/models"
)

// ErrStationNotFound represents missing station rows.
var ErrStationNotFound = errors.New("station not found")

const stationColumns = `storage_id, station_id, name, address, city, state, zip_code,
	latitude, longitude, power_output, status, connector_types, created_at, last_updated`

// StationRepository handles CRUD for the stations table.
type StationRepository struct {
	db *sql.DB
}

// NewStationRepository returns repository instance.
func NewStationRepository(db *sql.DB) *StationRepository {
	return &StationRepository{db: db}
}

// List returns every persisted station.
func (r *StationRepository) List(ctx context.Context) ([]models.Station, error) {
	query := fmt.Sprintf(`SELECT %s FROM stations ORDER BY storage_id`, stationColumns)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stations := make([]models.Station, 0)
	for rows.Next() {
		station, err := scanStation(rows)
		if err != nil {
			return nil, err
		}
		stations = append(stations, *station)
	}
	return stations, rows.Err()
}

// GetByStationID fetches a station by its client-generated identifier.
func (r *StationRepository) GetByStationID(ctx context.Context, id string) (*models.Station, error) {
	query := fmt.Sprintf(`SELECT %s FROM stations WHERE station_id = $1 LIMIT 1`, stationColumns)
	station, err := scanStation(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStationNotFound
		}
		return nil, err
	}
	return station, nil
}

// Insert persists a new station and fills in its storage identifier.
func (r *StationRepository) Insert(ctx context.Context, station *models.Station) error {
	connectors, err := json.Marshal(station.ConnectorTypes)
	if err != nil {
		return err
	}
	const query = `
		INSERT INTO stations (station_id, name, address, city, state, zip_code,
			latitude, longitude, power_output, status, connector_types, created_at, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING storage_id
	`
	return r.db.QueryRowContext(ctx, query,
		station.ID, station.Name, station.Address, station.City, station.State, station.ZipCode,
		station.Latitude, station.Longitude, station.PowerOutput, string(station.Status),
		connectors, station.CreatedAt, station.LastUpdated,
	).Scan(&station.StorageID)
}

// Replace performs a full overwrite of the station matched by its
// client-generated identifier. The storage identifier and created_at
// column are left untouched.
func (r *StationRepository) Replace(ctx context.Context, station *models.Station) error {
	connectors, err := json.Marshal(station.ConnectorTypes)
	if err != nil {
		return err
	}
	const query = `
		UPDATE stations SET
			name = $2, address = $3, city = $4, state = $5, zip_code = $6,
			latitude = $7, longitude = $8, power_output = $9, status = $10,
			connector_types = $11, last_updated = $12
		WHERE station_id = $1
	`
	result, err := r.db.ExecContext(ctx, query,
		station.ID, station.Name, station.Address, station.City, station.State, station.ZipCode,
		station.Latitude, station.Longitude, station.PowerOutput, string(station.Status),
		connectors, station.LastUpdated,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrStationNotFound
	}
	return nil
}

// Delete removes a station. Returns ErrStationNotFound when nothing matched.
func (r *StationRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM stations WHERE station_id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrStationNotFound
	}
	return nil
}

// DeleteAll clears the stations table.
func (r *StationRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM stations`)
	return err
}

// InsertMany persists a batch of stations one by one inside a transaction.
func (r *StationRepository) InsertMany(ctx context.Context, stations []models.Station) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	const query = `
		INSERT INTO stations (station_id, name, address, city, state, zip_code,
			latitude, longitude, power_output, status, connector_types, created_at, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	for _, station := range stations {
		connectors, err := json.Marshal(station.ConnectorTypes)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, query,
			station.ID, station.Name, station.Address, station.City, station.State, station.ZipCode,
			station.Latitude, station.Longitude, station.PowerOutput, string(station.Status),
			connectors, station.CreatedAt, station.LastUpdated,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Count returns the number of persisted stations.
func (r *StationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM stations`).Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStation(row rowScanner) (*models.Station, error) {
	var station models.Station
	var status string
	var connectors []byte
	if err := row.Scan(
		&station.StorageID, &station.ID, &station.Name, &station.Address, &station.City,
		&station.State, &station.ZipCode, &station.Latitude, &station.Longitude,
		&station.PowerOutput, &status, &connectors, &station.CreatedAt, &station.LastUpdated,
	); err != nil {
		return nil, err
	}
	station.Status = models.StationStatus(status)
	if err := json.Unmarshal(connectors, &station.ConnectorTypes); err != nil {
		return nil, err
	}
	return &station, nil
}
