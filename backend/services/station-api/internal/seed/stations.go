// Package seed supplies the fixed demo dataset used by the reset endpoint
// and by first-boot seeding. The records mirror the demo cities of the
// hosted dataset (Tenali, Vijayawada, Guntur).
package seed

import "evcharge/backend/services/station-api/internal/models"

// Stations returns the demo dataset. Timestamps are left zero; callers
// stamp them at insert time.
func Stations() []models.Station {
	return []models.Station{
		{
			ID: "tenali-001", Name: "Main Bazaar Charging Hub", Address: "12 Main Bazaar Rd",
			City: "Tenali", State: "Andhra Pradesh", ZipCode: "522202",
			Latitude: 16.2435, Longitude: 80.6505, PowerOutput: 120,
			Status:         models.StatusActive,
			ConnectorTypes: []models.ConnectorType{models.ConnectorCCS2, models.ConnectorType2},
		},
		{
			ID: "tenali-002", Name: "Bus Stand EV Point", Address: "3 Bus Stand Area",
			City: "Tenali", State: "Andhra Pradesh", ZipCode: "522201",
			Latitude: 16.2425, Longitude: 80.6495, PowerOutput: 50,
			Status:         models.StatusActive,
			ConnectorTypes: []models.ConnectorType{models.ConnectorCHAdeMO, models.ConnectorType1},
		},
		{
			ID: "tenali-003", Name: "Railway Station Fast Charger", Address: "1 Railway Station Rd",
			City: "Tenali", State: "Andhra Pradesh", ZipCode: "522202",
			Latitude: 16.2440, Longitude: 80.6510, PowerOutput: 150,
			Status:         models.StatusMaintenance,
			ConnectorTypes: []models.ConnectorType{models.ConnectorCCS1, models.ConnectorCCS2},
		},
		{
			ID: "tenali-004", Name: "Kolakaluru Road Charger", Address: "88 Kolakaluru Rd",
			City: "Tenali", State: "Andhra Pradesh", ZipCode: "522201",
			Latitude: 16.2350, Longitude: 80.6700, PowerOutput: 22,
			Status:         models.StatusInactive,
			ConnectorTypes: []models.ConnectorType{models.ConnectorType2},
		},
		{
			ID: "vijayawada-001", Name: "MG Road Supercharge", Address: "45 MG Road",
			City: "Vijayawada", State: "Andhra Pradesh", ZipCode: "520001",
			Latitude: 16.5067, Longitude: 80.6485, PowerOutput: 250,
			Status:         models.StatusActive,
			ConnectorTypes: []models.ConnectorType{models.ConnectorTesla, models.ConnectorCCS2},
		},
		{
			ID: "vijayawada-002", Name: "Benz Circle Charging Plaza", Address: "7 Benz Circle",
			City: "Vijayawada", State: "Andhra Pradesh", ZipCode: "520010",
			Latitude: 16.5085, Longitude: 80.6520, PowerOutput: 180,
			Status:         models.StatusActive,
			ConnectorTypes: []models.ConnectorType{models.ConnectorCCS1, models.ConnectorCCS2, models.ConnectorCHAdeMO},
		},
		{
			ID: "vijayawada-003", Name: "Governorpet EV Station", Address: "19 Governorpet",
			City: "Vijayawada", State: "Andhra Pradesh", ZipCode: "520002",
			Latitude: 16.5055, Longitude: 80.6470, PowerOutput: 60,
			Status:         models.StatusInactive,
			ConnectorTypes: []models.ConnectorType{models.ConnectorType1, models.ConnectorType2},
		},
		{
			ID: "vijayawada-004", Name: "Gannavaram Road Outpost", Address: "210 Gannavaram Rd",
			City: "Vijayawada", State: "Andhra Pradesh", ZipCode: "520012",
			Latitude: 16.4900, Longitude: 80.6200, PowerOutput: 30,
			Status:         models.StatusMaintenance,
			ConnectorTypes: []models.ConnectorType{models.ConnectorType2},
		},
		{
			ID: "guntur-001", Name: "Brodipet Charging Center", Address: "5 Brodipet Main Rd",
			City: "Guntur", State: "Andhra Pradesh", ZipCode: "522002",
			Latitude: 16.3067, Longitude: 80.4365, PowerOutput: 100,
			Status:         models.StatusActive,
			ConnectorTypes: []models.ConnectorType{models.ConnectorCCS2, models.ConnectorCHAdeMO},
		},
		{
			ID: "guntur-002", Name: "Arundelpet EV Point", Address: "33 Arundelpet",
			City: "Guntur", State: "Andhra Pradesh", ZipCode: "522002",
			Latitude: 16.3030, Longitude: 80.4400, PowerOutput: 75,
			Status:         models.StatusActive,
			ConnectorTypes: []models.ConnectorType{models.ConnectorType2, models.ConnectorTesla},
		},
		{
			ID: "guntur-003", Name: "NH16 Highway Charger", Address: "NH16 Service Rd",
			City: "Guntur", State: "Andhra Pradesh", ZipCode: "522034",
			Latitude: 16.3300, Longitude: 80.4100, PowerOutput: 350,
			Status:         models.StatusActive,
			ConnectorTypes: []models.ConnectorType{models.ConnectorCCS1, models.ConnectorCCS2},
		},
		{
			ID: "guntur-004", Name: "Lakshmipuram Slow Charger", Address: "14 Lakshmipuram",
			City: "Guntur", State: "Andhra Pradesh", ZipCode: "522007",
			Latitude: 16.2990, Longitude: 80.4450, PowerOutput: 11,
			Status:         models.StatusInactive,
			ConnectorTypes: []models.ConnectorType{models.ConnectorType1},
		},
	}
}
