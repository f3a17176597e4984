package models

import (
	"bytes"
	"math"
	"strconv"
	"time"
)

// StationStatus is the operational state of a charging station.
type StationStatus string

const (
	StatusActive      StationStatus = "active"
	StatusInactive    StationStatus = "inactive"
	StatusMaintenance StationStatus = "maintenance"
)

// Valid reports whether the status is one of the known values.
func (s StationStatus) Valid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusMaintenance:
		return true
	}
	return false
}

// ConnectorType is a physical charging-interface standard.
type ConnectorType string

const (
	ConnectorCCS1    ConnectorType = "CCS1"
	ConnectorCCS2    ConnectorType = "CCS2"
	ConnectorCHAdeMO ConnectorType = "CHAdeMO"
	ConnectorType1   ConnectorType = "Type1"
	ConnectorType2   ConnectorType = "Type2"
	ConnectorTesla   ConnectorType = "Tesla"
)

// ConnectorTypes lists every supported connector standard.
var ConnectorTypes = []ConnectorType{
	ConnectorCCS1,
	ConnectorCCS2,
	ConnectorCHAdeMO,
	ConnectorType1,
	ConnectorType2,
	ConnectorTesla,
}

// Valid reports whether the connector type is supported.
func (c ConnectorType) Valid() bool {
	for _, known := range ConnectorTypes {
		if c == known {
			return true
		}
	}
	return false
}

// Station is a single charging-point record. StorageID is assigned by the
// database on insert and exposed as "_id" to preserve the wire contract;
// ID is the client-generated identifier and never changes after creation.
type Station struct {
	StorageID      int64           `json:"_id,omitempty"`
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Address        string          `json:"address"`
	City           string          `json:"city"`
	State          string          `json:"state"`
	ZipCode        string          `json:"zipCode"`
	Latitude       float64         `json:"latitude"`
	Longitude      float64         `json:"longitude"`
	PowerOutput    float64         `json:"powerOutput"`
	Status         StationStatus   `json:"status"`
	ConnectorTypes []ConnectorType `json:"connectorTypes"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastUpdated    time.Time       `json:"lastUpdated"`
}

// Numeric is a float64 that tolerates JSON numbers arriving as strings.
// Values that cannot be parsed decode to NaN instead of failing the whole
// payload, so validation can reject them with a field-specific message.
type Numeric float64

// UnmarshalJSON accepts a JSON number, a quoted numeric string, or null.
func (n *Numeric) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = Numeric(math.NaN())
		return nil
	}
	raw := string(data)
	if raw[0] == '"' {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			*n = Numeric(math.NaN())
			return nil
		}
		raw = unquoted
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*n = Numeric(math.NaN())
		return nil
	}
	*n = Numeric(parsed)
	return nil
}

// Float64 returns the underlying value.
func (n Numeric) Float64() float64 { return float64(n) }

// Finite reports whether the value parsed to a usable number.
func (n Numeric) Finite() bool {
	f := float64(n)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
