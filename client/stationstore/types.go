// Package stationstore is the client-side state store for the station
// API. It owns the in-memory station collection and the active filter
// set, mediates every API call, and derives the filtered view as a pure
// function of its inputs.
package stationstore

import (
	"bytes"
	"math"
	"strconv"
	"time"
)

// Station mirrors the station API's wire format. Numeric fields decode
// through Numeric so records stored as strings still coerce to numbers,
// matching the defensive parsing the API itself performs.
type Station struct {
	StorageID      int64     `json:"_id,omitempty"`
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	City           string    `json:"city"`
	State          string    `json:"state"`
	ZipCode        string    `json:"zipCode"`
	Latitude       Numeric   `json:"latitude"`
	Longitude      Numeric   `json:"longitude"`
	PowerOutput    Numeric   `json:"powerOutput"`
	Status         string    `json:"status"`
	ConnectorTypes []string  `json:"connectorTypes"`
	CreatedAt      time.Time `json:"createdAt,omitempty"`
	LastUpdated    time.Time `json:"lastUpdated,omitempty"`
}

// Numeric accepts a JSON number or a quoted numeric string; anything
// unparseable becomes NaN rather than failing the whole document.
type Numeric float64

func (f *Numeric) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = Numeric(math.NaN())
		return nil
	}
	raw := string(data)
	if raw[0] == '"' {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			*f = Numeric(math.NaN())
			return nil
		}
		raw = unquoted
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*f = Numeric(math.NaN())
		return nil
	}
	*f = Numeric(parsed)
	return nil
}

func (f Numeric) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(v, 'f', -1, 64)), nil
}

// ViewMode selects how the presentation layer renders the filtered view.
type ViewMode string

const (
	ViewCard  ViewMode = "card"
	ViewTable ViewMode = "table"
	ViewMap   ViewMode = "map"
)

// Severity classifies a notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is a transient user-facing message recorded by the store
// after each mutation or fetch failure.
type Notification struct {
	Message  string
	Severity Severity
}
