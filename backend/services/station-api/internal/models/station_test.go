package models

import (
	"encoding/json"
	"testing"
)

func TestNumericUnmarshal(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		want   float64
		finite bool
	}{
		{name: "plain number", input: `12.5`, want: 12.5, finite: true},
		{name: "negative number", input: `-80.64`, want: -80.64, finite: true},
		{name: "numeric string", input: `"16.2430"`, want: 16.243, finite: true},
		{name: "integer string", input: `"50"`, want: 50, finite: true},
		{name: "garbage string", input: `"not-a-number"`, finite: false},
		{name: "null", input: `null`, finite: false},
		{name: "empty string", input: `""`, finite: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var n Numeric
			if err := json.Unmarshal([]byte(tc.input), &n); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if n.Finite() != tc.finite {
				t.Fatalf("Finite() = %v, want %v", n.Finite(), tc.finite)
			}
			if tc.finite && n.Float64() != tc.want {
				t.Fatalf("Float64() = %v, want %v", n.Float64(), tc.want)
			}
		})
	}
}

func TestNumericUnmarshalInsideStruct(t *testing.T) {
	var payload struct {
		Latitude    *Numeric `json:"latitude"`
		PowerOutput *Numeric `json:"powerOutput"`
	}
	raw := `{"latitude": "16.5062", "powerOutput": 120}`
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Latitude == nil || payload.Latitude.Float64() != 16.5062 {
		t.Fatalf("latitude = %v, want 16.5062", payload.Latitude)
	}
	if payload.PowerOutput == nil || payload.PowerOutput.Float64() != 120 {
		t.Fatalf("powerOutput = %v, want 120", payload.PowerOutput)
	}
}

func TestStationStatusValid(t *testing.T) {
	for _, status := range []StationStatus{StatusActive, StatusInactive, StatusMaintenance} {
		if !status.Valid() {
			t.Errorf("status %q should be valid", status)
		}
	}
	if StationStatus("broken").Valid() {
		t.Error("unknown status should be invalid")
	}
	if StationStatus("").Valid() {
		t.Error("empty status should be invalid")
	}
}

func TestConnectorTypeValid(t *testing.T) {
	for _, connector := range ConnectorTypes {
		if !connector.Valid() {
			t.Errorf("connector %q should be valid", connector)
		}
	}
	if ConnectorType("USB-C").Valid() {
		t.Error("unknown connector should be invalid")
	}
}
