package stationstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTPDoer defines the http.Client interface subset used by the client.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// APIError carries the status code and error message of a failed call.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("station api: %s (status %d)", e.Message, e.Status)
}

// Client is a thin HTTP client for the station API.
type Client struct {
	baseURL string
	client  HTTPDoer
}

// NewClient builds an API client. A nil doer falls back to a default
// http.Client with a request timeout.
func NewClient(baseURL string, doer HTTPDoer) *Client {
	if doer == nil {
		doer = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  doer,
	}
}

// List fetches the full station collection.
func (c *Client) List(ctx context.Context) ([]Station, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/stations", nil)
	if err != nil {
		return nil, err
	}
	var stations []Station
	if err := json.Unmarshal(body, &stations); err != nil {
		return nil, fmt.Errorf("station api: decode list: %w", err)
	}
	return stations, nil
}

// Create submits a new station and returns the stored record, including
// its storage-assigned identifier.
func (c *Client) Create(ctx context.Context, station Station) (*Station, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/stations", station)
	if err != nil {
		return nil, err
	}
	var created Station
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("station api: decode create response: %w", err)
	}
	return &created, nil
}

// Update replaces the station with the given id. The storage identifier
// is dropped from the payload; the server strips it anyway.
func (c *Client) Update(ctx context.Context, station Station) (*Station, error) {
	station.StorageID = 0
	body, err := c.do(ctx, http.MethodPut, "/api/stations/"+station.ID, station)
	if err != nil {
		return nil, err
	}
	var updated Station
	if err := json.Unmarshal(body, &updated); err != nil {
		return nil, fmt.Errorf("station api: decode update response: %w", err)
	}
	return &updated, nil
}

// Delete removes the station with the given id.
func (c *Client) Delete(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/stations/"+id, nil)
	return err
}

// Reset wipes the collection and restores the demo dataset.
func (c *Client) Reset(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/api/stations/reset", nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 300 {
		return nil, &APIError{Status: resp.StatusCode, Message: errorMessage(body, resp.StatusCode)}
	}
	return body, nil
}

func errorMessage(body []byte, status int) string {
	var parsed struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error != "" {
		return parsed.Error
	}
	return fmt.Sprintf("unexpected status %d", status)
}
