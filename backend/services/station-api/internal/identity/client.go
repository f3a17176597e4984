// Package identity talks to the external identity provider that holds
// credentialed accounts. The station API only consumes its lookup call.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrAccountNotFound is the provider's normal "no such account" outcome.
var ErrAccountNotFound = errors.New("identity: account not found")

// HTTPDoer defines the http.Client interface subset used by the client.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Account is the provider's view of a registered account.
type Account struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// Client wraps the identity provider's HTTP surface.
type Client struct {
	baseURL string
	client  HTTPDoer
}

// NewClient builds a provider client. A nil doer falls back to a default
// http.Client with a request timeout.
func NewClient(baseURL string, doer HTTPDoer) *Client {
	if doer == nil {
		doer = &http.Client{Timeout: 5 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  doer,
	}
}

// LookupByEmail asks the provider for the account registered under email.
// A 404 from the provider maps to ErrAccountNotFound; any other non-2xx
// response is an error.
func (c *Client) LookupByEmail(ctx context.Context, email string) (*Account, error) {
	endpoint := fmt.Sprintf("%s/accounts/lookup?email=%s", c.baseURL, url.QueryEscape(email))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity: lookup request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrAccountNotFound
	case resp.StatusCode >= 300:
		return nil, fmt.Errorf("identity: lookup returned status %d", resp.StatusCode)
	}

	var account Account
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		return nil, fmt.Errorf("identity: decode lookup response: %w", err)
	}
	return &account, nil
}
