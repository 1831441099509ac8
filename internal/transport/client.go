// Package transport provides the shared HTTP plumbing for outbound
// service calls.
package transport

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/cuebox/stagehand/pkg/constants"
	"github.com/cuebox/stagehand/pkg/errors"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = constants.DefaultHTTPTimeout

// Client provides HTTP client functionality for JSON endpoints.
type Client struct {
	http *http.Client
}

// New creates a new transport client with the default timeout.
func New() *Client {
	return &Client{
		http: &http.Client{Timeout: DefaultHTTPTimeout},
	}
}

// NewWithHTTPClient creates a transport client around an existing
// http.Client. A nil client falls back to the default.
func NewWithHTTPClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		return New()
	}
	return &Client{http: httpClient}
}

// Do performs an HTTP request with common headers applied.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Accept", "application/json")
	if req.Method == http.MethodPost || req.Method == http.MethodPut || req.Method == http.MethodPatch {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.http.Do(req)
}

// GetJSON performs a GET request and decodes the JSON response into v.
// Non-200 responses and undecodable bodies return an APIError.
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &errors.APIError{
			Endpoint: url,
			Message:  "invalid request",
			Err:      err,
		}
	}

	resp, err := c.Do(req)
	if err != nil {
		return &errors.APIError{
			Endpoint: url,
			Message:  "request failed",
			Err:      err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return errors.NewAPIError(url, resp.StatusCode, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &errors.APIError{
			Endpoint: url,
			Message:  "unparsable response body",
			Err:      err,
		}
	}

	return nil
}
