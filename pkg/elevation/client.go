// Package elevation looks up ground elevation for a coordinate pair through
// the Open-Elevation lookup API.
package elevation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	defaultBaseURL = "https://api.open-elevation.com/api/v1/lookup"
	defaultTimeout = 10 * time.Second
	defaultRetries = 2
	retryDelay     = 500 * time.Millisecond
)

// Client represents a client for the Open-Elevation API
type Client struct {
	httpClient *http.Client
	baseURL    string
	retries    int
}

// NewClient creates a new client with default timeout and retry settings
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		baseURL: defaultBaseURL,
		retries: defaultRetries,
	}
}

// NewClientWithHTTPClient creates a new client with a custom HTTP client
func NewClientWithHTTPClient(httpClient *http.Client) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
		retries:    defaultRetries,
	}
}

// SetBaseURL sets the base URL for the API (useful for testing)
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// SetRetries sets how many times a failed request is retried. Only transport
// errors and 5xx answers are retried.
func (c *Client) SetRetries(retries int) {
	if retries < 0 {
		retries = 0
	}
	c.retries = retries
}

type lookupResult struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Elevation float64 `json:"elevation"`
}

type lookupResponse struct {
	Results []lookupResult `json:"results"`
}

// Lookup returns the ground elevation in meters at the given coordinates
func (c *Client) Lookup(ctx context.Context, lat, lon float64) (float64, error) {
	reqURL, err := c.buildURL(lat, lon)
	if err != nil {
		return 0, fmt.Errorf("failed to build URL: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return 0, ctx.Err()
			case <-time.After(retryDelay):
			}
		}

		elev, retry, err := c.lookupOnce(ctx, reqURL)
		if err == nil {
			return elev, nil
		}
		if !retry {
			return 0, err
		}
		lastErr = err
	}

	return 0, lastErr
}

// lookupOnce performs a single request. The second return value reports
// whether the error is worth retrying.
func (c *Client) lookupOnce(ctx context.Context, reqURL string) (float64, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, true, fmt.Errorf("failed to perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
		return 0, resp.StatusCode >= 500, apiErr
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, true, fmt.Errorf("failed to read response body: %w", err)
	}

	var lookup lookupResponse
	if err := json.Unmarshal(body, &lookup); err != nil {
		return 0, false, &DecodeError{Err: err}
	}
	if len(lookup.Results) == 0 {
		return 0, false, ErrNoResults
	}

	return lookup.Results[0].Elevation, false, nil
}

// buildURL constructs the lookup URL with the locations query parameter
func (c *Client) buildURL(lat, lon float64) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}

	query := u.Query()
	query.Set("locations", fmt.Sprintf("%s,%s", formatFloat(lat), formatFloat(lon)))
	u.RawQuery = query.Encode()
	return u.String(), nil
}

// formatFloat formats a float64 to a string with appropriate precision
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
