// Package api is a thin client for the remote calendar conversion service.
//
// Each operation issues exactly one GET request and decodes the JSON body into
// CalendarDate or CalendarMonth. Nothing is validated, retried or cached
// locally: failures from the network or the service are returned as-is.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// DefaultBaseURL is the API base used when nothing else is configured.
// Set it at build time with:
//
//	go build -ldflags "-X github.com/smokyabdulrahman/hijri-calendar/internal/api.DefaultBaseURL=https://calendar.example.com"
var DefaultBaseURL = "http://localhost:3000"

// Client communicates with the calendar API.
type Client struct {
	httpClient *http.Client
	// BaseURL is the API base URL, without the /api/calendar suffix.
	// Exported for testing with httptest.
	BaseURL string
}

// NewClient creates a client for baseURL. An empty baseURL falls back to
// DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

// FetchCalendarMonth fetches the listing for year/month in the given calendar.
func (c *Client) FetchCalendarMonth(ctx context.Context, year, month int, isHijri bool) (*CalendarMonth, error) {
	params := url.Values{}
	params.Set("year", strconv.Itoa(year))
	params.Set("month", strconv.Itoa(month))
	params.Set("calendar", SystemName(isHijri))

	var out CalendarMonth
	if err := c.get(ctx, "/api/calendar/month", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ConvertDate converts one explicit date into both calendars.
func (c *Client) ConvertDate(ctx context.Context, req ConvertRequest) (*CalendarDate, error) {
	params := url.Values{}
	params.Set("year", strconv.Itoa(req.Year))
	params.Set("month", strconv.Itoa(req.Month))
	params.Set("day", strconv.Itoa(req.Day))
	params.Set("from", req.Source())

	var out CalendarDate
	if err := c.get(ctx, "/api/calendar/convert", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCurrentDate returns today in both calendars.
func (c *Client) GetCurrentDate(ctx context.Context) (*CalendarDate, error) {
	var out CalendarDate
	if err := c.get(ctx, "/api/calendar/today", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	reqURL := c.BaseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	log.Debug().
		Str("url", reqURL).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("calendar api request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode API response: %w", err)
	}
	return nil
}
