package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const DefaultTimeout = 15 * time.Second

// Client fetches the listings feed.
type Client struct {
	URL        string
	HTTPClient *http.Client
}

// NewClient creates a feed client for url.
func NewClient(url string) *Client {
	return &Client{
		URL: url,
		HTTPClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

// Fetch downloads and decodes the feed. The catalog is only returned when
// the whole document decodes.
func (c *Client) Fetch(ctx context.Context) (Catalog, error) {
	start := time.Now()
	slog.Debug("feed_fetch_start", "url", c.URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Catalog{}, fmt.Errorf("failed to read feed: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Catalog{}, fmt.Errorf("feed request failed with status %d", resp.StatusCode)
	}

	var catalog Catalog
	if err := json.Unmarshal(body, &catalog); err != nil {
		return Catalog{}, fmt.Errorf("failed to decode feed: %w", err)
	}

	slog.Info("feed_fetch_done",
		"movies", len(catalog.Movies),
		"bytes", len(body),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return catalog, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient == nil {
		return http.DefaultClient
	}
	return c.HTTPClient
}
