package timetable

import (
	"fmt"
	"net/http"
	"time"
)

// Client downloads published schedule documents over HTTP.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new schedule client.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Get fetches the given URL and returns the HTTP response.
func (c *Client) Get(url string) (*http.Response, error) {
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}

	// Some intranet servers refuse requests without a browser UA.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code %d when fetching %s", resp.StatusCode, url)
	}

	return resp, nil
}

// FetchTimetable downloads and parses the schedule document at the
// given URL. Recently parsed datasets are served from the disk cache.
func (c *Client) FetchTimetable(url string) (*Dataset, error) {
	if cached, ok := readCache(url); ok {
		return cached, nil
	}

	resp, err := c.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	ds, err := ParseDocument(resp.Body)
	if err != nil {
		return nil, err
	}

	writeCache(url, ds)
	return ds, nil
}
