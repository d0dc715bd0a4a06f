package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds every request made by a Client.
const DefaultTimeout = 30 * time.Second

// StatusError is returned when the server answers with a non-200 status.
type StatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s: %s", e.StatusCode, e.URL, e.Status)
}

// Client wraps HTTP operations used by the site data loaders.
//
// Client provides:
//   - A configured User-Agent header
//   - Timeout handling
//   - Fresh fetches: catalog requests carry no-cache headers so catalog
//     updates show up immediately
//   - JSON decoding of response bodies
//
// Example usage:
//
//	client := NewClient()
//
//	// Decode the catalog document
//	var rows []json.RawMessage
//	err := client.GetJSON(ctx, "https://example.com/releases.json", &rows)
//
//	// Fetch cover art bytes
//	img, err := client.DownloadBytes(ctx, release.Image)
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new HTTP client with DefaultTimeout and an
// "rtk-site" User-Agent header.
func NewClient() *Client {
	return NewClientWithTimeout(DefaultTimeout)
}

// NewClientWithTimeout creates a client with a custom timeout.
// A zero or negative timeout falls back to DefaultTimeout.
func NewClientWithTimeout(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: "rtk-site",
	}
}

// Get performs a GET request and returns the response body as bytes.
//
// The request includes the configured User-Agent header and asks
// intermediaries not to serve a cached copy.
//
// Returns an error if:
//   - The request fails
//   - The response status is not 200 OK (a *StatusError)
//   - Reading the body fails
//
// Example:
//
//	data, err := client.Get(ctx, "https://example.com/video_link.json")
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	return io.ReadAll(resp.Body)
}

// GetJSON performs a GET request and decodes the JSON body into v.
//
// Transport errors are returned as-is. A body that is not valid JSON is
// reported as a *json.SyntaxError or *json.UnmarshalTypeError, so callers
// can tell a broken document apart from a failed request.
//
// Example:
//
//	var payload struct {
//	    EmbedURL string `json:"youtube_embed_url"`
//	}
//	err := client.GetJSON(ctx, videoURL, &payload)
func (c *Client) GetJSON(ctx context.Context, url string, v any) error {
	body, err := c.Get(ctx, url)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}

// DownloadBytes downloads a file and returns the bytes in memory.
//
// Use this for small files like cover art images.
//
// Example:
//
//	imageData, err := client.DownloadBytes(ctx, release.Image)
func (c *Client) DownloadBytes(ctx context.Context, url string) ([]byte, error) {
	return c.Get(ctx, url)
}
