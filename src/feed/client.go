package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultTimeout bounds a single feed download.
	DefaultTimeout = 30 * time.Second

	// maxBodySize caps how much of a response is read.
	maxBodySize = 32 << 20
)

// Fetcher downloads a feed.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Result, error)
}

// Client is an HTTP feed client.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new feed client. A non-positive timeout selects
// DefaultTimeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch issues a single GET against url and decodes the body.
// Returned errors wrap ErrUnreachable or ErrUnusable.
func (c *Client) Fetch(ctx context.Context, url string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrUnusable, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, Classify(fmt.Errorf("failed to execute request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: request failed with status %d: %s", ErrUnusable, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, Classify(fmt.Errorf("failed to read response: %w", err))
	}

	return Decode(data)
}
