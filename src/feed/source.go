package feed

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Source dispatches a fetch to the backend matching the URL scheme.
type Source struct {
	HTTP     Fetcher
	Postgres Fetcher
}

// NewSource wires the HTTP client and the Postgres source.
func NewSource(timeout time.Duration) *Source {
	return &Source{
		HTTP:     NewClient(timeout),
		Postgres: NewPostgresSource(),
	}
}

// Fetch implements Fetcher.
func (s *Source) Fetch(ctx context.Context, rawURL string) (*Result, error) {
	target := Normalize(rawURL)

	u, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnusable, err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return s.HTTP.Fetch(ctx, target)
	case "postgres", "postgresql":
		return s.Postgres.Fetch(ctx, target)
	default:
		return nil, fmt.Errorf("%w: %w: %q", ErrUnusable, ErrUnsupportedScheme, u.Scheme)
	}
}

// Normalize turns a protocol-relative URL ("//host/path") into an https URL.
func Normalize(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if strings.HasPrefix(rawURL, "//") {
		return "https:" + rawURL
	}
	return rawURL
}
