// Package fetch provides an HTTP-backed web fetcher for URL imports.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/custodia-labs/pluginsmith-cli/internal/core/ports/driven"
)

// Ensure Fetcher implements the interface.
var _ driven.WebFetcher = (*Fetcher)(nil)

// DefaultTimeout bounds one fetch, body read included.
const DefaultTimeout = 60 * time.Second

// maxBodySize caps how much of a response is read (32 MiB). Source
// documents beyond that are not realistic plugin material.
const maxBodySize = 32 << 20

// Fetcher retrieves web resources over HTTP(S).
type Fetcher struct {
	client *http.Client
}

// New creates a new fetcher with the default timeout.
func New() *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: DefaultTimeout},
	}
}

// NewWithClient creates a fetcher with a custom HTTP client.
func NewWithClient(client *http.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch retrieves the resource and returns its bytes and Content-Type.
// Non-2xx statuses are errors.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "pluginsmith/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, "", fmt.Errorf("read body: %w", err)
	}
	return body, resp.Header.Get("Content-Type"), nil
}
