// Package web provides a DatasetFetcher that downloads CSV snapshots over
// HTTP(S) from a static asset host.
package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sdvotes/runoff/internal/core/ports/driven"
)

// Ensure Fetcher implements the interface.
var _ driven.DatasetFetcher = (*Fetcher)(nil)

// Default configuration values.
const (
	DefaultTimeout = 30 * time.Second

	// MaxBodySize caps a single dataset download.
	MaxBodySize = 64 << 20
)

// Config holds configuration for the HTTP fetcher.
type Config struct {
	// BaseURL is the URL prefix the dataset file names are appended to.
	BaseURL string

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration

	// RequestsPerSecond paces requests (default: 4).
	RequestsPerSecond float64

	// Client overrides the HTTP client (tests).
	Client *http.Client
}

// Fetcher downloads dataset files with one GET each. It never retries.
type Fetcher struct {
	client  *http.Client
	baseURL string
	limiter *RateLimiter
}

// NewFetcher creates a new HTTP fetcher.
func NewFetcher(cfg Config) *Fetcher {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &Fetcher{
		client:  client,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		limiter: NewRateLimiter(cfg.RequestsPerSecond),
	}
}

// Fetch downloads the named file. Any non-2xx status is an error.
func (f *Fetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	url := f.Location(name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(data) > MaxBodySize {
		return nil, fmt.Errorf("GET %s: body exceeds %d bytes", url, MaxBodySize)
	}
	return data, nil
}

// Location returns the URL the named file is downloaded from.
func (f *Fetcher) Location(name string) string {
	if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
		return name
	}
	return f.baseURL + "/" + strings.TrimPrefix(name, "/")
}
