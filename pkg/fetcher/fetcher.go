// Package fetcher retrieves raw page markup over HTTP.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// maxBodyBytes bounds how much markup a single fetch will read. Pages
// past this size are truncated, which only lowers their speed proxy.
const maxBodyBytes = 5 << 20

type Fetcher struct {
	client    *http.Client
	userAgent string
	limiter   *rate.Limiter
}

// NewFetcher builds a fetcher with a bounded request timeout and a
// browser user agent. Requests are rate limited to two per second so
// batch runs stay polite to the target hosts.
func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
		limiter:   rate.NewLimiter(rate.Limit(2), 2),
	}
}

// FetchBytes fetches the raw markup at url. Non-2xx responses are
// errors; the caller decides whether the failure is terminal.
func (f *Fetcher) FetchBytes(ctx context.Context, url string) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch %s, status code: %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body from %s: %w", url, err)
	}
	return body, nil
}
