// Package collyfetcher implements scanner.Fetcher using the gocolly collector.
package collyfetcher

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/aiseoaudit/visibility-scanner/internal/scanner"
)

// DefaultTimeout bounds a fetch when no timeout is configured.
const DefaultTimeout = 5 * time.Second

// Config controls collector behavior.
type Config struct {
	// UserAgent overrides the client default when non-empty. The scanner sets
	// no override by default.
	UserAgent string
	Timeout   time.Duration
}

// Fetcher implements scanner.Fetcher using the Colly collector. Robots.txt
// enforcement is off: the scanner diagnoses crawler access, so it must be
// able to read pages a crawler would be told to skip.
type Fetcher struct {
	cfg           Config
	baseCollector *colly.Collector
}

// New builds a Fetcher with a pooled transport shared across fetches.
func New(cfg Config) *Fetcher {
	// colly v2.1.0's Async option sets Async=true regardless of its argument;
	// the collector default is synchronous, which is what we want.
	c := colly.NewCollector()
	c.IgnoreRobotsTxt = true
	c.AllowURLRevisit = true
	// Non-2xx responses are data for the checks, not failures.
	c.ParseHTTPErrorResponse = true
	c.WithTransport(newHTTPTransport())
	return &Fetcher{cfg: cfg, baseCollector: c}
}

// Fetch executes a single HTTP GET with the configured timeout and default
// redirect handling. Network-level failures surface as errors; any response
// that arrives, whatever its status, is returned for inspection.
func (f *Fetcher) Fetch(ctx context.Context, url string) (scanner.FetchResult, error) {
	var (
		result   scanner.FetchResult
		fetchErr error
	)
	collector := f.baseCollector.Clone()
	if f.cfg.UserAgent != "" {
		collector.UserAgent = f.cfg.UserAgent
	}
	timeout := f.cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	collector.SetRequestTimeout(timeout)

	collector.OnResponse(func(r *colly.Response) {
		result = scanner.FetchResult{
			Body:       append([]byte(nil), r.Body...),
			StatusCode: r.StatusCode,
			Headers:    r.Headers.Clone(),
		}
	})
	collector.OnError(func(_ *colly.Response, err error) {
		fetchErr = err
	})

	done := make(chan error, 1)
	go func() {
		done <- collector.Visit(url)
	}()

	select {
	case <-ctx.Done():
		return scanner.FetchResult{}, fmt.Errorf("fetch canceled: %w", ctx.Err())
	case err := <-done:
		if err != nil {
			return scanner.FetchResult{}, fmt.Errorf("visit %s: %w", url, err)
		}
		if fetchErr != nil {
			return scanner.FetchResult{}, fmt.Errorf("fetch %s: %w", url, fetchErr)
		}
		return result, nil
	}
}

func newHTTPTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
	}
}
