// Package fetch provides the retrying HTTP client shared by all
// provider scrapers.
package fetch

import (
	"context"
	"io"
	"math/rand/v2"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/Ivantg01/ScraperHSPrices/internal/errors"
	"github.com/Ivantg01/ScraperHSPrices/internal/logging"
)

const (
	// DefaultMaxAttempts is the retry budget per call
	DefaultMaxAttempts = 4

	// DefaultAttemptTimeout is scaled by the attempt budget to bound
	// the whole call, matching the catalog endpoints' worst-case
	// response times for multi-MB pages
	DefaultAttemptTimeout = 10 * time.Second
)

// Client is an HTTP GET client with a bounded retry loop. Network
// failures are retried with a jittered backoff; a non-2xx response is
// a terminal transport error, since the catalog endpoints answer 4xx
// for malformed filters and retrying cannot fix those.
type Client struct {
	httpClient  *http.Client
	maxAttempts int
	log         *zap.Logger
}

// NewClient creates a retrying client with the given attempt budget.
// Non-positive arguments fall back to the defaults.
func NewClient(maxAttempts int, attemptTimeout time.Duration) *Client {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if attemptTimeout <= 0 {
		attemptTimeout = DefaultAttemptTimeout
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: attemptTimeout * time.Duration(maxAttempts),
		},
		maxAttempts: maxAttempts,
		log:         logging.Logger.Named("fetch"),
	}
}

// Get performs a GET with retries and returns the response body
// stream. The caller must close it.
func (c *Client) Get(ctx context.Context, url string) (io.ReadCloser, error) {
	var lastErr error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, errors.Wrap(errors.TypeTransport, "fetch cancelled", ctx.Err())
			case <-time.After(backoff()):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, errors.Wrap(errors.TypeTransport, "invalid request", err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			c.log.Error("fetch attempt failed",
				zap.Int("attempt", attempt),
				zap.String("url", url),
				zap.Error(err))
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			resp.Body.Close()
			return nil, errors.Transport(url, resp.StatusCode)
		}

		return resp.Body, nil
	}

	return nil, errors.RetryExhausted(url, c.maxAttempts, lastErr)
}

// GetBytes performs a GET with retries and reads the whole body.
func (c *Client) GetBytes(ctx context.Context, url string) ([]byte, error) {
	body, err := c.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, errors.Wrap(errors.TypeTransport, "reading response body", err)
	}
	return data, nil
}

// DownloadFile streams a GET response to a file so multi-GB offer
// files never sit in memory. A partial file is removed on failure.
func (c *Client) DownloadFile(ctx context.Context, url, filename string) error {
	body, err := c.Get(ctx, url)
	if err != nil {
		return err
	}
	defer body.Close()

	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(errors.TypeInternal, "creating download file", err)
	}

	if _, err := io.Copy(file, body); err != nil {
		file.Close()
		os.Remove(filename)
		return errors.Wrap(errors.TypeTransport, "streaming download to file", err)
	}

	if err := file.Close(); err != nil {
		os.Remove(filename)
		return errors.Wrap(errors.TypeInternal, "closing download file", err)
	}

	c.log.Debug("downloaded", zap.String("url", url), zap.String("file", filename))
	return nil
}

// backoff returns a jittered delay between 250ms and 1s
func backoff() time.Duration {
	return 250*time.Millisecond + time.Duration(rand.Int64N(int64(750*time.Millisecond)))
}
