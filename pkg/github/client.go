// Package github provides a rate-limit-aware, retrying GitHub REST client
// with Link-header pagination.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.github.com"
	defaultPerPage = "100"
	maxAttempts    = 3
)

// retryBackoff is the exponential sleep schedule between attempts.
var retryBackoff = [...]time.Duration{time.Second, 2 * time.Second, 4 * time.Second}

// ErrForbidden is returned for a 403 without rate-limit indicators: an
// authentication or permission problem that retrying cannot fix.
var ErrForbidden = errors.New("github: forbidden")

// ErrNotFound is returned for a 404 response.
var ErrNotFound = errors.New("github: not found")

// Client is a GitHub REST client shared across pipeline stages. Rate-limit
// accounting is per-client and process-wide.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     *slog.Logger

	// sleep is swappable in tests; defaults to a ctx-aware time.Sleep.
	sleep func(ctx context.Context, d time.Duration) error

	// now is swappable in tests.
	now func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (tests, GitHub Enterprise).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a GitHub client. token may be empty (public repos only,
// lower rate limits).
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
		token:      token,
		logger:     slog.Default(),
		sleep:      sleepCtx,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get fetches a single resource and returns the raw JSON body.
// path is relative to the API root, e.g. "/repos/o/r/commits/abc123".
func (c *Client) Get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	body, _, err := c.do(ctx, c.buildURL(path, params))
	return body, err
}

// Paginate walks pages of a JSON-array endpoint, invoking fn for every item.
// fn returning false stops pagination early (e.g., the caller reached its
// watermark); returning an error aborts with that error. maxPages caps the
// number of pages fetched.
//
// After the first page, query parameters are not re-sent: the rel="next"
// URL from the Link header already encodes them.
func (c *Client) Paginate(ctx context.Context, path string, params url.Values, maxPages int, fn func(json.RawMessage) (bool, error)) error {
	if params == nil {
		params = url.Values{}
	}
	if params.Get("per_page") == "" {
		params.Set("per_page", defaultPerPage)
	}

	pageURL := c.buildURL(path, params)
	for page := 0; page < maxPages && pageURL != ""; page++ {
		body, next, err := c.do(ctx, pageURL)
		if err != nil {
			return err
		}

		var items []json.RawMessage
		if err := json.Unmarshal(body, &items); err != nil {
			return fmt.Errorf("github: decode page %d of %s: %w", page+1, path, err)
		}

		for _, item := range items {
			cont, err := fn(item)
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}
		}

		pageURL = next
	}
	return nil
}

// do performs one GET with retry, backoff, and rate-limit handling.
// Returns the body and the rel="next" URL from the Link header, if any.
func (c *Client) do(ctx context.Context, rawURL string) (json.RawMessage, string, error) {
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			if err := c.sleep(ctx, retryBackoff[attempt-2]); err != nil {
				return nil, "", err
			}
		}

		body, next, retryable, err := c.doOnce(ctx, rawURL)
		if err == nil {
			return body, next, nil
		}
		if !retryable {
			return nil, "", err
		}
		lastErr = err
		c.logger.Warn("GitHub request failed, retrying",
			"url", rawURL, "attempt", attempt, "error", err)
	}
	return nil, "", fmt.Errorf("github: %d attempts exhausted: %w", maxAttempts, lastErr)
}

// doOnce performs a single request. retryable reports whether the failure is
// transient (network error, 5xx, rate limit after sleeping).
func (c *Client) doOnce(ctx context.Context, rawURL string) (body json.RawMessage, next string, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", false, fmt.Errorf("github: create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Network failure or timeout: transient.
		return nil, "", true, fmt.Errorf("github: request %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, "", true, fmt.Errorf("github: read body: %w", err)
		}
		// Remaining=0 on a successful response: sleep through the reset so
		// the next request in this sequence does not burn an attempt on 403.
		if wait, ok := c.rateLimitWait(resp.Header); ok {
			c.logger.Info("GitHub rate limit exhausted, sleeping", "wait", wait)
			if err := c.sleep(ctx, wait); err != nil {
				return nil, "", false, err
			}
		}
		return data, nextLink(resp.Header.Get("Link")), false, nil

	case resp.StatusCode == http.StatusForbidden:
		if wait, ok := c.rateLimitWait(resp.Header); ok {
			c.logger.Info("GitHub rate limited (403), sleeping before retry", "wait", wait)
			if err := c.sleep(ctx, wait); err != nil {
				return nil, "", false, err
			}
			return nil, "", true, fmt.Errorf("github: rate limited on %s", rawURL)
		}
		return nil, "", false, fmt.Errorf("%w: %s", ErrForbidden, rawURL)

	case resp.StatusCode == http.StatusNotFound:
		return nil, "", false, fmt.Errorf("%w: %s", ErrNotFound, rawURL)

	case resp.StatusCode >= 500:
		return nil, "", true, fmt.Errorf("github: HTTP %d for %s", resp.StatusCode, rawURL)

	default:
		// Remaining 4xx are caller errors; retrying cannot help.
		return nil, "", false, fmt.Errorf("github: HTTP %d for %s", resp.StatusCode, rawURL)
	}
}

// rateLimitWait derives a sleep duration from rate-limit headers.
// Retry-After wins; otherwise X-RateLimit-Remaining=0 with a reset epoch.
func (c *Client) rateLimitWait(h http.Header) (time.Duration, bool) {
	if ra := h.Get("Retry-After"); ra != "" {
		if secs, err := strconv.Atoi(ra); err == nil && secs >= 0 {
			return time.Duration(secs) * time.Second, true
		}
	}
	if h.Get("X-RateLimit-Remaining") != "0" {
		return 0, false
	}
	reset := h.Get("X-RateLimit-Reset")
	if reset == "" {
		return 0, false
	}
	epoch, err := strconv.ParseInt(reset, 10, 64)
	if err != nil {
		return 0, false
	}
	wait := time.Unix(epoch, 0).Sub(c.now())
	if wait < 0 {
		wait = 0
	}
	return wait, true
}

func (c *Client) buildURL(path string, params url.Values) string {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

// nextLink extracts the rel="next" URL from a Link header.
func nextLink(header string) string {
	for _, part := range strings.Split(header, ",") {
		section := strings.Split(part, ";")
		if len(section) < 2 {
			continue
		}
		if strings.TrimSpace(section[1]) != `rel="next"` {
			continue
		}
		u := strings.TrimSpace(section[0])
		return strings.Trim(u, "<>")
	}
	return ""
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
