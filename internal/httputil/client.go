// Package httputil provides the shared storefront HTTP client: browser-like
// headers, a bounded per-request timeout and transparent body decompression.
package httputil

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/andybalholm/brotli"
)

// DefaultTimeout bounds every storefront request.
const DefaultTimeout = 20 * time.Second

// FetchError is a failed page fetch: a transport error or a non-2xx status.
// Callers decide whether it is fatal (home page) or skippable (secondary
// pages).
type FetchError struct {
	URL        string
	StatusCode int // 0 when the request never got a response
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Response is a completed request with its body already read and
// decompressed.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// Client issues GET requests with a shared header set and timeout. The
// zero value is not usable; construct with NewClient. Safe for concurrent
// use.
type Client struct {
	http    *http.Client
	timeout time.Duration
}

// NewClient creates a storefront client. A nil transport uses pooled
// defaults; tests inject their own RoundTripper.
func NewClient(transport http.RoundTripper, timeout time.Duration) *Client {
	if transport == nil {
		transport = &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http:    &http.Client{Transport: transport, Timeout: timeout},
		timeout: timeout,
	}
}

// Do performs a GET and returns the response regardless of status code.
// Only transport-level failures return an error (as *FetchError).
func (c *Client) Do(ctx context.Context, rawURL string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}
	for k, v := range BrowserHeaders() {
		req.Header[k] = v
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := readBody(resp)
	if err != nil {
		return nil, &FetchError{URL: rawURL, Err: err}
	}

	return &Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

// Get performs a GET and returns the body text. Non-2xx statuses are
// returned as *FetchError alongside transport failures.
func (c *Client) Get(ctx context.Context, rawURL string) (string, error) {
	resp, err := c.Do(ctx, rawURL)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{URL: rawURL, StatusCode: resp.StatusCode}
	}
	return string(resp.Body), nil
}

// readBody reads and decompresses a response body based on its
// Content-Encoding.
func readBody(resp *http.Response) ([]byte, error) {
	var reader io.ReadCloser
	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		var err error
		reader, err = gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		defer reader.Close()
	case "br":
		reader = io.NopCloser(brotli.NewReader(resp.Body))
	default:
		reader = resp.Body
	}
	return io.ReadAll(reader)
}
