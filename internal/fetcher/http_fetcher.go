package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	_maxResponseSize  = 50 * 1024 * 1024 // 50 MB, wallpapers can be large
	_defaultTimeout   = 15 * time.Second
	_defaultUserAgent = "wallfetch/1.0"
)

// ErrTooLarge is returned when a body exceeds the configured limit
var ErrTooLarge = errors.New("response body too large")

// StatusError reports a non-2xx HTTP response
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.Code)
}

// Response is a fully read HTTP response body
type Response struct {
	Data        []byte
	ContentType string
	URL         string
}

// Option configures an HTTPFetcher
type Option func(*HTTPFetcher)

// WithTimeout bounds the whole request, body included
func WithTimeout(d time.Duration) Option {
	return func(f *HTTPFetcher) {
		if d > 0 {
			f.client.Timeout = d
		}
	}
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) Option {
	return func(f *HTTPFetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithMaxSize overrides the body size limit
func WithMaxSize(n int64) Option {
	return func(f *HTTPFetcher) {
		if n > 0 {
			f.maxSize = n
		}
	}
}

// HTTPFetcher handles downloading data from HTTP/HTTPS URLs
type HTTPFetcher struct {
	logger    *zap.Logger
	client    *http.Client
	userAgent string
	maxSize   int64
}

// NewHTTPFetcher creates a new HTTP-based fetcher instance
func NewHTTPFetcher(logger *zap.Logger, opts ...Option) *HTTPFetcher {
	f := &HTTPFetcher{
		logger: logger,
		client: &http.Client{
			Timeout: _defaultTimeout,
		},
		userAgent: _defaultUserAgent,
		maxSize:   _maxResponseSize,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch downloads the body at url. accept is sent as the Accept header when set.
func (f *HTTPFetcher) Fetch(ctx context.Context, url, accept string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, URL: url}
	}

	// Read one byte past the limit to tell "exactly at limit" from "too large"
	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}
	if int64(len(data)) > f.maxSize {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrTooLarge, f.maxSize)
	}

	f.logger.Debug("Fetched",
		zap.Int("bytes", len(data)),
		zap.String("contentType", resp.Header.Get("Content-Type")),
		zap.String("url", url))

	return &Response{
		Data:        data,
		ContentType: resp.Header.Get("Content-Type"),
		URL:         resp.Request.URL.String(),
	}, nil
}
