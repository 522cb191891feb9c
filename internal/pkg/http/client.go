package http

import (
	"context"
	"fmt"
	"io"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/piresc/fleetlocation/internal/pkg/logger"
	nrpkg "github.com/piresc/fleetlocation/internal/pkg/newrelic"
	"github.com/piresc/fleetlocation/internal/pkg/requestcontext"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 10 * time.Second
	// APIKeyHeader is the header name for API key
	APIKeyHeader = "X-API-Key"
	// RequestIDHeader propagates the inbound request id
	RequestIDHeader = "X-Request-ID"
)

// Config configures a Client
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client is a JSON HTTP client for a single upstream service.
// It performs exactly one attempt per call.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *nethttp.Client
}

// StatusError is returned for responses with status >= 400
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: HTTP %d", e.Method, e.URL, e.StatusCode)
}

// NewClient creates a new HTTP client
func NewClient(config Config) *Client {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		apiKey:     config.APIKey,
		httpClient: &nethttp.Client{Timeout: timeout},
	}
}

// GetJSON performs a GET request and decodes the JSON response into result
func (c *Client) GetJSON(ctx context.Context, path string, result interface{}) error {
	url := c.baseURL + path

	req, err := nethttp.NewRequestWithContext(ctx, nethttp.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(APIKeyHeader, c.apiKey)
	}
	if id := requestcontext.RequestID(ctx); id != "" {
		req.Header.Set(RequestIDHeader, id)
	}

	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*nethttp.Response, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	logger.Debug("HTTP request completed",
		logger.String("method", req.Method),
		logger.String("url", url),
		logger.Int("status_code", resp.StatusCode))

	if resp.StatusCode >= 400 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Method: req.Method, URL: url, StatusCode: resp.StatusCode}
	}
	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
