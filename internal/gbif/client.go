package gbif

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/evyataryagoni/bio-explorer/internal/logger"
	"github.com/evyataryagoni/bio-explorer/internal/metrics"
)

const (
	// DefaultBaseURL is the public GBIF v1 API.
	DefaultBaseURL = "https://api.gbif.org/v1"

	// MaxOccurrencePoints caps how many points one occurrence collection
	// returns to a client.
	MaxOccurrencePoints = 10000

	// PageSize is the occurrence search page size requested per call.
	PageSize = 300
)

// ErrUpstream marks any GBIF failure: transport error, non-2xx status, or
// an unparseable body. Callers match it with errors.Is and map every case
// to one uniform "service unavailable" response.
var ErrUpstream = errors.New("GBIF upstream unavailable")

// API is the upstream contract the services depend on.
// Allows swapping the HTTP client for MockAPI in tests.
type API interface {
	// MatchName resolves a free-text name via the species match endpoint.
	MatchName(ctx context.Context, name string) (*NameMatch, error)

	// OccurrencePage fetches one page of the occurrence search endpoint,
	// filtered to georeferenced records without geospatial issues.
	OccurrencePage(ctx context.Context, taxonKey, limit, offset int) (*OccurrencePage, error)
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the GBIF base URL (tests, staging).
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient injects the shared pooled HTTP client. The service builds
// one instance at startup and reuses it across requests for connection
// pooling; its timeout bounds each upstream call.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithMetrics attaches the Prometheus collectors (optional).
func WithMetrics(m *metrics.Metrics) ClientOption {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithLogger attaches a structured logger (optional).
func WithLogger(log *logger.Logger) ClientOption {
	return func(c *Client) {
		c.logger = log
	}
}

// Client is the HTTP implementation of API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    *metrics.Metrics
	logger     *logger.Logger
}

// NewClient creates a GBIF client. Without options it talks to the public
// API with a 20 second per-call timeout.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: 20 * time.Second}
	}
	if c.logger == nil {
		c.logger = logger.NewDefault()
	}
	c.logger = c.logger.WithComponent("GBIFClient")

	return c
}

// MatchName implements API.
func (c *Client) MatchName(ctx context.Context, name string) (*NameMatch, error) {
	params := url.Values{}
	params.Set("name", name)
	params.Set("verbose", "true")

	var match NameMatch
	if err := c.getJSON(ctx, "/species/match", params, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

// OccurrencePage implements API.
func (c *Client) OccurrencePage(ctx context.Context, taxonKey, limit, offset int) (*OccurrencePage, error) {
	params := url.Values{}
	params.Set("taxonKey", strconv.Itoa(taxonKey))
	params.Set("hasCoordinate", "true")
	params.Set("hasGeospatialIssue", "false")
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))

	var page OccurrencePage
	if err := c.getJSON(ctx, "/occurrence/search", params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// getJSON performs one GET against the GBIF API and decodes the JSON body
// into out. Every failure mode wraps ErrUpstream; there is no retry.
func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out interface{}) error {
	reqURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("%w: building request for %s: %v", ErrUpstream, path, err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logger.Error().Err(err).Str("path", path).Msg("GBIF request failed")
		c.observe(path, "error", duration)
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	c.observe(path, strconv.Itoa(resp.StatusCode), duration)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn().Int("status", resp.StatusCode).Str("path", path).Msg("GBIF returned error status")
		return fmt.Errorf("%w: HTTP %d from %s", ErrUpstream, resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error().Err(err).Str("path", path).Msg("Failed to decode GBIF response")
		return fmt.Errorf("%w: decoding response from %s: %v", ErrUpstream, path, err)
	}

	return nil
}

// observe records upstream request metrics when a collector is attached.
func (c *Client) observe(path, status string, duration time.Duration) {
	if c.metrics == nil {
		return
	}
	c.metrics.GBIFRequestsTotal.WithLabelValues(path, status).Inc()
	c.metrics.GBIFRequestDuration.WithLabelValues(path).Observe(duration.Seconds())
}
