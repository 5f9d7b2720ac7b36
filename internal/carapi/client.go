package carapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrFetchVehicles is returned for every failed fetch. The underlying cause is
// logged but not returned.
var ErrFetchVehicles = errors.New("could not retrieve vehicles")

// CarFetcher retrieves vehicle records. It is implemented by *Client and can
// be faked in tests.
type CarFetcher interface {
	FetchCars(ctx context.Context, query Query) ([]Vehicle, error)
}

var _ CarFetcher = (*Client)(nil)

// Query configures /v1/cars requests.
type Query struct {
	Limit int
}

// Client talks to the cars REST API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	apiKey    string
	model     string
	userAgent string
}

const (
	DefaultBaseURL = "https://api.api-ninjas.com"
	DefaultModel   = "camry"
	DefaultLimit   = 50

	carsPath         = "/v1/cars"
	apiKeyHeader     = "X-Api-Key"
	requestIDHeader  = "X-Request-Id"
	defaultUserAgent = "carlot/0.1"
	requestTimeout   = 10 * time.Second
)

// Options configure a Client.
type Options struct {
	BaseURL string
	APIKey  string
	Model   string // server-side model filter; empty sends no filter
	Timeout time.Duration
}

// NewClient builds a Client for the given options.
func NewClient(opts Options) (*Client, error) {
	base, err := parseBaseURL(opts.BaseURL)
	if err != nil {
		return nil, err
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = requestTimeout
	}
	return &Client{
		baseURL:   base,
		http:      &http.Client{Timeout: timeout},
		apiKey:    strings.TrimSpace(opts.APIKey),
		model:     strings.TrimSpace(opts.Model),
		userAgent: defaultUserAgent,
	}, nil
}

// FetchCars retrieves one batch of vehicles. Any failure collapses to
// ErrFetchVehicles.
func (c *Client) FetchCars(ctx context.Context, query Query) ([]Vehicle, error) {
	if c == nil {
		return nil, ErrFetchVehicles
	}
	values := url.Values{}
	if c.model != "" {
		values.Set("model", c.model)
	}
	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}
	rel := &url.URL{Path: carsPath, RawQuery: values.Encode()}

	requestID := uuid.NewString()
	var payload []Vehicle
	if err := c.doURL(ctx, rel, requestID, &payload); err != nil {
		log.Printf("fetch cars failed (request %s): %v", requestID, err)
		return nil, ErrFetchVehicles
	}
	return payload, nil
}

func (c *Client) doURL(ctx context.Context, rel *url.URL, requestID string, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(requestIDHeader, requestID)
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("api %s returned status %d", rel.Path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", raw, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
