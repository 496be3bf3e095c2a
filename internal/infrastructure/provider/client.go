// Package provider implements the HTTP client for the third-party
// market-data provider serving fundamentals (statement tables and company
// metadata).
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	statements "main/internal/domain/entity/statements"
	interfaces "main/internal/domain/interfaces"
)

const (
	// DefaultBaseURL is the base URL for the fundamentals API.
	DefaultBaseURL = "https://api.marketfeed.dev/v1"

	// DefaultTimeout is the default HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultRateLimit is the default rate limit (requests per second).
	DefaultRateLimit = 10
)

// Client is a fundamentals API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *logrus.Logger
	limiter    *rate.Limiter
}

var _ interfaces.StatementProvider = (*Client)(nil)

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets a logger.
func WithLogger(logger *logrus.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets a custom rate limit.
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// NewClient creates a new fundamentals API client.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FetchStatement retrieves one statement table for a ticker, periods
// ordered most recent first. The ticker is passed through to the provider
// without format validation.
func (c *Client) FetchStatement(ctx context.Context, ticker string, statementType statements.StatementType) (statements.Statement, error) {
	path := fmt.Sprintf("/fundamentals/%s/%s", url.PathEscape(ticker), statementType)

	var payload []periodPayload
	if err := c.get(ctx, path, &payload); err != nil {
		return statements.Statement{}, err
	}
	return toStatement(statementType, payload)
}

// FetchProfile retrieves the descriptive company metadata for a ticker.
func (c *Client) FetchProfile(ctx context.Context, ticker string) (statements.CompanyProfile, error) {
	path := fmt.Sprintf("/fundamentals/%s/general", url.PathEscape(ticker))

	var payload profilePayload
	if err := c.get(ctx, path, &payload); err != nil {
		return statements.CompanyProfile{}, err
	}
	return payload.toDomain(ticker), nil
}

// get performs a GET request against the API.
func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	params := url.Values{}
	params.Set("api_token", c.apiKey)
	params.Set("fmt", "json")

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	if c.logger != nil {
		c.logger.WithField("path", path).Debug("fundamentals API request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    apiMessage(body),
			Endpoint:   path,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// apiMessage extracts the provider's error string when the failure body is
// the usual {"error": "..."} envelope, falling back to the raw body.
func apiMessage(body []byte) string {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != "" {
		return envelope.Error
	}
	return string(body)
}
