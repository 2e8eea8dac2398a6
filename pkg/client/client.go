// Package client is a thin consumer of the real-api HTTP interface. Every
// call is a single request/response round trip against a base URL carried in
// an immutable Config value.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds a round trip when the Config does not set one
const DefaultTimeout = 10 * time.Second

// Config holds the client settings. It is built once and passed by value.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// NewConfig returns a Config with the trailing slash trimmed from baseURL
func NewConfig(baseURL string, timeout time.Duration) Config {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return Config{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Timeout: timeout,
	}
}

// HealthResponse mirrors the body of GET /
type HealthResponse struct {
	Message     string `json:"message"`
	APIName     string `json:"apiName"`
	Status      string `json:"status"`
	Version     string `json:"version,omitempty"`
	Environment string `json:"environment,omitempty"`
	Timestamp   string `json:"timestamp"`
}

// EchoResponse mirrors the body of POST /echo
type EchoResponse struct {
	Message         string          `json:"message"`
	OriginalMessage json.RawMessage `json:"originalMessage"`
	APIName         string          `json:"apiName"`
	Timestamp       string          `json:"timestamp"`
}

// errorBody mirrors the structured error bodies the API returns
type errorBody struct {
	Error          string   `json:"error"`
	Message        string   `json:"message"`
	AvailablePaths []string `json:"availablePaths,omitempty"`
}

// APIError is returned for every failed call: non-2xx responses, transport
// failures and undecodable bodies alike
type APIError struct {
	StatusCode     int
	Message        string
	AvailablePaths []string
	Err            error
}

func (e *APIError) Error() string {
	return "API Error: " + e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Client pairs a Config with the HTTP client used to reach the API
type Client struct {
	config     Config
	httpClient *http.Client
}

// New creates a client for cfg. A nil httpClient gets one bounded by cfg.Timeout.
func New(cfg Config, httpClient *http.Client) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{config: cfg, httpClient: httpClient}
}

// Config returns the client configuration
func (c *Client) Config() Config {
	return c.config
}

// HealthCheck calls GET /
func (c *Client) HealthCheck(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, http.MethodGet, "/", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Echo posts payload to /echo and returns the echoed document
func (c *Client) Echo(ctx context.Context, payload interface{}) (*EchoResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &APIError{Message: "failed to encode request body", Err: err}
	}

	var out EchoResponse
	if err := c.do(ctx, http.MethodPost, "/echo", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// HealthCheck calls GET / using a default HTTP client
func HealthCheck(ctx context.Context, cfg Config) (*HealthResponse, error) {
	return New(cfg, nil).HealthCheck(ctx)
}

// Echo posts payload to /echo using a default HTTP client
func Echo(ctx context.Context, cfg Config, payload interface{}) (*EchoResponse, error) {
	return New(cfg, nil).Echo(ctx, payload)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body []byte, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+endpoint, reader)
	if err != nil {
		return &APIError{Message: "failed to build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return &APIError{Message: "request timed out", Err: err}
		}
		return &APIError{Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: "failed to read response body", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp, data)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: "response is not valid JSON", Err: err}
	}
	return nil
}

// errorFromResponse prefers the server-provided message and falls back to
// the status text when the body is not a JSON error document
func errorFromResponse(resp *http.Response, data []byte) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var eb errorBody
	if err := json.Unmarshal(data, &eb); err == nil && eb.Message != "" {
		apiErr.Message = eb.Message
		apiErr.AvailablePaths = eb.AvailablePaths
		return apiErr
	}

	apiErr.Message = statusText(resp)
	return apiErr
}

func statusText(resp *http.Response) string {
	// resp.Status is "404 Not Found"
	if text := strings.TrimSpace(strings.TrimPrefix(resp.Status, fmt.Sprintf("%d", resp.StatusCode))); text != "" {
		return text
	}
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return fmt.Sprintf("Request failed with status %d", resp.StatusCode)
}
