package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fastbuka/rider/internal/pkg/logger"
	"github.com/fastbuka/rider/internal/pkg/models"
	nrpkg "github.com/fastbuka/rider/internal/pkg/newrelic"
	"github.com/fastbuka/rider/internal/pkg/retry"
	"github.com/google/uuid"
	"github.com/newrelic/go-agent/v3/newrelic"
)

const (
	// DefaultTimeout for HTTP requests
	DefaultTimeout = 30 * time.Second
	// RequestIDHeader carries a per-request correlation id
	RequestIDHeader = "X-Request-ID"
)

// TokenSource supplies the bearer token for protected calls
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a function to TokenSource
type TokenFunc func() string

// Token returns f()
func (f TokenFunc) Token() string {
	return f()
}

// Config holds client configuration
type Config struct {
	BaseURL string
	Timeout time.Duration
	Tokens  TokenSource
	NRApp   *newrelic.Application
	// Retry applies to GET requests only. The zero value disables retries.
	Retry retry.Config
}

// Request describes one call against the rider API
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   interface{}
	// Public skips the bearer token; used by login and register
	Public bool
}

// Client is a JSON client for the rider API with bearer token authentication
type Client struct {
	httpClient *nethttp.Client
	baseURL    string
	tokens     TokenSource
	nrApp      *newrelic.Application
	reads      *retry.Retrier
}

// NewClient creates a new HTTP client
func NewClient(config Config) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	retryConfig := config.Retry
	retryConfig.IsRetryable = IsRetryable

	return &Client{
		httpClient: &nethttp.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		tokens:  config.Tokens,
		nrApp:   config.NRApp,
		reads:   retry.New(retryConfig),
	}
}

// SetTokenSource replaces the token source, used when the session store is
// constructed after the client
func (c *Client) SetTokenSource(tokens TokenSource) {
	c.tokens = tokens
}

// BaseURL returns the configured base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do performs the request and decodes the envelope's data section into result.
// result may be nil when the caller only needs the outcome.
func (c *Client) Do(ctx context.Context, r Request, result interface{}) error {
	var envelope *models.Envelope
	call := func(ctx context.Context) error {
		var err error
		envelope, err = c.do(ctx, r)
		return err
	}

	var err error
	if r.Method == nethttp.MethodGet {
		err = c.reads.Execute(ctx, r.Method+" "+r.Path, call)
	} else {
		err = call(ctx)
	}
	if err != nil {
		return err
	}

	if result == nil || len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return nil
	}

	if err := json.Unmarshal(envelope.Data, result); err != nil {
		return fmt.Errorf("%w: decode data: %v", ErrMalformedResponse, err)
	}

	return nil
}

func (c *Client) do(ctx context.Context, r Request) (*models.Envelope, error) {
	endpoint := c.baseURL + r.Path
	if len(r.Query) > 0 {
		endpoint += "?" + r.Query.Encode()
	}

	var token string
	if !r.Public {
		if c.tokens != nil {
			token = c.tokens.Token()
		}
		if token == "" {
			return nil, fmt.Errorf("%s %s: %w", r.Method, r.Path, ErrUnauthorized)
		}
	}

	var reqBody io.Reader
	if r.Body != nil {
		jsonBody, err := json.Marshal(r.Body)
		if err != nil {
			logger.Error("Failed to marshal request body",
				logger.String("method", r.Method),
				logger.String("path", r.Path),
				logger.Err(err))
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	ctx, end := nrpkg.EnsureTransaction(ctx, c.nrApp, r.Method+" "+r.Path)
	defer end()

	req, err := nethttp.NewRequestWithContext(ctx, r.Method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	logger.DebugCtx(ctx, "Making HTTP request",
		logger.String("method", r.Method),
		logger.String("path", r.Path),
		logger.String("request_id", requestID),
		logger.Bool("authenticated", token != ""))

	start := time.Now()
	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*nethttp.Response, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		logger.ErrorCtx(ctx, "HTTP request failed",
			logger.String("method", r.Method),
			logger.String("path", r.Path),
			logger.String("request_id", requestID),
			logger.Err(err))
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	logger.DebugCtx(ctx, "HTTP request completed",
		logger.String("method", r.Method),
		logger.String("path", r.Path),
		logger.String("request_id", requestID),
		logger.Int("status_code", resp.StatusCode),
		logger.Duration("latency", time.Since(start)))

	return decodeEnvelope(resp.StatusCode, respBody)
}

func decodeEnvelope(status int, body []byte) (*models.Envelope, error) {
	var envelope models.Envelope
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &envelope); err != nil {
			if status >= 400 {
				return nil, &APIError{StatusCode: status}
			}
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
	} else if status < 400 {
		// Empty 2xx bodies carry no envelope but are still a success
		envelope.Success = true
	}

	if status >= 400 {
		return nil, &APIError{StatusCode: status, Message: envelope.Message}
	}
	if !envelope.Success {
		return nil, &APIError{StatusCode: status, Message: envelope.Message}
	}

	return &envelope, nil
}
