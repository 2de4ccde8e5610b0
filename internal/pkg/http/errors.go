package http

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"
)

var (
	// ErrUnauthorized is returned when a protected call has no token or the server rejects it
	ErrUnauthorized = errors.New("unauthorized")
	// ErrMalformedResponse is returned when the body is not the expected JSON envelope
	ErrMalformedResponse = errors.New("malformed response")
	// ErrRequestFailed is returned when no response was received
	ErrRequestFailed = errors.New("request failed")
)

// APIError represents a non-2xx response or an envelope with success=false
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: %d %s", e.StatusCode, nethttp.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("api error: %d %s", e.StatusCode, e.Message)
}

// Unwrap lets errors.Is(err, ErrUnauthorized) match rejected credentials
func (e *APIError) Unwrap() error {
	if e.StatusCode == nethttp.StatusUnauthorized || e.StatusCode == nethttp.StatusForbidden {
		return ErrUnauthorized
	}
	return nil
}

// StatusCode extracts the HTTP status from err, 0 when err is not an API error
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsRetryable reports whether a read may be repeated: the server was not
// reached or answered with a gateway or availability error
func IsRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, ErrRequestFailed) {
		return true
	}
	switch StatusCode(err) {
	case nethttp.StatusBadGateway, nethttp.StatusServiceUnavailable, nethttp.StatusGatewayTimeout:
		return true
	}
	return false
}
