package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastbuka/rider/internal/pkg/retry"
)

func staticToken(token string) TokenSource {
	return TokenFunc(func() string { return token })
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantBaseURL string
		wantTimeout time.Duration
	}{
		{
			name:        "Valid configuration",
			config:      Config{BaseURL: "https://api.example.com", Timeout: 30 * time.Second},
			wantBaseURL: "https://api.example.com",
			wantTimeout: 30 * time.Second,
		},
		{
			name:        "With trailing slash",
			config:      Config{BaseURL: "https://api.example.com/", Timeout: 10 * time.Second},
			wantBaseURL: "https://api.example.com",
			wantTimeout: 10 * time.Second,
		},
		{
			name:        "Default timeout",
			config:      Config{BaseURL: "http://localhost:9990"},
			wantBaseURL: "http://localhost:9990",
			wantTimeout: DefaultTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewClient(tt.config)

			assert.NotNil(t, client)
			assert.Equal(t, tt.wantBaseURL, client.BaseURL())
			assert.Equal(t, tt.wantTimeout, client.httpClient.Timeout)
		})
	}
}

func TestClient_Do_GetWithBearerAndQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rider/orders", r.URL.Path)
		assert.Equal(t, "3.4", r.URL.Query().Get("longitude"))
		assert.Equal(t, "6.5", r.URL.Query().Get("latitude"))
		assert.Equal(t, "Bearer T1", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get(RequestIDHeader))

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"success": true, "data": [{"uuid": "a"}, {"uuid": "b"}]}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, Tokens: staticToken("T1")})

	var result []map[string]string
	err := client.Do(context.Background(), Request{
		Method: http.MethodGet,
		Path:   "/rider/orders",
		Query:  url.Values{"longitude": {"3.4"}, "latitude": {"6.5"}},
	}, &result)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "a", result[0]["uuid"])
}

func TestClient_Do_PublicPostBody(t *testing.T) {
	payload := map[string]interface{}{
		"email":    "john@x.com",
		"password": "validpass123",
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)

		var received map[string]interface{}
		assert.NoError(t, json.Unmarshal(body, &received))
		assert.Equal(t, payload, received)

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"success": true, "data": {"token": "T1"}}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})

	var result struct {
		Token string `json:"token"`
	}
	err := client.Do(context.Background(), Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   payload,
		Public: true,
	}, &result)

	require.NoError(t, err)
	assert.Equal(t, "T1", result.Token)
}

func TestClient_Do_MissingTokenFailsWithoutNetwork(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, Tokens: staticToken("")})

	err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/rider"}, nil)

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.False(t, called)
}

func TestClient_Do_ErrorResponses(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		wantStatus    int
		wantMessage   string
		wantUnauth    bool
		wantMalformed bool
	}{
		{
			name:        "Success false on 200",
			status:      http.StatusOK,
			body:        `{"success": false, "message": "Invalid credentials"}`,
			wantStatus:  http.StatusOK,
			wantMessage: "Invalid credentials",
		},
		{
			name:        "Server error with envelope",
			status:      http.StatusInternalServerError,
			body:        `{"success": false, "message": "boom"}`,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "boom",
		},
		{
			name:        "Unauthorized",
			status:      http.StatusUnauthorized,
			body:        `{"success": false, "message": "Token expired"}`,
			wantStatus:  http.StatusUnauthorized,
			wantUnauth:  true,
			wantMessage: "Token expired",
		},
		{
			name:       "Non JSON error page",
			status:     http.StatusBadGateway,
			body:       `<html>bad gateway</html>`,
			wantStatus: http.StatusBadGateway,
		},
		{
			name:          "Malformed success body",
			status:        http.StatusOK,
			body:          `not json`,
			wantMalformed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(Config{BaseURL: server.URL, Tokens: staticToken("T1")})
			err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/rider"}, nil)

			require.Error(t, err)
			if tt.wantMalformed {
				assert.ErrorIs(t, err, ErrMalformedResponse)
				return
			}

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.wantStatus, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.Equal(t, tt.wantStatus, StatusCode(err))
			assert.Equal(t, tt.wantUnauth, errors.Is(err, ErrUnauthorized))
		})
	}
}

func TestClient_Do_EmptySuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, Tokens: staticToken("T1")})

	err := client.Do(context.Background(), Request{Method: http.MethodDelete, Path: "/auth/logout"}, nil)
	assert.NoError(t, err)
}

func TestClient_Do_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(Config{BaseURL: server.URL, Tokens: staticToken("T1")})

	err := client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/rider"}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "request failed")
	assert.Equal(t, 0, StatusCode(err))
}

func TestClient_SetTokenSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer late", r.Header.Get("Authorization"))
		w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL})
	client.SetTokenSource(staticToken("late"))

	assert.NoError(t, client.Do(context.Background(), Request{Method: http.MethodGet, Path: "/rider"}, nil))
}

func TestClient_Do_RetriesReads(t *testing.T) {
	fast := retry.Config{MaxRetries: 2, BaseDelay: time.Millisecond, Multiplier: 2}

	tests := []struct {
		name      string
		method    string
		statuses  []int
		wantCalls int32
		wantErr   bool
	}{
		{name: "GET recovers from 503", method: http.MethodGet, statuses: []int{503, 200}, wantCalls: 2},
		{name: "GET gives up after retries", method: http.MethodGet, statuses: []int{502, 502, 504}, wantCalls: 3, wantErr: true},
		{name: "GET does not retry 404", method: http.MethodGet, statuses: []int{404}, wantCalls: 1, wantErr: true},
		{name: "PATCH is never retried", method: http.MethodPatch, statuses: []int{503, 200}, wantCalls: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				n := atomic.AddInt32(&calls, 1)
				status := tt.statuses[len(tt.statuses)-1]
				if int(n) <= len(tt.statuses) {
					status = tt.statuses[n-1]
				}
				w.WriteHeader(status)
				if status < 400 {
					w.Write([]byte(`{"success": true}`))
				}
			}))
			defer server.Close()

			client := NewClient(Config{BaseURL: server.URL, Tokens: staticToken("T1"), Retry: fast})
			err := client.Do(context.Background(), Request{Method: tt.method, Path: "/rider"}, nil)

			assert.Equal(t, tt.wantCalls, atomic.LoadInt32(&calls))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(ErrRequestFailed))
	assert.True(t, IsRetryable(&APIError{StatusCode: http.StatusServiceUnavailable}))
	assert.False(t, IsRetryable(&APIError{StatusCode: http.StatusInternalServerError}))
	assert.False(t, IsRetryable(ErrUnauthorized))
	assert.False(t, IsRetryable(context.Canceled))
}
