// Package gateway maps each rider API endpoint onto a typed method
package gateway

import (
	httpclient "github.com/fastbuka/rider/internal/pkg/http"
)

// Client calls the rider API through the shared JSON client
type Client struct {
	http *httpclient.Client
}

// NewClient creates a gateway over an existing HTTP client
func NewClient(http *httpclient.Client) *Client {
	return &Client{http: http}
}
