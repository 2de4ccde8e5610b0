package gateway

import (
	"context"
	"fmt"
	"net/http"

	httpclient "github.com/fastbuka/rider/internal/pkg/http"
	"github.com/fastbuka/rider/internal/pkg/models"
)

// GetRider fetches the rider profile
func (c *Client) GetRider(ctx context.Context) (*models.RiderProfile, error) {
	var resp models.RiderProfile
	if err := c.http.Do(ctx, httpclient.Request{Method: http.MethodGet, Path: "/rider"}, &resp); err != nil {
		return nil, fmt.Errorf("get rider: %w", err)
	}
	return &resp, nil
}

// UpdateRider patches the rider profile and returns the stored result
func (c *Client) UpdateRider(ctx context.Context, update models.RiderUpdate) (*models.RiderProfile, error) {
	var resp models.RiderProfile
	err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodPatch,
		Path:   "/rider",
		Body:   update,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("update rider: %w", err)
	}
	return &resp, nil
}

// DeleteRider deletes the rider account
func (c *Client) DeleteRider(ctx context.Context) error {
	if err := c.http.Do(ctx, httpclient.Request{Method: http.MethodDelete, Path: "/rider"}, nil); err != nil {
		return fmt.Errorf("delete rider: %w", err)
	}
	return nil
}

// Earnings fetches the earnings summary
func (c *Client) Earnings(ctx context.Context) (*models.Earnings, error) {
	var resp models.Earnings
	if err := c.http.Do(ctx, httpclient.Request{Method: http.MethodGet, Path: "/rider/earnings"}, &resp); err != nil {
		return nil, fmt.Errorf("earnings: %w", err)
	}
	return &resp, nil
}

// Dashboard fetches the dashboard summary
func (c *Client) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	var resp models.Dashboard
	if err := c.http.Do(ctx, httpclient.Request{Method: http.MethodGet, Path: "/rider/dashboard"}, &resp); err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	return &resp, nil
}

// History fetches completed deliveries
func (c *Client) History(ctx context.Context) ([]models.HistoryEntry, error) {
	var resp []models.HistoryEntry
	if err := c.http.Do(ctx, httpclient.Request{Method: http.MethodGet, Path: "/rider/history"}, &resp); err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	return resp, nil
}
