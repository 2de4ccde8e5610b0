package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	httpclient "github.com/fastbuka/rider/internal/pkg/http"
	"github.com/fastbuka/rider/internal/pkg/models"
)

// ListOrders returns available orders near coords
func (c *Client) ListOrders(ctx context.Context, coords models.Coordinates) ([]models.Order, error) {
	query := url.Values{}
	query.Set("longitude", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	query.Set("latitude", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))

	var resp []models.Order
	err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodGet,
		Path:   "/rider/orders",
		Query:  query,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return resp, nil
}

// AcceptOrder accepts the order with the given uuid
func (c *Client) AcceptOrder(ctx context.Context, id string) error {
	err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/rider/accept_order/" + url.PathEscape(id),
	}, nil)
	if err != nil {
		return fmt.Errorf("accept order %s: %w", id, err)
	}
	return nil
}

// DeliverOrder marks the order with the given uuid delivered
func (c *Client) DeliverOrder(ctx context.Context, id string) error {
	err := c.http.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		Path:   "/rider/deliver_order/" + url.PathEscape(id),
	}, nil)
	if err != nil {
		return fmt.Errorf("deliver order %s: %w", id, err)
	}
	return nil
}
