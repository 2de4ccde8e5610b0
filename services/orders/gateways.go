package orders

import (
	"context"

	"github.com/fastbuka/rider/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/fastbuka/rider/services/orders OrdersGW

// OrdersGW defines the order endpoints
type OrdersGW interface {
	ListOrders(ctx context.Context, coords models.Coordinates) ([]models.Order, error)
	AcceptOrder(ctx context.Context, id string) error
	DeliverOrder(ctx context.Context, id string) error
}
