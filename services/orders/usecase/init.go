package usecase

import (
	"sync"
	"time"

	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/fastbuka/rider/internal/pkg/observable"
	"github.com/fastbuka/rider/services/orders"
)

type OrdersUC struct {
	ordersGW orders.OrdersGW

	mu    sync.Mutex
	lists orderLists

	count *observable.Value[int]
	now   func() time.Time
}

// NewOrdersUC creates a new orders usecase instance with empty lists
func NewOrdersUC(ordersGW orders.OrdersGW) *OrdersUC {
	return &OrdersUC{
		ordersGW: ordersGW,
		count:    observable.NewValue(0),
		now:      models.Now,
	}
}
