package orders

import (
	"context"

	"github.com/fastbuka/rider/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/fastbuka/rider/services/orders OrdersUC

// OrdersUC manages the available and active order lists
type OrdersUC interface {
	// FetchAvailable replaces the available list; on failure the list is emptied
	FetchAvailable(ctx context.Context, coords models.Coordinates) error
	// Accept removes the order from the available list once the API confirms it
	Accept(ctx context.Context, id string) error
	Deliver(ctx context.Context, id string) error

	Available() []models.Order
	Active() []models.Order
	// Count is the number of available orders shown on the tab badge
	Count() int
	SubscribeCount() (<-chan int, func())
	Reset()
}
