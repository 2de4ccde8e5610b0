package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fastbuka/rider/internal/pkg/logger"
	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/fastbuka/rider/services/orders"
	"github.com/google/uuid"
)

// FetchAvailable loads the orders near coords
func (u *OrdersUC) FetchAvailable(ctx context.Context, coords models.Coordinates) error {
	if err := coords.Validate(); err != nil {
		logger.WarnCtx(ctx, "Rejected order fetch coordinates", logger.Err(err))
		u.clearAvailable()
		return fmt.Errorf("fetch available orders: %w", err)
	}

	list, err := u.ordersGW.ListOrders(ctx, coords)
	if err != nil {
		logger.ErrorCtx(ctx, "Failed to fetch available orders",
			logger.Float64("latitude", coords.Latitude),
			logger.Float64("longitude", coords.Longitude),
			logger.Err(err))
		u.clearAvailable()
		return err
	}

	u.mu.Lock()
	available := make([]models.Order, 0, len(list))
	for _, o := range list {
		// An order already accepted on this device stays in the active list only
		if _, active := findOrder(u.lists.active, o.UUID); active {
			continue
		}
		o.Status = models.OrderStatusAvailable
		available = append(available, o)
	}
	u.lists.available = available
	u.mu.Unlock()

	count := u.publishCount()

	logger.InfoCtx(ctx, "Fetched available orders", logger.Int("count", count))
	return nil
}

func (u *OrdersUC) clearAvailable() {
	u.mu.Lock()
	u.lists.available = nil
	u.mu.Unlock()
	u.publishCount()
}

// publishCount publishes the length of the current available list. Reading
// the list inside Update keeps concurrent publishers from leaving a stale count.
func (u *OrdersUC) publishCount() int {
	return u.count.Update(func(int) int {
		u.mu.Lock()
		defer u.mu.Unlock()
		return len(u.lists.available)
	})
}

// Accept accepts an available order
func (u *OrdersUC) Accept(ctx context.Context, id string) error {
	id, err := normalizeID(id)
	if err != nil {
		return err
	}

	u.mu.Lock()
	order, ok := findOrder(u.lists.available, id)
	u.mu.Unlock()
	if !ok {
		return fmt.Errorf("accept %s: %w", id, orders.ErrOrderNotFound)
	}
	id = order.UUID

	return u.execute(ctx, command{
		name:    "accept",
		orderID: id,
		remote: func(ctx context.Context) error {
			return u.ordersGW.AcceptOrder(ctx, id)
		},
		apply: func(l *orderLists) {
			l.available = removeOrder(l.available, id)

			acceptedAt := u.now()
			order.Status = models.OrderStatusAccepted
			order.AcceptedAt = &acceptedAt
			l.active = append(l.active, order)
		},
	})
}

// Deliver marks an active order delivered
func (u *OrdersUC) Deliver(ctx context.Context, id string) error {
	id, err := normalizeID(id)
	if err != nil {
		return err
	}

	u.mu.Lock()
	order, ok := findOrder(u.lists.active, id)
	u.mu.Unlock()
	if !ok {
		return fmt.Errorf("deliver %s: %w", id, orders.ErrOrderNotFound)
	}
	id = order.UUID

	return u.execute(ctx, command{
		name:    "deliver",
		orderID: id,
		remote: func(ctx context.Context) error {
			return u.ordersGW.DeliverOrder(ctx, id)
		},
		apply: func(l *orderLists) {
			l.active = removeOrder(l.active, id)
		},
	})
}

// Available returns a copy of the available list
func (u *OrdersUC) Available() []models.Order {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]models.Order(nil), u.lists.available...)
}

// Active returns a copy of the accepted, undelivered orders
func (u *OrdersUC) Active() []models.Order {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]models.Order(nil), u.lists.active...)
}

// Count returns the published available count
func (u *OrdersUC) Count() int {
	return u.count.Get()
}

// SubscribeCount streams the available count
func (u *OrdersUC) SubscribeCount() (<-chan int, func()) {
	return u.count.Subscribe()
}

// Reset clears both lists, used on sign-out
func (u *OrdersUC) Reset() {
	u.mu.Lock()
	u.lists = orderLists{}
	u.mu.Unlock()
	u.publishCount()
}

func normalizeID(id string) (string, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", fmt.Errorf("%w: %q", orders.ErrInvalidOrderID, id)
	}
	return parsed.String(), nil
}
