package usecase

import (
	"context"
	"strings"

	"github.com/fastbuka/rider/internal/pkg/logger"
	"github.com/fastbuka/rider/internal/pkg/models"
)

// orderLists is the local state a command patches
type orderLists struct {
	available []models.Order
	active    []models.Order
}

func (l orderLists) clone() orderLists {
	return orderLists{
		available: append([]models.Order(nil), l.available...),
		active:    append([]models.Order(nil), l.active...),
	}
}

// command is a remote call paired with the local patch it confirms
type command struct {
	name    string
	orderID string
	remote  func(ctx context.Context) error
	apply   func(l *orderLists)
}

// execute runs the remote call first. The patch is applied to a copy of the
// lists and only committed after the call succeeds, so a failure leaves the
// snapshot in place.
func (u *OrdersUC) execute(ctx context.Context, cmd command) error {
	if err := cmd.remote(ctx); err != nil {
		logger.WarnCtx(ctx, "Order command failed",
			logger.String("command", cmd.name),
			logger.String("order_id", cmd.orderID),
			logger.Err(err))
		return err
	}

	u.mu.Lock()
	working := u.lists.clone()
	cmd.apply(&working)
	u.lists = working
	u.mu.Unlock()

	count := u.publishCount()

	logger.InfoCtx(ctx, "Order command applied",
		logger.String("command", cmd.name),
		logger.String("order_id", cmd.orderID),
		logger.Int("available", count))

	return nil
}

func removeOrder(list []models.Order, id string) []models.Order {
	out := list[:0]
	for _, o := range list {
		if !strings.EqualFold(o.UUID, id) {
			out = append(out, o)
		}
	}
	return out
}

func findOrder(list []models.Order, id string) (models.Order, bool) {
	for _, o := range list {
		if strings.EqualFold(o.UUID, id) {
			return o, true
		}
	}
	return models.Order{}, false
}
