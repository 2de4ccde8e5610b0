package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/fastbuka/rider/internal/pkg/logger"
	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/fastbuka/rider/internal/utils"
	"github.com/fastbuka/rider/services/sandbox"
)

// NearbyOrders lists open orders within NearbyRadiusKm of coords, nearest first
func (u *SandboxUC) NearbyOrders(ctx context.Context, coords models.Coordinates) ([]models.Order, error) {
	if err := coords.Validate(); err != nil {
		return nil, err
	}

	records, err := u.sandboxRepo.OpenOrdersIn(ctx, utils.NearbyCells(coords, utils.NearbyPrecision))
	if err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0, len(records))
	for _, record := range records {
		distance := utils.CalculateDistance(coords, record.Order.Vendor.Coordinates())
		if distance > NearbyRadiusKm {
			continue
		}

		order := record.Order
		order.Distance = math.Round(distance*10) / 10
		order.EstimatedTime = estimatedTime(distance)
		orders = append(orders, order)
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Distance < orders[j].Distance
	})
	return orders, nil
}

// AcceptOrder assigns an open order to the rider
func (u *SandboxUC) AcceptOrder(ctx context.Context, riderID, orderID string) error {
	if _, err := uuid.Parse(orderID); err != nil {
		return sandbox.ErrOrderNotFound
	}

	if err := u.sandboxRepo.AssignOrder(ctx, orderID, riderID, u.now()); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Order accepted",
		logger.String("rider_id", riderID),
		logger.String("order_id", orderID))
	return nil
}

// DeliverOrder completes an order held by the rider
func (u *SandboxUC) DeliverOrder(ctx context.Context, riderID, orderID string) error {
	if _, err := uuid.Parse(orderID); err != nil {
		return sandbox.ErrOrderNotFound
	}

	entry, err := u.sandboxRepo.CompleteOrder(ctx, orderID, riderID, u.now())
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Order delivered",
		logger.String("rider_id", riderID),
		logger.String("order_id", orderID),
		logger.Float64("amount", entry.Amount))
	return nil
}

// estimatedTime assumes city traffic at about 20km/h plus pickup time
func estimatedTime(distanceKm float64) string {
	minutes := 5 + int(math.Ceil(distanceKm*3))
	return fmt.Sprintf("%d mins", minutes)
}
