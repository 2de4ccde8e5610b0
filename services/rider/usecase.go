package rider

import (
	"context"

	"github.com/fastbuka/rider/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/fastbuka/rider/services/rider RiderUC

// RiderUC covers the signed-in rider's account and earnings screens
type RiderUC interface {
	Profile(ctx context.Context) (*models.RiderProfile, error)
	UpdateProfile(ctx context.Context, update models.RiderUpdate) (*models.RiderProfile, error)
	// DeleteAccount removes the account remotely and then signs out locally
	DeleteAccount(ctx context.Context) error

	Earnings(ctx context.Context) (*models.Earnings, error)
	Dashboard(ctx context.Context) (*models.Dashboard, error)
	History(ctx context.Context) ([]models.HistoryEntry, error)
}
