package rider

import (
	"context"

	"github.com/fastbuka/rider/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/fastbuka/rider/services/rider RiderGW,SessionEnder

// RiderGW defines the /rider endpoints
type RiderGW interface {
	GetRider(ctx context.Context) (*models.RiderProfile, error)
	UpdateRider(ctx context.Context, update models.RiderUpdate) (*models.RiderProfile, error)
	DeleteRider(ctx context.Context) error
	Earnings(ctx context.Context) (*models.Earnings, error)
	Dashboard(ctx context.Context) (*models.Dashboard, error)
	History(ctx context.Context) ([]models.HistoryEntry, error)
}

// SessionEnder ends the local session after the account is gone
type SessionEnder interface {
	SignOut(ctx context.Context)
}
