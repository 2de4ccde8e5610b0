package sandbox

import (
	"context"

	"github.com/fastbuka/rider/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/fastbuka/rider/services/sandbox SandboxUC

// SandboxUC implements the rider API in memory
type SandboxUC interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	IsRevoked(ctx context.Context, token string) bool
	Register(ctx context.Context, app models.RiderApplication) (*models.RegistrationResult, error)
	VerifyEmail(ctx context.Context, req models.VerifyEmailRequest) error

	GetRider(ctx context.Context, riderID string) (*models.RiderProfile, error)
	UpdateRider(ctx context.Context, riderID string, update models.RiderUpdate) (*models.RiderProfile, error)
	DeleteRider(ctx context.Context, riderID string) error

	NearbyOrders(ctx context.Context, coords models.Coordinates) ([]models.Order, error)
	AcceptOrder(ctx context.Context, riderID, orderID string) error
	DeliverOrder(ctx context.Context, riderID, orderID string) error

	Earnings(ctx context.Context, riderID string) (*models.Earnings, error)
	Dashboard(ctx context.Context, riderID string) (*models.Dashboard, error)
	History(ctx context.Context, riderID string) ([]models.HistoryEntry, error)
}
