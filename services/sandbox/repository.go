package sandbox

import (
	"context"
	"time"

	"github.com/fastbuka/rider/internal/pkg/models"
)

// SandboxRepo defines the sandbox's data store
type SandboxRepo interface {
	CreateAccount(ctx context.Context, account *Account) error
	GetAccount(ctx context.Context, riderID string) (*Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*Account, error)
	UpdateAccount(ctx context.Context, account *Account) error
	// DeleteAccount also releases the rider's undelivered orders
	DeleteAccount(ctx context.Context, riderID string) error

	AddOrder(ctx context.Context, record OrderRecord) error
	GetOrder(ctx context.Context, orderID string) (*OrderRecord, error)
	// OpenOrdersIn lists unassigned orders whose geohash starts with one of cells
	OpenOrdersIn(ctx context.Context, cells []string) ([]OrderRecord, error)
	AssignOrder(ctx context.Context, orderID, riderID string, at time.Time) error
	// CompleteOrder removes the order and records it in the rider's history
	CompleteOrder(ctx context.Context, orderID, riderID string, at time.Time) (*models.HistoryEntry, error)

	AddDelivery(ctx context.Context, riderID string, entry models.HistoryEntry) error
	Deliveries(ctx context.Context, riderID string) ([]models.HistoryEntry, error)

	RevokeToken(ctx context.Context, token string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, token string, now time.Time) bool
}
