package sandbox

import (
	"time"

	"github.com/fastbuka/rider/internal/pkg/models"
)

// Rider account statuses
const (
	StatusPending = "pending"
	StatusActive  = "active"
)

// Account is a rider known to the sandbox
type Account struct {
	Profile          models.RiderProfile
	PasswordHash     []byte
	VerificationCode string
	Application      *models.RiderApplication
	CreatedAt        time.Time
}

// OrderRecord is an order with its dispatch state
type OrderRecord struct {
	Order      models.Order
	Geohash    string
	AcceptedBy string
}

// Open reports whether no rider holds the order
func (r OrderRecord) Open() bool {
	return r.AcceptedBy == ""
}
