package usecase

import (
	"sync"
	"time"

	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/fastbuka/rider/internal/pkg/observable"
	"github.com/fastbuka/rider/services/session"
)

// MinPasswordLength matches the login form rule
const MinPasswordLength = 8

type SessionUC struct {
	sessionRepo session.SessionRepo
	sessionGW   session.SessionGW
	state       *observable.Value[models.Session]

	mu    sync.Mutex
	hooks []func()

	now func() time.Time
}

// NewSessionUC creates a new session usecase instance, signed out until Restore
func NewSessionUC(
	sessionRepo session.SessionRepo,
	sessionGW session.SessionGW,
) *SessionUC {
	return &SessionUC{
		sessionRepo: sessionRepo,
		sessionGW:   sessionGW,
		state:       observable.NewValue(models.Session{}),
		now:         time.Now,
	}
}
