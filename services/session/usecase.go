package session

import (
	"context"

	"github.com/fastbuka/rider/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/fastbuka/rider/services/session SessionUC

// SessionUC owns the authenticated state of the app
type SessionUC interface {
	// Restore loads a persisted session; storage problems degrade to signed out
	Restore(ctx context.Context) models.Session
	SignIn(ctx context.Context, email, password string) error
	// SignOut always clears local state, even when the remote logout fails
	SignOut(ctx context.Context)

	Current() models.Session
	Authenticated() bool
	Token() string
	Subscribe() (<-chan models.Session, func())

	// OnReset registers a hook run after every sign-out
	OnReset(hook func())
}
