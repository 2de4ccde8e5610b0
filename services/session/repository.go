package session

import (
	"context"

	"github.com/fastbuka/rider/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/fastbuka/rider/services/session SessionRepo

// SessionRepo persists the token and user between launches
type SessionRepo interface {
	Save(ctx context.Context, token string, user models.User) error
	// Load returns storage.ErrNotFound when either value is missing
	Load(ctx context.Context) (string, *models.User, error)
	Clear(ctx context.Context) error
}
