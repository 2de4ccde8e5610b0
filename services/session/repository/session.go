package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/fastbuka/rider/internal/pkg/storage"
)

// Storage keys shared with earlier installs
const (
	KeyAuthToken = "auth_token"
	KeyUser      = "user"
)

// SessionRepo stores the session in a key/value store
type SessionRepo struct {
	store storage.Store
}

// NewSessionRepo creates a new session repository
func NewSessionRepo(store storage.Store) *SessionRepo {
	return &SessionRepo{store: store}
}

// Save writes the token and the JSON encoded user
func (r *SessionRepo) Save(ctx context.Context, token string, user models.User) error {
	userJSON, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}

	if err := r.store.Set(ctx, KeyAuthToken, token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	if err := r.store.Set(ctx, KeyUser, string(userJSON)); err != nil {
		// Never leave a token without its user
		_ = r.store.Delete(ctx, KeyAuthToken)
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}

// Load reads the token and user
func (r *SessionRepo) Load(ctx context.Context) (string, *models.User, error) {
	token, err := r.store.Get(ctx, KeyAuthToken)
	if err != nil {
		return "", nil, err
	}

	userJSON, err := r.store.Get(ctx, KeyUser)
	if err != nil {
		return "", nil, err
	}

	if token == "" || userJSON == "" {
		return "", nil, storage.ErrNotFound
	}

	var user models.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		return "", nil, fmt.Errorf("failed to decode stored user: %w", err)
	}

	return token, &user, nil
}

// Clear removes both keys
func (r *SessionRepo) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, KeyAuthToken, KeyUser)
}
