package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	jwtpkg "github.com/fastbuka/rider/internal/pkg/jwt"
	"github.com/fastbuka/rider/internal/pkg/logger"
	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/fastbuka/rider/internal/pkg/storage"
	"github.com/fastbuka/rider/internal/utils"
	"github.com/fastbuka/rider/services/session"
)

// Restore loads the persisted session. A missing, unreadable or expired
// session leaves the rider signed out.
func (u *SessionUC) Restore(ctx context.Context) models.Session {
	token, user, err := u.sessionRepo.Load(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.WarnCtx(ctx, "Failed to restore session", logger.Err(err))
		}
		u.state.Set(models.Session{})
		return models.Session{}
	}

	if jwtpkg.IsExpired(token, u.now()) {
		logger.InfoCtx(ctx, "Stored token expired, clearing session",
			logger.String("email", utils.MaskEmail(user.Email)))
		if err := u.sessionRepo.Clear(ctx); err != nil {
			logger.WarnCtx(ctx, "Failed to clear expired session", logger.Err(err))
		}
		u.state.Set(models.Session{})
		return models.Session{}
	}

	restored := models.Session{
		Token:         token,
		User:          *user,
		Authenticated: true,
	}
	u.state.Set(restored)

	logger.InfoCtx(ctx, "Session restored",
		logger.String("email", utils.MaskEmail(user.Email)))

	return restored
}

// SignIn validates the credentials locally, then exchanges them for a token
func (u *SessionUC) SignIn(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if err := validateCredentials(email, password); err != nil {
		return err
	}

	resp, err := u.sessionGW.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		logger.WarnCtx(ctx, "Sign in failed",
			logger.String("email", utils.MaskEmail(email)),
			logger.Err(err))
		u.state.Set(models.Session{})
		return fmt.Errorf("%w: %v", session.ErrSignInFailed, err)
	}

	if err := u.sessionRepo.Save(ctx, resp.Token, resp.User); err != nil {
		// The session still works for this run; it just won't survive a restart
		logger.ErrorCtx(ctx, "Failed to persist session", logger.Err(err))
	}

	u.state.Set(models.Session{
		Token:         resp.Token,
		User:          resp.User,
		Authenticated: true,
	})

	logger.InfoCtx(ctx, "Signed in",
		logger.String("email", utils.MaskEmail(resp.User.Email)))

	return nil
}

// SignOut invalidates the token remotely when possible and always clears local state
func (u *SessionUC) SignOut(ctx context.Context) {
	if u.Token() != "" {
		if err := u.sessionGW.Logout(ctx); err != nil {
			logger.WarnCtx(ctx, "Remote logout failed", logger.Err(err))
		}
	}

	if err := u.sessionRepo.Clear(ctx); err != nil {
		logger.WarnCtx(ctx, "Failed to clear stored session", logger.Err(err))
	}

	u.state.Set(models.Session{})

	u.mu.Lock()
	hooks := make([]func(), len(u.hooks))
	copy(hooks, u.hooks)
	u.mu.Unlock()

	for _, hook := range hooks {
		hook()
	}

	logger.InfoCtx(ctx, "Signed out")
}

// Current returns the session snapshot
func (u *SessionUC) Current() models.Session {
	return u.state.Get()
}

// Authenticated reports whether a rider is signed in
func (u *SessionUC) Authenticated() bool {
	return u.state.Get().Authenticated
}

// Token returns the bearer token, empty when signed out
func (u *SessionUC) Token() string {
	return u.state.Get().Token
}

// Subscribe streams session changes
func (u *SessionUC) Subscribe() (<-chan models.Session, func()) {
	return u.state.Subscribe()
}

// OnReset registers a hook run after every sign-out
func (u *SessionUC) OnReset(hook func()) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.hooks = append(u.hooks, hook)
}

func validateCredentials(email, password string) error {
	if !utils.IsValidEmail(email) {
		return &session.InputError{Field: "email", Message: "Please enter a valid email address"}
	}
	if password == "" {
		return &session.InputError{Field: "password", Message: "Password is required"}
	}
	if len(password) < MinPasswordLength {
		return &session.InputError{Field: "password", Message: "Password must be at least 8 characters"}
	}
	return nil
}
