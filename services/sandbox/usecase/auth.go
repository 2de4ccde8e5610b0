package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	jwtpkg "github.com/fastbuka/rider/internal/pkg/jwt"
	"github.com/fastbuka/rider/internal/pkg/logger"
	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/fastbuka/rider/internal/utils"
	"github.com/fastbuka/rider/services/sandbox"
)

// Login exchanges credentials for a signed token
func (u *SandboxUC) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	account, err := u.sandboxRepo.GetAccountByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sandbox.ErrRiderNotFound) {
			return nil, sandbox.ErrInvalidCredentials
		}
		return nil, err
	}

	// Registered riders have no password until their application is approved
	if len(account.PasswordHash) == 0 {
		return nil, sandbox.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(req.Password)); err != nil {
		return nil, sandbox.ErrInvalidCredentials
	}

	token, _, err := jwtpkg.GenerateToken(account.Profile.ID, account.Profile.Email, u.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.InfoCtx(ctx, "Rider logged in",
		logger.String("rider_id", account.Profile.ID),
		logger.String("email", utils.MaskEmail(account.Profile.Email)))

	return &models.AuthResponse{
		Token: token,
		User: models.User{
			ID:    account.Profile.ID,
			Email: account.Profile.Email,
			Profile: models.Profile{
				FirstName: account.Profile.FirstName,
				LastName:  account.Profile.LastName,
			},
		},
	}, nil
}

// Logout revokes the token for the rest of its lifetime
func (u *SandboxUC) Logout(ctx context.Context, token string) error {
	claims, err := jwtpkg.ValidateToken(token, u.cfg.Secret)
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	expiresAt := u.now().Add(time.Duration(u.cfg.Expiration) * time.Minute)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	return u.sandboxRepo.RevokeToken(ctx, token, expiresAt)
}

// IsRevoked reports whether the token was logged out
func (u *SandboxUC) IsRevoked(ctx context.Context, token string) bool {
	return u.sandboxRepo.IsRevoked(ctx, token, u.now())
}

// Register validates a rider application and opens a pending account
func (u *SandboxUC) Register(ctx context.Context, app models.RiderApplication) (*models.RegistrationResult, error) {
	if stage, res := u.validator.FirstInvalidStage(app); stage != 0 {
		field := res.Fields()[0]
		return nil, fmt.Errorf("%w: %s: %s", sandbox.ErrInvalidApplication, stage, res[field])
	}

	info := app.PersonalInfo
	account := &sandbox.Account{
		Profile: models.RiderProfile{
			ID:          uuid.NewString(),
			Email:       strings.TrimSpace(info.Email),
			FirstName:   info.FirstName,
			LastName:    info.LastName,
			PhoneNumber: info.PhoneNumber,
			HomeAddress: info.HomeAddress,
			VehicleType: app.VehicleDetails.VehicleType,
			Status:      sandbox.StatusPending,
		},
		VerificationCode: u.newCode(),
		Application:      &app,
		CreatedAt:        u.now(),
	}

	if err := u.sandboxRepo.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	// There is no mail transport; the code is only ever logged
	logger.InfoCtx(ctx, "Rider registered",
		logger.String("rider_id", account.Profile.ID),
		logger.String("email", utils.MaskEmail(account.Profile.Email)),
		logger.String("account", utils.MaskAccountNumber(app.Identification.AccountNumber)),
		logger.String("verification_code", account.VerificationCode))

	return &models.RegistrationResult{
		RiderID: account.Profile.ID,
		Email:   account.Profile.Email,
		Status:  account.Profile.Status,
	}, nil
}

// VerifyEmail confirms the code sent at registration
func (u *SandboxUC) VerifyEmail(ctx context.Context, req models.VerifyEmailRequest) error {
	account, err := u.sandboxRepo.GetAccountByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if account.Profile.EmailVerified {
		return nil
	}
	if account.VerificationCode == "" || strings.TrimSpace(req.Code) != account.VerificationCode {
		return sandbox.ErrInvalidCode
	}

	account.Profile.EmailVerified = true
	account.VerificationCode = ""
	return u.sandboxRepo.UpdateAccount(ctx, account)
}

func verificationCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "000000"
	}
	return fmt.Sprintf("%06d", n.Int64())
}
