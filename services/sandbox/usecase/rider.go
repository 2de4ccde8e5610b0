package usecase

import (
	"context"

	"github.com/fastbuka/rider/internal/pkg/logger"
	"github.com/fastbuka/rider/internal/pkg/models"
)

// GetRider returns the rider's profile
func (u *SandboxUC) GetRider(ctx context.Context, riderID string) (*models.RiderProfile, error) {
	account, err := u.sandboxRepo.GetAccount(ctx, riderID)
	if err != nil {
		return nil, err
	}
	return &account.Profile, nil
}

// UpdateRider applies the non-nil fields of update
func (u *SandboxUC) UpdateRider(ctx context.Context, riderID string, update models.RiderUpdate) (*models.RiderProfile, error) {
	account, err := u.sandboxRepo.GetAccount(ctx, riderID)
	if err != nil {
		return nil, err
	}

	if update.FirstName != nil {
		account.Profile.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		account.Profile.LastName = *update.LastName
	}
	if update.PhoneNumber != nil {
		account.Profile.PhoneNumber = *update.PhoneNumber
	}
	if update.HomeAddress != nil {
		account.Profile.HomeAddress = *update.HomeAddress
	}

	if err := u.sandboxRepo.UpdateAccount(ctx, account); err != nil {
		return nil, err
	}
	return &account.Profile, nil
}

// DeleteRider removes the account
func (u *SandboxUC) DeleteRider(ctx context.Context, riderID string) error {
	if err := u.sandboxRepo.DeleteAccount(ctx, riderID); err != nil {
		return err
	}
	logger.InfoCtx(ctx, "Rider account deleted", logger.String("rider_id", riderID))
	return nil
}
