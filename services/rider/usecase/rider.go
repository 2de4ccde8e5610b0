package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/fastbuka/rider/internal/pkg/logger"
	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/fastbuka/rider/services/rider"
)

// Profile fetches the rider's account record
func (u *RiderUC) Profile(ctx context.Context) (*models.RiderProfile, error) {
	profile, err := u.riderGW.GetRider(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to load rider profile", logger.Err(err))
		return nil, err
	}
	return profile, nil
}

// UpdateProfile trims the provided fields and sends only those
func (u *RiderUC) UpdateProfile(ctx context.Context, update models.RiderUpdate) (*models.RiderProfile, error) {
	fields := map[string]**string{
		"first_name":   &update.FirstName,
		"last_name":    &update.LastName,
		"phone_number": &update.PhoneNumber,
		"home_address": &update.HomeAddress,
	}

	provided := 0
	for name, field := range fields {
		if *field == nil {
			continue
		}
		trimmed := strings.TrimSpace(**field)
		if trimmed == "" {
			return nil, fmt.Errorf("%s: %w", name, rider.ErrBlankField)
		}
		*field = &trimmed
		provided++
	}
	if provided == 0 {
		return nil, rider.ErrEmptyUpdate
	}

	profile, err := u.riderGW.UpdateRider(ctx, update)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to update rider profile", logger.Err(err))
		return nil, err
	}

	logger.InfoCtx(ctx, "Rider profile updated", logger.Int("fields", provided))
	return profile, nil
}

// DeleteAccount deletes the account; the local session is only cleared on success
func (u *RiderUC) DeleteAccount(ctx context.Context) error {
	if err := u.riderGW.DeleteRider(ctx); err != nil {
		logger.ErrorCtx(ctx, "Failed to delete rider account", logger.Err(err))
		return err
	}

	logger.InfoCtx(ctx, "Rider account deleted")
	u.session.SignOut(ctx)
	return nil
}

// Earnings fetches the earnings summary
func (u *RiderUC) Earnings(ctx context.Context) (*models.Earnings, error) {
	earnings, err := u.riderGW.Earnings(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to load earnings", logger.Err(err))
		return nil, err
	}
	return earnings, nil
}

// Dashboard fetches today's and this week's summaries
func (u *RiderUC) Dashboard(ctx context.Context) (*models.Dashboard, error) {
	dashboard, err := u.riderGW.Dashboard(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to load dashboard", logger.Err(err))
		return nil, err
	}
	return dashboard, nil
}

// History fetches completed deliveries, most recent first
func (u *RiderUC) History(ctx context.Context) ([]models.HistoryEntry, error) {
	entries, err := u.riderGW.History(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to load delivery history", logger.Err(err))
		return nil, err
	}
	sortHistory(entries)
	return entries, nil
}

func sortHistory(entries []models.HistoryEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].DeliveredAt.After(entries[j].DeliveredAt)
	})
}
