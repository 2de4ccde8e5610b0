package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/fastbuka/rider/internal/utils"
	"github.com/fastbuka/rider/services/sandbox"
)

var (
	ctx  = context.Background()
	yaba = models.Coordinates{Latitude: 6.5095, Longitude: 3.3711}
	now  = time.Date(2026, 3, 4, 15, 0, 0, 0, time.UTC)
)

func seeded(t *testing.T) *SandboxRepo {
	t.Helper()
	repo := NewSandboxRepo()
	require.NoError(t, Seed(ctx, repo, now))
	return repo
}

func TestAccounts(t *testing.T) {
	repo := seeded(t)

	account, err := repo.GetAccountByEmail(ctx, "  RIDER@fastbuka.com ")
	require.NoError(t, err)
	assert.Equal(t, DemoRiderID, account.Profile.ID)

	err = repo.CreateAccount(ctx, &sandbox.Account{Profile: models.RiderProfile{ID: "other", Email: "Rider@FastBuka.com"}})
	assert.ErrorIs(t, err, sandbox.ErrEmailTaken)

	account.Profile.FirstName = "Babatunde"
	require.NoError(t, repo.UpdateAccount(ctx, account))
	stored, err := repo.GetAccount(ctx, DemoRiderID)
	require.NoError(t, err)
	assert.Equal(t, "Babatunde", stored.Profile.FirstName)

	account.Profile.Email = "new@fastbuka.com"
	assert.Error(t, repo.UpdateAccount(ctx, account))

	_, err = repo.GetAccount(ctx, "missing")
	assert.ErrorIs(t, err, sandbox.ErrRiderNotFound)
}

func TestGetAccountReturnsCopy(t *testing.T) {
	repo := seeded(t)

	account, err := repo.GetAccount(ctx, DemoRiderID)
	require.NoError(t, err)
	account.Profile.Status = "tampered"
	account.PasswordHash[0] ^= 0xff

	stored, err := repo.GetAccount(ctx, DemoRiderID)
	require.NoError(t, err)
	assert.Equal(t, sandbox.StatusActive, stored.Profile.Status)
	assert.NotEqual(t, account.PasswordHash, stored.PasswordHash)
}

func TestOpenOrdersIn(t *testing.T) {
	repo := seeded(t)

	// Precision 5 cells are small enough to leave Lekki out
	records, err := repo.OpenOrdersIn(ctx, utils.NearbyCells(yaba, 5))
	require.NoError(t, err)

	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.Order.UUID
	}
	assert.Contains(t, ids, DemoOrderIDs()[0])
	assert.Contains(t, ids, DemoOrderIDs()[1])
	assert.NotContains(t, ids, DemoOrderIDs()[4], "Lekki is outside the Yaba cells")
}

func TestAssignAndComplete(t *testing.T) {
	repo := seeded(t)
	orderID := DemoOrderIDs()[0]

	require.NoError(t, repo.AssignOrder(ctx, orderID, DemoRiderID, now))
	assert.ErrorIs(t, repo.AssignOrder(ctx, orderID, "someone-else", now), sandbox.ErrOrderTaken)

	record, err := repo.GetOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusAccepted, record.Order.Status)
	assert.False(t, record.Open())

	cells := utils.NearbyCells(yaba, utils.NearbyPrecision)
	open, err := repo.OpenOrdersIn(ctx, cells)
	require.NoError(t, err)
	for _, r := range open {
		assert.NotEqual(t, orderID, r.Order.UUID)
	}

	_, err = repo.CompleteOrder(ctx, orderID, "someone-else", now)
	assert.ErrorIs(t, err, sandbox.ErrOrderNotAssigned)

	before, err := repo.Deliveries(ctx, DemoRiderID)
	require.NoError(t, err)

	entry, err := repo.CompleteOrder(ctx, orderID, DemoRiderID, now.Add(20*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 2500.0, entry.Amount)

	after, err := repo.Deliveries(ctx, DemoRiderID)
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1)

	_, err = repo.GetOrder(ctx, orderID)
	assert.ErrorIs(t, err, sandbox.ErrOrderNotFound)
}

func TestDeleteAccountReleasesOrders(t *testing.T) {
	repo := seeded(t)
	orderID := DemoOrderIDs()[1]
	require.NoError(t, repo.AssignOrder(ctx, orderID, DemoRiderID, now))

	require.NoError(t, repo.DeleteAccount(ctx, DemoRiderID))

	record, err := repo.GetOrder(ctx, orderID)
	require.NoError(t, err)
	assert.True(t, record.Open())
	assert.Equal(t, models.OrderStatusAvailable, record.Order.Status)

	_, err = repo.GetAccountByEmail(ctx, DemoEmail)
	assert.ErrorIs(t, err, sandbox.ErrRiderNotFound)
	assert.ErrorIs(t, repo.DeleteAccount(ctx, DemoRiderID), sandbox.ErrRiderNotFound)
}

func TestRevokedTokens(t *testing.T) {
	repo := NewSandboxRepo()

	require.NoError(t, repo.RevokeToken(ctx, "token-a", now.Add(time.Hour)))

	assert.True(t, repo.IsRevoked(ctx, "token-a", now))
	assert.False(t, repo.IsRevoked(ctx, "token-a", now.Add(2*time.Hour)))
	assert.False(t, repo.IsRevoked(ctx, "token-b", now))
}

func TestSeedDeliveriesNotInFuture(t *testing.T) {
	early := time.Date(2026, 3, 4, 8, 0, 0, 0, time.UTC)
	repo := NewSandboxRepo()
	require.NoError(t, Seed(ctx, repo, early))

	entries, err := repo.Deliveries(ctx, DemoRiderID)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	for _, e := range entries {
		assert.False(t, e.DeliveredAt.After(early), e.OrderUUID)
	}
}
