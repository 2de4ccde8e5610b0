package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/fastbuka/rider/services/sandbox"
)

// SandboxRepo keeps every sandbox record in process memory
type SandboxRepo struct {
	mu sync.RWMutex

	accounts   map[string]*sandbox.Account // by rider id
	emails     map[string]string           // lowercased email to rider id
	orders     map[string]*sandbox.OrderRecord
	deliveries map[string][]models.HistoryEntry
	revoked    map[string]time.Time
}

// NewSandboxRepo creates an empty repository
func NewSandboxRepo() *SandboxRepo {
	return &SandboxRepo{
		accounts:   make(map[string]*sandbox.Account),
		emails:     make(map[string]string),
		orders:     make(map[string]*sandbox.OrderRecord),
		deliveries: make(map[string][]models.HistoryEntry),
		revoked:    make(map[string]time.Time),
	}
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func orderKey(id string) string {
	return strings.ToLower(id)
}

func copyAccount(a *sandbox.Account) *sandbox.Account {
	out := *a
	out.PasswordHash = append([]byte(nil), a.PasswordHash...)
	return &out
}

// CreateAccount stores a new account, rejecting a duplicate email
func (r *SandboxRepo) CreateAccount(ctx context.Context, account *sandbox.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := emailKey(account.Profile.Email)
	if _, exists := r.emails[key]; exists {
		return sandbox.ErrEmailTaken
	}

	r.accounts[account.Profile.ID] = copyAccount(account)
	r.emails[key] = account.Profile.ID
	return nil
}

// GetAccount returns a copy of the account
func (r *SandboxRepo) GetAccount(ctx context.Context, riderID string) (*sandbox.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[riderID]
	if !ok {
		return nil, sandbox.ErrRiderNotFound
	}
	return copyAccount(account), nil
}

// GetAccountByEmail looks an account up case-insensitively
func (r *SandboxRepo) GetAccountByEmail(ctx context.Context, email string) (*sandbox.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.emails[emailKey(email)]
	if !ok {
		return nil, sandbox.ErrRiderNotFound
	}
	return copyAccount(r.accounts[id]), nil
}

// UpdateAccount replaces a stored account. The email cannot change.
func (r *SandboxRepo) UpdateAccount(ctx context.Context, account *sandbox.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.accounts[account.Profile.ID]
	if !ok {
		return sandbox.ErrRiderNotFound
	}
	if emailKey(current.Profile.Email) != emailKey(account.Profile.Email) {
		return fmt.Errorf("update account %s: email is immutable", account.Profile.ID)
	}

	r.accounts[account.Profile.ID] = copyAccount(account)
	return nil
}

// DeleteAccount removes the account and puts its held orders back up for grabs
func (r *SandboxRepo) DeleteAccount(ctx context.Context, riderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[riderID]
	if !ok {
		return sandbox.ErrRiderNotFound
	}

	for _, record := range r.orders {
		if record.AcceptedBy == riderID {
			record.AcceptedBy = ""
			record.Order.Status = models.OrderStatusAvailable
			record.Order.AcceptedAt = nil
		}
	}

	delete(r.emails, emailKey(account.Profile.Email))
	delete(r.accounts, riderID)
	delete(r.deliveries, riderID)
	return nil
}

// AddOrder stores an order
func (r *SandboxRepo) AddOrder(ctx context.Context, record sandbox.OrderRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := orderKey(record.Order.UUID)
	if _, exists := r.orders[key]; exists {
		return fmt.Errorf("add order %s: already exists", record.Order.UUID)
	}
	r.orders[key] = &record
	return nil
}

// GetOrder returns a copy of the order
func (r *SandboxRepo) GetOrder(ctx context.Context, orderID string) (*sandbox.OrderRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.orders[orderKey(orderID)]
	if !ok {
		return nil, sandbox.ErrOrderNotFound
	}
	out := *record
	return &out, nil
}

// OpenOrdersIn lists unassigned orders inside the given geohash cells, ordered by id
func (r *SandboxRepo) OpenOrdersIn(ctx context.Context, cells []string) ([]sandbox.OrderRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []sandbox.OrderRecord
	for _, record := range r.orders {
		if !record.Open() {
			continue
		}
		for _, cell := range cells {
			if strings.HasPrefix(record.Geohash, cell) {
				out = append(out, *record)
				break
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Order.UUID < out[j].Order.UUID
	})
	return out, nil
}

// AssignOrder hands an open order to a rider
func (r *SandboxRepo) AssignOrder(ctx context.Context, orderID, riderID string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.orders[orderKey(orderID)]
	if !ok {
		return sandbox.ErrOrderNotFound
	}
	if !record.Open() {
		return sandbox.ErrOrderTaken
	}

	record.AcceptedBy = riderID
	record.Order.Status = models.OrderStatusAccepted
	record.Order.AcceptedAt = &at
	return nil
}

// CompleteOrder removes a delivered order and credits the rider
func (r *SandboxRepo) CompleteOrder(ctx context.Context, orderID, riderID string, at time.Time) (*models.HistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := orderKey(orderID)
	record, ok := r.orders[key]
	if !ok {
		return nil, sandbox.ErrOrderNotFound
	}
	if record.AcceptedBy != riderID {
		return nil, sandbox.ErrOrderNotAssigned
	}

	entry := models.HistoryEntry{
		OrderUUID:       record.Order.UUID,
		PickupAddress:   record.Order.Vendor.Address,
		DeliveryAddress: record.Order.DeliveryAddress,
		Amount:          record.Order.TotalAmount,
		DeliveredAt:     at,
	}
	delete(r.orders, key)
	r.deliveries[riderID] = append(r.deliveries[riderID], entry)

	return &entry, nil
}

// AddDelivery appends to a rider's history
func (r *SandboxRepo) AddDelivery(ctx context.Context, riderID string, entry models.HistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[riderID]; !ok {
		return sandbox.ErrRiderNotFound
	}
	r.deliveries[riderID] = append(r.deliveries[riderID], entry)
	return nil
}

// Deliveries returns a copy of the rider's history in insertion order
func (r *SandboxRepo) Deliveries(ctx context.Context, riderID string) ([]models.HistoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.accounts[riderID]; !ok {
		return nil, sandbox.ErrRiderNotFound
	}
	return append([]models.HistoryEntry(nil), r.deliveries[riderID]...), nil
}

// RevokeToken blocks a token until it would have expired anyway
func (r *SandboxRepo) RevokeToken(ctx context.Context, token string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for t, exp := range r.revoked {
		if now.After(exp) {
			delete(r.revoked, t)
		}
	}
	r.revoked[token] = expiresAt
	return nil
}

// IsRevoked reports whether the token was revoked and has not yet expired
func (r *SandboxRepo) IsRevoked(ctx context.Context, token string, now time.Time) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exp, ok := r.revoked[token]
	return ok && !now.After(exp)
}
