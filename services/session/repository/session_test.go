package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/fastbuka/rider/internal/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	*storage.MemoryStore
	failKey string
}

func (s *failingStore) Set(ctx context.Context, key, value string) error {
	if key == s.failKey {
		return errors.New("disk full")
	}
	return s.MemoryStore.Set(ctx, key, value)
}

func testUser() models.User {
	return models.User{
		Email:   "john@x.com",
		Profile: models.Profile{FirstName: "John", LastName: "Doe", Username: "johnd"},
	}
}

func TestSessionRepo_SaveLoadClear(t *testing.T) {
	store := storage.NewMemoryStore()
	repo := NewSessionRepo(store)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "T1", testUser()))

	raw, err := store.Get(ctx, KeyUser)
	require.NoError(t, err)
	assert.JSONEq(t, `{"email":"john@x.com","profile":{"first_name":"John","last_name":"Doe","username":"johnd"}}`, raw)

	token, user, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T1", token)
	assert.Equal(t, testUser(), *user)

	require.NoError(t, repo.Clear(ctx))

	_, _, err = repo.Load(ctx)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestSessionRepo_LoadPartial(t *testing.T) {
	tests := []struct {
		name  string
		setup map[string]string
	}{
		{name: "token only", setup: map[string]string{KeyAuthToken: "T1"}},
		{name: "user only", setup: map[string]string{KeyUser: `{"email":"john@x.com"}`}},
		{name: "empty token", setup: map[string]string{KeyAuthToken: "", KeyUser: `{"email":"john@x.com"}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storage.NewMemoryStore()
			for k, v := range tt.setup {
				require.NoError(t, store.Set(context.Background(), k, v))
			}

			_, user, err := NewSessionRepo(store).Load(context.Background())

			assert.ErrorIs(t, err, storage.ErrNotFound)
			assert.Nil(t, user)
		})
	}
}

func TestSessionRepo_LoadCorruptUser(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, KeyAuthToken, "T1"))
	require.NoError(t, store.Set(ctx, KeyUser, "{not json"))

	_, _, err := NewSessionRepo(store).Load(ctx)

	require.Error(t, err)
	assert.NotErrorIs(t, err, storage.ErrNotFound)
}

func TestSessionRepo_SaveUserFailureRemovesToken(t *testing.T) {
	store := &failingStore{MemoryStore: storage.NewMemoryStore(), failKey: KeyUser}
	ctx := context.Background()

	err := NewSessionRepo(store).Save(ctx, "T1", testUser())

	require.Error(t, err)
	_, err = store.Get(ctx, KeyAuthToken)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
