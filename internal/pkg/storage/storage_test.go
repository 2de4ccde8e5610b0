package storage

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/fastbuka/rider/internal/pkg/database"
	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisClient(t *testing.T) (*miniredis.Miniredis, *database.RedisClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	client, err := database.NewRedisClient(models.RedisConfig{Host: mr.Host(), Port: port})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return mr, client
}

func stores(t *testing.T) map[string]Store {
	_, client := newRedisClient(t)

	file, err := NewFileStore(filepath.Join(t.TempDir(), "session.enc"), "secret")
	require.NoError(t, err)

	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   file,
		"redis":  NewRedisStore(client, "test:"),
	}
}

func TestStore_Contract(t *testing.T) {
	for name, store := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, err := store.Get(ctx, "auth_token")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, store.Set(ctx, "auth_token", "T1"))
			require.NoError(t, store.Set(ctx, "user", `{"email":"john@x.com"}`))

			v, err := store.Get(ctx, "auth_token")
			require.NoError(t, err)
			assert.Equal(t, "T1", v)

			require.NoError(t, store.Delete(ctx, "auth_token", "user"))

			_, err = store.Get(ctx, "auth_token")
			assert.ErrorIs(t, err, ErrNotFound)
			_, err = store.Get(ctx, "user")
			assert.ErrorIs(t, err, ErrNotFound)

			assert.NoError(t, store.Delete(ctx))
		})
	}
}

func TestRedisStore_Prefix(t *testing.T) {
	mr, client := newRedisClient(t)
	store := NewRedisStore(client, "fastbuka:rider:")

	require.NoError(t, store.Set(context.Background(), "auth_token", "T1"))

	v, err := mr.Get("fastbuka:rider:auth_token")
	require.NoError(t, err)
	assert.Equal(t, "T1", v)
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.enc")
	ctx := context.Background()

	first, err := NewFileStore(path, "secret")
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "auth_token", "T1"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "T1")

	second, err := NewFileStore(path, "secret")
	require.NoError(t, err)

	v, err := second.Get(ctx, "auth_token")
	require.NoError(t, err)
	assert.Equal(t, "T1", v)
}

func TestFileStore_WrongSecret(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.enc")
	ctx := context.Background()

	store, err := NewFileStore(path, "secret")
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "auth_token", "T1"))

	other, err := NewFileStore(path, "another")
	require.NoError(t, err)

	_, err = other.Get(ctx, "auth_token")
	assert.ErrorIs(t, err, ErrDecrypt)

	// Clearing an unreadable file removes it
	require.NoError(t, other.Delete(ctx, "auth_token"))
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_DeleteLastKeyRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.enc")
	ctx := context.Background()

	store, err := NewFileStore(path, "secret")
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "auth_token", "T1"))
	require.NoError(t, store.Delete(ctx, "auth_token"))

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestNewFileStore_RequiresPath(t *testing.T) {
	_, err := NewFileStore("", "secret")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	_, client := newRedisClient(t)

	tests := []struct {
		name    string
		cfg     models.StorageConfig
		redis   *database.RedisClient
		want    interface{}
		wantErr bool
	}{
		{name: "memory", cfg: models.StorageConfig{Driver: DriverMemory}, want: &MemoryStore{}},
		{name: "file", cfg: models.StorageConfig{Driver: DriverFile, Path: filepath.Join(t.TempDir(), "s.enc")}, want: &FileStore{}},
		{name: "redis", cfg: models.StorageConfig{Driver: DriverRedis}, redis: client, want: &RedisStore{}},
		{name: "redis without client", cfg: models.StorageConfig{Driver: DriverRedis}, wantErr: true},
		{name: "unknown", cfg: models.StorageConfig{Driver: "s3"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := New(tt.cfg, tt.redis)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, store)
		})
	}
}
