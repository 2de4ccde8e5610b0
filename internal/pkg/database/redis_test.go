package database

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, *RedisClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	client, err := NewRedisClient(models.RedisConfig{
		Host:     mr.Host(),
		Port:     port,
		PoolSize: 2,
	})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return mr, client
}

func TestNewRedisClient(t *testing.T) {
	_, client := setupMiniredis(t)

	assert.NotNil(t, client)
	assert.NotNil(t, client.Client)
}

func TestNewRedisClient_ConnectionError(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	port, _ := strconv.Atoi(mr.Port())
	mr.Close()

	client, err := NewRedisClient(models.RedisConfig{Host: "127.0.0.1", Port: port})

	assert.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisClient_SetGetDelete(t *testing.T) {
	mr, client := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "test:key", "test-value", time.Hour))
	assert.True(t, mr.Exists("test:key"))
	assert.Equal(t, time.Hour, mr.TTL("test:key"))

	val, err := client.Get(ctx, "test:key")
	require.NoError(t, err)
	assert.Equal(t, "test-value", val)

	require.NoError(t, client.Delete(ctx, "test:key"))
	assert.False(t, mr.Exists("test:key"))
}

func TestRedisClient_Get_NotFound(t *testing.T) {
	_, client := setupMiniredis(t)

	val, err := client.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.Empty(t, val)
}

func TestRedisClient_ServerDown(t *testing.T) {
	mr, client := setupMiniredis(t)
	mr.Close()

	_, err := client.Get(context.Background(), "test:key")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrKeyNotFound)
}
