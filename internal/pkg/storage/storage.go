// Package storage persists small string values (the session token and the
// serialized user) behind a key/value interface with interchangeable backends.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/fastbuka/rider/internal/pkg/database"
	"github.com/fastbuka/rider/internal/pkg/models"
)

// ErrNotFound is returned by Get when the key has no value
var ErrNotFound = errors.New("storage: key not found")

// Storage drivers
const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverRedis  = "redis"
)

// Store is a string key/value store
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

// New builds the store selected by cfg.Driver. redis is only used by the redis driver.
func New(cfg models.StorageConfig, redis *database.RedisClient) (Store, error) {
	switch cfg.Driver {
	case DriverMemory:
		return NewMemoryStore(), nil
	case DriverFile, "":
		return NewFileStore(cfg.Path, cfg.Secret)
	case DriverRedis:
		if redis == nil {
			return nil, errors.New("storage: redis driver requires a redis client")
		}
		return NewRedisStore(redis, cfg.Prefix), nil
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.Driver)
	}
}
