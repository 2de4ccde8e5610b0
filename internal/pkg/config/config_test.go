package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg := InitConfig("")

	assert.Equal(t, DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, 30, cfg.API.Timeout)
	assert.Zero(t, cfg.API.MaxRetries, "automatic retries are opt-in")
	assert.Equal(t, "file", cfg.Storage.Driver)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.False(t, cfg.Cloudinary.Enabled())
}

func TestInitConfig_LoadsEnvFileLocally(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rider.env")
	content := "API_BASE_URL=http://localhost:9990/api/v1\nSTORAGE_DRIVER=redis\nAPI_TIMEOUT=5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("APP_ENV", "local")
	// godotenv never overrides variables that exist, so register and unset them;
	// t.Setenv restores the originals after the test.
	for _, key := range []string{"API_BASE_URL", "STORAGE_DRIVER", "API_TIMEOUT"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg := InitConfig(path)

	assert.Equal(t, "http://localhost:9990/api/v1", cfg.API.BaseURL)
	assert.Equal(t, "redis", cfg.Storage.Driver)
	assert.Equal(t, 5, cfg.API.Timeout)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_BAD_INT", "forty-two")
	t.Setenv("TEST_BOOL", "true")

	assert.Equal(t, 42, GetEnvAsInt("TEST_INT", 1))
	assert.Equal(t, 1, GetEnvAsInt("TEST_BAD_INT", 1))
	assert.True(t, GetEnvAsBool("TEST_BOOL", false))
	assert.Equal(t, "fallback", GetEnv("TEST_MISSING", "fallback"))
}
