package preferences

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesFileWithDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "preferences.yaml")

	store, err := Open(path)
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err)

	prefs, err := store.Get()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPreferences(), prefs)
}

func TestStore_SettersPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")

	store, err := Open(path)
	require.NoError(t, err)

	require.NoError(t, store.SetDarkMode(true))
	require.NoError(t, store.SetPushNotifications(false))
	require.NoError(t, store.SetLanguage("yo"))
	require.NoError(t, store.SetRegion("GH"))

	reopened, err := Open(path)
	require.NoError(t, err)

	prefs, err := reopened.Get()
	require.NoError(t, err)
	assert.Equal(t, models.Preferences{
		DarkMode:          true,
		PushNotifications: false,
		Language:          "yo",
		Region:            "GH",
	}, prefs)
}

func TestStore_Reset(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "preferences.yaml"))
	require.NoError(t, err)

	require.NoError(t, store.SetDarkMode(true))
	require.NoError(t, store.Reset())

	prefs, err := store.Get()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPreferences(), prefs)
}

func TestStore_RejectsEmptyValues(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "preferences.yaml"))
	require.NoError(t, err)

	assert.Error(t, store.SetLanguage(""))
	assert.Error(t, store.SetRegion(""))
}

func TestOpen_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dark_mode: [unterminated"), 0o600))

	_, err := Open(path)
	assert.Error(t, err)
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}
