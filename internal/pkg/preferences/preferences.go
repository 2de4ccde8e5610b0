package preferences

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fastbuka/rider/internal/pkg/logger"
	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/spf13/viper"
)

const (
	keyDarkMode          = "dark_mode"
	keyPushNotifications = "push_notifications"
	keyLanguage          = "language"
	keyRegion            = "region"
)

// Store is a YAML-file backed settings store. Every setter persists immediately.
type Store struct {
	mu   sync.Mutex
	v    *viper.Viper
	path string
}

// Open loads the settings file at path, creating it with defaults when absent
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("preferences: path is required")
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	defaults := models.DefaultPreferences()
	v.SetDefault(keyDarkMode, defaults.DarkMode)
	v.SetDefault(keyPushNotifications, defaults.PushNotifications)
	v.SetDefault(keyLanguage, defaults.Language)
	v.SetDefault(keyRegion, defaults.Region)

	s := &Store{v: v, path: path}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		logger.Info("Creating preferences file", logger.String("path", path))
		if err := s.write(); err != nil {
			return nil, err
		}
		return s, nil
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading preferences file: %w", err)
	}

	return s, nil
}

// Get returns the current settings
func (s *Store) Get() (models.Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var prefs models.Preferences
	if err := s.v.Unmarshal(&prefs); err != nil {
		return models.Preferences{}, fmt.Errorf("error decoding preferences: %w", err)
	}
	return prefs, nil
}

// SetDarkMode toggles dark mode
func (s *Store) SetDarkMode(enabled bool) error {
	return s.set(keyDarkMode, enabled)
}

// SetPushNotifications toggles push notifications
func (s *Store) SetPushNotifications(enabled bool) error {
	return s.set(keyPushNotifications, enabled)
}

// SetLanguage sets the display language code
func (s *Store) SetLanguage(language string) error {
	if language == "" {
		return errors.New("preferences: language is required")
	}
	return s.set(keyLanguage, language)
}

// SetRegion sets the region code
func (s *Store) SetRegion(region string) error {
	if region == "" {
		return errors.New("preferences: region is required")
	}
	return s.set(keyRegion, region)
}

// Reset restores the defaults
func (s *Store) Reset() error {
	d := models.DefaultPreferences()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.v.Set(keyDarkMode, d.DarkMode)
	s.v.Set(keyPushNotifications, d.PushNotifications)
	s.v.Set(keyLanguage, d.Language)
	s.v.Set(keyRegion, d.Region)
	return s.write()
}

func (s *Store) set(key string, value interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.v.Set(key, value)
	return s.write()
}

func (s *Store) write() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("error creating preferences directory: %w", err)
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("error writing preferences file: %w", err)
	}
	return nil
}
