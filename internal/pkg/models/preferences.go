package models

// Preferences are the rider's device settings
type Preferences struct {
	DarkMode          bool   `json:"dark_mode" mapstructure:"dark_mode"`
	PushNotifications bool   `json:"push_notifications" mapstructure:"push_notifications"`
	Language          string `json:"language" mapstructure:"language"`
	Region            string `json:"region" mapstructure:"region"`
}

// DefaultPreferences mirrors a fresh install
func DefaultPreferences() Preferences {
	return Preferences{
		DarkMode:          false,
		PushNotifications: true,
		Language:          "en",
		Region:            "NG",
	}
}
