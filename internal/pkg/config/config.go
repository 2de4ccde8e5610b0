package config

import (
	"log"
	"os"
	"strconv"

	"github.com/fastbuka/rider/internal/pkg/models"
	"github.com/joho/godotenv"
)

// DefaultAPIBaseURL is the development deployment of the rider API
const DefaultAPIBaseURL = "https://dev.fastbuka.com/api/v1"

// InitConfig loads configPath into the environment when running locally
// and builds the configuration from environment variables.
func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "fastbuka-rider")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Remote API config
	configs.API.BaseURL = GetEnv("API_BASE_URL", DefaultAPIBaseURL)
	configs.API.Timeout = GetEnvAsInt("API_TIMEOUT", 30)
	configs.API.MaxRetries = GetEnvAsInt("API_MAX_RETRIES", 0)

	// Session storage config
	configs.Storage.Driver = GetEnv("STORAGE_DRIVER", "file")
	configs.Storage.Path = GetEnv("STORAGE_PATH", ".fastbuka/session.enc")
	configs.Storage.Secret = GetEnv("STORAGE_SECRET", "")
	configs.Storage.Prefix = GetEnv("STORAGE_PREFIX", "fastbuka:rider:")

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 1440)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "fastbuka-sandbox")

	// Cloudinary config
	configs.Cloudinary.CloudName = GetEnv("CLOUDINARY_CLOUD_NAME", "")
	configs.Cloudinary.APIKey = GetEnv("CLOUDINARY_API_KEY", "")
	configs.Cloudinary.APISecret = GetEnv("CLOUDINARY_API_SECRET", "")
	configs.Cloudinary.Folder = GetEnv("CLOUDINARY_FOLDER", "rider-applications")

	// Preferences config
	configs.Preferences.Path = GetEnv("PREFERENCES_PATH", ".fastbuka/preferences.yaml")

	// Sandbox config
	configs.Sandbox.Host = GetEnv("SANDBOX_HOST", "")
	configs.Sandbox.Port = GetEnvAsInt("SANDBOX_PORT", 9990)

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.LogsEnabled = GetEnvAsBool("NEW_RELIC_LOGS_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")
	configs.Logger.Type = GetEnv("LOG_TYPE", "console")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
