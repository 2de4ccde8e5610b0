package models

// Config represents application configuration
type Config struct {
	App         AppConfig
	API         APIConfig
	Storage     StorageConfig
	Redis       RedisConfig
	JWT         JWTConfig
	Cloudinary  CloudinaryConfig
	Preferences PreferencesConfig
	Sandbox     SandboxConfig
	NewRelic    NewRelicConfig
	Logger      LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// APIConfig points the gateway at the remote rider API
type APIConfig struct {
	BaseURL    string
	Timeout    int // in seconds
	MaxRetries int // GET retries, 0 disables
}

// StorageConfig selects where the session token and user are persisted.
// Driver is one of "memory", "file" or "redis".
type StorageConfig struct {
	Driver string
	Path   string
	Secret string
	Prefix string
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// JWTConfig contains JWT configuration used by the sandbox API
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// CloudinaryConfig contains media upload credentials
type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

// Enabled reports whether uploads can be performed
func (c CloudinaryConfig) Enabled() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

// PreferencesConfig contains the settings file location
type PreferencesConfig struct {
	Path string
}

// SandboxConfig contains the stub API server configuration
type SandboxConfig struct {
	Host string
	Port int
}

// NewRelicConfig contains New Relic configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	LogsEnabled bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
	Type     string
}
