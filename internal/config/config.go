package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Auth   AuthConfig   `mapstructure:"auth"   validate:"required"`
	Store  StoreConfig  `mapstructure:"store"  validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// ShutdownTimeoutSeconds bounds how long in-flight requests may run after
	// a shutdown signal.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gte=0"`
}

// AuthConfig contains the shared secret every request must present.
type AuthConfig struct {
	APIKey string `mapstructure:"api_key" validate:"required"`
}

// StoreConfig contains settings for the in-memory task collections.
type StoreConfig struct {
	// IDStrategy is "length" (len+1, the historical behaviour) or "sequence"
	// (per-collection monotonically increasing counter).
	IDStrategy string `mapstructure:"id_strategy" validate:"required,oneof=length sequence"`
}
