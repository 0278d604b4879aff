package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
	LLM      LLMConfig      `mapstructure:"llm" validate:"required"`
	Credit   CreditConfig   `mapstructure:"credit"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret                 string `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenExpiryMinutes        int    `mapstructure:"token_expiry_minutes" validate:"required,gt=0"`
	RefreshTokenExpiryMinutes int    `mapstructure:"refresh_token_expiry_minutes" validate:"required,gt=0"`
}

// LLMConfig contains all LLM integration related settings.
//
// FastModel and SmartModel name the two provider quality tiers; every
// AI-backed action selects one of them. RequestTimeoutSeconds bounds a
// single provider call.
type LLMConfig struct {
	GeminiAPIKey          string `mapstructure:"gemini_api_key"`
	FastModel             string `mapstructure:"fast_model" validate:"required"`
	SmartModel            string `mapstructure:"smart_model" validate:"required"`
	RequestTimeoutSeconds int    `mapstructure:"request_timeout_seconds" validate:"required,gt=0"`
	MaxOutputTokens       int    `mapstructure:"max_output_tokens" validate:"required,gt=0"`
}

// CreditConfig contains credit ledger settings.
type CreditConfig struct {
	// StartingBalance is granted to every newly registered user.
	StartingBalance int `mapstructure:"starting_balance" validate:"gte=0"`
}
