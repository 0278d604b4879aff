package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and an optional
// config.yaml in the working directory. Environment variables use the
// DNYAN_ prefix with underscores for nesting (e.g. DNYAN_SERVER_PORT,
// DNYAN_LLM_GEMINI_API_KEY) and take precedence over file values.
// Returns a populated Config struct or an error if loading or validation
// fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults keep local development working with nothing but a database
	// URL and an API key exported.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("auth.token_expiry_minutes", 60)
	v.SetDefault("auth.refresh_token_expiry_minutes", 10080) // 7 days
	v.SetDefault("llm.fast_model", "gemini-2.0-flash")
	v.SetDefault("llm.smart_model", "gemini-2.5-pro")
	v.SetDefault("llm.request_timeout_seconds", 60)
	v.SetDefault("llm.max_output_tokens", 8192)
	v.SetDefault("credit.starting_balance", 100)

	// Keys without defaults must be registered so AutomaticEnv can see them.
	v.SetDefault("database.url", "")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("llm.gemini_api_key", "")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// No config file is fine; env vars and defaults cover everything.
	}

	v.SetEnvPrefix("DNYAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
