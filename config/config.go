package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Environment variables consumed once at load time.
const (
	EnvAPIKey  = "WEBSEER_API_KEY"
	EnvBaseURL = "WEBSEER_BASE_URL"
)

// Load resolves the configuration from file, environment, and explicit
// overrides. Precedence, highest first: overrides, environment, config file,
// built-in defaults. The config file is optional as long as an API key
// resolves from another source.
func Load(configPath string, overrides Overrides) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// Environment fallback
	_ = v.BindEnv("webseer.api_key", EnvAPIKey)
	_ = v.BindEnv("webseer.base_url", EnvBaseURL)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".webseer"))
		}

		// Check /etc
		v.AddConfigPath("/etc/webseer/")

		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	applyOverrides(&cfg, overrides)

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("webseer.base_url", "https://api.webseer.ai")
	v.SetDefault("webseer.timeout_ms", 120000)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

func applyOverrides(cfg *Config, overrides Overrides) {
	if overrides.APIKey != "" {
		cfg.Webseer.APIKey = overrides.APIKey
	}
	if overrides.BaseURL != "" {
		cfg.Webseer.BaseURL = overrides.BaseURL
	}
	if overrides.TimeoutMS > 0 {
		cfg.Webseer.TimeoutMS = overrides.TimeoutMS
	}
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Webseer.APIKey) == "" {
		return fmt.Errorf("webseer.api_key must be set (or export %s)", EnvAPIKey)
	}

	if cfg.Webseer.TimeoutMS <= 0 {
		return fmt.Errorf("webseer.timeout_ms must be positive")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
