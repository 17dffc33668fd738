package config

// Config represents the complete configuration structure
type Config struct {
	Webseer WebseerConfig `mapstructure:"webseer"`
	Search  SearchConfig  `mapstructure:"search"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// WebseerConfig holds Webseer API connection details
type WebseerConfig struct {
	APIKey    string `mapstructure:"api_key"`
	BaseURL   string `mapstructure:"base_url"`
	TimeoutMS int    `mapstructure:"timeout_ms"`
}

// SearchConfig contains default domain filters applied by the CLI
type SearchConfig struct {
	AllowedDomains []string `mapstructure:"allowed_domains"`
	BlockedDomains []string `mapstructure:"blocked_domains"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// Overrides carries explicit values that take precedence over both the config
// file and the environment. Zero values leave the resolved value untouched.
type Overrides struct {
	APIKey    string
	BaseURL   string
	TimeoutMS int
}
