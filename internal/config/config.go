// Package config loads and validates scanner configuration via Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config captures all service configuration knobs loaded via Viper.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Scanner ScannerConfig `mapstructure:"scanner"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig controls HTTP server behavior.
type ServerConfig struct {
	Port           int      `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ScannerConfig governs outbound fetches and check inputs.
type ScannerConfig struct {
	TimeoutSeconds  int      `mapstructure:"timeout_seconds"`
	CrawlerToken    string   `mapstructure:"crawler_token"`
	ExpectedSchemas []string `mapstructure:"expected_schemas"`
	UserAgent       string   `mapstructure:"user_agent"`
}

// LoggingConfig toggles zap development features.
type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

// Load builds a Config from disk/environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SCANNER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{"https://aiseoaudit.io"})
	v.SetDefault("scanner.timeout_seconds", 5)
	v.SetDefault("scanner.crawler_token", "GPTBot")
	v.SetDefault("scanner.expected_schemas", []string{
		"Organization",
		"WebSite",
		"FAQPage",
		"HowTo",
		"Article",
	})
	// No User-Agent override by default; the HTTP client default is sent.
	v.SetDefault("scanner.user_agent", "")
	v.SetDefault("logging.development", true)
}

// Validate enforces required values and reasonable limits.
func (c Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be > 0")
	}
	if c.Scanner.TimeoutSeconds <= 0 {
		return fmt.Errorf("scanner.timeout_seconds must be > 0")
	}
	if c.Scanner.CrawlerToken == "" {
		return fmt.Errorf("scanner.crawler_token must not be empty")
	}
	return nil
}

// FetchTimeout converts the configured timeout into a duration.
func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.Scanner.TimeoutSeconds) * time.Second
}
