// Package config loads deployment settings for the report service.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Report  ReportConfig
	Session SessionConfig
	Catalog CatalogConfig
}

// ReportConfig is the static text printed on every report.
type ReportConfig struct {
	Organization string
	Title        string
	FooterLines  []string
	// Currency is the symbol printed before every amount, e.g. "KSh".
	Currency string
}

// SessionConfig controls the in-memory report sessions.
type SessionConfig struct {
	// TTL is how long an idle session keeps its submitted report.
	TTL time.Duration
	// Sweep is the cron schedule on which idle sessions are dropped.
	Sweep string
}

// CatalogConfig controls the product catalog collection.
type CatalogConfig struct {
	// Seed fills an empty catalog_products collection with the built-in catalog.
	Seed bool
}

// Load reads configuration from defaults, an optional growmate.json in the
// working directory or ./config, and GROWMATE_* environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	return LoadFrom(".", "./config")
}

// LoadFrom is Load with explicit config file search paths.
func LoadFrom(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("growmate")
	v.SetConfigType("json")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables override config file
	v.SetEnvPrefix("GROWMATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Report.Title) == "" {
		return errors.New("report.title must not be empty")
	}
	if strings.TrimSpace(c.Report.Currency) == "" {
		return errors.New("report.currency must not be empty")
	}
	if c.Session.TTL < 0 {
		return fmt.Errorf("session.ttl must not be negative, got %s", c.Session.TTL)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("report.organization", "Growmate")
	v.SetDefault("report.title", "Daily Sales Report")
	v.SetDefault("report.footerLines", []string{"Growmate Field Sales", "Generated from the daily sales report form"})
	v.SetDefault("report.currency", "KSh")

	v.SetDefault("session.ttl", 12*time.Hour)
	v.SetDefault("session.sweep", "*/10 * * * *")

	v.SetDefault("catalog.seed", true)
}
