// Package config loads client configuration from the environment, an
// optional .env file, and an optional YAML profile.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the client settings.
type Config struct {
	// APIBaseURL is the root of the backing REST service.
	APIBaseURL string `env:"RENTDESK_API_URL"`

	// RequestTimeout bounds each gateway round trip.
	RequestTimeout time.Duration `env:"RENTDESK_TIMEOUT" envDefault:"15s"`

	// StatePath is the SQLite file holding the persisted session and
	// preferences. Defaults to the user config directory.
	StatePath string `env:"RENTDESK_STATE"`

	// RenewalWindowDays is the dashboard's upcoming-renewal horizon.
	RenewalWindowDays int `env:"RENTDESK_RENEWAL_WINDOW" envDefault:"30"`
}

// profile mirrors Config for the YAML file; pointer fields distinguish
// "absent" from zero so the file only overrides what it sets.
type profile struct {
	APIBaseURL        *string        `yaml:"api_url"`
	RequestTimeout    *time.Duration `yaml:"timeout"`
	StatePath         *string        `yaml:"state_path"`
	RenewalWindowDays *int           `yaml:"renewal_window_days"`
}

// Load builds the configuration: .env (when present), then environment
// variables, then the YAML profile at profilePath (when given), which
// wins over both.
func Load(profilePath string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if profilePath != "" {
		buf, err := os.ReadFile(profilePath)
		if err != nil {
			return nil, fmt.Errorf("read profile: %w", err)
		}
		var p profile
		if err := yaml.Unmarshal(buf, &p); err != nil {
			return nil, fmt.Errorf("parse profile: %w", err)
		}
		if p.APIBaseURL != nil {
			cfg.APIBaseURL = *p.APIBaseURL
		}
		if p.RequestTimeout != nil {
			cfg.RequestTimeout = *p.RequestTimeout
		}
		if p.StatePath != nil {
			cfg.StatePath = *p.StatePath
		}
		if p.RenewalWindowDays != nil {
			cfg.RenewalWindowDays = *p.RenewalWindowDays
		}
	}

	if cfg.StatePath == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve state path: %w", err)
		}
		cfg.StatePath = filepath.Join(dir, "rentdesk", "state.db")
	}
	return &cfg, nil
}
