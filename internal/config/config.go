// Package config loads the application configuration: coded defaults,
// overridden by an optional YAML file, overridden by environment
// variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"dragonling/internal/dragon"
)

// Config holds the user-tunable settings. Simulation tuning lives with
// the engine; this is only the outer wiring.
type Config struct {
	Lang         string
	StatePath    string
	TickInterval time.Duration
}

// rawConfig is the YAML shape. The tick interval is a duration string
// ("5s", "2200ms") rather than raw nanoseconds.
type rawConfig struct {
	Lang         string `yaml:"lang"`
	StatePath    string `yaml:"state_path"`
	TickInterval string `yaml:"tick_interval"`
}

func defaults() *Config {
	return &Config{
		Lang:         dragon.DefaultLang,
		TickInterval: dragon.TickInterval,
	}
}

// Path returns the default config file location.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".config", "dragonling", "config.yaml")
}

// Load reads the config at path. A missing file is fine; a malformed one
// is not.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else {
		var raw rawConfig
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
		if raw.Lang != "" {
			cfg.Lang = raw.Lang
		}
		if raw.StatePath != "" {
			cfg.StatePath = raw.StatePath
		}
		if raw.TickInterval != "" {
			d, err := time.ParseDuration(raw.TickInterval)
			if err != nil {
				return nil, fmt.Errorf("parsing tick_interval: %w", err)
			}
			cfg.TickInterval = d
		}
	}

	if env := os.Getenv("DRAGONLING_LANG"); env != "" {
		cfg.Lang = env
	}
	if env := os.Getenv("DRAGONLING_STATE_PATH"); env != "" {
		cfg.StatePath = env
	}

	if !dragon.KnownLang(cfg.Lang) {
		return nil, fmt.Errorf("unknown language %q", cfg.Lang)
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = dragon.TickInterval
	}
	return cfg, nil
}
