package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds settings read from the environment. Command-line flags
// override these after Load.
type Config struct {
	// HistoryDB is the save journal database path. Empty selects the XDG default.
	HistoryDB string `env:"ANNOTIZ_DB"`

	// DisableHistory turns the save journal off.
	DisableHistory bool `env:"ANNOTIZ_NO_HISTORY"`

	// LogFile is the log destination. Empty selects the XDG default.
	LogFile string `env:"ANNOTIZ_LOG"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"ANNOTIZ_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	return cfg, nil
}

// Overrides carries flag values. Zero values leave the Config untouched.
type Overrides struct {
	HistoryDB      string
	DisableHistory bool
	LogFile        string
	LogLevel       string
}

// Apply returns cfg with every non-zero override applied.
func (cfg Config) Apply(o Overrides) Config {
	if o.HistoryDB != "" {
		cfg.HistoryDB = o.HistoryDB
	}
	if o.DisableHistory {
		cfg.DisableHistory = true
	}
	if o.LogFile != "" {
		cfg.LogFile = o.LogFile
	}
	if o.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(o.LogLevel))
	}
	return cfg
}
