package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	// AllowRedispute returns resolved deposits to the disputable state so a
	// later dispute may reopen them. The default keeps resolved terminal.
	AllowRedispute bool `env:"ALLOW_REDISPUTE" envDefault:"false"`

	// Ops endpoint (optional - leave empty to disable)
	OpsAddr            string        `env:"OPS_ADDR"             envDefault:""`
	OpsShutdownTimeout time.Duration `env:"OPS_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
