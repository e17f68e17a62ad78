package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type envConfig struct {
	APIBaseURL     string `env:"LEDGERLINE_API_URL"`
	RequestTimeout int    `env:"LEDGERLINE_TIMEOUT"`
	DatabasePath   string `env:"LEDGERLINE_DB"`
}

// parseEnv overlays Config with values from the environment. Timeout is given
// in seconds. Unset variables leave the current values untouched.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		panic(err)
	}

	if ec.APIBaseURL != "" {
		cfg.APIBaseURL = ec.APIBaseURL
	}
	if ec.RequestTimeout > 0 {
		cfg.RequestTimeout = time.Duration(ec.RequestTimeout) * time.Second
	}
	if ec.DatabasePath != "" {
		cfg.DatabasePath = ec.DatabasePath
	}
}
