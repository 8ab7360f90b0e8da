package config

import (
	"flag"

	"github.com/caarlos0/env/v6"
)

// Config holds the service-level settings. Table names and AWS settings stay
// env-only inside their own packages; this covers the pieces main wires up.
type Config struct {
	RunAddress string `env:"RUN_ADDRESS"`
	NATSURL    string `env:"NATS_URL"`
	LogEnv     string `env:"LOG_ENV"`
}

// Get parses flags first and lets environment variables override them.
func Get() (*Config, error) {
	cfg := &Config{}

	flag.StringVar(&cfg.RunAddress, "a", ":8080", "listen address")
	flag.StringVar(&cfg.NATSURL, "n", "", "NATS server URL (empty disables event publishing)")
	flag.StringVar(&cfg.LogEnv, "l", "development", "log environment (development|production)")
	flag.Parse()

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
