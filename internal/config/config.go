package config

import (
	"fmt"

	"github.com/caarlos0/env/v9"
)

// Config holds the server settings, parsed from the environment.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required"`
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"INFO"`
	// DefaultRegion selects the labor rate when a request names neither a
	// rate id nor a region.
	DefaultRegion string `env:"DEFAULT_REGION"`
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
