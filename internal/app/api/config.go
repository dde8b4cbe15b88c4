package api

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.temporal.io/sdk/client"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port              string  `envconfig:"PORT" default:"8080"`
	PostgresDSN       string  `envconfig:"POSTGRES_DSN"`
	RedisAddr         string  `envconfig:"REDIS_ADDR"`
	TaxRate           float64 `envconfig:"TAX_RATE" default:"0.10"`
	TemporalAddress   string  `envconfig:"TEMPORAL_ADDRESS"`
	TemporalNamespace string  `envconfig:"TEMPORAL_NAMESPACE"`
	TemporalDisabled  bool    `envconfig:"TEMPORAL_DISABLED"`
}

// LoadConfig reads a local .env file when present, then the environment,
// applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment: %w", err)
	}
	if cfg.TaxRate < 0 {
		return Config{}, fmt.Errorf("TAX_RATE must not be negative, got %v", cfg.TaxRate)
	}
	if cfg.TemporalAddress == "" {
		cfg.TemporalAddress = client.DefaultHostPort
	}
	if cfg.TemporalNamespace == "" {
		cfg.TemporalNamespace = client.DefaultNamespace
	}
	return cfg, nil
}
