package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"immo-service/internal/immo"
)

// Config is the runtime configuration, read from the environment and an
// optional .env file
type Config struct {
	DatabaseURL string
	LogMode     string
	Policy      immo.Policy
	AutoMigrate bool
}

// Load reads the configuration. Variables already set in the environment
// win over those in envFiles (default ".env").
func Load(envFiles ...string) (*Config, error) {
	_ = godotenv.Load(envFiles...)

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LogMode:     getEnv("IMMO_LOG_MODE", "dev"),
		AutoMigrate: true,
	}

	policy, err := immo.ParsePolicy(os.Getenv("IMMO_STORAGE_POLICY"))
	if err != nil {
		return nil, fmt.Errorf("invalid IMMO_STORAGE_POLICY: %w", err)
	}
	cfg.Policy = policy

	if v := os.Getenv("IMMO_AUTO_MIGRATE"); v != "" {
		cfg.AutoMigrate, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid IMMO_AUTO_MIGRATE %q: %w", v, err)
		}
	}

	if cfg.DatabaseURL == "" && cfg.Policy.NeedsDatabase() {
		return nil, fmt.Errorf("DATABASE_URL not set in environment or .env file")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
