package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Provider modes selectable via PROVIDER_MODE.
const (
	ProviderModeStripe = "stripe"
	ProviderModeMemory = "memory"
)

// Config aggregates application configuration values loaded from environment variables.
type Config struct {
	Env             string
	HTTPAddr        string
	ProviderMode    string
	StripeSecretKey string
	// APIToken, when non-empty, switches on the bearer-token gate for the
	// payment endpoints. Empty keeps both operations open to
	// unauthenticated callers (guest bookings), which is the documented
	// default contract.
	APIToken string
}

// Load parses configuration from the current environment. A .env file in the
// working directory is applied first when present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Env:             getEnv("APP_ENV", "dev"),
		HTTPAddr:        getEnv("HTTP_ADDR", ":8080"),
		ProviderMode:    strings.ToLower(getEnv("PROVIDER_MODE", ProviderModeStripe)),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		APIToken:        os.Getenv("PAYGATE_API_TOKEN"),
	}

	switch cfg.ProviderMode {
	case ProviderModeStripe, ProviderModeMemory:
	default:
		return Config{}, fmt.Errorf("invalid PROVIDER_MODE %q", cfg.ProviderMode)
	}
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
