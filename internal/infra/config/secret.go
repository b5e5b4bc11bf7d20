package config

import (
	"os"
	"strings"

	"paygate/internal/domain/shared/fault"
)

// secretEnvKey names the environment fallback for the provider secret.
const secretEnvKey = "STRIPE_SECRET_KEY"

// ResolveProviderSecret looks up the provider secret key: structured config
// first, then the environment, in that order. The secret must be resolved
// before any provider client is constructed; a missing secret is a hard
// precondition failure. Pure lookup, no side effects.
func ResolveProviderSecret(cfg Config) (string, error) {
	if key := strings.TrimSpace(cfg.StripeSecretKey); key != "" {
		return key, nil
	}
	if key := strings.TrimSpace(os.Getenv(secretEnvKey)); key != "" {
		return key, nil
	}
	return "", fault.FailedPrecondition("Payment provider secret key is not configured", nil)
}
