package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paygate/internal/domain/shared/fault"
)

func TestResolveProviderSecretPrefersConfig(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_env")

	key, err := ResolveProviderSecret(Config{StripeSecretKey: "sk_test_cfg"})
	require.NoError(t, err)
	assert.Equal(t, "sk_test_cfg", key)
}

func TestResolveProviderSecretFallsBackToEnv(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "sk_test_env")

	key, err := ResolveProviderSecret(Config{})
	require.NoError(t, err)
	assert.Equal(t, "sk_test_env", key)
}

func TestResolveProviderSecretMissingIsFailedPrecondition(t *testing.T) {
	t.Setenv("STRIPE_SECRET_KEY", "")

	_, err := ResolveProviderSecret(Config{StripeSecretKey: "   "})
	require.Error(t, err)
	assert.Equal(t, fault.KindFailedPrecondition, fault.KindOf(err))
}
