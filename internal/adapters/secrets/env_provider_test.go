package secrets

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestEnvProfileProvider_AbsentProfile(t *testing.T) {
	provider := NewEnvProfileProvider("TESTCYBS", zaptest.NewLogger(t))

	profile, err := provider.Profile(context.Background(), "nowhere")

	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestEnvProfileProvider_PopulatedProfile(t *testing.T) {
	t.Setenv("TESTCYBS_SANDBOX_MERCHANT_ID", "acme_store")
	t.Setenv("TESTCYBS_SANDBOX_TRANSACTION_KEY", "topsecretkey")
	t.Setenv("TESTCYBS_SANDBOX_CURRENCY", "USD")
	t.Setenv("TESTCYBS_SANDBOX_CLIENT_LIBRARY_VERSION", "1.4.0")

	provider := NewEnvProfileProvider("TESTCYBS", zaptest.NewLogger(t))

	profile, err := provider.Profile(context.Background(), "sandbox")

	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "acme_store", profile.MerchantID)
	assert.Equal(t, "topsecretkey", profile.TransactionKey)
	assert.Equal(t, "USD", profile.Currency)
	assert.Equal(t, "1.4.0", profile.ClientLibraryVersion)
	assert.True(t, profile.IsUsable())
}

func TestEnvProfileProvider_PartialProfileIsReturnedButUnusable(t *testing.T) {
	t.Setenv("TESTCYBS_PARTIAL_MERCHANT_ID", "acme_store")

	provider := NewEnvProfileProvider("TESTCYBS", zaptest.NewLogger(t))

	profile, err := provider.Profile(context.Background(), "partial")

	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.False(t, profile.IsUsable())
}

func TestEnvProfileProvider_HotSwap(t *testing.T) {
	t.Setenv("TESTCYBS_LIVE_MERCHANT_ID", "acme_store")
	t.Setenv("TESTCYBS_LIVE_TRANSACTION_KEY", "key-one")
	t.Setenv("TESTCYBS_LIVE_CURRENCY", "USD")

	provider := NewEnvProfileProvider("TESTCYBS", zaptest.NewLogger(t))

	profile, err := provider.Profile(context.Background(), "live")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "key-one", profile.TransactionKey)

	// rotate the credential without rebuilding the provider
	t.Setenv("TESTCYBS_LIVE_TRANSACTION_KEY", "key-two")

	profile, err = provider.Profile(context.Background(), "live")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "key-two", profile.TransactionKey)
}

func TestEnvProfileProvider_NameNormalization(t *testing.T) {
	t.Setenv("TESTCYBS_STORE_ONE_EU_MERCHANT_ID", "eu_store")
	t.Setenv("TESTCYBS_STORE_ONE_EU_TRANSACTION_KEY", "eu-key")
	t.Setenv("TESTCYBS_STORE_ONE_EU_CURRENCY", "EUR")

	provider := NewEnvProfileProvider("TESTCYBS", zaptest.NewLogger(t))

	profile, err := provider.Profile(context.Background(), "store-one.eu")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "eu_store", profile.MerchantID)
}

func TestEnvProfileProvider_DefaultPrefix(t *testing.T) {
	t.Setenv("CYBS_DEFAULTED_MERCHANT_ID", "acme_store")
	t.Setenv("CYBS_DEFAULTED_TRANSACTION_KEY", "topsecretkey")
	t.Setenv("CYBS_DEFAULTED_CURRENCY", "USD")

	provider := NewEnvProfileProvider("", zaptest.NewLogger(t))

	profile, err := provider.Profile(context.Background(), "defaulted")
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "acme_store", profile.MerchantID)
}
