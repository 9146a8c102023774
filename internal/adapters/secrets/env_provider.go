package secrets

import (
	"context"
	"os"
	"strings"

	"github.com/kevin07696/cybersource-gateway/internal/domain"
	"github.com/kevin07696/cybersource-gateway/internal/domain/ports"
	"go.uber.org/zap"
)

// DefaultEnvPrefix is the environment variable prefix used when none is set.
const DefaultEnvPrefix = "CYBS"

// envProfileProvider resolves merchant profiles from environment variables.
//
// For a profile named "store_one" with the default prefix it reads
// CYBS_STORE_ONE_MERCHANT_ID, CYBS_STORE_ONE_TRANSACTION_KEY,
// CYBS_STORE_ONE_CURRENCY and CYBS_STORE_ONE_CLIENT_LIBRARY_VERSION.
// The environment is re-read on every call, so operators can hot-swap
// credentials without a restart.
type envProfileProvider struct {
	prefix string
	logger *zap.Logger
}

// NewEnvProfileProvider creates an environment-backed profile provider.
// An empty prefix selects DefaultEnvPrefix.
func NewEnvProfileProvider(prefix string, logger *zap.Logger) ports.ProfileProvider {
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}
	return &envProfileProvider{prefix: prefix, logger: logger}
}

// Profile resolves a named profile. An unconfigured profile returns
// (nil, nil), never an error.
func (p *envProfileProvider) Profile(_ context.Context, name string) (*domain.MerchantProfile, error) {
	key := p.prefix + "_" + normalizeProfileName(name)

	profile := &domain.MerchantProfile{
		MerchantID:           os.Getenv(key + "_MERCHANT_ID"),
		TransactionKey:       os.Getenv(key + "_TRANSACTION_KEY"),
		Currency:             os.Getenv(key + "_CURRENCY"),
		ClientLibraryVersion: os.Getenv(key + "_CLIENT_LIBRARY_VERSION"),
	}

	if profile.MerchantID == "" && profile.TransactionKey == "" && profile.Currency == "" {
		p.logger.Debug("Merchant profile not present in environment", zap.String("profile", name))
		return nil, nil
	}

	return profile, nil
}

// normalizeProfileName maps a profile name onto the env var charset.
func normalizeProfileName(name string) string {
	mapped := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, name)
	return strings.ToUpper(mapped)
}
