package secrets

import (
	"context"
	"fmt"
	"time"

	vault "github.com/hashicorp/vault/api"
	"github.com/kevin07696/cybersource-gateway/internal/domain"
	"github.com/kevin07696/cybersource-gateway/internal/domain/ports"
	"go.uber.org/zap"
)

// VaultConfig contains configuration for the Vault-backed provider
type VaultConfig struct {
	// Vault server address (e.g., "https://vault.example.com:8200")
	Address string

	// Token for token authentication
	Token string

	// Vault namespace (Vault Enterprise)
	Namespace string

	// KV v2 secrets engine mount path (default: "secret")
	MountPath string

	// PathPrefix is prepended to the profile name inside the mount,
	// e.g. "cybersource-gateway/profiles".
	PathPrefix string

	// TLS configuration
	TLSSkipVerify bool
}

// DefaultVaultConfig returns default configuration for the Vault provider
func DefaultVaultConfig(address string) *VaultConfig {
	return &VaultConfig{
		Address:   address,
		MountPath: "secret",
	}
}

// vaultProfileProvider resolves merchant profiles from a Vault KV v2 store.
// Each profile is a secret whose data fields mirror MerchantProfile. Like
// the other providers it never caches: every call reads Vault again so
// rotated credentials take effect immediately.
type vaultProfileProvider struct {
	client *vault.Client
	config *VaultConfig
	logger *zap.Logger
}

// NewVaultProfileProvider creates a Vault-backed profile provider
func NewVaultProfileProvider(cfg *VaultConfig, logger *zap.Logger) (ports.ProfileProvider, error) {
	vaultConfig := vault.DefaultConfig()
	vaultConfig.Address = cfg.Address

	if cfg.TLSSkipVerify {
		if err := vaultConfig.ConfigureTLS(&vault.TLSConfig{Insecure: true}); err != nil {
			return nil, fmt.Errorf("failed to configure TLS: %w", err)
		}
	}

	client, err := vault.NewClient(vaultConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Vault client: %w", err)
	}

	if cfg.Namespace != "" {
		client.SetNamespace(cfg.Namespace)
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("token is required for Vault profile provider")
	}
	client.SetToken(cfg.Token)

	logger.Info("Vault profile provider initialized",
		zap.String("address", cfg.Address),
		zap.String("mount_path", cfg.MountPath),
		zap.String("path_prefix", cfg.PathPrefix),
	)

	return &vaultProfileProvider{
		client: client,
		config: cfg,
		logger: logger,
	}, nil
}

// Profile resolves a named profile. A missing secret is an absent profile
// and returns (nil, nil); Vault failures surface as errors.
func (p *vaultProfileProvider) Profile(ctx context.Context, name string) (*domain.MerchantProfile, error) {
	path := name
	if p.config.PathPrefix != "" {
		path = p.config.PathPrefix + "/" + name
	}
	fullPath := fmt.Sprintf("%s/data/%s", p.config.MountPath, path)

	startTime := time.Now()
	secret, err := p.client.Logical().ReadWithContext(ctx, fullPath)
	if err != nil {
		p.logger.Error("Failed to read merchant profile from Vault",
			zap.String("profile", name),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to read secret from Vault: %w", err)
	}
	if secret == nil {
		p.logger.Debug("Merchant profile not present in Vault", zap.String("profile", name))
		return nil, nil
	}

	// KV v2 wraps the fields in a "data" element
	data, ok := secret.Data["data"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("invalid secret format from Vault at %s", fullPath)
	}

	profile := &domain.MerchantProfile{
		MerchantID:           stringField(data, "merchant_id"),
		TransactionKey:       stringField(data, "transaction_key"),
		Currency:             stringField(data, "currency"),
		ClientLibraryVersion: stringField(data, "client_library_version"),
	}

	p.logger.Debug("Merchant profile retrieved from Vault",
		zap.String("profile", name),
		zap.Duration("elapsed", time.Since(startTime)),
	)

	return profile, nil
}

func stringField(data map[string]interface{}, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}
