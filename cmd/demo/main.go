package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/kevin07696/cybersource-gateway/internal/adapters/cybersource"
	"github.com/kevin07696/cybersource-gateway/internal/adapters/secrets"
	"github.com/kevin07696/cybersource-gateway/internal/config"
	"github.com/kevin07696/cybersource-gateway/internal/domain"
	"github.com/kevin07696/cybersource-gateway/internal/domain/ports"
	"github.com/kevin07696/cybersource-gateway/internal/services/payment"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Sandbox walkthrough: authorize a test card, capture it, then refund the
// capture, using the profile named by PROFILE_NAME (default "sandbox").
func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	profiles, err := newProfileProvider(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize profile provider", zap.Error(err))
	}

	transport := cybersource.NewTransport(cybersource.TransportConfig{
		Endpoint: cfg.Gateway.Endpoint,
		Timeout:  cfg.Gateway.Timeout(),
	}, nil, logger)

	gateway := payment.NewService(profiles, transport, logger)

	profileName := envOr("PROFILE_NAME", "sandbox")
	referenceCode := "demo-" + uuid.NewString()

	authReply, err := gateway.Authorize(ctx, profileName, domain.AuthorizeParams{
		ReferenceCode: referenceCode,
		Amount:        decimal.RequireFromString("49.95"),
		Card: domain.Card{
			Number:          "4111111111111111",
			ExpirationMonth: "12",
			ExpirationYear:  "2031",
			Brand:           "VISA",
		},
		BillTo: &domain.BillingAddress{
			FirstName:  "Jane",
			LastName:   "Doe",
			Street:     "1295 Charleston Rd",
			City:       "Mountain View",
			State:      "CA",
			PostalCode: "94043",
			Country:    "US",
			Email:      "jane.doe@example.com",
		},
	})
	if err != nil {
		logger.Fatal("Authorization failed", zap.Error(err))
	}
	logger.Info("Authorization accepted",
		zap.String("request_id", authReply.RequestID),
		zap.String("reference_code", referenceCode),
	)

	captureReply, err := gateway.Capture(ctx, profileName, domain.CaptureParams{
		ReferenceCode: referenceCode,
		AuthRequestID: authReply.RequestID,
		Amount:        decimal.RequireFromString("49.95"),
		Items: []domain.LineItem{
			{ID: "demo-sku", UnitPrice: decimal.RequireFromString("49.95"), Quantity: 1},
		},
	})
	if err != nil {
		logger.Fatal("Capture failed", zap.Error(err))
	}
	logger.Info("Capture accepted", zap.String("request_id", captureReply.RequestID))

	refundReply, err := gateway.Refund(ctx, profileName, domain.RefundParams{
		ReferenceCode:    referenceCode,
		CaptureRequestID: captureReply.RequestID,
		Amount:           decimal.RequireFromString("49.95"),
		Reason:           "sandbox walkthrough",
	})
	if err != nil {
		logger.Fatal("Refund failed", zap.Error(err))
	}
	logger.Info("Refund accepted", zap.String("request_id", refundReply.RequestID))
}

func newLogger(cfg config.LoggerConfig) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Development {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = level

	return zapCfg.Build()
}

func newProfileProvider(ctx context.Context, cfg *config.Config, logger *zap.Logger) (ports.ProfileProvider, error) {
	switch cfg.Profiles.Source {
	case "aws":
		return secrets.NewAWSProfileProvider(ctx, &secrets.AWSSecretsManagerConfig{
			Region:       cfg.Profiles.AWSRegion,
			SecretPrefix: cfg.Profiles.AWSSecretPrefix,
		}, logger)
	case "vault":
		vaultCfg := secrets.DefaultVaultConfig(cfg.Profiles.VaultAddress)
		vaultCfg.Token = cfg.Profiles.VaultToken
		vaultCfg.MountPath = cfg.Profiles.VaultMountPath
		vaultCfg.PathPrefix = cfg.Profiles.VaultPathPrefix
		return secrets.NewVaultProfileProvider(vaultCfg, logger)
	default:
		return secrets.NewEnvProfileProvider(cfg.Profiles.EnvPrefix, logger), nil
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
