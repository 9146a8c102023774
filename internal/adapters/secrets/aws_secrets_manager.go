package secrets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	secretsmanagertypes "github.com/aws/aws-sdk-go-v2/service/secretsmanager/types"
	"github.com/kevin07696/cybersource-gateway/internal/domain"
	"github.com/kevin07696/cybersource-gateway/internal/domain/ports"
	"go.uber.org/zap"
)

// AWSSecretsManagerConfig contains configuration for the AWS-backed provider
type AWSSecretsManagerConfig struct {
	// AWS Region (e.g., "us-east-1")
	Region string

	// Optional: AWS profile name (for local development)
	Profile string

	// Optional: Custom endpoint (for LocalStack testing)
	Endpoint string

	// SecretPrefix is prepended to the profile name to form the secret id,
	// e.g. "cybersource-gateway/profiles" + "/" + name.
	SecretPrefix string
}

// awsProfileProvider resolves merchant profiles from AWS Secrets Manager.
// Each secret holds one profile as a JSON document matching the
// MerchantProfile field tags. Secrets are fetched fresh on every call so
// rotated credentials take effect without a restart.
type awsProfileProvider struct {
	client *secretsmanager.Client
	config *AWSSecretsManagerConfig
	logger *zap.Logger
}

// NewAWSProfileProvider creates an AWS Secrets Manager backed profile provider
func NewAWSProfileProvider(ctx context.Context, cfg *AWSSecretsManagerConfig, logger *zap.Logger) (ports.ProfileProvider, error) {
	var awsConfig aws.Config
	var err error

	if cfg.Profile != "" {
		// Use specific profile (local development)
		awsConfig, err = awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithRegion(cfg.Region),
			awsconfig.WithSharedConfigProfile(cfg.Profile),
		)
	} else {
		// Use default credentials chain (IAM role in production)
		awsConfig, err = awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithRegion(cfg.Region),
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	clientOptions := []func(*secretsmanager.Options){}
	if cfg.Endpoint != "" {
		// Custom endpoint (for LocalStack)
		clientOptions = append(clientOptions, func(o *secretsmanager.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}

	client := secretsmanager.NewFromConfig(awsConfig, clientOptions...)

	logger.Info("AWS Secrets Manager profile provider initialized",
		zap.String("region", cfg.Region),
		zap.String("secret_prefix", cfg.SecretPrefix),
	)

	return &awsProfileProvider{
		client: client,
		config: cfg,
		logger: logger,
	}, nil
}

// Profile resolves a named profile. A missing secret is an absent profile
// and returns (nil, nil); other AWS failures surface as errors.
func (p *awsProfileProvider) Profile(ctx context.Context, name string) (*domain.MerchantProfile, error) {
	secretID := name
	if p.config.SecretPrefix != "" {
		secretID = p.config.SecretPrefix + "/" + name
	}

	startTime := time.Now()
	result, err := p.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	})
	if err != nil {
		var notFound *secretsmanagertypes.ResourceNotFoundException
		if errors.As(err, &notFound) {
			p.logger.Debug("Merchant profile secret not found", zap.String("profile", name))
			return nil, nil
		}
		p.logger.Error("Failed to retrieve merchant profile secret",
			zap.String("profile", name),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to get secret %s: %w", secretID, err)
	}

	var profile domain.MerchantProfile
	if err := json.Unmarshal([]byte(aws.ToString(result.SecretString)), &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile secret %s: %w", secretID, err)
	}

	p.logger.Debug("Merchant profile retrieved from AWS Secrets Manager",
		zap.String("profile", name),
		zap.Duration("elapsed", time.Since(startTime)),
	)

	return &profile, nil
}
