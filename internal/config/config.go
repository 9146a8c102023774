package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Gateway  GatewayConfig
	Profiles ProfilesConfig
	Logger   LoggerConfig
}

// GatewayConfig holds the gateway endpoint configuration
type GatewayConfig struct {
	Endpoint  string // Full URL of the gateway SOAP endpoint
	TimeoutMS int    // Request timeout in milliseconds (default: 30000)
}

// Timeout returns the configured transport timeout
func (c GatewayConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMS) * time.Millisecond
}

// ProfilesConfig selects and configures the merchant profile source
type ProfilesConfig struct {
	Source string // env, aws, or vault

	EnvPrefix string

	AWSRegion       string
	AWSSecretPrefix string

	VaultAddress    string
	VaultToken      string
	VaultMountPath  string
	VaultPathPrefix string
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level       string // debug, info, warn, error
	Development bool
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Gateway: GatewayConfig{
			Endpoint:  getEnv("GATEWAY_ENDPOINT", ""),
			TimeoutMS: getEnvAsInt("GATEWAY_TIMEOUT_MS", 30000),
		},
		Profiles: ProfilesConfig{
			Source:          getEnv("PROFILE_SOURCE", "env"),
			EnvPrefix:       getEnv("PROFILE_ENV_PREFIX", "CYBS"),
			AWSRegion:       getEnv("PROFILE_AWS_REGION", "us-east-1"),
			AWSSecretPrefix: getEnv("PROFILE_AWS_SECRET_PREFIX", "cybersource-gateway/profiles"),
			VaultAddress:    getEnv("PROFILE_VAULT_ADDR", ""),
			VaultToken:      getEnv("PROFILE_VAULT_TOKEN", ""),
			VaultMountPath:  getEnv("PROFILE_VAULT_MOUNT", "secret"),
			VaultPathPrefix: getEnv("PROFILE_VAULT_PREFIX", "cybersource-gateway/profiles"),
		},
		Logger: LoggerConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Development: getEnvAsBool("LOG_DEVELOPMENT", false),
		},
	}

	// Validate required fields
	if cfg.Gateway.Endpoint == "" {
		return nil, fmt.Errorf("GATEWAY_ENDPOINT is required")
	}
	if cfg.Profiles.Source == "vault" && cfg.Profiles.VaultAddress == "" {
		return nil, fmt.Errorf("PROFILE_VAULT_ADDR is required when PROFILE_SOURCE=vault")
	}

	return cfg, nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
