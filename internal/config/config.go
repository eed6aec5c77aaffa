// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Default values applied to fields left empty by every configuration source.
const (
	DefaultTokenIssuer     = "go-estate"
	DefaultTokenDuration   = 24 * time.Hour
	DefaultRequestTimeout  = 30 * time.Second
	DefaultUnlockFee       = int64(4900)
	DefaultCurrency        = "INR"
	DefaultPaymentProvider = "razorpay"
	DefaultPaymentBaseURL  = "https://api.razorpay.com"
	DefaultLockTTL         = 10 * time.Second

	// MinTokenSignKeyLength is the minimum accepted length, in bytes, of the
	// token signing secret.
	MinTokenSignKeyLength = 32
)

// StructuredConfig is the top-level configuration container for the
// go-estate server. It aggregates all sub-configurations and is populated by
// merging values from a .env file, environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, the application version and unlock policy.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds configuration for the payment provider integration.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Locker holds configuration for the keyed lock backend.
	Locker Locker `envPrefix:"LOCKER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the optional path to a .env file loaded before the
	// environment is parsed. Defaults to ".env" in the working directory.
	DotEnvPath string `env:"DOTENV_PATH"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values that control token
// lifecycle, versioning and the unlock policy.
type App struct {
	// TokenSignKey is the secret used to sign and verify JWT tokens.
	// Must be at least [MinTokenSignKeyLength] bytes long.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// UnlockRequiresPayment disables free contact unlocks when a payment
	// provider is configured.
	// Env: APP_UNLOCK_REQUIRES_PAYMENT
	UnlockRequiresPayment bool `env:"UNLOCK_REQUIRES_PAYMENT"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects both the backend and the connection:
	// "postgres://..." uses PostgreSQL, "file:...", "sqlite://..." or a
	// path ending in ".db" uses the embedded SQLite store.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds configuration for external integrations.
type Adapter struct {
	// Payment configures the payment provider. Payments are disabled when
	// both KeyID and KeySecret are empty.
	Payment Payment `envPrefix:"PAYMENT_"`
}

// Payment holds the payment provider credentials and unlock pricing.
type Payment struct {
	// Provider is the provider name recorded on orders and unlocks.
	// Env: ADAPTER_PAYMENT_PROVIDER
	Provider string `env:"PROVIDER"`

	// BaseURL is the provider API root.
	// Env: ADAPTER_PAYMENT_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// KeyID is the public API key identifier.
	// Env: ADAPTER_PAYMENT_KEY_ID
	KeyID string `env:"KEY_ID"`

	// KeySecret signs checkout callbacks and authenticates API calls.
	// Env: ADAPTER_PAYMENT_KEY_SECRET
	KeySecret string `env:"KEY_SECRET"`

	// WebhookSecret signs webhook deliveries. Webhooks are disabled when empty.
	// Env: ADAPTER_PAYMENT_WEBHOOK_SECRET
	WebhookSecret string `env:"WEBHOOK_SECRET"`

	// UnlockFee is the price of one unlock in minor currency units.
	// Env: ADAPTER_PAYMENT_UNLOCK_FEE
	UnlockFee int64 `env:"UNLOCK_FEE"`

	// Currency is the ISO 4217 code of UnlockFee.
	// Env: ADAPTER_PAYMENT_CURRENCY
	Currency string `env:"CURRENCY"`

	// RequestTimeout bounds every outbound provider call.
	// Env: ADAPTER_PAYMENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Enabled reports whether a payment provider is configured.
func (p Payment) Enabled() bool {
	return p.KeyID != "" && p.KeySecret != ""
}

// Locker holds configuration for the keyed lock used to serialize payment
// order creation per (user, listing).
type Locker struct {
	// RedisAddress enables the Redis-backed locker when set ("host:port").
	// An in-process locker is used otherwise.
	// Env: LOCKER_REDIS_ADDRESS
	RedisAddress string `env:"REDIS_ADDRESS"`

	// RedisPassword authenticates against Redis.
	// Env: LOCKER_REDIS_PASSWORD
	RedisPassword string `env:"REDIS_PASSWORD"`

	// RedisDB selects the Redis logical database.
	// Env: LOCKER_REDIS_DB
	RedisDB int `env:"REDIS_DB"`

	// TTL bounds how long a lock may be held.
	// Env: LOCKER_TTL
	TTL time.Duration `env:"TTL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources:
//  1. .env file (values never override already exported variables)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Sources are merged in that order and a field set by an earlier source is
// kept. Defaults fill whatever is still empty before validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// applyDefaults fills fields that no source provided.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Adapter.Payment.Provider == "" {
		cfg.Adapter.Payment.Provider = DefaultPaymentProvider
	}
	if cfg.Adapter.Payment.BaseURL == "" {
		cfg.Adapter.Payment.BaseURL = DefaultPaymentBaseURL
	}
	if cfg.Adapter.Payment.UnlockFee == 0 {
		cfg.Adapter.Payment.UnlockFee = DefaultUnlockFee
	}
	if cfg.Adapter.Payment.Currency == "" {
		cfg.Adapter.Payment.Currency = DefaultCurrency
	}
	if cfg.Adapter.Payment.RequestTimeout == 0 {
		cfg.Adapter.Payment.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Locker.TTL == 0 {
		cfg.Locker.TTL = DefaultLockTTL
	}
}
