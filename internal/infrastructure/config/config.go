// Package config reads the service configuration from the environment.
//
// A .env file in the working directory is loaded first by main through
// godotenv/autoload; real environment variables win over it.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	StorageMemory   = "memory"
	StorageDynamoDB = "dynamodb"

	DefaultGeminiModel = "gemini-3-flash-preview"
)

var ErrMissingJWTSecret = errors.New("missing JWT_SECRET")

type Config struct {
	Port     string
	Env      string
	LogLevel string

	StorageBackend       string
	TablePrefix          string
	AWSRegion            string
	DynamoDBEndpoint     string
	AWSAccessKeyID       string
	AWSSecretAccessKey   string
	DynamoDBCreateTables bool
	SeedData             bool

	JWTSecret         string
	JWTTTL            time.Duration
	AdminUsername     string
	AdminPasswordHash string
	AdminPassword     string

	GeminiAPIKey string
	GeminiModel  string

	CORSAllowedOrigins []string

	MercadoPagoAccessToken     string
	MercadoPagoTestPayerEmail  string
	MercadoPagoTestPayerUserID string
	PaymentGatewayMock         bool
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Load builds the Config from environment variables, applying defaults.
func Load() (Config, error) {
	ttl, err := time.ParseDuration(getenvDefault("JWT_TTL", "24h"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid JWT_TTL: %w", err)
	}

	cfg := Config{
		Port:     getenvDefault("PORT", "8080"),
		Env:      getenvDefault("GO_ENV", "development"),
		LogLevel: getenvDefault("LOG_LEVEL", "info"),

		StorageBackend:       strings.ToLower(getenvDefault("STORAGE_BACKEND", StorageMemory)),
		TablePrefix:          getenvDefault("TABLE_PREFIX", "garage_"),
		AWSRegion:            getenvDefault("AWS_REGION", "us-east-1"),
		DynamoDBEndpoint:     strings.TrimSpace(os.Getenv("DYNAMODB_ENDPOINT")),
		AWSAccessKeyID:       os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey:   os.Getenv("AWS_SECRET_ACCESS_KEY"),
		DynamoDBCreateTables: isTruthy(os.Getenv("DYNAMODB_CREATE_TABLES")),
		SeedData:             isTruthy(getenvDefault("SEED_DATA", "true")),

		JWTSecret:         os.Getenv("JWT_SECRET"),
		JWTTTL:            ttl,
		AdminUsername:     getenvDefault("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),

		GeminiAPIKey: firstEnv("GEMINI_API_KEY", "API_KEY"),
		GeminiModel:  getenvDefault("GEMINI_MODEL", DefaultGeminiModel),

		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),

		MercadoPagoAccessToken:     strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		MercadoPagoTestPayerEmail:  strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")),
		MercadoPagoTestPayerUserID: strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID")),
		PaymentGatewayMock:         isTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")) || isTruthy(os.Getenv("MERCADOPAGO_MOCK")),
	}

	switch cfg.StorageBackend {
	case StorageMemory, StorageDynamoDB:
	default:
		return Config{}, fmt.Errorf("invalid STORAGE_BACKEND %q (want %s or %s)", cfg.StorageBackend, StorageMemory, StorageDynamoDB)
	}
	if cfg.JWTSecret == "" && cfg.IsProduction() {
		return Config{}, ErrMissingJWTSecret
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return ""
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
