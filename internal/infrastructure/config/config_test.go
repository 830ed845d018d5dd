package config

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "GO_ENV", "STORAGE_BACKEND", "TABLE_PREFIX", "JWT_TTL", "JWT_SECRET", "GEMINI_API_KEY", "API_KEY", "GEMINI_MODEL", "CORS_ALLOWED_ORIGINS", "PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK", "SEED_DATA"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" || cfg.StorageBackend != StorageMemory || cfg.TablePrefix != "garage_" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.JWTTTL != 24*time.Hour {
		t.Fatalf("expected 24h ttl, got %v", cfg.JWTTTL)
	}
	if cfg.GeminiModel != DefaultGeminiModel || cfg.GeminiAPIKey != "" {
		t.Fatalf("unexpected gemini config: %+v", cfg)
	}
	if !cfg.SeedData || cfg.PaymentGatewayMock {
		t.Fatalf("unexpected flags: seed=%v mock=%v", cfg.SeedData, cfg.PaymentGatewayMock)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("GO_ENV", "")
	t.Setenv("STORAGE_BACKEND", "DynamoDB")
	t.Setenv("API_KEY", "legacy-key")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.pt, ,https://b.pt")
	t.Setenv("MERCADOPAGO_MOCK", "yes")
	t.Setenv("JWT_TTL", "90m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StorageBackend != StorageDynamoDB {
		t.Fatalf("expected dynamodb backend, got %q", cfg.StorageBackend)
	}
	if cfg.GeminiAPIKey != "legacy-key" {
		t.Fatalf("expected API_KEY fallback, got %q", cfg.GeminiAPIKey)
	}
	if diff := cmp.Diff([]string{"https://a.pt", "https://b.pt"}, cfg.CORSAllowedOrigins); diff != "" {
		t.Fatalf("origins mismatch (-want +got):\n%s", diff)
	}
	if !cfg.PaymentGatewayMock || cfg.JWTTTL != 90*time.Minute {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("invalid backend", func(t *testing.T) {
		t.Setenv("GO_ENV", "")
		t.Setenv("STORAGE_BACKEND", "postgres")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("invalid ttl", func(t *testing.T) {
		t.Setenv("JWT_TTL", "forever")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("production requires jwt secret", func(t *testing.T) {
		t.Setenv("STORAGE_BACKEND", "")
		t.Setenv("GO_ENV", "production")
		t.Setenv("JWT_SECRET", "")
		if _, err := Load(); !errors.Is(err, ErrMissingJWTSecret) {
			t.Fatalf("expected ErrMissingJWTSecret, got %v", err)
		}
	})
}
