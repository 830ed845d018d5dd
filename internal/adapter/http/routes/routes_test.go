package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"arton_garage/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/goleak"
)

// opencensus starts its stats worker at package init through the genai client.
var leakOptions = []goleak.Option{
	goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"),
}

func testConfig() config.Config {
	return config.Config{
		Port:           "0",
		Env:            "test",
		LogLevel:       "error",
		StorageBackend: config.StorageMemory,
		SeedData:       true,
		JWTSecret:      "test-secret",
		JWTTTL:         time.Hour,
		AdminUsername:  "admin",
		AdminPassword:  "s3cret",
		GeminiModel:    config.DefaultGeminiModel,
	}
}

func newTestRouter(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	app, err := NewApplication(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewApplication: %v", err)
	}
	return app.Router()
}

func do(t *testing.T, r http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r http.Handler) string {
	t.Helper()
	w := do(t, r, http.MethodPost, "/v1/auth/login", "", `{"username":"admin","password":"s3cret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.Token == "" {
		t.Fatalf("login: no token in %s", w.Body.String())
	}
	return body.Token
}

func TestRouter_PublicRoutes(t *testing.T) {
	defer goleak.VerifyNone(t, leakOptions...)
	r := newTestRouter(t, testConfig())

	if w := do(t, r, http.MethodGet, "/v1/ping", "", ""); w.Code != http.StatusOK {
		t.Fatalf("ping: expected 200, got %d", w.Code)
	}

	t.Run("tracking is case-insensitive", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/v1/tracking/art-2024-001", "", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var got map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got["total"] != float64(235) || got["progress"] != float64(50) {
			t.Fatalf("unexpected tracking body: %s", w.Body.String())
		}
		if w := do(t, r, http.MethodGet, "/v1/tracking?code=NOPE", "", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404 for unknown code, got %d", w.Code)
		}
	})

	t.Run("featured products", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/v1/products/featured", "", "")
		var got []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if w.Code != http.StatusOK || len(got) != 3 {
			t.Fatalf("expected 3 featured products, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("settings expose contact links", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/v1/settings", "", "")
		var got map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got["whatsapp_url"] != "https://wa.me/351912345678" {
			t.Fatalf("unexpected settings body: %s", w.Body.String())
		}
	})

	t.Run("unknown route", func(t *testing.T) {
		if w := do(t, r, http.MethodGet, "/v1/nowhere", "", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestRouter_AdminRoutes(t *testing.T) {
	r := newTestRouter(t, testConfig())

	if w := do(t, r, http.MethodGet, "/v1/admin/leads", "", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
	if w := do(t, r, http.MethodPost, "/v1/auth/login", "", `{"username":"admin","password":"nope"}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad password, got %d", w.Code)
	}
	token := login(t, r)

	t.Run("new lead is listed first", func(t *testing.T) {
		w := do(t, r, http.MethodPost, "/v1/leads", "", `{"name":"X","email":"x@x.com","phone":"1","vehicle":"Y","interest":"Z"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		w = do(t, r, http.MethodGet, "/v1/admin/leads", token, "")
		var leads []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &leads)
		if len(leads) != 2 || leads[0]["name"] != "X" || leads[0]["status"] != "Novo" {
			t.Fatalf("unexpected leads: %s", w.Body.String())
		}
	})

	t.Run("unmatched admin path falls back to dashboard", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/v1/admin/whatever/deep", token, "")
		var got map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if w.Code != http.StatusOK || got["product_count"] != float64(4) {
			t.Fatalf("unexpected fallback response %d: %s", w.Code, w.Body.String())
		}
		if w := do(t, r, http.MethodGet, "/v1/admin/whatever", "", ""); w.Code != http.StatusUnauthorized {
			t.Fatalf("fallback must require a token, got %d", w.Code)
		}
	})

	t.Run("week grid", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/v1/admin/appointments/week?date=2024-05-29", token, "")
		var got map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if w.Code != http.StatusOK || got["monday"] != "2024-05-27" {
			t.Fatalf("unexpected grid %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("optional integrations answer 503", func(t *testing.T) {
		if w := do(t, r, http.MethodPost, "/v1/admin/blog/generate", token, `{"topic":"jantes"}`); w.Code != http.StatusServiceUnavailable {
			t.Fatalf("generate: expected 503, got %d", w.Code)
		}
		if w := do(t, r, http.MethodPost, "/v1/admin/work-orders/os1/payments", token, `{}`); w.Code != http.StatusServiceUnavailable {
			t.Fatalf("checkout: expected 503, got %d", w.Code)
		}
	})

	t.Run("finance export", func(t *testing.T) {
		w := do(t, r, http.MethodGet, "/v1/admin/finance/export", token, "")
		if w.Code != http.StatusOK || w.Body.Len() == 0 {
			t.Fatalf("unexpected export %d", w.Code)
		}
	})
}

func TestRouter_MockCheckoutBooksRevenue(t *testing.T) {
	cfg := testConfig()
	cfg.PaymentGatewayMock = true
	r := newTestRouter(t, cfg)
	token := login(t, r)

	w := do(t, r, http.MethodPost, "/v1/admin/work-orders/os1/payments", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodGet, "/v1/admin/finance", token, "")
	var ledger struct {
		Records []map[string]any `json:"records"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &ledger)
	if len(ledger.Records) != 6 || ledger.Records[0]["amount"] != float64(235) {
		t.Fatalf("expected checkout entry first in ledger: %s", w.Body.String())
	}
}

func TestRun_StopsWhenContextEnds(t *testing.T) {
	defer goleak.VerifyNone(t, leakOptions...)
	gin.SetMode(gin.TestMode)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Run(ctx, testConfig()); err != nil {
		t.Fatalf("Run: %v", err)
	}
}
