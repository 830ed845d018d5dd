package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"arton_garage/internal/adapter/http/handlers/mocks"
	"arton_garage/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		uc.EXPECT().Login(gomock.Any(), "admin", "wrong").Return(usecase.Session{}, usecase.ErrInvalidCredentials)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"username":"admin","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("missing password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"username":"admin"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		expires := time.Date(2024, 5, 28, 9, 0, 0, 0, time.UTC)
		uc.EXPECT().Login(gomock.Any(), "admin", "secret").Return(usecase.Session{Token: "jwt", Username: "admin", ExpiresAt: expires}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"username":"admin","password":"secret"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got["token"] != "jwt" || got["token_type"] != "Bearer" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestAuthHandler_RequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIAuthUseCase(ctrl)
	h := NewAuthHandler(uc)

	r := gin.New()
	r.GET("/v1/admin/leads", h.RequireAdmin(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextKeyAdmin))
	})

	uc.EXPECT().Authenticate("good").Return("admin", nil)
	uc.EXPECT().Authenticate("expired").Return("", usecase.ErrUnauthorized)

	cases := []struct {
		name   string
		header string
		code   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"rejected token", "Bearer expired", http.StatusUnauthorized},
		{"valid token", "bearer good", http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/admin/leads", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
			if tc.code == http.StatusOK && w.Body.String() != "admin" {
				t.Fatalf("expected admin subject, got %q", w.Body.String())
			}
		})
	}
}
