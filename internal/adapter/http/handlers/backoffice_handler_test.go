package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"arton_garage/internal/adapter/http/handlers/mocks"
	"arton_garage/internal/domain/entities"
	"arton_garage/internal/domain/schedule"
	"arton_garage/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBlogHandler_Generate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		code int
	}{
		{"gpt not supported", usecase.ErrAIProviderNotSupported, http.StatusNotImplemented},
		{"generator missing", usecase.ErrContentGeneratorNotConfigured, http.StatusServiceUnavailable},
		{"provider failure", fmt.Errorf("%w: quota", usecase.ErrContentGenerationFailed), http.StatusBadGateway},
		{"blank topic", usecase.ErrInvalidTopic, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIBlogUseCase(ctrl)
			h := NewBlogHandler(uc)

			r := gin.New()
			r.POST("/v1/admin/blog/generate", h.Generate)

			uc.EXPECT().Generate(gomock.Any(), "jantes aro 20").Return(entities.BlogPost{}, tc.err)

			req := httptest.NewRequest(http.MethodPost, "/v1/admin/blog/generate", bytes.NewBufferString(`{"topic":"jantes aro 20"}`))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBlogUseCase(ctrl)
		h := NewBlogHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/blog/generate", h.Generate)

		uc.EXPECT().Generate(gomock.Any(), "jantes aro 20").Return(entities.BlogPost{ID: "b2", Slug: "jantes-aro-20", Author: "Arton AI"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/blog/generate", bytes.NewBufferString(`{"topic":"jantes aro 20"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})
}

func TestBlogHandler_Queue(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIBlogUseCase(ctrl)
	h := NewBlogHandler(uc)

	r := gin.New()
	r.GET("/v1/admin/blog/queue", h.Queue)
	r.POST("/v1/admin/blog/queue", h.Enqueue)
	r.GET("/v1/blog/:slug", h.GetBySlug)

	uc.EXPECT().EnqueueTopic(gomock.Any(), "pneus").Return([]string{"pneus"}, nil)
	uc.EXPECT().Queue(gomock.Any()).Return([]string{"pneus"})
	uc.EXPECT().GetBySlug(gomock.Any(), "nada").Return(entities.BlogPost{}, usecase.ErrBlogPostNotFound)

	req := httptest.NewRequest(http.MethodPost, "/v1/admin/blog/queue", bytes.NewBufferString(`{"topic":"pneus"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/admin/blog/queue", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var queue map[string][]string
	_ = json.Unmarshal(w.Body.Bytes(), &queue)
	if w.Code != http.StatusOK || len(queue["topics"]) != 1 {
		t.Fatalf("unexpected queue response %d: %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/blog/nada", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestAppointmentHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("week grid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/appointments/week", h.Week)

		uc.EXPECT().Week(gomock.Any(), "2024-05-29").Return(schedule.Grid{Monday: "2024-05-27"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/appointments/week?date=2024-05-29", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"monday":"2024-05-27"`) {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("quick add completes the cell draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/appointments/quick", h.QuickAdd)

		uc.EXPECT().QuickAddDraft("Terça", "14:00").Return(usecase.AppointmentDraft{Date: "2024-05-28", Time: "14:00"}, nil)
		uc.EXPECT().Create(gomock.Any(), usecase.AppointmentDraft{LeadID: "l1", ServiceID: "s1", Date: "2024-05-28", Time: "14:00"}).
			Return(entities.Appointment{ID: "a2", LeadID: "l1", ServiceID: "s1", Date: "2024-05-28", Time: "14:00"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/appointments/quick", bytes.NewBufferString(`{"day":"Terça","time":"14:00","lead_id":"l1","service_id":"s1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("quick add unknown slot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/appointments/quick", h.QuickAdd)

		uc.EXPECT().QuickAddDraft("Domingo", "13:00").Return(usecase.AppointmentDraft{}, usecase.ErrInvalidSlot)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/appointments/quick", bytes.NewBufferString(`{"day":"Domingo","time":"13:00","lead_id":"l1","service_id":"s1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("delete missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAppointmentUseCase(ctrl)
		h := NewAppointmentHandler(uc)

		r := gin.New()
		r.DELETE("/v1/admin/appointments/:id", h.Delete)

		uc.EXPECT().Delete(gomock.Any(), "a9").Return(usecase.ErrAppointmentNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/admin/appointments/a9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestSettingsHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISettingsUseCase(ctrl)
	h := NewSettingsHandler(uc)

	r := gin.New()
	r.GET("/v1/settings", h.Public)
	r.PUT("/v1/admin/settings", h.Replace)

	settings := entities.StoreSettings{Name: "ART ON WHEELS", Phone: "+351 912 345 678", AIProvider: entities.AIProviderGemini}
	uc.EXPECT().Public(gomock.Any()).Return(usecase.PublicSettings{Settings: settings, Links: settings.ContactLinks()}, nil)
	uc.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(entities.StoreSettings{}, usecase.ErrInvalidAIProvider)

	req := httptest.NewRequest(http.MethodGet, "/v1/settings", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var got map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if w.Code != http.StatusOK || got["whatsapp_url"] != "https://wa.me/351912345678" || got["name"] != "ART ON WHEELS" {
		t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodPut, "/v1/admin/settings", bytes.NewBufferString(`{"name":"ART ON WHEELS","ai_provider":"claude"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestFinanceHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list carries summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinanceUseCase(ctrl)
		h := NewFinanceHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/finance", h.List)

		uc.EXPECT().List(gomock.Any()).Return([]entities.FinancialRecord{
			{ID: "f1", Type: entities.FinancialRecordInflow, Amount: 850, Date: "2024-05-21", Description: "Venda"},
			{ID: "f2", Type: entities.FinancialRecordOutflow, Amount: 200, Date: "2024-05-20", Description: "Campanha"},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/finance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var got struct {
			Records []entities.FinancialRecord `json:"records"`
			Summary usecase.LedgerSummary      `json:"summary"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(got.Records) != 2 || got.Summary.Balance != 650 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("create validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinanceUseCase(ctrl)
		h := NewFinanceHandler(uc)

		r := gin.New()
		r.POST("/v1/admin/finance", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/admin/finance", bytes.NewBufferString(`{"type":"inflow"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("export", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinanceUseCase(ctrl)
		h := NewFinanceHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/finance/export", h.Export)

		uc.EXPECT().Export(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, w io.Writer) error {
			_, err := w.Write([]byte("PK-xlsx"))
			return err
		})
		uc.EXPECT().ExportContentType().Return("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/finance/export", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK || w.Body.String() != "PK-xlsx" {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Header().Get("Content-Disposition"), "financeiro-") {
			t.Fatalf("missing attachment header: %v", w.Header())
		}
	})

	t.Run("export not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFinanceUseCase(ctrl)
		h := NewFinanceHandler(uc)

		r := gin.New()
		r.GET("/v1/admin/finance/export", h.Export)

		uc.EXPECT().Export(gomock.Any(), gomock.Any()).Return(usecase.ErrLedgerExporterMissing)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin/finance/export", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestDashboardHandler_Overview(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/admin", h.Overview)

		uc.EXPECT().Overview(gomock.Any()).Return(usecase.Dashboard{TotalLeads: 1, ProductCount: 4, OpenWorkOrders: 2, MonthlyRevenue: 4500}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/admin", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		var got map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if w.Code != http.StatusOK || got["open_work_orders"] != float64(2) {
			t.Fatalf("unexpected response %d: %s", w.Code, w.Body.String())
		}
		if leads, ok := got["recent_leads"].([]any); !ok || len(leads) != 0 {
			t.Fatalf("recent_leads should be an empty list: %s", w.Body.String())
		}
	})

	t.Run("failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDashboardUseCase(ctrl)
		h := NewDashboardHandler(uc)

		r := gin.New()
		r.GET("/v1/admin", h.Overview)

		uc.EXPECT().Overview(gomock.Any()).Return(usecase.Dashboard{}, errors.New("dynamodb down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/admin", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
