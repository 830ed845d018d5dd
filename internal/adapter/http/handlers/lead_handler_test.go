package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"arton_garage/internal/adapter/http/handlers/mocks"
	"arton_garage/internal/domain/entities"
	"arton_garage/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestLeadHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.POST("/v1/leads", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/leads", bytes.NewBufferString(`{"name":"Rui","email":"nope","phone":"912"}`))
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
		uc := mocks.NewMockILeadUseCase(ctrl)
		h := NewLeadHandler(uc)

		r := gin.New()
		r.POST("/v1/leads", h.Create)

		uc.EXPECT().AddLead(gomock.Any(), gomock.Any()).Return(entities.Lead{
			ID: "l2", Name: "Rui", Email: "rui@email.com", Phone: "912", Interest: usecase.DefaultLeadInterest,
			Status: entities.LeadStatusNovo, CreatedAt: time.Date(2024, 5, 27, 9, 0, 0, 0, time.UTC),
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/leads", bytes.NewBufferString(`{"name":"Rui","email":"rui@email.com","phone":"912"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var got map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &got)
		if got["status"] != "Novo" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestLeadHandler_CreateProductInterest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockILeadUseCase(ctrl)
	h := NewLeadHandler(uc)

	r := gin.New()
	r.POST("/v1/products/:id/interest", h.CreateProductInterest)

	uc.EXPECT().AddProductInterest(gomock.Any(), "zz", gomock.Any()).Return(entities.Lead{}, usecase.ErrProductNotFound)

	req := httptest.NewRequest(http.MethodPost, "/v1/products/zz/interest", bytes.NewBufferString(`{"name":"Rui","email":"rui@email.com","phone":"912"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestLeadHandler_UpdateStatusAndDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockILeadUseCase(ctrl)
	h := NewLeadHandler(uc)

	r := gin.New()
	r.PATCH("/v1/admin/leads/:id/status", h.UpdateStatus)
	r.DELETE("/v1/admin/leads/:id", h.Delete)

	uc.EXPECT().UpdateStatus(gomock.Any(), "l1", entities.LeadStatusFechado).Return(entities.Lead{ID: "l1", Status: entities.LeadStatusFechado}, nil)
	uc.EXPECT().UpdateStatus(gomock.Any(), "l1", entities.LeadStatus("Talvez")).Return(entities.Lead{}, usecase.ErrInvalidLeadStatus)
	uc.EXPECT().Delete(gomock.Any(), "l1").Return(nil)
	uc.EXPECT().Delete(gomock.Any(), "l9").Return(usecase.ErrLeadNotFound)

	cases := []struct {
		method string
		path   string
		body   string
		code   int
	}{
		{http.MethodPatch, "/v1/admin/leads/l1/status", `{"status":"Fechado"}`, http.StatusOK},
		{http.MethodPatch, "/v1/admin/leads/l1/status", `{"status":"Talvez"}`, http.StatusBadRequest},
		{http.MethodPatch, "/v1/admin/leads/l1/status", `{}`, http.StatusBadRequest},
		{http.MethodDelete, "/v1/admin/leads/l1", "", http.StatusNoContent},
		{http.MethodDelete, "/v1/admin/leads/l9", "", http.StatusNotFound},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, bytes.NewBufferString(tc.body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tc.code {
			t.Fatalf("%s %s %s: expected %d, got %d", tc.method, tc.path, tc.body, tc.code, w.Code)
		}
	}
}

func TestCatalogHandler_Products(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	products := mocks.NewMockIProductUseCase(ctrl)
	services := mocks.NewMockIServiceUseCase(ctrl)
	h := NewCatalogHandler(products, services)

	r := gin.New()
	r.GET("/v1/products", h.ListProducts)
	r.GET("/v1/products/:id", h.GetProduct)
	r.POST("/v1/admin/products", h.CreateProduct)
	r.PATCH("/v1/admin/products/:id/featured", h.ToggleFeatured)

	products.EXPECT().List(gomock.Any(), usecase.ProductFilter{Category: "Jantes", Search: "vossen"}).
		Return([]entities.Product{{ID: "1", Name: "Vossen HF-5 Gloss Black", Brand: "Vossen", Category: entities.ProductCategoryJantes}}, nil)
	products.EXPECT().GetByID(gomock.Any(), "zz").Return(entities.Product{}, usecase.ErrProductNotFound)
	products.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Product{ID: "p1", Name: "Kit", Brand: "Arton"}, nil)
	products.EXPECT().ToggleFeatured(gomock.Any(), "1").Return(entities.Product{ID: "1", Featured: false}, nil)

	cases := []struct {
		method string
		path   string
		body   string
		code   int
	}{
		{http.MethodGet, "/v1/products?category=Jantes&q=vossen", "", http.StatusOK},
		{http.MethodGet, "/v1/products/zz", "", http.StatusNotFound},
		{http.MethodPost, "/v1/admin/products", `{"name":"Kit"}`, http.StatusBadRequest},
		{http.MethodPost, "/v1/admin/products", `{"name":"Kit","brand":"Arton","category":"Kits","price":90}`, http.StatusCreated},
		{http.MethodPatch, "/v1/admin/products/1/featured", "", http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, tc.path, bytes.NewBufferString(tc.body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tc.code {
			t.Fatalf("%s %s: expected %d, got %d", tc.method, tc.path, tc.code, w.Code)
		}
	}
}

func TestCatalogHandler_Services(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	products := mocks.NewMockIProductUseCase(ctrl)
	services := mocks.NewMockIServiceUseCase(ctrl)
	h := NewCatalogHandler(products, services)

	r := gin.New()
	r.GET("/v1/services", h.ListServices)
	r.DELETE("/v1/admin/services/:id", h.DeleteService)

	services.EXPECT().List(gomock.Any()).Return([]entities.Service{{ID: "s1", Name: "Detailing Externo Premium", Price: 250, Duration: "4h"}}, nil)
	services.EXPECT().Delete(gomock.Any(), "s9").Return(usecase.ErrServiceNotFound)

	req := httptest.NewRequest(http.MethodGet, "/v1/services", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []entities.Service
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil || len(got) != 1 || got[0].ID != "s1" {
		t.Fatalf("unexpected body: %s err=%v", w.Body.String(), err)
	}

	req = httptest.NewRequest(http.MethodDelete, "/v1/admin/services/s9", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestMapLeadAndCatalogErrors(t *testing.T) {
	if got := mapLeadError(usecase.ErrInvalidLeadID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", got.HTTPStatus)
	}
	if got := mapLeadError(errors.New("boom")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", got.HTTPStatus)
	}
	if got := mapCatalogError(usecase.ErrInvalidServiceID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", got.HTTPStatus)
	}
	if got := mapCatalogError(usecase.ErrServiceNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", got.HTTPStatus)
	}
}
