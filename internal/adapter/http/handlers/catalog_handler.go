package handlers

import (
	"errors"
	"net/http"

	request "arton_garage/internal/adapter/http/dto/request"
	"arton_garage/internal/usecase"
	"arton_garage/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves products (store, inventory) and workshop services.
type CatalogHandler struct {
	products usecase.IProductUseCase
	services usecase.IServiceUseCase
}

func NewCatalogHandler(products usecase.IProductUseCase, services usecase.IServiceUseCase) *CatalogHandler {
	return &CatalogHandler{products: products, services: services}
}

// ListProducts godoc
// @Summary      List products
// @Tags         catalog
// @Produce      json
// @Param        category  query     string  false  "Category (Tudo = all)"
// @Param        q         query     string  false  "Name or brand search"
// @Success      200       {array}   entities.Product
// @Router       /products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	filter := usecase.ProductFilter{Category: c.Query("category"), Search: c.Query("q")}
	products, err := h.products.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) FeaturedProducts(c *gin.Context) {
	products, err := h.products.Featured(c.Request.Context())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	p, err := h.products.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, err)
		return
	}
	p, err := h.products.Create(c.Request.Context(), payload.ToDraft())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *CatalogHandler) ReplaceProduct(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, err)
		return
	}
	p, err := h.products.Replace(c.Request.Context(), c.Param("id"), payload.ToDraft())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *CatalogHandler) ToggleFeatured(c *gin.Context) {
	p, err := h.products.ToggleFeatured(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	if err := h.products.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ListServices godoc
// @Summary      List workshop services
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  entities.Service
// @Router       /services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.services.List(c.Request.Context())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusOK, services)
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, err)
		return
	}
	s, err := h.services.Create(c.Request.Context(), payload.ToDraft())
	if err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (h *CatalogHandler) DeleteService(c *gin.Context) {
	if err := h.services.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapCatalogError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCatalogError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidProductID), errors.Is(err, usecase.ErrInvalidServiceID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
