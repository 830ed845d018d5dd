package handlers

import (
	"errors"
	"net/http"

	request "arton_garage/internal/adapter/http/dto/request"
	"arton_garage/internal/usecase"
	"arton_garage/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// LeadHandler serves the public lead forms and the CRM.
type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

// Create godoc
// @Summary      Capture a lead
// @Description  Contact and test drive forms. The lead starts in status Novo.
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        payload  body      request.LeadRequest  true  "Lead form"
// @Success      201      {object}  entities.Lead
// @Failure      400      {object}  pkg.HTTPError
// @Router       /leads [post]
func (h *LeadHandler) Create(c *gin.Context) {
	var payload request.LeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, err)
		return
	}

	lead, err := h.usecase.AddLead(c.Request.Context(), payload.ToDraft())
	if err != nil {
		log.Printf("[lead][handler] create failed err=%v", err)
		writeError(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusCreated, lead)
}

// CreateProductInterest godoc
// @Summary      Register interest in a product
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Product id"
// @Param        payload  body      request.LeadRequest  true  "Lead form"
// @Success      201      {object}  entities.Lead
// @Failure      404      {object}  pkg.HTTPError
// @Router       /products/{id}/interest [post]
func (h *LeadHandler) CreateProductInterest(c *gin.Context) {
	var payload request.LeadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, err)
		return
	}

	lead, err := h.usecase.AddProductInterest(c.Request.Context(), c.Param("id"), payload.ToDraft())
	if err != nil {
		writeError(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusCreated, lead)
}

func (h *LeadHandler) List(c *gin.Context) {
	leads, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusOK, leads)
}

func (h *LeadHandler) UpdateStatus(c *gin.Context) {
	var payload request.LeadStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, err)
		return
	}

	lead, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), payload.ResolveStatus())
	if err != nil {
		writeError(c, mapLeadError(err))
		return
	}
	c.JSON(http.StatusOK, lead)
}

func (h *LeadHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapLeadError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapLeadError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidLeadID), errors.Is(err, usecase.ErrInvalidLeadStatus), errors.Is(err, usecase.ErrInvalidProductID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
