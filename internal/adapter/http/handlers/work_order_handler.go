package handlers

import (
	"errors"
	"io"
	"net/http"

	request "arton_garage/internal/adapter/http/dto/request"
	response "arton_garage/internal/adapter/http/dto/response"
	"arton_garage/internal/usecase"
	"arton_garage/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// WorkOrderHandler serves the workshop (OS) back-office and public tracking.
type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc}
}

// List godoc
// @Summary      List work orders
// @Tags         workshop
// @Produce      json
// @Security     Bearer
// @Success      200  {array}   response.WorkOrderResponse
// @Router       /admin/work-orders [get]
func (h *WorkOrderHandler) List(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrders(orders))
}

// Create godoc
// @Summary      Open a work order
// @Tags         workshop
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        payload  body      request.WorkOrderRequest  true  "Intake form"
// @Success      201      {object}  response.WorkOrderResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /admin/work-orders [post]
func (h *WorkOrderHandler) Create(c *gin.Context) {
	var payload request.WorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, err)
		return
	}

	o, err := h.usecase.Create(c.Request.Context(), payload.ToDraft())
	if err != nil {
		log.Printf("[workshop][handler] create failed err=%v", err)
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromWorkOrder(o))
}

func (h *WorkOrderHandler) Get(c *gin.Context) {
	o, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(o))
}

func (h *WorkOrderHandler) Replace(c *gin.Context) {
	var payload request.WorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, err)
		return
	}

	o, err := h.usecase.Replace(c.Request.Context(), c.Param("id"), payload.ToDraft())
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(o))
}

func (h *WorkOrderHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// SetStatus moves the order to any status; progress follows.
func (h *WorkOrderHandler) SetStatus(c *gin.Context) {
	var payload request.WorkOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, err)
		return
	}

	o, err := h.usecase.SetStatus(c.Request.Context(), c.Param("id"), payload.ResolveStatus())
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(o))
}

func (h *WorkOrderHandler) AddItem(c *gin.Context) {
	var payload request.WorkOrderItemRequest
	// A bodiless request appends a blank line.
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		invalidPayload(c, err)
		return
	}

	o, err := h.usecase.AddItem(c.Request.Context(), c.Param("id"), payload.ToDraft())
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromWorkOrder(o))
}

func (h *WorkOrderHandler) UpdateItem(c *gin.Context) {
	var payload request.WorkOrderItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, err)
		return
	}

	o, err := h.usecase.UpdateItem(c.Request.Context(), c.Param("id"), c.Param("itemId"), payload.ToDraft())
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(o))
}

func (h *WorkOrderHandler) RemoveItem(c *gin.Context) {
	o, err := h.usecase.RemoveItem(c.Request.Context(), c.Param("id"), c.Param("itemId"))
	if err != nil {
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(o))
}

// Track godoc
// @Summary      Track a work order
// @Description  Public lookup by tracking code, case-insensitive. The code comes from the path or the `code` query parameter.
// @Tags         tracking
// @Produce      json
// @Param        code  path      string  true   "Tracking code"
// @Success      200   {object}  response.TrackingResponse
// @Failure      404   {object}  pkg.HTTPError
// @Router       /tracking/{code} [get]
func (h *WorkOrderHandler) Track(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		code = c.Query("code")
	}

	o, err := h.usecase.Track(c.Request.Context(), code)
	if err != nil {
		log.Printf("[tracking][handler] lookup failed code=%q err=%v", code, err)
		writeError(c, mapWorkOrderError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTracking(o))
}

func mapWorkOrderError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkOrderID), errors.Is(err, usecase.ErrInvalidWorkOrderStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderAlreadyExists):
		return pkg.NewDomainErrorSimple("WORK_ORDER_ALREADY_EXISTS", "Work order already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrTrackingCodeAlreadyInUse):
		return pkg.NewDomainErrorSimple("TRACKING_CODE_ALREADY_IN_USE", "Tracking code already in use", http.StatusConflict)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrWorkOrderItemNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_ITEM_NOT_FOUND", "Work order item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTrackingCodeNotFound):
		return pkg.NewDomainErrorSimple("TRACKING_CODE_NOT_FOUND", "Tracking code not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
