package handlers

import (
	"errors"
	"net/http"

	request "arton_garage/internal/adapter/http/dto/request"
	response "arton_garage/internal/adapter/http/dto/response"
	"arton_garage/internal/usecase"
	"arton_garage/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// WorkOrderPaymentHandler charges work orders through the payment provider.
type WorkOrderPaymentHandler struct {
	usecase  usecase.IWorkOrderPaymentUseCase
	mockMode bool
}

// NewWorkOrderPaymentHandler builds the handler. In mock mode an unreadable
// body is replaced by an empty payload instead of being rejected.
func NewWorkOrderPaymentHandler(uc usecase.IWorkOrderPaymentUseCase, mockMode bool) *WorkOrderPaymentHandler {
	return &WorkOrderPaymentHandler{usecase: uc, mockMode: mockMode}
}

// Checkout godoc
// @Summary      Charge a work order
// @Description  Charges the work order total through Mercado Pago and books the revenue in the finance ledger.
// @Tags         workshop
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id       path      string                            true  "Work order id"
// @Param        payload  body      request.WorkOrderCheckoutRequest  true  "Provider payload"
// @Success      200      {object}  response.WorkOrderPaymentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      503      {object}  pkg.HTTPError
// @Router       /admin/work-orders/{id}/payments [post]
func (h *WorkOrderPaymentHandler) Checkout(c *gin.Context) {
	workOrderID := c.Param("id")
	log.Printf("[payment][handler] checkout start work_order_id=%s", workOrderID)

	payload, err := readProviderPayload(c)
	if err != nil {
		if !h.mockMode {
			log.Printf("[payment][handler] invalid payload work_order_id=%s err=%v", workOrderID, err)
			writeError(c, errInvalidRequest)
			return
		}
		log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload work_order_id=%s err=%v", workOrderID, err)
		payload = []byte("{}")
	}

	created, err := h.usecase.Checkout(c.Request.Context(), workOrderID, payload)
	if err != nil {
		log.Printf("[payment][handler] checkout failed work_order_id=%s err=%v", workOrderID, err)
		writeError(c, mapWorkOrderPaymentError(err))
		return
	}
	log.Printf("[payment][handler] checkout success work_order_id=%s payment_id=%s status=%s", workOrderID, created.ID, created.Status)
	c.JSON(http.StatusOK, response.FromWorkOrderPayment(created))
}

// List returns every payment of a work order, newest first.
func (h *WorkOrderPaymentHandler) List(c *gin.Context) {
	payments, err := h.usecase.ListByWorkOrderID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapWorkOrderPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrderPayments(payments))
}

func readProviderPayload(c *gin.Context) ([]byte, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	return request.ParseCheckoutPayload(raw)
}

func mapWorkOrderPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkOrderID), errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderEmpty):
		return pkg.NewDomainErrorSimple("WORK_ORDER_EMPTY", "Work order has nothing to charge", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
