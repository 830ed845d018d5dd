package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	request "arton_garage/internal/adapter/http/dto/request"
	response "arton_garage/internal/adapter/http/dto/response"
	"arton_garage/internal/usecase"
	"arton_garage/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type FinanceHandler struct {
	usecase usecase.IFinanceUseCase
}

func NewFinanceHandler(uc usecase.IFinanceUseCase) *FinanceHandler {
	return &FinanceHandler{usecase: uc}
}

// List returns the ledger, newest first, with its totals.
func (h *FinanceHandler) List(c *gin.Context) {
	records, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapFinanceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLedger(records))
}

func (h *FinanceHandler) Create(c *gin.Context) {
	var payload request.FinancialRecordRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, err)
		return
	}
	r, err := h.usecase.Create(c.Request.Context(), payload.ToDraft())
	if err != nil {
		writeError(c, mapFinanceError(err))
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (h *FinanceHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapFinanceError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Export godoc
// @Summary      Download the ledger
// @Tags         finance
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     Bearer
// @Success      200
// @Failure      503  {object}  pkg.HTTPError
// @Router       /admin/finance/export [get]
func (h *FinanceHandler) Export(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.usecase.Export(c.Request.Context(), &buf); err != nil {
		log.Printf("[finance][handler] export failed err=%v", err)
		writeError(c, mapFinanceError(err))
		return
	}
	filename := fmt.Sprintf("financeiro-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, h.usecase.ExportContentType(), buf.Bytes())
}

func mapFinanceError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidFinancialRecordID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrFinancialRecordNotFound):
		return pkg.NewDomainErrorSimple("FINANCIAL_RECORD_NOT_FOUND", "Financial record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLedgerExporterMissing):
		return pkg.NewDomainErrorSimple("EXPORT_NOT_CONFIGURED", "Ledger export not configured", http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}
