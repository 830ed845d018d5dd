package handlers

import (
	"errors"
	"net/http"

	request "arton_garage/internal/adapter/http/dto/request"
	"arton_garage/internal/usecase"
	"arton_garage/pkg"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	usecase usecase.IAppointmentUseCase
}

func NewAppointmentHandler(uc usecase.IAppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{usecase: uc}
}

func (h *AppointmentHandler) List(c *gin.Context) {
	appts, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapAppointmentError(err))
		return
	}
	c.JSON(http.StatusOK, appts)
}

// Week godoc
// @Summary      Weekly calendar grid
// @Description  Monday to Saturday by eight fixed slots. `date` picks the week (YYYY-MM-DD); default is the current week.
// @Tags         appointments
// @Produce      json
// @Security     Bearer
// @Param        date  query     string  false  "Any day of the week"
// @Success      200   {object}  schedule.Grid
// @Router       /admin/appointments/week [get]
func (h *AppointmentHandler) Week(c *gin.Context) {
	grid, err := h.usecase.Week(c.Request.Context(), c.Query("date"))
	if err != nil {
		writeError(c, mapAppointmentError(err))
		return
	}
	c.JSON(http.StatusOK, grid)
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var payload request.AppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, err)
		return
	}
	a, err := h.usecase.Create(c.Request.Context(), payload.ToDraft())
	if err != nil {
		writeError(c, mapAppointmentError(err))
		return
	}
	c.JSON(http.StatusCreated, a)
}

// QuickAdd books a free cell of the current week by weekday label and slot.
func (h *AppointmentHandler) QuickAdd(c *gin.Context) {
	var payload request.QuickAppointmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, err)
		return
	}
	draft, err := h.usecase.QuickAddDraft(payload.Day, payload.Time)
	if err != nil {
		writeError(c, mapAppointmentError(err))
		return
	}
	a, err := h.usecase.Create(c.Request.Context(), payload.Complete(draft))
	if err != nil {
		writeError(c, mapAppointmentError(err))
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapAppointmentError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapAppointmentError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidAppointmentID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidSlot):
		return pkg.NewDomainErrorSimple("INVALID_SLOT", "Unknown calendar day or time", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAppointmentNotFound):
		return pkg.NewDomainErrorSimple("APPOINTMENT_NOT_FOUND", "Appointment not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
