package handlers

import (
	"net/http"

	response "arton_garage/internal/adapter/http/dto/response"
	"arton_garage/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// Overview godoc
// @Summary      Back-office dashboard
// @Tags         dashboard
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  response.DashboardResponse
// @Router       /admin [get]
func (h *DashboardHandler) Overview(c *gin.Context) {
	d, err := h.usecase.Overview(c.Request.Context())
	if err != nil {
		writeError(c, internalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(d))
}
