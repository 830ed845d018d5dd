package handlers

import (
	"errors"
	"net/http"

	request "arton_garage/internal/adapter/http/dto/request"
	response "arton_garage/internal/adapter/http/dto/response"
	"arton_garage/internal/usecase"
	"arton_garage/pkg"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

// Public godoc
// @Summary      Store identity and contact links
// @Tags         settings
// @Produce      json
// @Success      200  {object}  response.PublicSettingsResponse
// @Router       /settings [get]
func (h *SettingsHandler) Public(c *gin.Context) {
	s, err := h.usecase.Public(c.Request.Context())
	if err != nil {
		writeError(c, mapSettingsError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPublicSettings(s))
}

func (h *SettingsHandler) Get(c *gin.Context) {
	s, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		writeError(c, mapSettingsError(err))
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *SettingsHandler) Replace(c *gin.Context) {
	var payload request.SettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, err)
		return
	}
	s, err := h.usecase.Replace(c.Request.Context(), payload.ToSettings())
	if err != nil {
		writeError(c, mapSettingsError(err))
		return
	}
	c.JSON(http.StatusOK, s)
}

func mapSettingsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAIProvider):
		return pkg.NewDomainErrorSimple("INVALID_AI_PROVIDER", "AI provider must be gemini or gpt", http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
