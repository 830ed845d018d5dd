package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "arton_garage/internal/adapter/http/dto/request"
	response "arton_garage/internal/adapter/http/dto/response"
	"arton_garage/internal/usecase"
	"arton_garage/pkg"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// ContextKeyAdmin holds the authenticated username on admin requests.
const ContextKeyAdmin = "admin_username"

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login godoc
// @Summary      Back-office login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body      request.LoginRequest  true  "Credentials"
// @Success      200      {object}  response.LoginResponse
// @Failure      401      {object}  pkg.HTTPError
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, err)
		return
	}
	s, err := h.usecase.Login(c.Request.Context(), payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			writeError(c, pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid username or password", http.StatusUnauthorized))
			return
		}
		writeError(c, internalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// RequireAdmin rejects requests without a valid "Authorization: Bearer" token.
func (h *AuthHandler) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		username, err := h.usecase.Authenticate(token)
		if err != nil {
			log.Printf("[auth][handler] token rejected path=%s err=%v", c.Request.URL.Path, err)
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		c.Set(ContextKeyAdmin, username)
		c.Next()
	}
}
