package handlers

import (
	"errors"
	"net/http"

	"arton_garage/internal/adapter/persistence"
	"arton_garage/internal/usecase"
	"arton_garage/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func invalidPayload(c *gin.Context, err error) {
	writeError(c, pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest))
}

// mapCommonError covers the errors every area can produce: draft validation
// and duplicate ids.
func mapCommonError(err error) (*pkg.AppError, bool) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest), true
	case errors.Is(err, persistence.ErrAlreadyExists):
		return pkg.NewDomainErrorSimple("ALREADY_EXISTS", "Entity already exists", http.StatusConflict), true
	}
	return nil, false
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
