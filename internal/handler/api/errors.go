package api

import (
	"net/http"

	"hospital-ops/internal/handler/httperr"
	"hospital-ops/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func statusFor(err error) int {
	switch {
	case errs.IsAny(err, errs.ErrValidation, errs.ErrBusinessRule):
		return http.StatusBadRequest
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound
	case errs.Is(err, errs.ErrConcurrentModification):
		return http.StatusConflict
	case errs.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errs.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// abortWithCategory is the fallback of every handleXError function. Uncategorized errors
// never leak their text.
func abortWithCategory(c *gin.Context, err error) {
	status := statusFor(err)
	msg := httperr.InternalMessage
	if status != http.StatusInternalServerError {
		msg = errs.Cause(err).Error()
	}
	httperr.AbortWithError(c, status, err, msg, nil)
}

func bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	if details := httperr.FieldErrors(err); details != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", details)
		return false
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
	return false
}

func parseIDParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+label+" ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}
