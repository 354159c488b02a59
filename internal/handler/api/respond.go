package api

import (
	"errors"
	"net/http"

	"stayops/internal/handler/httperr"
	"stayops/internal/infra"
	"stayops/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// respondError maps domain and repository errors onto HTTP statuses in one
// place so handlers stay free of per-endpoint switch blocks.
func respondError(c *gin.Context, err error) {
	if verr, ok := errs.AsValidation(err); ok {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", verr.Fields)
		return
	}

	switch {
	case errors.Is(err, errs.ErrNotFound), infra.IsKind(err, infra.KindNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errors.Is(err, errs.ErrStateConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Operation not allowed in current state", nil)
	case errors.Is(err, errs.ErrCapacity):
		httperr.AbortWithError(c, http.StatusConflict, err, "Rooms no longer available", nil)
	case infra.IsKind(err, infra.KindDuplicateKey):
		httperr.AbortWithError(c, http.StatusConflict, err, "Conflicting request", nil)
	case errors.Is(err, errs.ErrConfiguration):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Service misconfigured", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
