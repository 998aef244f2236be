package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/graphbench/internal/httputil"
	"github.com/persistorai/graphbench/internal/metrics"
	"github.com/persistorai/graphbench/internal/models"
)

// Error code constants for standardized API responses.
const (
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeNotFound       = "not_found"
	ErrCodeNotBuilt       = "not_built"
	ErrCodeBodyTooLarge   = "body_too_large"
	ErrCodeCancelled      = "cancelled"
	ErrCodeInternalError  = "internal_error"
)

// respondError writes a standardized JSON error response, pulling the request
// ID from the Gin context (set by the request ID middleware).
func respondError(c *gin.Context, status int, code, message string) {
	metrics.ErrorsTotal.WithLabelValues(code).Inc()
	httputil.RespondError(c, status, code, message)
}

// respondServiceError maps a service error onto a status code. Unexpected
// errors are logged with action and reported as 500.
func respondServiceError(c *gin.Context, log *logrus.Logger, action string, err error) {
	var maxBytes *http.MaxBytesError

	switch {
	case errors.Is(err, models.ErrInvalidArgument):
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
	case errors.Is(err, models.ErrNotBuilt):
		respondError(c, http.StatusConflict, ErrCodeNotBuilt, "graph not built: call finalize first")
	case errors.Is(err, models.ErrReportNotFound):
		respondError(c, http.StatusNotFound, ErrCodeNotFound, "report not found: compute it first")
	case errors.As(err, &maxBytes):
		respondError(c, http.StatusRequestEntityTooLarge, ErrCodeBodyTooLarge, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respondError(c, http.StatusServiceUnavailable, ErrCodeCancelled, "request cancelled")
	default:
		log.WithError(err).Error(action)
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
	}
}

// bindJSON decodes the request body into dst, responding 400 (or 413) on failure.
func bindJSON(c *gin.Context, log *logrus.Logger, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			respondServiceError(c, log, "decoding body", err)
			return false
		}

		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body: "+err.Error())
		return false
	}

	return true
}
