package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/persistorai/graphbench/internal/httputil"
	"github.com/persistorai/graphbench/internal/metrics"
)

// respondError counts the error and writes the shared JSON error body.
func respondError(c *gin.Context, status int, code, message string) {
	metrics.ErrorsTotal.WithLabelValues(code).Inc()
	httputil.RespondError(c, status, code, message)
}
