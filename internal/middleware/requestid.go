// Package middleware provides HTTP middleware for graphbench workers.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/graphbench/internal/httputil"
)

const (
	// RequestIDKey is the gin context key for the request ID.
	RequestIDKey = httputil.RequestIDKey

	// RequestIDHeader is the HTTP header used to propagate the request ID.
	RequestIDHeader = "X-Request-ID"
)

// RequestID assigns every request a canonical UUID. A client-supplied
// X-Request-ID is adopted when it is itself a UUID, so the coordinator can
// correlate one benchmark phase across all workers' logs; anything else is
// replaced and logged as client_request_id.
func RequestID(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)

		if _, err := uuid.Parse(id); err != nil {
			fresh := uuid.New().String()
			if id != "" {
				log.WithFields(logrus.Fields{
					"request_id":        fresh,
					"client_request_id": id,
				}).Debug("client request ID is not a UUID, replaced")
				c.Set("client_request_id", id)
			}
			id = fresh
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
