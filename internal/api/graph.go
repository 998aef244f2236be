// Package api provides HTTP handlers for graphbench workers.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/graphbench/internal/models"
)

// GraphHandler serves the load/finalize/clear build cycle.
type GraphHandler struct {
	svc GraphService
	log *logrus.Logger
}

// NewGraphHandler creates a GraphHandler.
func NewGraphHandler(svc GraphService, log *logrus.Logger) *GraphHandler {
	return &GraphHandler{svc: svc, log: log}
}

// Load handles POST /graph/load.
func (h *GraphHandler) Load(c *gin.Context) {
	var req models.LoadRequest
	if !bindJSON(c, h.log, &req) {
		return
	}

	res, err := h.svc.Load(c.Request.Context(), req.Edges)
	if err != nil {
		respondServiceError(c, h.log, "loading edges", err)
		return
	}

	c.JSON(http.StatusAccepted, res)
}

// Finalize handles POST /graph/finalize.
func (h *GraphHandler) Finalize(c *gin.Context) {
	stats, err := h.svc.Finalize(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, "building csr", err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Clear handles POST /graph/clear.
func (h *GraphHandler) Clear(c *gin.Context) {
	if err := h.svc.Clear(c.Request.Context()); err != nil {
		respondServiceError(c, h.log, "clearing graph", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Stats handles GET /graph/stats.
func (h *GraphHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Stats(c.Request.Context()))
}

// Edges handles GET /graph/edges.
func (h *GraphHandler) Edges(c *gin.Context) {
	edges, err := h.svc.AllEdges(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, "listing edges", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"edges": edges, "count": len(edges)})
}
