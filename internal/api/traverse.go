package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/graphbench/internal/models"
)

// TraverseHandler serves traversal and component endpoints.
type TraverseHandler struct {
	svc TraversalService
	log *logrus.Logger
}

// NewTraverseHandler creates a TraverseHandler.
func NewTraverseHandler(svc TraversalService, log *logrus.Logger) *TraverseHandler {
	return &TraverseHandler{svc: svc, log: log}
}

// Traverse handles POST /traverse.
func (h *TraverseHandler) Traverse(c *gin.Context) {
	var req models.TraverseRequest
	if !bindJSON(c, h.log, &req) {
		return
	}

	res, err := h.svc.Traverse(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, h.log, "traversing graph", err)
		return
	}

	h.log.WithFields(logrus.Fields{
		"mode":         req.Mode,
		"scope":        req.Scope,
		"visited":      len(res.Visited),
		"failed_tasks": res.FailedTasks,
	}).Debug("graph.traverse")

	c.JSON(http.StatusOK, res)
}

// Components handles GET /components.
func (h *TraverseHandler) Components(c *gin.Context) {
	comps, err := h.svc.Components(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, "computing components", err)
		return
	}

	c.JSON(http.StatusOK, models.ComponentsResult{Components: comps})
}
