package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/graphbench/internal/models"
)

// AnalyticsHandler serves PageRank, MST and shortest-path endpoints.
type AnalyticsHandler struct {
	svc AnalyticsService
	log *logrus.Logger
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(svc AnalyticsService, log *logrus.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, log: log}
}

// PageRank handles POST /pagerank.
func (h *AnalyticsHandler) PageRank(c *gin.Context) {
	var req models.PageRankRequest
	if !bindJSON(c, h.log, &req) {
		return
	}

	ranks, err := h.svc.PageRank(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, h.log, "computing pagerank", err)
		return
	}

	c.JSON(http.StatusOK, models.PageRankResult{Ranks: ranks})
}

// MST handles GET /mst.
func (h *AnalyticsHandler) MST(c *gin.Context) {
	res, err := h.svc.MST(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, "computing mst", err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// ShortestPath handles GET /shortest-path/:start.
func (h *AnalyticsHandler) ShortestPath(c *gin.Context) {
	start, ok := parseNodeID(c, "start")
	if !ok {
		return
	}

	res, err := h.svc.ShortestPath(c.Request.Context(), start)
	if err != nil {
		respondServiceError(c, h.log, "computing shortest path", err)
		return
	}

	h.log.WithFields(logrus.Fields{"start": start, "nodes": len(res.Distances)}).Debug("graph.shortest_path")

	c.JSON(http.StatusOK, res)
}
