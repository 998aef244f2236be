package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/graphbench/internal/httputil"
	"github.com/persistorai/graphbench/internal/models"
)

// ReportHandler serves worker-local CSV reports: POST computes and stores,
// GET returns the stored CSV.
type ReportHandler struct {
	svc ReportService
	log *logrus.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc ReportService, log *logrus.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: log}
}

func reportKind(c *gin.Context) (models.ReportKind, bool) {
	kind := models.ReportKind(c.Param("kind"))
	if !kind.Valid() {
		respondError(c, http.StatusNotFound, ErrCodeNotFound, "unknown report "+string(kind))
		return "", false
	}

	return kind, true
}

// Compute handles POST /reports/:kind. The body is optional.
func (h *ReportHandler) Compute(c *gin.Context) {
	kind, ok := reportKind(c)
	if !ok {
		return
	}

	var req models.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body: "+err.Error())
		return
	}

	summary, err := h.svc.WriteReport(c.Request.Context(), kind, req)
	if err != nil {
		respondServiceError(c, h.log, "writing report", err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Get handles GET /reports/:kind.
func (h *ReportHandler) Get(c *gin.Context) {
	kind, ok := reportKind(c)
	if !ok {
		return
	}

	data, err := h.svc.ReadReport(c.Request.Context(), kind)
	if err != nil {
		respondServiceError(c, h.log, "reading report", err)
		return
	}

	httputil.RespondCSV(c, data)
}
