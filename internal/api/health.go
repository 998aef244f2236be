package api

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/graphbench/internal/models"
)

// StatsProvider reports the current graph state.
type StatsProvider interface {
	Stats(ctx context.Context) *models.GraphStats
}

// ClientCounter reports connected event-stream clients.
type ClientCounter interface {
	ClientCount() int
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	stats     StatsProvider
	clients   ClientCounter
	log       *logrus.Logger
	version   string
	reportDir string
	startTime time.Time
}

// NewHealthHandler creates a HealthHandler. clients may be nil.
func NewHealthHandler(stats StatsProvider, clients ClientCounter, log *logrus.Logger, version, reportDir string) *HealthHandler {
	return &HealthHandler{
		stats:     stats,
		clients:   clients,
		log:       log,
		version:   version,
		reportDir: reportDir,
		startTime: time.Now(),
	}
}

// healthResponse is the JSON payload returned by the liveness endpoint.
type healthResponse struct {
	Status        string             `json:"status"`
	Version       string             `json:"version"`
	Graph         *models.GraphStats `json:"graph"`
	StreamClients int                `json:"stream_clients"`
	UptimeSeconds float64            `json:"uptime_seconds"`
}

// readinessResponse is the JSON payload returned by the readiness endpoint.
type readinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Liveness handles GET /health.
func (h *HealthHandler) Liveness(c *gin.Context) {
	resp := healthResponse{
		Status:        "ok",
		Version:       h.version,
		Graph:         h.stats.Stats(c.Request.Context()),
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}

	if h.clients != nil {
		resp.StreamClients = h.clients.ClientCount()
	}

	c.JSON(http.StatusOK, resp)
}

// Readiness handles GET /ready. A worker is ready when its report directory
// is writable; the graph state is reported but does not affect readiness.
func (h *HealthHandler) Readiness(c *gin.Context) {
	checks := map[string]string{"report_dir": "ok", "graph": "empty"}
	status := "ready"
	statusCode := http.StatusOK

	if err := checkWritable(h.reportDir); err != nil {
		h.log.WithError(err).Error("readiness: report dir not writable")
		checks["report_dir"] = "error"
		status = "not_ready"
		statusCode = http.StatusServiceUnavailable
	}

	if h.stats.Stats(c.Request.Context()).Built {
		checks["graph"] = "built"
	}

	c.JSON(statusCode, readinessResponse{Status: status, Checks: checks})
}

func checkWritable(dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, ".ready-*")
	if err != nil {
		return err
	}

	name := f.Name()
	f.Close() //nolint:errcheck,gosec // probe file

	return os.Remove(name)
}
