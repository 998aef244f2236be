package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/graphbench/internal/middleware"
	"github.com/persistorai/graphbench/internal/ws"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log          *logrus.Logger
	Worker       WorkerService
	Hub          *ws.Hub
	CORSOrigins  []string
	Version      string
	ReportDir    string
	MaxBodyBytes int64
}

// defaultMaxBodySize bounds edge batches when RouterDeps.MaxBodyBytes is unset.
const defaultMaxBodySize = 256 << 20 // 256 MB

const metricsPath = "/metrics"

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(r *gin.Engine, deps *RouterDeps) {
	maxBody := deps.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodySize
	}

	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID(deps.Log))
	r.Use(middleware.Tracing("graphbench/api"))
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.MaxBodySize(maxBody))
	if len(deps.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     deps.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", middleware.RequestIDHeader},
			ExposeHeaders:    []string{middleware.RequestIDHeader},
			MaxAge:           1 * time.Hour,
			AllowCredentials: false,
		}))
	}
	r.Use(middleware.PrometheusMiddleware(metricsPath))

	r.GET(metricsPath, gin.WrapH(promhttp.Handler()))
}

// registerRoutes sets up all API route handlers on the given router group.
func registerRoutes(ctx context.Context, api *gin.RouterGroup, deps *RouterDeps) {
	log := deps.Log

	var clients ClientCounter
	if deps.Hub != nil {
		clients = deps.Hub
	}

	health := NewHealthHandler(deps.Worker, clients, log, deps.Version, deps.ReportDir)
	graph := NewGraphHandler(deps.Worker, log)
	traverse := NewTraverseHandler(deps.Worker, log)
	analytics := NewAnalyticsHandler(deps.Worker, log)
	reports := NewReportHandler(deps.Worker, log)

	api.GET("/health", health.Liveness)
	api.GET("/ready", health.Readiness)

	// Build cycle.
	api.POST("/graph/load", graph.Load)
	api.POST("/graph/finalize", graph.Finalize)
	api.POST("/graph/clear", graph.Clear)
	api.GET("/graph/edges", graph.Edges)
	api.GET("/graph/stats", graph.Stats)

	// Traversal.
	api.POST("/traverse", traverse.Traverse)
	api.GET("/components", traverse.Components)

	// Analytics.
	api.POST("/pagerank", analytics.PageRank)
	api.GET("/mst", analytics.MST)
	api.GET("/shortest-path/:start", analytics.ShortestPath)

	// Worker-local CSV reports.
	api.POST("/reports/:kind", reports.Compute)
	api.GET("/reports/:kind", reports.Get)

	if deps.Hub != nil {
		api.GET("/ws", wsHandler(ctx, log, deps.Hub, deps.CORSOrigins))
	}
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(ctx context.Context, deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(r, deps)
	registerRoutes(ctx, r.Group("/api/v1"), deps)

	return r
}
