package client

import (
	"encoding/json"
	"time"

	"github.com/persistorai/graphbench/internal/models"
)

// Wire types shared with the worker.
type (
	Edge               = models.Edge
	WeightedEdge       = models.WeightedEdge
	GraphStats         = models.GraphStats
	LoadResult         = models.LoadResult
	TraverseMode       = models.TraverseMode
	TraverseScope      = models.TraverseScope
	TraverseRequest    = models.TraverseRequest
	TraverseResult     = models.TraverseResult
	PageRankRequest    = models.PageRankRequest
	MSTResult          = models.MSTResult
	ShortestPathResult = models.ShortestPathResult
	ReportKind         = models.ReportKind
	ReportSummary      = models.ReportSummary
)

// Traversal modes and scopes.
const (
	BFS         = models.ModeBFS
	DFS         = models.ModeDFS
	ScopeSingle = models.ScopeSingle
	ScopeAll    = models.ScopeAll
)

// Report kinds.
const (
	ReportPageRank = models.ReportPageRank
	ReportMST      = models.ReportMST
	ReportSSP      = models.ReportSSP
)

// HealthResponse is returned by the liveness endpoint.
type HealthResponse struct {
	Status        string      `json:"status"`
	Version       string      `json:"version"`
	Graph         *GraphStats `json:"graph"`
	StreamClients int         `json:"stream_clients"`
	UptimeSeconds float64     `json:"uptime_seconds"`
}

// ReadyResponse is returned by the readiness endpoint.
type ReadyResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// Event is one message from the worker event stream.
type Event struct {
	Type string          `json:"type"`
	ID   uint64          `json:"id"`
	Data json.RawMessage `json:"data"`
	Time time.Time       `json:"time"`
}
