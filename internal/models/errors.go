// Package models defines the wire and result types shared by graphbench
// workers, the coordinator and the client.
package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph queries.
var (
	// ErrNotBuilt is returned when a query arrives before the CSR has been finalized.
	ErrNotBuilt = errors.New("graph not built")

	// ErrUnknownNode marks an id that can never be indexed. Queries on a valid
	// but unindexed id resolve to an empty or sentinel result; only request
	// validation surfaces this error, always alongside ErrInvalidArgument.
	ErrUnknownNode = errors.New("unknown node")
)

// ErrInvalidArgument indicates a malformed request (maps to HTTP 400).
var ErrInvalidArgument = errors.New("invalid argument")

// ErrReportNotFound indicates a report has not been computed yet (maps to HTTP 404).
var ErrReportNotFound = errors.New("report not found")

// UnknownNode reports a negative node id in a request.
func UnknownNode(id int) error {
	return fmt.Errorf("%w: %w: id %d is negative", ErrInvalidArgument, ErrUnknownNode, id)
}
