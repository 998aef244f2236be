package models

// GraphStats describes the worker's current CSR.
type GraphStats struct {
	Nodes        int  `json:"nodes"`
	Edges        int  `json:"edges"`
	PendingEdges int  `json:"pending_edges"`
	Built        bool `json:"built"`
}

// LoadResult acknowledges a batch of edges appended to the build session.
type LoadResult struct {
	Loaded  int `json:"loaded"`
	Pending int `json:"pending"`
}

// TraverseMode selects the frontier discipline.
type TraverseMode string

// Traversal modes.
const (
	ModeBFS TraverseMode = "bfs"
	ModeDFS TraverseMode = "dfs"
)

// TraverseScope selects single-source or whole-graph traversal.
type TraverseScope string

// Traversal scopes.
const (
	ScopeSingle TraverseScope = "single"
	ScopeAll    TraverseScope = "all"
)

// TraverseRequest is the payload for POST /traverse.
type TraverseRequest struct {
	Mode  TraverseMode  `json:"mode"`
	Scope TraverseScope `json:"scope"`
	Start *int          `json:"start,omitempty"`
}

// Validate checks mode, scope and start.
func (r *TraverseRequest) Validate() error {
	if r.Mode != ModeBFS && r.Mode != ModeDFS {
		return invalidf("mode must be %q or %q, got %q", ModeBFS, ModeDFS, r.Mode)
	}

	switch r.Scope {
	case ScopeAll:
	case ScopeSingle:
		if r.Start == nil {
			return invalidf("start is required for scope %q", ScopeSingle)
		}

		if *r.Start < 0 {
			return UnknownNode(*r.Start)
		}
	default:
		return invalidf("scope must be %q or %q, got %q", ScopeSingle, ScopeAll, r.Scope)
	}

	return nil
}

// TraverseResult is the visited set of one traversal. Complete is false when
// one or more expansion tasks failed and their frontier was skipped.
type TraverseResult struct {
	Visited     []int `json:"visited"`
	FailedTasks int   `json:"failed_tasks"`
	Complete    bool  `json:"complete"`
}

// ComponentsResult lists connected components in discovery order.
type ComponentsResult struct {
	Components [][]int `json:"components"`
}

// LoadRequest is the payload for POST /graph/load.
type LoadRequest struct {
	Edges []Edge `json:"edges"`
}
