package models

// ReportKind names a worker-local CSV report.
type ReportKind string

// Report kinds.
const (
	ReportPageRank ReportKind = "pagerank"
	ReportMST      ReportKind = "mst"
	ReportSSP      ReportKind = "ssp"
)

// Valid reports whether k is a known report kind.
func (k ReportKind) Valid() bool {
	switch k {
	case ReportPageRank, ReportMST, ReportSSP:
		return true
	}

	return false
}

// ReportRequest is the optional payload for POST /reports/:kind.
type ReportRequest struct {
	Start int `json:"start"`
}

// ReportSummary acknowledges a computed report.
type ReportSummary struct {
	Kind        ReportKind `json:"kind"`
	Worker      string     `json:"worker"`
	Rows        int        `json:"rows"`
	FailedTasks int        `json:"failed_tasks"`
	Complete    bool       `json:"complete"`
}
