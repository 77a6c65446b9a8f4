package domain

// Severity of a diagnostic
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is a problem found in a contract's text
type Diagnostic struct {
	File     string   `json:"file"`
	Line     int      `json:"line"`
	Column   int      `json:"column"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// DeploymentPlan summarizes a clarinet deployment plan file
type DeploymentPlan struct {
	File         string
	Name         string
	Network      string
	Batches      int
	Transactions int
	Contracts    []string
}
