package types

import "time"

// RunConfiguration captures everything that shapes a single run. It is
// built once from the CLI input layered over config-file and environment
// defaults, and is immutable thereafter.
type RunConfiguration struct {
	// Verbosity raises the log level: 0 INFO, 1 DEBUG, 2+ TRACE
	Verbosity int

	// AutoConfirm answers every confirmation prompt with yes (--yes)
	AutoConfirm bool

	// SingleOperation restricts the run to exactly one operation id
	SingleOperation string

	// RiskFilter keeps only operations of the given risk level when set
	RiskFilter *RiskLevel

	// SkipSet holds operation ids removed from the selection (--skip)
	SkipSet map[string]bool

	// ColorEnabled controls ANSI rendering on the console only; report
	// artifacts are never colored
	ColorEnabled bool

	// DryRun previews every mutating step without executing it
	DryRun bool

	// MinFreeGB is the preflight free-space threshold on the root volume
	MinFreeGB int

	// ReportDir overrides where the log and report artifacts are written
	ReportDir string

	// PolicyFile selects the policy-driven confirmation strategy
	PolicyFile string

	// OperationTimeout bounds each operation body; zero disables the bound
	OperationTimeout time.Duration

	// Preview renders the Markdown report to the terminal after the run
	Preview bool
}

// Skips reports whether the given operation id is in the skip set.
func (c RunConfiguration) Skips(id string) bool {
	return c.SkipSet[id]
}

// Verbose reports whether debug logging was requested.
func (c RunConfiguration) Verbose() bool {
	return c.Verbosity > 0
}
