package types

// OperationDescriptor is the immutable, process-lifetime identity of a
// maintenance operation: what it is called, what it does, how risky it is,
// and which report category it belongs to.
type OperationDescriptor struct {
	// ID is the unique key used on the CLI (--operation, --skip)
	ID string

	// Description is the one-line human explanation shown in listings,
	// confirmation prompts, and reports
	Description string

	// Risk classifies the operation for filtering and confirmation wording
	Risk RiskLevel

	// Category groups operations in the report narrative (caches, logs,
	// indexes, network, ...)
	Category string

	// NeedsPrivileges marks operations that run commands through sudo;
	// the safety supervisor only starts the privilege keep-alive when the
	// selection contains at least one of these
	NeedsPrivileges bool
}
