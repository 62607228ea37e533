// Package types defines the core types and interfaces used throughout
// mac-cleaner. This includes the Operation contract and its execution
// context, as well as data structures like OperationDescriptor,
// RunConfiguration, OperationOutcome, and RunReport.
package types
