package types

import (
	"fmt"
	"strings"
)

// RiskLevel classifies how invasive an operation is. It drives the
// confirmation wording and the --only-risk filter.
type RiskLevel string

const (
	// RiskLow marks operations that only reclaim disposable data
	RiskLow RiskLevel = "low"

	// RiskMedium marks operations that touch system services or databases
	RiskMedium RiskLevel = "medium"

	// RiskHigh marks operations with visible, hard-to-undo side effects
	RiskHigh RiskLevel = "high"
)

// ParseRiskLevel converts user input into a RiskLevel. Matching is
// case-insensitive so both "LOW" and "low" are accepted on the CLI.
func ParseRiskLevel(s string) (RiskLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return RiskLow, nil
	case "medium":
		return RiskMedium, nil
	case "high":
		return RiskHigh, nil
	default:
		return "", fmt.Errorf("unknown risk level %q (expected low, medium or high)", s)
	}
}

// String returns the canonical lowercase form.
func (r RiskLevel) String() string {
	return string(r)
}

// Valid reports whether r is one of the three defined levels.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}
