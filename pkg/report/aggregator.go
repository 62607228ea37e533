// Package report owns the run's single source of truth — the RunReport —
// and renders it into the Markdown and HTML artifacts. The aggregator is
// the only writer of the report; every other component reads it at most.
package report

import (
	"sync"
	"time"

	"github.com/costaindustries-source/mac-cleaner/pkg/types"
)

// Aggregator records operation outcomes into a RunReport. It is the
// funnel all writes go through, so parallelizing low-risk operations
// later only needs this lock, not a redesign.
type Aggregator struct {
	mu     sync.Mutex
	report types.RunReport
	final  bool
}

// NewAggregator starts a report for a run beginning now.
func NewAggregator(runID string, startedAt time.Time, env types.EnvironmentSnapshot) *Aggregator {
	return &Aggregator{
		report: types.RunReport{
			RunID:     runID,
			StartedAt: startedAt,
			Env:       env,
		},
	}
}

// Record appends one outcome. Outcomes are never mutated after this;
// recording after finalization is a programming error and is dropped.
func (a *Aggregator) Record(outcome types.OperationOutcome) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.final {
		return
	}
	a.report.Outcomes = append(a.report.Outcomes, outcome)
}

// Finalize stamps the end time and the after-run disk usage, then freezes
// the report. Safe to call once; later calls return the same report.
func (a *Aggregator) Finalize(at time.Time, diskAfter types.DiskUsage) *types.RunReport {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.final {
		a.report.FinishedAt = at
		a.report.Env.DiskAfter = diskAfter
		a.final = true
	}
	return &a.report
}

// Report returns the report as recorded so far.
func (a *Aggregator) Report() *types.RunReport {
	a.mu.Lock()
	defer a.mu.Unlock()
	return &a.report
}
