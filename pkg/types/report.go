package types

import "time"

// DiskUsage is a point-in-time measurement of the primary volume.
type DiskUsage struct {
	TotalKB int64
	FreeKB  int64
}

// UsedKB returns the occupied space.
func (d DiskUsage) UsedKB() int64 {
	return d.TotalKB - d.FreeKB
}

// EnvironmentSnapshot captures the host context a run executed in. It is
// taken once at run start (disk-after is filled in at finalization) and
// embedded verbatim in both report formats.
type EnvironmentSnapshot struct {
	ProductVersion string
	BuildVersion   string
	KernelVersion  string
	Hostname       string
	DiskBefore     DiskUsage
	DiskAfter      DiskUsage
}

// RunTotals are the derived aggregates over a report's outcomes. They are
// recomputed from the outcome slice every time so they cannot drift from it.
type RunTotals struct {
	Operations   int
	Completed    int
	Skipped      int
	Failed       int
	Warnings     int
	Errors       int
	SpaceFreedKB int64
}

// RunReport is the complete record of one orchestration run and the single
// source for all rendered artifacts. It is built incrementally by the
// aggregator, finalized once, and never mutated again.
type RunReport struct {
	RunID      string
	StartedAt  time.Time
	FinishedAt time.Time
	Env        EnvironmentSnapshot
	Outcomes   []OperationOutcome
}

// Totals derives the aggregate counters directly from Outcomes.
func (r *RunReport) Totals() RunTotals {
	t := RunTotals{Operations: len(r.Outcomes)}
	for _, o := range r.Outcomes {
		switch o.Status {
		case StatusCompleted:
			t.Completed++
		case StatusSkipped:
			t.Skipped++
		case StatusFailed:
			t.Failed++
		}
		t.Warnings += len(o.Warnings)
		t.Errors += len(o.Errors)
		t.SpaceFreedKB += o.SpaceFreedKB
	}
	return t
}

// Duration is the wall time of the whole run.
func (r *RunReport) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
