package report

import (
	"testing"
	"time"

	"github.com/costaindustries-source/mac-cleaner/pkg/types"
	"github.com/stretchr/testify/assert"
)

func sampleOutcomes() []types.OperationOutcome {
	base := time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC)
	return []types.OperationOutcome{
		{
			OperationID: "user-caches", Status: types.StatusCompleted,
			Risk: types.RiskLow, Category: "caches",
			SpaceFreedKB: 2048,
			Warnings:     []string{"~/Library/Caches/foo not found"},
			StartedAt:    base, FinishedAt: base.Add(2 * time.Second),
		},
		{
			OperationID: "memory-purge", Status: types.StatusSkipped,
			Risk: types.RiskMedium, Category: "memory",
			Warnings:  []string{"user declined"},
			StartedAt: base.Add(3 * time.Second), FinishedAt: base.Add(3 * time.Second),
		},
		{
			OperationID: "sqlite-vacuum", Status: types.StatusFailed,
			Risk: types.RiskMedium, Category: "databases",
			Errors:    []string{"vacuum failed: database is locked"},
			StartedAt: base.Add(4 * time.Second), FinishedAt: base.Add(5 * time.Second),
		},
	}
}

func sampleReport() *types.RunReport {
	start := time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC)
	agg := NewAggregator("run-1234", start, types.EnvironmentSnapshot{
		Hostname:       "testbox.local",
		ProductVersion: "14.3",
		BuildVersion:   "23D56",
		KernelVersion:  "23.3.0",
		DiskBefore:     types.DiskUsage{TotalKB: 500 * 1024 * 1024, FreeKB: 100 * 1024 * 1024},
	})
	for _, o := range sampleOutcomes() {
		agg.Record(o)
	}
	return agg.Finalize(start.Add(10*time.Second), types.DiskUsage{TotalKB: 500 * 1024 * 1024, FreeKB: 102 * 1024 * 1024})
}

func TestAggregatorTotalsMatchOutcomes(t *testing.T) {
	r := sampleReport()
	totals := r.Totals()

	// recount directly over the outcome slice; the two must always agree
	// because Totals is derived, never incremented
	var completed, skipped, failed, warnings, errs int
	var freed int64
	for _, o := range r.Outcomes {
		switch o.Status {
		case types.StatusCompleted:
			completed++
		case types.StatusSkipped:
			skipped++
		case types.StatusFailed:
			failed++
		}
		warnings += len(o.Warnings)
		errs += len(o.Errors)
		freed += o.SpaceFreedKB
	}

	assert.Equal(t, completed, totals.Completed)
	assert.Equal(t, skipped, totals.Skipped)
	assert.Equal(t, failed, totals.Failed)
	assert.Equal(t, warnings, totals.Warnings)
	assert.Equal(t, errs, totals.Errors)
	assert.Equal(t, freed, totals.SpaceFreedKB)
	assert.Equal(t, len(r.Outcomes), totals.Operations)
}

func TestAggregatorFreezesAfterFinalize(t *testing.T) {
	agg := NewAggregator("run-1", time.Now(), types.EnvironmentSnapshot{})
	agg.Record(sampleOutcomes()[0])
	r := agg.Finalize(time.Now(), types.DiskUsage{})

	agg.Record(sampleOutcomes()[1])
	assert.Len(t, r.Outcomes, 1)

	// finalizing twice returns the same frozen report
	again := agg.Finalize(time.Now().Add(time.Hour), types.DiskUsage{})
	assert.Equal(t, r.FinishedAt, again.FinishedAt)
}

func TestSkippedOutcomesCarryNoErrors(t *testing.T) {
	for _, o := range sampleReport().Outcomes {
		if o.Status == types.StatusSkipped {
			assert.Empty(t, o.Errors)
		}
	}
}
