package safety

import (
	"context"
	"fmt"
	"testing"

	"github.com/costaindustries-source/mac-cleaner/pkg/errors"
	"github.com/costaindustries-source/mac-cleaner/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHost pins the OS probe and the statfs result for one test.
func fakeHost(t *testing.T, os string, freeKB int64, usageErr error) {
	t.Helper()
	origUsage, origOS := diskUsage, hostOS
	t.Cleanup(func() { diskUsage, hostOS = origUsage, origOS })

	hostOS = func() string { return os }
	diskUsage = func(string) (types.DiskUsage, error) {
		if usageErr != nil {
			return types.DiskUsage{}, usageErr
		}
		return types.DiskUsage{TotalKB: 500 * 1024 * 1024, FreeKB: freeKB}, nil
	}
}

func TestPreflightBelowThreshold(t *testing.T) {
	// Scenario: 3GB free against a 5GB threshold aborts the run
	fakeHost(t, "darwin", 3*1024*1024, nil)

	_, err := Preflight(5)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPreflight))
}

func TestPreflightEnoughSpace(t *testing.T) {
	fakeHost(t, "darwin", 50*1024*1024, nil)

	usage, err := Preflight(5)
	require.NoError(t, err)
	assert.Equal(t, int64(50*1024*1024), usage.FreeKB)
}

func TestPreflightWrongOS(t *testing.T) {
	fakeHost(t, "linux", 50*1024*1024, nil)

	_, err := Preflight(5)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPreflight))
}

func TestPreflightStatfsFailure(t *testing.T) {
	fakeHost(t, "darwin", 0, fmt.Errorf("device busy"))

	_, err := Preflight(5)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPreflight))
}

func TestSupervisorCleanupRunsOnceInReverseOrder(t *testing.T) {
	s := NewSupervisor()
	var order []string
	s.OnCleanup(func() { order = append(order, "first") })
	s.OnCleanup(func() { order = append(order, "second") })

	err := s.Run(context.Background(), func(context.Context) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, []string{"second", "first"}, order)

	// a second cleanup trigger is a no-op
	s.cleanup()
	assert.Len(t, order, 2)
}

func TestSupervisorPropagatesError(t *testing.T) {
	s := NewSupervisor()
	wantErr := errors.New(errors.ErrOperationExecute, "boom")

	err := s.Run(context.Background(), func(context.Context) error { return wantErr })
	assert.True(t, errors.IsErrorCode(err, errors.ErrOperationExecute))
}

func TestSupervisorCleanupRunsOnError(t *testing.T) {
	s := NewSupervisor()
	ran := false
	s.OnCleanup(func() { ran = true })

	_ = s.Run(context.Background(), func(context.Context) error {
		return fmt.Errorf("failed")
	})
	assert.True(t, ran)
}

func TestSleepInhibitorNoopIsSafe(t *testing.T) {
	inhibitor := &SleepInhibitor{}
	inhibitor.Stop()
	inhibitor.Stop()
}
