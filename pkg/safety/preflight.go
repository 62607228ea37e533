// Package safety supervises the run as a whole: the preflight gate, the
// single signal-driven cleanup path, the sleep inhibitor, and the
// privilege keep-alive. Only this package may terminate the process with
// a non-zero status.
package safety

import (
	"runtime"

	"github.com/costaindustries-source/mac-cleaner/pkg/errors"
	"github.com/costaindustries-source/mac-cleaner/pkg/logging"
	"github.com/costaindustries-source/mac-cleaner/pkg/space"
	"github.com/costaindustries-source/mac-cleaner/pkg/types"
)

// Function fields so tests can fake the host probes.
var (
	diskUsage = space.Usage
	hostOS    = func() string { return runtime.GOOS }
)

// Preflight is the only precondition gating the entire run, checked
// before any confirmation gate fires. It verifies the host is macOS and
// that the root volume has at least minFreeGB available. Failure is
// Fatal: the run aborts before any operation executes.
func Preflight(minFreeGB int) (types.DiskUsage, error) {
	logger := logging.GetLogger("safety")

	if os := hostOS(); os != "darwin" {
		return types.DiskUsage{}, errors.Newf(errors.ErrPreflight, "mac-cleaner only runs on macOS, host reports %q", os)
	}

	usage, err := diskUsage("/")
	if err != nil {
		return types.DiskUsage{}, errors.Wrap(err, errors.ErrPreflight, "cannot measure free space on /")
	}

	freeGB := usage.FreeKB / (1024 * 1024)
	logger.Debug().
		Int64("freeGB", freeGB).
		Int("thresholdGB", minFreeGB).
		Msg("Preflight free-space check")

	if freeGB < int64(minFreeGB) {
		return usage, errors.Newf(errors.ErrPreflight,
			"only %d GB free on the primary volume, %d GB required; free some space and re-run",
			freeGB, minFreeGB).
			WithDetail("freeGB", freeGB).
			WithDetail("thresholdGB", minFreeGB)
	}

	return usage, nil
}
