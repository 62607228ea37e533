package safety

import (
	"context"
	"os/exec"

	"github.com/costaindustries-source/mac-cleaner/pkg/logging"
)

// SleepInhibitor keeps the machine awake for the duration of the run by
// holding a caffeinate child process. The child is bound to the run
// context, so an interrupt or the parent dying takes it down too.
type SleepInhibitor struct {
	cmd    *exec.Cmd
	cancel context.CancelFunc
}

// StartSleepInhibitor launches caffeinate. A missing binary (or a
// non-macOS test host) degrades to a no-op inhibitor; keeping the machine
// awake is best effort, not a precondition.
func StartSleepInhibitor(ctx context.Context) *SleepInhibitor {
	logger := logging.GetLogger("safety")

	if _, err := exec.LookPath("caffeinate"); err != nil {
		logger.Debug().Msg("caffeinate not available, sleep inhibition disabled")
		return &SleepInhibitor{}
	}

	ctx, cancel := context.WithCancel(ctx)
	// -d display, -i idle, -m disk, -s system, -u user-active
	cmd := exec.CommandContext(ctx, "caffeinate", "-dimsu")
	if err := cmd.Start(); err != nil {
		logger.Warn().Err(err).Msg("Failed to start sleep inhibitor")
		cancel()
		return &SleepInhibitor{}
	}

	logger.Debug().Int("pid", cmd.Process.Pid).Msg("Sleep inhibitor started")
	return &SleepInhibitor{cmd: cmd, cancel: cancel}
}

// Stop terminates the caffeinate child. Safe to call on a no-op
// inhibitor and safe to call more than once.
func (s *SleepInhibitor) Stop() {
	if s.cmd == nil {
		return
	}
	s.cancel()
	_ = s.cmd.Wait()
	s.cmd = nil
	logger := logging.GetLogger("safety")
	logger.Debug().Msg("Sleep inhibitor stopped")
}
