package safety

import (
	"context"
	"os/exec"
	"time"

	"github.com/costaindustries-source/mac-cleaner/pkg/logging"
)

// sudoRefreshInterval is well inside sudo's default 5 minute timestamp
// timeout.
const sudoRefreshInterval = 60 * time.Second

// SudoKeepAlive refreshes the elevated session on a ticker so a long run
// never stops mid-way to re-prompt for a password. Started only when the
// selection contains a privileged operation.
type SudoKeepAlive struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// StartSudoKeepAlive validates the sudo session once up front (this is
// the moment the password prompt happens, before any operation runs) and
// then keeps it fresh in the background until the run context ends.
func StartSudoKeepAlive(ctx context.Context) (*SudoKeepAlive, error) {
	logger := logging.GetLogger("safety")

	// interactive validation; -v extends the timestamp, prompting if needed
	if err := exec.CommandContext(ctx, "sudo", "-v").Run(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	k := &SudoKeepAlive{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(k.done)
		ticker := time.NewTicker(sudoRefreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				// -n never prompts; a failed refresh just means the next
				// privileged command prompts again
				if err := exec.CommandContext(ctx, "sudo", "-nv").Run(); err != nil {
					logger.Debug().Err(err).Msg("sudo refresh failed")
				}
			}
		}
	}()

	logger.Debug().Msg("Privilege keep-alive started")
	return k, nil
}

// Stop ends the keep-alive loop and waits for it to exit.
func (k *SudoKeepAlive) Stop() {
	k.cancel()
	<-k.done
	logger := logging.GetLogger("safety")
	logger.Debug().Msg("Privilege keep-alive stopped")
}
