package safety

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/costaindustries-source/mac-cleaner/pkg/errors"
	"github.com/costaindustries-source/mac-cleaner/pkg/logging"
)

// Supervisor owns the run's scoped resources and guarantees their release
// on every exit path: normal return, error return, SIGINT, SIGTERM.
type Supervisor struct {
	cleanupOnce sync.Once
	cleanups    []func()
}

// NewSupervisor creates a supervisor with no acquired resources yet.
func NewSupervisor() *Supervisor {
	return &Supervisor{}
}

// OnCleanup registers a release step. Steps run in reverse registration
// order, exactly once, whatever way the run ends.
func (s *Supervisor) OnCleanup(fn func()) {
	s.cleanups = append(s.cleanups, fn)
}

// Run executes fn under a signal guard. An interrupt or termination
// cancels fn's context; fn is expected to unwind promptly because every
// external command it spawns is bound to that context. The cleanup chain
// runs exactly once before Run returns, and the original error (or an
// INTERRUPTED error when a signal ended the run) is propagated.
func (s *Supervisor) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	logger := logging.GetLogger("safety")

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := fn(ctx)

	if ctx.Err() != nil && err != nil {
		logger.Warn().Msg("Run interrupted by signal")
		err = errors.Wrap(err, errors.ErrInterrupted, "run interrupted")
	}

	s.cleanup()
	return err
}

func (s *Supervisor) cleanup() {
	s.cleanupOnce.Do(func() {
		for i := len(s.cleanups) - 1; i >= 0; i-- {
			s.cleanups[i]()
		}
		// the log sink closes last so cleanup steps can still log
		logging.Close()
	})
}
