package ops

import (
	"context"
	"os/exec"
	"strings"

	"github.com/costaindustries-source/mac-cleaner/pkg/errors"
	"github.com/costaindustries-source/mac-cleaner/pkg/logging"
	"github.com/costaindustries-source/mac-cleaner/pkg/types"
)

// ExecRunner runs external commands through os/exec. It is the single
// production implementation of types.CommandRunner; tests substitute a
// fake.
type ExecRunner struct{}

// NewRunner creates the production command runner.
func NewRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the command bound to ctx and returns its combined output.
// Binding to ctx is what makes interrupts and per-operation timeouts kill
// an in-flight external command.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	logger := logging.GetLogger("ops")
	logging.LogCommand(logger, name, args)

	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	output := strings.TrimSpace(string(out))
	if err != nil {
		return output, errors.Wrapf(err, errors.ErrCommandRun, "%s %s failed", name, strings.Join(args, " "))
	}
	return output, nil
}

// LookPath resolves the named binary on PATH.
func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// run executes a command through the operation's runner unless the run is
// a dry run and the command mutates the system. Read-only probes always
// execute so a dry run still reports realistic findings.
func run(ctx *types.OperationContext, mutating bool, name string, args ...string) (string, error) {
	if mutating && ctx.DryRun {
		ctx.Logger.Info().
			Str("command", name).
			Strs("args", args).
			Msg("Dry run: would execute")
		return "", nil
	}
	return ctx.Runner.Run(ctx.Ctx, name, args...)
}

// toolAvailable reports whether the named binary exists, recording a
// warning when it does not. A missing tool is never a hard failure.
func toolAvailable(ctx *types.OperationContext, name string) bool {
	if _, err := ctx.Runner.LookPath(name); err != nil {
		ctx.Warnf("%s not found, skipping", name)
		return false
	}
	return true
}
