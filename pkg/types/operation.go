package types

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Operation is the contract every maintenance action implements. Bodies
// must never let a failure escape Execute other than through the returned
// error; the orchestrator recovers panics at this boundary and records
// them on the outcome, so a broken operation can never take the run down.
type Operation interface {
	// Descriptor returns the operation's immutable identity
	Descriptor() OperationDescriptor

	// Execute performs the work. A non-nil error marks the outcome Failed;
	// ancillary misses should be recorded with ctx.Warnf instead.
	Execute(ctx *OperationContext) error
}

// ProgressReporter is the sub-step progress handle an operation receives.
type ProgressReporter interface {
	// Begin resets the tracker for the given number of sub-steps
	Begin(total int)

	// Advance completes one sub-step and re-renders the bar
	Advance(label string)
}

// NestedConfirmer lets an operation body ask its own go/no-go question,
// honoring whatever confirmation strategy the run was started with.
type NestedConfirmer interface {
	// Ask poses a yes/no question; an empty interactive answer means yes
	Ask(prompt string) (bool, error)
}

// SpaceRecorder accumulates reclaimed disk space across operations.
type SpaceRecorder interface {
	// RecordFreed adds the non-negative delta between a before and after
	// measurement (afterKB is 0 when the target no longer exists) and
	// returns the delta actually credited
	RecordFreed(beforeKB, afterKB int64) int64
}

// CommandRunner invokes external OS commands. Operation bodies go through
// this interface so tests can substitute a fake.
type CommandRunner interface {
	// Run executes the command and returns its combined output
	Run(ctx context.Context, name string, args ...string) (string, error)

	// LookPath reports where the named binary resolves, if anywhere
	LookPath(name string) (string, error)
}

// OperationContext is what the orchestrator hands each operation body:
// cancellation, a component-scoped logger, a sub-step progress handle, a
// nested confirmation capability, the space-accounting helper, and the
// command runner. It also collects the warnings, errors, and freed-space
// tally that end up on the operation's outcome.
type OperationContext struct {
	// Ctx carries run cancellation and the per-operation timeout
	Ctx context.Context

	// Logger is scoped to the executing operation
	Logger zerolog.Logger

	// Progress is scoped to the operation's own sub-steps
	Progress ProgressReporter

	// Confirm asks nested go/no-go questions through the run's gate
	Confirm NestedConfirmer

	// Runner invokes external commands
	Runner CommandRunner

	// DryRun previews mutating steps without executing them
	DryRun bool

	space    SpaceRecorder
	warnings []string
	errors   []string
	freedKB  int64
}

// NewOperationContext wires a context for one operation execution.
func NewOperationContext(ctx context.Context, logger zerolog.Logger, progress ProgressReporter, confirm NestedConfirmer, space SpaceRecorder, runner CommandRunner, dryRun bool) *OperationContext {
	return &OperationContext{
		Ctx:      ctx,
		Logger:   logger,
		Progress: progress,
		Confirm:  confirm,
		Runner:   runner,
		DryRun:   dryRun,
		space:    space,
	}
}

// Warnf records an ancillary miss on the outcome and logs it. Warnings
// never change the operation's status.
func (c *OperationContext) Warnf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	c.warnings = append(c.warnings, msg)
	c.Logger.Warn().Msg(msg)
}

// Errorf records a hard problem on the outcome and logs it. The caller is
// still responsible for returning an error from Execute when the problem
// is fatal to the operation.
func (c *OperationContext) Errorf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	c.errors = append(c.errors, msg)
	c.Logger.Error().Msg(msg)
}

// RecordFreed credits reclaimed space to both the run-wide accountant and
// this operation's outcome. Returns the non-negative delta credited.
func (c *OperationContext) RecordFreed(beforeKB, afterKB int64) int64 {
	delta := c.space.RecordFreed(beforeKB, afterKB)
	c.freedKB += delta
	return delta
}

// Warnings returns the collected warnings.
func (c *OperationContext) Warnings() []string {
	return c.warnings
}

// CollectedErrors returns the collected error messages.
func (c *OperationContext) CollectedErrors() []string {
	return c.errors
}

// FreedKB returns the space credited to this operation so far.
func (c *OperationContext) FreedKB() int64 {
	return c.freedKB
}
