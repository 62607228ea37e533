// Package core is the orchestration run loop: preflight, selection,
// per-operation confirmation and execution, outcome aggregation, and
// report synthesis, all under the safety supervisor's signal guard.
package core

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/costaindustries-source/mac-cleaner/pkg/confirm"
	"github.com/costaindustries-source/mac-cleaner/pkg/errors"
	"github.com/costaindustries-source/mac-cleaner/pkg/logging"
	"github.com/costaindustries-source/mac-cleaner/pkg/paths"
	"github.com/costaindustries-source/mac-cleaner/pkg/progress"
	"github.com/costaindustries-source/mac-cleaner/pkg/registry"
	"github.com/costaindustries-source/mac-cleaner/pkg/report"
	"github.com/costaindustries-source/mac-cleaner/pkg/safety"
	"github.com/costaindustries-source/mac-cleaner/pkg/space"
	"github.com/costaindustries-source/mac-cleaner/pkg/types"
	"github.com/google/uuid"
)

// Orchestrator drives one maintenance run.
type Orchestrator struct {
	Config     types.RunConfiguration
	Registry   *registry.Registry
	Gate       confirm.Gate
	Runner     types.CommandRunner
	Out        io.Writer
	ReportDir  string
	Stamp      paths.RunStamp
	Accountant *space.Accountant

	// hooks swapped in tests
	preflight  func(int) (types.DiskUsage, error)
	captureEnv func() types.EnvironmentSnapshot
	diskUsage  func(string) (types.DiskUsage, error)
	startSudo  func(context.Context) (*safety.SudoKeepAlive, error)
}

// New wires an orchestrator with the production collaborators.
func New(cfg types.RunConfiguration, reg *registry.Registry, gate confirm.Gate, runner types.CommandRunner, out io.Writer, reportDir string, stamp paths.RunStamp) *Orchestrator {
	return &Orchestrator{
		Config:     cfg,
		Registry:   reg,
		Gate:       gate,
		Runner:     runner,
		Out:        out,
		ReportDir:  reportDir,
		Stamp:      stamp,
		Accountant: space.NewAccountant(),
		preflight:  safety.Preflight,
		captureEnv: report.CaptureEnvironment,
		diskUsage:  space.Usage,
		startSudo:  safety.StartSudoKeepAlive,
	}
}

// Run executes the whole flow. Individual operation failures are
// recorded, never returned; a non-nil return means the run itself could
// not proceed (preflight abort, selection error, interrupt, artifact
// write failure) and maps to a non-zero exit.
func (o *Orchestrator) Run(ctx context.Context) (*types.RunReport, error) {
	logger := logging.GetLogger("core")

	// the only precondition gating the entire run, before any gate fires
	diskBefore, err := o.preflight(o.Config.MinFreeGB)
	if err != nil {
		return nil, err
	}

	selection, err := o.Registry.ResolveSelection(o.Config)
	if err != nil {
		return nil, err
	}
	logger.Info().Strs("selection", selection).Msg("Selection resolved")

	env := o.captureEnv()
	env.DiskBefore = diskBefore

	runID := uuid.NewString()
	agg := report.NewAggregator(runID, time.Now(), env)

	supervisor := safety.NewSupervisor()
	runErr := supervisor.Run(ctx, func(ctx context.Context) error {
		inhibitor := safety.StartSleepInhibitor(ctx)
		supervisor.OnCleanup(inhibitor.Stop)

		if o.needsPrivileges(selection) && !o.Config.DryRun {
			keepAlive, err := o.startSudo(ctx)
			if err != nil {
				return errors.Wrap(err, errors.ErrPreflight, "cannot establish a sudo session")
			}
			supervisor.OnCleanup(keepAlive.Stop)
		}

		return o.executeSelection(ctx, selection, agg)
	})

	diskAfter := env.DiskBefore
	if usage, err := o.diskUsage("/"); err == nil {
		diskAfter = usage
	}
	r := agg.Finalize(time.Now(), diskAfter)

	if runErr != nil {
		return r, runErr
	}

	arts, err := report.Write(r, o.ReportDir, o.Stamp)
	if err != nil {
		return r, err
	}
	o.printSummary(r, arts)

	if o.Config.Preview {
		if rendered, err := report.Preview(arts.Markdown); err == nil {
			fmt.Fprint(o.Out, rendered)
		} else {
			logger.Warn().Err(err).Msg("Could not preview report")
		}
	}

	return r, nil
}

func (o *Orchestrator) needsPrivileges(selection []string) bool {
	for _, id := range selection {
		if op, err := o.Registry.Get(id); err == nil && op.Descriptor().NeedsPrivileges {
			return true
		}
	}
	return false
}

// executeSelection runs the operations strictly one at a time in
// selector order. An interrupt stops between operations; in-flight
// external commands die with the context.
func (o *Orchestrator) executeSelection(ctx context.Context, selection []string, agg *report.Aggregator) error {
	for i, id := range selection {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, errors.ErrInterrupted, "run cancelled")
		}

		op, err := o.Registry.Get(id)
		if err != nil {
			// selection was resolved against this registry; a miss here
			// is a programming error
			return err
		}
		desc := op.Descriptor()

		fmt.Fprintf(o.Out, "\n[%d/%d] %s\n", i+1, len(selection), desc.ID)

		proceed, err := o.Gate.Confirm(desc)
		if err != nil {
			return err
		}
		if !proceed {
			logger := logging.GetLogger(desc.ID)
			logger.Info().Msg("Skipped: user declined")
			agg.Record(types.SkippedOutcome(desc, "user declined", time.Now()))
			continue
		}

		agg.Record(o.executeOne(ctx, op))
	}
	return nil
}

// executeOne runs a single operation body under the contract: panics and
// errors are caught here and recorded on the outcome, the run continues.
func (o *Orchestrator) executeOne(ctx context.Context, op types.Operation) types.OperationOutcome {
	desc := op.Descriptor()
	logger := logging.GetLogger(desc.ID)
	started := time.Now()

	opCtx := ctx
	var cancel context.CancelFunc
	if o.Config.OperationTimeout > 0 {
		opCtx, cancel = context.WithTimeout(ctx, o.Config.OperationTimeout)
		defer cancel()
	}

	execCtx := types.NewOperationContext(
		opCtx,
		logger,
		progress.NewTracker(o.Out),
		o.Gate,
		o.Accountant,
		o.Runner,
		o.Config.DryRun,
	)

	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = errors.Newf(errors.ErrOperationExecute, "operation %s panicked: %v", desc.ID, r)
			}
		}()
		return op.Execute(execCtx)
	}()

	outcome := types.OperationOutcome{
		OperationID:  desc.ID,
		Status:       types.StatusCompleted,
		Description:  desc.Description,
		Risk:         desc.Risk,
		Category:     desc.Category,
		SpaceFreedKB: execCtx.FreedKB(),
		Warnings:     execCtx.Warnings(),
		Errors:       execCtx.CollectedErrors(),
		StartedAt:    started,
		FinishedAt:   time.Now(),
	}

	if err != nil {
		outcome.Status = types.StatusFailed
		if opCtx.Err() == context.DeadlineExceeded {
			err = errors.Wrapf(err, errors.ErrOperationTimeout, "operation %s exceeded %s", desc.ID, o.Config.OperationTimeout)
		}
		msg := err.Error()
		if len(outcome.Errors) == 0 || outcome.Errors[len(outcome.Errors)-1] != msg {
			outcome.Errors = append(outcome.Errors, msg)
		}
		logger.Error().Err(err).Dur("duration", outcome.Duration()).Msg("Operation failed")
	} else {
		logging.Success(logger, "Operation completed")
	}

	return outcome
}
