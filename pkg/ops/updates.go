package ops

import (
	"strings"

	"github.com/costaindustries-source/mac-cleaner/pkg/types"
)

// softwareUpdates checks for pending system updates. It needs the
// network, which is why it is first in the catalogue: nothing that can
// sever connectivity has run yet.
type softwareUpdates struct{}

func (softwareUpdates) Descriptor() types.OperationDescriptor {
	return types.OperationDescriptor{
		ID:          "software-updates",
		Description: "Check for pending macOS software updates",
		Risk:        types.RiskLow,
		Category:    "system",
	}
}

func (softwareUpdates) Execute(ctx *types.OperationContext) error {
	if !toolAvailable(ctx, "softwareupdate") {
		return nil
	}

	// read-only probe, runs even under --dry-run
	out, err := run(ctx, false, "softwareupdate", "-l")
	if err != nil {
		// softwareupdate exits non-zero when there is nothing to do on
		// some versions; only an unreachable catalog is worth flagging
		if strings.Contains(out, "No new software available") {
			ctx.Logger.Info().Msg("No pending updates")
			return nil
		}
		ctx.Errorf("software update check failed: %v", err)
		return err
	}

	if strings.Contains(out, "No new software available") {
		ctx.Logger.Info().Msg("No pending updates")
	} else {
		ctx.Warnf("pending software updates found; consider installing them after this run")
	}
	return nil
}
