package ops

import (
	"github.com/costaindustries-source/mac-cleaner/pkg/types"
)

// lsregisterPath is where the LaunchServices tool hides; it is not on
// PATH.
const lsregisterPath = "/System/Library/Frameworks/CoreServices.framework/Frameworks/LaunchServices.framework/Support/lsregister"

// launchServicesRebuild resets the LaunchServices database, the usual fix
// for duplicate "Open With" entries.
type launchServicesRebuild struct{}

func (launchServicesRebuild) Descriptor() types.OperationDescriptor {
	return types.OperationDescriptor{
		ID:          "launchservices-rebuild",
		Description: "Rebuild the LaunchServices database (fixes Open With duplicates)",
		Risk:        types.RiskMedium,
		Category:    "indexes",
	}
}

func (launchServicesRebuild) Execute(ctx *types.OperationContext) error {
	args := []string{"-kill", "-r", "-domain", "local", "-domain", "system", "-domain", "user"}
	if _, err := run(ctx, true, lsregisterPath, args...); err != nil {
		ctx.Errorf("lsregister rebuild failed: %v", err)
		return err
	}
	return nil
}

// spotlightRebuild erases and reindexes the Spotlight store. The reindex
// runs for hours in the background afterwards, hence the high risk tag.
type spotlightRebuild struct{}

func (spotlightRebuild) Descriptor() types.OperationDescriptor {
	return types.OperationDescriptor{
		ID:              "spotlight-rebuild",
		Description:     "Erase and rebuild the Spotlight index on / (reindex takes hours)",
		Risk:            types.RiskHigh,
		Category:        "indexes",
		NeedsPrivileges: true,
	}
}

func (spotlightRebuild) Execute(ctx *types.OperationContext) error {
	if _, err := run(ctx, true, "sudo", "mdutil", "-E", "/"); err != nil {
		ctx.Errorf("spotlight rebuild failed: %v", err)
		return err
	}
	return nil
}
