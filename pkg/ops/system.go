package ops

import (
	"github.com/costaindustries-source/mac-cleaner/pkg/types"
)

// memoryPurge forces the kernel to release inactive memory.
type memoryPurge struct{}

func (memoryPurge) Descriptor() types.OperationDescriptor {
	return types.OperationDescriptor{
		ID:              "memory-purge",
		Description:     "Force-release inactive memory (purge)",
		Risk:            types.RiskMedium,
		Category:        "memory",
		NeedsPrivileges: true,
	}
}

func (memoryPurge) Execute(ctx *types.OperationContext) error {
	if _, err := run(ctx, true, "sudo", "purge"); err != nil {
		ctx.Errorf("purge failed: %v", err)
		return err
	}
	return nil
}

// maintenanceScripts runs the periodic daily/weekly/monthly scripts that
// launchd normally staggers overnight.
type maintenanceScripts struct{}

func (maintenanceScripts) Descriptor() types.OperationDescriptor {
	return types.OperationDescriptor{
		ID:              "maintenance-scripts",
		Description:     "Run the periodic daily, weekly, and monthly scripts",
		Risk:            types.RiskMedium,
		Category:        "system",
		NeedsPrivileges: true,
	}
}

func (maintenanceScripts) Execute(ctx *types.OperationContext) error {
	if _, err := run(ctx, true, "sudo", "periodic", "daily", "weekly", "monthly"); err != nil {
		ctx.Errorf("periodic scripts failed: %v", err)
		return err
	}
	return nil
}
