package ops

import (
	"github.com/costaindustries-source/mac-cleaner/pkg/types"
)

// kernelCaches rebuilds the kernel-extension caches. Needed after kext
// churn; harmless but slow otherwise.
type kernelCaches struct{}

func (kernelCaches) Descriptor() types.OperationDescriptor {
	return types.OperationDescriptor{
		ID:              "kernel-caches",
		Description:     "Rebuild the kernel extension caches (kmutil)",
		Risk:            types.RiskHigh,
		Category:        "system",
		NeedsPrivileges: true,
	}
}

func (kernelCaches) Execute(ctx *types.OperationContext) error {
	if !toolAvailable(ctx, "kmutil") {
		return nil
	}
	if _, err := run(ctx, true, "sudo", "kmutil", "install", "--update-all"); err != nil {
		ctx.Errorf("kernel cache rebuild failed: %v", err)
		return err
	}
	return nil
}
