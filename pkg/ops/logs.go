package ops

import (
	"github.com/costaindustries-source/mac-cleaner/pkg/types"
)

// userLogs prunes old files out of ~/Library/Logs. Recent logs stay:
// they are what you want when something just broke.
type userLogs struct{}

func (userLogs) Descriptor() types.OperationDescriptor {
	return types.OperationDescriptor{
		ID:          "user-logs",
		Description: "Prune files in ~/Library/Logs older than the retention window",
		Risk:        types.RiskLow,
		Category:    "logs",
	}
}

func (userLogs) Execute(ctx *types.OperationContext) error {
	pruneOldFiles(ctx, expandHome("~/Library/Logs"), tuning.LogRetentionDays)
	return nil
}
