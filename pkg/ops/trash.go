package ops

import (
	"github.com/costaindustries-source/mac-cleaner/pkg/types"
)

// trash empties ~/.Trash. Items there were already marked disposable by
// the user, so this is the least surprising reclaim of all.
type trash struct{}

func (trash) Descriptor() types.OperationDescriptor {
	return types.OperationDescriptor{
		ID:          "trash",
		Description: "Empty ~/.Trash",
		Risk:        types.RiskLow,
		Category:    "storage",
	}
}

func (trash) Execute(ctx *types.OperationContext) error {
	return cleanDirContents(ctx, expandHome("~/.Trash"))
}
