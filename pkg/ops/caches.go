package ops

import (
	"strings"

	"github.com/costaindustries-source/mac-cleaner/pkg/types"
)

// userCaches clears ~/Library/Caches, the single biggest reclaim on most
// machines.
type userCaches struct{}

func (userCaches) Descriptor() types.OperationDescriptor {
	return types.OperationDescriptor{
		ID:          "user-caches",
		Description: "Delete the contents of ~/Library/Caches (protected entries kept)",
		Risk:        types.RiskLow,
		Category:    "caches",
	}
}

func (userCaches) Execute(ctx *types.OperationContext) error {
	return cleanDirContents(ctx, expandHome("~/Library/Caches"))
}

// systemCaches clears /Library/Caches. The directory is root-owned, so
// the descriptor declares the privilege need.
type systemCaches struct{}

func (systemCaches) Descriptor() types.OperationDescriptor {
	return types.OperationDescriptor{
		ID:              "system-caches",
		Description:     "Delete the contents of /Library/Caches (protected entries kept)",
		Risk:            types.RiskMedium,
		Category:        "caches",
		NeedsPrivileges: true,
	}
}

func (systemCaches) Execute(ctx *types.OperationContext) error {
	return cleanDirContents(ctx, "/Library/Caches")
}

// browser describes one browser's cache location and the process name
// that must not be running while we touch it.
type browser struct {
	name     string
	process  string
	cacheDir string
}

var browsers = []browser{
	{"Safari", "Safari", "~/Library/Caches/com.apple.Safari"},
	{"Chrome", "Google Chrome", "~/Library/Caches/Google/Chrome"},
	{"Firefox", "firefox", "~/Library/Caches/Firefox"},
}

// browserCaches clears per-browser cache directories, but only for
// browsers that are not currently running; yanking a live browser's cache
// corrupts its state.
type browserCaches struct{}

func (browserCaches) Descriptor() types.OperationDescriptor {
	return types.OperationDescriptor{
		ID:          "browser-caches",
		Description: "Delete Safari/Chrome/Firefox caches for browsers not currently running",
		Risk:        types.RiskLow,
		Category:    "caches",
	}
}

func (b browserCaches) Execute(ctx *types.OperationContext) error {
	ctx.Progress.Begin(len(browsers))
	for _, br := range browsers {
		ctx.Progress.Advance(br.name)
		if b.isRunning(ctx, br.process) {
			ctx.Warnf("%s is running, skipping its cache", br.name)
			continue
		}
		if err := cleanDirContents(ctx, expandHome(br.cacheDir)); err != nil {
			return err
		}
	}
	return nil
}

// isRunning probes for the browser process. pgrep exits 1 for "no match",
// which is the answer we want, not a failure.
func (browserCaches) isRunning(ctx *types.OperationContext, process string) bool {
	out, err := run(ctx, false, "pgrep", "-x", process)
	return err == nil && strings.TrimSpace(out) != ""
}
