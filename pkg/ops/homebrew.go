package ops

import (
	"os"
	"strings"

	"github.com/costaindustries-source/mac-cleaner/pkg/space"
	"github.com/costaindustries-source/mac-cleaner/pkg/types"
)

// homebrewCleanup runs brew's own cleanup and then prunes what it leaves
// behind in the cache directory. It never installs, uninstalls, or
// upgrades anything.
type homebrewCleanup struct{}

func (homebrewCleanup) Descriptor() types.OperationDescriptor {
	return types.OperationDescriptor{
		ID:          "homebrew-cleanup",
		Description: "Run brew cleanup and prune the Homebrew download cache",
		Risk:        types.RiskLow,
		Category:    "caches",
	}
}

func (homebrewCleanup) Execute(ctx *types.OperationContext) error {
	if !toolAvailable(ctx, "brew") {
		return nil
	}

	cacheDir := brewCachePath(ctx)
	beforeKB := space.PathSizeKB(cacheDir)

	// -s scrubs the cache including the latest versions of formulae
	if out, err := run(ctx, true, "brew", "cleanup", "-s"); err != nil {
		// brew cleanup failing is a hard failure: it is the operation's
		// one required step
		ctx.Errorf("brew cleanup failed: %v", err)
		if out != "" {
			ctx.Logger.Debug().Str("output", out).Msg("brew cleanup output")
		}
		return err
	}

	// credit what brew cleanup itself reclaimed before sweeping further
	if !ctx.DryRun && cacheDir != "" {
		ctx.RecordFreed(beforeKB, space.PathSizeKB(cacheDir))
	}

	// sweep stragglers brew chose to keep (partial downloads, old casks);
	// cleanDirContents credits its own deletions entry by entry
	if cacheDir != "" {
		if err := cleanDirContents(ctx, cacheDir); err != nil {
			return err
		}
	}
	return nil
}

// brewCachePath asks brew where its cache lives, falling back to the
// conventional location.
func brewCachePath(ctx *types.OperationContext) string {
	if out, err := run(ctx, false, "brew", "--cache"); err == nil {
		if dir := strings.TrimSpace(out); dir != "" {
			return dir
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		return home + "/Library/Caches/Homebrew"
	}
	return ""
}
