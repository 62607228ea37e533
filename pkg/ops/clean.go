package ops

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/IGLOU-EU/go-wildcard"
	"github.com/costaindustries-source/mac-cleaner/pkg/space"
	"github.com/costaindustries-source/mac-cleaner/pkg/types"
)

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}

// isProtected reports whether a cache entry matches any protected
// wildcard pattern from the tuning.
func isProtected(name string) bool {
	for _, pattern := range tuning.ProtectedPatterns {
		if wildcard.Match(pattern, name) {
			return true
		}
	}
	return false
}

// cleanDirContents deletes the entries of dir, honoring protected
// patterns and measuring reclaimed space entry by entry. The directory
// itself stays. A missing dir is an ancillary miss; an unreadable dir is
// a hard failure because the operation's one required step cannot start.
func cleanDirContents(ctx *types.OperationContext, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			ctx.Warnf("%s not found", dir)
			return nil
		}
		ctx.Errorf("cannot read %s: %v", dir, err)
		return err
	}

	for _, entry := range entries {
		if err := ctx.Ctx.Err(); err != nil {
			return err
		}
		if isProtected(entry.Name()) {
			ctx.Logger.Debug().Str("entry", entry.Name()).Msg("Protected, keeping")
			continue
		}

		target := filepath.Join(dir, entry.Name())
		beforeKB := space.PathSizeKB(target)

		if ctx.DryRun {
			ctx.Logger.Info().Str("path", target).Int64("sizeKB", beforeKB).Msg("Dry run: would delete")
			continue
		}

		if err := os.RemoveAll(target); err != nil {
			// a busy or permission-denied entry is an ancillary miss;
			// credit whatever the partial deletion actually freed
			ctx.Warnf("could not remove %s: %v", target, err)
		}
		ctx.RecordFreed(beforeKB, space.PathSizeKB(target))
	}
	return nil
}

// pruneOldFiles removes regular files under dir older than the retention
// window. Subdirectories are left in place; log rotation owns those.
func pruneOldFiles(ctx *types.OperationContext, dir string, retentionDays int) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			ctx.Warnf("cannot read %s: %v", dir, err)
		} else {
			ctx.Warnf("%s not found", dir)
		}
		return
	}

	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil || info.ModTime().After(cutoff) {
			continue
		}

		target := filepath.Join(dir, entry.Name())
		beforeKB := info.Size() / 1024

		if ctx.DryRun {
			ctx.Logger.Info().Str("path", target).Msg("Dry run: would prune")
			continue
		}

		if err := os.Remove(target); err != nil {
			ctx.Warnf("could not prune %s: %v", target, err)
			continue
		}
		ctx.RecordFreed(beforeKB, 0)
	}
}
