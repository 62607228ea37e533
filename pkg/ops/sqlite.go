package ops

import (
	"os"
	"path/filepath"

	"github.com/costaindustries-source/mac-cleaner/pkg/space"
	"github.com/costaindustries-source/mac-cleaner/pkg/types"
)

// sqliteVacuum compacts well-known user databases. VACUUM rewrites the
// whole file, so each database is offered through a nested confirmation
// and only touched when its owning app is not holding it open.
type sqliteVacuum struct{}

func (sqliteVacuum) Descriptor() types.OperationDescriptor {
	return types.OperationDescriptor{
		ID:          "sqlite-vacuum",
		Description: "VACUUM well-known user databases (Mail, Safari, Photos)",
		Risk:        types.RiskMedium,
		Category:    "databases",
	}
}

func (v sqliteVacuum) Execute(ctx *types.OperationContext) error {
	if !toolAvailable(ctx, "sqlite3") {
		return nil
	}

	databases := v.resolve()
	if len(databases) == 0 {
		ctx.Warnf("no known databases found")
		return nil
	}

	ctx.Progress.Begin(len(databases))
	var attempted, failed int
	var lastErr error
	for _, db := range databases {
		ctx.Progress.Advance(filepath.Base(db))

		ok, err := ctx.Confirm.Ask("Vacuum " + db + "?")
		if err != nil {
			return err
		}
		if !ok {
			ctx.Warnf("vacuum of %s declined", db)
			continue
		}

		attempted++
		beforeKB := space.PathSizeKB(db)
		if _, err := run(ctx, true, "sqlite3", db, "VACUUM;"); err != nil {
			// a locked database means its app is using it: an ancillary
			// miss, not a failure of the whole operation
			ctx.Warnf("vacuum of %s failed: %v", db, err)
			failed++
			lastErr = err
			continue
		}
		if !ctx.DryRun {
			ctx.RecordFreed(beforeKB, space.PathSizeKB(db))
		}
	}

	// every attempted vacuum failing means the required step never
	// succeeded once; that is a hard failure
	if attempted > 0 && failed == attempted {
		ctx.Errorf("all %d vacuum attempts failed", attempted)
		return lastErr
	}
	return nil
}

// resolve expands the tuning globs to databases that actually exist.
func (sqliteVacuum) resolve() []string {
	var out []string
	for _, pattern := range tuning.SQLiteDatabases {
		matches, err := filepath.Glob(expandHome(pattern))
		if err != nil {
			continue
		}
		for _, m := range matches {
			if info, err := os.Stat(m); err == nil && !info.IsDir() {
				out = append(out, m)
			}
		}
	}
	return out
}
