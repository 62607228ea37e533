package ops

import (
	"os"

	"github.com/costaindustries-source/mac-cleaner/pkg/errors"
	"github.com/costaindustries-source/mac-cleaner/pkg/paths"
	"github.com/pelletier/go-toml/v2"
)

// Tuning adjusts what the operation bodies touch. Loaded from the
// optional operations.toml next to the main config; every field has a
// conservative default so the file is never required.
type Tuning struct {
	// ProtectedPatterns are wildcard patterns of cache entries that are
	// never deleted (app state that is expensive to rebuild)
	ProtectedPatterns []string `toml:"protected_patterns"`

	// LogRetentionDays is the age threshold for pruning ~/Library/Logs
	LogRetentionDays int `toml:"log_retention_days"`

	// SQLiteDatabases are the user databases offered for VACUUM, with ~
	// expanded at use time
	SQLiteDatabases []string `toml:"sqlite_databases"`
}

// defaultTuning is what a run without operations.toml gets.
func defaultTuning() Tuning {
	return Tuning{
		ProtectedPatterns: []string{
			"CloudKit*",
			"com.apple.HomeKit*",
			"FamilyCircle*",
		},
		LogRetentionDays: 30,
		SQLiteDatabases: []string{
			"~/Library/Mail/V*/MailData/Envelope Index",
			"~/Library/Safari/History.db",
			"~/Pictures/Photos Library.photoslibrary/database/Photos.sqlite",
		},
	}
}

// tuning is the process-wide tuning, replaced once at startup.
var tuning = defaultTuning()

// LoadTuning reads operations.toml if present and overlays it on the
// defaults. A missing file is fine; a malformed one is a Fatal config
// error like any other bad configuration.
func LoadTuning() error {
	return loadTuningFrom(paths.OperationsFile())
}

func loadTuningFrom(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrConfigLoad, "cannot read %s", path)
	}

	t := defaultTuning()
	if err := toml.Unmarshal(data, &t); err != nil {
		return errors.Wrapf(err, errors.ErrConfigInvalid, "cannot parse %s", path)
	}
	if t.LogRetentionDays <= 0 {
		return errors.Newf(errors.ErrConfigInvalid, "log_retention_days must be positive, got %d", t.LogRetentionDays)
	}

	tuning = t
	return nil
}
