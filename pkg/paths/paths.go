// Package paths provides centralized path handling for mac-cleaner.
// It implements XDG Base Directory specification compliance and mints the
// single per-run timestamp shared by the log and both report artifacts.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvStateDir overrides the XDG state directory for mac-cleaner
	EnvStateDir = "MAC_CLEANER_STATE_DIR"

	// EnvConfigDir overrides the XDG config directory for mac-cleaner
	EnvConfigDir = "MAC_CLEANER_CONFIG_DIR"
)

const (
	// AppDirName is the subdirectory used under the XDG base dirs
	AppDirName = "mac-cleaner"

	// ConfigFileName is the user configuration file name
	ConfigFileName = "config.toml"

	// OperationsFileName is the optional operation tuning file name
	OperationsFileName = "operations.toml"

	// stampLayout is the per-run timestamp format shared by all artifacts
	stampLayout = "20060102-150405"
)

// RunStamp is the per-run timestamp token. Minted once per process and
// embedded in the log, Markdown, and HTML filenames so the three artifacts
// of one run always sort and group together.
type RunStamp string

// NewRunStamp mints the stamp for a run starting at t.
func NewRunStamp(t time.Time) RunStamp {
	return RunStamp(t.Format(stampLayout))
}

// StateDir returns the directory for logs and reports, creating it if
// needed. Resolution order: MAC_CLEANER_STATE_DIR, then
// $XDG_STATE_HOME/mac-cleaner (~/.local/state/mac-cleaner by default).
func StateDir() (string, error) {
	dir := os.Getenv(EnvStateDir)
	if dir == "" {
		dir = filepath.Join(xdg.StateHome, AppDirName)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create state directory %s: %w", dir, err)
	}
	return dir, nil
}

// ConfigDir returns the directory holding config.toml and operations.toml.
// Resolution order: MAC_CLEANER_CONFIG_DIR, then
// $XDG_CONFIG_HOME/mac-cleaner. The directory is not created; a missing
// config dir just means defaults apply.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFile returns the path of the user configuration file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// OperationsFile returns the path of the operation tuning file.
func OperationsFile() string {
	return filepath.Join(ConfigDir(), OperationsFileName)
}

// LogFile returns the per-run log file path inside dir.
func LogFile(dir string, stamp RunStamp) string {
	return filepath.Join(dir, fmt.Sprintf("maintenance-%s.log", stamp))
}

// MarkdownReport returns the per-run Markdown report path inside dir.
func MarkdownReport(dir string, stamp RunStamp) string {
	return filepath.Join(dir, fmt.Sprintf("maintenance-%s.md", stamp))
}

// HTMLReport returns the per-run HTML report path inside dir.
func HTMLReport(dir string, stamp RunStamp) string {
	return filepath.Join(dir, fmt.Sprintf("maintenance-%s.html", stamp))
}
