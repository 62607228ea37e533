// Package config loads the layered run defaults: embedded defaults, then
// the user's config.toml, then MAC_CLEANER_* environment variables. CLI
// flags are applied on top by the command layer and always win.
package config

import (
	_ "embed"
	"os"
	"strings"
	"time"

	"github.com/costaindustries-source/mac-cleaner/pkg/errors"
	"github.com/costaindustries-source/mac-cleaner/pkg/paths"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// envPrefix is the environment variable namespace, e.g.
// MAC_CLEANER_MIN_FREE_GB=10.
const envPrefix = "MAC_CLEANER_"

// Defaults are the file/env-configurable run settings. Flat keys on
// purpose: the surface is small and MAC_CLEANER_MIN_FREE_GB maps onto
// min_free_gb without a section convention.
type Defaults struct {
	MinFreeGB        int    `koanf:"min_free_gb"`
	ReportDir        string `koanf:"report_dir"`
	Timeout          string `koanf:"timeout"`
	AutoConfirm      bool   `koanf:"auto_confirm"`
	PolicyFile       string `koanf:"policy_file"`
	NoColor          bool   `koanf:"no_color"`
	Preview          bool   `koanf:"preview"`
	LogRetentionDays int    `koanf:"log_retention_days"`
}

// OperationTimeout parses the timeout field.
func (d Defaults) OperationTimeout() (time.Duration, error) {
	if d.Timeout == "" {
		return 0, nil
	}
	dur, err := time.ParseDuration(d.Timeout)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrConfigInvalid, "invalid timeout %q", d.Timeout)
	}
	return dur, nil
}

// Load builds the layered defaults.
func Load() (Defaults, error) {
	return loadFrom(paths.ConfigFile())
}

func loadFrom(configFile string) (Defaults, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaultConfig), toml.Parser()); err != nil {
		return Defaults{}, errors.Wrap(err, errors.ErrInternal, "embedded defaults are broken")
	}

	if _, err := os.Stat(configFile); err == nil {
		if err := k.Load(file.Provider(configFile), toml.Parser()); err != nil {
			return Defaults{}, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load %s", configFile)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return Defaults{}, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	var d Defaults
	if err := k.Unmarshal("", &d); err != nil {
		return Defaults{}, errors.Wrap(err, errors.ErrConfigInvalid, "failed to unmarshal configuration")
	}

	// validate eagerly so a bad timeout is a Fatal config error, not a
	// surprise mid-run
	if _, err := d.OperationTimeout(); err != nil {
		return Defaults{}, err
	}

	return d, nil
}
