package main

import (
	"fmt"
	"os"
	"time"

	"github.com/costaindustries-source/mac-cleaner/internal/version"
	"github.com/costaindustries-source/mac-cleaner/pkg/config"
	"github.com/costaindustries-source/mac-cleaner/pkg/confirm"
	"github.com/costaindustries-source/mac-cleaner/pkg/core"
	"github.com/costaindustries-source/mac-cleaner/pkg/errors"
	"github.com/costaindustries-source/mac-cleaner/pkg/logging"
	"github.com/costaindustries-source/mac-cleaner/pkg/ops"
	"github.com/costaindustries-source/mac-cleaner/pkg/paths"
	"github.com/costaindustries-source/mac-cleaner/pkg/registry"
	"github.com/costaindustries-source/mac-cleaner/pkg/style"
	"github.com/costaindustries-source/mac-cleaner/pkg/types"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	verbosity    int
	autoConfirm  bool
	singleOp     string
	onlyRisk     string
	skipIDs      []string
	listOps      bool
	noColor      bool
	dryRun       bool
	policyFile   string
	reportDir    string
	minFreeGB    int
	opTimeout    time.Duration
	previewAfter bool

	rootCmd = &cobra.Command{
		Use:   "mac-cleaner",
		Short: "Orchestrated macOS maintenance with confirmation, reporting, and safety rails",
		Long: `mac-cleaner runs a curated catalogue of macOS maintenance operations —
cache cleanup, database compaction, index rebuilds, network resets — one
at a time, each behind a risk-aware confirmation, with reclaimed space
accounting and a Markdown + HTML report of everything that happened.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runMaintenance,
	}
)

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", style.ErrorIndicator, err)
	}
	return err
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolVarP(&autoConfirm, "yes", "y", false, "Answer every confirmation prompt with yes")
	flags.CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v DEBUG, -vv TRACE)")
	flags.StringVar(&singleOp, "operation", "", "Run exactly one operation by id")
	flags.StringVar(&onlyRisk, "only-risk", "", "Run only operations of the given risk (low|medium|high)")
	flags.StringArrayVar(&skipIDs, "skip", nil, "Skip an operation by id (repeatable)")
	flags.BoolVar(&listOps, "list", false, "List the operation catalogue and exit")
	flags.BoolVar(&noColor, "no-color", false, "Disable ANSI colors")
	flags.BoolVar(&dryRun, "dry-run", false, "Preview without executing mutating steps")
	flags.StringVar(&policyFile, "policy", "", "YAML confirmation policy file")
	flags.StringVar(&reportDir, "report-dir", "", "Directory for the log and report artifacts")
	flags.IntVar(&minFreeGB, "min-free-gb", 0, "Preflight free-space threshold in GB")
	flags.DurationVar(&opTimeout, "timeout", 0, "Per-operation timeout (0 disables)")
	flags.BoolVar(&previewAfter, "preview", false, "Render the Markdown report to the terminal after the run")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func runMaintenance(cmd *cobra.Command, args []string) error {
	if listOps {
		printCatalogue(cmd)
		return nil
	}

	defaults, err := config.Load()
	if err != nil {
		return err
	}

	cfg, err := buildRunConfiguration(cmd, defaults)
	if err != nil {
		return err
	}

	if !cfg.ColorEnabled {
		style.DisableColors()
	}

	stamp := paths.NewRunStamp(time.Now())
	dir := cfg.ReportDir
	if dir == "" {
		if dir, err = paths.StateDir(); err != nil {
			return err
		}
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, errors.ErrConfigInvalid, "cannot create report directory %s", dir)
	}

	logging.Setup(logging.Options{
		Verbosity: cfg.Verbosity,
		LogFile:   paths.LogFile(dir, stamp),
		NoColor:   !cfg.ColorEnabled,
	})
	log.Debug().Str("version", version.Version).Msg("mac-cleaner starting")

	if err := ops.LoadTuning(); err != nil {
		return err
	}

	gate, err := selectGate(cfg)
	if err != nil {
		return err
	}

	orch := core.New(cfg, registry.Default(), gate, ops.NewRunner(), cmd.OutOrStdout(), dir, stamp)
	_, err = orch.Run(cmd.Context())
	return err
}

// buildRunConfiguration layers CLI flags over the file/env defaults.
// A flag only overrides when the user actually set it.
func buildRunConfiguration(cmd *cobra.Command, d config.Defaults) (types.RunConfiguration, error) {
	timeout, err := d.OperationTimeout()
	if err != nil {
		return types.RunConfiguration{}, err
	}

	cfg := types.RunConfiguration{
		Verbosity:        verbosity,
		AutoConfirm:      d.AutoConfirm,
		SingleOperation:  singleOp,
		SkipSet:          make(map[string]bool),
		DryRun:           dryRun,
		MinFreeGB:        d.MinFreeGB,
		ReportDir:        d.ReportDir,
		PolicyFile:       d.PolicyFile,
		OperationTimeout: timeout,
		Preview:          d.Preview,
	}

	for _, id := range skipIDs {
		cfg.SkipSet[id] = true
	}

	if cmd.Flags().Changed("yes") {
		cfg.AutoConfirm = autoConfirm
	}
	if cmd.Flags().Changed("report-dir") {
		cfg.ReportDir = reportDir
	}
	if cmd.Flags().Changed("policy") {
		cfg.PolicyFile = policyFile
	}
	if cmd.Flags().Changed("min-free-gb") {
		cfg.MinFreeGB = minFreeGB
	}
	if cmd.Flags().Changed("timeout") {
		cfg.OperationTimeout = opTimeout
	}
	if cmd.Flags().Changed("preview") {
		cfg.Preview = previewAfter
	}

	if onlyRisk != "" {
		risk, err := types.ParseRiskLevel(onlyRisk)
		if err != nil {
			return types.RunConfiguration{}, err
		}
		cfg.RiskFilter = &risk
	}

	cfg.ColorEnabled = style.ColorsEnabled(noColor || d.NoColor)
	return cfg, nil
}

// selectGate picks the confirmation strategy: policy file, then --yes,
// then the interactive console.
func selectGate(cfg types.RunConfiguration) (confirm.Gate, error) {
	if cfg.PolicyFile != "" {
		return confirm.LoadPolicyGate(cfg.PolicyFile)
	}
	if cfg.AutoConfirm {
		return confirm.NewAutoGate(), nil
	}
	return confirm.NewConsoleGate(os.Stdin, os.Stdout), nil
}

func printCatalogue(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, style.SubtitleStyle.Render("Available operations"))
	fmt.Fprintln(out)
	for _, d := range registry.Default().List() {
		privileged := ""
		if d.NeedsPrivileges {
			privileged = " (sudo)"
		}
		fmt.Fprintf(out, "  %-24s %s %-10s %s%s\n",
			style.Bold(d.ID), style.RiskBadge(d.Risk), d.Category, d.Description, privileged)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mac-cleaner version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration with values commented out",
	Long: `Print the default configuration TOML with every value commented out.
Save it as $XDG_CONFIG_HOME/mac-cleaner/config.toml and uncomment what
you want to change.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), config.GenerateConfigContent())
	},
}
