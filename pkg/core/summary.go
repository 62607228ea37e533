package core

import (
	"fmt"

	"github.com/costaindustries-source/mac-cleaner/pkg/report"
	"github.com/costaindustries-source/mac-cleaner/pkg/space"
	"github.com/costaindustries-source/mac-cleaner/pkg/style"
	"github.com/costaindustries-source/mac-cleaner/pkg/types"
	"github.com/pterm/pterm"
)

// printSummary writes the end-of-run console summary. The rendered
// reports carry the full narrative; this is the one-screen version.
func (o *Orchestrator) printSummary(r *types.RunReport, arts report.Artifacts) {
	t := r.Totals()

	fmt.Fprintln(o.Out)
	fmt.Fprintln(o.Out, style.TitleStyle.Render("Maintenance run complete"))

	fmt.Fprintf(o.Out, "%s %d completed   %s %d skipped   %s %d failed\n",
		style.SuccessIndicator, t.Completed,
		style.SkippedIndicator, t.Skipped,
		style.ErrorIndicator, t.Failed)

	if t.Warnings > 0 {
		fmt.Fprintf(o.Out, "%s %d warning(s) recorded, see the report\n", style.WarningIndicator, t.Warnings)
	}

	fmt.Fprintf(o.Out, "\nSpace reclaimed: %s\n", style.Bold(space.HumanKB(t.SpaceFreedKB)))
	fmt.Fprintf(o.Out, "Run time: %s\n\n", r.Duration().Round(1e9))

	data := pterm.TableData{
		{"Artifact", "Path"},
		{"Markdown report", arts.Markdown},
		{"HTML report", arts.HTML},
	}
	if rendered, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender(); err == nil {
		fmt.Fprintln(o.Out, rendered)
	}
}
