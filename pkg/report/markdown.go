package report

import (
	"fmt"
	"strings"

	"github.com/costaindustries-source/mac-cleaner/pkg/space"
	"github.com/costaindustries-source/mac-cleaner/pkg/types"
)

// categories returns the distinct outcome categories in first-seen order,
// which matches execution order. Both renderers iterate this way so the
// two artifacts tell the same story in the same sequence.
func categories(r *types.RunReport) []string {
	var order []string
	seen := make(map[string]bool)
	for _, o := range r.Outcomes {
		if !seen[o.Category] {
			seen[o.Category] = true
			order = append(order, o.Category)
		}
	}
	return order
}

func outcomesIn(r *types.RunReport, category string) []types.OperationOutcome {
	var out []types.OperationOutcome
	for _, o := range r.Outcomes {
		if o.Category == category {
			out = append(out, o)
		}
	}
	return out
}

func statusWord(s types.OutcomeStatus) string {
	switch s {
	case types.StatusCompleted:
		return "completed"
	case types.StatusSkipped:
		return "skipped"
	case types.StatusFailed:
		return "failed"
	}
	return string(s)
}

// RenderMarkdown renders the report as a Markdown document. It is a pure
// function of the finalized report.
func RenderMarkdown(r *types.RunReport) string {
	var b strings.Builder
	t := r.Totals()

	fmt.Fprintf(&b, "# Maintenance Report\n\n")
	fmt.Fprintf(&b, "Run `%s` on %s\n\n", r.RunID, r.Env.Hostname)
	if r.Env.ProductVersion != "" {
		fmt.Fprintf(&b, "- macOS %s (build %s), kernel %s\n", r.Env.ProductVersion, r.Env.BuildVersion, r.Env.KernelVersion)
	}
	fmt.Fprintf(&b, "- Started %s, finished %s (%s)\n\n",
		r.StartedAt.Format("2006-01-02 15:04:05"),
		r.FinishedAt.Format("2006-01-02 15:04:05"),
		r.Duration().Round(1e9))

	fmt.Fprintf(&b, "## Totals\n\n")
	fmt.Fprintf(&b, "| Operations | Completed | Skipped | Failed | Warnings | Errors | Space freed |\n")
	fmt.Fprintf(&b, "|---|---|---|---|---|---|---|\n")
	fmt.Fprintf(&b, "| %d | %d | %d | %d | %d | %d | %s |\n\n",
		t.Operations, t.Completed, t.Skipped, t.Failed, t.Warnings, t.Errors, space.HumanKB(t.SpaceFreedKB))

	fmt.Fprintf(&b, "## Disk\n\n")
	fmt.Fprintf(&b, "- Free before: %s\n", space.HumanKB(r.Env.DiskBefore.FreeKB))
	fmt.Fprintf(&b, "- Free after: %s\n\n", space.HumanKB(r.Env.DiskAfter.FreeKB))

	fmt.Fprintf(&b, "## Operations\n\n")
	for _, cat := range categories(r) {
		fmt.Fprintf(&b, "### %s\n\n", cat)
		for _, o := range outcomesIn(r, cat) {
			fmt.Fprintf(&b, "- **%s** [%s] — %s", o.OperationID, strings.ToUpper(string(o.Risk)), statusWord(o.Status))
			if o.SpaceFreedKB > 0 {
				fmt.Fprintf(&b, ", freed %s", space.HumanKB(o.SpaceFreedKB))
			}
			fmt.Fprintf(&b, "\n")
			for _, w := range o.Warnings {
				fmt.Fprintf(&b, "  - warning: %s\n", w)
			}
			for _, e := range o.Errors {
				fmt.Fprintf(&b, "  - error: %s\n", e)
			}
		}
		fmt.Fprintf(&b, "\n")
	}

	return b.String()
}
