package report

import (
	"html/template"
	"strings"

	"github.com/costaindustries-source/mac-cleaner/pkg/errors"
	"github.com/costaindustries-source/mac-cleaner/pkg/space"
	"github.com/costaindustries-source/mac-cleaner/pkg/types"
)

// htmlPage presents the same facts as the Markdown renderer under HTML
// markup. The totals row and the per-category narrative come from the
// same Totals()/categories() helpers, so the two formats cannot diverge.
const htmlPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Maintenance Report {{.Report.RunID}}</title>
<style>
body { font-family: -apple-system, Helvetica, sans-serif; margin: 2rem auto; max-width: 56rem; color: #212529; }
table { border-collapse: collapse; }
th, td { border: 1px solid #dee2e6; padding: 0.4rem 0.8rem; text-align: left; }
.completed { color: #28a745; }
.skipped { color: #6c757d; }
.failed { color: #dc3545; }
.warning { color: #b8860b; }
.error { color: #dc3545; }
</style>
</head>
<body>
<h1>Maintenance Report</h1>
<p>Run <code>{{.Report.RunID}}</code> on {{.Report.Env.Hostname}}</p>
<ul>
{{- if .Report.Env.ProductVersion}}
<li>macOS {{.Report.Env.ProductVersion}} (build {{.Report.Env.BuildVersion}}), kernel {{.Report.Env.KernelVersion}}</li>
{{- end}}
<li>Started {{.Started}}, finished {{.Finished}} ({{.Duration}})</li>
</ul>
<h2>Totals</h2>
<table>
<tr><th>Operations</th><th>Completed</th><th>Skipped</th><th>Failed</th><th>Warnings</th><th>Errors</th><th>Space freed</th></tr>
<tr><td>{{.Totals.Operations}}</td><td>{{.Totals.Completed}}</td><td>{{.Totals.Skipped}}</td><td>{{.Totals.Failed}}</td><td>{{.Totals.Warnings}}</td><td>{{.Totals.Errors}}</td><td>{{.SpaceFreed}}</td></tr>
</table>
<h2>Disk</h2>
<ul>
<li>Free before: {{.FreeBefore}}</li>
<li>Free after: {{.FreeAfter}}</li>
</ul>
<h2>Operations</h2>
{{- range .Categories}}
<h3>{{.Name}}</h3>
<ul>
{{- range .Outcomes}}
<li><strong>{{.ID}}</strong> [{{.Risk}}] &mdash; <span class="{{.Status}}">{{.Status}}</span>{{if .Freed}}, freed {{.Freed}}{{end}}
{{- if or .Warnings .Errors}}
<ul>
{{- range .Warnings}}
<li class="warning">warning: {{.}}</li>
{{- end}}
{{- range .Errors}}
<li class="error">error: {{.}}</li>
{{- end}}
</ul>
{{- end}}
</li>
{{- end}}
</ul>
{{- end}}
</body>
</html>
`

var htmlTemplate = template.Must(template.New("report").Parse(htmlPage))

type htmlOutcome struct {
	ID       string
	Risk     string
	Status   string
	Freed    string
	Warnings []string
	Errors   []string
}

type htmlCategory struct {
	Name     string
	Outcomes []htmlOutcome
}

type htmlData struct {
	Report     *types.RunReport
	Totals     types.RunTotals
	Started    string
	Finished   string
	Duration   string
	SpaceFreed string
	FreeBefore string
	FreeAfter  string
	Categories []htmlCategory
}

// RenderHTML renders the report as a standalone HTML page presenting the
// same factual content as RenderMarkdown.
func RenderHTML(r *types.RunReport) (string, error) {
	t := r.Totals()
	data := htmlData{
		Report:     r,
		Totals:     t,
		Started:    r.StartedAt.Format("2006-01-02 15:04:05"),
		Finished:   r.FinishedAt.Format("2006-01-02 15:04:05"),
		Duration:   r.Duration().Round(1e9).String(),
		SpaceFreed: space.HumanKB(t.SpaceFreedKB),
		FreeBefore: space.HumanKB(r.Env.DiskBefore.FreeKB),
		FreeAfter:  space.HumanKB(r.Env.DiskAfter.FreeKB),
	}

	for _, cat := range categories(r) {
		hc := htmlCategory{Name: cat}
		for _, o := range outcomesIn(r, cat) {
			ho := htmlOutcome{
				ID:       o.OperationID,
				Risk:     strings.ToUpper(string(o.Risk)),
				Status:   statusWord(o.Status),
				Warnings: o.Warnings,
				Errors:   o.Errors,
			}
			if o.SpaceFreedKB > 0 {
				ho.Freed = space.HumanKB(o.SpaceFreedKB)
			}
			hc.Outcomes = append(hc.Outcomes, ho)
		}
		data.Categories = append(data.Categories, hc)
	}

	var b strings.Builder
	if err := htmlTemplate.Execute(&b, data); err != nil {
		return "", errors.Wrap(err, errors.ErrReportWrite, "html template execution failed")
	}
	return b.String(), nil
}
