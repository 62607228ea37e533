package report

import (
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/costaindustries-source/mac-cleaner/pkg/errors"
	"github.com/costaindustries-source/mac-cleaner/pkg/logging"
	"github.com/costaindustries-source/mac-cleaner/pkg/paths"
	"github.com/costaindustries-source/mac-cleaner/pkg/types"
)

// Artifacts are the file paths one run produced.
type Artifacts struct {
	Markdown string
	HTML     string
}

// Write renders both formats and writes them next to the run log, sharing
// its timestamp. Rendering is pure; only this function touches the disk.
func Write(r *types.RunReport, dir string, stamp paths.RunStamp) (Artifacts, error) {
	logger := logging.GetLogger("report")

	md := RenderMarkdown(r)
	html, err := RenderHTML(r)
	if err != nil {
		return Artifacts{}, err
	}

	arts := Artifacts{
		Markdown: paths.MarkdownReport(dir, stamp),
		HTML:     paths.HTMLReport(dir, stamp),
	}

	if err := os.WriteFile(arts.Markdown, []byte(md), 0o644); err != nil {
		return Artifacts{}, errors.Wrapf(err, errors.ErrReportWrite, "cannot write %s", arts.Markdown)
	}
	if err := os.WriteFile(arts.HTML, []byte(html), 0o644); err != nil {
		return Artifacts{}, errors.Wrapf(err, errors.ErrReportWrite, "cannot write %s", arts.HTML)
	}

	logger.Info().Str("markdown", arts.Markdown).Str("html", arts.HTML).Msg("Report artifacts written")
	return arts, nil
}

// Preview renders the Markdown artifact to the terminal with glamour.
// Used by --preview after the artifacts are written.
func Preview(markdownPath string) (string, error) {
	data, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrReportWrite, "cannot read %s", markdownPath)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "cannot build terminal renderer")
	}

	out, err := renderer.Render(string(data))
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "cannot render report preview")
	}
	return out, nil
}
