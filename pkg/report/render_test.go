package report

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/costaindustries-source/mac-cleaner/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdownAndHTMLTotalsAgree(t *testing.T) {
	r := sampleReport()
	totals := r.Totals()

	md := RenderMarkdown(r)
	html, err := RenderHTML(r)
	require.NoError(t, err)

	// the Markdown totals row: | ops | completed | skipped | failed | warnings | errors | space |
	mdRow := regexp.MustCompile(`\| (\d+) \| (\d+) \| (\d+) \| (\d+) \| (\d+) \| (\d+) \|`).FindStringSubmatch(md)
	require.NotNil(t, mdRow, "markdown totals row not found")

	// the HTML totals row cells in the same order
	htmlRow := regexp.MustCompile(`<tr><td>(\d+)</td><td>(\d+)</td><td>(\d+)</td><td>(\d+)</td><td>(\d+)</td><td>(\d+)</td>`).FindStringSubmatch(html)
	require.NotNil(t, htmlRow, "html totals row not found")

	want := []string{
		fmt.Sprint(totals.Operations),
		fmt.Sprint(totals.Completed),
		fmt.Sprint(totals.Skipped),
		fmt.Sprint(totals.Failed),
		fmt.Sprint(totals.Warnings),
		fmt.Sprint(totals.Errors),
	}
	assert.Equal(t, want, mdRow[1:])
	assert.Equal(t, want, htmlRow[1:])
}

func TestRenderersShareNarrative(t *testing.T) {
	r := sampleReport()

	md := RenderMarkdown(r)
	html, err := RenderHTML(r)
	require.NoError(t, err)

	// every operation id, warning, and error appears in both formats
	for _, o := range r.Outcomes {
		assert.Contains(t, md, o.OperationID)
		assert.Contains(t, html, o.OperationID)
		for _, w := range o.Warnings {
			assert.Contains(t, md, w)
			assert.Contains(t, html, w)
		}
		for _, e := range o.Errors {
			assert.Contains(t, md, e)
			assert.Contains(t, html, e)
		}
	}

	// categories appear in execution order in both
	lastIdx := -1
	for _, cat := range categories(r) {
		idx := strings.Index(md, "### "+cat)
		require.GreaterOrEqual(t, idx, 0)
		assert.Greater(t, idx, lastIdx)
		lastIdx = idx
		assert.Contains(t, html, "<h3>"+cat+"</h3>")
	}
}

func TestRenderMarkdownIsPure(t *testing.T) {
	r := sampleReport()
	assert.Equal(t, RenderMarkdown(r), RenderMarkdown(r))
}

func TestWriteSharesRunStamp(t *testing.T) {
	dir := t.TempDir()
	stamp := paths.NewRunStamp(time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC))

	arts, err := Write(sampleReport(), dir, stamp)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "maintenance-20240307-120000.md"), arts.Markdown)
	assert.Equal(t, filepath.Join(dir, "maintenance-20240307-120000.html"), arts.HTML)
	assert.FileExists(t, arts.Markdown)
	assert.FileExists(t, arts.HTML)
}

func TestReadSystemVersion(t *testing.T) {
	plist := `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>ProductBuildVersion</key>
	<string>23D56</string>
	<key>ProductName</key>
	<string>macOS</string>
	<key>ProductVersion</key>
	<string>14.3</string>
</dict>
</plist>
`
	path := filepath.Join(t.TempDir(), "SystemVersion.plist")
	require.NoError(t, os.WriteFile(path, []byte(plist), 0o644))

	version, build, err := readSystemVersion(path)
	require.NoError(t, err)
	assert.Equal(t, "14.3", version)
	assert.Equal(t, "23D56", build)
}
