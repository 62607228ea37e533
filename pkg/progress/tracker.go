// Package progress renders bounded step progress with an ETA. Rendering
// is console-only and never touches the run report.
package progress

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/costaindustries-source/mac-cleaner/pkg/style"
)

const barWidth = 24

// Tracker tracks and renders progress through a fixed number of steps.
// Not safe for concurrent use; the run loop is single-threaded.
type Tracker struct {
	out     io.Writer
	total   int
	current int
	started time.Time

	// now is swapped in tests to pin elapsed time
	now func() time.Time
}

// NewTracker creates a tracker writing its bar to out.
func NewTracker(out io.Writer) *Tracker {
	return &Tracker{
		out: out,
		now: time.Now,
	}
}

// Begin resets the counter and anchors the start time for a phase of
// total steps. A zero or negative total renders nothing on Advance.
func (t *Tracker) Begin(total int) {
	t.total = total
	t.current = 0
	t.started = t.now()
}

// Advance completes one step and re-renders the bar with the label.
func (t *Tracker) Advance(label string) {
	if t.total <= 0 {
		return
	}
	if t.current < t.total {
		t.current++
	}

	percent := t.Percent()
	filled := barWidth * t.current / t.total
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	line := fmt.Sprintf("\r%s [%s] %3d%% (%d/%d)", style.ProgressIndicator, bar, percent, t.current, t.total)
	if eta := t.ETA(); eta > 0 {
		line += fmt.Sprintf(" eta %s", eta.Round(time.Second))
	}
	if label != "" {
		line += " " + style.MutedStyle.Render(label)
	}
	fmt.Fprint(t.out, line)

	if t.current == t.total {
		fmt.Fprintln(t.out)
	}
}

// Percent returns floor(100*current/total), clamped to [0,100].
func (t *Tracker) Percent() int {
	if t.total <= 0 {
		return 0
	}
	p := 100 * t.current / t.total
	if p > 100 {
		return 100
	}
	return p
}

// ETA estimates the remaining time from the observed rate. When nothing
// has advanced yet or no time has elapsed there is no rate to project, so
// the estimate is zero. This guard is mandatory: the projection divides
// by both elapsed and current.
func (t *Tracker) ETA() time.Duration {
	elapsed := t.now().Sub(t.started)
	if elapsed <= 0 || t.current <= 0 {
		return 0
	}
	rate := float64(t.current) / elapsed.Seconds()
	remaining := float64(t.total-t.current) / rate
	return time.Duration(remaining * float64(time.Second))
}
