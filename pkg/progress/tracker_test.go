package progress

import (
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// pinned builds a tracker whose clock the test controls.
func pinned(out io.Writer) (*Tracker, *time.Time) {
	t := NewTracker(out)
	now := time.Date(2024, 3, 7, 12, 0, 0, 0, time.UTC)
	t.now = func() time.Time { return now }
	return t, &now
}

func TestETAZeroWhenNoElapsed(t *testing.T) {
	tr, _ := pinned(io.Discard)
	tr.Begin(20)
	tr.current = 5

	// elapsed is exactly zero: the projection must not divide
	assert.Equal(t, time.Duration(0), tr.ETA())
}

func TestETAZeroWhenNoProgress(t *testing.T) {
	tr, now := pinned(io.Discard)
	tr.Begin(20)
	*now = now.Add(10 * time.Second)

	assert.Equal(t, time.Duration(0), tr.ETA())
}

func TestETAProjection(t *testing.T) {
	tr, now := pinned(io.Discard)
	tr.Begin(20)
	tr.current = 5
	*now = now.Add(10 * time.Second)

	// 5 steps in 10s -> 0.5 steps/s -> 15 remaining -> 30s
	assert.Equal(t, 30*time.Second, tr.ETA())
}

func TestAdvanceNeverPanics(t *testing.T) {
	tr := NewTracker(io.Discard)

	// Scenario: total=20, current=5, elapsed=0 must not crash
	tr.Begin(20)
	for i := 0; i < 5; i++ {
		tr.Advance("step")
	}
	assert.Equal(t, 25, tr.Percent())

	// zero total renders nothing and never divides
	tr.Begin(0)
	tr.Advance("ignored")
	assert.Equal(t, 0, tr.Percent())
}

func TestAdvanceClampsAtTotal(t *testing.T) {
	tr := NewTracker(io.Discard)
	tr.Begin(2)
	tr.Advance("one")
	tr.Advance("two")
	tr.Advance("overshoot")

	assert.Equal(t, 100, tr.Percent())
}

func TestAdvanceRendersPercentAndLabel(t *testing.T) {
	var out bytes.Buffer
	tr := NewTracker(&out)
	tr.Begin(4)
	tr.Advance("user caches")

	assert.Contains(t, out.String(), "25%")
	assert.Contains(t, out.String(), "(1/4)")
	assert.Contains(t, out.String(), "user caches")
}
