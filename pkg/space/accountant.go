// Package space owns disk-space measurement and the run-wide tally of
// reclaimed kilobytes. Internal precision is kilobytes throughout;
// human-readable units appear only at render time.
package space

import (
	"fmt"
	"sync"
)

// Accountant accumulates reclaimed disk space across operations into a
// single monotonic counter.
type Accountant struct {
	mu      sync.Mutex
	totalKB int64
}

// NewAccountant creates an accountant starting at zero.
func NewAccountant() *Accountant {
	return &Accountant{}
}

// RecordFreed credits the delta between a before and after measurement.
// afterKB is 0 when the target no longer exists. A denied or partial
// deletion (after >= before) credits zero; the counter never decreases.
// Returns the delta actually credited.
func (a *Accountant) RecordFreed(beforeKB, afterKB int64) int64 {
	delta := beforeKB - afterKB
	if delta < 0 {
		delta = 0
	}

	a.mu.Lock()
	a.totalKB += delta
	a.mu.Unlock()

	return delta
}

// TotalKB returns the space reclaimed so far.
func (a *Accountant) TotalKB() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.totalKB
}

// HumanKB renders a kilobyte count for people: KB below 1MB, then MB,
// then GB with one decimal.
func HumanKB(kb int64) string {
	switch {
	case kb < 1024:
		return fmt.Sprintf("%d KB", kb)
	case kb < 1024*1024:
		return fmt.Sprintf("%.1f MB", float64(kb)/1024)
	default:
		return fmt.Sprintf("%.1f GB", float64(kb)/(1024*1024))
	}
}
