// Package status renders a terminal progress bar for long-running
// core computations and implements the S2-style polynomial skew that
// converts "segments processed" into a more representative completion
// percentage, since special-leaf work is far from uniformly
// distributed across segments. Adapted from the teacher's
// internal/progress.ProgressBar.
package status

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// Tracker accumulates a monotonically increasing completed count
// against a total, mirroring the teacher's prime.ProgressTracker but
// denominated in special-leaf work units rather than sieve segments.
type Tracker struct {
	total     int64
	completed int64
}

// NewTracker returns a Tracker for the given total unit of work.
func NewTracker(total int64) *Tracker {
	return &Tracker{total: total}
}

// Add records delta additional completed work units.
func (t *Tracker) Add(delta int64) {
	atomic.AddInt64(&t.completed, delta)
}

// Completed returns the work units completed so far.
func (t *Tracker) Completed() int64 {
	return atomic.LoadInt64(&t.completed)
}

// Percent returns the raw linear completion percentage (0-100).
func (t *Tracker) Percent() int {
	if t.total == 0 {
		return 100
	}
	return int(float64(t.Completed()) / float64(t.total) * 100)
}

// SkewedPercent returns the completion percentage after applying a
// fourth-order polynomial skew: special-leaf work on the hard region
// (small low, large segment count) dominates wall-clock time, so a
// naive linear "segments done / segments total" bar crawls through
// the expensive early segments. Mapping the linear fraction l to
// 1-(1-l)^4 bows the curve upward early on (the skewed value is never
// below the linear one, and both meet at 0% and 100%), which makes
// the displayed progress track actual wall-clock time more closely.
func (t *Tracker) SkewedPercent() int {
	linear := float64(t.Completed()) / float64(maxInt64(t.total, 1))
	if linear > 1 {
		linear = 1
	}
	skewed := 1 - (1-linear)*(1-linear)*(1-linear)*(1-linear)
	return int(skewed * 100)
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// Bar renders a terminal progress bar to stderr, throttled so it
// updates at most a fixed number of times per second regardless of
// how often Update is called (segment workers can call it thousands
// of times a second on large computations).
type Bar struct {
	tracker     *Tracker
	width       int
	startTime   time.Time
	description string
	skewed      bool

	mu         sync.Mutex
	lastRender time.Time
	minPeriod  time.Duration
}

// NewBar returns a Bar over total work units. When skewed is true,
// the displayed percentage uses Tracker.SkewedPercent instead of the
// linear Percent.
func NewBar(total int64, description string, skewed bool) *Bar {
	return &Bar{
		tracker:     NewTracker(total),
		width:       40,
		description: description,
		startTime:   time.Now(),
		skewed:      skewed,
		minPeriod:   100 * time.Millisecond,
	}
}

// Update adds delta completed work units and re-renders if the
// throttle period has elapsed.
func (b *Bar) Update(delta int64) {
	b.tracker.Add(delta)
	b.mu.Lock()
	defer b.mu.Unlock()
	if time.Since(b.lastRender) < b.minPeriod {
		return
	}
	b.render()
	b.lastRender = time.Now()
}

// Finish forces a final render at 100% and emits a trailing newline.
func (b *Bar) Finish() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tracker.completed = b.tracker.total
	b.render()
	fmt.Fprintln(os.Stderr)
}

func (b *Bar) render() {
	percent := b.tracker.Percent()
	if b.skewed {
		percent = b.tracker.SkewedPercent()
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * b.width / 100

	elapsed := time.Since(b.startTime)
	completed := b.tracker.Completed()
	rate := float64(completed) / elapsed.Seconds()

	fmt.Fprintf(os.Stderr, "\r%s: [%s%s] %3d%% | %s",
		b.description,
		strings.Repeat("=", filled),
		strings.Repeat(" ", b.width-filled),
		percent,
		formatRate(rate))
}

func formatRate(rate float64) string {
	switch {
	case rate >= 1_000_000:
		return fmt.Sprintf("%.1fM/s", rate/1_000_000)
	case rate >= 1_000:
		return fmt.Sprintf("%.1fK/s", rate/1_000)
	default:
		return fmt.Sprintf("%.0f/s", rate)
	}
}

// FormatNumber renders n with a K/M/B suffix, used by the CLI summary
// line.
func FormatNumber(n int64) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%.2fB", float64(n)/1_000_000_000)
	case n >= 1_000_000:
		return fmt.Sprintf("%.2fM", float64(n)/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%.2fK", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}
