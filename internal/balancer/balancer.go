// Package balancer implements the adaptive load balancer (C9): it
// hands out (low, segment_size, segments) work units from a shared
// range to a pool of worker goroutines, then -- once a worker reports
// back how long its unit actually took -- grows or shrinks the next
// unit's size so each worker's per-unit wall time tracks a target,
// rather than growing unconditionally. There is no work stealing: a
// worker that finishes early simply requests the next unit. Grounded
// on include/LoadBalancer.hpp's ThreadData/get_work contract and the
// timing-feedback rules in the spec's load-balancer section (grow
// toward max_size when a unit finishes faster than target and the
// remaining range still fits; double/halve segments when measured
// secs strays more than 2x from target; raise segments when
// init_secs/secs exceeds 0.1).
package balancer

import "sync"

// ThreadData is the state the balancer hands back to a worker along
// with each work unit: which segment to process, how many consecutive
// segments of that size to walk, and how much low-end progress has
// been made so far.
type ThreadData struct {
	ThreadID    int
	Low         int64
	SegmentSize int64
	Segments    int64
	Size        int64 // SegmentSize * Segments, the unit's total width
}

// Balancer distributes the half-open range [Low, High) across workers
// in units whose size and segment count adapt to measured timing.
type Balancer struct {
	mu sync.Mutex

	next int64
	high int64

	minSize int64
	maxSize int64
	curSize int64

	segments    int64
	maxSegments int64

	targetSecs float64

	unitsOut int64
}

// DefaultTargetSecs is the per-unit wall-time target ReportResult's
// timing feedback aims for when the caller doesn't know a better
// estimate (e.g. from remaining_secs/threads).
const DefaultTargetSecs = 0.1

// New returns a Balancer over [low, high), starting with minSize
// segments (one per unit) and adapting both segment size and segment
// count as ReportResult feedback arrives.
func New(low, high, minSize, maxSize int64) *Balancer {
	if minSize <= 0 {
		minSize = 1
	}
	if maxSize < minSize {
		maxSize = minSize
	}
	return &Balancer{
		next: low, high: high,
		minSize: minSize, maxSize: maxSize, curSize: minSize,
		segments: 1, maxSegments: 1 << 12,
		targetSecs: DefaultTargetSecs,
	}
}

// SetTargetSecs overrides the per-unit wall-time target (the spec's
// min(remaining_secs/threads, a configured ceiling)); callers with a
// remaining-work estimate should call this before each GetWork.
func (b *Balancer) SetTargetSecs(secs float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if secs > 0 {
		b.targetSecs = secs
	}
}

// GetWork returns the next work unit for threadID, and ok=false once
// the range is exhausted. This is the balancer's entire per-call
// critical section: O(1), independent of chunk size. Unlike a plain
// doubling scheme, the unit size handed out here only changes between
// calls via ReportResult's timing feedback, never unconditionally.
func (b *Balancer) GetWork(threadID int) (ThreadData, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.next >= b.high {
		return ThreadData{}, false
	}

	size := b.curSize * b.segments
	if b.next+size > b.high {
		size = b.high - b.next
	}

	td := ThreadData{
		ThreadID:    threadID,
		Low:         b.next,
		SegmentSize: b.curSize,
		Segments:    b.segments,
		Size:        size,
	}
	b.next += size
	b.unitsOut++
	return td, true
}

// ReportResult feeds back a completed unit's measured timings so the
// next GetWork call can adapt segment_size and segments:
//
//   - grow segment_size toward maxSize when the unit finished faster
//     than target and the remaining range can still absorb a bigger
//     chunk; never exceed maxSize.
//   - halve segments if secs exceeds 2x target, double it if secs is
//     under half of target, otherwise hold.
//   - if initSecs/secs exceeds 0.1 (init work dominating the loop),
//     raise segments so fixed per-call overhead amortizes better.
func (b *Balancer) ReportResult(initSecs, secs float64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if secs <= 0 {
		return
	}

	if secs < b.targetSecs && b.next < b.high && b.curSize < b.maxSize {
		grown := b.curSize * 2
		if grown > b.maxSize {
			grown = b.maxSize
		}
		b.curSize = grown
	}

	switch {
	case secs > 2*b.targetSecs:
		if b.segments > 1 {
			b.segments /= 2
		}
	case secs < 0.5*b.targetSecs:
		if b.segments < b.maxSegments {
			b.segments *= 2
		}
	}

	if initSecs/secs > 0.1 && b.segments < b.maxSegments {
		b.segments *= 2
	}
}

// Done reports whether the whole range has been handed out.
func (b *Balancer) Done() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.next >= b.high
}
