// Package generate builds the prime vector P (the data model's "P"):
// all primes up to some bound n, via plain, segmented and parallel
// segmented sieves of Eratosthenes. Adapted from the teacher's
// prime.SieveOfEratosthenes/SegmentedSieve/ParallelSegmentedSieve,
// retargeted to int64 (the core works with x up to ~10^31 via i128,
// but the prime vector itself only ever needs primes up to sqrt(x) or
// x^(2/3), which fits comfortably in int64) and to
// golang.org/x/sync/errgroup for the parallel worker pool instead of
// a hand-rolled channel/WaitGroup pair.
package generate

import (
	"bytes"
	"context"
	"math"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultSegmentSize = 1_000_000
	ParallelThreshold  = 100_000_000
)

// ProgressFunc is called with the number of segments completed since
// the previous call.
type ProgressFunc func(segmentsDone int)

// Primes returns every prime < n via a plain sieve of Eratosthenes.
func Primes(n int64) []int64 {
	if n <= 2 {
		return nil
	}
	sieve := append([]byte{0, 0}, bytes.Repeat([]byte{1}, int(n)-2)...)

	limit := int64(math.Sqrt(float64(n)))
	for i := int64(2); i <= limit; i++ {
		if sieve[i] == 1 {
			for j := i * i; j < n; j += i {
				sieve[j] = 0
			}
		}
	}

	primes := make([]int64, 0, estimateCount(n))
	for i := int64(2); i < n; i++ {
		if sieve[i] == 1 {
			primes = append(primes, i)
		}
	}
	return primes
}

func estimateCount(n int64) int64 {
	if n < 3 {
		return 1
	}
	return n / int64(math.Log(float64(n)))
}

// SegmentedPrimes returns every prime < n using a segmented sieve,
// holding only O(segmentSize + sqrt(n)) memory at a time.
func SegmentedPrimes(n, segmentSize int64, progress ProgressFunc) []int64 {
	if n <= 2 {
		return nil
	}
	if segmentSize <= 0 {
		segmentSize = DefaultSegmentSize
	}

	basePrimes := Primes(int64(math.Sqrt(float64(n))) + 1)
	segments := (n + segmentSize - 1) / segmentSize
	primes := make([]int64, 0, estimateCount(n))
	isPrime := make([]byte, segmentSize)

	for segIdx := int64(0); segIdx < segments; segIdx++ {
		low := segIdx * segmentSize
		high := low + segmentSize
		if high > n {
			high = n
		}
		if high <= 2 {
			continue
		}

		segmentLow := low
		if segmentLow < 2 {
			segmentLow = 2
		}
		segLen := high - segmentLow
		copy(isPrime[:segLen], bytes.Repeat([]byte{1}, int(segLen)))

		for _, p := range basePrimes {
			start := ((low + p - 1) / p) * p
			if start < p*p {
				start = p * p
			}
			adjusted := start - segmentLow
			if adjusted >= segLen {
				continue
			}
			for j := adjusted; j < segLen; j += p {
				isPrime[j] = 0
			}
		}

		for i := int64(0); i < segLen; i++ {
			if isPrime[i] == 1 {
				primes = append(primes, segmentLow+i)
			}
		}
		if progress != nil {
			progress(1)
		}
	}
	return primes
}

type segmentWork struct {
	segIdx     int64
	low        int64
	segmentLow int64
	segLen     int64
}

type segmentResult struct {
	segIdx int64
	primes []int64
}

// ParallelSegmentedPrimes is SegmentedPrimes fanned out across
// workers goroutines via an errgroup, each pulling segment work items
// off a shared channel and returning its slice of primes through a
// results channel, reassembled in segment order.
func ParallelSegmentedPrimes(n int64, workers int, segmentSize int64, progress ProgressFunc) []int64 {
	if n <= 2 {
		return nil
	}
	if segmentSize <= 0 {
		segmentSize = DefaultSegmentSize
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	basePrimes := Primes(int64(math.Sqrt(float64(n))) + 1)
	segments := (n + segmentSize - 1) / segmentSize
	if int64(workers) > segments {
		workers = int(segments)
	}
	if workers < 1 {
		workers = 1
	}

	work := make(chan segmentWork, segments)
	results := make(chan segmentResult, segments)
	bufPool := &sync.Pool{
		New: func() interface{} { return make([]byte, 0, segmentSize) },
	}

	g, ctx := errgroup.WithContext(context.Background())
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case item, ok := <-work:
					if !ok {
						return nil
					}
					results <- sieveSegment(item, basePrimes, bufPool)
				}
			}
		})
	}

	go func() {
		for segIdx := int64(0); segIdx < segments; segIdx++ {
			low := segIdx * segmentSize
			high := low + segmentSize
			if high > n {
				high = n
			}
			if high <= 2 {
				results <- segmentResult{segIdx: segIdx}
				continue
			}
			segmentLow := low
			if segmentLow < 2 {
				segmentLow = 2
			}
			work <- segmentWork{segIdx: segIdx, low: low, segmentLow: segmentLow, segLen: high - segmentLow}
		}
		close(work)
	}()

	ordered := make([][]int64, segments)
	received := int64(0)
	for received < segments {
		r := <-results
		ordered[r.segIdx] = r.primes
		received++
		if progress != nil {
			progress(1)
		}
	}
	_ = g.Wait() // workers never return an error; context is never canceled here

	total := int64(0)
	for _, r := range ordered {
		total += int64(len(r))
	}
	all := make([]int64, 0, total)
	for _, r := range ordered {
		all = append(all, r...)
	}
	return all
}

func sieveSegment(w segmentWork, basePrimes []int64, pool *sync.Pool) segmentResult {
	var isPrime []byte
	if buf := pool.Get(); buf != nil {
		isPrime = buf.([]byte)
		if int64(cap(isPrime)) < w.segLen {
			isPrime = make([]byte, w.segLen)
		} else {
			isPrime = isPrime[:w.segLen]
		}
	} else {
		isPrime = make([]byte, w.segLen)
	}
	copy(isPrime, bytes.Repeat([]byte{1}, int(w.segLen)))

	for _, p := range basePrimes {
		start := ((w.low + p - 1) / p) * p
		if start < p*p {
			start = p * p
		}
		adjusted := start - w.segmentLow
		if adjusted >= w.segLen {
			continue
		}
		for j := adjusted; j < w.segLen; j += p {
			isPrime[j] = 0
		}
	}

	primes := make([]int64, 0, w.segLen/10)
	for i := int64(0); i < w.segLen; i++ {
		if isPrime[i] == 1 {
			primes = append(primes, w.segmentLow+i)
		}
	}
	pool.Put(isPrime)
	return segmentResult{segIdx: w.segIdx, primes: primes}
}

// GeneratePrimes picks plain, segmented or parallel-segmented
// sieving depending on n, mirroring the teacher's dispatch policy.
func GeneratePrimes(n int64, parallel bool, progress ProgressFunc) []int64 {
	if n <= 2 {
		return nil
	}
	if parallel && n >= ParallelThreshold {
		return ParallelSegmentedPrimes(n, 0, DefaultSegmentSize, progress)
	}
	if n >= DefaultSegmentSize {
		return SegmentedPrimes(n, DefaultSegmentSize, progress)
	}
	return Primes(n)
}

// Indexed1 returns the 1-indexed prime vector (primes[0] unused,
// primes[1] == 2, ...) the core's combinatorial formulas expect.
func Indexed1(primes []int64) []int64 {
	out := make([]int64, len(primes)+1)
	copy(out[1:], primes)
	return out
}

// sortedCopy returns a sorted copy of primes, leaving the input slice
// unchanged.
func sortedCopy(primes []int64) []int64 {
	out := make([]int64, len(primes))
	copy(out, primes)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
