// Package fastdiv implements the fast divisor table (C2): precomputed
// reciprocals for primes[1..a] so that x/primes[i] can be computed with
// a multiply instead of a hardware integer divide whenever x fits in a
// uint64, falling back to full width division otherwise. This mirrors
// the contract of the original project's LibdividePrimes.hpp
// ("fast_div(x, i) == x / P[i] exactly").
//
// The reciprocal here is an approximate-multiply-then-correct scheme
// rather than libdivide's true branch-free algorithm: we precompute
// floor(2^64/d), estimate the quotient with one 64x64 multiply, and
// fix up the (at most off-by-a-couple) rounding error by comparing
// candidate quotients against x. This keeps the common case free of a
// hardware DIV while guaranteeing bit-exact results, which is the
// documented contract; the classic libdivide "magic number search" is
// a further constant-factor speedup this implementation intentionally
// forgoes (see DESIGN.md).
package fastdiv

import (
	"math/bits"

	"github.com/kimwalisch/primecount-go/internal/i128"
)

// Table holds precomputed reciprocals for a 1-indexed prime vector.
type Table struct {
	primes []int64
	recip  []uint64 // recip[i] = floor(2^64 / primes[i]), unused for i==0
}

// New builds a fast-division table for primes (1-indexed, primes[0] is
// the conventional unused sentinel).
func New(primes []int64) *Table {
	t := &Table{primes: primes, recip: make([]uint64, len(primes))}
	for i := 1; i < len(primes); i++ {
		p := primes[i]
		if p > 1 {
			// floor(2^64 / p): compute via (1, 0) / p using bits.Div64,
			// i.e. treat 2^64 as the 128-bit value (hi=1, lo=0).
			q, _ := bits.Div64(1, 0, uint64(p))
			t.recip[i] = q
		}
	}
	return t
}

// Prime returns primes[i].
func (t *Table) Prime(i int) int64 {
	return t.primes[i]
}

// Div computes x / primes[i] exactly for non-negative x that fits in
// a uint64.
func (t *Table) Div(x uint64, i int) uint64 {
	d := uint64(t.primes[i])
	switch {
	case d == 1:
		return x
	case d&(d-1) == 0: // power of two
		return x >> bits.TrailingZeros64(d)
	}

	hi, _ := bits.Mul64(x, t.recip[i])
	q := hi

	// Correct rounding error: the floor reciprocal can under- or
	// over-estimate by a small constant; fix up in O(1) steps.
	for {
		hi2, lo2 := bits.Mul64(q+1, d)
		if hi2 == 0 && lo2 <= x {
			q++
			continue
		}
		break
	}
	for {
		hi2, lo2 := bits.Mul64(q, d)
		if hi2 != 0 || lo2 > x {
			q--
			continue
		}
		break
	}
	return q
}

// DivInt64 is the signed convenience wrapper used throughout the core
// (all values divided here are non-negative by construction).
func (t *Table) DivInt64(x int64, i int) int64 {
	return int64(t.Div(uint64(x), i))
}

// DivBig divides a 128-bit dividend by primes[i], falling back to full
// width division since a 128-bit value cannot always be shrunk into
// the uint64 fast path.
func (t *Table) DivBig(x i128.Int, i int) i128.Int {
	if x.Fits64() && x.Sign() >= 0 {
		return i128.FromInt64(int64(t.Div(uint64(x.Lo), i)))
	}
	return i128.QuoInt64(x, t.primes[i])
}
