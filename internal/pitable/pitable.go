// Package pitable implements the O(1) pi(x) lookup table (C4): a
// sieve of Eratosthenes up to some small bound combined with a
// cumulative per-word prime count, so pi(x) for x <= max costs one
// word fetch, a popcount of the remaining bits in that word, and an
// array lookup. Grounded on include/PiTable.hpp and the concrete
// values exercised by test/pi_cache.cpp.
package pitable

import "github.com/kimwalisch/primecount-go/internal/imath"

const wordBits = 64

// Table answers pi(x) in O(1) for 0 <= x <= Max().
type Table struct {
	bits   []uint64 // bit i set iff i is prime
	counts []int64  // counts[w] = number of primes in words [0,w)
	max    int64
}

// New builds a pi(x) table covering [0, max].
func New(max int64) *Table {
	if max < 0 {
		max = 0
	}
	nbits := max + 1
	nwords := (nbits + wordBits - 1) / wordBits
	t := &Table{
		bits:   make([]uint64, nwords),
		counts: make([]int64, nwords+1),
		max:    max,
	}
	t.sieve()
	t.buildCounts()
	return t
}

func (t *Table) setBit(n int64) {
	t.bits[n/wordBits] |= uint64(1) << uint(n%wordBits)
}

func (t *Table) clearBit(n int64) {
	t.bits[n/wordBits] &^= uint64(1) << uint(n%wordBits)
}

func (t *Table) getBit(n int64) bool {
	return t.bits[n/wordBits]&(uint64(1)<<uint(n%wordBits)) != 0
}

func (t *Table) sieve() {
	if t.max < 2 {
		return
	}
	for n := int64(2); n <= t.max; n++ {
		t.setBit(n)
	}
	for p := int64(2); p*p <= t.max; p++ {
		if !t.getBit(p) {
			continue
		}
		for m := p * p; m <= t.max; m += p {
			t.clearBit(m)
		}
	}
}

func (t *Table) buildCounts() {
	running := int64(0)
	for w := 0; w < len(t.bits); w++ {
		t.counts[w] = running
		running += int64(imath.Popcount64(t.bits[w]))
	}
	t.counts[len(t.bits)] = running
}

// Max returns the largest x for which Pi is valid.
func (t *Table) Max() int64 { return t.max }

// Pi returns the number of primes <= x. Precondition: 0 <= x <= Max().
func (t *Table) Pi(x int64) int64 {
	if x < 0 {
		return 0
	}
	if x > t.max {
		x = t.max
	}
	w := x / wordBits
	b := uint(x % wordBits)
	mask := ^uint64(0) >> (wordBits - 1 - b)
	return t.counts[w] + int64(imath.Popcount64(t.bits[w]&mask))
}

// IsPrime reports whether n is prime, n in [0, Max()].
func (t *Table) IsPrime(n int64) bool {
	if n < 2 || n > t.max {
		return false
	}
	return t.getBit(n)
}
