// Package factortable implements the compressed (mu, lpf) factor
// table (C6): for integers coprime to the first k=8 primes (the same
// wheel phi_tiny uses), it stores the Moebius function sign and the
// least prime factor in a compacted array indexed by wheel offset
// instead of by raw integer value, since roughly 83% of integers are
// wheel-sieved out and need no entry at all. Grounded on
// include/FactorTable.hpp and test/factor_table.cpp.
package factortable

import "sync"

const wheelK = 8

var wheelPrimes = [wheelK]int64{2, 3, 5, 7, 11, 13, 17, 19}
var period = int64(9699690) // product of the first 8 primes

var (
	wheelOnce         sync.Once
	offsets           []int32 // offsets[r] = compressed slot within one period, -1 if r shares a factor with period
	coprimesPerPeriod int64
)

func buildWheel() {
	offsets = make([]int32, period)
	idx := int32(0)
	for r := int64(0); r < period; r++ {
		coprime := true
		for _, p := range wheelPrimes {
			if r%p == 0 {
				coprime = false
				break
			}
		}
		if coprime {
			offsets[r] = idx
			idx++
		} else {
			offsets[r] = -1
		}
	}
	coprimesPerPeriod = int64(idx)
}

func ensureWheel() {
	wheelOnce.Do(buildWheel)
}

// MuSquareFree is the sentinel stored when n has a squared prime
// factor (mu(n) == 0).
const MuSquareFree = 0

// Table stores mu(n) and the least prime factor of n for every n in
// [1, limit] that is coprime to the first 8 primes.
type Table struct {
	limit int64
	mu    []int8
	lpf   []int32
}

// New builds a factor table covering [1, limit].
func New(limit int64) *Table {
	ensureWheel()
	if limit < 1 {
		limit = 1
	}
	numPeriods := limit/period + 1
	size := numPeriods * coprimesPerPeriod

	denseMu, denseLpf := sieveMuLpf(limit)

	t := &Table{
		limit: limit,
		mu:    make([]int8, size),
		lpf:   make([]int32, size),
	}
	for n := int64(1); n <= limit; n++ {
		r := n % period
		off := offsets[r]
		if off < 0 {
			continue
		}
		i := (n/period)*coprimesPerPeriod + int64(off)
		t.mu[i] = denseMu[n]
		t.lpf[i] = denseLpf[n]
	}
	return t
}

// sieveMuLpf computes mu(n) and the least prime factor of every n in
// [0, limit] with a linear (smallest-prime-factor) sieve.
func sieveMuLpf(limit int64) (mu []int8, lpf []int32) {
	mu = make([]int8, limit+1)
	lpf = make([]int32, limit+1)
	if limit >= 1 {
		mu[1] = 1
	}
	primes := make([]int64, 0)
	for i := int64(2); i <= limit; i++ {
		if lpf[i] == 0 {
			lpf[i] = int32(i)
			mu[i] = -1
			primes = append(primes, i)
		}
		for _, p := range primes {
			if p > int64(lpf[i]) || i*p > limit {
				break
			}
			ip := i * p
			lpf[ip] = int32(p)
			if i%p == 0 {
				mu[ip] = 0
			} else {
				mu[ip] = -mu[i]
			}
		}
	}
	return mu, lpf
}

// IsCoprime reports whether n is coprime to the first 8 primes, i.e.
// whether this table holds an entry for n at all.
func IsCoprime(n int64) bool {
	ensureWheel()
	return offsets[n%period] >= 0
}

func (t *Table) indexOf(n int64) int64 {
	off := offsets[n%period]
	return (n/period)*coprimesPerPeriod + int64(off)
}

// Mu returns mu(n). Precondition: 1 <= n <= limit and IsCoprime(n).
func (t *Table) Mu(n int64) int {
	return int(t.mu[t.indexOf(n)])
}

// Lpf returns the least prime factor of n, or n itself if n is prime
// (and the wheel primes 2..19 if n equals one of them, though those
// are never coprime to themselves and so never indexed here).
// Precondition: 1 <= n <= limit and IsCoprime(n).
func (t *Table) Lpf(n int64) int64 {
	return int64(t.lpf[t.indexOf(n)])
}

// IsSquareFree reports whether n has no squared prime factor.
func (t *Table) IsSquareFree(n int64) bool {
	return t.Mu(n) != MuSquareFree
}

// Limit returns the upper bound this table covers.
func (t *Table) Limit() int64 { return t.limit }
