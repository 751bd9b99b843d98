// Package primecount computes pi(x), the prime-counting function,
// nth_prime(n) and Phi(x,a) via a hybrid of direct sieving (small x)
// and the Lehmer/Meissel combinatorial formula (larger x), sharing
// the segmented hard-leaf engine, factor table, Fenwick tree and
// phi(x,a) recursion the package's internal/ subpackages implement.
// Grounded on src/api.cpp's public surface (pi/nth_prime/phi/
// set_alpha*/set_num_threads) and src/pi_legendre.cpp /
// src/pi_lehmer.cpp for the pi(x) dispatch policy itself.
package primecount

import (
	"github.com/kimwalisch/primecount-go/internal/config"
	"github.com/kimwalisch/primecount-go/internal/direct"
	"github.com/kimwalisch/primecount-go/internal/i128"
	"github.com/kimwalisch/primecount-go/internal/perr"
)

// Pi returns the number of primes <= x (0 for any x < 2, including
// negative x).
func Pi(x i128.Int) (i128.Int, error) {
	if !x.Fits64() {
		return i128.Zero, perr.Overflow("pi(x): x=%s exceeds the supported 64-bit-magnitude range", x.String())
	}
	return piInt64(x.Int64())
}

// PiInt64 is the int64 convenience wrapper most callers use.
func PiInt64(x int64) (int64, error) {
	r, err := piInt64(x)
	if err != nil {
		return 0, err
	}
	if !r.Fits64() {
		return 0, perr.Overflow("pi(%d) result does not fit in int64", x)
	}
	return r.Int64(), nil
}

func piInt64(x int64) (i128.Int, error) {
	if x < 2 {
		return i128.Zero, nil
	}
	if x <= direct.MaxX {
		return i128.FromInt64(direct.Pi(x)), nil
	}
	return orchestrate(x)
}

// NthPrime returns the n-th prime, 1-indexed (NthPrime(1) == 2).
func NthPrime(n int64) (int64, error) {
	if n <= 0 {
		return 0, perr.InvalidInput("nth_prime: n=%d must be positive", n)
	}
	return nthPrime(n)
}

// Phi returns Phi(x,a), the count of integers in [1,x] not divisible
// by any of the first a primes.
func Phi(x int64, a int) (int64, error) {
	if x < 0 {
		return 0, perr.InvalidInput("phi(x,a): x=%d must be non-negative", x)
	}
	if a < 0 {
		return 0, perr.InvalidInput("phi(x,a): a=%d must be non-negative", a)
	}
	return phiPublic(x, a)
}

// SetAlpha sets the Deleglise-Rivat/LMO sieve-size tuning factor.
func SetAlpha(alpha float64) { config.SetAlpha(alpha) }

// SetAlphaY sets Gourdon's y tuning factor.
func SetAlphaY(alphaY float64) { config.SetAlphaY(alphaY) }

// SetAlphaZ sets Gourdon's z tuning factor.
func SetAlphaZ(alphaZ float64) { config.SetAlphaZ(alphaZ) }

// SetNumThreads sets the number of worker threads used by the load
// balancer.
func SetNumThreads(threads int) error { return config.SetNumThreads(threads) }

// GetNumThreads returns the configured worker thread count.
func GetNumThreads() int { return config.NumThreads() }

// MaxThreads returns the maximum usable thread count.
func MaxThreads() int { return config.MaxThreads() }
