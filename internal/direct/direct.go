// Package direct implements the brute-force direct-sieve fallback:
// pi(x) and nth_prime(n) computed by a plain sieve of Eratosthenes,
// used both as the small-x fast path the combinatorial formulas
// aren't worth invoking for, and as the independent reference
// property tests cross-check the segment-engine formulas against.
// Grounded on src/pi_primesieve.cpp.
package direct

import (
	"github.com/kimwalisch/primecount-go/internal/generate"
	"github.com/kimwalisch/primecount-go/internal/perr"
)

// MaxX is the largest x this package will sieve directly; callers
// needing pi(x) for larger x should use the combinatorial formulas
// instead (a direct sieve of 10^9+ integers is correct but far
// slower than the special-leaf algorithms it exists to validate).
const MaxX = 100_000_000

// Pi returns the exact count of primes <= x via a direct sieve.
// Intended for x <= MaxX.
func Pi(x int64) int64 {
	if x < 2 {
		return 0
	}
	return int64(len(generate.Primes(x + 1)))
}

// NthPrime returns the n-th prime (1-indexed: NthPrime(1) == 2) via a
// direct sieve, growing the sieve bound geometrically until it
// contains at least n primes.
func NthPrime(n int64) (int64, error) {
	if n <= 0 {
		return 0, perr.InvalidInput("nth_prime: n=%d must be positive", n)
	}
	bound := int64(15)
	for {
		primes := generate.Primes(bound)
		if int64(len(primes)) >= n {
			return primes[n-1], nil
		}
		if bound > MaxX*4 {
			return 0, perr.ResourceExhaustion("nth_prime: n=%d exceeds direct-sieve range", n)
		}
		bound *= 2
	}
}
