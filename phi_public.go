package primecount

import (
	"github.com/kimwalisch/primecount-go/internal/generate"
	"github.com/kimwalisch/primecount-go/internal/phi"
)

// phiPublic computes Phi(x,a) for the public API: it builds a
// primes-coprime-to vector covering the first a primes (generating
// more than a via an upper-bound sieve, then trimming) and delegates
// to internal/phi's recursion.
func phiPublic(x int64, a int) (int64, error) {
	if a == 0 || x == 0 {
		return phi.New(nil).Phi(x, 0), nil
	}
	// primes[a] < a*(ln(a)+ln(ln(a))) + a for a >= 6 (Rosser's bound);
	// pad generously for small a where that bound is loose.
	bound := int64(a)*20 + 100
	primes := generate.Primes(bound)
	for int64(len(primes)) < int64(a) {
		bound *= 2
		primes = generate.Primes(bound)
	}
	indexed := generate.Indexed1(primes[:a])
	return phi.New(indexed).Phi(x, a), nil
}
