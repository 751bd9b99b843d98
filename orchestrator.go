package primecount

import (
	"github.com/kimwalisch/primecount-go/internal/config"
	"github.com/kimwalisch/primecount-go/internal/generate"
	"github.com/kimwalisch/primecount-go/internal/i128"
	"github.com/kimwalisch/primecount-go/internal/imath"
	"github.com/kimwalisch/primecount-go/internal/perr"
	"github.com/kimwalisch/primecount-go/internal/phi"
	"github.com/kimwalisch/primecount-go/internal/pitable"
	"github.com/kimwalisch/primecount-go/internal/segment"
)

// orchestrate computes pi(x) for x above the direct-sieve threshold
// via phi(x,a) + a - 1 - P2(x,a), recursing into piInt64 for the
// P2 term's own pi(x/p) evaluations (see internal/segment).
func orchestrate(x int64) (i128.Int, error) {
	r3 := imath.Iroot3(x)
	if r3 < 2 {
		r3 = 2
	}
	sq := imath.Isqrt(x)

	pt := pitable.New(r3)
	a := pt.Pi(r3)

	phiPrimes := generate.Indexed1(generate.Primes(r3 + 1))
	if int64(len(phiPrimes)-1) != a {
		return i128.Zero, perr.InternalInvariant(
			"pi(x^(1/3)) mismatch: pitable says %d, sieve found %d primes", a, len(phiPrimes)-1)
	}

	phiVal := phi.New(phiPrimes).Phi(x, int(a))

	presievePrimes := generate.Indexed1(generate.Primes(imath.Isqrt(sq) + 2))

	recurse := func(q i128.Int) (i128.Int, error) {
		if !q.Fits64() {
			return i128.Zero, perr.Overflow("pi(x/p) recursion exceeded int64 range")
		}
		return piInt64(q.Int64())
	}

	var p2 i128.Int
	var err error
	threads := config.NumThreads()
	if threads > 1 && sq-r3 > segment.DefaultWindow*int64(threads) {
		p2, err = segment.ParallelComputeP2(i128.FromInt64(x), r3, sq, a, presievePrimes, recurse, threads)
	} else {
		p2, err = segment.ComputeP2(i128.FromInt64(x), r3, sq, a, presievePrimes, recurse)
	}
	if err != nil {
		return i128.Zero, err
	}

	result := i128.Sub(i128.Add(i128.FromInt64(phiVal), i128.FromInt64(a-1)), p2)
	return result, nil
}
