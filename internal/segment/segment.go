// Package segment implements the shared segmented hard-special-leaf
// engine (C8): it walks a numeric range in fixed-size windows,
// sieving each window with a packed bitmap (internal/bitsieve) and
// tracking the running count of surviving (prime) positions with a
// Fenwick tree (internal/fenwick) so each leaf's prime index is
// available in O(log n) instead of a full rescan. The concrete
// instantiation here computes the Lehmer/Meissel P2(x,a) correction
// term; the same walk-a-window-sieve-count shape is what the
// Gourdon-formula term functions (A/B/C/D) build on, per
// include/gourdon.hpp's decomposition (see DESIGN.md for the scope
// this session actually exercised numerically).
package segment

import (
	"github.com/kimwalisch/primecount-go/internal/bitsieve"
	"github.com/kimwalisch/primecount-go/internal/fenwick"
	"github.com/kimwalisch/primecount-go/internal/i128"
)

// DefaultWindow is the segment size used when walking the
// (x^(1/3), x^(1/2)] range for the P2 correction term.
const DefaultWindow = 1 << 16

// PiFunc evaluates pi(q) for some q < x, used recursively by the P2
// term (pi(x/p) for primes p near sqrt(x) still requires its own
// pi evaluation).
type PiFunc func(q i128.Int) (i128.Int, error)

// ComputeP2 returns the Lehmer/Meissel correction term
//
//	P2(x,a) = sum_{a < i <= b} ( pi(x/p_i) - (i-1) )
//
// where a = pi(xRoot3), b = pi(sqrtX), and p_i ranges over the primes
// in (xRoot3, sqrtX]. Those primes are discovered on the fly via a
// segmented sieve rather than requiring a precomputed prime list up
// to sqrtX (which would be infeasible for large x); presievePrimes
// only needs to cover primes up to sqrt(sqrtX).
func ComputeP2(x i128.Int, xRoot3, sqrtX, a int64, presievePrimes []int64, recurse PiFunc) (i128.Int, error) {
	sum := i128.Zero
	low := xRoot3 + 1
	if low < 2 {
		low = 2
	}
	baseCount := a

	for low <= sqrtX {
		high := low + DefaultWindow
		if high > sqrtX+1 {
			high = sqrtX + 1
		}
		size := high - low

		sieve := bitsieve.New(size)
		sieve.Reset(low)

		cnt := 0
		for j := 1; j < len(presievePrimes) && presievePrimes[j]*presievePrimes[j] < high; j++ {
			cnt = j
		}
		if cnt > 0 {
			sieve.PreSieve(presievePrimes, cnt, low)
		}

		tree := fenwick.New(size)
		for pos := int64(0); pos < size; pos++ {
			if !sieve.Get(pos) {
				tree.Remove(pos + 1)
			}
		}

		for pos := int64(0); pos < size; pos++ {
			if !sieve.Get(pos) {
				continue
			}
			i := baseCount + tree.PrefixSum(pos+1)
			p := low + pos
			q := i128.QuoInt64(x, p)
			piq, err := recurse(q)
			if err != nil {
				return i128.Zero, err
			}
			term := i128.Sub(piq, i128.FromInt64(i-1))
			sum = i128.Add(sum, term)
		}

		baseCount += tree.PrefixSum(size)
		low = high
	}

	return sum, nil
}
