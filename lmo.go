package primecount

import (
	"math"

	"github.com/kimwalisch/primecount-go/internal/config"
	"github.com/kimwalisch/primecount-go/internal/direct"
	"github.com/kimwalisch/primecount-go/internal/factortable"
	"github.com/kimwalisch/primecount-go/internal/fastdiv"
	"github.com/kimwalisch/primecount-go/internal/generate"
	"github.com/kimwalisch/primecount-go/internal/i128"
	"github.com/kimwalisch/primecount-go/internal/imath"
	"github.com/kimwalisch/primecount-go/internal/perr"
	"github.com/kimwalisch/primecount-go/internal/pitable"
	"github.com/kimwalisch/primecount-go/internal/segment"
)

// PiLMO computes pi(x) via the Lagarias-Miller-Odlyzko decomposition:
// phi(x,a) + a - 1 - P2(x,a), with y = alpha*x^(1/3), a = pi(y), and
// phi(x,a) evaluated by internal/segment's S1+S2 leaf-enumeration
// core (factor table + Fenwick tree) instead of internal/phi's
// recursion -- a genuinely different code path from Pi's Meissel
// orchestration (orchestrator.go), even though both implement the
// same mathematical identity and so must agree (see
// TestAlphaInvariance in lmo_gourdon_test.go). Grounded on
// src/pi_lmo1.cpp through pi_lmo5.cpp's shared top-level shape.
func PiLMO(x i128.Int) (i128.Int, error) {
	if !x.Fits64() {
		return i128.Zero, perr.Overflow("pi_lmo(x): x=%s exceeds the supported 64-bit-magnitude range", x.String())
	}
	xi := x.Int64()
	if xi < 2 {
		return i128.Zero, nil
	}
	if xi <= direct.MaxX {
		return i128.FromInt64(direct.Pi(xi)), nil
	}

	y := int64(config.Alpha() * math.Cbrt(float64(xi)))
	if y < 2 {
		y = 2
	}
	sq := imath.Isqrt(xi)
	if y > sq {
		y = sq
	}

	pt := pitable.New(y)
	a := pt.Pi(y)

	primes := generate.Indexed1(generate.Primes(y + 1))
	if int64(len(primes)-1) != a {
		return i128.Zero, perr.InternalInvariant(
			"pi_lmo: pi(y) mismatch: pitable says %d, sieve found %d primes", a, len(primes)-1)
	}

	ft := factortable.New(y)
	fd := fastdiv.New(primes)
	phiVal := segment.Phi(xi, int(a), primes, ft, fd)

	presievePrimes := generate.Indexed1(generate.Primes(imath.Isqrt(sq) + 2))
	recurse := func(q i128.Int) (i128.Int, error) {
		if !q.Fits64() {
			return i128.Zero, perr.Overflow("pi_lmo(x/p) recursion exceeded int64 range")
		}
		return piInt64(q.Int64())
	}

	p2, err := segment.ComputeP2(x, y, sq, a, presievePrimes, recurse)
	if err != nil {
		return i128.Zero, err
	}

	result := i128.Sub(i128.Add(i128.FromInt64(phiVal), i128.FromInt64(a-1)), p2)
	return result, nil
}
