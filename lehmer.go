package primecount

import (
	"github.com/kimwalisch/primecount-go/internal/direct"
	"github.com/kimwalisch/primecount-go/internal/generate"
	"github.com/kimwalisch/primecount-go/internal/i128"
	"github.com/kimwalisch/primecount-go/internal/imath"
	"github.com/kimwalisch/primecount-go/internal/perr"
	"github.com/kimwalisch/primecount-go/internal/phi"
	"github.com/kimwalisch/primecount-go/internal/pitable"
	"github.com/kimwalisch/primecount-go/internal/segment"
)

// PiLehmer computes pi(x) via Lehmer's formula, Meissel's formula
// plus the third-order P3 correction:
//
//	pi(x) = phi(x,a) + a - 1 - P2(x,a) - P3(x,a)
//
// with y = x^(1/4), a = pi(y) -- Lehmer trades a smaller y (hence a
// smaller phi(x,a) recursion) against the extra P3 term. P2 here runs
// over the primes in (x^(1/4), x^(1/2)], and P3 over leading primes
// in (x^(1/4), x^(1/3)]. Ported in control-flow from
// src/pi_lehmer.cpp.
func PiLehmer(x i128.Int) (i128.Int, error) {
	if !x.Fits64() {
		return i128.Zero, perr.Overflow("pi_lehmer(x): x=%s exceeds the supported 64-bit-magnitude range", x.String())
	}
	xi := x.Int64()
	if xi < 2 {
		return i128.Zero, nil
	}
	if xi <= direct.MaxX {
		return i128.FromInt64(direct.Pi(xi)), nil
	}

	y := imath.Iroot4(xi)
	if y < 2 {
		y = 2
	}
	sq := imath.Isqrt(xi)

	pt := pitable.New(y)
	a := pt.Pi(y)

	phiPrimes := generate.Indexed1(generate.Primes(sq + 2))

	phiVal := phi.New(phiPrimes).Phi(xi, int(a))
	p3, err := P3(xi, y)
	if err != nil {
		return i128.Zero, err
	}

	presievePrimes := generate.Indexed1(generate.Primes(imath.Isqrt(sq) + 2))
	recurse := func(q i128.Int) (i128.Int, error) {
		if !q.Fits64() {
			return i128.Zero, perr.Overflow("pi_lehmer(x/p) recursion exceeded int64 range")
		}
		return piInt64(q.Int64())
	}

	p2, err := segment.ComputeP2(x, y, sq, a, presievePrimes, recurse)
	if err != nil {
		return i128.Zero, err
	}

	result := i128.FromInt64(phiVal + a - 1 - p3)
	result = i128.Sub(result, p2)
	return result, nil
}
