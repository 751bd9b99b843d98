package primecount

import (
	"github.com/kimwalisch/primecount-go/internal/generate"
	"github.com/kimwalisch/primecount-go/internal/i128"
	"github.com/kimwalisch/primecount-go/internal/imath"
	"github.com/kimwalisch/primecount-go/internal/perr"
	"github.com/kimwalisch/primecount-go/internal/pitable"
)

// P3 returns the third-order Meissel/Lehmer correction term used by
// formulas that split the hard region into primes p with
// x^(1/4) < p <= x^(1/3) in addition to P2's p <= x^(1/2) split:
//
//	P3(x,y) = sum_{a < i <= pi(x13)} sum_{i <= j <= bi} ( pi(xi/primes[j]) - (j-1) )
//
// where x13 = x^(1/3), a = pi(y), xi = x/primes[i], bi = pi(isqrt(xi)).
// Ported directly from src/P3.cpp's nested-pi-table-lookup shape
// (distinct from P2's single sum -- P3 counts numbers with exactly
// three prime factors each exceeding the a-th prime, requiring the
// extra inner sum over j). Returns (0, nil) when y exceeds x^(1/3),
// the precondition src/P3.cpp's caller (pi_lehmer.cpp) always
// satisfies for y = x^(1/4).
func P3(x int64, y int64) (int64, error) {
	if x < 2 || y < 2 {
		return 0, nil
	}
	x13 := imath.Iroot3(x)
	if y > x13 {
		return 0, nil
	}

	maxPrime := x13
	if v := imath.Isqrt(x / y); v > maxPrime {
		maxPrime = v
	}
	maxPix := x13
	if v := x / (y * y); v > maxPix {
		maxPix = v
	}

	primes := generate.Indexed1(generate.Primes(maxPrime + 1))
	pt := pitable.New(maxPix)

	piX13 := pt.Pi(x13)
	a := pt.Pi(y)

	sum := int64(0)
	for i := a + 1; i <= piX13; i++ {
		if int(i) >= len(primes) {
			return 0, perr.InternalInvariant("P3: prime index %d exceeds generated table of size %d", i, len(primes)-1)
		}
		p := primes[i]
		xi := x / p
		bi := pt.Pi(imath.Isqrt(xi))

		for j := i; j <= bi; j++ {
			sum += pt.Pi(xi/primes[j]) - (j - 1)
		}
	}
	return sum, nil
}

// P3Big is the i128 convenience wrapper for inputs that fit in int64
// magnitude (P3's prime range keeps every intermediate division
// within int64 for any x this package's Pi supports).
func P3Big(x i128.Int, y int64) (i128.Int, error) {
	if !x.Fits64() {
		return i128.Zero, perr.Overflow("P3: x=%s exceeds supported range", x.String())
	}
	p3, err := P3(x.Int64(), y)
	if err != nil {
		return i128.Zero, err
	}
	return i128.FromInt64(p3), nil
}
