package primecount

import (
	"github.com/kimwalisch/primecount-go/internal/generate"
	"github.com/kimwalisch/primecount-go/internal/i128"
	"github.com/kimwalisch/primecount-go/internal/imath"
	"github.com/kimwalisch/primecount-go/internal/perr"
	"github.com/kimwalisch/primecount-go/internal/segment"
)

// P2 returns the Lehmer/Meissel correction term P2(x,a) directly,
// exposed as a standalone entry point (matching src/P2.cpp's public
// shape) for callers building their own formula on top of it instead
// of going through Pi.
func P2(x i128.Int, a int) (i128.Int, error) {
	if !x.Fits64() {
		return i128.Zero, perr.Overflow("P2: x=%s exceeds supported range", x.String())
	}
	xi := x.Int64()
	sq := imath.Isqrt(xi)
	xRoot3 := imath.Iroot3(xi)
	presievePrimes := generate.Indexed1(generate.Primes(imath.Isqrt(sq) + 2))

	recurse := func(q i128.Int) (i128.Int, error) {
		if !q.Fits64() {
			return i128.Zero, perr.Overflow("P2 recursion exceeded int64 range")
		}
		return piInt64(q.Int64())
	}
	return segment.ComputeP2(x, xRoot3, sq, int64(a), presievePrimes, recurse)
}
