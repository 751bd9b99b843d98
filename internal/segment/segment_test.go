package segment

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kimwalisch/primecount-go/internal/direct"
	"github.com/kimwalisch/primecount-go/internal/generate"
	"github.com/kimwalisch/primecount-go/internal/i128"
	"github.com/kimwalisch/primecount-go/internal/imath"
	"github.com/kimwalisch/primecount-go/internal/phi"
	"github.com/kimwalisch/primecount-go/internal/pitable"
)

// lehmerPi computes pi(x) via phi(x,a) + a - 1 - P2(x,a), recursing
// into direct.Pi for the P2 correction's own pi(x/p) evaluations,
// which is valid as long as x/p stays within direct's brute-force
// range -- true for every x this test exercises.
func lehmerPi(t *testing.T, x int64) int64 {
	t.Helper()
	r3 := imath.Iroot3(x)
	if r3 < 2 {
		r3 = 2
	}
	sq := imath.Isqrt(x)

	pt := pitable.New(r3)
	a := pt.Pi(r3)

	phiPrimes := generate.Indexed1(generate.Primes(r3 + 1))
	phiVal := phi.New(phiPrimes).Phi(x, int(a))

	presieveLimit := imath.Isqrt(sq) + 2
	presievePrimes := generate.Indexed1(generate.Primes(presieveLimit))

	recurse := func(q i128.Int) (i128.Int, error) {
		return i128.FromInt64(direct.Pi(q.Int64())), nil
	}

	p2, err := ComputeP2(i128.FromInt64(x), r3, sq, a, presievePrimes, recurse)
	require.NoError(t, err, "ComputeP2")

	result := i128.Sub(i128.Add(i128.FromInt64(phiVal), i128.FromInt64(a-1)), p2)
	return result.Int64()
}

func TestLehmerPiMatchesDirect(t *testing.T) {
	xs := []int64{10_000, 50_000, 123_457, 500_000, 1_000_000, 2_345_678}
	for _, x := range xs {
		want := direct.Pi(x)
		got := lehmerPi(t, x)
		require.Equalf(t, want, got, "lehmerPi(%d)", x)
	}
}
