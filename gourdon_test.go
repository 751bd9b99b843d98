package primecount

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kimwalisch/primecount-go/internal/factortable"
	"github.com/kimwalisch/primecount-go/internal/fastdiv"
	"github.com/kimwalisch/primecount-go/internal/generate"
	"github.com/kimwalisch/primecount-go/internal/i128"
	"github.com/kimwalisch/primecount-go/internal/phi"
	"github.com/kimwalisch/primecount-go/internal/pitable"
)

// TestPhi0MatchesRecursivePhi cross-checks Phi0 (segment.Phi under
// PiGourdon's own factor table) against internal/phi's independent
// recursive implementation, the same two-oracle pattern
// leaves_test.go uses for segment.Phi directly.
func TestPhi0MatchesRecursivePhi(t *testing.T) {
	y := int64(200)
	primes := generate.Indexed1(generate.Primes(y + 1))
	a := len(primes) - 1
	require.Greater(t, a, 8)
	ft := factortable.New(y)
	fd := fastdiv.New(primes)

	want := phi.New(primes).Phi(100_000, a)
	got := Phi0(100_000, a, primes, ft, fd)
	assert.Equal(t, want, got)
}

// TestACountsCoprimeSurvivorsInWindow checks A(x,y) against a direct
// trial-division count of integers in (y,x) coprime to every prime
// whose square is below x -- the same set BitSieve128's presieve
// targets.
func TestACountsCoprimeSurvivorsInWindow(t *testing.T) {
	x := int64(100)
	y := int64(50)
	primes := generate.Indexed1(generate.Primes(20))

	got, err := A(x, y, primes)
	require.NoError(t, err)

	var pSieve []int64
	for _, p := range primes[1:] {
		if p*p < x {
			pSieve = append(pSieve, p)
		}
	}
	want := int64(0)
	for n := y + 1; n < x; n++ {
		coprime := true
		for _, p := range pSieve {
			if n%p == 0 {
				coprime = false
				break
			}
		}
		if coprime {
			want++
		}
	}
	assert.Equal(t, want, got)
}

func TestAInvalidRangeIsRejected(t *testing.T) {
	_, err := A(10, 10, nil)
	require.Error(t, err)
	_, err = A(10, 20, nil)
	require.Error(t, err)
}

// TestBCountsPrimePairsPastCubeRoot cross-checks B(x,y) against a
// direct trial-count of pi(x/p)-pi(p)+1 for primes p in (xCbrt,y],
// using the same pitable oracle the production code's recurse
// callback would normally reach via the package's own Pi.
func TestBCountsPrimePairsPastCubeRoot(t *testing.T) {
	x := int64(10_000)
	xCbrt := int64(21) // floor(10000^(1/3)) = 21
	y := int64(100)
	primes := generate.Indexed1(generate.Primes(y + 1))
	pt := pitable.New(x)

	recurse := func(q i128.Int) (i128.Int, error) {
		require.True(t, q.Fits64())
		return i128.FromInt64(pt.Pi(q.Int64())), nil
	}

	got, err := B(x, y, xCbrt, primes, pt, recurse)
	require.NoError(t, err)

	want := int64(0)
	for _, p := range primes[1:] {
		if p <= xCbrt || p > y {
			continue
		}
		want += pt.Pi(x/p) - pt.Pi(p) + 1
	}
	assert.Equal(t, want, got)
}

func TestSigmaMatchesPhiTinyDirectly(t *testing.T) {
	primes := generate.Indexed1(generate.Primes(30))
	got := Sigma(1000, 7, primes)
	want, err := Phi(1000, 4) // primes <= 7: 2,3,5,7 -> a=4
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
