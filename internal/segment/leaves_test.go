package segment

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kimwalisch/primecount-go/internal/factortable"
	"github.com/kimwalisch/primecount-go/internal/fastdiv"
	"github.com/kimwalisch/primecount-go/internal/generate"
	"github.com/kimwalisch/primecount-go/internal/phi"
)

// TestPhiMatchesRecursivePhi cross-checks the S1+S2 leaf-enumeration
// path against internal/phi's independent recursive implementation:
// two structurally unrelated algorithms agreeing is the correctness
// signal this package relies on since the toolchain can't be run.
func TestPhiMatchesRecursivePhi(t *testing.T) {
	ys := []int64{30, 50, 97, 200}
	xs := []int64{1_000, 12_345, 100_000, 987_654}

	for _, y := range ys {
		primes := generate.Indexed1(generate.Primes(y + 1))
		a := int(int64(len(primes) - 1))
		if a <= 8 {
			continue
		}
		ft := factortable.New(y)
		fd := fastdiv.New(primes)
		ref := phi.New(primes)

		for _, x := range xs {
			want := ref.Phi(x, a)
			got := Phi(x, a, primes, ft, fd)
			require.Equalf(t, want, got, "Phi(%d,%d) y=%d", x, a, y)
		}
	}
}

func TestPhiFallsBackToPhitinyForSmallA(t *testing.T) {
	y := int64(30)
	primes := generate.Indexed1(generate.Primes(y + 1))
	ft := factortable.New(y)
	fd := fastdiv.New(primes)

	got := Phi(1000, 4, primes, ft, fd)
	require.Equal(t, int64(228), got, "Phi(1000,4): integers <=1000 coprime to 2,3,5,7")
}

// TestPhiMatchesBruteForceCoprimeCount cross-checks against a third,
// completely independent oracle: a direct O(x) scan counting integers
// coprime to the first a primes by trial division, for an a just
// above phitiny's reach.
func TestPhiMatchesBruteForceCoprimeCount(t *testing.T) {
	y := int64(40)
	primes := generate.Indexed1(generate.Primes(y + 1))
	a := len(primes) - 1
	require.Greaterf(t, a, 8, "need a > 8 to exercise S1/S2, got a=%d", a)

	ft := factortable.New(y)
	fd := fastdiv.New(primes)

	for _, x := range []int64{500, 5_000, 20_000} {
		want := bruteCoprimeCount(x, primes[1:a+1])
		got := Phi(x, a, primes, ft, fd)
		require.Equalf(t, want, got, "Phi(%d,%d)", x, a)
	}
}

func bruteCoprimeCount(limit int64, primes []int64) int64 {
	if limit <= 0 {
		return 0
	}
	var count int64
	for i := int64(1); i <= limit; i++ {
		ok := true
		for _, p := range primes {
			if i%p == 0 {
				ok = false
				break
			}
		}
		if ok {
			count++
		}
	}
	return count
}
