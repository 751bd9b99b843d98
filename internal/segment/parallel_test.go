package segment

import (
	"testing"

	"github.com/kimwalisch/primecount-go/internal/direct"
	"github.com/kimwalisch/primecount-go/internal/generate"
	"github.com/kimwalisch/primecount-go/internal/i128"
	"github.com/kimwalisch/primecount-go/internal/imath"
	"github.com/kimwalisch/primecount-go/internal/pitable"
)

func TestParallelComputeP2MatchesSequential(t *testing.T) {
	const x = 2_345_678
	r3 := imath.Iroot3(x)
	sq := imath.Isqrt(x)

	pt := pitable.New(r3)
	a := pt.Pi(r3)

	presievePrimes := generate.Indexed1(generate.Primes(imath.Isqrt(sq) + 2))
	recurse := func(q i128.Int) (i128.Int, error) {
		return i128.FromInt64(direct.Pi(q.Int64())), nil
	}

	seq, err := ComputeP2(i128.FromInt64(x), r3, sq, a, presievePrimes, recurse)
	if err != nil {
		t.Fatalf("ComputeP2: %v", err)
	}
	par, err := ParallelComputeP2(i128.FromInt64(x), r3, sq, a, presievePrimes, recurse, 4)
	if err != nil {
		t.Fatalf("ParallelComputeP2: %v", err)
	}
	if i128.Cmp(seq, par) != 0 {
		t.Fatalf("sequential=%s parallel=%s", seq.String(), par.String())
	}
}
