package primecount

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kimwalisch/primecount-go/internal/generate"
)

// TestP3MatchesTripleProductBruteForce cross-checks P3(x,y) -- "count
// numbers <= x with exactly 3 prime factors each exceeding y" -- against
// a direct enumeration of prime triples p<=q<=r>y with p*q*r<=x, an
// independent restatement of the same definition from src/P3.cpp's doc
// comment rather than its nested-pi-table algorithm.
func TestP3MatchesTripleProductBruteForce(t *testing.T) {
	x := int64(100_000)
	y := int64(7) // 4th prime; P3's y must be <= x^(1/3) ~ 46

	got, err := P3(x, y)
	require.NoError(t, err)

	primes := generate.Primes(x)
	var big []int64
	for _, p := range primes {
		if p > y {
			big = append(big, p)
		}
	}

	want := int64(0)
	for i, p := range big {
		if p*p*p > x {
			break
		}
		for j := i; j < len(big); j++ {
			q := big[j]
			if p*q*q > x {
				break
			}
			for k := j; k < len(big); k++ {
				r := big[k]
				prod := p * q * r
				if prod > x {
					break
				}
				want++
			}
		}
	}

	assert.Equal(t, want, got)
}

func TestP3ZeroWhenYExceedsCubeRoot(t *testing.T) {
	got, err := P3(1000, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)
}
