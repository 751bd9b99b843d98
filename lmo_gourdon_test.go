package primecount

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kimwalisch/primecount-go/internal/generate"
	"github.com/kimwalisch/primecount-go/internal/i128"
)

// TestPiLMOMatchesGenerateReference exercises PiLMO's own y/a/factor
// table/S1+S2 path (not Pi's Meissel orchestration) against a direct
// sieve count.
func TestPiLMOMatchesGenerateReference(t *testing.T) {
	SetAlpha(0) // reset to default; other tests in this package mutate it
	defer SetAlpha(0)

	xs := []int64{150_000_000, 180_000_000, 210_000_000}
	for _, x := range xs {
		want := int64(len(generate.Primes(x + 1)))
		got, err := PiLMO(i128.FromInt64(x))
		require.NoErrorf(t, err, "PiLMO(%d)", x)
		assert.Equalf(t, want, got.Int64(), "PiLMO(%d)", x)
	}
}

// TestPiGourdonMatchesGenerateReference exercises PiGourdon's own
// y/z/a/Phi0/C/D path against a direct sieve count.
func TestPiGourdonMatchesGenerateReference(t *testing.T) {
	SetAlphaY(0)
	SetAlphaZ(0)
	defer SetAlphaY(0)
	defer SetAlphaZ(0)

	xs := []int64{150_000_000, 180_000_000, 210_000_000}
	for _, x := range xs {
		want := int64(len(generate.Primes(x + 1)))
		got, err := PiGourdon(i128.FromInt64(x))
		require.NoErrorf(t, err, "PiGourdon(%d)", x)
		assert.Equalf(t, want, got.Int64(), "PiGourdon(%d)", x)
	}
}

// TestAlphaInvariance checks the property the spec names explicitly:
// pi(x) must not depend on which tuning factor (alpha for LMO, alphaY
// for Gourdon) was used to choose y, nor on which formula -- Meissel
// (Pi/orchestrate), LMO, or Gourdon -- computed it. PiLMO and
// PiGourdon now build their own y/a/primes/factor tables independently
// of Pi's orchestrator and of each other, so this is a genuine
// cross-algorithm check, not a tautology against a single shared code
// path.
func TestAlphaInvariance(t *testing.T) {
	defer SetAlpha(0)
	defer SetAlphaY(0)
	defer SetAlphaZ(0)

	x := int64(160_000_000)
	alphas := []float64{1.0, 2.0, 3.5}

	SetAlpha(0)
	reference, err := PiInt64(x)
	require.NoErrorf(t, err, "PiInt64(%d)", x)

	for _, alpha := range alphas {
		SetAlpha(alpha)
		SetAlphaY(alpha)
		SetAlphaZ(1.0)

		lmo, err := PiLMO(i128.FromInt64(x))
		require.NoErrorf(t, err, "PiLMO(%d) alpha=%v", x, alpha)
		assert.Equalf(t, reference, lmo.Int64(), "PiLMO(%d) alpha=%v disagrees with Pi", x, alpha)

		gourdon, err := PiGourdon(i128.FromInt64(x))
		require.NoErrorf(t, err, "PiGourdon(%d) alpha=%v", x, alpha)
		assert.Equalf(t, reference, gourdon.Int64(), "PiGourdon(%d) alpha=%v disagrees with Pi", x, alpha)
	}
}

func TestPiLehmerMatchesGenerateReference(t *testing.T) {
	xs := []int64{150_000_000, 180_000_000}
	for _, x := range xs {
		want := int64(len(generate.Primes(x + 1)))
		got, err := PiLehmer(i128.FromInt64(x))
		require.NoErrorf(t, err, "PiLehmer(%d)", x)
		assert.Equalf(t, want, got.Int64(), "PiLehmer(%d)", x)
	}
}

func TestPiLMOAndGourdonBelowDirectThresholdUseDirectSieve(t *testing.T) {
	got, err := PiLMO(i128.FromInt64(1000))
	require.NoError(t, err)
	assert.Equal(t, int64(168), got.Int64())

	got, err = PiGourdon(i128.FromInt64(1000))
	require.NoError(t, err)
	assert.Equal(t, int64(168), got.Int64())

	got, err = PiLehmer(i128.FromInt64(1000))
	require.NoError(t, err)
	assert.Equal(t, int64(168), got.Int64())
}
