package i128

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddSub(t *testing.T) {
	a := FromInt64(1_000_000_000_000)
	b := FromInt64(2_000_000_000_000)
	assert.Equal(t, "3000000000000", Add(a, b).String())
	assert.Equal(t, "-1000000000000", Sub(a, b).String())
}

func TestMulInt64(t *testing.T) {
	tests := []struct {
		x, y int64
		want string
	}{
		{1000000000, 1000000000, "1000000000000000000"},
		{-5, 7, "-35"},
		{-5, -7, "35"},
		{0, 123456, "0"},
	}
	for _, tt := range tests {
		got := MulInt64(tt.x, tt.y)
		assert.Equalf(t, tt.want, got.String(), "MulInt64(%d,%d)", tt.x, tt.y)
	}
}

func TestMulBig(t *testing.T) {
	// 10^20 fits in 128 bits but not 64.
	x := MulInt64(10_000_000_000, 10_000_000_000)
	require.Equal(t, "100000000000000000000", x.String())
	require.False(t, x.Fits64(), "10^20 should not fit in int64")

	y := Mul(x, 3)
	assert.Equal(t, "300000000000000000000", y.String())
}

func TestQuoInt64(t *testing.T) {
	x := MulInt64(10_000_000_000, 10_000_000_000) // 10^20
	q := QuoInt64(x, 7)
	// 10^20 / 7 = 14285714285714285714 remainder 2
	require.Equal(t, "14285714285714285714", q.String())

	neg := Neg(x)
	q2 := QuoInt64(neg, 7)
	assert.Equal(t, "-14285714285714285714", q2.String())
}

func TestCmp(t *testing.T) {
	a := FromInt64(5)
	b := FromInt64(10)
	assert.Negative(t, Cmp(a, b), "expected a < b")
	assert.Positive(t, Cmp(b, a), "expected b > a")
	assert.Zero(t, Cmp(a, a), "expected a == a")
	neg := FromInt64(-5)
	assert.Negative(t, Cmp(neg, a), "expected -5 < 5")
}

func TestFromStringRoundTrip(t *testing.T) {
	tests := []string{"0", "1", "-1", "123456789012345678901234567890", "-98765432109876543210"}
	for _, s := range tests {
		v, ok := FromString(s)
		require.Truef(t, ok, "FromString(%q) failed", s)
		assert.Equal(t, s, v.String())
	}
}

func TestFits64(t *testing.T) {
	a := FromInt64(9223372036854775807)
	assert.True(t, a.Fits64(), "MaxInt64 should fit")
	b := MulInt64(1<<32, 1<<32)
	assert.False(t, b.Fits64(), "2^64 should not fit in int64")
}
