package fenwick

import (
	"math/rand"
	"testing"
)

func TestNewAllOnesPrefixSum(t *testing.T) {
	tree := New(100)
	for i := int64(1); i <= 100; i++ {
		if got := tree.PrefixSum(i); got != i {
			t.Fatalf("PrefixSum(%d) = %d, want %d", i, got, i)
		}
	}
}

func TestRemoveMatchesReference(t *testing.T) {
	const n = 500
	tree := New(n)
	present := make([]bool, n+1)
	for i := int64(1); i <= n; i++ {
		present[i] = true
	}

	rnd := rand.New(rand.NewSource(3))
	for step := 0; step < 300; step++ {
		i := int64(1 + rnd.Intn(n))
		if present[i] {
			tree.Remove(i)
			present[i] = false
		}

		lo := int64(1 + rnd.Intn(n))
		hi := int64(1 + rnd.Intn(n))
		if lo > hi {
			lo, hi = hi, lo
		}
		want := int64(0)
		for j := lo; j <= hi; j++ {
			if present[j] {
				want++
			}
		}
		if got := tree.RangeSum(lo, hi); got != want {
			t.Fatalf("RangeSum(%d,%d) = %d, want %d (after removing %d)", lo, hi, got, want, i)
		}
	}
}

func TestBuildFromArbitraryCounts(t *testing.T) {
	counts := []int64{0, 3, 0, 2, 5, 1}
	tree := Build(counts)
	want := []int64{0, 3, 3, 5, 10, 11}
	for i := int64(1); i <= 5; i++ {
		if got := tree.PrefixSum(i); got != want[i] {
			t.Fatalf("PrefixSum(%d) = %d, want %d", i, got, want[i])
		}
	}
}

func TestAddArbitraryDelta(t *testing.T) {
	tree := New(10)
	tree.Add(5, 7)
	if got := tree.PrefixSum(4); got != 4 {
		t.Fatalf("PrefixSum(4) = %d, want 4", got)
	}
	if got := tree.PrefixSum(5); got != 12 {
		t.Fatalf("PrefixSum(5) = %d, want 12", got)
	}
}
