// Package fenwick implements a Binary Indexed Tree (C7) giving
// O(log n) prefix counts of the still-unsieved positions in a
// segment, used by the hard special-leaf loop to avoid rescanning the
// sieve bitmap for every leaf. Grounded on include/BinaryIndexedTree.hpp
// and test/BinaryIndexedTree.cpp.
package fenwick

// Tree is a 1-indexed Fenwick tree over a fixed-size array of counts.
type Tree struct {
	tree []int64
	size int64
}

// New builds a Fenwick tree over n positions, all initially
// contributing 1 (i.e. every position starts "present"); use Build
// to seed it from an arbitrary initial count array instead.
func New(n int64) *Tree {
	t := &Tree{tree: make([]int64, n+1), size: n}
	counts := make([]int64, n+1)
	for i := int64(1); i <= n; i++ {
		counts[i] = 1
	}
	t.build(counts)
	return t
}

// Build constructs the tree from counts[1..n] in O(n).
func Build(counts []int64) *Tree {
	n := int64(len(counts) - 1)
	t := &Tree{tree: make([]int64, n+1), size: n}
	t.build(counts)
	return t
}

func (t *Tree) build(counts []int64) {
	copy(t.tree, counts)
	for i := int64(1); i <= t.size; i++ {
		parent := i + (i & -i)
		if parent <= t.size {
			t.tree[parent] += t.tree[i]
		}
	}
}

// Add adds delta to the count at position i (1-indexed).
func (t *Tree) Add(i, delta int64) {
	for ; i <= t.size; i += i & -i {
		t.tree[i] += delta
	}
}

// Remove is a convenience for Add(i, -1), the common case of marking
// a position sieved out.
func (t *Tree) Remove(i int64) {
	t.Add(i, -1)
}

// PrefixSum returns the sum of counts over [1, i].
func (t *Tree) PrefixSum(i int64) int64 {
	sum := int64(0)
	for ; i > 0; i -= i & -i {
		sum += t.tree[i]
	}
	return sum
}

// RangeSum returns the sum of counts over [lo, hi] inclusive.
func (t *Tree) RangeSum(lo, hi int64) int64 {
	if lo > hi {
		return 0
	}
	if lo <= 1 {
		return t.PrefixSum(hi)
	}
	return t.PrefixSum(hi) - t.PrefixSum(lo-1)
}

// Size returns the number of positions tracked.
func (t *Tree) Size() int64 { return t.size }
