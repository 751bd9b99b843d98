package generate

import "testing"

func TestPrimesSmall(t *testing.T) {
	got := Primes(30)
	want := []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Primes(30)[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestSegmentedMatchesPlain(t *testing.T) {
	const n = 200_000
	plain := Primes(n)
	segmented := SegmentedPrimes(n, 997, nil)
	if len(plain) != len(segmented) {
		t.Fatalf("len plain=%d segmented=%d", len(plain), len(segmented))
	}
	for i := range plain {
		if plain[i] != segmented[i] {
			t.Fatalf("mismatch at %d: %d vs %d", i, plain[i], segmented[i])
		}
	}
}

func TestParallelMatchesPlain(t *testing.T) {
	const n = 300_000
	plain := Primes(n)
	parallel := ParallelSegmentedPrimes(n, 4, 5000, nil)
	if len(plain) != len(parallel) {
		t.Fatalf("len plain=%d parallel=%d", len(plain), len(parallel))
	}
	for i := range plain {
		if plain[i] != parallel[i] {
			t.Fatalf("mismatch at %d: %d vs %d", i, plain[i], parallel[i])
		}
	}
}

func TestProgressCallbackCount(t *testing.T) {
	const n = 50_000
	segmentSize := int64(1000)
	segments := (n + segmentSize - 1) / segmentSize
	calls := 0
	SegmentedPrimes(n, segmentSize, func(d int) { calls += d })
	if int64(calls) != segments {
		t.Fatalf("progress calls = %d, want %d", calls, segments)
	}
}

func TestIndexed1(t *testing.T) {
	primes := Primes(20)
	idx := Indexed1(primes)
	if idx[0] != 0 {
		t.Errorf("idx[0] should be unused sentinel 0")
	}
	for i, p := range primes {
		if idx[i+1] != p {
			t.Errorf("idx[%d] = %d, want %d", i+1, idx[i+1], p)
		}
	}
}
