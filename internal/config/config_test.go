package config

import "testing"

func TestSetAlphaResetsOnNonPositive(t *testing.T) {
	SetAlpha(3.5)
	if Alpha() != 3.5 {
		t.Fatalf("Alpha() = %v, want 3.5", Alpha())
	}
	SetAlpha(0)
	if Alpha() != DefaultAlpha {
		t.Fatalf("Alpha() after reset = %v, want default", Alpha())
	}
}

func TestSetNumThreadsRejectsTooMany(t *testing.T) {
	err := SetNumThreads(MaxThreads() + 1000)
	if err == nil {
		t.Fatal("expected error for excessive thread count")
	}
}

func TestSetNumThreadsZeroUsesDefault(t *testing.T) {
	if err := SetNumThreads(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if NumThreads() != MaxThreads() {
		t.Fatalf("NumThreads() = %d, want %d", NumThreads(), MaxThreads())
	}
}

func TestSetAlphaYAndZ(t *testing.T) {
	SetAlphaY(2.0)
	SetAlphaZ(4.0)
	if AlphaY() != 2.0 || AlphaZ() != 4.0 {
		t.Fatalf("AlphaY=%v AlphaZ=%v", AlphaY(), AlphaZ())
	}
	SetAlphaY(-1)
	SetAlphaZ(-1)
	if AlphaY() != DefaultAlphaY || AlphaZ() != DefaultAlphaZ {
		t.Fatalf("expected reset to defaults")
	}
}
