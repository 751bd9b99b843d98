package phitiny

import "testing"

// bruteForcePhi computes Phi(x,a) by direct trial division, used only
// to cross-check the tiny tables for small inputs.
func bruteForcePhi(x int64, a int) int64 {
	count := int64(0)
	for n := int64(1); n <= x; n++ {
		ok := true
		for j := 0; j < a; j++ {
			if n%primesTiny[j] == 0 {
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

func TestPhiMatchesBruteForce(t *testing.T) {
	for a := 0; a <= 5; a++ {
		for x := int64(0); x <= 500; x++ {
			got := Phi(x, a)
			want := bruteForcePhi(x, a)
			if got != want {
				t.Fatalf("Phi(%d,%d) = %d, want %d", x, a, got, want)
			}
		}
	}
}

func TestPhiZeroArgs(t *testing.T) {
	if Phi(0, 3) != 0 {
		t.Errorf("Phi(0,a) should be 0")
	}
	if Phi(100, 0) != 100 {
		t.Errorf("Phi(x,0) should be x")
	}
}

func TestPhiPeriodicity(t *testing.T) {
	a := 3
	period := primorialTiny[a]
	base := Phi(period, a)
	for k := int64(1); k <= 5; k++ {
		got := Phi(period*k, a)
		want := base * k
		if got != want {
			t.Errorf("Phi(%d*%d,%d) = %d, want %d", period, k, a, got, want)
		}
	}
}

func TestHandles(t *testing.T) {
	if !Handles(8) || Handles(9) || !Handles(0) {
		t.Errorf("Handles boundary incorrect")
	}
}
