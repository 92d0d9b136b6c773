package artifact

import "testing"

func TestRandDeterministic(t *testing.T) {
	a, b := NewRand(7), NewRand(7)
	for i := range 100 {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d: %v != %v", i, x, y)
		}
	}
}

func TestRandSeedResets(t *testing.T) {
	r := NewRand(11)
	first := []int{r.IntRange(0, 1000), r.IntRange(0, 1000), r.IntRange(0, 1000)}
	r.Float64()
	r.Seed(11)
	for i, want := range first {
		if got := r.IntRange(0, 1000); got != want {
			t.Errorf("after Seed draw %d = %d, want %d", i, got, want)
		}
	}
}

func TestRandRanges(t *testing.T) {
	r := NewRand(3)
	for range 1000 {
		if v := r.IntRange(-5, 5); v < -5 || v >= 5 {
			t.Fatalf("IntRange(-5, 5) = %d", v)
		}
		if v := r.Uniform(2, 3); v < 2 || v >= 3 {
			t.Fatalf("Uniform(2, 3) = %v", v)
		}
		if s := r.Sign(); s != -1 && s != 1 {
			t.Fatalf("Sign() = %v", s)
		}
	}
}

func TestRandEmptyRange(t *testing.T) {
	r := NewRand(1)
	tests := []struct{ lo, hi int }{{0, 0}, {4, 4}, {5, 2}}
	for _, tt := range tests {
		if got := r.IntRange(tt.lo, tt.hi); got != tt.lo {
			t.Errorf("IntRange(%d, %d) = %d, want %d", tt.lo, tt.hi, got, tt.lo)
		}
	}
}
