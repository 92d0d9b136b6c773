package artifact

import (
	"errors"
	"math"
	"testing"
)

func TestRandGaussFieldSingleCenter(t *testing.T) {
	// One Gaussian with a fixed center peaks at that center.
	f, err := RandGaussField(Size{41, 41}, NewRand(3), FieldOptions{
		MaxCov:          20,
		Centers:         []Point{{20, 20}},
		MinCovScale:     0.5,
		MinDiagCovScale: 0.5,
		MaxCrCovScale:   0.2,
	})
	if err != nil {
		t.Fatalf("RandGaussField: %v", err)
	}
	peak := f.At(20, 20)
	for y := range 41 {
		for x := range 41 {
			if v := f.At(x, y); v > peak {
				t.Fatalf("At(%d, %d) = %v exceeds center %v", x, y, v, peak)
			}
		}
	}
	if peak <= 0 {
		t.Errorf("peak = %v, want > 0", peak)
	}
}

func TestRandGaussFieldPeakHeight(t *testing.T) {
	// With an isotropic covariance c and scale 2*pi*c, the peak is maxCov.
	f, err := RandGaussField(Size{11, 11}, NewRand(1), FieldOptions{
		MaxCov:          4,
		Centers:         []Point{{5, 5}},
		MinCovScale:     1,
		MinDiagCovScale: 1,
		MaxCrCovScale:   0,
	})
	if err != nil {
		t.Fatalf("RandGaussField: %v", err)
	}
	if got := f.At(5, 5); math.Abs(got-4) > 1e-9 {
		t.Errorf("peak = %v, want 4", got)
	}
}

func TestRandGaussFieldDeterministic(t *testing.T) {
	opts := FieldOptions{NNorms: 6, MaxCov: 30, MinCovScale: 0.1, MinDiagCovScale: 0.25, MaxCrCovScale: 0.7}
	a, err := RandGaussField(Size{40, 30}, NewRand(9), opts)
	if err != nil {
		t.Fatalf("RandGaussField: %v", err)
	}
	b, _ := RandGaussField(Size{40, 30}, NewRand(9), opts)
	for i := range a.data {
		if a.data[i] != b.data[i] {
			t.Fatalf("field differs at %d: %v vs %v", i, a.data[i], b.data[i])
		}
	}
}

func TestRandGaussFieldZeroToOne(t *testing.T) {
	r := [2]float64{-0.5, 1.5}
	f, err := RandGaussField(Size{16, 8}, NewRand(4), FieldOptions{
		NNorms: 3, MaxCov: 15, ZeroToOne: true, RangeX: &r, RangeY: &r,
		MinCovScale: 0.5, MinDiagCovScale: 0.1, MaxCrCovScale: 0.2,
	})
	if err != nil {
		t.Fatalf("RandGaussField: %v", err)
	}
	for i, v := range f.data {
		if v < 0 || math.IsNaN(v) {
			t.Fatalf("field[%d] = %v", i, v)
		}
	}
}

func TestRandGaussFieldNotPositiveDefinite(t *testing.T) {
	_, err := RandGaussField(Size{8, 8}, NewRand(1), FieldOptions{
		NNorms: 1, MaxCov: 0, MinCovScale: 1, MinDiagCovScale: 1,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestFieldGrid(t *testing.T) {
	g := fieldGrid(5, true)
	want := []float64{0, 0.25, 0.5, 0.75, 1}
	for i := range want {
		if g[i] != want[i] {
			t.Errorf("fieldGrid(5, true)[%d] = %v, want %v", i, g[i], want[i])
		}
	}
	if g := fieldGrid(1, true); g[0] != 0 {
		t.Errorf("fieldGrid(1, true) = %v, want [0]", g)
	}
	if g := fieldGrid(3, false); g[2] != 2 {
		t.Errorf("fieldGrid(3, false)[2] = %v, want 2", g[2])
	}
}
