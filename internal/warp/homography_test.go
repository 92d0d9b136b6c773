package warp

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/image/math/f64"
)

func TestFromCorners_Identity(t *testing.T) {
	corners := [4]f64.Vec2{{0, 0}, {10, 0}, {0, 10}, {10, 10}}
	h, err := FromCorners(corners, corners)
	if err != nil {
		t.Fatalf("FromCorners: %v", err)
	}
	want := Identity()
	for i := range h {
		if math.Abs(h[i]-want[i]) > 1e-9 {
			t.Errorf("h[%d] = %v, want %v", i, h[i], want[i])
		}
	}
}

func TestFromCorners_MapsCorners(t *testing.T) {
	src := [4]f64.Vec2{{0, 0}, {100, 0}, {0, 50}, {100, 50}}
	dst := [4]f64.Vec2{{10, 5}, {90, 12}, {3, 70}, {120, 60}}

	h, err := FromCorners(src, dst)
	if err != nil {
		t.Fatalf("FromCorners: %v", err)
	}
	for i := range src {
		x, y, ok := h.Apply(src[i][0], src[i][1])
		if !ok {
			t.Fatalf("corner %d mapped to infinity", i)
		}
		if math.Abs(x-dst[i][0]) > 1e-6 || math.Abs(y-dst[i][1]) > 1e-6 {
			t.Errorf("corner %d -> (%v, %v), want (%v, %v)", i, x, y, dst[i][0], dst[i][1])
		}
	}
}

func TestFromCorners_Degenerate(t *testing.T) {
	// All source corners on one line.
	src := [4]f64.Vec2{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	dst := [4]f64.Vec2{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

	if _, err := FromCorners(src, dst); !errors.Is(err, ErrDegenerate) {
		t.Errorf("FromCorners(collinear) error = %v, want ErrDegenerate", err)
	}
}

func TestInvert_RoundTrip(t *testing.T) {
	h := Homography{1.2, 0.1, 5, -0.05, 0.9, -3, 0.001, 0.0005, 1}
	inv, err := h.Invert()
	if err != nil {
		t.Fatalf("Invert: %v", err)
	}
	x, y, _ := h.Apply(17, 23)
	bx, by, _ := inv.Apply(x, y)
	if math.Abs(bx-17) > 1e-9 || math.Abs(by-23) > 1e-9 {
		t.Errorf("round trip = (%v, %v), want (17, 23)", bx, by)
	}
}
