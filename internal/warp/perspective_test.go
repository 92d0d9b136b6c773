package warp

import "testing"

func gradient(w, h int) RGB {
	img := RGB{Pix: make([]uint8, w*h*3), Width: w, Height: h}
	for y := range h {
		for x := range w {
			i := (y*w + x) * 3
			img.Pix[i] = uint8(x * 10)
			img.Pix[i+1] = uint8(y * 10)
			img.Pix[i+2] = 128
		}
	}
	return img
}

func TestPerspective_Identity(t *testing.T) {
	src := gradient(8, 6)
	got, err := Perspective(src, Identity(), 8, 6)
	if err != nil {
		t.Fatalf("Perspective: %v", err)
	}
	for i := range src.Pix {
		if got.Pix[i] != src.Pix[i] {
			t.Fatalf("Pix[%d] = %d, want %d", i, got.Pix[i], src.Pix[i])
		}
	}
}

func TestPerspective_TranslationAndBorder(t *testing.T) {
	src := gradient(8, 6)
	// Forward map shifts the source right by 2: dst(x) = src(x-2).
	shift := Homography{1, 0, 2, 0, 1, 0, 0, 0, 1}
	got, err := Perspective(src, shift, 8, 6)
	if err != nil {
		t.Fatalf("Perspective: %v", err)
	}

	for y := range 6 {
		for x := range 8 {
			i := (y*8 + x) * 3
			if x < 2 {
				if got.Pix[i] != 0 || got.Pix[i+1] != 0 || got.Pix[i+2] != 0 {
					t.Errorf("(%d,%d) = %v, want black border", x, y, got.Pix[i:i+3])
				}
				continue
			}
			j := (y*8 + x - 2) * 3
			if got.Pix[i] != src.Pix[j] || got.Pix[i+1] != src.Pix[j+1] {
				t.Errorf("(%d,%d) = %v, want %v", x, y, got.Pix[i:i+3], src.Pix[j:j+3])
			}
		}
	}
}

func TestPerspective_Singular(t *testing.T) {
	if _, err := Perspective(gradient(2, 2), Homography{}, 2, 2); err == nil {
		t.Error("Perspective(zero matrix) should fail")
	}
}

func TestPadSymmetric(t *testing.T) {
	src := RGB{Pix: []uint8{1, 0, 0, 2, 0, 0, 3, 0, 0}, Width: 3, Height: 1}
	got := PadSymmetric(src, 4)

	if got.Width != 11 || got.Height != 9 {
		t.Fatalf("size = %dx%d, want 11x9", got.Width, got.Height)
	}
	// Period 6: 1 2 3 3 2 1.
	want := []uint8{3, 3, 2, 1, 1, 2, 3, 3, 2, 1, 1}
	for x, w := range want {
		if got.Pix[x*3] != w {
			t.Errorf("x=%d = %d, want %d", x, got.Pix[x*3], w)
		}
	}
}

func TestSymmetric(t *testing.T) {
	tests := []struct{ i, n, want int }{
		{0, 4, 0},
		{-1, 4, 0},
		{-2, 4, 1},
		{4, 4, 3},
		{5, 4, 2},
		{8, 4, 0},
		{-9, 4, 0},
	}
	for _, tt := range tests {
		if got := symmetric(tt.i, tt.n); got != tt.want {
			t.Errorf("symmetric(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.want)
		}
	}
}
