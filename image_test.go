package artifact

import (
	"image"
	"image/color"
	"testing"
)

func TestImageSetGet(t *testing.T) {
	img := NewImage(4, 3)
	img.SetRGB(2, 1, RGB{1, 2, 3})
	if got := img.RGBAt(2, 1); got != (RGB{1, 2, 3}) {
		t.Errorf("RGBAt(2, 1) = %v, want {1 2 3}", got)
	}

	// Out-of-bounds accesses are ignored.
	img.SetRGB(-1, 0, RGB{9, 9, 9})
	img.SetRGB(4, 0, RGB{9, 9, 9})
	if got := img.RGBAt(10, 10); got != (RGB{}) {
		t.Errorf("RGBAt(10, 10) = %v, want black", got)
	}
}

func TestImageImplementsImage(t *testing.T) {
	var _ image.Image = (*Image)(nil)

	img := NewUniform(2, 2, RGB{10, 20, 30})
	if got := img.Bounds(); got != image.Rect(0, 0, 2, 2) {
		t.Errorf("Bounds() = %v", got)
	}
	want := color.RGBA{10, 20, 30, 255}
	if got := img.At(1, 1); got != want {
		t.Errorf("At(1, 1) = %v, want %v", got, want)
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 8, 7))
	src.Set(6, 6, color.RGBA{200, 100, 50, 255})

	img := FromImage(src)
	if img.Width() != 3 || img.Height() != 2 {
		t.Fatalf("size = %dx%d, want 3x2", img.Width(), img.Height())
	}
	if got := img.RGBAt(1, 1); got != (RGB{200, 100, 50}) {
		t.Errorf("RGBAt(1, 1) = %v, want {200 100 50}", got)
	}
}

func TestFromImageGray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 1))
	src.SetGray(1, 0, color.Gray{Y: 77})
	if got := FromImage(src).RGBAt(1, 0); got != (RGB{77, 77, 77}) {
		t.Errorf("RGBAt(1, 0) = %v, want {77 77 77}", got)
	}
}

func TestToNRGBARoundTrip(t *testing.T) {
	img := NewImage(3, 2)
	img.SetRGB(0, 0, RGB{1, 2, 3})
	img.SetRGB(2, 1, RGB{250, 128, 7})

	back := FromImage(img.ToNRGBA())
	if !back.Equal(img) {
		t.Error("NRGBA round trip changed the image")
	}
}

func TestImageCloneIndependent(t *testing.T) {
	img := NewUniform(2, 2, RGB{5, 5, 5})
	c := img.Clone()
	c.SetRGB(0, 0, RGB{6, 6, 6})
	if img.RGBAt(0, 0) != (RGB{5, 5, 5}) {
		t.Error("Clone shares pixel storage")
	}
}

func TestImageMean(t *testing.T) {
	img := NewImage(2, 1)
	img.SetRGB(0, 0, RGB{0, 100, 255})
	img.SetRGB(1, 0, RGB{100, 100, 1})
	want := [3]float64{50, 100, 128}
	if got := img.Mean(); got != want {
		t.Errorf("Mean() = %v, want %v", got, want)
	}
}

func TestMaskFromRegion(t *testing.T) {
	r := NewRegion(3, 1)
	r.data[1] = true
	m := MaskFromRegion(r, 0.5)
	if m.At(0, 0) != 0 || m.At(1, 0) != 127 {
		t.Errorf("mask = %v, want [0 127 0]", m.Data())
	}

	r2 := NewRegion(3, 1)
	r2.data[2] = true
	m.SetRegion(r2, 1)
	if m.At(2, 0) != 255 || m.At(1, 0) != 127 {
		t.Errorf("SetRegion result = %v", m.Data())
	}
}
