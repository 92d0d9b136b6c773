package warp

import (
	"math"

	"github.com/gogpu/artifact/internal/parallel"
)

// RGB is an interleaved 8-bit, 3-channel raster.
type RGB struct {
	Pix    []uint8
	Width  int
	Height int
}

// Perspective resamples src into a width×height raster through forward,
// which maps source coordinates to destination coordinates. Each
// destination pixel is read from forward⁻¹(x, y) with bilinear weights;
// samples falling outside src contribute black.
func Perspective(src RGB, forward Homography, width, height int) (RGB, error) {
	inv, err := forward.Invert()
	if err != nil {
		return RGB{}, err
	}

	dst := RGB{Pix: make([]uint8, width*height*3), Width: width, Height: height}
	parallel.Rows(height, func(y int) {
		row := dst.Pix[y*width*3 : (y+1)*width*3]
		for x := range width {
			sx, sy, ok := inv.Apply(float64(x), float64(y))
			if !ok {
				continue
			}
			sampleBilinear(src, sx, sy, row[x*3:x*3+3])
		}
	})
	return dst, nil
}

// sampleBilinear writes the constant-border bilinear sample at (sx, sy).
func sampleBilinear(src RGB, sx, sy float64, out []uint8) {
	if sx <= -1 || sy <= -1 || sx >= float64(src.Width) || sy >= float64(src.Height) {
		return
	}
	x0 := int(math.Floor(sx))
	y0 := int(math.Floor(sy))
	tx := sx - float64(x0)
	ty := sy - float64(y0)

	weights := [4]float64{(1 - tx) * (1 - ty), tx * (1 - ty), (1 - tx) * ty, tx * ty}
	xs := [4]int{x0, x0 + 1, x0, x0 + 1}
	ys := [4]int{y0, y0, y0 + 1, y0 + 1}

	var acc [3]float64
	for i := range 4 {
		px, py := xs[i], ys[i]
		if px < 0 || py < 0 || px >= src.Width || py >= src.Height {
			continue
		}
		off := (py*src.Width + px) * 3
		for c := range 3 {
			acc[c] += weights[i] * float64(src.Pix[off+c])
		}
	}
	for c := range 3 {
		out[c] = uint8(min(math.Round(acc[c]), 255))
	}
}

// PadSymmetric returns src mirrored by pad pixels on every side, repeating
// the border sample (…cba|abc…|cba…). Pads larger than the raster keep
// reflecting.
func PadSymmetric(src RGB, pad int) RGB {
	w, h := src.Width+2*pad, src.Height+2*pad
	dst := RGB{Pix: make([]uint8, w*h*3), Width: w, Height: h}
	parallel.Rows(h, func(y int) {
		sy := symmetric(y-pad, src.Height)
		for x := range w {
			sx := symmetric(x-pad, src.Width)
			copy(dst.Pix[(y*w+x)*3:(y*w+x)*3+3], src.Pix[(sy*src.Width+sx)*3:])
		}
	})
	return dst
}

// symmetric folds i into [0, n) with period 2n, repeating edge samples.
func symmetric(i, n int) int {
	period := 2 * n
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - 1 - i
	}
	return i
}
