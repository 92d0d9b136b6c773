package artifact

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSV is an 8-bit hue/saturation/value triple. Hue spans the full circle
// over 0..255.
type HSV [3]uint8

// RGBToHSV converts an 8-bit RGB color to 8-bit HSV. Components are
// truncated, and V is exactly the largest RGB channel.
func RGBToHSV(c RGB) HSV {
	h, s, _ := colorful.Color{
		R: float64(c[0]) / 255,
		G: float64(c[1]) / 255,
		B: float64(c[2]) / 255,
	}.Hsv()
	return HSV{
		quantize(h * 255 / 360),
		quantize(s * 255),
		max(c[0], c[1], c[2]),
	}
}

// RGB converts back to 8-bit RGB, rounding each channel.
func (h HSV) RGB() RGB {
	r, g, b := colorful.Hsv(
		float64(h[0])*360/255,
		float64(h[1])/255,
		float64(h[2])/255,
	).Clamped().RGB255()
	return RGB{r, g, b}
}

// ToHSV returns the image as a row-major slice of HSV triples.
func (im *Image) ToHSV() []HSV {
	out := make([]HSV, im.width*im.height)
	for i := range out {
		p := im.pix[i*3:]
		out[i] = RGBToHSV(RGB{p[0], p[1], p[2]})
	}
	return out
}

// FromHSV builds an image from a row-major slice of HSV triples.
func FromHSV(width, height int, px []HSV) *Image {
	img := NewImage(width, height)
	for i, h := range px[:width*height] {
		c := h.RGB()
		copy(img.pix[i*3:i*3+3], c[:])
	}
	return img
}

func quantize(v float64) uint8 {
	return uint8(min(max(math.Floor(v), 0), 255))
}

// scaleChannel multiplies an 8-bit channel, truncating and saturating at 255.
func scaleChannel(v uint8, f float64) uint8 {
	return quantize(float64(v) * f)
}
