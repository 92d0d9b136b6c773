package artifact

import (
	"image"
	"image/color"
	"image/draw"
)

// RGB is an 8-bit color triple.
type RGB [3]uint8

// Size is a (width, height) pair.
type Size struct {
	Width, Height int
}

// Pixels returns Width*Height.
func (s Size) Pixels() int { return s.Width * s.Height }

// Image is an 8-bit RGB raster stored row-major, 3 bytes per pixel.
//
// Image implements image.Image so it can be handed to any encoder.
// Generators in this package never mutate an Image they receive.
type Image struct {
	width  int
	height int
	pix    []uint8
}

// NewImage creates a black image with the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*3),
	}
}

// NewUniform creates an image filled with a single color.
func NewUniform(width, height int, c RGB) *Image {
	img := NewImage(width, height)
	for i := 0; i < len(img.pix); i += 3 {
		img.pix[i+0] = c[0]
		img.pix[i+1] = c[1]
		img.pix[i+2] = c[2]
	}
	return img
}

// FromImage converts any image.Image to an RGB Image. Alpha is dropped.
func FromImage(src image.Image) *Image {
	if im, ok := src.(*Image); ok {
		return im.Clone()
	}
	b := src.Bounds()
	img := NewImage(b.Dx(), b.Dy())

	rgba, ok := src.(*image.NRGBA)
	if !ok {
		rgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)
	}
	for y := 0; y < img.height; y++ {
		row := rgba.Pix[y*rgba.Stride:]
		out := img.pix[y*img.width*3:]
		for x := 0; x < img.width; x++ {
			out[x*3+0] = row[x*4+0]
			out[x*3+1] = row[x*4+1]
			out[x*3+2] = row[x*4+2]
		}
	}
	return img
}

// ToNRGBA returns an opaque *image.NRGBA copy.
func (im *Image) ToNRGBA() *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, im.width, im.height))
	for i, j := 0, 0; i < len(im.pix); i, j = i+3, j+4 {
		out.Pix[j+0] = im.pix[i+0]
		out.Pix[j+1] = im.pix[i+1]
		out.Pix[j+2] = im.pix[i+2]
		out.Pix[j+3] = 0xff
	}
	return out
}

// Width returns the width of the image.
func (im *Image) Width() int { return im.width }

// Height returns the height of the image.
func (im *Image) Height() int { return im.height }

// Size returns the image dimensions.
func (im *Image) Size() Size { return Size{im.width, im.height} }

// Pix returns the raw RGB bytes. The slice aliases the image.
func (im *Image) Pix() []uint8 { return im.pix }

// RGBAt returns the color at (x, y), or black outside the image.
func (im *Image) RGBAt(x, y int) RGB {
	if x < 0 || x >= im.width || y < 0 || y >= im.height {
		return RGB{}
	}
	i := (y*im.width + x) * 3
	return RGB{im.pix[i], im.pix[i+1], im.pix[i+2]}
}

// SetRGB sets the color at (x, y). Out-of-bounds writes are ignored.
func (im *Image) SetRGB(x, y int, c RGB) {
	if x < 0 || x >= im.width || y < 0 || y >= im.height {
		return
	}
	i := (y*im.width + x) * 3
	im.pix[i+0] = c[0]
	im.pix[i+1] = c[1]
	im.pix[i+2] = c[2]
}

// Clone returns a deep copy.
func (im *Image) Clone() *Image {
	out := &Image{width: im.width, height: im.height, pix: make([]uint8, len(im.pix))}
	copy(out.pix, im.pix)
	return out
}

// Equal reports whether two images have the same size and bytes.
func (im *Image) Equal(other *Image) bool {
	if im.width != other.width || im.height != other.height {
		return false
	}
	for i := range im.pix {
		if im.pix[i] != other.pix[i] {
			return false
		}
	}
	return true
}

// Mean returns the per-channel mean color.
func (im *Image) Mean() [3]float64 {
	var sum [3]float64
	n := im.width * im.height
	if n == 0 {
		return sum
	}
	for i := 0; i < len(im.pix); i += 3 {
		sum[0] += float64(im.pix[i+0])
		sum[1] += float64(im.pix[i+1])
		sum[2] += float64(im.pix[i+2])
	}
	for c := range sum {
		sum[c] /= float64(n)
	}
	return sum
}

// ColorModel implements image.Image.
func (im *Image) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image.
func (im *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, im.width, im.height)
}

// At implements image.Image.
func (im *Image) At(x, y int) color.Color {
	c := im.RGBAt(x, y)
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 0xff}
}

func checkImage(op string, img *Image) error {
	if img == nil {
		return invalidf(op, "nil image")
	}
	if img.width <= 0 || img.height <= 0 {
		return invalidf(op, "empty image %dx%d", img.width, img.height)
	}
	return nil
}
