package artifact

// SolidLayer returns an image of the given size filled with c.
func SolidLayer(size Size, c RGB) *Image {
	return NewUniform(size.Width, size.Height, c)
}

// Composite blends layer over base through mask and returns a new image:
//
//	out = (layer*a + base*(255-a) + 127) / 255
//
// base, layer and mask must share dimensions.
func Composite(base, layer *Image, mask *Mask) (*Image, error) {
	if base.width != layer.width || base.height != layer.height ||
		base.width != mask.width || base.height != mask.height {
		return nil, invalidf("composite", "size mismatch: base %dx%d, layer %dx%d, mask %dx%d",
			base.width, base.height, layer.width, layer.height, mask.width, mask.height)
	}
	out := base.Clone()
	for i, a := range mask.data {
		switch a {
		case 0:
			continue
		case 255:
			copy(out.pix[i*3:i*3+3], layer.pix[i*3:i*3+3])
			continue
		}
		ai := uint32(a)
		for c := i * 3; c < i*3+3; c++ {
			out.pix[c] = uint8((uint32(layer.pix[c])*ai + uint32(base.pix[c])*(255-ai) + 127) / 255)
		}
	}
	return out, nil
}

// fillRegion paints c into every pixel of im inside r.
func (im *Image) fillRegion(r *Region, c RGB) {
	for i, in := range r.data {
		if in {
			copy(im.pix[i*3:i*3+3], c[:])
		}
	}
}

// rimColor is the image mean scaled per channel, saturated to 8 bits.
func rimColor(mean [3]float64, mult [3]float64) RGB {
	var c RGB
	for i := range c {
		c[i] = quantize(mean[i] * mult[i])
	}
	return c
}
