package artifact

// Mask is an 8-bit alpha raster used for compositing.
// Values range from 0 (base shows through) to 255 (layer fully covers).
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask returns a zeroed mask.
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// MaskFromRegion returns a mask holding alphaByte(alpha) inside r and 0
// elsewhere.
func MaskFromRegion(r *Region, alpha float64) *Mask {
	m := NewMask(r.width, r.height)
	m.SetRegion(r, alpha)
	return m
}

// alphaByte maps alpha in [0,1] to 0..255, truncating.
func alphaByte(alpha float64) uint8 {
	return quantize(alpha * 255)
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.height }

// At returns the mask value at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set sets the mask value at (x, y).
// Does nothing for coordinates outside the mask bounds.
func (m *Mask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
}

// SetRegion overwrites every pixel inside r with alphaByte(alpha).
func (m *Mask) SetRegion(r *Region, alpha float64) {
	v := alphaByte(alpha)
	for i, in := range r.data {
		if in {
			m.data[i] = v
		}
	}
}

// Fill sets every pixel to value.
func (m *Mask) Fill(value uint8) {
	for i := range m.data {
		m.data[i] = value
	}
}

// Clone returns a deep copy of the mask.
func (m *Mask) Clone() *Mask {
	return &Mask{width: m.width, height: m.height, data: append([]uint8(nil), m.data...)}
}

// Data returns the row-major backing slice.
func (m *Mask) Data() []uint8 {
	return m.data
}
