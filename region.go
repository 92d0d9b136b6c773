package artifact

import (
	"gonum.org/v1/gonum/floats"

	"github.com/gogpu/artifact/internal/edt"
	"github.com/gogpu/artifact/internal/filter"
)

// jitterKernel is the side of the box filter that smooths jittered
// distance fields.
const jitterKernel = 5

// Field is a float64 raster, row-major.
type Field struct {
	width  int
	height int
	data   []float64
}

// NewField creates a zero field.
func NewField(width, height int) *Field {
	return &Field{width: width, height: height, data: make([]float64, width*height)}
}

// Width returns the field width.
func (f *Field) Width() int { return f.width }

// Height returns the field height.
func (f *Field) Height() int { return f.height }

// Data returns the underlying values.
func (f *Field) Data() []float64 { return f.data }

// At returns the value at (x, y). Coordinates are not checked.
func (f *Field) At(x, y int) float64 { return f.data[y*f.width+x] }

// Within returns the region where the value is <= t.
func (f *Field) Within(t float64) *Region {
	return f.threshold(func(v float64) bool { return v <= t })
}

// AtLeast returns the region where the value is >= t.
func (f *Field) AtLeast(t float64) *Region {
	return f.threshold(func(v float64) bool { return v >= t })
}

// Band returns the region where lo < value <= hi.
func (f *Field) Band(lo, hi float64) *Region {
	return f.threshold(func(v float64) bool { return v > lo && v <= hi })
}

func (f *Field) threshold(in func(float64) bool) *Region {
	r := NewRegion(f.width, f.height)
	for i, v := range f.data {
		r.data[i] = in(v)
	}
	return r
}

// Normalize returns a copy rescaled to [0,1] by min-max. A flat field maps
// to all zeros.
func (f *Field) Normalize() *Field {
	out := NewField(f.width, f.height)
	lo, hi := floats.Min(f.data), floats.Max(f.data)
	span := hi - lo
	if span == 0 {
		return out
	}
	for i, v := range f.data {
		out.data[i] = (v - lo) / span
	}
	return out
}

// Region is a boolean raster, row-major.
type Region struct {
	width  int
	height int
	data   []bool
}

// NewRegion creates an empty region.
func NewRegion(width, height int) *Region {
	return &Region{width: width, height: height, data: make([]bool, width*height)}
}

// Width returns the region width.
func (r *Region) Width() int { return r.width }

// Height returns the region height.
func (r *Region) Height() int { return r.height }

// At reports whether (x, y) is inside. Out-of-bounds pixels are outside.
func (r *Region) At(x, y int) bool {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return false
	}
	return r.data[y*r.width+x]
}

// Count returns the number of pixels inside.
func (r *Region) Count() int {
	n := 0
	for _, in := range r.data {
		if in {
			n++
		}
	}
	return n
}

// And returns the intersection of r and o.
func (r *Region) And(o *Region) *Region {
	out := NewRegion(r.width, r.height)
	for i := range out.data {
		out.data[i] = r.data[i] && o.data[i]
	}
	return out
}

// Contains reports whether every pixel inside o is also inside r.
func (r *Region) Contains(o *Region) bool {
	for i, in := range o.data {
		if in && !r.data[i] {
			return false
		}
	}
	return true
}

// DistanceToPoints returns the Euclidean distance from every pixel to
// the nearest point in pts. Points are clamped into the raster; round picks
// half-to-even rounding over truncation when snapping them to pixels.
func DistanceToPoints(size Size, pts []Point, round bool) *Field {
	seed := make([]bool, size.Pixels())
	for _, p := range pts {
		x, y := p.pixel(size, round)
		seed[y*size.Width+x] = true
	}
	return &Field{width: size.Width, height: size.Height, data: edt.Transform(seed, size.Width, size.Height)}
}

// DistanceInside returns, for every pixel inside r, the distance to the
// nearest pixel outside r. Pixels outside r are 0.
func DistanceInside(r *Region) *Field {
	seed := make([]bool, len(r.data))
	for i, in := range r.data {
		seed[i] = !in
	}
	return &Field{width: r.width, height: r.height, data: edt.Transform(seed, r.width, r.height)}
}

// JitterInt adds integer noise drawn from [-amp, amp) to every pixel in
// row-major order, then smooths with a 5x5 box filter.
func JitterInt(f *Field, rng *Rand, amp int) *Field {
	return jitter(f, func() float64 { return float64(rng.IntRange(-amp, amp)) })
}

// JitterUniform adds continuous noise drawn from [-amp, amp) to every pixel
// in row-major order, then smooths with a 5x5 box filter.
func JitterUniform(f *Field, rng *Rand, amp float64) *Field {
	return jitter(f, func() float64 { return rng.Uniform(-amp, amp) })
}

func jitter(f *Field, noise func() float64) *Field {
	p := filter.NewPlane(f.width, f.height, 1)
	for i, v := range f.data {
		p.Data[i] = v + noise()
	}
	out := filter.Box(p, jitterKernel)
	return &Field{width: f.width, height: f.height, data: out.Data}
}
