package artifact

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	// minDensity floors decomposed densities before recomposition.
	minDensity = 1e-5
	white      = 255.0
)

// StainBasis holds three stain color vectors, each component in (0,1].
// At most one vector may be all zeros; it is completed orthogonally to
// the other two in optical-density space.
type StainBasis [3][3]float64

// DefaultStainBasis is eosin, hematoxylin and a null residual.
var DefaultStainBasis = StainBasis{
	{0.91, 0.38, 0.71},
	{0.39, 0.47, 0.85},
	{0, 0, 0},
}

// Decomposition is an image expressed as three optical-density maps over a
// completed stain basis. Density is row-major per basis vector.
type Decomposition struct {
	Width, Height int
	Basis         StainBasis
	Density       [3][]float64

	// Floored counts pixels with at least one density raised to the
	// 1e-5 floor: white pixels and hues outside the cone spanned by the
	// basis.
	Floored int
}

// Decompose projects every pixel onto the optical densities of basis:
//
//	log(p/255) = d0*log(b0) + d1*log(b1) + d2*log(b2)
//
// Pixels are floored at 1/255 and densities at 1e-5.
func Decompose(img *Image, basis StainBasis) (*Decomposition, error) {
	if err := checkImage("decompose", img); err != nil {
		return nil, err
	}
	full, err := completeBasis(basis)
	if err != nil {
		return nil, err
	}

	od := mat.NewDense(3, 3, nil)
	for j, v := range full {
		for i, c := range v {
			od.Set(i, j, math.Log(c))
		}
	}
	var inv mat.Dense
	if err := inv.Inverse(od); err != nil {
		return nil, &DecompositionError{Reason: fmt.Sprintf("basis is singular: %v", err)}
	}
	var m [3][3]float64
	for i := range 3 {
		for j := range 3 {
			m[i][j] = inv.At(i, j)
		}
	}

	n := img.width * img.height
	d := &Decomposition{Width: img.width, Height: img.height, Basis: full}
	for k := range d.Density {
		d.Density[k] = make([]float64, n)
	}
	for p := range n {
		var l [3]float64
		for c := range l {
			l[c] = math.Log(float64(max(img.pix[p*3+c], 1)) / white)
		}
		floored := false
		for k := range 3 {
			v := m[k][0]*l[0] + m[k][1]*l[1] + m[k][2]*l[2]
			if v < minDensity {
				v, floored = minDensity, true
			}
			d.Density[k][p] = v
		}
		if floored {
			d.Floored++
		}
	}
	if d.Floored > 0 {
		Logger().Warn("stain: densities floored",
			"pixels", d.Floored, "total", n)
	}
	return d, nil
}

// Recompose rebuilds an RGB image with each density scaled by its factor:
//
//	out = 255 * b0^(d0*f0) * b1^(d1*f1) * b2^(d2*f2)
func (d *Decomposition) Recompose(factors [3]float64) *Image {
	return d.recompose(factors, [3]bool{true, true, true})
}

// Component rebuilds the image from a single basis vector.
func (d *Decomposition) Component(k int, factor float64) *Image {
	var f [3]float64
	var use [3]bool
	f[k], use[k] = factor, true
	return d.recompose(f, use)
}

func (d *Decomposition) recompose(factors [3]float64, use [3]bool) *Image {
	var logb [3][3]float64
	for k, v := range d.Basis {
		for c := range v {
			logb[k][c] = math.Log(v[c])
		}
	}
	out := NewImage(d.Width, d.Height)
	for p := range d.Width * d.Height {
		for c := range 3 {
			var e float64
			for k := range 3 {
				if use[k] {
					e += d.Density[k][p] * factors[k] * logb[k][c]
				}
			}
			out.pix[p*3+c] = uint8(min(max(math.Round(white*math.Exp(e)), 0), 255))
		}
	}
	return out
}

// completeBasis validates basis and replaces a zero vector with
// exp(n), where n is the unit normal of the other two log vectors
// oriented to have a negative component sum.
func completeBasis(b StainBasis) (StainBasis, error) {
	null := -1
	for k, v := range b {
		if v == [3]float64{} {
			if null >= 0 {
				return b, &DecompositionError{Reason: "more than one null basis vector"}
			}
			null = k
			continue
		}
		for _, c := range v {
			if c <= 0 || c > 1 {
				return b, &DecompositionError{Reason: fmt.Sprintf("basis component %g outside (0,1]", c)}
			}
		}
	}
	if null < 0 {
		return b, nil
	}

	var logs [][3]float64
	for k, v := range b {
		if k != null {
			logs = append(logs, [3]float64{math.Log(v[0]), math.Log(v[1]), math.Log(v[2])})
		}
	}
	a, c := logs[0], logs[1]
	n := []float64{
		a[1]*c[2] - a[2]*c[1],
		a[2]*c[0] - a[0]*c[2],
		a[0]*c[1] - a[1]*c[0],
	}
	norm := floats.Norm(n, 2)
	if norm == 0 {
		return b, &DecompositionError{Reason: "basis vectors are parallel"}
	}
	floats.Scale(1/norm, n)
	if floats.Sum(n) > 0 {
		floats.Scale(-1, n)
	}
	for i := range n {
		b[null][i] = math.Exp(n[i])
	}
	return b, nil
}

// AdjustStain rescales the stain densities of img and returns the result
// together with the three single-stain reconstructions.
//
// Densities below 1e-5 are floored, as Decompose documents. Hues outside
// the cone spanned by the basis therefore do not round-trip, even with
// factors [1, 1, 1].
func AdjustStain(img *Image, basis StainBasis, factors [3]float64) (*Image, [3]*Image, error) {
	d, err := Decompose(img, basis)
	if err != nil {
		return nil, [3]*Image{}, err
	}
	var parts [3]*Image
	for k := range parts {
		parts[k] = d.Component(k, factors[k])
	}
	return d.Recompose(factors), parts, nil
}

// StainOptions controls AddStain.
type StainOptions struct {
	// Factors fixes the per-stain adjustment. When nil each factor is
	// U(ScaleMin[i], ScaleMax[i]) raised to a random power of -1 or +1.
	Factors *[3]float64 `toml:"factors,omitempty" yaml:"factors,omitempty"`

	ScaleMin [3]float64 `toml:"scale_min" yaml:"scale_min"`
	ScaleMax [3]float64 `toml:"scale_max" yaml:"scale_max"`

	Basis StainBasis `toml:"basis" yaml:"basis"`
}

// DefaultStainOptions returns the eosin/hematoxylin basis with up to 3x
// stain shifts.
func DefaultStainOptions() StainOptions {
	return StainOptions{
		ScaleMin: [3]float64{1.25, 1.25, 1},
		ScaleMax: [3]float64{3, 3, 1.5},
		Basis:    DefaultStainBasis,
	}
}

// AddStain shifts stain intensities by random or fixed factors.
func AddStain(img *Image, seed uint32, opts StainOptions) (*Image, error) {
	var f [3]float64
	if opts.Factors != nil {
		f = *opts.Factors
	} else {
		rng := NewRand(seed)
		for i := range f {
			f[i] = math.Pow(rng.Uniform(opts.ScaleMin[i], opts.ScaleMax[i]), rng.Sign())
		}
	}
	Logger().Debug("stain", "seed", seed, "factors", f)

	d, err := Decompose(img, opts.Basis)
	if err != nil {
		return nil, err
	}
	return d.Recompose(f), nil
}
