package artifact

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"

	"github.com/gogpu/artifact/internal/parallel"
)

// FieldOptions controls RandGaussField.
type FieldOptions struct {
	// NNorms is the number of Gaussians. Ignored when Centers is set.
	NNorms int

	// MaxCov bounds each covariance and scales the summed field.
	MaxCov float64

	// Centers places the Gaussians explicitly instead of at random.
	Centers []Point

	// ZeroToOne evaluates on a [0,1]x[0,1] grid instead of pixel
	// coordinates.
	ZeroToOne bool

	// RangeX and RangeY bound the random centers. They default to the
	// grid extent and may reach beyond it.
	RangeX, RangeY *[2]float64

	MinCovScale     float64
	MinDiagCovScale float64
	MaxCrCovScale   float64
}

type gaussian struct {
	dist  *distmv.Normal
	scale float64
}

// RandGaussField sums randomized anisotropic 2D Gaussian densities over a
// raster. Each density is weighted by 2*pi times its covariance bound, so
// peak heights stay comparable across spreads, and the sum is multiplied by
// MaxCov.
//
// Draw order: all center x, all center y, then per Gaussian the covariance
// bound, both diagonal entries and the off-diagonal entry.
func RandGaussField(size Size, rng *Rand, opts FieldOptions) (*Field, error) {
	if opts.Centers == nil && opts.NNorms < 0 {
		return nil, invalidf("gaussian field", "negative gaussian count %d", opts.NNorms)
	}
	xs, ys := fieldGrid(size.Width, opts.ZeroToOne), fieldGrid(size.Height, opts.ZeroToOne)

	rx, ry := [2]float64{0, float64(size.Width)}, [2]float64{0, float64(size.Height)}
	if opts.ZeroToOne {
		rx, ry = [2]float64{0, 1}, [2]float64{0, 1}
	}
	if opts.RangeX != nil {
		rx = *opts.RangeX
	}
	if opts.RangeY != nil {
		ry = *opts.RangeY
	}

	centers := opts.Centers
	if centers == nil {
		centers = make([]Point, opts.NNorms)
		for i := range centers {
			centers[i].X = rng.Uniform(rx[0], rx[1])
		}
		for i := range centers {
			centers[i].Y = rng.Uniform(ry[0], ry[1])
		}
	}

	gs := make([]gaussian, len(centers))
	for i, c := range centers {
		bound := rng.Uniform(opts.MaxCov*opts.MinCovScale, opts.MaxCov)
		d0 := rng.Uniform(bound*opts.MinDiagCovScale, bound)
		d1 := rng.Uniform(bound*opts.MinDiagCovScale, bound)
		cr := math.Sqrt(d0*d1) * opts.MaxCrCovScale
		off := rng.Uniform(-cr, cr)

		cov := mat.NewSymDense(2, []float64{d0, off, off, d1})
		dist, ok := distmv.NewNormal([]float64{c.X, c.Y}, cov, nil)
		if !ok {
			return nil, invalidf("gauss field", "covariance [[%g %g] [%g %g]] is not positive definite", d0, off, off, d1)
		}
		gs[i] = gaussian{dist: dist, scale: bound * 2 * math.Pi}
	}

	f := NewField(size.Width, size.Height)
	parallel.Rows(size.Height, func(y int) {
		pos := make([]float64, 2)
		row := f.data[y*size.Width : (y+1)*size.Width]
		for x := range row {
			pos[0], pos[1] = xs[x], ys[y]
			var sum float64
			for _, g := range gs {
				sum += g.dist.Prob(pos) * g.scale
			}
			row[x] = sum * opts.MaxCov
		}
	})

	Logger().Debug("gauss field", "norms", len(gs), "maxCov", opts.MaxCov, "zeroToOne", opts.ZeroToOne)
	return f, nil
}

// fieldGrid returns pixel coordinates 0..n-1, or n evenly spaced values
// over [0,1] with the last one exactly 1.
func fieldGrid(n int, unit bool) []float64 {
	g := make([]float64, n)
	if !unit {
		for i := range g {
			g[i] = float64(i)
		}
		return g
	}
	if n == 1 {
		return g
	}
	step := 1 / float64(n-1)
	for i := range g {
		g[i] = float64(i) * step
	}
	g[n-1] = 1
	return g
}
