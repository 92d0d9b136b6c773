package artifact

import (
	"math"

	"gonum.org/v1/gonum/interp"
)

// SplineOptions controls RandSpline.
type SplineOptions struct {
	// Handles are used verbatim when set; NPoints, Start and End are then
	// ignored.
	Handles []Point `toml:"handles,omitempty" yaml:"handles,omitempty"`

	// NPoints is the number of random handle points.
	NPoints int `toml:"n_points" yaml:"n_points"`

	// Start pins the first handle to an image border.
	Start Edge `toml:"start_edge" yaml:"start_edge"`

	// End pins the last handle. Relative edges fall back to a random
	// border when Start is EdgeNone.
	End Edge `toml:"end_edge" yaml:"end_edge"`
}

// RandSpline builds a path through handle points sampled at unit
// arc-length steps with a monotone cubic (Fritsch-Butland) interpolant.
//
// Random handles are integer points with x in [0, W-2] and y in [0, H-2];
// every x is drawn before any y. The start edge is drawn next, then the
// end edge.
func RandSpline(size Size, rng *Rand, opts SplineOptions) ([]Point, error) {
	if opts.NPoints < 0 {
		return nil, invalidf("spline", "negative handle count %d", opts.NPoints)
	}
	pts := opts.Handles
	if len(pts) == 0 {
		pts = randHandles(size, rng, opts)
	}

	handles := make([]Point, 0, len(pts))
	for i, p := range pts {
		if i > 0 && p == handles[len(handles)-1] {
			continue
		}
		handles = append(handles, p)
	}
	if len(handles) < 2 {
		return nil, invalidf("spline", "need at least 2 distinct handle points, have %d", len(handles))
	}

	arc := make([]float64, len(handles))
	xs := make([]float64, len(handles))
	ys := make([]float64, len(handles))
	for i, p := range handles {
		xs[i], ys[i] = p.X, p.Y
		if i > 0 {
			arc[i] = arc[i-1] + p.Distance(handles[i-1])
		}
	}

	fx, fy := newInterpolant(len(handles)), newInterpolant(len(handles))
	if err := fx.Fit(arc, xs); err != nil {
		return nil, invalidf("spline", "%v", err)
	}
	if err := fy.Fit(arc, ys); err != nil {
		return nil, invalidf("spline", "%v", err)
	}

	n := int(math.Floor(arc[len(arc)-1])) + 1
	path := make([]Point, n)
	for i := range path {
		s := float64(i)
		path[i] = Point{X: fx.Predict(s), Y: fy.Predict(s)}
	}

	Logger().Debug("spline", "handles", len(handles), "samples", n)
	return path, nil
}

func newInterpolant(n int) interp.FittablePredictor {
	if n == 2 {
		return &interp.PiecewiseLinear{}
	}
	return &interp.FritschButland{}
}

func randHandles(size Size, rng *Rand, opts SplineOptions) []Point {
	n := opts.NPoints
	pts := make([]Point, n)
	if n == 0 {
		return pts
	}
	for i := range pts {
		pts[i].X = float64(rng.IntRange(0, size.Width-1))
	}
	for i := range pts {
		pts[i].Y = float64(rng.IntRange(0, size.Height-1))
	}

	start := -1
	switch {
	case opts.Start == EdgeRandom:
		start = rng.IntRange(0, 4)
	case opts.Start.absolute() >= 0:
		start = opts.Start.absolute()
	}
	if start >= 0 {
		pin(&pts[0], size, start)
	}

	end := -1
	switch {
	case opts.End.absolute() >= 0:
		end = opts.End.absolute()
	case opts.End.relative() < 0 && start >= 0:
		end = (opts.End.relative() + start + 4) % 4
	case opts.End == EdgeRandom || opts.End.relative() < 0:
		end = rng.IntRange(0, 4)
	}
	if end >= 0 {
		pin(&pts[n-1], size, end)
	}
	return pts
}

// pin moves p onto border b: x for left/right, y for top/bottom.
func pin(p *Point, size Size, b int) {
	if b%2 == 0 {
		p.X = float64(b/2) * float64(size.Width-1)
	} else {
		p.Y = float64(b/2) * float64(size.Height-1)
	}
}
