package artifact

import (
	"math"

	"golang.org/x/image/math/f64"

	"github.com/gogpu/artifact/internal/filter"
	"github.com/gogpu/artifact/internal/warp"
)

// FoldOptions controls AddFold.
type FoldOptions struct {
	// NLayers is the number of folded tissue layers. Values below 1 leave
	// the image unchanged.
	NLayers int `toml:"n_layers" yaml:"n_layers"`

	Path    []Point `toml:"path,omitempty" yaml:"path,omitempty"`
	Handles []Point `toml:"handles,omitempty" yaml:"handles,omitempty"`
	NPoints int     `toml:"n_points" yaml:"n_points"`
	End     Edge    `toml:"end_edge" yaml:"end_edge"`

	// ScaleXY scales the sampling box around the path bounding box center.
	ScaleXY [2]float64 `toml:"scale_xy" yaml:"scale_xy"`

	// ShiftXY fixes the offset of the sampling box. When nil it is drawn
	// per layer from [-W/2, W/2) on both axes.
	ShiftXY *[2]int `toml:"shift_xy,omitempty" yaml:"shift_xy,omitempty"`

	// Width is the fold band width in pixels.
	Width float64 `toml:"width" yaml:"width"`

	// RandEdge roughens the band border.
	RandEdge bool `toml:"rand_edge" yaml:"rand_edge"`

	// SampleSource is the image tissue is sampled from. Defaults to the
	// input image. Must match its size.
	SampleSource *Image `toml:"-" yaml:"-"`
}

// DefaultFoldOptions returns two 200 px layers along an edge-to-edge path.
func DefaultFoldOptions() FoldOptions {
	return FoldOptions{
		NLayers: 2,
		NPoints: 3,
		End:     EdgeOpposite,
		ScaleXY: [2]float64{1, 1},
		Width:   200,
	}
}

// AddFold darkens a band along a random spline by multiplying it with a
// perspective-warped patch of tissue sampled near the band.
//
// Layer k reuses the path and sample source with a generator seeded by
// seed+k, and is applied on top of the previous layer's output.
func AddFold(img *Image, seed uint32, opts FoldOptions) (*Image, error) {
	const op = "fold"
	if err := checkImage(op, img); err != nil {
		return nil, err
	}
	if opts.NLayers < 1 {
		return img.Clone(), nil
	}
	if err := checkNonNegative(op, "width", opts.Width); err != nil {
		return nil, err
	}
	size := img.Size()
	source := img
	if opts.SampleSource != nil {
		if opts.SampleSource.Size() != size {
			return nil, invalidf(op, "sample source %dx%d does not match image %dx%d",
				opts.SampleSource.width, opts.SampleSource.height, size.Width, size.Height)
		}
		source = opts.SampleSource
	}

	rng := NewRand(seed)
	path, err := tracePath(size, rng, seed, opts.Path, SplineOptions{
		Handles: opts.Handles,
		NPoints: opts.NPoints,
		Start:   EdgeRandom,
		End:     opts.End,
	})
	if err != nil {
		return nil, err
	}

	f := &folder{
		size:   size,
		path:   path,
		opts:   opts,
		pad:    max(size.Width, size.Height),
		kernel: 2*int(math.Floor(opts.Width/40)) + 1,
	}
	f.padded = warp.PadSymmetric(warp.RGB{Pix: source.pix, Width: size.Width, Height: size.Height}, f.pad)

	out := img
	for k := range opts.NLayers {
		if k > 0 {
			rng = NewRand(seed + uint32(k))
		}
		if out, err = f.layer(out, rng); err != nil {
			return nil, err
		}
	}
	return out, nil
}

type folder struct {
	size   Size
	path   []Point
	opts   FoldOptions
	pad    int
	kernel int
	padded warp.RGB
}

// layer applies one fold layer to cur. Draw order: shift x and y, four
// corner x offsets, four corner y offsets, then edge jitter.
func (f *folder) layer(cur *Image, rng *Rand) (*Image, error) {
	w := f.size.Width
	var shift [2]float64
	if f.opts.ShiftXY != nil {
		shift = [2]float64{float64(f.opts.ShiftXY[0]), float64(f.opts.ShiftXY[1])}
	} else {
		shift[0] = float64(rng.IntRange(-w/2, w/2))
		shift[1] = float64(rng.IntRange(-w/2, w/2))
	}

	lo, hi := Bounds(f.path)
	hi.X = max(hi.X, lo.X+1)
	hi.Y = max(hi.Y, lo.Y+1)
	center := lo.Add(hi).Mul(0.5)
	half := Point{
		X: (hi.X - lo.X) / 2 * f.opts.ScaleXY[0],
		Y: (hi.Y - lo.Y) / 2 * f.opts.ScaleXY[1],
	}
	box := [2]Point{center.Sub(half), center.Add(half)}
	ext := box[1].Sub(box[0])

	qx, qy := int(ext.X/4), int(ext.Y/4)
	var jx, jy [4]float64
	for i := range jx {
		jx[i] = float64(rng.IntRange(-qx, qx))
	}
	for i := range jy {
		jy[i] = float64(rng.IntRange(-qy, qy))
	}

	bbox := [2]Point{lo, hi}
	pad := float64(f.pad)
	var src, dst [4]f64.Vec2
	for i := range 4 {
		a, b := i%2, i/2
		dst[i] = f64.Vec2{bbox[a].X, bbox[b].Y}
		src[i] = f64.Vec2{
			box[a].X + pad + shift[0] + jx[i],
			box[b].Y + pad + shift[1] + jy[i],
		}
	}

	h, err := warp.FromCorners(src, dst)
	if err != nil {
		return nil, invalidf("fold", "sampling box: %v", err)
	}
	warped, err := warp.Perspective(f.padded, h, f.size.Width, f.size.Height)
	if err != nil {
		return nil, invalidf("fold", "sampling box: %v", err)
	}
	Logger().Debug("fold layer", "shift", shift, "box", box)
	return f.multiply(cur, warped, rng), nil
}

func (f *folder) multiply(cur *Image, warped warp.RGB, rng *Rand) *Image {
	dist := DistanceToPoints(f.size, f.path, false)
	if f.opts.RandEdge {
		dist = JitterInt(dist, rng, int(f.opts.Width/4))
	}
	region := dist.Within(f.opts.Width / 2)

	mult := filter.NewPlane(f.size.Width, f.size.Height, 3)
	for i, in := range region.data {
		for c := i * 3; c < i*3+3; c++ {
			if in {
				mult.Data[c] = float64(warped.Pix[c]) / 255
			} else {
				mult.Data[c] = 1
			}
		}
	}
	mult = filter.Gaussian(mult, f.kernel, 0)

	out := NewImage(f.size.Width, f.size.Height)
	for i, m := range mult.Data {
		out.pix[i] = quantize(m * float64(cur.pix[i]))
	}
	return out
}
