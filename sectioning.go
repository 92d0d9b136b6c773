package artifact

// SectioningOptions controls AddSectioning.
type SectioningOptions struct {
	Path    []Point `toml:"path,omitempty" yaml:"path,omitempty"`
	Handles []Point `toml:"handles,omitempty" yaml:"handles,omitempty"`
	NPoints int     `toml:"n_points" yaml:"n_points"`
	End     Edge    `toml:"end_edge" yaml:"end_edge"`

	// Width is the band width in pixels.
	Width float64 `toml:"width" yaml:"width"`

	// ScaleMin and ScaleMax bound the saturation factor. The factor is
	// lowest on the path and rises toward the band border.
	ScaleMin float64 `toml:"scale_min" yaml:"scale_min"`
	ScaleMax float64 `toml:"scale_max" yaml:"scale_max"`

	RandEdge bool `toml:"rand_edge" yaml:"rand_edge"`
}

// DefaultSectioningOptions returns a 240 px band across the image.
func DefaultSectioningOptions() SectioningOptions {
	return SectioningOptions{
		NPoints:  2,
		End:      EdgeOpposite,
		Width:    240,
		ScaleMin: 0.5,
		ScaleMax: 0.8,
		RandEdge: true,
	}
}

// AddSectioning simulates a thinner section: inside a band along a random
// spline, saturation is reduced and value raised by half as much.
func AddSectioning(img *Image, seed uint32, opts SectioningOptions) (*Image, error) {
	const op = "sectioning"
	if err := checkImage(op, img); err != nil {
		return nil, err
	}
	if opts.Width <= 0 {
		return nil, invalidf(op, "width %g must be positive", opts.Width)
	}

	size := img.Size()
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

	half := opts.Width / 2
	dist, region := sectionBand(size, path, half, rng, opts.RandEdge)

	mid := (opts.ScaleMin + opts.ScaleMax) / 2
	lo := rng.Uniform(opts.ScaleMin, (mid+opts.ScaleMin)/2)
	hi := rng.Uniform((mid+opts.ScaleMax)/2, opts.ScaleMax)
	Logger().Debug("sectioning", "seed", seed, "lo", lo, "hi", hi, "pixels", region.Count())

	out := img.Clone()
	for i, in := range region.data {
		if !in {
			continue
		}
		f := lerpClamped(dist.data[i]/half, lo, hi)
		if f == 1 {
			continue
		}
		p := out.pix[i*3 : i*3+3]
		hsv := RGBToHSV(RGB{p[0], p[1], p[2]})
		hsv[1] = scaleChannel(hsv[1], f)
		hsv[2] = quantize(float64(hsv[2]) / ((f + 1) / 2))
		c := hsv.RGB()
		copy(p, c[:])
	}
	return out, nil
}

// sectionBand returns the (optionally jittered) distance to path and the
// band within half of it.
func sectionBand(size Size, path []Point, half float64, rng *Rand, randEdge bool) (*Field, *Region) {
	dist := DistanceToPoints(size, path, false)
	if randEdge {
		dist = JitterInt(dist, rng, int(half))
	}
	return dist, dist.Within(half)
}

// lerpClamped maps t in [0,1] linearly onto [lo,hi], holding the end
// values outside that interval.
func lerpClamped(t, lo, hi float64) float64 {
	switch {
	case t <= 0:
		return lo
	case t >= 1:
		return hi
	}
	return lo + t*(hi-lo)
}
