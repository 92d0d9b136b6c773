package artifact

// MarkerOptions controls AddMarker.
type MarkerOptions struct {
	// Path is a pre-sampled path used verbatim when set.
	Path []Point `toml:"path,omitempty" yaml:"path,omitempty"`

	// Handles are the spline handle points when Path is empty.
	Handles []Point `toml:"handles,omitempty" yaml:"handles,omitempty"`

	NPoints int  `toml:"n_points" yaml:"n_points"`
	Start   Edge `toml:"start_edge" yaml:"start_edge"`
	End     Edge `toml:"end_edge" yaml:"end_edge"`

	// Width is the stroke width in pixels.
	Width float64 `toml:"width" yaml:"width"`

	// Alpha is the stroke opacity in [0,1].
	Alpha float64 `toml:"alpha" yaml:"alpha"`

	// Color fixes the ink color. When nil each channel is drawn from
	// ColorRange as an integer in [lo, hi).
	Color      *RGB      `toml:"color,omitempty" yaml:"color,omitempty"`
	ColorRange [3][2]int `toml:"color_range" yaml:"color_range"`
}

// DefaultMarkerOptions returns a blue-leaning ink stroke 100 px wide.
func DefaultMarkerOptions() MarkerOptions {
	return MarkerOptions{
		NPoints:    3,
		Width:      100,
		Alpha:      0.75,
		ColorRange: [3][2]int{{0, 50}, {0, 50}, {0, 100}},
	}
}

// AddMarker draws a translucent pen stroke of fixed width along a random
// spline.
func AddMarker(img *Image, seed uint32, opts MarkerOptions) (*Image, error) {
	const op = "marker"
	if err := checkImage(op, img); err != nil {
		return nil, err
	}
	if err := checkNonNegative(op, "width", opts.Width); err != nil {
		return nil, err
	}
	if err := checkUnit(op, "alpha", opts.Alpha); err != nil {
		return nil, err
	}

	rng := NewRand(seed)
	var ink RGB
	if opts.Color != nil {
		ink = *opts.Color
	} else {
		for c := range ink {
			ink[c] = uint8(min(max(rng.IntRange(opts.ColorRange[c][0], opts.ColorRange[c][1]), 0), 255))
		}
	}

	size := img.Size()
	path, err := tracePath(size, rng, seed, opts.Path, SplineOptions{
		Handles: opts.Handles,
		NPoints: opts.NPoints,
		Start:   opts.Start,
		End:     opts.End,
	})
	if err != nil {
		return nil, err
	}

	region := markerRegion(size, path, opts.Width)
	Logger().Debug("marker", "seed", seed, "color", ink, "path", len(path), "pixels", region.Count())

	return Composite(img, SolidLayer(size, ink), MaskFromRegion(region, opts.Alpha))
}

func markerRegion(size Size, path []Point, width float64) *Region {
	return DistanceToPoints(size, path, true).Within(width / 2)
}
