package artifact

// BubbleOptions controls AddBubbles.
type BubbleOptions struct {
	NBubbles int `toml:"n_bubbles" yaml:"n_bubbles"`

	// MaxWidth roughly bounds a bubble's size in pixels.
	MaxWidth float64 `toml:"max_width" yaml:"max_width"`

	Alpha float64 `toml:"alpha" yaml:"alpha"`

	// EdgeWidth is the rim thickness in pixels.
	EdgeWidth float64 `toml:"edge_width" yaml:"edge_width"`

	// EdgeColorMult scales the image mean color to get the rim color.
	EdgeColorMult [3]float64 `toml:"edge_color_mult" yaml:"edge_color_mult"`

	Color RGB `toml:"color" yaml:"color"`
}

// DefaultBubbleOptions returns 25 pale bubbles with a darker rim.
func DefaultBubbleOptions() BubbleOptions {
	return BubbleOptions{
		NBubbles:      25,
		MaxWidth:      50,
		Alpha:         0.75,
		EdgeWidth:     2,
		EdgeColorMult: [3]float64{0.75, 0.75, 0.75},
		Color:         RGB{225, 225, 225},
	}
}

// AddBubbles overlays mounting bubbles shaped by a random Gaussian field.
func AddBubbles(img *Image, seed uint32, opts BubbleOptions) (*Image, error) {
	const op = "bubbles"
	if err := checkImage(op, img); err != nil {
		return nil, err
	}
	if err := checkUnit(op, "alpha", opts.Alpha); err != nil {
		return nil, err
	}

	size := img.Size()
	field, err := RandGaussField(size, NewRand(seed), FieldOptions{
		NNorms:          opts.NBubbles,
		MaxCov:          opts.MaxWidth,
		MinCovScale:     0.1,
		MinDiagCovScale: 0.25,
		MaxCrCovScale:   0.7,
	})
	if err != nil {
		return nil, err
	}

	region := field.AtLeast(1)
	rim := region.And(DistanceInside(region).Within(opts.EdgeWidth))
	Logger().Debug("bubbles", "seed", seed, "pixels", region.Count(), "rim", rim.Count())

	layer := SolidLayer(size, opts.Color)
	layer.fillRegion(rim, rimColor(img.Mean(), opts.EdgeColorMult))
	return Composite(img, layer, MaskFromRegion(region, opts.Alpha))
}
