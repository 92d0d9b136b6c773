package artifact

// IlluminationOptions controls AddIllumination.
type IlluminationOptions struct {
	MaxCov float64 `toml:"max_cov" yaml:"max_cov"`
	NNorms int     `toml:"n_norms" yaml:"n_norms"`

	// ScaleMin (< 1) and ScaleMax (> 1) bound the brightness factor.
	ScaleMin float64 `toml:"scale_min" yaml:"scale_min"`
	ScaleMax float64 `toml:"scale_max" yaml:"scale_max"`

	MinCovScale     float64 `toml:"min_cov_scale" yaml:"min_cov_scale"`
	MinDiagCovScale float64 `toml:"min_diag_cov_scale" yaml:"min_diag_cov_scale"`
	MaxCrCovScale   float64 `toml:"max_cr_cov_scale" yaml:"max_cr_cov_scale"`
}

// DefaultIlluminationOptions returns a gentle three-blob gradient.
func DefaultIlluminationOptions() IlluminationOptions {
	return IlluminationOptions{
		MaxCov:          15,
		NNorms:          3,
		ScaleMin:        0.8,
		ScaleMax:        1.1,
		MinCovScale:     0.5,
		MinDiagCovScale: 0.1,
		MaxCrCovScale:   0.2,
	}
}

// illuminationRange lets gradients originate off canvas.
var illuminationRange = [2]float64{-0.5, 1.5}

// AddIllumination scales the HSV value channel by a smooth random
// gradient.
func AddIllumination(img *Image, seed uint32, opts IlluminationOptions) (*Image, error) {
	const op = "illumination"
	if err := checkImage(op, img); err != nil {
		return nil, err
	}

	rng := NewRand(seed)
	field, err := RandGaussField(img.Size(), rng, FieldOptions{
		NNorms:          opts.NNorms,
		MaxCov:          opts.MaxCov,
		ZeroToOne:       true,
		RangeX:          &illuminationRange,
		RangeY:          &illuminationRange,
		MinCovScale:     opts.MinCovScale,
		MinDiagCovScale: opts.MinDiagCovScale,
		MaxCrCovScale:   opts.MaxCrCovScale,
	})
	if err != nil {
		return nil, err
	}
	norm := field.Normalize()

	lo := rng.Uniform(opts.ScaleMin, (1+opts.ScaleMin)/2)
	hi := rng.Uniform((1+opts.ScaleMax)/2, opts.ScaleMax)
	Logger().Debug("illumination", "seed", seed, "lo", lo, "hi", hi)

	hsv := img.ToHSV()
	for i := range hsv {
		hsv[i][2] = scaleChannel(hsv[i][2], lerpClamped(norm.data[i], lo, hi))
	}
	return FromHSV(img.width, img.height, hsv), nil
}
