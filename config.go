package artifact

// Config collects the options of every generator together with the seed
// granularity policy.
type Config struct {
	Marker       MarkerOptions       `toml:"marker" yaml:"marker"`
	Fold         FoldOptions         `toml:"fold" yaml:"fold"`
	Sectioning   SectioningOptions   `toml:"sectioning" yaml:"sectioning"`
	Illumination IlluminationOptions `toml:"illumination" yaml:"illumination"`
	Bubbles      BubbleOptions       `toml:"bubbles" yaml:"bubbles"`
	Stain        StainOptions        `toml:"stain" yaml:"stain"`
	Tear         TearOptions         `toml:"tear" yaml:"tear"`

	Policy Policy `toml:"-" yaml:"-"`
}

// DefaultConfig returns the default options for every generator.
func DefaultConfig() *Config {
	return &Config{
		Marker:       DefaultMarkerOptions(),
		Fold:         DefaultFoldOptions(),
		Sectioning:   DefaultSectioningOptions(),
		Illumination: DefaultIlluminationOptions(),
		Bubbles:      DefaultBubbleOptions(),
		Stain:        DefaultStainOptions(),
		Tear:         DefaultTearOptions(),
		Policy:       DefaultPolicy(),
	}
}

// Apply runs the generator for t with the options from cfg. A nil cfg
// uses DefaultConfig.
func Apply(img *Image, t Type, seed uint32, cfg *Config) (*Image, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	switch t {
	case Marker:
		return AddMarker(img, seed, cfg.Marker)
	case Fold:
		return AddFold(img, seed, cfg.Fold)
	case Sectioning:
		return AddSectioning(img, seed, cfg.Sectioning)
	case Illumination:
		return AddIllumination(img, seed, cfg.Illumination)
	case Bubbles:
		return AddBubbles(img, seed, cfg.Bubbles)
	case Stain:
		return AddStain(img, seed, cfg.Stain)
	case Tear:
		return AddTear(img, seed, cfg.Tear)
	}
	return nil, invalidf("apply", "unknown artifact type %d", int(t))
}
