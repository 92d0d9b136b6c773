package artifact

import "math"

// TearOptions controls AddTear.
//
// A tear is grown in layers around centers spaced along a path. Layer 0
// holds a few points sitting on the center. Each later layer picks random
// parents from the layer before it and displaces them along the path
// tangent and normal. InLinePercs and PerpPercs give, per layer, the
// [lo, hi] displacement as a fraction of InLineMax and PerpMax; both need
// one column per layer, that is 1+len(MinDensity).
type TearOptions struct {
	Path    []Point `toml:"path,omitempty" yaml:"path,omitempty"`
	NPoints int     `toml:"n_points" yaml:"n_points"`

	// MinSpacing and MaxSpacing bound the gap between tear centers.
	MinSpacing float64 `toml:"min_spacing" yaml:"min_spacing"`
	MaxSpacing float64 `toml:"max_spacing" yaml:"max_spacing"`

	// StartFactor and EndFactor bound where the torn span begins and ends,
	// as fractions of the path length.
	StartFactor [2]float64 `toml:"start_factor" yaml:"start_factor"`
	EndFactor   [2]float64 `toml:"end_factor" yaml:"end_factor"`

	// DirMin and DirMax bound the random InLineMax and PerpMax.
	DirMin float64 `toml:"dir_min" yaml:"dir_min"`
	DirMax float64 `toml:"dir_max" yaml:"dir_max"`

	InLineMax *float64 `toml:"in_line_max,omitempty" yaml:"in_line_max,omitempty"`
	PerpMax   *float64 `toml:"perp_max,omitempty" yaml:"perp_max,omitempty"`

	// PtRadius is the radius each point tears open.
	PtRadius float64 `toml:"pt_radius" yaml:"pt_radius"`

	TearAlpha float64 `toml:"tear_alpha" yaml:"tear_alpha"`

	InLinePercs [2][]float64 `toml:"in_line_percs" yaml:"in_line_percs"`
	PerpPercs   [2][]float64 `toml:"perp_percs" yaml:"perp_percs"`

	// L1MinCt and L1MaxCt bound the layer 0 point count.
	L1MinCt int `toml:"l1_min_ct" yaml:"l1_min_ct"`
	L1MaxCt int `toml:"l1_max_ct" yaml:"l1_max_ct"`

	// MinDensity and MaxDensity bound the point count of each later layer
	// relative to InLineMax*PerpMax/(pi*PtRadius^2).
	MinDensity []float64 `toml:"min_density" yaml:"min_density"`
	MaxDensity []float64 `toml:"max_density" yaml:"max_density"`

	EdgeWidth     float64    `toml:"edge_width" yaml:"edge_width"`
	EdgeAlpha     float64    `toml:"edge_alpha" yaml:"edge_alpha"`
	EdgeColorMult [3]float64 `toml:"edge_color_mult" yaml:"edge_color_mult"`

	// Color is the background showing through the tear.
	Color RGB `toml:"color" yaml:"color"`

	RandEdge bool `toml:"rand_edge" yaml:"rand_edge"`
}

// DefaultTearOptions returns a three-layer tear along an edge-to-edge path.
func DefaultTearOptions() TearOptions {
	return TearOptions{
		NPoints:       2,
		MinSpacing:    20,
		MaxSpacing:    40,
		StartFactor:   [2]float64{-0.15, 0.15},
		EndFactor:     [2]float64{0.85, 1.15},
		DirMin:        10,
		DirMax:        30,
		PtRadius:      2.25,
		TearAlpha:     1,
		InLinePercs:   [2][]float64{{-0.5, -0.3, -0.2}, {0.5, 0.3, 0.2}},
		PerpPercs:     [2][]float64{{-0.5, -0.3, -0.2}, {0.5, 0.3, 0.2}},
		L1MinCt:       3,
		L1MaxCt:       8,
		MinDensity:    []float64{0.5, 0.5},
		MaxDensity:    []float64{1.5, 1.5},
		EdgeWidth:     2,
		EdgeAlpha:     0.75,
		EdgeColorMult: [3]float64{0.85, 0.7, 0.85},
		Color:         RGB{245, 245, 245},
		RandEdge:      true,
	}
}

func (o *TearOptions) validate() error {
	const op = "tear"
	if len(o.MinDensity) != len(o.MaxDensity) {
		return invalidf(op, "min density has %d layers, max density %d", len(o.MinDensity), len(o.MaxDensity))
	}
	layers := 1 + len(o.MinDensity)
	for _, p := range [][]float64{o.InLinePercs[0], o.InLinePercs[1], o.PerpPercs[0], o.PerpPercs[1]} {
		if len(p) != layers {
			return invalidf(op, "percentage table has %d columns, want %d", len(p), layers)
		}
	}
	if o.PtRadius <= 0 {
		return invalidf(op, "point radius %g must be positive", o.PtRadius)
	}
	if o.L1MinCt < 0 || o.L1MaxCt < 0 {
		return invalidf(op, "negative first layer count [%d, %d)", o.L1MinCt, o.L1MaxCt)
	}
	for k := range o.MinDensity {
		if o.MinDensity[k] < 0 || o.MaxDensity[k] < 0 {
			return invalidf(op, "negative density in layer %d", k+2)
		}
	}
	if o.DirMin < 0 || o.DirMax < 0 {
		return invalidf(op, "negative direction range [%g, %g)", o.DirMin, o.DirMax)
	}
	if o.InLineMax != nil && *o.InLineMax < 0 {
		return invalidf(op, "in-line max %g is negative", *o.InLineMax)
	}
	if o.PerpMax != nil && *o.PerpMax < 0 {
		return invalidf(op, "perpendicular max %g is negative", *o.PerpMax)
	}
	if err := checkNonNegative(op, "edge width", o.EdgeWidth); err != nil {
		return err
	}
	if err := checkUnit(op, "tear alpha", o.TearAlpha); err != nil {
		return err
	}
	return checkUnit(op, "edge alpha", o.EdgeAlpha)
}

// AddTear opens a torn gap in the tissue along a random path.
func AddTear(img *Image, seed uint32, opts TearOptions) (*Image, error) {
	if err := checkImage("tear", img); err != nil {
		return nil, err
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	size := img.Size()
	rng := NewRand(seed)
	path, err := tracePath(size, rng, seed, opts.Path, SplineOptions{
		NPoints: opts.NPoints,
		Start:   EdgeRandom,
		End:     EdgeOpposite,
	})
	if err != nil {
		return nil, err
	}

	pts := tearPoints(path, rng, &opts)
	Logger().Debug("tear", "seed", seed, "path", len(path), "points", len(pts))
	if len(pts) == 0 {
		Logger().Warn("tear: no tear centers inside the path span", "seed", seed, "path", len(path))
		return img.Clone(), nil
	}

	r := opts.PtRadius
	dist := tearDistance(size, pts, r, rng, opts.RandEdge)
	interior := dist.Within(r)
	rim := dist.Band(r, r+opts.EdgeWidth)

	mask := MaskFromRegion(interior, opts.TearAlpha)
	mask.SetRegion(rim, opts.EdgeAlpha)
	layer := SolidLayer(size, opts.Color)
	layer.fillRegion(rim, rimColor(img.Mean(), opts.EdgeColorMult))
	return Composite(img, layer, mask)
}

// tearCenter is a point on the path and its tangent (previous sample minus
// current sample).
type tearCenter struct {
	at, dir Point
}

// tearDistance is the distance to the nearest tear point, roughened by up
// to half the point radius when randEdge is set.
func tearDistance(size Size, pts []Point, radius float64, rng *Rand, randEdge bool) *Field {
	dist := DistanceToPoints(size, pts, true)
	if randEdge {
		dist = JitterUniform(dist, rng, float64(int(radius*0.5)))
	}
	return dist
}

// tearPoints grows every tear and returns all points, tear by tear and
// layer by layer.
func tearPoints(path []Point, rng *Rand, o *TearOptions) []Point {
	spacing := make([]float64, len(path))
	for i := range spacing {
		spacing[i] = rng.Uniform(o.MinSpacing, o.MaxSpacing)
	}

	last := float64(len(path) - 1)
	start := math.RoundToEven(rng.Uniform(o.StartFactor[0], o.StartFactor[1]) * last)
	end := math.RoundToEven(rng.Uniform(o.EndFactor[0], o.EndFactor[1]) * last)
	start = min(max(start, 0), last)
	end = min(max(end, 0), last)

	var centers []tearCenter
	var cum float64
	for _, s := range spacing {
		cum += s
		pos := math.RoundToEven(cum)
		if pos < start || pos >= end {
			continue
		}
		i := int(pos)
		centers = append(centers, tearCenter{at: path[i], dir: tangent(path, i)})
	}

	var inLine, perp float64
	if o.InLineMax != nil {
		inLine = *o.InLineMax
	} else {
		inLine = rng.Uniform(o.DirMin, o.DirMax)
	}
	if o.PerpMax != nil {
		perp = *o.PerpMax
	} else {
		perp = rng.Uniform(o.DirMin, o.DirMax)
	}
	density := inLine * perp / (o.PtRadius * o.PtRadius * math.Pi)

	layers := 1 + len(o.MinDensity)
	counts := make([][]int, len(centers))
	for t := range counts {
		counts[t] = make([]int, layers)
		counts[t][0] = rng.IntRange(o.L1MinCt, o.L1MaxCt)
	}
	for k := 1; k < layers; k++ {
		lo := int(math.Ceil(density * o.MinDensity[k-1]))
		hi := int(math.Ceil(density * o.MaxDensity[k-1]))
		for t := range counts {
			counts[t][k] = rng.IntRange(lo, hi)
		}
	}

	var out []Point
	for t, c := range centers {
		var prev []Point
		for k := range layers {
			n := counts[t][k]
			if k > 0 && len(prev) == 0 {
				n = 0
			}
			cur := make([]Point, n)
			for i := range cur {
				if k == 0 {
					cur[i] = c.at
				} else {
					cur[i] = prev[rng.IntRange(0, len(prev))]
				}
			}
			along := make([]float64, n)
			for i := range along {
				along[i] = rng.Uniform(o.InLinePercs[0][k]*inLine, o.InLinePercs[1][k]*inLine)
			}
			normal := c.dir.Perp()
			for i := range cur {
				across := rng.Uniform(o.PerpPercs[0][k]*perp, o.PerpPercs[1][k]*perp)
				cur[i] = cur[i].Add(c.dir.Mul(along[i]).Add(normal.Mul(across)))
			}
			out = append(out, cur...)
			prev = cur
		}
	}
	return out
}

func tangent(path []Point, i int) Point {
	if len(path) < 2 {
		return Point{}
	}
	if i == 0 {
		return path[0].Sub(path[1])
	}
	return path[i-1].Sub(path[i])
}
