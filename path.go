package artifact

// tracePath returns path when it is non-empty, otherwise a fresh spline.
// The generator is reset to seed first so the path does not depend on any
// draws taken before it.
func tracePath(size Size, rng *Rand, seed uint32, path []Point, opts SplineOptions) ([]Point, error) {
	if len(path) > 0 {
		return path, nil
	}
	rng.Seed(seed)
	return RandSpline(size, rng, opts)
}

func checkUnit(op, name string, v float64) error {
	if v < 0 || v > 1 {
		return invalidf(op, "%s %g outside [0,1]", name, v)
	}
	return nil
}

func checkNonNegative(op, name string, v float64) error {
	if v < 0 {
		return invalidf(op, "%s %g is negative", name, v)
	}
	return nil
}
