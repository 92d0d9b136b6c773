package artifact

import "math"

// Point represents a 2D point or vector in pixel coordinates.
type Point struct {
	X float64 `toml:"x" yaml:"x"`
	Y float64 `toml:"y" yaml:"y"`
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Perp returns the vector rotated so that (x, y) becomes (y, -x).
func (p Point) Perp() Point {
	return Point{X: p.Y, Y: -p.X}
}

// Clamp limits the point to [0, s.Width-1] x [0, s.Height-1].
func (p Point) Clamp(s Size) Point {
	return Point{
		X: min(max(p.X, 0), float64(s.Width-1)),
		Y: min(max(p.Y, 0), float64(s.Height-1)),
	}
}

// pixel converts p to a clamped raster index. With round set the
// coordinates are rounded half to even, otherwise truncated toward zero.
func (p Point) pixel(s Size, round bool) (x, y int) {
	c := p.Clamp(s)
	if round {
		return int(math.RoundToEven(c.X)), int(math.RoundToEven(c.Y))
	}
	return int(c.X), int(c.Y)
}

// Bounds returns the component-wise minimum and maximum of pts.
func Bounds(pts []Point) (lo, hi Point) {
	if len(pts) == 0 {
		return Point{}, Point{}
	}
	lo, hi = pts[0], pts[0]
	for _, p := range pts[1:] {
		lo.X = min(lo.X, p.X)
		lo.Y = min(lo.Y, p.Y)
		hi.X = max(hi.X, p.X)
		hi.Y = max(hi.Y, p.Y)
	}
	return lo, hi
}
