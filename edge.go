package artifact

import "fmt"

// Edge selects an image border for a spline endpoint. The zero value picks
// a random edge.
type Edge int

const (
	EdgeRandom Edge = iota
	EdgeNone
	EdgeLeft
	EdgeTop
	EdgeRight
	EdgeBottom

	// Relative edges only apply to the end of a path whose start was
	// pinned. They are measured from the start edge.
	EdgeSame
	EdgeClockwise
	EdgeOpposite
	EdgeCounterClockwise
)

var edgeNames = [...]string{
	EdgeRandom:           "random",
	EdgeNone:             "none",
	EdgeLeft:             "left",
	EdgeTop:              "top",
	EdgeRight:            "right",
	EdgeBottom:           "bottom",
	EdgeSame:             "same",
	EdgeClockwise:        "clockwise",
	EdgeOpposite:         "opposite",
	EdgeCounterClockwise: "counterclockwise",
}

// String returns the edge name.
func (e Edge) String() string {
	if e < 0 || int(e) >= len(edgeNames) {
		return fmt.Sprintf("Edge(%d)", int(e))
	}
	return edgeNames[e]
}

// MarshalText implements encoding.TextMarshaler.
func (e Edge) MarshalText() ([]byte, error) {
	if e < 0 || int(e) >= len(edgeNames) {
		return nil, fmt.Errorf("artifact: unknown edge %d", int(e))
	}
	return []byte(edgeNames[e]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Edge) UnmarshalText(text []byte) error {
	for i, name := range edgeNames {
		if name == string(text) {
			*e = Edge(i)
			return nil
		}
	}
	return fmt.Errorf("artifact: unknown edge %q", text)
}

// absolute returns the border index 0=left 1=top 2=right 3=bottom, or -1.
func (e Edge) absolute() int {
	if e >= EdgeLeft && e <= EdgeBottom {
		return int(e - EdgeLeft)
	}
	return -1
}

// relative returns the offset -4..-1 of a relative edge, or 0.
func (e Edge) relative() int {
	if e >= EdgeSame && e <= EdgeCounterClockwise {
		return int(e-EdgeSame) - 4
	}
	return 0
}

// onEdge reports whether p lies exactly on border index b.
func onEdge(p Point, size Size, b int) bool {
	switch b {
	case 0:
		return p.X == 0
	case 1:
		return p.Y == 0
	case 2:
		return p.X == float64(size.Width-1)
	case 3:
		return p.Y == float64(size.Height-1)
	}
	return false
}
