package artifact

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Type identifies an artifact generator. The numeric value doubles as the
// seed offset that decorrelates artifacts applied to the same identity.
type Type int

const (
	Marker Type = iota + 1
	Fold
	Sectioning
	Illumination
	Bubbles
	Stain
	Tear
)

var typeNames = map[Type]string{
	Marker:       "marker",
	Fold:         "fold",
	Sectioning:   "sectioning",
	Illumination: "illumination",
	Bubbles:      "bubbles",
	Stain:        "stain",
	Tear:         "tear",
}

// Types returns every artifact type in offset order.
func Types() []Type {
	return []Type{Marker, Fold, Sectioning, Illumination, Bubbles, Stain, Tear}
}

// String returns the lower-case type name.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Valid reports whether t is a known artifact type.
func (t Type) Valid() bool {
	_, ok := typeNames[t]
	return ok
}

// Offset returns the seed offset of t.
func (t Type) Offset() int { return int(t) }

// Suffix returns the first four letters of the name, used in output file
// names.
func (t Type) Suffix() string {
	name := t.String()
	return name[:min(4, len(name))]
}

var lower = cases.Lower(language.Und)

// ParseType resolves a case-insensitive artifact name.
func ParseType(s string) (Type, error) {
	name := lower.String(strings.TrimSpace(s))
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, invalidf("parse type", "unknown artifact type %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, invalidf("marshal type", "unknown artifact type %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	v, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Policy maps each artifact type to whether its seed is derived per tile
// (true) or per slide (false).
type Policy map[Type]bool

// DefaultPolicy randomizes every artifact per tile except stain, which is
// shared across a slide.
func DefaultPolicy() Policy {
	p := make(Policy, len(typeNames))
	for _, t := range Types() {
		p[t] = t != Stain
	}
	return p
}

// PerTile reports the granularity for t, falling back to DefaultPolicy for
// types missing from p.
func (p Policy) PerTile(t Type) bool {
	if v, ok := p[t]; ok {
		return v
	}
	return t != Stain
}
