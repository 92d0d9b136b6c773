package artifact

import (
	"errors"
	"fmt"
)

// Sentinel errors. Typed errors returned by this package unwrap to one of
// these, so callers can test with errors.Is.
var (
	// ErrInvalidInput is returned for malformed handle points, unknown
	// artifact types, and out-of-range parameters.
	ErrInvalidInput = errors.New("artifact: invalid input")

	// ErrDecomposition is returned when an image cannot be expressed in a
	// stain basis.
	ErrDecomposition = errors.New("artifact: stain decomposition failed")
)

// InvalidInputError describes a rejected argument.
type InvalidInputError struct {
	Op     string // generator or helper that rejected the input
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("artifact: %s: invalid input: %s", e.Op, e.Reason)
}

// Unwrap returns ErrInvalidInput.
func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// DecompositionError describes a stain basis that cannot be inverted.
type DecompositionError struct {
	Reason string
}

func (e *DecompositionError) Error() string {
	return "artifact: stain decomposition: " + e.Reason
}

// Unwrap returns ErrDecomposition.
func (e *DecompositionError) Unwrap() error { return ErrDecomposition }

func invalidf(op, format string, args ...any) error {
	return &InvalidInputError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
