package tensor

import "github.com/pkg/errors"

// Errors returned by array construction and math. Callers should test with errors.Is,
// since most are wrapped with the offending shapes or values.
var (
	// ErrInvalidShape is returned for shapes with non-positive dimensions.
	ErrInvalidShape = errors.New("invalid shape")

	// ErrShapeMismatch is returned when operand shapes are incompatible.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrDomain is returned when a math function is evaluated outside its domain, e.g. log(0).
	ErrDomain = errors.New("value outside function domain")

	// ErrNotScalar is returned by Item on arrays holding more than one element.
	ErrNotScalar = errors.New("array is not a scalar")
)
