package autodiff

import "github.com/pkg/errors"

// Errors reported by graph construction and the backward pass.
// They are wrapped with the offending Function's name; test with errors.Is.
var (
	// ErrNotImplemented is returned by Base.Forward and Base.Backward: every
	// concrete Function must override both.
	ErrNotImplemented = errors.New("operation not implemented")

	// ErrMultipleOutputs is returned by Apply when the Function produced more
	// than one output. Use ApplyN for multi-output Functions.
	ErrMultipleOutputs = errors.New("function produced multiple outputs")

	// ErrNoOutputs is returned when Forward produced no values.
	ErrNoOutputs = errors.New("function produced no outputs")

	// ErrFunctionReused is returned when a Function value is applied twice.
	// Functions record their inputs and outputs, so each invocation needs a fresh value.
	ErrFunctionReused = errors.New("function already applied")

	// ErrNilInput is returned when a nil Variable is passed to Apply.
	ErrNilInput = errors.New("nil input variable")

	// ErrGradientArity is returned when Backward does not produce exactly one
	// gradient per input.
	ErrGradientArity = errors.New("wrong number of gradients")

	// ErrGradientShape is returned when a gradient's shape differs from its
	// Variable's data shape.
	ErrGradientShape = errors.New("gradient shape does not match data")

	// ErrUnsupportedValue is returned by AsVariable for values it cannot convert.
	ErrUnsupportedValue = errors.New("value cannot be converted to a variable")
)
