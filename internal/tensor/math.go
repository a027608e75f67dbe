package tensor

import (
	"math"

	"github.com/born-ml/gograd/internal/parallel"
	"github.com/pkg/errors"
)

// kernelConfig drives every elementwise kernel in this package.
var kernelConfig = parallel.DefaultConfig()

// binary applies f elementwise, promoting a single-element operand.
func binary(a, b *Array, f func(x, y float64) float64) (*Array, error) {
	shape, err := resultShape(a.shape, b.shape)
	if err != nil {
		return nil, err
	}
	out := make([]float64, shape.NumElements())
	switch {
	case len(a.data) == len(out) && len(b.data) == len(out):
		parallel.For(len(out), func(i int) { out[i] = f(a.data[i], b.data[i]) }, kernelConfig)
	case len(b.data) == 1:
		y := b.data[0]
		parallel.For(len(out), func(i int) { out[i] = f(a.data[i], y) }, kernelConfig)
	default:
		x := a.data[0]
		parallel.For(len(out), func(i int) { out[i] = f(x, b.data[i]) }, kernelConfig)
	}
	return newArray(out, shape), nil
}

// unary applies f elementwise.
func unary(a *Array, f func(x float64) float64) *Array {
	out := make([]float64, len(a.data))
	parallel.For(len(out), func(i int) { out[i] = f(a.data[i]) }, kernelConfig)
	return newArray(out, a.shape)
}

// Add returns a + b.
func (a *Array) Add(b *Array) (*Array, error) {
	return binary(a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns a - b.
func (a *Array) Sub(b *Array) (*Array, error) {
	return binary(a, b, func(x, y float64) float64 { return x - y })
}

// Mul returns a * b elementwise.
func (a *Array) Mul(b *Array) (*Array, error) {
	return binary(a, b, func(x, y float64) float64 { return x * y })
}

// Div returns a / b elementwise. Division by zero follows IEEE-754 (±Inf, NaN).
func (a *Array) Div(b *Array) (*Array, error) {
	return binary(a, b, func(x, y float64) float64 { return x / y })
}

// Neg returns -a.
func (a *Array) Neg() *Array {
	return unary(a, func(x float64) float64 { return -x })
}

// Scale returns c * a.
func (a *Array) Scale(c float64) *Array {
	return unary(a, func(x float64) float64 { return c * x })
}

// Pow returns a raised to the constant power c.
func (a *Array) Pow(c float64) *Array {
	switch c {
	case 1:
		return newArray(a.Data(), a.shape)
	case 2:
		return unary(a, func(x float64) float64 { return x * x })
	}
	return unary(a, func(x float64) float64 { return math.Pow(x, c) })
}

// Sin returns sin(a).
func (a *Array) Sin() *Array {
	return unary(a, math.Sin)
}

// Cos returns cos(a).
func (a *Array) Cos() *Array {
	return unary(a, math.Cos)
}

// Tanh returns tanh(a).
func (a *Array) Tanh() *Array {
	return unary(a, math.Tanh)
}

// Exp returns e^a.
func (a *Array) Exp() *Array {
	return unary(a, math.Exp)
}

// Log returns the natural logarithm of a.
// Every element must be strictly positive, otherwise ErrDomain is returned.
func (a *Array) Log() (*Array, error) {
	for i, v := range a.data {
		if !(v > 0) {
			return nil, errors.Wrapf(ErrDomain, "log(%s) at index %d", formatFloat(v), i)
		}
	}
	return unary(a, math.Log), nil
}
